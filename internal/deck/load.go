package deck

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a single deck file. The encoding is chosen by
// file extension: .toml (canonical), .json, .yaml or .yml.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}

	var raw rawDeck
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: parse: %w", filepath.Base(path), err)
		}
	case ".json":
		if err := validateJSON(data); err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: parse: %w", filepath.Base(path), err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: parse: %w", filepath.Base(path), err)
		}
	default:
		return nil, fmt.Errorf("%s: unsupported deck extension %q", filepath.Base(path), ext)
	}

	set, err := raw.build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	title := raw.Title
	if title == "" {
		title = name
	}
	set.Topic = title

	return &Deck{
		Path:   path,
		Name:   name,
		Format: raw.Format,
		Set:    set,
	}, nil
}

// LoadDir loads every deck file in a directory, sorted by filename so the
// chapter order of the book is preserved. It fails if the directory holds
// no deck files, or on the first invalid deck.
func LoadDir(dir string) ([]*Deck, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read deck dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".toml", ".json", ".yaml", ".yml":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no deck files found in %s", dir)
	}
	sort.Strings(files)

	decks := make([]*Deck, 0, len(files))
	for _, f := range files {
		d, err := Load(f)
		if err != nil {
			return nil, err
		}
		decks = append(decks, d)
	}
	return decks, nil
}
