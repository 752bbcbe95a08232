package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aric5301/bookquiz/internal/deck"
)

var vetCmd = &cobra.Command{
	Use:   "vet [file or directory ...]",
	Short: "Validate deck files without starting a quiz",
	Long:  "Vet parses and validates deck files, reporting every malformed deck. With no arguments it vets the configured deck directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := args
		if len(paths) == 0 {
			paths = []string{resolveDecksDir(cmd)}
		}

		files, err := collectDeckFiles(paths)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no deck files found")
		}

		bad := 0
		for _, f := range files {
			d, err := deck.Load(f)
			if err != nil {
				bad++
				fmt.Printf("✗ %s\n    %v\n", f, err)
				continue
			}
			fmt.Printf("✓ %s (%s, %d questions)\n", f, d.Set.Topic, d.Set.Len())
		}

		if bad > 0 {
			return fmt.Errorf("%d of %d deck files invalid", bad, len(files))
		}
		return nil
	},
}

// collectDeckFiles expands directories into their deck files and passes
// plain files through.
func collectDeckFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(e.Name())) {
			case ".toml", ".json", ".yaml", ".yml":
				files = append(files, filepath.Join(p, e.Name()))
			}
		}
	}
	sort.Strings(files)
	return files, nil
}
