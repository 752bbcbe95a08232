// Package deck loads quiz definition files into immutable question sets.
//
// A deck is one structured file per chapter topic: a format version, a
// title, and an ordered sequence of question tables. TOML is the canonical
// encoding; JSON and YAML decks decode to the same shape. Loading is pure
// and side-effect-free: a deck either produces a valid quiz.Set or fails
// with a validation error naming the offending question.
package deck

import "github.com/Aric5301/bookquiz/internal/quiz"

// FormatMajor is the deck file format major version this loader accepts.
const FormatMajor = "v1"

// Deck is a loaded quiz definition file.
type Deck struct {
	// Path is the file the deck was loaded from.
	Path string

	// Name is the deck's short name (file basename without extension).
	Name string

	// Format is the declared deck format version, e.g. "v1.0.0".
	Format string

	// Set holds the questions in presentation order.
	Set *quiz.Set
}
