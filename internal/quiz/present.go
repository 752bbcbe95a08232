package quiz

import "math/rand"

// PresentOptions controls candidate ordering for multiple-choice questions.
// The zero value is the default: deterministic insertion order (answer
// first, then distractors in file order), which keeps grading sessions
// reproducible.
type PresentOptions struct {
	// Shuffle enables randomized presentation order.
	Shuffle bool

	// Rand is the randomness source used when Shuffle is set. Callers own
	// the seed so shuffled presentations stay reproducible under test.
	Rand *rand.Rand
}

// PresentChoices returns the candidate answers for a multiple-choice
// question in presentation order. The sequence always has length
// 1+len(distractors) and contains no duplicates (the loader rejects decks
// that would violate this).
func PresentChoices(q MultipleChoice, opts PresentOptions) []string {
	choices := make([]string, 0, len(q.Distractors)+1)
	choices = append(choices, q.Answer)
	choices = append(choices, q.Distractors...)

	if opts.Shuffle && opts.Rand != nil {
		opts.Rand.Shuffle(len(choices), func(i, j int) {
			choices[i], choices[j] = choices[j], choices[i]
		})
	}
	return choices
}
