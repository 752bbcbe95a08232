package quiz

import "fmt"

// ValidationError describes a malformed or invariant-violating question in a
// deck file. It is fatal at load time and surfaced to the content author;
// decks are never silently repaired.
type ValidationError struct {
	QuestionID string // id of the offending question ("" if the id itself is missing)
	Index      int    // zero-based position of the question within the file
	Field      string // offending field, e.g. "answer.distractors"
	Message    string // human-readable description
}

func (e *ValidationError) Error() string {
	if e.QuestionID == "" {
		return fmt.Sprintf("question %d: %s: %s", e.Index+1, e.Field, e.Message)
	}
	return fmt.Sprintf("question %q: %s: %s", e.QuestionID, e.Field, e.Message)
}

// InputShapeError reports a grading call whose response shape does not match
// the question variant, e.g. a trace judgment submitted for a multiple-choice
// question. It is a caller bug, never a learner-facing failure, and is never
// coerced into a verdict.
type InputShapeError struct {
	QuestionType Type
	ResponseType string
}

func (e *InputShapeError) Error() string {
	return fmt.Sprintf("response shape %s does not match question type %s", e.ResponseType, e.QuestionType)
}
