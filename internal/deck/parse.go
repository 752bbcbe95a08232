package deck

import (
	"fmt"

	"golang.org/x/mod/semver"

	"github.com/Aric5301/bookquiz/internal/quiz"
)

// rawDeck mirrors the on-disk deck shape across all three encodings.
// Pointer fields distinguish an absent key from a zero value, which the
// tracing invariant depends on.
type rawDeck struct {
	Format    string        `toml:"format" json:"format" yaml:"format"`
	Title     string        `toml:"title" json:"title" yaml:"title"`
	Questions []rawQuestion `toml:"questions" json:"questions" yaml:"questions"`
}

type rawQuestion struct {
	ID      string    `toml:"id" json:"id" yaml:"id"`
	Type    string    `toml:"type" json:"type" yaml:"type"`
	Prompt  rawPrompt `toml:"prompt" json:"prompt" yaml:"prompt"`
	Answer  rawAnswer `toml:"answer" json:"answer" yaml:"answer"`
	Context string    `toml:"context" json:"context" yaml:"context"`
}

type rawPrompt struct {
	Prompt  string `toml:"prompt" json:"prompt" yaml:"prompt"`
	Code    string `toml:"code" json:"code" yaml:"code"`
	Program string `toml:"program" json:"program" yaml:"program"`
}

type rawAnswer struct {
	Answer      string   `toml:"answer" json:"answer" yaml:"answer"`
	Distractors []string `toml:"distractors" json:"distractors" yaml:"distractors"`
	DoesCompile *bool    `toml:"doesCompile" json:"doesCompile" yaml:"doesCompile"`
	LineNumber  *int     `toml:"lineNumber" json:"lineNumber" yaml:"lineNumber"`
	Stdout      *string  `toml:"stdout" json:"stdout" yaml:"stdout"`
}

// build converts the raw shape into an immutable quiz.Set, enforcing every
// deck invariant. The first violation aborts the build; decks are never
// repaired.
func (d *rawDeck) build() (*quiz.Set, error) {
	if err := checkFormat(d.Format); err != nil {
		return nil, err
	}
	if len(d.Questions) == 0 {
		return nil, fmt.Errorf("deck contains no questions")
	}

	set := &quiz.Set{
		Topic:     d.Title,
		Questions: make([]quiz.Question, 0, len(d.Questions)),
	}

	seen := make(map[string]bool, len(d.Questions))
	for i, rq := range d.Questions {
		if rq.ID == "" {
			return nil, &quiz.ValidationError{Index: i, Field: "id", Message: "missing required field"}
		}
		if seen[rq.ID] {
			return nil, &quiz.ValidationError{QuestionID: rq.ID, Index: i, Field: "id", Message: "duplicate identifier within deck"}
		}
		seen[rq.ID] = true

		q, err := buildQuestion(i, rq)
		if err != nil {
			return nil, err
		}
		set.Questions = append(set.Questions, q)
	}
	return set, nil
}

// checkFormat validates the deck's declared format version. Any v1 release
// is accepted; other majors are not.
func checkFormat(format string) error {
	if format == "" {
		return fmt.Errorf("missing deck format version")
	}
	if !semver.IsValid(format) {
		return fmt.Errorf("invalid deck format version %q", format)
	}
	if major := semver.Major(format); major != FormatMajor {
		return fmt.Errorf("unsupported deck format %s (this loader reads %s decks)", major, FormatMajor)
	}
	return nil
}

func buildQuestion(i int, rq rawQuestion) (quiz.Question, error) {
	switch quiz.Type(rq.Type) {
	case quiz.TypeMultipleChoice:
		return buildMultipleChoice(i, rq)
	case quiz.TypeTracing:
		return buildTracing(i, rq)
	case "":
		return nil, &quiz.ValidationError{QuestionID: rq.ID, Index: i, Field: "type", Message: "missing required field"}
	default:
		return nil, &quiz.ValidationError{QuestionID: rq.ID, Index: i, Field: "type", Message: fmt.Sprintf("unknown question type %q", rq.Type)}
	}
}

func buildMultipleChoice(i int, rq rawQuestion) (quiz.Question, error) {
	fail := func(field, msg string) error {
		return &quiz.ValidationError{QuestionID: rq.ID, Index: i, Field: field, Message: msg}
	}

	if rq.Prompt.Prompt == "" {
		return nil, fail("prompt.prompt", "missing required field")
	}
	if rq.Prompt.Program != "" {
		return nil, fail("prompt.program", "not a MultipleChoice field")
	}
	if rq.Answer.Answer == "" {
		return nil, fail("answer.answer", "missing required field")
	}
	if len(rq.Answer.Distractors) == 0 {
		return nil, fail("answer.distractors", "at least one distractor is required")
	}
	if rq.Answer.DoesCompile != nil || rq.Answer.LineNumber != nil || rq.Answer.Stdout != nil {
		return nil, fail("answer", "tracing fields not allowed on a MultipleChoice question")
	}
	if rq.Context == "" {
		return nil, fail("context", "missing required field")
	}

	seen := make(map[string]bool, len(rq.Answer.Distractors))
	for _, d := range rq.Answer.Distractors {
		if d == rq.Answer.Answer {
			return nil, fail("answer.distractors", fmt.Sprintf("distractor %q duplicates the correct answer", d))
		}
		if seen[d] {
			return nil, fail("answer.distractors", fmt.Sprintf("duplicate distractor %q", d))
		}
		seen[d] = true
	}

	distractors := make([]string, len(rq.Answer.Distractors))
	copy(distractors, rq.Answer.Distractors)

	return quiz.MultipleChoice{
		QuestionID:  rq.ID,
		Prompt:      rq.Prompt.Prompt,
		Code:        rq.Prompt.Code,
		Answer:      rq.Answer.Answer,
		Distractors: distractors,
		Explanation: rq.Context,
	}, nil
}

func buildTracing(i int, rq rawQuestion) (quiz.Question, error) {
	fail := func(field, msg string) error {
		return &quiz.ValidationError{QuestionID: rq.ID, Index: i, Field: field, Message: msg}
	}

	if rq.Prompt.Program == "" {
		return nil, fail("prompt.program", "missing required field")
	}
	if rq.Prompt.Prompt != "" || rq.Prompt.Code != "" {
		return nil, fail("prompt", "only prompt.program is allowed on a Tracing question")
	}
	if rq.Answer.Answer != "" || len(rq.Answer.Distractors) > 0 {
		return nil, fail("answer", "choice fields not allowed on a Tracing question")
	}
	if rq.Answer.DoesCompile == nil {
		return nil, fail("answer.doesCompile", "missing required field")
	}
	if rq.Context == "" {
		return nil, fail("context", "missing required field")
	}

	q := quiz.Tracing{
		QuestionID:  rq.ID,
		Program:     rq.Prompt.Program,
		DoesCompile: *rq.Answer.DoesCompile,
		Explanation: rq.Context,
	}

	if q.DoesCompile {
		if rq.Answer.Stdout == nil {
			return nil, fail("answer.stdout", "required when doesCompile is true")
		}
		if rq.Answer.LineNumber != nil {
			return nil, fail("answer.lineNumber", "not allowed when doesCompile is true")
		}
		q.Stdout = *rq.Answer.Stdout
		return q, nil
	}

	if rq.Answer.LineNumber == nil {
		return nil, fail("answer.lineNumber", "required when doesCompile is false")
	}
	if rq.Answer.Stdout != nil {
		return nil, fail("answer.stdout", "not allowed when doesCompile is false")
	}
	if *rq.Answer.LineNumber < 1 {
		return nil, fail("answer.lineNumber", "must be a positive line number")
	}
	q.LineNumber = *rq.Answer.LineNumber
	return q, nil
}
