package quiz

// Type identifies a question variant.
type Type string

const (
	// TypeMultipleChoice is a prompt with one correct answer and a set of
	// distractors the learner picks from.
	TypeMultipleChoice Type = "MultipleChoice"

	// TypeTracing is a code sample the learner traces by hand, predicting
	// whether it compiles and what it prints.
	TypeTracing Type = "Tracing"
)

// Question is the tagged union over the two question variants.
// Implementations are immutable once loaded; the sealed marker keeps the
// set of variants closed to this package.
type Question interface {
	// ID returns the stable unique identifier of the question. It is used
	// for attempt analytics and deduplication, never for ordering or
	// correctness.
	ID() string

	// Type returns the variant tag.
	Type() Type

	// Context returns the explanation shown to the learner after grading.
	Context() string

	sealed()
}

// MultipleChoice is a question with one correct answer and a set of
// distractors.
type MultipleChoice struct {
	// QuestionID is the stable unique identifier within a Set.
	QuestionID string

	// Prompt is the question text shown to the learner.
	Prompt string

	// Code is an optional code sample displayed below the prompt.
	Code string

	// Answer is the single correct answer. It never duplicates a distractor.
	Answer string

	// Distractors are the incorrect candidate answers, in file order.
	// Order matters for deterministic presentation; entries are pairwise
	// distinct.
	Distractors []string

	// Explanation is shown after the learner answers.
	Explanation string
}

func (q MultipleChoice) ID() string      { return q.QuestionID }
func (q MultipleChoice) Type() Type      { return TypeMultipleChoice }
func (q MultipleChoice) Context() string { return q.Explanation }
func (q MultipleChoice) sealed()         {}

// Tracing is a question whose prompt is a program and whose expected answer
// is a compile/runtime judgment. Exactly one of LineNumber (DoesCompile
// false) or Stdout (DoesCompile true) is meaningful.
type Tracing struct {
	// QuestionID is the stable unique identifier within a Set.
	QuestionID string

	// Program is the code sample the learner traces.
	Program string

	// DoesCompile declares whether the program compiles.
	DoesCompile bool

	// LineNumber is the line of the compile error when DoesCompile is false.
	LineNumber int

	// Stdout is the exact standard output when DoesCompile is true.
	// Compared byte for byte, including whitespace.
	Stdout string

	// Explanation is shown after the learner answers.
	Explanation string
}

func (q Tracing) ID() string      { return q.QuestionID }
func (q Tracing) Type() Type      { return TypeTracing }
func (q Tracing) Context() string { return q.Explanation }
func (q Tracing) sealed()         {}

// Set is an ordered sequence of questions for one chapter topic.
// The order is presentation order and is significant.
type Set struct {
	// Topic is the human-readable title of the set.
	Topic string

	// Questions holds the questions in presentation order.
	Questions []Question
}

// Len returns the number of questions in the set.
func (s *Set) Len() int {
	return len(s.Questions)
}

// ByID returns the question with the given identifier, or nil.
func (s *Set) ByID(id string) Question {
	for _, q := range s.Questions {
		if q.ID() == id {
			return q
		}
	}
	return nil
}
