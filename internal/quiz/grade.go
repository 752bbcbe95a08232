package quiz

import "fmt"

// Response is the tagged union of learner submissions. The shape must match
// the question variant it is graded against.
type Response interface {
	response() string
}

// ChoiceResponse is the learner's pick for a multiple-choice question.
type ChoiceResponse struct {
	// Answer is the text of the chosen candidate, exactly as presented.
	Answer string
}

func (ChoiceResponse) response() string { return "ChoiceResponse" }

// TraceResponse is the learner's judgment for a tracing question.
type TraceResponse struct {
	// DoesCompile is the learner's compile judgment.
	DoesCompile bool

	// LineNumber is the predicted error line (meaningful when DoesCompile
	// is false).
	LineNumber int

	// Stdout is the predicted output (meaningful when DoesCompile is true).
	Stdout string
}

func (TraceResponse) response() string { return "TraceResponse" }

// Verdict is the result of grading one response.
type Verdict struct {
	// Correct reports whether the response matched the declared answer.
	Correct bool

	// Explanation is the question's context, shown after grading.
	Explanation string
}

// Grade compares a learner response against the declared answer.
// It is pure and deterministic: identical (question, response) pairs always
// produce the same verdict.
//
// Matching rules:
//   - MultipleChoice: correct iff the submitted text equals the declared
//     answer exactly.
//   - Tracing: the compile judgment must match; then the error line must
//     be equal (doesCompile=false) or the stdout must match byte for byte,
//     including whitespace (doesCompile=true).
//
// A response whose shape does not match the question variant returns an
// *InputShapeError and no verdict.
func Grade(q Question, resp Response) (Verdict, error) {
	switch q := q.(type) {
	case MultipleChoice:
		choice, ok := resp.(ChoiceResponse)
		if !ok {
			return Verdict{}, &InputShapeError{QuestionType: q.Type(), ResponseType: resp.response()}
		}
		return Verdict{
			Correct:     choice.Answer == q.Answer,
			Explanation: q.Explanation,
		}, nil

	case Tracing:
		trace, ok := resp.(TraceResponse)
		if !ok {
			return Verdict{}, &InputShapeError{QuestionType: q.Type(), ResponseType: resp.response()}
		}
		return Verdict{
			Correct:     gradeTrace(q, trace),
			Explanation: q.Explanation,
		}, nil

	default:
		return Verdict{}, fmt.Errorf("unknown question variant %T", q)
	}
}

func gradeTrace(q Tracing, resp TraceResponse) bool {
	if resp.DoesCompile != q.DoesCompile {
		return false
	}
	if q.DoesCompile {
		return resp.Stdout == q.Stdout
	}
	return resp.LineNumber == q.LineNumber
}
