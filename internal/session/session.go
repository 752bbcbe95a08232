package session

import (
	"fmt"

	"github.com/Aric5301/bookquiz/internal/quiz"
)

// HandleAnswer grades the learner's response to the current question and
// records it in the attempt's response record. It returns the verdict so
// the UI can show feedback. A response whose shape does not match the
// current question is a caller bug and propagates the grading error
// unchanged.
func HandleAnswer(s *State, resp quiz.Response) (quiz.Verdict, error) {
	q := Current(s)
	if q == nil {
		return quiz.Verdict{}, fmt.Errorf("no active question")
	}

	verdict, err := quiz.Grade(q, resp)
	if err != nil {
		return quiz.Verdict{}, err
	}

	s.Responses[q.ID()] = Answer{Response: resp, Verdict: verdict}
	s.TotalAnswered++
	if verdict.Correct {
		s.TotalCorrect++
	}

	switch q.Type() {
	case quiz.TypeMultipleChoice:
		s.ChoiceTotal++
		if verdict.Correct {
			s.ChoiceCorrect++
		}
	case quiz.TypeTracing:
		s.TracingTotal++
		if verdict.Correct {
			s.TracingCorrect++
		}
	}

	s.LastVerdict = &verdict
	s.Phase = PhaseFeedback
	return verdict, nil
}
