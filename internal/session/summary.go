package session

import (
	"time"

	"github.com/Aric5301/bookquiz/internal/quiz"
)

// MissedQuestion identifies a question answered incorrectly, for the
// summary screen's review list.
type MissedQuestion struct {
	ID     string
	Type   quiz.Type
	Prompt string
}

// Summary holds the data displayed when an attempt ends.
type Summary struct {
	DeckName       string
	Topic          string
	Duration       time.Duration
	TotalQuestions int
	TotalAnswered  int
	TotalCorrect   int
	Accuracy       float64
	ChoiceCorrect  int
	ChoiceTotal    int
	TracingCorrect int
	TracingTotal   int
	Missed         []MissedQuestion
}

// BuildSummary creates a Summary from the attempt state. Missed questions
// are listed in presentation order.
func BuildSummary(s *State) *Summary {
	sum := &Summary{
		DeckName:       s.Deck.Name,
		Topic:          s.Deck.Set.Topic,
		Duration:       s.Elapsed,
		TotalQuestions: s.Deck.Set.Len(),
		TotalAnswered:  s.TotalAnswered,
		TotalCorrect:   s.TotalCorrect,
		ChoiceCorrect:  s.ChoiceCorrect,
		ChoiceTotal:    s.ChoiceTotal,
		TracingCorrect: s.TracingCorrect,
		TracingTotal:   s.TracingTotal,
	}

	if s.TotalAnswered > 0 {
		sum.Accuracy = float64(s.TotalCorrect) / float64(s.TotalAnswered)
	}

	for _, q := range s.Deck.Set.Questions {
		ans, ok := s.Responses[q.ID()]
		if !ok || ans.Verdict.Correct {
			continue
		}
		missed := MissedQuestion{ID: q.ID(), Type: q.Type()}
		switch q := q.(type) {
		case quiz.MultipleChoice:
			missed.Prompt = q.Prompt
		case quiz.Tracing:
			missed.Prompt = firstLine(q.Program)
		}
		sum.Missed = append(sum.Missed, missed)
	}
	return sum
}

// firstLine returns the first non-empty line of a program for compact display.
func firstLine(program string) string {
	start := 0
	for start < len(program) && (program[start] == '\n' || program[start] == '\r') {
		start++
	}
	for i := start; i < len(program); i++ {
		if program[i] == '\n' {
			return program[start:i]
		}
	}
	return program[start:]
}
