package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Aric5301/bookquiz/internal/quiz"
	"github.com/Aric5301/bookquiz/internal/session"
)

func testSummary() *session.Summary {
	return &session.Summary{
		DeckName:       "ch3",
		Topic:          "Chapter 3: Control Flow",
		Duration:       4 * time.Minute,
		TotalQuestions: 6,
		TotalAnswered:  6,
		TotalCorrect:   4,
		Accuracy:       float64(4) / float64(6),
		ChoiceCorrect:  2,
		ChoiceTotal:    3,
		TracingCorrect: 2,
		TracingTotal:   3,
		Missed: []session.MissedQuestion{
			{ID: "q2", Type: quiz.TypeMultipleChoice, Prompt: "What does this print?"},
			{ID: "q5", Type: quiz.TypeTracing, Prompt: "func main() {"},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Attempt Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Attempt Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "Chapter 3: Control Flow") {
		t.Error("expected topic in summary view")
	}
	if !strings.Contains(view, "What does this print?") {
		t.Error("expected missed question prompt in summary view")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, code := range []rune{tea.KeyEnter, tea.KeyEscape} {
		s := New(testSummary())
		_, cmd := s.Update(tea.KeyPressMsg{Code: code})
		if cmd == nil {
			t.Error("expected a command unwinding to home")
		}
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}
