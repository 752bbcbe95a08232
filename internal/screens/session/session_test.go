package session

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Aric5301/bookquiz/internal/deck"
	"github.com/Aric5301/bookquiz/internal/quiz"
	"github.com/Aric5301/bookquiz/internal/screen"
	sess "github.com/Aric5301/bookquiz/internal/session"
	"github.com/Aric5301/bookquiz/internal/store"
)

// mockAttemptRepo implements store.AttemptRepo for testing.
type mockAttemptRepo struct {
	starts  int
	ends    int
	answers []store.AnswerEventData
}

func (m *mockAttemptRepo) AppendAttemptStart(_ context.Context, _, _ string, _ int) error {
	m.starts++
	return nil
}
func (m *mockAttemptRepo) AppendAttemptEnd(_ context.Context, _ string, _, _, _ int) error {
	m.ends++
	return nil
}
func (m *mockAttemptRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	m.answers = append(m.answers, data)
	return nil
}
func (m *mockAttemptRepo) QueryAttemptSummaries(_ context.Context, _ int) ([]store.AttemptSummaryRecord, error) {
	return nil, nil
}
func (m *mockAttemptRepo) QueryDeckAccuracy(_ context.Context) ([]store.DeckAccuracyRecord, error) {
	return nil, nil
}
func (m *mockAttemptRepo) QueryMostMissed(_ context.Context, _ int) ([]store.MissedQuestionRecord, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testDeck() *deck.Deck {
	return &deck.Deck{
		Name:   "ch3",
		Format: "v1.0.0",
		Set: &quiz.Set{
			Topic: "Chapter 3",
			Questions: []quiz.Question{
				quiz.MultipleChoice{
					QuestionID:  "q1",
					Prompt:      "What does this print?",
					Answer:      "5",
					Distractors: []string{"-1", "0"},
					Explanation: "The counter reaches 5.",
				},
				quiz.Tracing{
					QuestionID:  "q2",
					Program:     "func main() {\n\tfmt.Println(x)\n}",
					DoesCompile: false,
					LineNumber:  2,
					Explanation: "x is undefined.",
				},
			},
		},
	}
}

func testSessionScreen() (*SessionScreen, *mockAttemptRepo) {
	repo := &mockAttemptRepo{}
	s := New(testDeck(), repo, false, nil)
	return s, repo
}

func TestSessionScreen_Title(t *testing.T) {
	s, _ := testSessionScreen()
	if s.Title() != "Chapter 3" {
		t.Errorf("Title = %q, want %q", s.Title(), "Chapter 3")
	}
}

func TestSessionScreen_Status(t *testing.T) {
	s, _ := testSessionScreen()
	if s.Status() == "" {
		t.Error("expected non-empty status")
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s, _ := testSessionScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SessionScreen)
	if !ss.state.ShowingQuitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*SessionScreen)
	if ss.state.ShowingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestSessionScreen_QuitConfirm_Yes(t *testing.T) {
	s, _ := testSessionScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))

	if cmd == nil {
		t.Error("expected a command after quit confirmation")
	}
}

func TestSessionScreen_ChoiceSubmit(t *testing.T) {
	s, repo := testSessionScreen()

	// First presented choice is the declared answer.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if ss.state.Phase != sess.PhaseFeedback {
		t.Error("expected feedback phase after submit")
	}
	if ss.state.LastVerdict == nil || !ss.state.LastVerdict.Correct {
		t.Error("expected correct verdict for the declared answer")
	}
	if len(repo.answers) != 1 {
		t.Fatalf("answer events = %d, want 1", len(repo.answers))
	}
	if repo.answers[0].QuestionID != "q1" || !repo.answers[0].Correct {
		t.Errorf("answer event = %+v", repo.answers[0])
	}
}

func TestSessionScreen_ChoiceSubmit_Incorrect(t *testing.T) {
	s, _ := testSessionScreen()

	// Move to a distractor, then submit.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if ss.state.LastVerdict == nil || ss.state.LastVerdict.Correct {
		t.Error("expected incorrect verdict for a distractor")
	}
}

func TestSessionScreen_FeedbackAdvances(t *testing.T) {
	s, _ := testSessionScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(feedbackDoneMsg{})
	ss := scr.(*SessionScreen)

	if ss.state.Index != 1 {
		t.Errorf("Index = %d, want 1", ss.state.Index)
	}
	if ss.stage != stageJudgment {
		t.Error("expected tracing question to start at the compile judgment")
	}
}

func TestSessionScreen_TracingFlow(t *testing.T) {
	s, repo := testSessionScreen()

	// Answer the first question and advance to the tracing question.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(feedbackDoneMsg{})
	ss := scr.(*SessionScreen)

	// Pick "does not compile" (second judgment choice).
	scr, _ = ss.Update(keyPress('2'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss = scr.(*SessionScreen)
	if ss.stage != stageLine {
		t.Fatal("expected line number stage after choosing does-not-compile")
	}

	ss.input.Model.SetValue("2")
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*SessionScreen)

	if ss.state.Phase != sess.PhaseFeedback {
		t.Error("expected feedback after tracing submit")
	}
	if ss.state.LastVerdict == nil || !ss.state.LastVerdict.Correct {
		t.Error("expected correct verdict for matching line number")
	}
	if len(repo.answers) != 2 {
		t.Errorf("answer events = %d, want 2", len(repo.answers))
	}
}

func TestSessionScreen_LastQuestionEnds(t *testing.T) {
	s, _ := testSessionScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(feedbackDoneMsg{})
	ss := scr.(*SessionScreen)

	// Answer the final tracing question.
	scr, _ = ss.Update(keyPress('2'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss = scr.(*SessionScreen)
	ss.input.Model.SetValue("2")
	scr, _ = ss.Update(specialKey(tea.KeyEnter))

	// Dismissing feedback on the last question must end the attempt.
	_, cmd := scr.Update(feedbackDoneMsg{})
	if cmd == nil {
		t.Fatal("expected a command ending the attempt")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(attemptEndMsg); !ok {
			t.Errorf("msg = %T, want attemptEndMsg", msg)
		}
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s, _ := testSessionScreen()
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}

func TestSessionScreen_View(t *testing.T) {
	s, _ := testSessionScreen()
	if s.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}
}
