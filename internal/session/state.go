package session

import (
	"time"

	"github.com/Aric5301/bookquiz/internal/deck"
	"github.com/Aric5301/bookquiz/internal/quiz"
)

// Phase represents the current phase of a quiz attempt.
type Phase int

const (
	PhaseActive   Phase = iota // Serving questions
	PhaseFeedback              // Showing the verdict and context
	PhaseSummary               // Attempt finished, summary visible
)

// Answer is one graded submission in the attempt's transient response record.
type Answer struct {
	Response quiz.Response
	Verdict  quiz.Verdict
}

// State tracks the runtime state of one quiz attempt. The deck is shared
// read-only across attempts; everything else is per-attempt and discarded
// when the summary is dismissed.
type State struct {
	// AttemptID is the UUID for this attempt.
	AttemptID string

	// Deck is the deck being attempted.
	Deck *deck.Deck

	// Index is the position of the current question in presentation order.
	Index int

	// Responses maps question id to the graded submission. It exists only
	// for the duration of this attempt.
	Responses map[string]Answer

	// TotalAnswered and TotalCorrect count graded submissions.
	TotalAnswered int
	TotalCorrect  int

	// Per-variant tallies for the summary screen.
	ChoiceTotal    int
	ChoiceCorrect  int
	TracingTotal   int
	TracingCorrect int

	// LastVerdict is the verdict for the most recent submission (nil before
	// the first answer).
	LastVerdict *quiz.Verdict

	// StartTime is when the attempt began; Elapsed is maintained by the UI
	// timer tick.
	StartTime time.Time
	Elapsed   time.Duration

	// QuestionStartTime tracks when the current question was first shown.
	QuestionStartTime time.Time

	// Phase is the current attempt phase.
	Phase Phase

	// ShowingQuitConfirm is true while the quit dialog is displayed.
	ShowingQuitConfirm bool
}

// NewState creates attempt state positioned at the first question.
func NewState(d *deck.Deck, attemptID string) *State {
	now := time.Now()
	return &State{
		AttemptID:         attemptID,
		Deck:              d,
		Responses:         make(map[string]Answer, d.Set.Len()),
		StartTime:         now,
		QuestionStartTime: now,
		Phase:             PhaseActive,
	}
}

// Current returns the active question, or nil once the set is exhausted.
func Current(s *State) quiz.Question {
	if s.Index < 0 || s.Index >= s.Deck.Set.Len() {
		return nil
	}
	return s.Deck.Set.Questions[s.Index]
}

// Advance moves to the next question in presentation order. It returns
// false when the set is exhausted.
func Advance(s *State) bool {
	if s.Index+1 >= s.Deck.Set.Len() {
		return false
	}
	s.Index++
	s.QuestionStartTime = time.Now()
	return true
}
