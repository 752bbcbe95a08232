package session

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/Aric5301/bookquiz/internal/deck"
	"github.com/Aric5301/bookquiz/internal/quiz"
	"github.com/Aric5301/bookquiz/internal/router"
	"github.com/Aric5301/bookquiz/internal/screen"
	"github.com/Aric5301/bookquiz/internal/screens/summary"
	sess "github.com/Aric5301/bookquiz/internal/session"
	"github.com/Aric5301/bookquiz/internal/store"
	"github.com/Aric5301/bookquiz/internal/ui/components"
	"github.com/Aric5301/bookquiz/internal/ui/layout"
)

// traceStage tracks which part of a tracing answer is being entered.
type traceStage int

const (
	stageJudgment traceStage = iota // does it compile?
	stageLine                       // error line number
	stageStdout                     // program output
)

var judgmentChoices = []string{
	"The program compiles",
	"The program does not compile",
}

// SessionScreen runs one attempt over a single deck.
type SessionScreen struct {
	state    *sess.State
	attempts store.AttemptRepo
	shuffle  bool
	rng      *rand.Rand

	// Per-question input state, rebuilt by setupQuestion.
	choices    components.ChoiceList
	presented  []string
	judgment   components.ChoiceList
	input      components.TextInput
	stage      traceStage
	inputEmpty bool

	errMsg string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

// New creates a session screen for the given deck.
func New(d *deck.Deck, attempts store.AttemptRepo, shuffle bool, rng *rand.Rand) *SessionScreen {
	s := &SessionScreen{
		state:    sess.NewState(d, uuid.New().String()),
		attempts: attempts,
		shuffle:  shuffle,
		rng:      rng,
	}
	s.setupQuestion()
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(s.startAttempt(), tickCmd())
}

func (s *SessionScreen) Title() string {
	return s.state.Deck.Set.Topic
}

// Status shows position and running score in the header.
func (s *SessionScreen) Status() string {
	total := s.state.Deck.Set.Len()
	n := s.state.Index + 1
	if n > total {
		n = total
	}
	return fmt.Sprintf("%d/%d  ✓ %d", n, total, s.state.TotalCorrect)
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.state.ShowingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon attempt"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state.Phase == sess.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptStartedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		return s, nil

	case timerTickMsg:
		return s.handleTimerTick()

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case attemptEndMsg:
		return s.handleAttemptEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.state.Phase == sess.PhaseActive && !s.state.ShowingQuitConfirm && s.usingTextInput() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// startAttempt persists the attempt start event.
func (s *SessionScreen) startAttempt() tea.Cmd {
	return func() tea.Msg {
		err := s.attempts.AppendAttemptStart(
			context.Background(),
			s.state.AttemptID,
			s.state.Deck.Name,
			s.state.Deck.Set.Len(),
		)
		return attemptStartedMsg{Err: err}
	}
}

func (s *SessionScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.state.Phase == sess.PhaseSummary {
		return s, nil
	}
	s.state.Elapsed = time.Since(s.state.StartTime)
	return s, tickCmd()
}

func (s *SessionScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.state.Phase = sess.PhaseActive
	if !sess.Advance(s.state) {
		return s, func() tea.Msg { return attemptEndMsg{} }
	}
	s.setupQuestion()
	return s, nil
}

func (s *SessionScreen) handleAttemptEnd() (screen.Screen, tea.Cmd) {
	s.state.Phase = sess.PhaseSummary

	ctx := context.Background()
	_ = s.attempts.AppendAttemptEnd(
		ctx,
		s.state.AttemptID,
		s.state.TotalAnswered,
		s.state.TotalCorrect,
		int(s.state.Elapsed.Seconds()),
	)

	sum := sess.BuildSummary(s.state)
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(sum)}
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.state.ShowingQuitConfirm {
		switch key {
		case "y", "Y":
			s.state.ShowingQuitConfirm = false
			return s, func() tea.Msg { return attemptEndMsg{} }
		case "n", "N", "esc":
			s.state.ShowingQuitConfirm = false
			return s, nil
		}
		return s, nil
	}

	if s.state.Phase == sess.PhaseFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	if s.state.Phase != sess.PhaseActive {
		return s, nil
	}

	if key == "esc" {
		s.state.ShowingQuitConfirm = true
		return s, nil
	}

	q := sess.Current(s.state)
	if q == nil {
		return s, nil
	}

	switch q.(type) {
	case quiz.MultipleChoice:
		return s.handleChoiceKey(msg)
	case quiz.Tracing:
		return s.handleTraceKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleChoiceKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	if s.choices.Submitted {
		return s.submitChoice()
	}
	return s, cmd
}

func (s *SessionScreen) handleTraceKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.stage {
	case stageJudgment:
		var cmd tea.Cmd
		s.judgment, cmd = s.judgment.Update(msg)
		if s.judgment.Submitted {
			if s.judgment.ChosenIndex == 0 {
				s.stage = stageStdout
				s.input = components.NewTextInput("e.g. 5 (use \\n for newlines)", false, 200)
			} else {
				s.stage = stageLine
				s.input = components.NewTextInput("e.g. 3", true, 6)
			}
			return s, s.input.Init()
		}
		return s, cmd

	case stageLine:
		if msg.String() == "enter" {
			return s.submitTraceLine()
		}
	case stageStdout:
		if msg.String() == "enter" {
			return s.submitTraceStdout()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SessionScreen) submitChoice() (screen.Screen, tea.Cmd) {
	resp := quiz.ChoiceResponse{Answer: s.choices.Value()}
	return s.submit(resp)
}

func (s *SessionScreen) submitTraceLine() (screen.Screen, tea.Cmd) {
	n, err := s.input.NumericValue()
	if err != nil {
		s.inputEmpty = true
		return s, nil
	}
	return s.submit(quiz.TraceResponse{DoesCompile: false, LineNumber: n})
}

func (s *SessionScreen) submitTraceStdout() (screen.Screen, tea.Cmd) {
	// Output is compared byte for byte; typed "\n" stands for a newline
	// since the input is single-line.
	out := strings.ReplaceAll(s.input.Value(), `\n`, "\n")
	return s.submit(quiz.TraceResponse{DoesCompile: true, Stdout: out})
}

func (s *SessionScreen) submit(resp quiz.Response) (screen.Screen, tea.Cmd) {
	q := sess.Current(s.state)
	timeMs := int(time.Since(s.state.QuestionStartTime).Milliseconds())

	verdict, err := sess.HandleAnswer(s.state, resp)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	// Color the revealed choice list.
	if mc, ok := q.(quiz.MultipleChoice); ok {
		for i, c := range s.presented {
			if c == mc.Answer {
				s.choices.Reveal(i)
				break
			}
		}
	}

	_ = s.attempts.AppendAnswer(context.Background(), store.AnswerEventData{
		AttemptID:    s.state.AttemptID,
		Deck:         s.state.Deck.Name,
		QuestionID:   q.ID(),
		QuestionType: string(q.Type()),
		Correct:      verdict.Correct,
		TimeMs:       timeMs,
	})

	return s, nil
}

// setupQuestion rebuilds the input components for the current question.
func (s *SessionScreen) setupQuestion() {
	s.inputEmpty = false
	q := sess.Current(s.state)
	switch q := q.(type) {
	case quiz.MultipleChoice:
		s.presented = quiz.PresentChoices(q, quiz.PresentOptions{Shuffle: s.shuffle, Rand: s.rng})
		s.choices = components.NewChoiceList(s.presented)
	case quiz.Tracing:
		s.stage = stageJudgment
		s.judgment = components.NewChoiceList(judgmentChoices)
		s.input = components.NewTextInput("", false, 0)
	}
}

func (s *SessionScreen) usingTextInput() bool {
	_, ok := sess.Current(s.state).(quiz.Tracing)
	return ok && s.stage != stageJudgment
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
