package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Aric5301/bookquiz/internal/quiz"
	sess "github.com/Aric5301/bookquiz/internal/session"
	"github.com/Aric5301/bookquiz/internal/ui/components"
	"github.com/Aric5301/bookquiz/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.state.ShowingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.state.Phase == sess.PhaseFeedback {
		return s.renderFeedback(width)
	}
	return s.renderQuestion(width)
}

func (s *SessionScreen) renderQuestion(width int) string {
	q := sess.Current(s.state)
	if q == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	total := s.state.Deck.Set.Len()
	if total > 0 {
		bar := components.NewProgressBar("", float64(s.state.Index)/float64(total), false, min(width/2, 40))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n\n")
	}

	switch q := q.(type) {
	case quiz.MultipleChoice:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(q.Prompt))
		b.WriteString("\n\n")

		if q.Code != "" {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Code.Render(q.Code)))
			b.WriteString("\n\n")
		}

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Select (1-%d) or use arrows + Enter", len(s.presented))))

	case quiz.Tracing:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render("Trace this program:"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Code.Render(q.Program)))
		b.WriteString("\n\n")

		switch s.stage {
		case stageJudgment:
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.judgment.View()))
		case stageLine:
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Render("Line of the compile error: " + s.input.View()))
			if s.inputEmpty {
				b.WriteString("\n")
				b.WriteString(lipgloss.NewStyle().
					Width(width).
					Align(lipgloss.Center).
					Foreground(theme.Error).
					Render("Enter a line number"))
			}
		case stageStdout:
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Render("Program output: " + s.input.View()))
		}
	}

	return b.String()
}

func (s *SessionScreen) renderFeedback(width int) string {
	q := sess.Current(s.state)
	verdict := s.state.LastVerdict
	if q == nil || verdict == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")

	if verdict.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(answerText(q)))
	}

	// For multiple choice, re-show the list with the answer revealed.
	if _, ok := q.(quiz.MultipleChoice); ok {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))
	}

	b.WriteString("\n\n")

	if verdict.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(verdict.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// answerText describes the declared answer for an incorrect response.
func answerText(q quiz.Question) string {
	switch q := q.(type) {
	case quiz.MultipleChoice:
		return fmt.Sprintf("Correct answer: %s", q.Answer)
	case quiz.Tracing:
		if q.DoesCompile {
			return fmt.Sprintf("The program compiles and prints %q", q.Stdout)
		}
		return fmt.Sprintf("The program does not compile (line %d)", q.LineNumber)
	}
	return ""
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End this attempt early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answered questions are kept in your history."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end attempt"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
