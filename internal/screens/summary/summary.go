package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Aric5301/bookquiz/internal/quiz"
	"github.com/Aric5301/bookquiz/internal/router"
	"github.com/Aric5301/bookquiz/internal/screen"
	"github.com/Aric5301/bookquiz/internal/session"
	"github.com/Aric5301/bookquiz/internal/ui/layout"
	"github.com/Aric5301/bookquiz/internal/ui/theme"
)

// SummaryScreen displays the attempt summary.
type SummaryScreen struct {
	summary *session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Attempt Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// Unwind past the finished session screen too.
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz complete!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s  ·  %d:%02d", sum.Topic, mins, secs)))
	b.WriteString("\n\n")

	accuracy := fmt.Sprintf("%.0f%%", sum.Accuracy*100)
	statsLine := fmt.Sprintf("Answered: %d/%d        Correct: %d        Accuracy: %s",
		sum.TotalAnswered, sum.TotalQuestions, sum.TotalCorrect, accuracy)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Per-variant breakdown.
	b.WriteString(layout.Centered(width,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("By question type")))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, divider))
	b.WriteString("\n\n")

	if sum.ChoiceTotal > 0 {
		b.WriteString(layout.Centered(width,
			lipgloss.NewStyle().Foreground(theme.Text).
				Render(fmt.Sprintf("  Multiple choice    %d/%d correct", sum.ChoiceCorrect, sum.ChoiceTotal))))
		b.WriteString("\n")
	}
	if sum.TracingTotal > 0 {
		b.WriteString(layout.Centered(width,
			lipgloss.NewStyle().Foreground(theme.Text).
				Render(fmt.Sprintf("  Tracing            %d/%d correct", sum.TracingCorrect, sum.TracingTotal))))
		b.WriteString("\n")
	}

	// Missed questions, in presentation order.
	if len(sum.Missed) > 0 {
		b.WriteString("\n")
		b.WriteString(layout.Centered(width,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Worth revisiting")))
		b.WriteString("\n")
		b.WriteString(layout.Centered(width, divider))
		b.WriteString("\n\n")

		for _, m := range sum.Missed {
			tag := "choice"
			if m.Type == quiz.TypeTracing {
				tag = "trace"
			}
			line := fmt.Sprintf("  ✗ [%s] %s", tag, m.Prompt)
			b.WriteString(layout.Centered(width,
				lipgloss.NewStyle().Foreground(theme.Error).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
