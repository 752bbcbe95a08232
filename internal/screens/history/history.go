package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Aric5301/bookquiz/internal/router"
	"github.com/Aric5301/bookquiz/internal/screen"
	"github.com/Aric5301/bookquiz/internal/store"
	"github.com/Aric5301/bookquiz/internal/ui/layout"
	"github.com/Aric5301/bookquiz/internal/ui/theme"
)

type historyLoadedMsg struct {
	Attempts []store.AttemptSummaryRecord
	Accuracy []store.DeckAccuracyRecord
	Err      error
}

// HistoryScreen displays past attempts and per-deck accuracy.
type HistoryScreen struct {
	attempts store.AttemptRepo
	rows     []store.AttemptSummaryRecord
	accuracy []store.DeckAccuracyRecord
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(attempts store.AttemptRepo) *HistoryScreen {
	return &HistoryScreen{attempts: attempts}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		rows, err := s.attempts.QueryAttemptSummaries(ctx, 50)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		accuracy, err := s.attempts.QueryDeckAccuracy(ctx)
		if err != nil {
			return historyLoadedMsg{Attempts: rows}
		}

		return historyLoadedMsg{Attempts: rows, Accuracy: accuracy}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.rows = msg.Attempts
			s.accuracy = msg.Accuracy
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.rows)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.rows) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Pick a deck and start one!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, row := range s.rows {
		dateStr := row.StartedAt.Local().Format("Jan 02, 2006")
		mins := row.DurationSecs / 60
		secs := row.DurationSecs % 60
		durationStr := fmt.Sprintf("%d:%02d", mins, secs)

		var accuracy float64
		if row.Answered > 0 {
			accuracy = float64(row.Correct) / float64(row.Answered) * 100
		}

		status := ""
		if !row.Completed {
			status = "  (abandoned)"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %s  %d/%d answered  %.0f%% accuracy%s",
			prefix, dateStr, durationStr, row.Deck, row.Answered, row.Questions, accuracy, status)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if len(s.accuracy) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Accuracy by deck")))
		b.WriteString("\n")
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 50)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")

		for _, rec := range s.accuracy {
			line := fmt.Sprintf("  %s    %d answered    %.0f%%",
				rec.Deck, rec.Answered, rec.Accuracy()*100)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
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
