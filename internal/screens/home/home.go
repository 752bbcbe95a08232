package home

import (
	"fmt"
	"math/rand"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Aric5301/bookquiz/internal/deck"
	"github.com/Aric5301/bookquiz/internal/router"
	"github.com/Aric5301/bookquiz/internal/screen"
	"github.com/Aric5301/bookquiz/internal/screens/decks"
	"github.com/Aric5301/bookquiz/internal/screens/history"
	"github.com/Aric5301/bookquiz/internal/store"
	"github.com/Aric5301/bookquiz/internal/ui/components"
	"github.com/Aric5301/bookquiz/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu      components.Menu
	deckCount int
	questions int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(loaded []*deck.Deck, attempts store.AttemptRepo, shuffle bool, rng *rand.Rand) *HomeScreen {
	questions := 0
	for _, d := range loaded {
		questions += d.Set.Len()
	}

	items := []components.MenuItem{
		{Label: "Start Quiz", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: decks.New(loaded, attempts, shuffle, rng)}
			}
		}},
		{Label: "History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(attempts)}
			}
		}},
		{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		deckCount: len(loaded),
		questions: questions,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b string
	b += "\n"

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 3).
		Render("bookquiz")
	b += lipgloss.PlaceHorizontal(width, lipgloss.Center, title) + "\n\n"

	b += lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d decks loaded · %d questions", h.deckCount, h.questions)) + "\n\n"

	b += lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	return b
}

func (h *HomeScreen) Title() string {
	return "Home"
}
