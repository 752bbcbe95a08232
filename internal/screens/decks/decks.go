package decks

import (
	"fmt"
	"math/rand"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Aric5301/bookquiz/internal/deck"
	"github.com/Aric5301/bookquiz/internal/router"
	"github.com/Aric5301/bookquiz/internal/screen"
	sessionscreen "github.com/Aric5301/bookquiz/internal/screens/session"
	"github.com/Aric5301/bookquiz/internal/store"
	"github.com/Aric5301/bookquiz/internal/ui/components"
	"github.com/Aric5301/bookquiz/internal/ui/layout"
	"github.com/Aric5301/bookquiz/internal/ui/theme"
)

// DecksScreen lets the learner pick a deck to attempt.
type DecksScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*DecksScreen)(nil)
var _ screen.KeyHintProvider = (*DecksScreen)(nil)

// New creates the deck picker.
func New(loaded []*deck.Deck, attempts store.AttemptRepo, shuffle bool, rng *rand.Rand) *DecksScreen {
	items := make([]components.MenuItem, 0, len(loaded))
	for _, d := range loaded {
		d := d
		n := d.Set.Len()
		detail := fmt.Sprintf("%d questions", n)
		if n == 1 {
			detail = "1 question"
		}
		items = append(items, components.MenuItem{
			Label:  d.Set.Topic,
			Detail: detail,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: sessionscreen.New(d, attempts, shuffle, rng),
					}
				}
			},
		})
	}
	return &DecksScreen{menu: components.NewMenu(items)}
}

func (s *DecksScreen) Init() tea.Cmd {
	return nil
}

func (s *DecksScreen) Title() string {
	return "Decks"
}

func (s *DecksScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DecksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *DecksScreen) View(width, height int) string {
	var b string
	b += "\n"
	b += lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Pick a deck to quiz yourself on") + "\n\n"
	b += lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View())
	return b
}
