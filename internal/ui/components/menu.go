package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Aric5301/bookquiz/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label  string
	Detail string // optional right-hand annotation
	Action func() tea.Cmd
}

// Menu is a vertical navigation menu with wrap-around selection.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.Selected = (m.Selected - 1 + len(m.Items)) % len(m.Items)
	case "down", "j":
		m.Selected = (m.Selected + 1) % len(m.Items)
	case "enter":
		item := m.Items[m.Selected]
		if item.Action != nil {
			return m, item.Action()
		}
	}

	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		if i == m.Selected {
			s += theme.Selected.Render("  ▸ " + item.Label)
		} else {
			s += theme.Unselected.Render("    " + item.Label)
		}
		if item.Detail != "" {
			s += "  " + theme.Hint.Render(item.Detail)
		}
		s += "\n"
	}
	return s
}
