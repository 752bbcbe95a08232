package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/Aric5301/bookquiz/internal/ui/theme"
)

// ChoiceList is a selector over a fixed set of answer choices. It tracks
// the cursor and the submitted choice only; which choice was correct is
// supplied afterwards via Reveal, once the response has been graded.
type ChoiceList struct {
	Choices      []string
	Selected     int
	Submitted    bool
	ChosenIndex  int
	correctIndex int
	revealed     bool
}

// NewChoiceList creates a choice list over the given choices.
func NewChoiceList(choices []string) ChoiceList {
	return ChoiceList{
		Choices:      choices,
		ChosenIndex:  -1,
		correctIndex: -1,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and submission.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Choices)-1 {
			c.Selected++
		}
	case "enter":
		c.Submitted = true
		c.ChosenIndex = c.Selected
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			n := int(key[0] - '1')
			if n < len(c.Choices) {
				c.Selected = n
			}
		}
	}

	return c, nil
}

// Reveal marks the correct choice so the next View colors the outcome.
func (c *ChoiceList) Reveal(correctIndex int) {
	c.revealed = true
	c.correctIndex = correctIndex
}

// Value returns the text of the submitted choice, or "" before submission.
func (c ChoiceList) Value() string {
	if c.ChosenIndex < 0 || c.ChosenIndex >= len(c.Choices) {
		return ""
	}
	return c.Choices[c.ChosenIndex]
}

// View renders the choice list.
func (c ChoiceList) View() string {
	var s string
	for i, choice := range c.Choices {
		prefix := "  "
		if i == c.Selected && !c.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, choice)

		switch {
		case c.revealed && i == c.correctIndex:
			s += theme.Correct.Render(line) + "\n"
		case c.revealed && i == c.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case c.revealed:
			s += theme.Hint.Render(line) + "\n"
		case i == c.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
