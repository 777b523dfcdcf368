package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Mohamad-Mousa/readiness/internal/ui/theme"
)

// ChoiceList is a single-select option list, used for radio questions
// and menus. The highlighted option moves with the arrow keys; enter
// picks it.
type ChoiceList struct {
	Options []string

	// Cursor is the highlighted index.
	Cursor int

	// Chosen is the picked index, or -1 while nothing is picked.
	Chosen int
}

// NewChoiceList creates a choice list with nothing picked. When chosen
// matches an option, the highlight starts there (used when revisiting an
// already-answered radio question).
func NewChoiceList(options []string, chosen string) ChoiceList {
	c := ChoiceList{Options: options, Chosen: -1}
	for i, o := range options {
		if o == chosen {
			c.Cursor = i
			c.Chosen = i
			break
		}
	}
	return c
}

// Update handles keyboard navigation and selection.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter", " ":
		c.Chosen = c.Cursor
	}

	return c, nil
}

// Value returns the picked option, or "" while nothing is picked.
func (c ChoiceList) Value() string {
	if c.Chosen < 0 || c.Chosen >= len(c.Options) {
		return ""
	}
	return c.Options[c.Chosen]
}

// View renders the list.
func (c ChoiceList) View() string {
	s := ""
	for i, opt := range c.Options {
		marker := "( )"
		if i == c.Chosen {
			marker = "(•)"
		}
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s", prefix, marker, opt)
		switch {
		case i == c.Cursor:
			s += theme.Selected.Render(line) + "\n"
		case i == c.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Success).Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
