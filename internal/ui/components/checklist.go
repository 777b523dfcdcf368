package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/Mohamad-Mousa/readiness/internal/ui/theme"
)

// CheckList is a multi-select option list for checkbox questions.
// Space toggles the highlighted option; any number may be checked.
type CheckList struct {
	Options []string
	Cursor  int

	checked map[string]bool

	// Toggled is set after an update that flipped an option, so the
	// host can mirror the change into the answer store.
	Toggled string
}

// NewCheckList creates a check list with the given options pre-checked.
func NewCheckList(options []string, checked []string) CheckList {
	m := make(map[string]bool, len(checked))
	for _, c := range checked {
		m[c] = true
	}
	return CheckList{Options: options, checked: m}
}

// Update handles keyboard navigation and toggling.
func (c CheckList) Update(msg tea.Msg) (CheckList, tea.Cmd) {
	c.Toggled = ""

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
	case " ", "enter":
		if c.Cursor < len(c.Options) {
			opt := c.Options[c.Cursor]
			c.checked[opt] = !c.checked[opt]
			c.Toggled = opt
		}
	}

	return c, nil
}

// View renders the list.
func (c CheckList) View() string {
	s := ""
	for i, opt := range c.Options {
		marker := "[ ]"
		if c.checked[opt] {
			marker = "[x]"
		}
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s", prefix, marker, opt)
		switch {
		case i == c.Cursor:
			s += theme.Selected.Render(line) + "\n"
		case c.checked[opt]:
			s += theme.Answered.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
