package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// AnswerInput wraps bubbles/textinput for text and number questions.
// In numeric mode it only lets digits, sign, and decimal point through;
// full parse validation stays with the answer store.
type AnswerInput struct {
	Model       textinput.Model
	NumericOnly bool
}

// NewAnswerInput creates a focused input preloaded with the current
// answer.
func NewAnswerInput(placeholder, value string, numericOnly bool) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.Focus()

	return AnswerInput{
		Model:       ti,
		NumericOnly: numericOnly,
	}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if a.NumericOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if len(key) == 1 && !numericRune(key[0]) {
				return a, nil
			}
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input.
func (a AnswerInput) View() string {
	return a.Model.View()
}

// Value returns the current input value.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

func numericRune(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.' || b == '-'
}
