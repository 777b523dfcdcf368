package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Mohamad-Mousa/readiness/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface for screens that provide
// custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens that put a status
// string (e.g. progress) in the header.
type StatusProvider interface {
	Status() string
}

// Refresher is an optional interface for screens whose content can go
// stale while covered by another screen. The router calls Refresh when
// a pop re-surfaces the screen.
type Refresher interface {
	Refresh() tea.Cmd
}
