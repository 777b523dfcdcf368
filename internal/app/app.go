package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/Mohamad-Mousa/readiness/internal/catalog"
	"github.com/Mohamad-Mousa/readiness/internal/router"
	"github.com/Mohamad-Mousa/readiness/internal/screen"
	"github.com/Mohamad-Mousa/readiness/internal/screens/home"
	"github.com/Mohamad-Mousa/readiness/internal/store"
	"github.com/Mohamad-Mousa/readiness/internal/ui/layout"
)

// Options carries the wired dependencies for the TUI.
type Options struct {
	Catalog *catalog.Catalog
	Repo    store.AssessmentRepo
}

// Model is the root bubbletea model: it owns the screen router and the
// terminal dimensions, and frames the active screen with the shared
// header and footer.
type Model struct {
	router *router.Router
	width  int
	height int
}

// New creates the root model with the home screen on the stack.
func New(opts Options) Model {
	return Model{
		router: router.New(home.New(opts.Catalog, opts.Repo)),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.router.Active().Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// esc is screen business (the capture screen guards unsaved
		// changes behind it); only ctrl+c exits unconditionally.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m, m.router.Update(msg)
}

// View implements tea.Model.
func (m Model) View() tea.View {
	v := tea.NewView(m.viewContent())
	v.AltScreen = true
	return v
}

func (m Model) viewContent() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()

	status := ""
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(active.Title(), status, m.width)

	var hints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = hp.KeyHints()
	}
	footer := layout.RenderFooter(hints, m.width)

	content := m.router.View(m.width, m.height-6)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the TUI and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
