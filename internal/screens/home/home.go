package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Mohamad-Mousa/readiness/internal/assessment"
	"github.com/Mohamad-Mousa/readiness/internal/catalog"
	"github.com/Mohamad-Mousa/readiness/internal/router"
	"github.com/Mohamad-Mousa/readiness/internal/screen"
	"github.com/Mohamad-Mousa/readiness/internal/screens/capture"
	"github.com/Mohamad-Mousa/readiness/internal/store"
	"github.com/Mohamad-Mousa/readiness/internal/ui/layout"
	"github.com/Mohamad-Mousa/readiness/internal/ui/theme"
)

// entry is one selectable row: start a fresh assessment for a domain,
// or resume a saved draft.
type entry struct {
	label    string
	domainID string
	resumeID string
}

type savedListMsg struct {
	Saved []assessment.Summary
	Err   error
}

// Screen is the landing menu: the catalog's domains plus any saved
// drafts from the local store.
type Screen struct {
	cat  *catalog.Catalog
	repo store.AssessmentRepo

	entries []entry
	cursor  int
	errMsg  string
}

var (
	_ screen.Screen    = (*Screen)(nil)
	_ screen.Refresher = (*Screen)(nil)
)

// New creates the home screen.
func New(cat *catalog.Catalog, repo store.AssessmentRepo) *Screen {
	s := &Screen{cat: cat, repo: repo}
	s.rebuild(nil)
	return s
}

// Init fetches the saved-assessment list.
func (s *Screen) Init() tea.Cmd {
	return s.loadSavedCmd()
}

// Refresh reloads the saved-assessment list. The router calls it when a
// capture session pops back to home, so drafts saved or completed there
// show up without a manual reload.
func (s *Screen) Refresh() tea.Cmd {
	return s.loadSavedCmd()
}

func (s *Screen) loadSavedCmd() tea.Cmd {
	return func() tea.Msg {
		saved, err := s.repo.List(context.Background())
		return savedListMsg{Saved: saved, Err: err}
	}
}

// Title implements screen.Screen.
func (s *Screen) Title() string { return "Home" }

// Update implements screen.Screen.
func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedListMsg:
		if msg.Err != nil {
			s.errMsg = "Could not list saved assessments: " + msg.Err.Error()
			return s, nil
		}
		s.rebuild(msg.Saved)
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.entries)-1 {
				s.cursor++
			}
		case "enter":
			if s.cursor < len(s.entries) {
				e := s.entries[s.cursor]
				next := capture.New(s.cat, s.repo, e.domainID, e.resumeID)
				return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
			}
		case "r":
			return s, s.Init()
		}
	}
	return s, nil
}

// rebuild recomputes the menu rows from the catalog and the saved list.
func (s *Screen) rebuild(saved []assessment.Summary) {
	s.entries = s.entries[:0]
	for _, d := range s.cat.Domains {
		s.entries = append(s.entries, entry{
			label:    "Start: " + d.Title,
			domainID: d.ID,
		})
	}
	for _, sm := range saved {
		if sm.Status == assessment.StatusCompleted {
			continue
		}
		title := sm.Title
		if title == "" {
			title = "(untitled)"
		}
		s.entries = append(s.entries, entry{
			label:    fmt.Sprintf("Resume: %s (%s)", title, sm.UpdatedAt.Format("Jan 2 15:04")),
			domainID: sm.DomainID,
			resumeID: sm.ID,
		})
	}
	if s.cursor >= len(s.entries) {
		s.cursor = 0
	}
}

// View implements screen.Screen.
func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n  " + theme.Title.Render("Readiness Assessments") + "\n")
	b.WriteString("  " + theme.Subtitle.Render("Pick a domain to assess, or resume a draft.") + "\n\n")

	if len(s.entries) == 0 {
		b.WriteString("  " + theme.Hint.Render("No domains available.") + "\n")
	}
	for i, e := range s.entries {
		if i == s.cursor {
			b.WriteString("  " + theme.Selected.Render("▸ "+e.label) + "\n")
		} else {
			b.WriteString("    " + theme.Unselected.Render(e.label) + "\n")
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg) + "\n")
	}
	return b.String()
}

// KeyHints implements screen.KeyHintProvider.
func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "navigate"},
		{Key: "enter", Description: "open"},
		{Key: "r", Description: "refresh"},
		{Key: "ctrl+c", Description: "quit"},
	}
}
