package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Mohamad-Mousa/readiness/internal/screen"
)

type stubScreen struct {
	name   string
	inited bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(width, height int) string               { return s.name }
func (s *stubScreen) Title() string                               { return s.name }

func TestPushAndPop(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)

	if r.Depth() != 1 || r.Active() != home {
		t.Fatalf("initial stack: depth=%d active=%v", r.Depth(), r.Active())
	}

	next := &stubScreen{name: "capture"}
	r.Push(next)
	if r.Active() != next {
		t.Errorf("active = %v, want the pushed screen", r.Active())
	}
	if !next.inited {
		t.Error("Push must call the screen's Init")
	}

	r.Pop()
	if r.Active() != home {
		t.Errorf("active after pop = %v, want home", r.Active())
	}

	// The last screen never pops.
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth = %d, the root screen must stay", r.Depth())
	}
}

type refreshingScreen struct {
	stubScreen
	refreshed bool
}

func (s *refreshingScreen) Refresh() tea.Cmd {
	s.refreshed = true
	return func() tea.Msg { return nil }
}

func TestPopRefreshesRevealedScreen(t *testing.T) {
	home := &refreshingScreen{stubScreen: stubScreen{name: "home"}}
	r := New(home)
	r.Push(&stubScreen{name: "capture"})

	cmd := r.Pop()
	if !home.refreshed {
		t.Error("Pop must call Refresh on the revealed screen")
	}
	if cmd == nil {
		t.Error("Pop should return the revealed screen's refresh command")
	}

	// The root never pops, so it is never re-refreshed either.
	home.refreshed = false
	if r.Pop() != nil || home.refreshed {
		t.Error("popping the root screen must be a no-op")
	}
}

func TestNavigationMessages(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)

	next := &stubScreen{name: "capture"}
	r.Update(PushScreenMsg{Screen: next})
	if r.Active() != next {
		t.Errorf("PushScreenMsg did not change the active screen")
	}

	r.Update(PopScreenMsg{})
	if r.Active() != home {
		t.Errorf("PopScreenMsg did not restore the previous screen")
	}
}
