package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Aric5301/bookquiz/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Push(&stubScreen{title: "second"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after popping bottom screen, got %d", r.Depth())
	}
}

func TestPopToRoot(t *testing.T) {
	s1 := &stubScreen{title: "home"}
	r := New(s1)

	r.Push(&stubScreen{title: "decks"})
	r.Push(&stubScreen{title: "attempt"})
	r.Push(&stubScreen{title: "summary"})

	r.Update(PopToRootMsg{})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
}

func TestUpdateRoutesNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "first"})

	s2 := &stubScreen{title: "second"}
	r.Update(PushScreenMsg{Screen: s2})
	if r.Active().Title() != "second" {
		t.Errorf("push via Update failed, active = %q", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "first" {
		t.Errorf("pop via Update failed, active = %q", r.Active().Title())
	}
}
