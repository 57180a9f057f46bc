package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/consultquest/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title    string
	initRan  bool
	received []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.received = append(s.received, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

// newStack returns a router holding screens titled titles, root first.
func newStack(titles ...string) (*Router, []*stubScreen) {
	screens := make([]*stubScreen, len(titles))
	for i, t := range titles {
		screens[i] = &stubScreen{title: t}
	}
	r := New(screens[0])
	for _, s := range screens[1:] {
		r.Push(s)
	}
	return r, screens
}

func TestPushRunsInit(t *testing.T) {
	r, screens := newStack("Home", "Kickoff")

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active() != screens[1] {
		t.Errorf("expected Kickoff active, got %q", r.Active().Title())
	}
	if !screens[1].initRan {
		t.Error("expected Init() to run on pushed screen")
	}
	if screens[0].initRan {
		t.Error("root Init() belongs to the program, not the router")
	}
}

func TestPopKeepsRoot(t *testing.T) {
	r, screens := newStack("Home", "Kickoff")

	r.Pop()
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active() != screens[0] {
		t.Errorf("expected Home active, got %q", r.Active().Title())
	}
}

func TestPopToRoot(t *testing.T) {
	r, screens := newStack("Home", "Kickoff", "Certificate")

	r.Update(PopToRootMsg{})

	if r.Depth() != 1 || r.Active() != screens[0] {
		t.Errorf("expected only Home left, got depth %d active %q", r.Depth(), r.Active().Title())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r, _ := newStack("Home", "Kickoff")

	cert := &stubScreen{title: "Certificate"}
	r.Update(ReplaceScreenMsg{Screen: cert})

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active() != cert {
		t.Errorf("expected Certificate active, got %q", r.Active().Title())
	}
	if !cert.initRan {
		t.Error("expected Init() to run on replacement screen")
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "Home" {
		t.Errorf("going back from the replacement should reach Home, got %q", r.Active().Title())
	}
}

func TestPushAndPopMessages(t *testing.T) {
	r, _ := newStack("Home")

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "Kickoff"}})
	if r.Depth() != 2 {
		t.Fatalf("expected depth 2 after push, got %d", r.Depth())
	}
	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop, got %d", r.Depth())
	}
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	r, screens := newStack("Home", "Kickoff")

	key := tea.KeyPressMsg{Code: '1', Text: "1"}
	r.Update(key)

	if len(screens[1].received) != 1 {
		t.Errorf("active screen should get the key, got %d messages", len(screens[1].received))
	}
	if len(screens[0].received) != 0 {
		t.Error("screens below the top should not receive messages")
	}
}

func TestNavigationMessagesNotForwarded(t *testing.T) {
	r, screens := newStack("Home", "Kickoff")

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "Certificate"}})
	if len(screens[1].received) != 0 {
		t.Error("navigation messages are handled by the router")
	}
}

func TestBreadcrumb(t *testing.T) {
	r, _ := newStack("", "Home", "Kickoff")

	if got := r.Breadcrumb(); got != "Home › Kickoff" {
		t.Errorf("expected %q, got %q", "Home › Kickoff", got)
	}
}

func TestView(t *testing.T) {
	r, _ := newStack("Home", "Kickoff")
	if got := r.View(80, 24); got != "Kickoff" {
		t.Errorf("expected active screen view, got %q", got)
	}
}
