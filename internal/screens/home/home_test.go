package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/consultquest/internal/bank"
	engine "github.com/abhisek/consultquest/internal/quiz"
	"github.com/abhisek/consultquest/internal/router"
	"github.com/abhisek/consultquest/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "quiz" }
func (s *stubScreen) Title() string                           { return "Quiz" }

func testBank() *bank.Bank {
	question := func(id string) bank.Question {
		return bank.Question{
			ID:     id,
			Prompt: "What now?",
			Options: []bank.Option{
				{Text: "listen", TrustDelta: 10, TeamDelta: 10},
				{Text: "ignore", TrustDelta: -10, TeamDelta: -10},
			},
		}
	}
	return bank.New("Test Journey", "v1.0.0", []bank.Module{
		{ID: "kickoff", Title: "Kickoff", Intro: "Meet the client.", Questions: []bank.Question{question("k1"), question("k2")}},
		{ID: "delivery", Title: "Delivery", Questions: []bank.Question{question("d1")}},
	})
}

func newTestHome(t *testing.T) (*HomeScreen, *engine.Session, *observer.ObservedLogs, *int) {
	t.Helper()
	sess, err := engine.NewSession(testBank(), engine.Identity{})
	require.NoError(t, err)

	core, logs := observer.New(zapcore.InfoLevel)
	pushed := 0
	h := New(sess, zap.New(core), func() screen.Screen {
		pushed++
		return &stubScreen{}
	})
	return h, sess, logs, &pushed
}

func TestMenuItems(t *testing.T) {
	h, _, _, _ := newTestHome(t)

	require.Len(t, h.menu.Items, 4)
	assert.Equal(t, "Kickoff", h.menu.Items[0].Label)
	assert.Equal(t, "Delivery", h.menu.Items[1].Label)
	assert.Equal(t, "CONTINUE", h.menu.Items[2].Label)
	assert.Equal(t, "QUIT", h.menu.Items[3].Label)
	assert.True(t, h.menu.Items[2].Disabled, "nothing to continue before a module starts")
}

func TestEnterStartsSelectedModule(t *testing.T) {
	h, sess, logs, pushed := newTestHome(t)

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	_, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg")
	assert.Equal(t, 1, *pushed)
	assert.Equal(t, engine.PhasePlaying, sess.Phase())
	assert.Equal(t, 1, sess.ModuleIndex())

	entries := logs.FilterMessage("module started").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "delivery", entries[0].ContextMap()["module"])
}

func TestNumberKeyStartsModule(t *testing.T) {
	h, sess, _, pushed := newTestHome(t)

	_, cmd := h.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PushScreenMsg{}, cmd())
	assert.Equal(t, 1, *pushed)
	assert.Equal(t, 0, sess.ModuleIndex())
	assert.Equal(t, engine.InitialScore, sess.Score())
}

func TestNumberKeyBeyondModulesIgnored(t *testing.T) {
	h, sess, _, pushed := newTestHome(t)

	_, cmd := h.Update(tea.KeyPressMsg{Code: '5', Text: "5"})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, *pushed)
	assert.Equal(t, engine.PhaseIntro, sess.Phase())
}

func TestContinueEnabledWhilePlaying(t *testing.T) {
	h, sess, _, pushed := newTestHome(t)
	require.NoError(t, sess.StartModule(0))

	h.Update(nil)
	assert.False(t, h.menu.Items[2].Disabled)

	h.menu.Selected = 2
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PushScreenMsg{}, cmd())
	assert.Equal(t, 1, *pushed)
	assert.Equal(t, 0, sess.QuestionIndex(), "continuing must not restart the module")
}

func TestContinueDisabledAfterReset(t *testing.T) {
	h, sess, _, _ := newTestHome(t)
	require.NoError(t, sess.StartModule(0))
	h.Update(nil)
	h.menu.Selected = 2

	sess.Reset()
	h.Update(nil)

	assert.True(t, h.menu.Items[2].Disabled)
	assert.Equal(t, 0, h.menu.Selected)
}

func TestQuitItem(t *testing.T) {
	h, _, _, _ := newTestHome(t)

	h.menu.Selected = 3
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestQuitShortcut(t *testing.T) {
	h, _, _, _ := newTestHome(t)

	_, cmd := h.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 3, h.menu.Selected)
}

func TestViewListsModules(t *testing.T) {
	h, sess, _, _ := newTestHome(t)

	view := h.View(100, 40)
	assert.Contains(t, view, "TEST JOURNEY")
	assert.Contains(t, view, "Kickoff")
	assert.Contains(t, view, "Delivery")
	assert.Contains(t, view, "2 questions")
	assert.NotContains(t, view, "In progress")

	require.NoError(t, sess.StartModule(1))
	assert.Contains(t, h.View(100, 40), "In progress: Delivery, question 1/1")
}
