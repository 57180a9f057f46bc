package home

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	engine "github.com/abhisek/consultquest/internal/quiz"
	"github.com/abhisek/consultquest/internal/router"
	"github.com/abhisek/consultquest/internal/screen"
	"github.com/abhisek/consultquest/internal/ui/components"
	"github.com/abhisek/consultquest/internal/ui/layout"
)

// HomeScreen introduces the program and lets the learner pick a module.
// Menu entries are one per module, then CONTINUE and QUIT.
type HomeScreen struct {
	session     *engine.Session
	logger      *zap.Logger
	playFactory func() screen.Screen
	menu        components.Menu
	errMsg      string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. playFactory builds the question screen pushed
// after a module starts.
func New(sess *engine.Session, logger *zap.Logger, playFactory func() screen.Screen) *HomeScreen {
	h := &HomeScreen{
		session:     sess,
		logger:      logger,
		playFactory: playFactory,
	}

	var items []components.MenuItem
	for i, m := range sess.Bank().Modules() {
		item := components.MenuItem{
			Label:  m.Title,
			Action: func() tea.Cmd { return h.start(i) },
		}
		if i < 9 {
			item.Shortcut = strconv.Itoa(i + 1)
		}
		items = append(items, item)
	}
	items = append(items,
		components.MenuItem{Label: "CONTINUE", Action: h.resume},
		components.MenuItem{Label: "QUIT", Shortcut: "q", Action: func() tea.Cmd { return tea.Quit }},
	)
	h.menu = components.NewMenu(items)
	h.syncMenu()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "1-9", Description: "Start module"},
		{Key: "Q", Description: "Quit"},
		{Key: "Enter", Description: "Select"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	h.syncMenu()

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// start begins module i and opens the question screen.
func (h *HomeScreen) start(i int) tea.Cmd {
	if err := h.session.StartModule(i); err != nil {
		h.errMsg = err.Error()
		h.logger.Warn("start module failed", zap.Int("module_index", i), zap.Error(err))
		return nil
	}
	h.errMsg = ""

	m := h.session.CurrentModule()
	h.logger.Info("module started",
		zap.Int("module_index", i),
		zap.String("module", m.ID),
		zap.Int("questions", len(m.Questions)),
		zap.Int("score", h.session.Score()),
	)

	next := h.playFactory()
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

// resume returns to a module already in progress.
func (h *HomeScreen) resume() tea.Cmd {
	if h.session.Phase() != engine.PhasePlaying {
		return nil
	}
	next := h.playFactory()
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (h *HomeScreen) moduleCount() int {
	return h.session.Bank().ModuleCount()
}

// syncMenu enables CONTINUE only while a module is in progress.
func (h *HomeScreen) syncMenu() {
	h.menu.SetDisabled(h.moduleCount(), h.session.Phase() != engine.PhasePlaying)
}

func (h *HomeScreen) mascot() MascotVariant {
	switch h.session.Phase() {
	case engine.PhasePlaying:
		return MascotAlert
	case engine.PhaseFinished:
		return MascotCelebrating
	default:
		return MascotIdle
	}
}

func (h *HomeScreen) View(width, height int) string {
	h.syncMenu()

	compact := layout.IsCompact(width, height)

	cw := components.ContentWidth(width)
	b := h.session.Bank()

	var sections []string
	sections = append(sections, renderTitle(b.Title(), b.TotalQuestions(), cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.mascot(), cw))
	}

	sections = append(sections,
		renderModules(b.Modules(), h.menu.Selected, cw, compact),
		renderLegend(cw),
		renderActions(h.menu, h.moduleCount(), cw),
	)

	if h.session.Phase() == engine.PhasePlaying {
		m := h.session.CurrentModule()
		sections = append(sections, renderNote(fmt.Sprintf(
			"In progress: %s, question %d/%d", m.Title, h.session.QuestionIndex()+1, len(m.Questions)), cw))
	}
	if h.errMsg != "" {
		sections = append(sections, renderError(h.errMsg, cw))
	}

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return components.CabinetFrame(strings.Join(sections, sep), width, height)
}
