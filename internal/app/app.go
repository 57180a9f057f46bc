package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/consultquest/internal/bank"
	cert "github.com/abhisek/consultquest/internal/certificate"
	engine "github.com/abhisek/consultquest/internal/quiz"
	"github.com/abhisek/consultquest/internal/router"
	"github.com/abhisek/consultquest/internal/screen"
	certscreen "github.com/abhisek/consultquest/internal/screens/certificate"
	"github.com/abhisek/consultquest/internal/screens/home"
	quizscreen "github.com/abhisek/consultquest/internal/screens/quiz"
	"github.com/abhisek/consultquest/internal/screens/welcome"
	"github.com/abhisek/consultquest/internal/ui/components"
	"github.com/abhisek/consultquest/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Bank     *bank.Bank
	Shuffler engine.Shuffler
	Exporter cert.Exporter
	Logger   *zap.Logger

	// Recipient pre-fills the name on the certificate.
	Recipient string

	// StartModule is a 1-based module to open immediately. Zero shows the
	// welcome screen instead.
	StartModule int

	// Now stamps certificates. Defaults to time.Now.
	Now func() time.Time
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *engine.Session
	logger  *zap.Logger
	width   int
	height  int
}

// newAppModel wires the session and screens described by opts.
func newAppModel(opts Options) (AppModel, error) {
	if opts.Bank == nil {
		return AppModel{}, fmt.Errorf("no question bank")
	}
	if opts.Exporter == nil {
		return AppModel{}, fmt.Errorf("no certificate exporter")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	sess, err := engine.NewSession(opts.Bank, opts.Shuffler)
	if err != nil {
		return AppModel{}, fmt.Errorf("create session: %w", err)
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	finishFactory := func(res engine.Result) screen.Screen {
		return certscreen.New(sess, res, opts.Exporter, logger, opts.Recipient, now())
	}
	playFactory := func() screen.Screen {
		return quizscreen.New(sess, logger, finishFactory)
	}
	homeFactory := func() screen.Screen {
		return home.New(sess, logger, playFactory)
	}

	logger.Info("app started",
		zap.String("bank", opts.Bank.Title()),
		zap.String("bank_version", opts.Bank.Version()),
		zap.Int("modules", opts.Bank.ModuleCount()),
		zap.Int("questions", opts.Bank.TotalQuestions()),
	)

	m := AppModel{session: sess, logger: logger}

	if opts.StartModule == 0 {
		m.router = router.New(welcome.New(opts.Bank.Title(), homeFactory))
		return m, nil
	}

	if err := sess.StartModule(opts.StartModule - 1); err != nil {
		return AppModel{}, fmt.Errorf("module %d: %w", opts.StartModule, err)
	}
	logger.Info("module started",
		zap.Int("module_index", opts.StartModule-1),
		zap.String("module", sess.CurrentModule().ID),
		zap.Int("questions", len(sess.CurrentModule().Questions)),
		zap.Int("score", sess.Score()),
	)
	m.router = router.New(homeFactory())
	m.router.Push(playFactory())
	return m, nil
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.logger.Info("app quit", zap.String("phase", m.session.Phase().String()), zap.Int("score", m.session.Score()))
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.InputCapturer); ok && c.CapturingInput() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// status is the header text on the right: the live score once a run is
// underway.
func (m AppModel) status() string {
	switch m.session.Phase() {
	case engine.PhasePlaying, engine.PhaseFinished:
		return components.ScoreStatus(m.session.Score())
	default:
		return ""
	}
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		hints := p.KeyHints()
		return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if content := m.render(); content != "" {
		v.SetContent(content)
	}
	return v
}

// render lays out header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	header := layout.RenderHeader(m.router.Breadcrumb(), m.status(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	_, err = p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
