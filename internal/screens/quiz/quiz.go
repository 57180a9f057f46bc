// Package quiz is the question screen: it shows the current scenario, takes
// the learner's pick and explains the outcome before moving on.
package quiz

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/consultquest/internal/bank"
	engine "github.com/abhisek/consultquest/internal/quiz"
	"github.com/abhisek/consultquest/internal/router"
	"github.com/abhisek/consultquest/internal/screen"
	"github.com/abhisek/consultquest/internal/ui/components"
	"github.com/abhisek/consultquest/internal/ui/layout"
)

// QuizScreen drives a Session through its questions.
type QuizScreen struct {
	session        *engine.Session
	logger         *zap.Logger
	finishFactory  func(engine.Result) screen.Screen
	choices        components.MultiChoice
	feedbackHidden bool
	errMsg         string

	// question the choices were built for
	moduleIdx   int
	questionIdx int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for a session that is already playing.
// finishFactory builds the screen that replaces this one once the run ends.
func New(sess *engine.Session, logger *zap.Logger, finishFactory func(engine.Result) screen.Screen) *QuizScreen {
	q := &QuizScreen{
		session:       sess,
		logger:        logger,
		finishFactory: finishFactory,
	}
	q.syncChoices()
	return q
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	if m := q.session.CurrentModule(); m != nil {
		return m.Title
	}
	return "Quiz"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.session.Answered() {
		toggle := "Hide details"
		if q.feedbackHidden {
			toggle = "Show details"
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "H", Description: toggle},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-9", Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Choose"},
		{Key: "Esc", Description: "Home"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return q, nil
	}

	if q.session.Phase() != engine.PhasePlaying {
		return q, nil
	}
	q.syncChoices()

	if q.session.Answered() {
		switch kmsg.String() {
		case "h":
			q.feedbackHidden = !q.feedbackHidden
			return q, nil
		case "enter", "space", "n", "right":
			return q, q.advance()
		}
		return q, nil
	}

	var picked int
	q.choices, picked = q.choices.Update(msg)
	if picked < 0 {
		return q, nil
	}
	return q, q.choose(picked)
}

// choose answers the current question with the option shown at index i.
func (q *QuizScreen) choose(i int) tea.Cmd {
	presented := q.session.Presented()
	if i < 0 || i >= len(presented) {
		return nil
	}
	opt := presented[i]
	before := q.session.Score()

	if err := q.session.Select(opt); err != nil {
		q.fail("select", err)
		return nil
	}
	q.errMsg = ""
	q.feedbackHidden = false
	q.choices.Lock(i)

	q.logger.Info("option selected",
		zap.String("module", q.session.CurrentModule().ID),
		zap.String("question", q.session.CurrentQuestion().ID),
		zap.Int("presented_index", i),
		zap.Int("trust", opt.TrustDelta),
		zap.Int("team", opt.TeamDelta),
		zap.Int("delta", engine.ScoreDelta(opt)),
		zap.Int("score_before", before),
		zap.Int("score", q.session.Score()),
	)
	return nil
}

// advance moves to the next question, the next module, or the certificate.
func (q *QuizScreen) advance() tea.Cmd {
	prevModule := q.session.ModuleIndex()
	if err := q.session.Advance(); err != nil {
		q.fail("advance", err)
		return nil
	}
	q.errMsg = ""

	if q.session.Phase() == engine.PhaseFinished {
		res, err := q.session.Result()
		if err != nil {
			q.fail("result", err)
			return nil
		}
		q.logger.Info("quiz finished",
			zap.Int("score", res.Score),
			zap.String("tier", string(res.Tier)),
		)
		next := q.finishFactory(res)
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}

	if q.session.ModuleIndex() != prevModule {
		m := q.session.CurrentModule()
		q.logger.Info("module started",
			zap.Int("module_index", q.session.ModuleIndex()),
			zap.String("module", m.ID),
			zap.Int("questions", len(m.Questions)),
			zap.Int("score", q.session.Score()),
			zap.Bool("carried_over", true),
		)
	}

	q.feedbackHidden = false
	q.syncChoices()
	return nil
}

func (q *QuizScreen) fail(op string, err error) {
	q.errMsg = err.Error()
	fields := []zap.Field{zap.String("op", op), zap.Error(err), zap.String("phase", q.session.Phase().String())}
	if errors.Is(err, engine.ErrIllegalTransition) {
		q.logger.Error("quiz state out of sync", fields...)
		return
	}
	q.logger.Warn("quiz operation rejected", fields...)
}

// syncChoices rebuilds the picker when the session has moved to a different
// question since it was last built.
func (q *QuizScreen) syncChoices() {
	if q.session.Phase() != engine.PhasePlaying {
		return
	}
	mi, qi := q.session.ModuleIndex(), q.session.QuestionIndex()
	fresh := q.choices.Options != nil && mi == q.moduleIdx && qi == q.questionIdx
	if fresh && q.choices.Locked == q.session.Answered() {
		return
	}
	q.moduleIdx, q.questionIdx = mi, qi

	presented := q.session.Presented()
	labels := make([]string, len(presented))
	for i, o := range presented {
		labels[i] = o.Text
	}
	q.choices = components.NewMultiChoice(labels)

	if sel := q.session.Selected(); sel != nil {
		q.choices.Lock(indexOf(presented, sel))
	}
}

func indexOf(opts []*bank.Option, target *bank.Option) int {
	for i, o := range opts {
		if o == target {
			return i
		}
	}
	return -1
}
