package quiz

import (
	"fmt"

	"github.com/abhisek/consultquest/internal/bank"
)

// Phase is the top-level state of a Session.
type Phase int

const (
	PhaseIntro Phase = iota
	PhasePlaying
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is a read-only copy of everything observable about a Session.
type State struct {
	Phase         Phase
	Score         int
	ModuleIndex   int
	QuestionIndex int
	Presented     []*bank.Option
	Selected      *bank.Option
}

// Session drives one learner through a bank. It is not safe for concurrent
// use; callers apply one operation at a time.
//
// Every mutator either succeeds completely or returns an error and leaves
// the session untouched.
type Session struct {
	bank     *bank.Bank
	shuffler Shuffler

	phase       Phase
	score       int
	moduleIdx   int
	questionIdx int
	selected    *bank.Option
	presented   []*bank.Option
}

// NewSession returns a session in PhaseIntro. The bank is probed with
// Check and rejected if malformed. A nil shuffler uses a randomly seeded
// RandShuffler.
func NewSession(b *bank.Bank, s Shuffler) (*Session, error) {
	if err := b.Check(); err != nil {
		return nil, err
	}
	if s == nil {
		s = NewRandShuffler()
	}
	sess := &Session{bank: b, shuffler: s}
	sess.Reset()
	return sess, nil
}

// Bank returns the catalog the session plays.
func (s *Session) Bank() *bank.Bank { return s.bank }

func (s *Session) Phase() Phase       { return s.phase }
func (s *Session) Score() int         { return s.score }
func (s *Session) ModuleIndex() int   { return s.moduleIdx }
func (s *Session) QuestionIndex() int { return s.questionIdx }

// Answered reports whether the current question has been answered.
func (s *Session) Answered() bool { return s.selected != nil }

// Selected returns the chosen option for the current question, or nil.
func (s *Session) Selected() *bank.Option { return s.selected }

// Presented returns the current question's options in display order.
func (s *Session) Presented() []*bank.Option {
	if s.presented == nil {
		return nil
	}
	out := make([]*bank.Option, len(s.presented))
	copy(out, s.presented)
	return out
}

// CurrentModule returns the module being played, or nil outside
// PhasePlaying.
func (s *Session) CurrentModule() *bank.Module {
	if s.phase != PhasePlaying {
		return nil
	}
	m, _ := s.bank.Module(s.moduleIdx)
	return m
}

// CurrentQuestion returns the question being played, or nil outside
// PhasePlaying.
func (s *Session) CurrentQuestion() *bank.Question {
	m := s.CurrentModule()
	if m == nil {
		return nil
	}
	return &m.Questions[s.questionIdx]
}

// Snapshot returns a copy of the observable state.
func (s *Session) Snapshot() State {
	return State{
		Phase:         s.phase,
		Score:         s.score,
		ModuleIndex:   s.moduleIdx,
		QuestionIndex: s.questionIdx,
		Presented:     s.Presented(),
		Selected:      s.selected,
	}
}

// StartModule begins module i from its first question with a fresh score.
// It is allowed from any phase.
func (s *Session) StartModule(i int) error {
	if _, ok := s.bank.Module(i); !ok {
		return fmt.Errorf("start module %d of %d: %w", i, s.bank.ModuleCount(), ErrInvalidModuleIndex)
	}
	s.phase = PhasePlaying
	s.score = InitialScore
	s.moduleIdx = i
	s.enterQuestion(0)
	return nil
}

// Select answers the current question with opt, which must be one of its
// options, and applies the score change. A question can be answered once.
func (s *Session) Select(opt *bank.Option) error {
	if s.phase != PhasePlaying {
		return s.illegal("select")
	}
	if s.selected != nil {
		return fmt.Errorf("select: %w", ErrAlreadyAnswered)
	}
	if opt == nil || !s.offers(opt) {
		return fmt.Errorf("select: %w", ErrUnknownOption)
	}
	s.score = ApplyScore(s.score, opt)
	s.selected = opt
	return nil
}

// Advance moves past an answered question: to the next question, then to
// the next module's first question with the score carried over, then to
// PhaseFinished.
func (s *Session) Advance() error {
	if s.phase != PhasePlaying || s.selected == nil {
		return s.illegal("advance")
	}
	switch {
	case s.questionIdx+1 < s.bank.QuestionCount(s.moduleIdx):
		s.enterQuestion(s.questionIdx + 1)
	case s.moduleIdx+1 < s.bank.ModuleCount():
		s.moduleIdx++
		s.enterQuestion(0)
	default:
		s.phase = PhaseFinished
		s.selected = nil
		s.presented = nil
	}
	return nil
}

// Reset returns the session to the state of a freshly created one.
func (s *Session) Reset() {
	s.phase = PhaseIntro
	s.score = InitialScore
	s.moduleIdx = 0
	s.questionIdx = 0
	s.selected = nil
	s.presented = nil
}

// Result returns the final score and tier. Only valid in PhaseFinished.
func (s *Session) Result() (Result, error) {
	if s.phase != PhaseFinished {
		return Result{}, s.illegal("result")
	}
	return Result{Score: s.score, Tier: Classify(s.score)}, nil
}

func (s *Session) enterQuestion(q int) {
	s.questionIdx = q
	s.selected = nil

	opts := s.CurrentQuestion().Options
	ptrs := make([]*bank.Option, len(opts))
	for i := range opts {
		ptrs[i] = &opts[i]
	}
	s.presented = s.shuffler.Shuffle(ptrs)
}

func (s *Session) offers(opt *bank.Option) bool {
	q := s.CurrentQuestion()
	for i := range q.Options {
		if &q.Options[i] == opt {
			return true
		}
	}
	return false
}

func (s *Session) illegal(op string) error {
	return &TransitionError{Op: op, Phase: s.phase, Answered: s.selected != nil}
}
