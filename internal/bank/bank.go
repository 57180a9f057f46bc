package bank

import (
	"errors"
	"fmt"
)

// ErrMalformed is returned when a catalog breaks one of its structural
// invariants (empty modules, too few options, duplicate ids).
var ErrMalformed = errors.New("malformed question bank")

// Bank is an immutable catalog of modules. Values returned by its accessors
// point into the bank and must not be modified.
type Bank struct {
	title   string
	version string
	modules []Module
}

// New builds a Bank from a deep copy of modules, so later changes to the
// caller's slices never leak into the catalog.
func New(title, version string, modules []Module) *Bank {
	return &Bank{
		title:   title,
		version: version,
		modules: cloneModules(modules),
	}
}

// Title returns the display title of the bank.
func (b *Bank) Title() string { return b.title }

// Version returns the semantic version declared by the bank file.
func (b *Bank) Version() string { return b.version }

// ModuleCount returns the number of modules.
func (b *Bank) ModuleCount() int { return len(b.modules) }

// Modules returns pointers to every module in order.
func (b *Bank) Modules() []*Module {
	out := make([]*Module, len(b.modules))
	for i := range b.modules {
		out[i] = &b.modules[i]
	}
	return out
}

// Module returns the module at index i, or false if i is out of range.
func (b *Bank) Module(i int) (*Module, bool) {
	if i < 0 || i >= len(b.modules) {
		return nil, false
	}
	return &b.modules[i], true
}

// QuestionCount returns the number of questions in module i, or 0 if i is
// out of range.
func (b *Bank) QuestionCount(i int) int {
	m, ok := b.Module(i)
	if !ok {
		return 0
	}
	return len(m.Questions)
}

// TotalQuestions returns the number of questions across all modules.
func (b *Bank) TotalQuestions() int {
	n := 0
	for i := range b.modules {
		n += len(b.modules[i].Questions)
	}
	return n
}

// Check verifies the structural invariants the quiz engine relies on.
// The returned error wraps ErrMalformed and lists every problem found.
func (b *Bank) Check() error {
	if b == nil {
		return fmt.Errorf("%w: nil bank", ErrMalformed)
	}
	return validateModules(b.modules)
}

func cloneModules(src []Module) []Module {
	out := make([]Module, len(src))
	for i, m := range src {
		qs := make([]Question, len(m.Questions))
		for j, q := range m.Questions {
			opts := make([]Option, len(q.Options))
			for k, o := range q.Options {
				o.Links = append([]string(nil), o.Links...)
				opts[k] = o
			}
			q.Options = opts
			qs[j] = q
		}
		m.Questions = qs
		out[i] = m
	}
	return out
}
