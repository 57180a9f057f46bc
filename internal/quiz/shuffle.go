package quiz

import (
	"math/rand/v2"

	"github.com/abhisek/consultquest/internal/bank"
)

// Shuffler decides the order in which a question's options are presented.
// Implementations must return a new slice holding exactly the input
// elements and must not modify the input.
type Shuffler interface {
	Shuffle(opts []*bank.Option) []*bank.Option
}

// RandShuffler produces uniformly random permutations. It is not safe for
// concurrent use.
type RandShuffler struct {
	rng *rand.Rand
}

// NewRandShuffler returns a shuffler seeded from the runtime's random source.
func NewRandShuffler() *RandShuffler {
	return &RandShuffler{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededShuffler returns a shuffler whose sequence of permutations is
// fully determined by seed.
func NewSeededShuffler(seed uint64) *RandShuffler {
	return &RandShuffler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Shuffle returns a Fisher-Yates permutation of a copy of opts.
func (s *RandShuffler) Shuffle(opts []*bank.Option) []*bank.Option {
	out := make([]*bank.Option, len(opts))
	copy(out, opts)
	if len(out) < 2 {
		return out
	}
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Identity presents options in authored order.
type Identity struct{}

// Shuffle returns a copy of opts in the same order.
func (Identity) Shuffle(opts []*bank.Option) []*bank.Option {
	out := make([]*bank.Option, len(opts))
	copy(out, opts)
	return out
}
