package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/consultquest/internal/bank"
)

func optionPtrs(n int) []*bank.Option {
	opts := make([]bank.Option, n)
	out := make([]*bank.Option, n)
	for i := range opts {
		opts[i].Text = string(rune('a' + i))
		out[i] = &opts[i]
	}
	return out
}

func TestRandShuffler_IsPermutation(t *testing.T) {
	s := NewSeededShuffler(42)
	for n := 0; n <= 6; n++ {
		src := optionPtrs(n)
		orig := make([]*bank.Option, n)
		copy(orig, src)

		for range 20 {
			got := s.Shuffle(src)
			assert.Len(t, got, n)
			assert.ElementsMatch(t, src, got)
			assert.Equal(t, orig, src, "source must not be reordered")
		}
	}
}

func TestRandShuffler_ReturnsCopy(t *testing.T) {
	src := optionPtrs(1)
	got := NewSeededShuffler(1).Shuffle(src)
	got[0] = nil
	assert.NotNil(t, src[0])

	assert.Empty(t, NewSeededShuffler(1).Shuffle(nil))
}

func TestRandShuffler_SeedIsReproducible(t *testing.T) {
	src := optionPtrs(5)
	a, b := NewSeededShuffler(7), NewSeededShuffler(7)
	for range 10 {
		assert.Equal(t, a.Shuffle(src), b.Shuffle(src))
	}
}

func TestRandShuffler_ReachesEveryPosition(t *testing.T) {
	src := optionPtrs(4)
	s := NewSeededShuffler(99)

	// positions[i][j] counts how often src[i] landed at index j.
	var positions [4][4]int
	for range 2000 {
		got := s.Shuffle(src)
		for j, p := range got {
			for i := range src {
				if src[i] == p {
					positions[i][j]++
				}
			}
		}
	}
	for i := range positions {
		for j := range positions[i] {
			assert.Greater(t, positions[i][j], 300, "option %d at position %d", i, j)
		}
	}
}

func TestIdentity(t *testing.T) {
	src := optionPtrs(3)
	assert.Equal(t, src, Identity{}.Shuffle(src))
}
