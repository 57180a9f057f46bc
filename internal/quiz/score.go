package quiz

import "github.com/abhisek/consultquest/internal/bank"

const (
	MinScore     = 0
	MaxScore     = 100
	InitialScore = 60
)

// ScoreDelta returns the score change for choosing opt: the mean of its
// trust and team deltas, rounded half away from zero (-2.5 becomes -3).
func ScoreDelta(opt *bank.Option) int {
	return halveRounded(opt.TrustDelta + opt.TeamDelta)
}

// ApplyScore returns current adjusted by opt's delta, saturating at
// MinScore and MaxScore.
func ApplyScore(current int, opt *bank.Option) int {
	return clampScore(current + ScoreDelta(opt))
}

func halveRounded(sum int) int {
	if sum < 0 {
		return -((-sum + 1) / 2)
	}
	return (sum + 1) / 2
}

func clampScore(v int) int {
	switch {
	case v < MinScore:
		return MinScore
	case v > MaxScore:
		return MaxScore
	default:
		return v
	}
}
