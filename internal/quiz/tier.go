package quiz

// Tier is the certification level awarded for a final score.
type Tier string

const (
	TierTrainee Tier = "trainee"
	TierNovice  Tier = "novice"
	TierExpert  Tier = "expert"
	TierLegend  Tier = "legend"
)

// Tier thresholds, inclusive lower bounds.
const (
	NoviceThreshold = 60
	ExpertThreshold = 70
	LegendThreshold = 80
)

// AllTiers returns all tiers in order from lowest to highest.
func AllTiers() []Tier {
	return []Tier{TierTrainee, TierNovice, TierExpert, TierLegend}
}

// Classify returns the tier for a final score.
func Classify(score int) Tier {
	switch {
	case score >= LegendThreshold:
		return TierLegend
	case score >= ExpertThreshold:
		return TierExpert
	case score >= NoviceThreshold:
		return TierNovice
	default:
		return TierTrainee
	}
}

// DisplayName returns the title printed on the certificate.
func (t Tier) DisplayName() string {
	switch t {
	case TierLegend:
		return "Legendary Consultant"
	case TierExpert:
		return "Seasoned Consultant"
	case TierNovice:
		return "Novice Consultant"
	case TierTrainee:
		return "Intern Consultant"
	default:
		return string(t)
	}
}

// Badge returns the short stamp shown beside the score.
func (t Tier) Badge() string {
	switch t {
	case TierLegend:
		return "LEGEND"
	case TierExpert:
		return "EXPERT"
	case TierNovice:
		return "QUALIFIED"
	case TierTrainee:
		return "LEARNING"
	default:
		return ""
	}
}

// Ribbon returns the corner ribbon text.
func (t Tier) Ribbon() string {
	switch t {
	case TierLegend:
		return "MAX LEVEL"
	case TierExpert:
		return "SENIOR"
	case TierNovice:
		return "CERTIFIED"
	case TierTrainee:
		return "TRAINEE"
	default:
		return ""
	}
}

// Blurb returns a one-line description of what the tier means.
func (t Tier) Blurb() string {
	switch t {
	case TierLegend:
		return "Outstanding judgement. You handle clients, risk and your team like a veteran."
	case TierExpert:
		return "Solid consulting instincts. You can lead most engagements on your own."
	case TierNovice:
		return "You have the fundamentals. Keep practising the harder trade-offs."
	case TierTrainee:
		return "A good start. Review the hints and case studies, then try again."
	default:
		return ""
	}
}

// Band groups scores for colouring in the UI.
type Band int

const (
	BandPoor Band = iota
	BandFair
	BandGood
)

// BandFor returns the display band for a running score.
func BandFor(score int) Band {
	switch {
	case score >= ExpertThreshold:
		return BandGood
	case score >= NoviceThreshold:
		return BandFair
	default:
		return BandPoor
	}
}

// Result is the outcome handed to certificate export once a run finishes.
type Result struct {
	Score int
	Tier  Tier
}
