package components

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/consultquest/internal/quiz"
	"github.com/abhisek/consultquest/internal/ui/theme"
)

func bandColor(score int) color.Color {
	switch quiz.BandFor(score) {
	case quiz.BandGood:
		return theme.Success
	case quiz.BandFair:
		return theme.Warning
	default:
		return theme.Error
	}
}

// TierColor is the accent used for a tier's ribbon and title.
func TierColor(t quiz.Tier) color.Color {
	switch t {
	case quiz.TierLegend:
		return theme.Gold
	case quiz.TierExpert:
		return theme.Success
	case quiz.TierNovice:
		return theme.Cyan
	default:
		return theme.TextDim
	}
}

// ScoreStyle colours a running score by its display band.
func ScoreStyle(score int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(bandColor(score)).Bold(true)
}

// ScoreStatus renders the compact "Score N · BADGE" header text.
func ScoreStatus(score int) string {
	tier := quiz.Classify(score)
	return ScoreStyle(score).Render(fmt.Sprintf("Score %d", score)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(" · ") +
		lipgloss.NewStyle().Foreground(TierColor(tier)).Render(tier.Badge())
}

// ScoreGauge renders the score bar followed by the number.
func ScoreGauge(score, width int) string {
	return NewScoreBar(score, width-5).View() + "  " + ScoreStyle(score).Render(fmt.Sprintf("%3d", score))
}

// DeltaText renders a signed score change such as "+10" or "-3".
func DeltaText(delta int) string {
	switch {
	case delta > 0:
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(fmt.Sprintf("+%d", delta))
	case delta < 0:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(fmt.Sprintf("%d", delta))
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render("±0")
	}
}
