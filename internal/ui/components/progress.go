package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/consultquest/internal/quiz"
	"github.com/abhisek/consultquest/internal/ui/theme"
)

// ScoreBar draws a score on the MinScore..MaxScore scale with a tick at
// each tier threshold, so the learner can see how far the next tier is.
type ScoreBar struct {
	Score int
	Width int
}

// NewScoreBar creates a score bar of the given width in cells.
func NewScoreBar(score, width int) ScoreBar {
	return ScoreBar{Score: score, Width: width}
}

// View renders the bar.
func (b ScoreBar) View() string {
	width := b.Width
	if width < 10 {
		width = 10
	}

	filled := b.cell(b.Score)
	ticks := map[int]bool{
		b.cell(quiz.NoviceThreshold): true,
		b.cell(quiz.ExpertThreshold): true,
		b.cell(quiz.LegendThreshold): true,
	}

	fill := lipgloss.NewStyle().Background(bandColor(b.Score))
	var sb strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case ticks[i] && i < filled:
			sb.WriteString(fill.Foreground(theme.BgDark).Render("│"))
		case ticks[i]:
			sb.WriteString(theme.BarTick.Render("│"))
		case i < filled:
			sb.WriteString(fill.Render(" "))
		default:
			sb.WriteString(theme.BarEmpty.Render(" "))
		}
	}
	return sb.String()
}

// cell maps a score to a bar position.
func (b ScoreBar) cell(score int) int {
	width := max(b.Width, 10)
	span := quiz.MaxScore - quiz.MinScore
	c := (score - quiz.MinScore) * width / span
	return min(max(c, 0), width)
}

// QuestionDots renders one dot per question in a module: answered ones
// filled, the current one highlighted.
func QuestionDots(current, total int, answered bool) string {
	done := lipgloss.NewStyle().Foreground(theme.Success)
	now := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	todo := lipgloss.NewStyle().Foreground(theme.Border)

	var sb strings.Builder
	for i := 0; i < total; i++ {
		switch {
		case i < current, i == current && answered:
			sb.WriteString(done.Render("●"))
		case i == current:
			sb.WriteString(now.Render("◉"))
		default:
			sb.WriteString(todo.Render("○"))
		}
	}
	return sb.String()
}
