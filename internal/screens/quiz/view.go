package quiz

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/consultquest/internal/bank"
	engine "github.com/abhisek/consultquest/internal/quiz"
	"github.com/abhisek/consultquest/internal/ui/components"
	"github.com/abhisek/consultquest/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	if q.session.Phase() != engine.PhasePlaying {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No module in progress.")
	}
	q.syncChoices()

	cw := components.ContentWidth(width)
	var b strings.Builder

	b.WriteString(q.renderInfoLine(cw))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(cw-4, 1))))
	b.WriteString("\n")
	b.WriteString(components.ScoreGauge(q.session.Score(), cw))
	b.WriteString("\n\n")

	question := q.session.CurrentQuestion()
	b.WriteString(theme.Prompt.Width(cw).Render(question.Prompt))
	b.WriteString("\n\n")

	b.WriteString(q.choices.View(cw))

	if sel := q.session.Selected(); sel != nil {
		b.WriteString("\n")
		if q.feedbackHidden {
			b.WriteString(theme.Hint.Render("Press H to show the outcome, Enter to continue."))
		} else {
			b.WriteString(renderFeedback(sel, cw))
		}
	}

	if q.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorText.Width(cw).Render(q.errMsg))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderInfoLine shows where the learner is, left, and the tier, right.
func (q *QuizScreen) renderInfoLine(cw int) string {
	b := q.session.Bank()
	m := q.session.CurrentModule()

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(m.Title) + "  " +
		components.QuestionDots(q.session.QuestionIndex(), len(m.Questions), q.session.Answered())

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Module %d/%d • Question %d/%d  ",
			q.session.ModuleIndex()+1, b.ModuleCount(),
			q.session.QuestionIndex()+1, len(m.Questions),
		)) +
		lipgloss.NewStyle().
			Foreground(theme.Gold).
			Render(engine.Classify(q.session.Score()).Badge())

	pad := cw - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		return left + "\n" + right
	}
	return left + strings.Repeat(" ", pad) + right
}

// renderFeedback explains what the chosen option led to.
func renderFeedback(opt *bank.Option, cw int) string {
	var lines []string

	delta := engine.ScoreDelta(opt)
	lines = append(lines,
		lipgloss.NewStyle().Foreground(theme.Text).Render(opt.ResultText),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("Client trust %+d · Team morale %+d · Score ", opt.TrustDelta, opt.TeamDelta))+
			components.DeltaText(delta),
	)

	if opt.Hint != "" {
		lines = append(lines, "", theme.Label.Render("Hint"), opt.Hint)
	}
	if opt.CaseStudy != "" {
		lines = append(lines, "", theme.Label.Render("From the field"), opt.CaseStudy)
	}
	if len(opt.Links) > 0 {
		lines = append(lines, "", theme.Label.Render("Further reading"))
		for _, l := range opt.Links {
			lines = append(lines, "  "+theme.Link.Render(l))
		}
	}

	return components.Card("Outcome", strings.Join(lines, "\n"), cw, outcomeColor(delta))
}

func outcomeColor(delta int) color.Color {
	switch {
	case delta > 0:
		return theme.Success
	case delta < 0:
		return theme.Error
	default:
		return theme.Warning
	}
}
