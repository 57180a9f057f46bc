package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/consultquest/internal/bank"
	"github.com/abhisek/consultquest/internal/ui/components"
	"github.com/abhisek/consultquest/internal/ui/theme"
)

// buttonWidth is the fixed width for the CONTINUE/QUIT buttons.
const buttonWidth = 16

// renderTitle returns the program title with a one-line summary.
func renderTitle(title string, total, cw int, compact bool) string {
	heading := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true).
		Render(strings.ToUpper(title))

	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d scenarios · every answer moves your score", total))

	block := heading
	if !compact {
		block += "\n" + sub
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderModules lists modules as cards, or as single lines when compact.
func renderModules(modules []*bank.Module, selected, cw int, compact bool) string {
	var out []string
	for i, m := range modules {
		meta := fmt.Sprintf("%d questions · about %d min", len(m.Questions), m.EstimatedMinutes())
		active := i == selected

		titleStyle := lipgloss.NewStyle().Foreground(theme.Text)
		marker := "  "
		if active {
			titleStyle = lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
			marker = "▸ "
		}

		if compact {
			line := titleStyle.Render(fmt.Sprintf("%s%d. %s", marker, i+1, m.Title)) +
				lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ("+meta+")")
			out = append(out, lipgloss.NewStyle().Width(cw).Render(line))
			continue
		}

		var body []string
		if m.Intro != "" {
			body = append(body, lipgloss.NewStyle().Foreground(theme.TextDim).Render(m.Intro))
		}
		body = append(body, lipgloss.NewStyle().Foreground(theme.Secondary).Render(meta))

		accent := theme.TextDim
		if active {
			accent = theme.Gold
		}
		heading := fmt.Sprintf("%s%d. %s", marker, i+1, m.Title)
		out = append(out, components.Card(heading, strings.Join(body, "\n"), cw, accent))
	}
	return strings.Join(out, "\n")
}

// renderLegend explains roughly how answers move the score.
func renderLegend(cw int) string {
	good := lipgloss.NewStyle().Foreground(theme.Success).Render("best choice ≈ +10")
	ok := lipgloss.NewStyle().Foreground(theme.Warning).Render("acceptable ≈ 0 / -5")
	bad := lipgloss.NewStyle().Foreground(theme.Error).Render("poor choice ≈ -10")
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(dim.Render("Start at 60. ") + good + dim.Render(" · ") + ok + dim.Render(" · ") + bad)
}

// renderActions renders the buttons after the module list side by side.
func renderActions(menu components.Menu, first, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(menu.View(first, buttonWidth))
}

// renderMascotBox renders the mascot centered at content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

func renderNote(text string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

func renderError(text string, cw int) string {
	return theme.ErrorText.
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}
