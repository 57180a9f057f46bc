package certificate

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	cert "github.com/abhisek/consultquest/internal/certificate"
	engine "github.com/abhisek/consultquest/internal/quiz"
	"github.com/abhisek/consultquest/internal/ui/components"
	"github.com/abhisek/consultquest/internal/ui/theme"
)

func (c *CertificateScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var b strings.Builder

	b.WriteString(c.renderStamp(cw))
	b.WriteString("\n\n")
	b.WriteString(components.ScoreGauge(c.cert.Score, cw))
	b.WriteString("\n\n")
	b.WriteString(c.renderPreview(cw))
	b.WriteString("\n")
	b.WriteString(c.renderName())
	b.WriteString("\n")

	switch {
	case c.exporting:
		b.WriteString(theme.Hint.Render("Saving certificate..."))
	case c.errMsg != "":
		b.WriteString(theme.ErrorText.Width(cw).Render(c.errMsg))
	case c.savedPath != "":
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("Saved to " + c.savedPath))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderStamp is the ribbon and badge banner above the preview.
func (c *CertificateScreen) renderStamp(cw int) string {
	ribbon := lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(components.TierColor(c.cert.Tier)).
		Bold(true).
		Padding(0, 2).
		Render(c.cert.Ribbon)

	title := lipgloss.NewStyle().
		Foreground(components.TierColor(c.cert.Tier)).
		Bold(true).
		Render(c.cert.Title)

	score := fmt.Sprintf("%d / %d · %s", c.cert.Score, engine.MaxScore, c.cert.Badge)

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(ribbon + "\n\n" + title + "\n" + components.ScoreStyle(c.cert.Score).Render(score))
}

// renderPreview renders the certificate markdown, reusing the last render
// while the width and name are unchanged.
func (c *CertificateScreen) renderPreview(cw int) string {
	if c.preview != "" && c.previewWidth == cw && c.previewName == c.cert.Recipient {
		return c.preview
	}
	out, err := cert.Render(c.cert, cw-4)
	if err != nil {
		c.logger.Warn("certificate preview fallback", zap.Error(err))
		out = c.cert.Markdown()
	}
	c.preview = components.Card("", strings.TrimRight(out, "\n"), cw, components.TierColor(c.cert.Tier))
	c.previewWidth = cw
	c.previewName = c.cert.Recipient
	return c.preview
}

func (c *CertificateScreen) renderName() string {
	if c.name.Focused() {
		return theme.Label.Render("Name ") + c.name.View()
	}
	name := c.cert.Recipient
	if name == "" {
		name = "(press N to add your name)"
	}
	return theme.Label.Render("Name ") + lipgloss.NewStyle().Foreground(theme.Text).Render(name)
}
