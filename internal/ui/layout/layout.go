package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/consultquest/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// Header and footer are one line of text inside a rounded border.
	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// Brand is shown at the left of the header.
const Brand = "ConsultQuest"

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompact reports whether a screen given width x contentHeight should use
// its condensed layout. contentHeight excludes the header and footer.
func IsCompact(width, contentHeight int) bool {
	return width < CompactWidthThreshold ||
		contentHeight+HeaderHeight+FooterHeight < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nScenarios need at least %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the header bar: brand left, breadcrumb centered and
// status (usually the live score) right. A breadcrumb that does not fit is
// cut with an ellipsis.
func RenderHeader(breadcrumb, status string, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  " + Brand)

	innerWidth := max(width-4, 0) // border and padding
	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(status)

	room := innerWidth - leftLen - rightLen - 2
	if room < 1 {
		breadcrumb = ""
	} else if lipgloss.Width(breadcrumb) > room {
		breadcrumb = ansi.Truncate(breadcrumb, room, "…")
	}
	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(breadcrumb)
	centerLen := lipgloss.Width(center)

	leftGap := max((innerWidth-centerLen)/2-leftLen, 1)
	rightGap := max(innerWidth-leftLen-leftGap-centerLen-rightLen, 1)

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + status

	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFooter renders the footer with key hints. When the full hints do
// not fit on one line only the keys are shown.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	render := func(withDesc bool) string {
		parts := make([]string, 0, len(hints))
		for _, h := range hints {
			part := keyStyle.Render(h.Key)
			if withDesc {
				part += " " + descStyle.Render(h.Description)
			}
			parts = append(parts, part)
		}
		return "  " + strings.Join(parts, "   ")
	}

	content := render(true)
	if lipgloss.Width(content) > width-4 {
		content = render(false)
	}

	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}
