package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/consultquest/internal/ui/theme"
)

const bannerKicker = "C  O  N  S  U  L  T"

const bannerArt = `  ██████╗ ██╗   ██╗███████╗███████╗████████╗
 ██╔═══██╗██║   ██║██╔════╝██╔════╝╚══██╔══╝
 ██║   ██║██║   ██║█████╗  ███████╗   ██║
 ██║▄▄ ██║██║   ██║██╔══╝  ╚════██║   ██║
 ╚██████╔╝╚██████╔╝███████╗███████║   ██║
  ╚══▀▀═╝  ╚═════╝ ╚══════╝╚══════╝   ╚═╝`

const bannerCompact = "C O N S U L T Q U E S T"

// RenderBanner returns the banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 48 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 48 {
		return style.Render(bannerCompact)
	}
	kicker := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true).
		Width(lipgloss.Width(bannerArt)).
		Align(lipgloss.Center).
		Render(bannerKicker)
	return kicker + "\n" + style.Render(bannerArt)
}
