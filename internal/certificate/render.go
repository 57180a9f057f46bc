package certificate

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Render returns the certificate's markdown styled for a terminal of the
// given width.
func Render(c Certificate, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(c.Markdown())
	if err != nil {
		return "", fmt.Errorf("render certificate: %w", err)
	}
	return out, nil
}
