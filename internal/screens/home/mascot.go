package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/consultquest/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Nothing started yet
	MascotAlert                            // A module is in progress
	MascotCelebrating                      // The last run finished
)

const mascotIdle = `╭─────╮
│ ◉ ◉ │
│  ▽  │
╰┬───┬╯
 │ ◆ │`

const mascotAlert = `╭─────╮
│ ◉ ◉ │ !
│  ○  │
╰┬───┬╯
 │ ◆ │`

const mascotCelebrating = `╭─────╮
│ ★ ★ │
│  ▿  │
╰┬───┬╯
 ╘═◆═╛`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Gold
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
