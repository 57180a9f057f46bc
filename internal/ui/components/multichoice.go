package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/consultquest/internal/ui/theme"
)

// MultiChoice is a numbered option picker. It only tracks the cursor and
// reports a pick; whether a pick is accepted is up to the caller.
type MultiChoice struct {
	Options []string
	Cursor  int

	// Chosen is the index to highlight as the accepted answer, or -1.
	Chosen int
	Locked bool
}

// NewMultiChoice creates a picker over options with nothing chosen.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options: options,
		Chosen:  -1,
	}
}

// Lock marks index i as the accepted answer and stops navigation.
func (m *MultiChoice) Lock(i int) {
	m.Chosen = i
	m.Cursor = i
	m.Locked = true
}

// Update handles arrow/j/k navigation. It returns the picked index for
// Enter or a number key, or -1 when nothing was picked.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, int) {
	if m.Locked {
		return m, -1
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, -1
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter", "space":
		if m.Cursor >= 0 && m.Cursor < len(m.Options) {
			return m, m.Cursor
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < len(m.Options) {
				m.Cursor = i
				return m, i
			}
		}
	}

	return m, -1
}

// View renders the options wrapped to width.
func (m MultiChoice) View(width int) string {
	var b strings.Builder

	textWidth := width - 6
	if textWidth < 10 {
		textWidth = 10
	}

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.Locked {
			prefix = "▸ "
		}
		body := lipgloss.NewStyle().Width(textWidth).Render(opt)
		line := lipgloss.JoinHorizontal(lipgloss.Top, fmt.Sprintf("%s%d) ", prefix, i+1), body)

		var style lipgloss.Style
		switch {
		case m.Locked && i == m.Chosen:
			style = theme.Chosen
		case m.Locked:
			style = theme.Faded
		case i == m.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
