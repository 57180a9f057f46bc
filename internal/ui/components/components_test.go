package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	return tea.KeyPressMsg{Code: []rune(s)[0], Text: s}
}

func TestScoreBarCells(t *testing.T) {
	bar := NewScoreBar(50, 100)

	assert.Equal(t, 0, bar.cell(0))
	assert.Equal(t, 50, bar.cell(50))
	assert.Equal(t, 100, bar.cell(100))
	assert.Equal(t, 100, bar.cell(150), "cells are clamped to the bar")
	assert.Equal(t, 0, bar.cell(-5))
}

func TestScoreBarWidth(t *testing.T) {
	for _, score := range []int{0, 59, 60, 85, 100} {
		assert.Equal(t, 40, lipgloss.Width(NewScoreBar(score, 40).View()), "score %d", score)
	}
	assert.Equal(t, 10, lipgloss.Width(NewScoreBar(60, 3).View()), "narrow bars get a minimum width")
}

func TestScoreBarTierTicks(t *testing.T) {
	view := NewScoreBar(0, 50).View()
	assert.Equal(t, 3, strings.Count(view, "│"), "one tick per tier threshold")
}

func TestQuestionDots(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		total    int
		answered bool
		want     string
	}{
		{"first unanswered", 0, 3, false, "◉○○"},
		{"first answered", 0, 3, true, "●○○"},
		{"middle", 1, 3, false, "●◉○"},
		{"last answered", 2, 3, true, "●●●"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(QuestionDots(tt.current, tt.total, tt.answered))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMultiChoicePick(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b", "c"})

	mc, picked := mc.Update(keyPress("down"))
	assert.Equal(t, -1, picked)
	assert.Equal(t, 1, mc.Cursor)

	_, picked = mc.Update(keyPress("enter"))
	assert.Equal(t, 1, picked)

	mc, picked = mc.Update(keyPress("3"))
	assert.Equal(t, 2, picked)
	assert.Equal(t, 2, mc.Cursor)

	_, picked = mc.Update(keyPress("4"))
	assert.Equal(t, -1, picked, "numbers past the last option are ignored")
}

func TestMultiChoiceCursorBounds(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b"})

	mc, _ = mc.Update(keyPress("up"))
	assert.Equal(t, 0, mc.Cursor)

	mc, _ = mc.Update(keyPress("down"))
	mc, _ = mc.Update(keyPress("down"))
	assert.Equal(t, 1, mc.Cursor)
}

func TestMultiChoiceLocked(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b"})
	mc.Lock(1)

	assert.Equal(t, 1, mc.Chosen)
	_, picked := mc.Update(keyPress("1"))
	assert.Equal(t, -1, picked)
	assert.Contains(t, ansi.Strip(mc.View(60)), "2) b")
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true},
		{Label: "B"},
		{Label: "C", Disabled: true},
		{Label: "D"},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(keyPress("down"))
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(keyPress("up"))
	assert.Equal(t, 1, m.Selected)
}

func TestMenuShortcut(t *testing.T) {
	ran := ""
	m := NewMenu([]MenuItem{
		{Label: "Start", Shortcut: "1", Action: func() tea.Cmd { ran = "start"; return nil }},
		{Label: "Quit", Shortcut: "q", Action: func() tea.Cmd { ran = "quit"; return tea.Quit }},
		{Label: "Off", Shortcut: "o", Disabled: true, Action: func() tea.Cmd { ran = "off"; return nil }},
	})

	m, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, "quit", ran)
	assert.Equal(t, 1, m.Selected)

	_, cmd = m.Update(keyPress("o"))
	assert.Nil(t, cmd)
	assert.Equal(t, "quit", ran, "disabled shortcuts do nothing")
}

func TestMenuSetDisabledMovesSelection(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "A"}, {Label: "B"}})
	m.Selected = 1

	m.SetDisabled(1, true)
	assert.Equal(t, 0, m.Selected)

	m.SetDisabled(1, false)
	assert.False(t, m.Items[1].Disabled)
}

func TestMenuViewFrom(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Module"}, {Label: "CONTINUE"}, {Label: "QUIT"}})
	view := m.View(1, 16)

	assert.NotContains(t, view, "Module")
	assert.Contains(t, view, "CONTINUE")
	assert.Contains(t, view, "QUIT")
	assert.Equal(t, 3, lipgloss.Height(view), "buttons sit on one row")
}

func TestDeltaText(t *testing.T) {
	assert.Equal(t, "+10", ansi.Strip(DeltaText(10)))
	assert.Equal(t, "-3", ansi.Strip(DeltaText(-3)))
	assert.Equal(t, "±0", ansi.Strip(DeltaText(0)))
}

func TestScoreStatus(t *testing.T) {
	assert.Equal(t, "Score 85 · LEGEND", ansi.Strip(ScoreStatus(85)))
	assert.Equal(t, "Score 42 · LEARNING", ansi.Strip(ScoreStatus(42)))
}

func TestContentWidth(t *testing.T) {
	assert.Equal(t, 20, ContentWidth(10))
	assert.Equal(t, 74, ContentWidth(80))
	assert.Equal(t, 76, ContentWidth(200))
}
