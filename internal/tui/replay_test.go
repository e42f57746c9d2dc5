package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/csudoku/internal/grid"
)

func testFrames(t *testing.T) []map[string]string {
	t.Helper()
	first, err := grid.Parse("4" + repeatDots(80))
	require.NoError(t, err)
	second, err := grid.Parse("48" + repeatDots(79))
	require.NoError(t, err)
	third, err := grid.Parse("483" + repeatDots(78))
	require.NoError(t, err)
	return []map[string]string{first, second, third}
}

func repeatDots(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '.'
	}
	return string(b)
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestReplayStepping(t *testing.T) {
	m := NewReplay(testFrames(t))

	next, _ := m.Update(key("l"))
	m = next.(ReplayModel)
	assert.Equal(t, 1, m.idx)
	assert.False(t, m.playing, "manual stepping pauses playback")

	next, _ = m.Update(key("l"))
	m = next.(ReplayModel)
	next, _ = m.Update(key("l"))
	m = next.(ReplayModel)
	assert.Equal(t, 2, m.idx, "stepping stops at the last frame")

	next, _ = m.Update(key("h"))
	m = next.(ReplayModel)
	assert.Equal(t, 1, m.idx)
}

func TestReplayTickAdvances(t *testing.T) {
	m := NewReplay(testFrames(t))
	require.True(t, m.playing)

	next, cmd := m.Update(tickMsg{})
	m = next.(ReplayModel)
	assert.Equal(t, 1, m.idx)
	assert.NotNil(t, cmd, "playback schedules the next tick")

	next, _ = m.Update(tickMsg{})
	m = next.(ReplayModel)
	next, _ = m.Update(tickMsg{})
	m = next.(ReplayModel)
	assert.Equal(t, 2, m.idx)
	assert.False(t, m.playing, "playback parks at the final frame")
}

func TestReplayQuitKeys(t *testing.T) {
	m := NewReplay(testFrames(t))
	for _, k := range []string{"q"} {
		_, cmd := m.Update(key(k))
		require.NotNil(t, cmd, "key %q must quit", k)
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
}

func TestReplayView(t *testing.T) {
	m := NewReplay(testFrames(t))
	out := m.View()
	assert.Contains(t, out, "Solver replay")
	assert.Contains(t, out, "1/3")
}

func TestRunRejectsEmptyHistory(t *testing.T) {
	assert.Error(t, Run(nil))
}
