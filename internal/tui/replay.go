// Package tui replays the solver's assignment history as an animated grid.
// It is a best-effort surface: the CLI treats every error from here as
// informational and still prints the solved grid.
package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"svw.info/csudoku/internal/grid"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	gridStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type tickMsg time.Time

// ReplayModel steps through candidate-map snapshots, one per assignment the
// search committed on its way to the solution.
type ReplayModel struct {
	frames  []map[string]string
	idx     int
	playing bool
	speed   time.Duration
}

func NewReplay(frames []map[string]string) ReplayModel {
	return ReplayModel{frames: frames, playing: true, speed: 120 * time.Millisecond}
}

// Init implements tea.Model.
func (m ReplayModel) Init() tea.Cmd { return m.tick() }

func (m ReplayModel) tick() tea.Cmd {
	if !m.playing {
		return nil
	}
	return tea.Tick(m.speed, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update implements tea.Model.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.playing = false
			if m.idx > 0 {
				m.idx--
			}
		case "right", "l":
			m.playing = false
			if m.idx < len(m.frames)-1 {
				m.idx++
			}
		case " ":
			m.playing = !m.playing
			return m, m.tick()
		}
	case tickMsg:
		if m.playing && m.idx < len(m.frames)-1 {
			m.idx++
			return m, m.tick()
		}
		m.playing = false
	}
	return m, nil
}

// View implements tea.Model.
func (m ReplayModel) View() string {
	title := titleStyle.Render("Solver replay")
	board := gridStyle.Render(grid.Render(m.frames[m.idx]))
	footer := footerStyle.Render(fmt.Sprintf(
		"assignment %d/%d  [space] play/pause  [←→] step  [q] quit",
		m.idx+1, len(m.frames),
	))
	return title + "\n" + board + "\n" + footer + "\n"
}

// Run replays the recorded assignments in the terminal. An empty history or a
// terminal failure is reported as an error for the caller to log and ignore.
func Run(frames []map[string]string) error {
	if len(frames) == 0 {
		return errors.New("no assignments recorded")
	}
	_, err := tea.NewProgram(NewReplay(frames)).Run()
	return err
}
