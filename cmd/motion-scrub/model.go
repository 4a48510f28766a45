package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/automoto/scrollfx/motion"
)

const (
	frameRate = 60
	scrubStep = 0.02
	barWidth  = 24
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// column is one property shown per row, with the value range its bar spans.
type column struct {
	prop     string
	min, max float64
}

var columns = []column{
	{motion.PropX, -200, 200},
	{motion.PropY, -100, 100},
	{motion.PropScale, 0, 2},
	{motion.PropRotate, -45, 45},
	{motion.PropOpacity, 0, 1},
}

type model struct {
	name    string
	e       *motion.Engine
	sc      *scrubber
	playing bool
	// dir is +1 forward and -1 in reverse.
	dir      int
	quitting bool
	width    int
}

func newModel(name string, e *motion.Engine, sc *scrubber) model {
	return model{name: name, e: e, sc: sc, dir: 1}
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tickMsg:
		m.advance()
		m.e.Tick(1.0 / frameRate)
		return m, tickCmd()
	}
	return m, nil
}

func (m model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "left", "h":
		m.stop()
		m.sc.seek(m.e, clamp(m.sc.progress(m.e)-scrubStep))
	case "right", "l":
		m.stop()
		m.sc.seek(m.e, clamp(m.sc.progress(m.e)+scrubStep))
	case "0", "home":
		m.stop()
		m.sc.seek(m.e, 0)
	case "$", "end":
		m.stop()
		m.sc.seek(m.e, 1)

	case " ":
		if m.playing {
			m.stop()
		} else {
			m.start()
		}
	case "r":
		m.dir = -m.dir
		if m.playing {
			m.start()
		}
	}
	return m, nil
}

func (m *model) start() {
	m.playing = true
	if m.sc.anim == nil {
		return
	}
	if m.dir < 0 {
		m.sc.anim.Reverse()
	} else {
		m.sc.anim.Play()
	}
}

func (m *model) stop() {
	m.playing = false
	if m.sc.anim != nil {
		m.sc.anim.Pause()
	}
}

// advance moves scroll-backed presets while playing; animations are advanced by the engine.
func (m *model) advance() {
	if !m.playing || m.sc.anim != nil {
		return
	}
	p := m.sc.progress(m.e) + float64(m.dir)/(frameRate*m.sc.duration)
	if p <= 0 || p >= 1 {
		m.playing = false
	}
	m.sc.seek(m.e, clamp(p))
}

func clamp(p float64) float64 {
	return math.Max(0, math.Min(1, p))
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E2E8F0")).Width(10)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	fillStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#334155"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4")).MarginTop(1)
)

func (m model) View() string {
	if m.quitting {
		return ""
	}

	state := "paused"
	if m.playing {
		state = "playing"
		if m.dir < 0 {
			state = "reversing"
		}
	}
	p := m.sc.progress(m.e)

	var lines []string
	lines = append(lines, titleStyle.Render(fmt.Sprintf("%s  %s  %5.1f%%", m.name, state, p*100)))
	lines = append(lines, bar(p, barWidth*2), "")

	for _, r := range m.sc.rows {
		cells := []string{nameStyle.Render(r.name)}
		for _, c := range columns {
			v := r.props.Number(c.prop)
			frac := (v - c.min) / (c.max - c.min)
			cells = append(cells, labelStyle.Render(fmt.Sprintf("%s %7.2f ", c.prop, v))+bar(frac, barWidth/2)+"  ")
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	lines = append(lines, helpStyle.Render("←/→ scrub • space play/pause • r reverse • 0/$ ends • q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func bar(frac float64, width int) string {
	n := int(math.Round(clamp(frac) * float64(width)))
	return fillStyle.Render(strings.Repeat("█", n)) + emptyStyle.Render(strings.Repeat("░", width-n))
}
