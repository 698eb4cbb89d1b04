package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/dottie/internal/cosine"
	"github.com/san-kum/dottie/internal/fixedpoint"
)

const historyCapacity = 600

// TickMsg advances the orbit. Ticks from an earlier generation, left over
// after a pause or restart, are ignored.
type TickMsg struct {
	Gen int
	At  time.Time
}

// Watch steps the cosine map once per tick and stops ticking on the fixed
// point. It keeps the loop's semantics: apply cos, then test cos(x) == x.
type Watch struct {
	start    float64
	x        float64
	step     int
	interval time.Duration
	running  bool
	done     bool
	gen      int
	history  []float64
	width    int
}

func NewWatch(start float64, interval time.Duration) Watch {
	return Watch{
		start:    start,
		x:        start,
		interval: interval,
		running:  true,
		history:  make([]float64, 0, historyCapacity),
		width:    80,
	}
}

func (m Watch) Value() float64  { return m.x }
func (m Watch) Steps() int      { return m.step }
func (m Watch) Converged() bool { return m.done }

func (m Watch) Init() tea.Cmd {
	return m.tick()
}

func (m Watch) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg{Gen: gen, At: t} })
}

func (m Watch) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			if m.done {
				return m, nil
			}
			m.running = !m.running
			m.gen++
			if m.running {
				return m, m.tick()
			}
		case "r":
			m.reset()
			return m, m.tick()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case TickMsg:
		if msg.Gen != m.gen || m.done || !m.running {
			return m, nil
		}
		m.advance()
		if m.done {
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Watch) advance() {
	m.x = cosine.Cos(m.x)
	m.step++
	m.history = append(m.history, m.x)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
	if cosine.Cos(m.x) == m.x {
		m.done = true
	}
}

func (m *Watch) reset() {
	m.x = m.start
	m.step = 0
	m.done = false
	m.running = true
	m.gen++
	m.history = m.history[:0]
}

func (m Watch) View() string {
	var s strings.Builder

	s.WriteString(Title.Render("COSINE FIXED POINT") + "\n")
	switch {
	case m.done:
		s.WriteString(StatusDone.Render(fixedpoint.DoneMessage) + "\n\n")
	case !m.running:
		s.WriteString(StatusPaused.Render("PAUSED") + "\n\n")
	default:
		s.WriteString(StatusRunning.Render("ITERATING") + "\n\n")
	}

	s.WriteString(MetricLabel.Render("value") + MetricValue.Render(fmt.Sprintf("cos(%.20f)", m.x)) + "\n")
	s.WriteString(MetricLabel.Render("start") + MetricValue.Render(fmt.Sprintf("%g", m.start)) + "\n")
	s.WriteString(MetricLabel.Render("step") + MetricValue.Render(fmt.Sprintf("%d", m.step)) + "\n")
	s.WriteString(MetricLabel.Render("distance") + MetricValue.Render(fmt.Sprintf("%.3e", math.Abs(m.x-cosine.Dottie))) + "\n")

	digits := CorrectDigits(m.x)
	s.WriteString(MetricLabel.Render("digits") + ProgressBar(float64(digits)/16, 32) + fmt.Sprintf(" %d/16", digits) + "\n\n")

	sparkWidth := m.width - 8
	if sparkWidth > 60 {
		sparkWidth = 60
	}
	s.WriteString(Sparkline(m.history, sparkWidth) + "\n")

	if len(m.history) > 1 {
		chartWidth := sparkWidth
		if chartWidth < 10 {
			chartWidth = 10
		}
		chart := asciigraph.Plot(LogErrors(m.history),
			asciigraph.Height(6),
			asciigraph.Width(chartWidth),
			asciigraph.Precision(1),
			asciigraph.Caption("log10 error"),
		)
		s.WriteString("\n" + chart + "\n")
	}

	s.WriteString("\n" + KeyHint.Render("SPACE:Pause  R:Restart  Q:Quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(s.String())
}
