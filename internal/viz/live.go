package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/sim"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	canvasRows   = 20
	graphPoints  = 36
	minTickDelay = time.Millisecond
)

type TickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model drives a sim.Session from bubbletea ticks: one tick, one comparison,
// one frame on the canvas.
type Model struct {
	session    *sim.Session
	canvas     *Canvas
	sortedness *metrics.Sortedness
	disorder   *metrics.Disorder
	effort     *metrics.WriteEffort
	metrics    metrics.Set

	interval time.Duration
	theme    Theme
	running  bool
	closed   bool
	showHelp bool
	err      error
}

// NewModel wraps s, which must render onto c, and presents the initial
// array.
func NewModel(s *sim.Session, c *Canvas, interval time.Duration, theme string) Model {
	if interval < minTickDelay {
		interval = minTickDelay
	}
	m := Model{
		session:    s,
		canvas:     c,
		sortedness: metrics.NewSortedness(),
		disorder:   metrics.NewDisorder(),
		effort:     metrics.NewWriteEffort(),
		interval:   interval,
		theme:      GetTheme(theme),
		running:    true,
	}
	m.metrics = metrics.Set{m.sortedness, m.disorder, m.effort}
	s.AddObserver(m.metrics)
	m.theme.Apply(s.Renderer())
	m.err = s.RenderIdle()
	return m
}

// BuildModel creates the session described by cfg on a terminal canvas.
func BuildModel(cfg *config.Config, logger *log.Logger) (Model, error) {
	c := NewCanvas(0, 0)
	s, err := sim.Build(cfg, c, TerminalLayout(0, 1, canvasRows), 0)
	if err != nil {
		return Model{}, err
	}
	s.SetLogger(logger)

	_, maxHeight := s.Array().Bounds()
	layout := TerminalLayout(s.Array().Len(), maxHeight, canvasRows)
	*c = *NewCanvas(int(layout.CanvasWidth), canvasRows)
	s.Renderer().Layout = layout

	return NewModel(s, c, cfg.FrameInterval, cfg.Theme), nil
}

func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.closed = true
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.theme.Apply(m.session.Renderer())
			if !m.running || m.session.Done() {
				m.err = m.session.RenderIdle()
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running && !m.session.Done() {
			if err := m.step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, tick(m.interval)
	}
	return m, nil
}

// step advances the sort by one comparison. The sorted array is shown
// without highlight once the driver finishes.
func (m *Model) step() error {
	done, err := m.session.Advance()
	if err != nil {
		return err
	}
	if done {
		m.metrics.OnFrame(m.finalFrame())
		return m.session.RenderIdle()
	}
	return nil
}

func (m *Model) finalFrame() (render.Frame, sorting.Stats) {
	return render.Frame{Heights: m.session.Array().Heights()}, m.session.Stats()
}

func (m *Model) reset() {
	m.session.Reset()
	m.metrics.Reset()
	m.running = true
	m.err = m.session.RenderIdle()
}

// Result reports the session state, with Closed set when the user quit.
func (m Model) Result() sim.Result {
	res := m.session.Result()
	res.Closed = m.closed
	return res
}

func (m Model) Err() error { return m.err }

func (m Model) View() string {
	var s strings.Builder

	status := StatusRunning.Render("RUNNING")
	switch {
	case m.session.Done():
		status = StatusSorted.Render("SORTED")
	case !m.running:
		status = StatusPaused.Render("PAUSED")
	}

	stats := m.session.Stats()
	s.WriteString(status + "\n\n")
	if h := m.sortedness.History(graphPoints); len(h) > 1 {
		chart := asciigraph.Plot(h,
			asciigraph.Height(4),
			asciigraph.Width(graphPoints),
			asciigraph.LowerBound(0),
			asciigraph.UpperBound(1),
			asciigraph.Precision(1),
			asciigraph.Caption("Sortedness"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}
	s.WriteString(MetricLabel.Render("Comparisons") + MetricValue.Render(fmt.Sprintf("%d", stats.Comparisons)) + "\n")
	s.WriteString(MetricLabel.Render("Swaps") + MetricValue.Render(fmt.Sprintf("%d", stats.Swaps)) + "\n")
	s.WriteString(MetricLabel.Render("Writes") + MetricValue.Render(fmt.Sprintf("%d", stats.Writes)) + "\n")
	s.WriteString(MetricLabel.Render("Write effort") + MetricValue.Render(fmt.Sprintf("%.2f", m.effort.Value())) + "\n")
	s.WriteString(MetricLabel.Render("Inversions") + MetricValue.Render(fmt.Sprintf("%d", m.disorder.Inversions())) + "\n")
	s.WriteString(MetricLabel.Render("Sorted") + ProgressBar(m.sortedness.Value(), 20) + "\n")
	s.WriteString(MetricLabel.Render("Theme") + MetricValue.Render(m.theme.Name) + "\n")
	s.WriteString("\n" + Separator(36) + "\n")
	s.WriteString(KeyHint.Render("SP:Pause R:Restart T:Theme\n?:Help   Q:Quit"))

	header := m.canvas.Label()
	canvasView := canvasStyle.Render(header + "\n\n" + m.canvas.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))

	if m.showHelp {
		help := helpBox.Render(strings.Join([]string{
			"KEYBOARD SHORTCUTS",
			"",
			"Space      Pause/Resume",
			"R          Restart with the initial bars",
			"T          Cycle themes",
			"?          Toggle this help",
			"Q/Esc      Quit",
		}, "\n"))
		return help + "\n\n" + mainView
	}
	return mainView
}

// Run shows m until the user quits and returns the final session result.
func Run(m Model) (*sim.Result, error) {
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}
	fm, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("viz: unexpected model %T", final)
	}
	if fm.err != nil {
		return nil, fm.err
	}
	res := fm.Result()
	return &res, nil
}
