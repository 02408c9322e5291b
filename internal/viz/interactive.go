package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/sim"
	"github.com/san-kum/sortviz/internal/sorting"
)

var algorithmInfo = map[string]string{
	"bubble":    "swap adjacent pairs",
	"selection": "pick the minimum",
	"insertion": "shift into place",
	"none":      "leave as drawn",
}

var barSteps = []int{10, 20, 30, 50, 80, 120}

const (
	stateMenu = iota
	stateSim
)

// picker lets the user choose an algorithm and bar count before starting
// the live view.
type picker struct {
	state, cursor int
	algorithms    []string
	barsIdx       int
	cfg           config.Config
	logger        *log.Logger
	err           error
	live          Model
}

func newPicker(cfg *config.Config, logger *log.Logger) picker {
	p := picker{
		algorithms: sorting.NewRegistry().Names(),
		cfg:        *cfg,
		logger:     logger,
	}
	for i, name := range p.algorithms {
		if algo, err := sorting.NewRegistry().Resolve(cfg.Algorithm); err == nil && string(algo) == name {
			p.cursor = i
		}
	}
	p.barsIdx = len(barSteps) - 1
	for i, n := range barSteps {
		if n >= cfg.Bars.Count {
			p.barsIdx = i
			break
		}
	}
	return p
}

func (p picker) Init() tea.Cmd { return nil }

func (p picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p.state == stateSim {
		next, cmd := p.live.Update(msg)
		p.live = next.(Model)
		return p, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return p, tea.Quit
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.algorithms)-1 {
			p.cursor++
		}
	case "left", "h":
		if p.barsIdx > 0 {
			p.barsIdx--
		}
	case "right", "l":
		if p.barsIdx < len(barSteps)-1 {
			p.barsIdx++
		}
	case "enter", " ":
		return p.start()
	}
	return p, nil
}

func (p picker) start() (picker, tea.Cmd) {
	cfg := p.cfg
	cfg.Algorithm = p.algorithms[p.cursor]
	cfg.Bars.Count = barSteps[p.barsIdx]
	cfg.Heights = nil

	live, err := BuildModel(&cfg, p.logger)
	if err != nil {
		p.err = err
		return p, tea.Quit
	}
	p.live = live
	p.state = stateSim
	return p, live.Init()
}

func (p picker) View() string {
	if p.state == stateSim {
		return p.live.View()
	}

	var b strings.Builder
	title := GradientText("SORTVIZ", lipgloss.Color("#00ffff"), lipgloss.Color("#ff00ff"))
	b.WriteString("\n\n    " + title + "\n    " + Subtle.Render("sorting algorithm visualiser") + "\n    " + Subtle.Render("─────────────────────────") + "\n\n")

	cursor := lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	selected := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	dimmer := lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))

	for i, name := range p.algorithms {
		if i == p.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", cursor.Render("▸"), selected.Render(fmt.Sprintf("%-12s", name)), desc.Render(algorithmInfo[name])))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", dim.Render(fmt.Sprintf("  %-12s", name)), dimmer.Render(algorithmInfo[name])))
		}
	}

	b.WriteString(fmt.Sprintf("\n    %s %s\n", dim.Render("bars"), selected.Render(fmt.Sprintf("‹ %d ›", barSteps[p.barsIdx]))))

	key := lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	b.WriteString("\n    " + key.Render("j/k") + dim.Render(" navigate  ") + key.Render("h/l") + dim.Render(" bars  ") + key.Render("enter") + dim.Render(" start  ") + key.Render("q") + dim.Render(" quit") + "\n")
	return b.String()
}

// RunInteractive shows the algorithm menu and then the live view. A nil
// result means the user left the menu without starting.
func RunInteractive(cfg *config.Config, logger *log.Logger) (*sim.Result, error) {
	final, err := tea.NewProgram(newPicker(cfg, logger), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}
	p, ok := final.(picker)
	if !ok {
		return nil, fmt.Errorf("viz: unexpected model %T", final)
	}
	if p.err != nil {
		return nil, p.err
	}
	if p.state != stateSim {
		return nil, nil
	}
	if p.live.err != nil {
		return nil, p.live.err
	}
	res := p.live.Result()
	return &res, nil
}
