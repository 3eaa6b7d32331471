package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/spinrad/internal/experiment"
)

const (
	graphWidth  = 70
	graphHeight = 10
)

type TickMsg time.Time

// Model drives an interactive truncation sweep: each tick computes the next
// lattice window and extends the convergence plot.
type Model struct {
	shape     experiment.Shape
	params    experiment.Params
	maxN      int
	points    []experiment.SweepPoint
	running   bool
	showGamma bool
	err       error
}

// NewModel prepares a live sweep of an infinite-lattice shape.
func NewModel(shape experiment.Shape, params experiment.Params, maxN int) Model {
	return Model{
		shape:   shape,
		params:  params,
		maxN:    maxN,
		points:  make([]experiment.SweepPoint, 0, maxN),
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/10, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the sweep.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.points = m.points[:0]
			m.err = nil
			m.running = true
		case "tab":
			m.showGamma = !m.showGamma
		}
	case TickMsg:
		if m.running && m.err == nil && len(m.points) < m.maxN {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) step() {
	p := m.params
	p.N = len(m.points) + 1

	omega, gamma, err := m.shape.Compute(p)
	if err != nil {
		m.err = err
		m.running = false
		return
	}

	point := experiment.SweepPoint{N: p.N, Omega: omega, Gamma: gamma}
	if len(m.points) > 0 {
		prev := m.points[len(m.points)-1]
		point.DeltaOmega = abs(omega - prev.Omega)
		point.DeltaGamma = abs(gamma - prev.Gamma)
	}
	m.points = append(m.points, point)
}

// View renders the convergence plot and current values.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("effective interactions: %s", m.shape.Name)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(fmt.Sprintf("error: %v\n", m.err))
		b.WriteString(helpStyle.Render("q quit"))
		return b.String()
	}

	if len(m.points) > 1 {
		series := make([]float64, len(m.points))
		caption := "omega_eff vs truncation"
		for i, p := range m.points {
			series[i] = p.Omega
		}
		if m.showGamma {
			caption = "gamma_eff vs truncation"
			for i, p := range m.points {
				series[i] = p.Gamma
			}
		}

		graph := asciigraph.Plot(series,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption(caption),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	if len(m.points) > 0 {
		last := m.points[len(m.points)-1]
		row := func(label, value string) {
			b.WriteString(labelStyle.Render(label))
			b.WriteString(valueStyle.Render(value))
			b.WriteString("\n")
		}
		row("truncation", fmt.Sprintf("%d / %d", last.N, m.maxN))
		row("omega_eff", fmt.Sprintf("%.8f", last.Omega))
		row("gamma_eff", fmt.Sprintf("%.8f", last.Gamma))
		row("delta omega", fmt.Sprintf("%.2e", last.DeltaOmega))
		row("delta gamma", fmt.Sprintf("%.2e", last.DeltaGamma))
	}

	switch {
	case len(m.points) >= m.maxN:
		b.WriteString(doneStyle.Render("sweep complete"))
		b.WriteString("\n")
	case !m.running:
		b.WriteString("paused\n")
	}

	b.WriteString(helpStyle.Render("space pause  r restart  tab omega/gamma  q quit"))
	return b.String()
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
