package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/controlbox/internal/element"
	"github.com/san-kum/controlbox/internal/signal"
)

const historyCapacity = 600

type TickMsg time.Time

// Model steps a plant element against its input source in real time and
// renders a scrolling response trace. The element supplied at construction
// is kept pristine; the view steps a clone so a reset replays from the
// initial state.
type Model struct {
	initial element.Element
	plant   element.Element
	source  signal.Signal
	dt      float64
	t       float64
	u, y    float64

	inputs  []float64
	outputs []float64
	paused  bool
	fps     int
}

func NewModel(plant element.Element, source signal.Signal, dt float64, fps int) Model {
	return Model{
		initial: plant,
		plant:   plant.Clone(),
		source:  source,
		dt:      dt,
		fps:     fps,
		inputs:  make([]float64, 0, historyCapacity),
		outputs: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.plant = m.initial.Clone()
			m.t = 0
			m.u, m.y = 0, 0
			m.inputs = m.inputs[:0]
			m.outputs = m.outputs[:0]
		}
		return m, nil

	case TickMsg:
		if !m.paused {
			m.u = m.source.At(m.t)
			m.y = m.plant.Step(m.u)
			m.t += m.dt

			m.inputs = append(m.inputs, m.u)
			m.outputs = append(m.outputs, m.y)
			if len(m.inputs) > historyCapacity {
				m.inputs = m.inputs[1:]
				m.outputs = m.outputs[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(m.plant.String()))
	sb.WriteString("\n")

	if len(m.outputs) > 1 {
		graph := asciigraph.PlotMany(
			[][]float64{m.inputs, m.outputs},
			asciigraph.Width(plotWidth),
			asciigraph.Height(plotHeight),
			asciigraph.SeriesColors(asciigraph.Gray, asciigraph.Green),
		)
		sb.WriteString(graphStyle.Render(graph))
		sb.WriteString("\n")
	}

	sb.WriteString(labelStyle.Render("t") + valueStyle.Render(fmt.Sprintf("%.2f", m.t)) + "\n")
	sb.WriteString(labelStyle.Render("input") + valueStyle.Render(fmt.Sprintf("%.4f", m.u)) + "\n")
	sb.WriteString(labelStyle.Render("output") + valueStyle.Render(fmt.Sprintf("%.4f", m.y)) + "\n")

	status := "running"
	if m.paused {
		status = "paused"
	}
	sb.WriteString(helpStyle.Render(fmt.Sprintf("[%s] space pause · r reset · q quit", status)))
	return sb.String()
}

// RunLive starts the interactive live view.
func RunLive(plant element.Element, source signal.Signal, dt float64, fps int) error {
	p := tea.NewProgram(NewModel(plant, source, dt, fps))
	_, err := p.Run()
	return err
}
