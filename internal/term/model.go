package term

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tui "github.com/charmbracelet/bubbletea"
	styles "github.com/charmbracelet/lipgloss"
	plot "github.com/chriskim06/drawille-go"

	"github.com/iburimskiy/galton-board/internal/galton"
	"github.com/iburimskiy/galton-board/internal/render"
	"github.com/iburimskiy/galton-board/internal/report"
	"github.com/iburimskiy/galton-board/internal/sound"
)

type Options struct {
	NewSimulation func() *galton.Simulation
	Expected      []float64
	Style         render.Style
	Player        *sound.Player
	TPS           int
	ExportPath    string
	AltScreen     bool
}

var (
	borderColor = styles.AdaptiveColor{Light: "#555", Dark: "#555"}
	statusColor = styles.AdaptiveColor{Light: "0", Dark: "15"}
	errColor    = styles.AdaptiveColor{Light: "1", Dark: "9"}
	plotStyle   = styles.NewStyle().
			BorderStyle(styles.NormalBorder()).
			BorderForeground(borderColor)
	statusStyle = styles.NewStyle().Foreground(statusColor)
	errStyle    = styles.NewStyle().Foreground(errColor)
)

type frameMsg time.Time

func doFrameTick(tps int) tui.Cmd {
	return tui.Every(time.Second/time.Duration(tps), func(t time.Time) tui.Msg {
		return frameMsg(t)
	})
}

type model struct {
	opts   Options
	sim    *galton.Simulation
	canvas *Canvas
	help   help.Model
	plot   *plot.Canvas
	series [][]float64

	width, height int
	paused        bool
	status        string
	err           error
}

func newModel(opts Options) *model {
	const (
		defaultWidth  = 40
		defaultHeight = 20
	)
	m := &model{
		opts: opts,
		help: help.New(),
	}
	m.reset()
	m.resizePlot(defaultWidth, defaultHeight)
	return m
}

func (m *model) reset() {
	m.sim = m.opts.NewSimulation()
	g := m.sim.Geometry()
	m.canvas = NewCanvas(g.Width, g.Height+g.GridSize/2, g.GridSize/2, g.GridSize)
	lanes := g.LaneCount()
	m.series = [][]float64{make([]float64, lanes), make([]float64, lanes)}
}

func (m *model) resizePlot(w, h int) {
	p := plot.NewCanvas(w, h)
	p.NumDataPoints = m.sim.Geometry().LaneCount()
	p.ShowAxis = true
	if styles.DefaultRenderer().HasDarkBackground() {
		p.LineColors = []plot.Color{plot.LightGray, plot.Red}
	} else {
		p.LineColors = []plot.Color{plot.Black, plot.Red}
	}
	m.plot = &p
	m.updatePlot()
}

func (m *model) Init() tui.Cmd {
	return doFrameTick(m.opts.TPS)
}

func (m *model) Update(msg tui.Msg) (tui.Model, tui.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if !m.paused {
			m.advance()
		}
		return m, doFrameTick(m.opts.TPS)
	case tui.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		cols, rows := m.canvas.Size()
		w := max(10, m.width-cols-3)
		h := max(5, min(rows, m.height-4)-2)
		m.resizePlot(w, h)
		return m, nil
	case tui.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tui.Quit
		case key.Matches(msg, keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, keys.Restart):
			m.reset()
			m.updatePlot()
			m.status = "restarted"
		case key.Matches(msg, keys.Mute):
			if m.opts.Player.ToggleMute() {
				m.status = "muted"
			} else {
				m.status = "sound on"
			}
		case key.Matches(msg, keys.Export):
			m.export()
		}
	}
	return m, nil
}

func (m *model) advance() {
	if m.sim.Done() {
		return
	}
	f := m.sim.Step()
	lanes := m.sim.Histogram().Lanes()
	for _, l := range f.Landed {
		m.opts.Player.Landed(l.Lane, lanes)
	}
	if len(f.Landed) > 0 {
		m.updatePlot()
	}
	if m.sim.Done() {
		log.Printf("[GALTON] all %d balls landed after %d frames", m.sim.Spawned(), m.sim.FrameNumber())
	}
}

// updatePlot refreshes the observed and expected series from the histogram.
func (m *model) updatePlot() {
	h := m.sim.Histogram()
	total := float64(h.Total())
	for i := range m.series[0] {
		m.series[0][i] = float64(h.Count(i))
		m.series[1][i] = 0
		if i < len(m.opts.Expected) {
			m.series[1][i] = m.opts.Expected[i] * total
		}
	}
	if m.opts.Expected == nil {
		m.plot.Fill(m.series[:1])
		return
	}
	m.plot.Fill(m.series)
}

func (m *model) export() {
	path := m.opts.ExportPath
	if path == "" {
		path = "galton.csv"
	}
	if err := report.ExportCSV(path, m.sim, m.opts.Expected); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.status = "exported " + path
}

func (m *model) View() string {
	render.DrawFrame(m.canvas, m.sim, m.opts.Style)
	board := m.canvas.String()

	right := plotStyle.Render(m.plot.String())
	view := styles.JoinHorizontal(styles.Top, board, " ", right)

	state := "running"
	switch {
	case m.paused:
		state = "paused"
	case m.sim.Done():
		state = "done"
	}
	line := fmt.Sprintf("%s  frame %d  landed %d/%d  falling %d",
		state, m.sim.FrameNumber(), m.sim.Histogram().Total(), m.sim.MaxBalls(), m.sim.ActiveCount())
	if m.status != "" {
		line += "  " + m.status
	}
	parts := []string{view, statusStyle.Render(line)}
	if m.err != nil {
		parts = append(parts, errStyle.Render("ERROR: "+m.err.Error()))
	}
	parts = append(parts, m.help.View(keys))
	return styles.JoinVertical(styles.Left, parts...)
}

// Run starts the terminal front end and blocks until the user quits. The
// final model's simulation is returned for reporting.
func Run(opts Options) (*galton.Simulation, error) {
	m := newModel(opts)
	var progOpts []tui.ProgramOption
	if opts.AltScreen {
		progOpts = append(progOpts, tui.WithAltScreen())
	}
	final, err := tui.NewProgram(m, progOpts...).Run()
	if err != nil {
		return nil, err
	}
	return final.(*model).sim, nil
}
