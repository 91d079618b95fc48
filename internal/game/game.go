package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/galton-board/internal/galton"
	"github.com/iburimskiy/galton-board/internal/render"
	"github.com/iburimskiy/galton-board/internal/sound"
)

type Options struct {
	NewSimulation func() *galton.Simulation
	Expected      []float64 // per-lane probabilities, nil to hide
	Style         render.Style
	Player        *sound.Player
	TPS           int
	Scale         int
	Title         string
}

// Game runs a Galton board inside an ebiten window. Update advances the
// simulation by one frame, Draw renders the current state.
type Game struct {
	opts Options
	sim  *galton.Simulation

	// input edge detection
	prevKey map[ebiten.Key]bool

	paused   bool
	showHUD  bool
	finished bool
	lastErr  error
}

func NewGame(opts Options) *Game {
	return &Game{
		opts:    opts,
		sim:     opts.NewSimulation(),
		prevKey: map[ebiten.Key]bool{},
		showHUD: true,
	}
}

func (g *Game) Simulation() *galton.Simulation { return g.sim }

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if justPressed(ebiten.KeyR) {
		g.restart()
	}
	if justPressed(ebiten.KeyM) {
		muted := g.opts.Player.ToggleMute()
		log.Printf("[SOUND] muted=%v", muted)
	}
	if justPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if justPressed(ebiten.KeyE) {
		if err := g.exportFileDialog(); err != nil {
			g.lastErr = err
		}
	}

	if g.paused {
		return nil
	}
	g.advance()
	return nil
}

func (g *Game) advance() {
	if g.sim.Done() {
		if !g.finished {
			g.finished = true
			log.Printf("[GALTON] all %d balls landed after %d frames", g.sim.Spawned(), g.sim.FrameNumber())
		}
		return
	}
	f := g.sim.Step()
	lanes := g.sim.Histogram().Lanes()
	for _, l := range f.Landed {
		g.opts.Player.Landed(l.Lane, lanes)
	}
}

func (g *Game) restart() {
	g.sim = g.opts.NewSimulation()
	g.finished = false
	g.lastErr = nil
	log.Println("[GALTON] restarted")
}

func (g *Game) Draw(dst *ebiten.Image) {
	s := screen{dst: dst}
	render.DrawFrame(s, g.sim, g.opts.Style)
	if g.opts.Expected != nil {
		render.DrawExpected(s, g.sim.Geometry(), g.sim.Histogram(), g.opts.Expected, g.opts.Style)
	}

	if !g.showHUD {
		return
	}
	ebitenutil.DebugPrintAt(dst, g.status(), 2, 2)
	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(dst, "Error: "+g.lastErr.Error(), 2, 34)
	}
}

func (g *Game) status() string {
	state := formatDuration(frameTime(g.sim.FrameNumber(), g.opts.TPS))
	switch {
	case g.paused:
		state += " paused"
	case g.sim.Done():
		state += " done"
	}
	return fmt.Sprintf("%s\nlanded %d/%d\nfalling %d",
		state, g.sim.Histogram().Total(), g.sim.MaxBalls(), g.sim.ActiveCount())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	geo := g.sim.Geometry()
	return int(geo.Width), int(geo.Height)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g := NewGame(opts)
	geo := g.sim.Geometry()

	ebiten.SetWindowSize(int(geo.Width)*opts.Scale, int(geo.Height)*opts.Scale)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
