package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tui "github.com/charmbracelet/bubbletea"

	"github.com/iburimskiy/galton-board/internal/config"
	"github.com/iburimskiy/galton-board/internal/galton"
	"github.com/iburimskiy/galton-board/internal/game"
	"github.com/iburimskiy/galton-board/internal/render"
	"github.com/iburimskiy/galton-board/internal/report"
	"github.com/iburimskiy/galton-board/internal/sound"
	"github.com/iburimskiy/galton-board/internal/term"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config.Config) error {
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	palette, err := render.ParsePalette(cfg.Palette)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}
	style := render.DefaultStyle
	style.Palette = palette

	geo := galton.NewGeometry(cfg.Width, cfg.Height, cfg.GridSize)
	rule, err := galton.NewRule(cfg.Mode, galton.NewRand(cfg.Seed), cfg.Alpha, cfg.Beta)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}
	probs := galton.Expected(geo, rule)

	// Restarts get a fresh generator from the same seed, so a seeded run
	// replays identically.
	newSimulation := func() *galton.Simulation {
		r, _ := galton.NewRule(cfg.Mode, galton.NewRand(cfg.Seed), cfg.Alpha, cfg.Beta)
		return galton.NewSimulation(geo, cfg.MaxBalls, r)
	}
	log.Printf("[GALTON] board %dx%d grid=%d lanes=%d rows=%d balls=%d mode=%s seed=%d",
		cfg.Width, cfg.Height, cfg.GridSize, geo.LaneCount(), geo.PegRows(), cfg.MaxBalls, cfg.Mode, cfg.Seed)

	overlay := probs
	if !cfg.Expected {
		overlay = nil
	}

	switch cfg.UI {
	case "headless":
		sim := newSimulation()
		sim.Run(cfg.Frames)
		fmt.Print(report.Summary(sim, cfg.Mode, overlay))
		return exportIfRequested(cfg, sim, probs)
	case "term":
		player := openSound(cfg)
		defer player.Close()
		sim, err := term.Run(term.Options{
			NewSimulation: newSimulation,
			Expected:      overlay,
			Style:         style,
			Player:        player,
			TPS:           cfg.TPS,
			ExportPath:    cfg.Export,
			AltScreen:     true,
		})
		if err != nil {
			return err
		}
		return exportIfRequested(cfg, sim, probs)
	default:
		player := openSound(cfg)
		defer player.Close()
		return game.Run(game.Options{
			NewSimulation: newSimulation,
			Expected:      overlay,
			Style:         style,
			Player:        player,
			TPS:           cfg.TPS,
			Scale:         cfg.Scale,
			Title:         "Galton Board - Space: pause, R: restart, M: mute, E: export, Esc/Q: quit",
		})
	}
}

func openSound(cfg config.Config) *sound.Player {
	if !cfg.Sound {
		return nil
	}
	p, err := sound.Open(config.ClickVoices, cfg.Volume)
	if err != nil {
		log.Printf("[SOUND] disabled: %v", err)
		return nil
	}
	return p
}

func exportIfRequested(cfg config.Config, sim *galton.Simulation, probs []float64) error {
	if cfg.Export == "" || sim == nil {
		return nil
	}
	return report.ExportCSV(cfg.Export, sim, probs)
}

// setupLogging keeps log output off the terminal while the TUI owns it.
func setupLogging(cfg config.Config) (func(), error) {
	switch {
	case cfg.UI == "term" && cfg.LogFile != "":
		f, err := tui.LogToFile(cfg.LogFile, "galton")
		if err != nil {
			return nil, err
		}
		return func() { _ = f.Close() }, nil
	case cfg.UI == "term":
		log.SetOutput(io.Discard)
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		log.SetOutput(f)
		return func() { _ = f.Close() }, nil
	}
	return func() {}, nil
}
