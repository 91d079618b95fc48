package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	CanvasWidth  = 200
	CanvasHeight = 400
	GridSize     = 10
	MaxBalls     = 2000

	// Window
	WindowScale = 2
	TPS         = 60

	// Polya urn weights
	PolyaAlpha = 1.0
	PolyaBeta  = 3.0

	// Sound
	ClickVoices = 8
	Volume      = -1.0
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	// Board
	Width    int
	Height   int
	GridSize int
	MaxBalls int

	// Deflection
	Mode  string // fair | polya
	Alpha float64
	Beta  float64
	Seed  int64

	// Front end
	UI       string // window | term | headless
	Scale    int
	TPS      int
	Palette  string
	Expected bool
	Frames   int // headless frame limit, 0 runs to completion

	// Sound
	Sound  bool
	Volume float64

	// Output
	Export  string
	LogFile string
}

func Default() Config {
	return Config{
		Width:    CanvasWidth,
		Height:   CanvasHeight,
		GridSize: GridSize,
		MaxBalls: MaxBalls,
		Mode:     "fair",
		Alpha:    PolyaAlpha,
		Beta:     PolyaBeta,
		UI:       "window",
		Scale:    WindowScale,
		TPS:      TPS,
		Palette:  "classic",
		Expected: true,
		Sound:    true,
		Volume:   Volume,
	}
}

// Load builds the configuration from defaults, an optional .env file,
// GALTON_* environment variables and finally command-line flags.
func Load(args []string) (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := Default()
	cfg.Width = getEnvInt("GALTON_WIDTH", cfg.Width)
	cfg.Height = getEnvInt("GALTON_HEIGHT", cfg.Height)
	cfg.GridSize = getEnvInt("GALTON_GRID_SIZE", cfg.GridSize)
	cfg.MaxBalls = getEnvInt("GALTON_MAX_BALLS", cfg.MaxBalls)
	cfg.Mode = getEnv("GALTON_MODE", cfg.Mode)
	cfg.Alpha = getEnvFloat("GALTON_ALPHA", cfg.Alpha)
	cfg.Beta = getEnvFloat("GALTON_BETA", cfg.Beta)
	cfg.Seed = int64(getEnvInt("GALTON_SEED", int(cfg.Seed)))
	cfg.UI = getEnv("GALTON_UI", cfg.UI)
	cfg.Scale = getEnvInt("GALTON_SCALE", cfg.Scale)
	cfg.TPS = getEnvInt("GALTON_TPS", cfg.TPS)
	cfg.Palette = getEnv("GALTON_PALETTE", cfg.Palette)
	cfg.Expected = getEnvBool("GALTON_EXPECTED", cfg.Expected)
	cfg.Frames = getEnvInt("GALTON_FRAMES", cfg.Frames)
	cfg.Sound = getEnvBool("GALTON_SOUND", cfg.Sound)
	cfg.Volume = getEnvFloat("GALTON_VOLUME", cfg.Volume)
	cfg.Export = getEnv("GALTON_EXPORT", cfg.Export)
	cfg.LogFile = getEnv("GALTON_LOG_FILE", cfg.LogFile)

	fs := flag.NewFlagSet("galton", flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Board width; the peg field is a width×width square")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Board height")
	fs.IntVar(&cfg.GridSize, "grid", cfg.GridSize, "Peg spacing (even)")
	fs.IntVar(&cfg.MaxBalls, "balls", cfg.MaxBalls, "Ball budget; one ball is spawned every other frame until frame 2×balls")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "Deflection model: fair or polya")
	fs.Float64Var(&cfg.Alpha, "alpha", cfg.Alpha, "Polya urn weight for right turns")
	fs.Float64Var(&cfg.Beta, "beta", cfg.Beta, "Polya urn weight for left turns")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = time based)")
	fs.StringVar(&cfg.UI, "ui", cfg.UI, "Front end: window, term or headless")
	fs.IntVar(&cfg.Scale, "scale", cfg.Scale, "Window pixels per board unit")
	fs.IntVar(&cfg.TPS, "tps", cfg.TPS, "Frames per second")
	fs.StringVar(&cfg.Palette, "palette", cfg.Palette, "Colours: classic or rainbow")
	fs.BoolVar(&cfg.Expected, "expected", cfg.Expected, "Overlay the expected distribution")
	fs.IntVar(&cfg.Frames, "frames", cfg.Frames, "Headless: stop after this many frames (0 = until all balls land)")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Click when a ball lands")
	fs.Float64Var(&cfg.Volume, "volume", cfg.Volume, "Click volume, base-2 exponent in [-5,2]")
	fs.StringVar(&cfg.Export, "export", cfg.Export, "Write the final histogram as CSV to this path")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file")
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.GridSize < 2 || c.GridSize%2 != 0:
		return invalid("-grid must be an even number >= 2")
	case c.Width < 2*c.GridSize || c.Width%c.GridSize != 0:
		return invalid("-width must be a multiple of -grid and at least two cells")
	case c.Height <= c.Width:
		return invalid("-height must be greater than -width")
	case c.MaxBalls < 1:
		return invalid("-balls must be >= 1")
	case c.Mode != "fair" && c.Mode != "polya":
		return invalid("-mode must be fair or polya")
	case c.Alpha <= 0 || c.Beta <= 0:
		return invalid("-alpha and -beta must be > 0")
	case c.UI != "window" && c.UI != "term" && c.UI != "headless":
		return invalid("-ui must be window, term or headless")
	case c.Scale < 1:
		return invalid("-scale must be >= 1")
	case c.TPS < 1:
		return invalid("-tps must be >= 1")
	case c.Frames < 0:
		return invalid("-frames must be >= 0")
	case c.Volume < -5 || c.Volume > 2:
		return invalid("-volume must be in [-5,2]")
	}
	return nil
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalid, msg)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
