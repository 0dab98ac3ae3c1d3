package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ergo"
	"github.com/gogpu/ergo/internal/demo"
)

// Config describes what ergodemo renders. Background overrides the
// scene's clear color as a hex string such as "#0052ac"; empty keeps the
// scene default.
type Config struct {
	Scene      string  `yaml:"scene"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Time       float64 `yaml:"time"`
	Frames     int     `yaml:"frames"`
	FPS        float64 `yaml:"fps"`
	Output     string  `yaml:"output"`
	Background string  `yaml:"background"`
}

// DefaultConfig returns the settings used when neither a config file nor
// flags say otherwise.
func DefaultConfig() Config {
	return Config{
		Scene:  "nested",
		Width:  512,
		Height: 512,
		Frames: 1,
		FPS:    30,
		Output: "ergodemo.png",
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return cfg, fmt.Errorf("ergodemo: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("ergodemo: parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("ergodemo: invalid size %dx%d (both must be > 0)", c.Width, c.Height)
	}
	if c.Frames < 1 {
		return fmt.Errorf("ergodemo: frames must be >= 1, got %d", c.Frames)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("ergodemo: fps must be > 0, got %v", c.FPS)
	}
	if c.Output == "" {
		return errors.New("ergodemo: output path is empty")
	}
	if _, err := demo.New(c.Scene); err != nil {
		return fmt.Errorf("ergodemo: %w", err)
	}
	if _, err := c.sceneOptions(); err != nil {
		return err
	}
	return nil
}

// sceneOptions translates the scene settings into demo options.
func (c Config) sceneOptions() ([]demo.Option, error) {
	var opts []demo.Option
	if c.Background != "" {
		bg, err := ergo.ParseHex(c.Background)
		if err != nil {
			return nil, fmt.Errorf("ergodemo: background: %w", err)
		}
		opts = append(opts, demo.WithBackground(bg))
	}
	return opts, nil
}

// flagValues holds the command line settings before they are merged.
type flagValues struct {
	config  string
	verbose bool
	cfg     Config
}

// newFlagSet registers the command line flags with defaults taken from
// DefaultConfig.
func newFlagSet(v *flagValues) *flag.FlagSet {
	def := DefaultConfig()
	fs := flag.NewFlagSet("ergodemo", flag.ContinueOnError)
	fs.StringVar(&v.config, "config", "", "YAML config file")
	fs.BoolVar(&v.verbose, "v", false, "log debug output to stderr")
	fs.StringVar(&v.cfg.Scene, "scene", def.Scene, fmt.Sprintf("scene to render %v", demo.Names()))
	fs.IntVar(&v.cfg.Width, "width", def.Width, "image width")
	fs.IntVar(&v.cfg.Height, "height", def.Height, "image height")
	fs.Float64Var(&v.cfg.Time, "time", def.Time, "scene time of the first frame in seconds")
	fs.IntVar(&v.cfg.Frames, "frames", def.Frames, "number of frames to render")
	fs.Float64Var(&v.cfg.FPS, "fps", def.FPS, "frames per second of scene time")
	fs.StringVar(&v.cfg.Background, "background", def.Background, "scene background as hex, e.g. #0052ac")
	fs.StringVar(&v.cfg.Output, "output", def.Output, "output file; frames are numbered when -frames > 1")
	return fs
}

// parseArgs parses args and merges them with the config file, if any.
// Flags set explicitly on the command line override file values.
func parseArgs(args []string) (Config, bool, error) {
	var v flagValues
	fs := newFlagSet(&v)
	if err := fs.Parse(args); err != nil {
		return Config{}, false, err
	}
	if v.config == "" {
		return v.cfg, v.verbose, nil
	}

	cfg, err := LoadConfig(v.config)
	if err != nil {
		return Config{}, false, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = v.cfg.Scene
		case "width":
			cfg.Width = v.cfg.Width
		case "height":
			cfg.Height = v.cfg.Height
		case "time":
			cfg.Time = v.cfg.Time
		case "frames":
			cfg.Frames = v.cfg.Frames
		case "fps":
			cfg.FPS = v.cfg.FPS
		case "output":
			cfg.Output = v.cfg.Output
		case "background":
			cfg.Background = v.cfg.Background
		}
	})
	return cfg, v.verbose, nil
}
