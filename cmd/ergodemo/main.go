// Command ergodemo renders the ergo demo scenes to PNG files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/ergo"
	"github.com/gogpu/ergo/internal/demo"
)

func main() {
	cfg, verbose, err := parseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("ergodemo: %v", err)
	}
	if verbose {
		ergo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	paths, err := render(cfg)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	for _, p := range paths {
		log.Printf("Frame saved to %s (%dx%d)\n", p, cfg.Width, cfg.Height)
	}
}

// render draws every configured frame and returns the files written.
func render(cfg Config) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := cfg.sceneOptions()
	if err != nil {
		return nil, err
	}
	scene, err := demo.New(cfg.Scene, opts...)
	if err != nil {
		return nil, err
	}

	ctx := ergo.NewContext(cfg.Width, cfg.Height)
	paths := make([]string, 0, cfg.Frames)
	for i := 0; i < cfg.Frames; i++ {
		t := cfg.Time + float64(i)/cfg.FPS
		scene.Render(ctx, float32(t))

		path := framePath(cfg.Output, i, cfg.Frames)
		if err := ctx.Screen().SavePNG(path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// framePath numbers output files when more than one frame is rendered:
// "out.png" becomes "out-000.png", "out-001.png" and so on.
func framePath(output string, i, frames int) string {
	if frames <= 1 {
		return output
	}
	ext := filepath.Ext(output)
	return fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(output, ext), i, ext)
}
