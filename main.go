package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gookit/color"

	"tuberoad/pkg/engine/scroll"
	"tuberoad/pkg/engine/terminal"
	"tuberoad/pkg/engine/tilemap"
	"tuberoad/pkg/game/config"
	"tuberoad/pkg/game/course"
	"tuberoad/pkg/game/devtools"
	"tuberoad/pkg/game/driver"
	"tuberoad/pkg/game/generator"
	"tuberoad/pkg/game/locale"
	"tuberoad/pkg/game/menu"
	"tuberoad/pkg/game/renderer"
	ebitenrenderer "tuberoad/pkg/game/renderer/ebiten"
	"tuberoad/pkg/game/renderer/tui"
)

func main() {
	cfg := config.Current()

	backend := flag.String("backend", cfg.Backend, "renderer backend: ebiten or tui")
	speed := flag.Float64("speed", cfg.Speed(), "autoscroll speed in pixels per tick")
	coursePath := flag.String("course", "", "course file to load instead of the built-in tube")
	generate := flag.String("generate", "", "generate a random course instead: walker or segments")
	seed := flag.Int64("seed", 0, "seed for -generate (0 = time based)")
	rows := flag.Int("rows", 80, "row count for -generate")
	frames := flag.Int("frames", 0, "stop the tui backend after this many frames (0 = run until quit)")
	screenshot := flag.Bool("screenshot", false, "write one frame as PNG and exit")
	dump := flag.Bool("dump", false, "write the draw calls of one frame to frame.txt and exit")
	printCourse := flag.Bool("print-course", false, "print the course in text format and exit")
	lang := flag.String("lang", cfg.Language, "UI language")
	keys := flag.Bool("keys", false, "print the key bindings and exit")
	flag.Parse()

	if err := menu.ApplyOverrides(cfg.KeyBindings); err != nil {
		color.Warn.Printf("Ignoring key bindings: %v\n", err)
	}
	if *keys {
		menu.PrintBindings(os.Stdout)
		return
	}

	if err := locale.Set(*lang); err != nil {
		log.Printf("Warning: %v, falling back to %s", err, config.DefaultLanguage)
		locale.Set(config.DefaultLanguage)
	}

	m, err := loadCourse(*coursePath, *generate, *seed, *rows)
	if err != nil {
		color.Error.Printf("Cannot load course: %v\n", err)
		os.Exit(1)
	}
	paletteErr := checkPalette(m)

	start := course.StartOffset(m, renderer.ReferenceWidth)
	switch {
	case *printCourse:
		if err := course.Format(os.Stdout, m); err != nil {
			log.Fatal(err)
		}
		return
	case *screenshot:
		path, err := devtools.SaveScreenshotPNG(".", m, start, config.DefaultWidth, config.DefaultHeight)
		reportTool(path, err, "SCREENSHOT_SAVED")
		return
	case *dump:
		path, err := devtools.DumpFrameToFile(".", m, start, config.DefaultWidth, config.DefaultHeight)
		reportTool(path, err, "")
		return
	}

	// Frames with holes are fine for the one-shot tools, not for a live run.
	if paletteErr != nil {
		os.Exit(1)
	}

	scene := renderer.NewScene(m, driver.New(start, *speed), cfg)

	r, err := newRenderer(*backend, scene, *frames)
	if err != nil {
		color.Error.Printf("%v\n", err)
		os.Exit(1)
	}
	renderer.SetRenderer(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := renderer.Run(ctx); err != nil {
		color.Error.Printf("%s: %v\n", r.Name(), err)
		os.Exit(1)
	}
	fmt.Println(locale.Get("GOODBYE"))
}

func loadCourse(path, generatorName string, seed int64, rows int) (*tilemap.TileMap, error) {
	switch {
	case path != "":
		return course.LoadFile(path)
	case generatorName != "":
		g, err := generator.ByName(generatorName)
		if err != nil {
			return nil, err
		}
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		log.Printf("Generating %d-row course with %s (seed %d)", rows, g.Name(), seed)
		return g.Generate(seed, rows)
	}
	return course.Tube(), nil
}

// checkPalette reports tile ids the built-in artwork cannot draw
func checkPalette(m *tilemap.TileMap) error {
	err := renderer.CheckPalette(m)
	var perr *renderer.PaletteError
	if errors.As(err, &perr) {
		color.Error.Println(locale.Getf("MISSING_TILES", perr.IDs))
	}
	return err
}

func newRenderer(name string, scene *renderer.Scene, frames int) (renderer.Renderer, error) {
	switch name {
	case "ebiten":
		return ebitenrenderer.New(scene)
	case "tui":
		return tui.New(scene, tui.Options{
			Frames: frames,
			Keys:   terminal.IsTerminal(),
		}), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want ebiten or tui)", name)
	}
}

// reportTool prints the outcome of a one-shot developer tool. Missing tiles
// still produce output, so they are reported as warnings.
func reportTool(path string, err error, msgID string) {
	var missing *scroll.MissingTileError
	switch {
	case path == "":
		color.Error.Printf("%v\n", err)
		os.Exit(1)
	case errors.As(err, &missing):
		color.Warn.Println(locale.Getf("RENDER_FAILED", err))
	case err != nil:
		color.Error.Printf("%v\n", err)
		os.Exit(1)
	}
	if msgID != "" {
		color.Info.Println(locale.Getf(msgID, path))
		return
	}
	color.Info.Println(path)
}
