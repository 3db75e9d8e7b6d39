package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"github.com/df07/go-scanline-raytracer/pkg/config"
	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/debugdraw"
	"github.com/df07/go-scanline-raytracer/pkg/renderer"
	"github.com/df07/go-scanline-raytracer/pkg/scene"
)

func main() {
	// Settings from .env and RAYTRACER_* seed the flag defaults
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.Scene, "scene", cfg.Scene, "Scene ID: "+strings.Join(scene.Available(), ", "))
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Image width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Image height in pixels")
	flag.IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "Reflection recursion depth")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "Parallel scanline workers (0 = CPU count)")
	flag.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "Output directory")
	flag.IntVar(&cfg.Upscale, "upscale", cfg.Upscale, "Integer upscale factor for the saved image")
	flag.BoolVar(&cfg.Wireframe, "wireframe", cfg.Wireframe, "Also save an XY wireframe of the scene")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid options: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Starting Scanline Raytracer...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	files, err := run(ctx, cfg, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	for _, f := range files {
		fmt.Printf("Saved %s\n", f)
	}
}

func printHelp() {
	fmt.Println("Scanline Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, group := range scene.ListAllScenes().Groups {
		for _, info := range group.Scenes {
			fmt.Printf("  %-12s - %s\n", info.ID, info.Description)
		}
	}
	fmt.Println()
	fmt.Println("Settings can also come from RAYTRACER_* environment variables or a .env file.")
	fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>_<id>.png")
}

// createScene resolves a scene ID to a built-in scene
func createScene(sceneID string) (*scene.Scene, error) {
	if sceneID == "" {
		return nil, fmt.Errorf("no scene specified")
	}
	return scene.Create(sceneID)
}

// run renders one frame and writes the image (and optionally a wireframe)
// to disk, returning the paths written.
func run(ctx context.Context, cfg config.Config, logger core.Logger) ([]string, error) {
	sc, err := createScene(cfg.Scene)
	if err != nil {
		return nil, err
	}

	outputDir := filepath.Join(cfg.OutputDir, cfg.Scene)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	surface := renderer.NewImageSurface(cfg.Width, cfg.Height)
	rt := renderer.NewRaytracer(sc, surface, renderer.RenderConfig{
		MaxDepth:   cfg.MaxDepth,
		Epsilon:    cfg.Epsilon,
		NumWorkers: cfg.Workers,
	}, logger)

	stats, err := rt.RenderFrame(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("render failed: %w", err)
	}
	logger.Printf("%d scanlines, %d primary hits of %d pixels\n", stats.Scanlines, stats.PrimaryHits, stats.TotalPixels)

	base := outputBase(outputDir, time.Now(), uuid.New())
	var written []string

	renderPath := base + ".png"
	if err := imaging.Save(upscale(surface.Image(), cfg.Upscale), renderPath); err != nil {
		return nil, fmt.Errorf("failed to save render: %w", err)
	}
	written = append(written, renderPath)

	if cfg.Wireframe {
		wire := debugdraw.Render(sc, debugdraw.DefaultOptions(cfg.Width, cfg.Height))
		wirePath := base + "_wireframe.png"
		if err := imaging.Save(upscale(wire, cfg.Upscale), wirePath); err != nil {
			return written, fmt.Errorf("failed to save wireframe: %w", err)
		}
		written = append(written, wirePath)

		overlayPath := base + "_overlay.png"
		if err := imaging.Save(upscale(overlay(surface.Image(), wire), cfg.Upscale), overlayPath); err != nil {
			return written, fmt.Errorf("failed to save overlay: %w", err)
		}
		written = append(written, overlayPath)
	}

	return written, nil
}

// overlay composites the wireframe over the render at half opacity
func overlay(render, wire image.Image) image.Image {
	return imaging.Overlay(render, wire, image.Pt(0, 0), 0.5)
}

// outputBase builds the file path without extension for a render
func outputBase(dir string, at time.Time, id uuid.UUID) string {
	return filepath.Join(dir, fmt.Sprintf("render_%s_%s", at.Format("20060102_150405"), id.String()[:8]))
}

// upscale enlarges img by an integer factor with nearest-neighbor sampling
// so individual scanline pixels stay sharp.
func upscale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	return resize.Resize(uint(b.Dx()*factor), uint(b.Dy()*factor), img, resize.NearestNeighbor)
}
