// Command viewer opens a window and renders a scene progressively, a few
// scanlines per tick, while polling the keyboard.
//
//	Escape       quit
//	Left/Right   orbit the camera about the Y axis
//	Up/Down      tween the camera towards / away from its look-at point
//	Space        toggle automatic orbiting
package main

import (
	"errors"
	"flag"
	"image"
	"log"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/nfnt/resize"

	"github.com/df07/go-scanline-raytracer/pkg/config"
	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/renderer"
	"github.com/df07/go-scanline-raytracer/pkg/scene"
)

const (
	orbitStep   = math.Pi / 36 // Radians per key press or auto-orbit frame
	dollyFrames = 12
	dollyFactor = 0.25 // Fraction of the camera-to-target distance moved per dolly
)

// viewer implements ebiten.Game
type viewer struct {
	rt           *renderer.Raytracer
	progressive  *renderer.Progressive
	surface      *renderer.ImageSurface
	linesPerTick int
	autoOrbit    bool

	screen *ebiten.Image
	scale  int
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.autoOrbit = !v.autoOrbit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		v.rt.RotateCameraAboutY(-orbitStep)
		v.progressive.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		v.rt.RotateCameraAboutY(orbitStep)
		v.progressive.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		v.dolly(dollyFactor)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		v.dolly(-dollyFactor)
	}

	stats, done, err := v.progressive.Step(v.linesPerTick)
	if err != nil {
		return err
	}
	if done {
		if v.progressive.Frames() == 1 {
			log.Printf("First frame in %v (%.1f%% coverage)", stats.Duration, 100*stats.Coverage())
		}
		if v.autoOrbit {
			v.rt.RotateCameraAboutY(orbitStep)
		}
	}
	return nil
}

// dolly starts a tween moving the camera along its view direction. Tween
// offsets accumulate to (frames+1)/2 times the delta under smoothstep, so the
// target is pulled in to keep the total travel at fraction.
func (v *viewer) dolly(fraction float64) {
	cfg := v.rt.CameraConfig()
	step := fraction * 2 / float64(dollyFrames+1)
	target := cfg.Position.Add(cfg.LookAt.Subtract(cfg.Position).Multiply(step))
	if err := v.rt.SetCameraTweenTarget(dollyFrames, geometry.TweenTarget{Position: &target}); err != nil {
		log.Printf("Tween failed: %v", err)
	}
}

func (v *viewer) Draw(screen *ebiten.Image) {
	var frame image.Image = v.surface.Image()
	if v.scale > 1 {
		b := frame.Bounds()
		frame = resize.Resize(uint(b.Dx()*v.scale), uint(b.Dy()*v.scale), frame, resize.NearestNeighbor)
	}
	rgba, ok := frame.(*image.RGBA)
	if !ok {
		return
	}
	if v.screen == nil {
		b := rgba.Bounds()
		v.screen = ebiten.NewImage(b.Dx(), b.Dy())
	}
	v.screen.WritePixels(rgba.Pix)
	screen.DrawImage(v.screen, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.surface.Width() * v.scale, v.surface.Height() * v.scale
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	flag.StringVar(&cfg.Scene, "scene", cfg.Scene, "Scene ID: "+strings.Join(scene.Available(), ", "))
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Render width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Render height in pixels")
	flag.IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "Reflection recursion depth")
	flag.IntVar(&cfg.Upscale, "upscale", cfg.Upscale, "Integer window scale factor")
	lines := flag.Int("lines", 1, "Scanlines rendered per tick")
	orbit := flag.Bool("orbit", false, "Orbit the camera one step per completed frame")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}
	if *lines < 1 {
		*lines = 1
	}

	sc, err := scene.Create(cfg.Scene)
	if err != nil {
		log.Fatalf("Error creating scene: %v", err)
	}

	surface := renderer.NewImageSurface(cfg.Width, cfg.Height)
	rt := renderer.NewRaytracer(sc, surface, renderer.RenderConfig{
		MaxDepth: cfg.MaxDepth,
		Epsilon:  cfg.Epsilon,
	}, logAdapter{})

	v := &viewer{
		rt:           rt,
		progressive:  renderer.NewProgressive(rt),
		surface:      surface,
		linesPerTick: *lines,
		autoOrbit:    *orbit,
		scale:        cfg.Upscale,
	}

	ebiten.SetWindowTitle("Scanline Raytracer - " + cfg.Scene)
	ebiten.SetWindowSize(cfg.Width*cfg.Upscale, cfg.Height*cfg.Upscale)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// logAdapter routes renderer output through the standard logger
type logAdapter struct{}

func (logAdapter) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

var _ core.Logger = logAdapter{}
