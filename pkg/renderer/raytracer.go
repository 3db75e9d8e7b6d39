package renderer

import (
	"context"
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/lights"
	"github.com/df07/go-scanline-raytracer/pkg/material"
	"github.com/df07/go-scanline-raytracer/pkg/scene"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	MaxDepth   int     // Reflection bounces after the primary hit
	Epsilon    float64 // Surface offset for shadow and reflection rays
	NumWorkers int     // Parallel workers for RenderFrame (0 = CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		MaxDepth:   5,
		Epsilon:    0.001,
		NumWorkers: 0,
	}
}

// MergeRenderConfig overlays the non-zero fields of override onto base
func MergeRenderConfig(base, override RenderConfig) RenderConfig {
	result := base
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.Epsilon != 0 {
		result.Epsilon = override.Epsilon
	}
	if override.NumWorkers != 0 {
		result.NumWorkers = override.NumWorkers
	}
	return result
}

// Raytracer renders a scene onto a surface one scanline at a time.
// Camera changes wait for in-flight scanlines to finish.
type Raytracer struct {
	scene   *scene.Scene
	surface Surface
	width   int
	height  int
	config  RenderConfig
	logger  core.Logger

	mu     sync.RWMutex
	camera *geometry.Camera
	shader *Shader
}

// NewRaytracer creates a raytracer for the scene, reading the surface size once.
// A nil logger discards output. A non-positive Epsilon takes the default offset.
func NewRaytracer(sc *scene.Scene, surface Surface, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = discardLogger{}
	}
	if config.Epsilon <= 0 {
		config.Epsilon = DefaultRenderConfig().Epsilon
	}
	width, height := surface.Width(), surface.Height()
	return &Raytracer{
		scene:   sc,
		surface: surface,
		width:   width,
		height:  height,
		config:  config,
		logger:  logger,
		camera:  geometry.NewCamera(sc.CameraConfig, width, height),
		shader:  NewShader(sc, config.Epsilon),
	}
}

// Config returns the render configuration
func (rt *Raytracer) Config() RenderConfig {
	return rt.config
}

// Scene returns the scene being rendered
func (rt *Raytracer) Scene() *scene.Scene {
	return rt.scene
}

// Size returns the surface dimensions read at construction
func (rt *Raytracer) Size() (width, height int) {
	return rt.width, rt.height
}

// SetCamera replaces the camera parameters and re-derives the view plane
func (rt *Raytracer) SetCamera(config geometry.CameraConfig) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.camera.Set(config)
}

// CameraConfig returns the current camera parameters
func (rt *Raytracer) CameraConfig() geometry.CameraConfig {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return rt.camera.Config()
}

// SetCameraTweenTarget starts animating the camera towards target over frames calls to AdvanceTween
func (rt *Raytracer) SetCameraTweenTarget(frames int, target geometry.TweenTarget) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.camera.SetTweenTarget(frames, target)
}

// AdvanceTween moves the camera one tween frame and reports whether it is still tweening
func (rt *Raytracer) AdvanceTween() bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.camera.AdvanceTween()
}

// IsTweening reports whether a camera tween is in progress
func (rt *Raytracer) IsTweening() bool {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return rt.camera.IsTweening()
}

// RotateCameraAboutY orbits the camera around the world Y axis
func (rt *Raytracer) RotateCameraAboutY(angle float64) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.camera.RotateAboutY(angle)
}

// AppendPrimitive adds a shape. Call only between renders.
func (rt *Raytracer) AppendPrimitive(shape geometry.Shape) {
	rt.scene.AppendPrimitive(shape)
}

// AppendLight adds a light. Call only between renders.
func (rt *Raytracer) AppendLight(light lights.Light) {
	rt.scene.AppendLight(light)
}

// RenderScanline computes row y and writes it to the surface
func (rt *Raytracer) RenderScanline(y int) (ScanlineStats, error) {
	if y < 0 || y >= rt.height {
		return ScanlineStats{}, fmt.Errorf("scanline %d out of range [0, %d)", y, rt.height)
	}

	rt.mu.RLock()
	defer rt.mu.RUnlock()

	start := time.Now()
	stats := ScanlineStats{Y: y, Pixels: rt.width}
	for x := 0; x < rt.width; x++ {
		c, hit := rt.tracePixel(x, y)
		if hit {
			stats.PrimaryHits++
		}
		rt.surface.SetPixel(x, y, c)
	}
	stats.Duration = time.Since(start)

	return stats, nil
}

// tracePixel returns the color of pixel (x, y) and whether its primary ray hit anything
func (rt *Raytracer) tracePixel(x, y int) (color.RGBA, bool) {
	return rt.shader.trace(rt.camera.GetRay(x, y), rt.config.MaxDepth)
}

// RenderFrame renders every scanline in parallel. onScanline, if non-nil, is
// called from the calling goroutine as each row completes.
func (rt *Raytracer) RenderFrame(ctx context.Context, onScanline func(ScanlineStats)) (RenderStats, error) {
	pool := NewWorkerPool(rt.config.NumWorkers, rt.RenderScanline)

	rows := make([]int, rt.height)
	for y := range rows {
		rows[y] = y
	}

	stats := RenderStats{Width: rt.width, Height: rt.height, Workers: pool.GetNumWorkers()}
	rt.logger.Printf("Rendering %dx%d (%d shapes, %d lights, %d workers)...\n",
		rt.width, rt.height, len(rt.scene.Shapes), len(rt.scene.Lights), stats.Workers)

	start := time.Now()
	err := pool.Run(ctx, rows, func(result ScanlineResult) {
		stats.add(result.Stats)
		if onScanline != nil {
			onScanline(result.Stats)
		}
	})
	stats.Duration = time.Since(start)

	if err != nil {
		rt.logger.Printf("Render stopped after %d of %d scanlines: %v\n", stats.Scanlines, rt.height, err)
		return stats, err
	}

	rt.logger.Printf("Render completed in %v (%.1f%% coverage)\n", stats.Duration, 100*stats.Coverage())
	return stats, nil
}

// PixelInspection describes what the primary ray through a pixel sees
type PixelInspection struct {
	X, Y     int
	Hit      bool
	Shape    geometry.Shape
	Point    core.Vec3
	Normal   core.Vec3
	Distance float64
	Color    color.RGBA // Final rendered color of the pixel
}

// InspectPixel casts the primary ray through (x, y) and reports the nearest hit
func (rt *Raytracer) InspectPixel(x, y int) (PixelInspection, error) {
	if x < 0 || x >= rt.width || y < 0 || y >= rt.height {
		return PixelInspection{}, fmt.Errorf("pixel (%d, %d) outside %dx%d surface", x, y, rt.width, rt.height)
	}

	rt.mu.RLock()
	defer rt.mu.RUnlock()

	result := PixelInspection{X: x, Y: y}
	ray := rt.camera.GetRay(x, y)
	hit, ok := NearestHit(ray, rt.scene.Shapes)
	if !ok {
		result.Color = rt.scene.Background
		return result, nil
	}

	result.Hit = true
	result.Shape = hit.Shape
	result.Point = hit.Point()
	result.Normal = hit.Normal()
	result.Distance = hit.Distance()
	result.Color = material.ToRGBA(rt.shader.Shade(hit, rt.config.MaxDepth))
	return result, nil
}
