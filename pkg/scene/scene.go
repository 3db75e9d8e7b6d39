package scene

import (
	"image/color"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/lights"
)

// DefaultBackground is the color of pixels whose primary ray hits nothing
var DefaultBackground = color.RGBA{R: 50, G: 50, B: 50, A: 255}

// Scene contains all the elements needed for rendering.
// It is populated before rendering and treated as read-only while a render runs.
type Scene struct {
	Shapes       []geometry.Shape // Objects in the scene; order breaks distance ties
	Lights       []lights.Light   // Lights in the scene, in accumulation order
	Ambient      core.Vec3        // Scene ambient color, multiplied with each material's ambient
	Background   color.RGBA       // Output color for primary rays that miss everything
	CameraConfig geometry.CameraConfig
}

// New creates an empty scene with white ambient light and the default background
func New() *Scene {
	return &Scene{
		Shapes:       make([]geometry.Shape, 0),
		Lights:       make([]lights.Light, 0),
		Ambient:      core.NewVec3(1, 1, 1),
		Background:   DefaultBackground,
		CameraConfig: geometry.DefaultCameraConfig(),
	}
}

// AppendPrimitive adds a shape to the scene
func (s *Scene) AppendPrimitive(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AppendLight adds a light to the scene
func (s *Scene) AppendLight(light lights.Light) {
	s.Lights = append(s.Lights, light)
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// CountByKind tallies the scene's shapes per variant
func (s *Scene) CountByKind() map[string]int {
	counts := make(map[string]int)
	for _, shape := range s.Shapes {
		counts[geometry.Kind(shape)]++
	}
	return counts
}

// applyCameraOverrides merges the first override, if any, onto the scene camera
func (s *Scene) applyCameraOverrides(overrides []geometry.CameraConfig) {
	if len(overrides) > 0 {
		s.CameraConfig = geometry.MergeCameraConfig(s.CameraConfig, overrides[0])
	}
}
