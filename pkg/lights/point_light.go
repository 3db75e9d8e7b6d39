package lights

import "github.com/df07/go-scanline-raytracer/pkg/core"

// PointLight shines with full intensity in every direction
type PointLight struct {
	base
}

// NewPointLight creates a point light at position
func NewPointLight(position, diffuse, specular core.Vec3) *PointLight {
	return &PointLight{base{position: position, diffuse: diffuse, specular: specular}}
}

func (pl *PointLight) Type() LightType { return LightTypePoint }

// Intensity is always 1 for a point light
func (pl *PointLight) Intensity(point core.Vec3) float64 {
	return 1.0
}

func (pl *PointLight) light() {}
