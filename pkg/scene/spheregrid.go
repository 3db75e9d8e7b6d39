package scene

import (
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/lights"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS, cubed
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b
	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewSphereGridScene creates a gridSize×gridSize grid of colored spheres on a
// gray plane. Hue varies along X and chroma along Z.
func NewSphereGridScene(gridSize int, cameraOverrides ...geometry.CameraConfig) *Scene {
	if gridSize < 2 {
		gridSize = 2
	}

	s := New()
	s.Ambient = core.NewVec3(0.5, 0.5, 0.5)
	s.CameraConfig = geometry.CameraConfig{
		Position: core.NewVec3(0, 30, -60),
		LookAt:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     40.0,
		Near:     1.0,
	}
	s.applyCameraOverrides(cameraOverrides)

	s.AppendPrimitive(geometry.NewPlane(core.NewVec3(0, 1, 0), 0, material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))))

	// Fit the grid in a 40×40 footprint centered on the origin
	const extent = 40.0
	spacing := extent / float64(gridSize-1)
	radius := math.Min(spacing*0.35, 4)

	const (
		lightness = 0.7
		minChroma = 0.05
		maxChroma = 0.25
	)

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - extent/2
			z := float64(j)*spacing - extent/2

			hue := float64(i) / float64(gridSize-1) * 360.0
			chroma := minChroma + float64(j)/float64(gridSize-1)*(maxChroma-minChroma)
			diffuse := oklchToRGB(lightness+0.1*math.Sin(float64(i+j)*0.5), chroma, hue)

			// Alternate glossy and matte spheres
			hardness := 18.0
			if (i+j)%2 == 0 {
				hardness = 80
			}
			mat := material.NewMaterial(diffuse, core.NewVec3(1, 1, 1), hardness)
			s.AppendPrimitive(geometry.NewSphere(core.NewVec3(x, radius, z), radius, mat))
		}
	}

	s.AppendLight(lights.NewPointLight(core.NewVec3(30, 60, -30), core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1)))

	return s
}
