package scene

import (
	"image/color"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/lights"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// NewMirrorsScene creates a reflection-heavy scene: a ring of shiny spheres
// between two facing walls, lit by two point lights
func NewMirrorsScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := New()
	s.Ambient = core.NewVec3(0.6, 0.6, 0.6)
	s.Background = color.RGBA{R: 20, G: 24, B: 40, A: 255}
	s.CameraConfig = geometry.CameraConfig{
		Position: core.NewVec3(0, 20, -70),
		LookAt:   core.NewVec3(0, 8, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     50.0,
		Near:     1.0,
	}
	s.applyCameraOverrides(cameraOverrides)

	floor := material.NewMaterial(core.NewVec3(0.8, 0.8, 0.8), core.NewVec3(0.4, 0.4, 0.4), 8)
	wall := material.NewMaterial(core.NewVec3(0.3, 0.3, 0.35), core.NewVec3(1, 1, 1), 120)

	s.AppendPrimitive(geometry.NewPlane(core.NewVec3(0, 1, 0), 0, floor))
	s.AppendPrimitive(geometry.NewBox(core.NewVec3(-45, 0, 40), core.NewVec3(45, 40, 42), wall))
	s.AppendPrimitive(geometry.NewBox(core.NewVec3(-45, 0, -95), core.NewVec3(45, 40, -93), wall))

	ring := []struct {
		center core.Vec3
		color  core.Vec3
	}{
		{core.NewVec3(-24, 7, 0), core.NewVec3(1, 0.2, 0.2)},
		{core.NewVec3(-8, 7, 10), core.NewVec3(1, 0.8, 0.2)},
		{core.NewVec3(8, 7, 10), core.NewVec3(0.2, 1, 0.3)},
		{core.NewVec3(24, 7, 0), core.NewVec3(0.2, 0.5, 1)},
	}
	for _, r := range ring {
		s.AppendPrimitive(geometry.NewSphere(r.center, 7, material.NewMaterial(r.color, core.NewVec3(1, 1, 1), 64)))
	}
	s.AppendPrimitive(geometry.NewCylinder(core.NewVec3(0, 0, 25), 18, 5, material.NewDiffuse(core.NewVec3(0.9, 0.9, 0.9))))

	s.AppendLight(lights.NewPointLight(core.NewVec3(-30, 45, -40), core.NewVec3(0.8, 0.8, 0.8), core.NewVec3(1, 1, 1)))
	s.AppendLight(lights.NewPointLight(core.NewVec3(35, 30, -20), core.NewVec3(0.4, 0.4, 0.5), core.NewVec3(0.6, 0.6, 0.6)))

	return s
}
