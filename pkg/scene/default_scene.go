package scene

import (
	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/lights"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// NewDefaultScene creates the demo scene: a yellow ground plane, a red sphere,
// a green box and a pale blue cylinder under a single spotlight
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := New()
	s.CameraConfig = geometry.CameraConfig{
		Position: core.NewVec3(0, 3, -50),
		LookAt:   core.NewVec3(0, 0, 1),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     60.0,
		Near:     1.0,
	}
	s.applyCameraOverrides(cameraOverrides)

	yellow := material.NewDiffuse(core.NewVec3(1, 1, 0))
	red := material.NewDiffuse(core.NewVec3(1, 0, 0))
	green := material.NewDiffuse(core.NewVec3(0, 1, 0))
	paleBlue := material.NewDiffuse(core.NewVec3(0.7, 0.7, 1))

	s.AppendPrimitive(geometry.NewPlane(core.NewVec3(0, 1, 0), 0, yellow))
	s.AppendPrimitive(geometry.NewSphere(core.NewVec3(0, 0, 0), 10, red))
	s.AppendPrimitive(geometry.NewBox(core.NewVec3(25, 5, 0), core.NewVec3(40, 25, 20), green))
	s.AppendPrimitive(geometry.NewCylinder(core.NewVec3(-17, 6, 30), 22, 15, paleBlue))

	s.AppendLight(lights.NewNormalizedSpotLight(
		core.NewVec3(0, 55, 0),  // position
		core.NewVec3(0.5, 1, 1), // diffuse
		core.NewVec3(1, 1, 1),   // specular
		30, 70,                  // inner and outer cone angles
		core.NewVec3(0, -1, 0),  // straight down
	))

	return s
}
