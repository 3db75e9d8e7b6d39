package lights

import "github.com/df07/go-scanline-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint LightType = "point"
	LightTypeSpot  LightType = "spot"
)

// Light is implemented by PointLight and SpotLight only.
type Light interface {
	Type() LightType

	// Position returns the light's location in world space
	Position() core.Vec3

	// Diffuse and Specular are the colors the light contributes to each lighting term
	Diffuse() core.Vec3
	Specular() core.Vec3

	// Intensity returns the light's strength at a point, in [0,1]
	Intensity(point core.Vec3) float64

	light()
}

// base holds the fields shared by every light variant
type base struct {
	position core.Vec3
	diffuse  core.Vec3
	specular core.Vec3
}

func (b base) Position() core.Vec3 { return b.position }
func (b base) Diffuse() core.Vec3  { return b.diffuse }
func (b base) Specular() core.Vec3 { return b.specular }
