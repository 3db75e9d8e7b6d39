package material

import (
	"image/color"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// AmbientFactor scales the diffuse color to derive the ambient color
const AmbientFactor = 0.3

// DefaultHardness is the specular exponent used by NewDiffuse
const DefaultHardness = 18.0

// Material holds the Phong reflectance parameters of a surface.
// The ambient color is always derived from the diffuse color.
type Material struct {
	ambient  core.Vec3
	diffuse  core.Vec3
	specular core.Vec3
	hardness float64
}

// NewMaterial creates a material from diffuse and specular colors and a
// specular hardness exponent. Non-positive hardness falls back to DefaultHardness.
func NewMaterial(diffuse, specular core.Vec3, hardness float64) Material {
	if hardness <= 0 {
		hardness = DefaultHardness
	}
	return Material{
		ambient:  diffuse.Multiply(AmbientFactor),
		diffuse:  diffuse,
		specular: specular,
		hardness: hardness,
	}
}

// NewDiffuse creates a material with white highlights and the default hardness
func NewDiffuse(diffuse core.Vec3) Material {
	return NewMaterial(diffuse, core.NewVec3(1, 1, 1), DefaultHardness)
}

// Ambient returns the derived ambient color
func (m Material) Ambient() core.Vec3 { return m.ambient }

// Diffuse returns the diffuse color
func (m Material) Diffuse() core.Vec3 { return m.diffuse }

// Specular returns the specular color
func (m Material) Specular() core.Vec3 { return m.specular }

// Hardness returns the specular exponent
func (m Material) Hardness() float64 { return m.hardness }

// DisplayColor returns the diffuse color in output range, used for previews
func (m Material) DisplayColor() color.RGBA {
	return ToRGBA(m.diffuse)
}
