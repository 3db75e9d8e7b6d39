package lights

import (
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// MaxConeAngle caps spotlight cone angles below 180 degrees
const MaxConeAngle = 179.99

// SpotLight is full strength inside an inner cone and fades linearly in
// tangent-squared space to zero at an outer cone
type SpotLight struct {
	base
	direction  core.Vec3 // Unit axis of the cone
	innerAngle float64   // Full cone angles in degrees, clamped
	outerAngle float64

	innerTan2 float64 // tan²(innerAngle/2)
	outerTan2 float64 // tan²(outerAngle/2)
}

// NewSpotLight creates a spotlight at position aimed along direction.
// innerDeg and outerDeg are full cone angles in degrees.
func NewSpotLight(position, diffuse, specular core.Vec3, innerDeg, outerDeg float64, direction core.Vec3) *SpotLight {
	return NewNormalizedSpotLight(position, diffuse, specular, innerDeg, outerDeg, direction.Normalize())
}

// NewNormalizedSpotLight is NewSpotLight for a direction that is already unit length
func NewNormalizedSpotLight(position, diffuse, specular core.Vec3, innerDeg, outerDeg float64, direction core.Vec3) *SpotLight {
	inner := math.Min(innerDeg, MaxConeAngle)
	outer := math.Min(outerDeg, MaxConeAngle)

	return &SpotLight{
		base:       base{position: position, diffuse: diffuse, specular: specular},
		direction:  direction,
		innerAngle: inner,
		outerAngle: outer,
		innerTan2:  halfAngleTan2(inner),
		outerTan2:  halfAngleTan2(outer),
	}
}

func halfAngleTan2(fullDeg float64) float64 {
	t := math.Tan(fullDeg / 2 * math.Pi / 180.0)
	return t * t
}

func (sl *SpotLight) Type() LightType { return LightTypeSpot }

// Direction returns the unit cone axis
func (sl *SpotLight) Direction() core.Vec3 { return sl.direction }

// Angles returns the clamped inner and outer cone angles in degrees
func (sl *SpotLight) Angles() (inner, outer float64) {
	return sl.innerAngle, sl.outerAngle
}

// Intensity returns 1 inside the inner cone, 0 outside the outer cone or
// behind the light, and a linear blend of tan² in between
func (sl *SpotLight) Intensity(point core.Vec3) float64 {
	v := point.Subtract(sl.position)
	parallel := sl.direction.Dot(v)
	if parallel <= 0 {
		return 0
	}

	parallel2 := parallel * parallel
	tan2 := (v.LengthSquared() - parallel2) / parallel2

	if tan2 <= sl.innerTan2 {
		return 1
	}
	if tan2 <= sl.outerTan2 {
		return 1 - (tan2-sl.innerTan2)/(sl.outerTan2-sl.innerTan2)
	}
	return 0
}

func (sl *SpotLight) light() {}
