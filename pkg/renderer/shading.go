package renderer

import (
	"image/color"
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/material"
	"github.com/df07/go-scanline-raytracer/pkg/scene"
)

// reflectionBlend is the weight of the reflected color in each bounce
const reflectionBlend = 0.5

// Shader computes Phong lighting with bounded mirror reflection over a scene.
// It holds no per-ray state and may be shared between goroutines while the
// scene is not being modified.
type Shader struct {
	scene   *scene.Scene
	epsilon float64
}

// NewShader creates a shader for the scene. epsilon is the distance secondary
// rays are pushed off the surface along the normal.
func NewShader(sc *scene.Scene, epsilon float64) *Shader {
	return &Shader{scene: sc, epsilon: epsilon}
}

// TraceColor returns the output color for a primary ray: the scene background
// on a miss, otherwise the shaded color clamped to [0,1] and scaled to 0-255
func (s *Shader) TraceColor(ray core.Ray, maxDepth int) color.RGBA {
	c, _ := s.trace(ray, maxDepth)
	return c
}

// trace is TraceColor that also reports whether the ray hit anything
func (s *Shader) trace(ray core.Ray, maxDepth int) (color.RGBA, bool) {
	hit, ok := NearestHit(ray, s.scene.Shapes)
	if !ok {
		return s.scene.Background, false
	}
	return material.ToRGBA(s.Shade(hit, maxDepth)), true
}

// Shade returns the unclamped color of a hit. At depth 0 only the local
// lighting term is returned; otherwise it is blended half and half with the
// color seen along the mirror reflection, shaded at depth-1. A reflected ray
// that hits nothing contributes black.
func (s *Shader) Shade(hit *geometry.Hit, depth int) core.Vec3 {
	local := s.localColor(hit)
	if depth <= 0 {
		return local
	}

	normal := hit.Normal()
	toViewer := hit.Ray.Direction.Negate()
	reflected := normal.Multiply(2 * toViewer.Dot(normal)).Subtract(toViewer)

	bounce := core.NewRay(s.offset(hit.Point(), normal), reflected)
	var recursive core.Vec3
	if next, ok := NearestHit(bounce, s.scene.Shapes); ok {
		recursive = s.Shade(next, depth-1)
	}

	return local.Multiply(1 - reflectionBlend).Add(recursive.Multiply(reflectionBlend))
}

// localColor is ambient plus the diffuse and specular terms of every light
// that is not shadowed at the hit point
func (s *Shader) localColor(hit *geometry.Hit) core.Vec3 {
	mat := hit.Material()
	result := mat.Ambient().MultiplyVec(s.scene.Ambient)
	if len(s.scene.Lights) == 0 {
		return result
	}

	point := hit.Point()
	normal := hit.Normal()
	toViewer := hit.Ray.Direction.Negate()
	shadowOrigin := s.offset(point, normal)

	for _, light := range s.scene.Lights {
		toLight := light.Position().Subtract(point).Normalize()

		shadow := core.NewNormalizedRay(shadowOrigin, toLight)
		if IsOccluded(shadow, s.scene.Shapes, light.Position()) {
			continue
		}

		intensity := light.Intensity(point)
		if intensity <= 0 {
			continue
		}

		var contribution core.Vec3

		nDotL := toLight.Dot(normal)
		if nDotL > 0 {
			contribution = contribution.Add(light.Diffuse().MultiplyVec(mat.Diffuse()).Multiply(nDotL))
		}

		// Specular uses the signed N·L, so it can light surfaces facing away
		reflectedLight := normal.Multiply(2 * nDotL).Subtract(toLight)
		if rDotV := reflectedLight.Dot(toViewer); rDotV > 0 {
			strength := math.Pow(rDotV, mat.Hardness())
			contribution = contribution.Add(light.Specular().MultiplyVec(mat.Specular()).Multiply(strength))
		}

		result = result.Add(contribution.Multiply(intensity))
	}

	return result
}

func (s *Shader) offset(point, normal core.Vec3) core.Vec3 {
	return point.Add(normal.Multiply(s.epsilon))
}
