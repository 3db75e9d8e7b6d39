package renderer

import (
	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
)

// NearestHit intersects the ray with every shape and returns the hit holding
// the smallest positive distance, collapsed to that single intersection.
// Equal distances resolve to the shape that comes first in shapes.
func NearestHit(ray core.Ray, shapes []geometry.Shape) (*geometry.Hit, bool) {
	var best *geometry.Hit
	bestIndex := -1

	for _, shape := range shapes {
		hit, ok := shape.Intersect(ray)
		if !ok {
			continue
		}
		i := hit.Nearest()
		if i < 0 {
			continue
		}
		if best == nil || hit.Intersections[i].Distance < best.Intersections[bestIndex].Distance {
			best, bestIndex = hit, i
		}
	}

	if best == nil {
		return nil, false
	}
	best.Collapse(bestIndex)
	return best, true
}

// IsOccluded reports whether any shape intersects the ray no farther from its
// origin than lightPos. It returns on the first blocker found.
func IsOccluded(ray core.Ray, shapes []geometry.Shape, lightPos core.Vec3) bool {
	lightDist2 := lightPos.Subtract(ray.Origin).LengthSquared()

	for _, shape := range shapes {
		hit, ok := shape.Intersect(ray)
		if !ok {
			continue
		}
		for _, in := range hit.Intersections {
			if in.Distance*in.Distance <= lightDist2 {
				return true
			}
		}
	}
	return false
}
