package geometry

import (
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	radiusSq float64
	material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		radiusSq: radius * radius,
		material: mat,
	}
}

func (s *Sphere) shape() {}

// Material returns the sphere's material
func (s *Sphere) Material() material.Material { return s.material }

// Intersect tests the ray against the sphere. A ray starting outside reports
// every forward crossing; a ray starting inside reports only the exit point.
func (s *Sphere) Intersect(ray core.Ray) (*Hit, bool) {
	// Vector from ray origin to sphere center
	toCenter := s.Center.Subtract(ray.Origin)

	// Distance along the ray to the point of closest approach
	projDist := toCenter.Dot(ray.Direction)
	closestDistSq := toCenter.LengthSquared() - projDist*projDist
	if closestDistSq >= s.radiusSq {
		return nil, false
	}
	halfChord := math.Sqrt(s.radiusSq - closestDistSq)

	hit := newHit(ray, s)
	if toCenter.LengthSquared() > s.radiusSq {
		if near := projDist - halfChord; near > 0 {
			hit.appendIntersection(near)
		}
		if far := projDist + halfChord; far > 0 {
			hit.appendIntersection(far)
		}
	} else {
		hit.appendIntersection(projDist + halfChord)
	}

	if len(hit.Intersections) == 0 {
		return nil, false
	}
	return hit, true
}

// NormalAt returns the outward normal at a point on the sphere
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Divide(s.Radius)
}
