package geometry

import (
	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// Plane represents an infinite plane of points P with Normal·P = D
type Plane struct {
	Normal   core.Vec3 // Unit normal
	D        float64   // Signed distance from the origin along Normal
	material material.Material
}

// NewPlane creates a new plane, normalizing the normal
func NewPlane(normal core.Vec3, d float64, mat material.Material) *Plane {
	return &Plane{
		Normal:   normal.Normalize(),
		D:        d,
		material: mat,
	}
}

func (p *Plane) shape() {}

// Material returns the plane's material
func (p *Plane) Material() material.Material { return p.material }

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) (*Hit, bool) {
	t, ok := p.distance(ray)
	if !ok {
		return nil, false
	}
	hit := newHit(ray, p)
	hit.appendIntersection(t)
	return hit, true
}

// distance returns the ray parameter of the crossing. Parallel rays and
// crossings behind the origin report false.
func (p *Plane) distance(ray core.Ray) (float64, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	if denominator == 0 {
		return 0, false
	}
	t := (p.D - ray.Origin.Dot(p.Normal)) / denominator
	if t < 0 {
		return 0, false
	}
	return t, true
}

// NormalAt returns the plane normal, which is the same everywhere
func (p *Plane) NormalAt(point core.Vec3) core.Vec3 {
	return p.Normal
}
