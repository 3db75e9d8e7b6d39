package geometry

import (
	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// Shape is implemented by Sphere, Plane, Box and Cylinder only.
// The unexported marker method keeps the set of variants closed.
type Shape interface {
	// Intersect returns every intersection of the ray with the shape, or false on a miss
	Intersect(ray core.Ray) (*Hit, bool)
	// NormalAt returns the unit surface normal at a point assumed to lie on the surface
	NormalAt(point core.Vec3) core.Vec3
	// Material returns the surface material
	Material() material.Material

	shape()
}

// boxBackoff moves a box hit point back along the ray before the normal
// lookup so the entry face wins over a neighbouring boundary
const boxBackoff = 0.001

// Intersection is a single point where a ray meets a shape
type Intersection struct {
	Point    core.Vec3
	Distance float64 // Distance along the ray
}

// Hit records the intersections of one ray with one shape, in discovery order
type Hit struct {
	Ray           core.Ray
	Shape         Shape
	Intersections []Intersection
}

func newHit(ray core.Ray, shape Shape) *Hit {
	return &Hit{Ray: ray, Shape: shape}
}

// appendIntersection records the point at distance t along the hit's ray
func (h *Hit) appendIntersection(t float64) {
	h.Intersections = append(h.Intersections, Intersection{Point: h.Ray.At(t), Distance: t})
}

// Point returns the first recorded intersection point
func (h *Hit) Point() core.Vec3 {
	return h.Intersections[0].Point
}

// Distance returns the first recorded intersection distance
func (h *Hit) Distance() float64 {
	return h.Intersections[0].Distance
}

// Normal returns the surface normal at the first recorded intersection
func (h *Hit) Normal() core.Vec3 {
	point := h.Point()
	if _, ok := h.Shape.(*Box); ok {
		point = point.Subtract(h.Ray.Direction.Multiply(boxBackoff))
	}
	return h.Shape.NormalAt(point)
}

// Material returns the material of the shape that was hit
func (h *Hit) Material() material.Material {
	return h.Shape.Material()
}

// Nearest returns the index of the smallest positive distance, or -1 if there is none
func (h *Hit) Nearest() int {
	best := -1
	for i, in := range h.Intersections {
		if in.Distance <= 0 {
			continue
		}
		if best < 0 || in.Distance < h.Intersections[best].Distance {
			best = i
		}
	}
	return best
}

// Collapse reduces the hit to the single intersection at index i
func (h *Hit) Collapse(i int) {
	h.Intersections = []Intersection{h.Intersections[i]}
}

// Kind returns a short lowercase name for the shape variant
func Kind(s Shape) string {
	switch s.(type) {
	case *Sphere:
		return "sphere"
	case *Plane:
		return "plane"
	case *Box:
		return "box"
	case *Cylinder:
		return "cylinder"
	}
	return "unknown"
}
