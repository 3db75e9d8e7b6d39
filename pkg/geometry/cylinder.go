package geometry

import (
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// cylinderEpsilon widens the lateral height test and guards the lateral
// quadratic against rays parallel to the axis
const cylinderEpsilon = 0.0001

// Cylinder represents a capped cylinder whose axis runs along +Y from Base
type Cylinder struct {
	Base     core.Vec3 // Center of the bottom cap
	Height   float64
	Radius   float64
	radiusSq float64
	top      *Plane
	bottom   *Plane
	material material.Material
}

// NewCylinder creates a new Y-axis cylinder
func NewCylinder(base core.Vec3, height, radius float64, mat material.Material) *Cylinder {
	return &Cylinder{
		Base:     base,
		Height:   height,
		Radius:   radius,
		radiusSq: radius * radius,
		top:      NewPlane(core.NewVec3(0, 1, 0), base.Y+height, mat),
		bottom:   NewPlane(core.NewVec3(0, -1, 0), -base.Y, mat),
		material: mat,
	}
}

func (c *Cylinder) shape() {}

// Material returns the cylinder's material
func (c *Cylinder) Material() material.Material { return c.material }

// Intersect tests the lateral surface as a circle problem in the XZ plane,
// then the two capping disks
func (c *Cylinder) Intersect(ray core.Ray) (*Hit, bool) {
	hit := newHit(ray, c)

	ox := ray.Origin.X - c.Base.X
	oz := ray.Origin.Z - c.Base.Z
	dx := ray.Direction.X
	dz := ray.Direction.Z

	// Quadratic coefficients: at² + bt + cc = 0
	a := dx*dx + dz*dz
	b := 2 * (ox*dx + oz*dz)
	cc := ox*ox + oz*oz - c.radiusSq

	discriminant := b*b - 4*a*cc
	if discriminant >= 0 && 2*a >= cylinderEpsilon {
		sqrtD := math.Sqrt(discriminant)
		for _, t := range [2]float64{(-b + sqrtD) / (2 * a), (-b - sqrtD) / (2 * a)} {
			if t > 0 && c.withinHeight(ray.At(t).Y) {
				hit.appendIntersection(t)
			}
		}
	}

	for _, disk := range [2]*Plane{c.top, c.bottom} {
		t, ok := disk.distance(ray)
		if !ok {
			continue
		}
		point := ray.At(t)
		px := point.X - c.Base.X
		pz := point.Z - c.Base.Z
		if px*px+pz*pz <= c.radiusSq {
			hit.appendIntersection(t)
		}
	}

	if len(hit.Intersections) == 0 {
		return nil, false
	}
	return hit, true
}

func (c *Cylinder) withinHeight(y float64) bool {
	return y >= c.Base.Y-cylinderEpsilon && y <= c.Base.Y+c.Height+cylinderEpsilon
}

// NormalAt returns the cap normal at or beyond either cap, otherwise the
// radial direction away from the axis
func (c *Cylinder) NormalAt(point core.Vec3) core.Vec3 {
	if point.Y <= c.Base.Y {
		return core.NewVec3(0, -1, 0)
	}
	if point.Y >= c.Base.Y+c.Height {
		return core.NewVec3(0, 1, 0)
	}
	axisPoint := core.NewVec3(c.Base.X, point.Y, c.Base.Z)
	return point.Subtract(axisPoint).Divide(c.Radius)
}
