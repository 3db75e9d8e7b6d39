package geometry

import (
	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// faceNormals lists the box faces in lookup priority order: -X, +X, -Y, +Y, -Z, +Z
var faceNormals = [6]core.Vec3{
	core.NewVec3(-1, 0, 0),
	core.NewVec3(1, 0, 0),
	core.NewVec3(0, -1, 0),
	core.NewVec3(0, 1, 0),
	core.NewVec3(0, 0, -1),
	core.NewVec3(0, 0, 1),
}

// Box represents an axis-aligned box bounded by six planes
type Box struct {
	Min      core.Vec3 // Component-wise smallest corner
	Max      core.Vec3 // Component-wise largest corner
	faces    [6]*Plane // Bounding planes in faceNormals order
	material material.Material
}

// NewBox creates an axis-aligned box spanning two opposite corners, in any order
func NewBox(a, b core.Vec3, mat material.Material) *Box {
	box := &Box{
		Min:      core.NewVec3(min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)),
		Max:      core.NewVec3(max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)),
		material: mat,
	}

	for i, normal := range faceNormals {
		corner := box.Min
		if i%2 == 1 {
			corner = box.Max
		}
		box.faces[i] = NewPlane(normal, normal.Dot(corner), mat)
	}

	return box
}

func (b *Box) shape() {}

// Material returns the box's material
func (b *Box) Material() material.Material { return b.material }

// Faces returns the six bounding planes in -X, +X, -Y, +Y, -Z, +Z order
func (b *Box) Faces() [6]*Plane {
	return b.faces
}

// Intersect tests the ray against each face plane and keeps the crossings
// that land inside the face rectangle (bounds inclusive)
func (b *Box) Intersect(ray core.Ray) (*Hit, bool) {
	var hit *Hit

	for i, face := range b.faces {
		t, ok := face.distance(ray)
		if !ok {
			continue
		}
		point := ray.At(t)
		if !b.withinFace(point, i/2) {
			continue
		}
		if hit == nil {
			hit = newHit(ray, b)
		}
		hit.appendIntersection(t)
	}

	return hit, hit != nil
}

// withinFace checks the two axes other than the face axis
func (b *Box) withinFace(point core.Vec3, faceAxis int) bool {
	for axis := 0; axis < 3; axis++ {
		if axis == faceAxis {
			continue
		}
		v := point.Get(axis)
		if v < b.Min.Get(axis) || v > b.Max.Get(axis) {
			return false
		}
	}
	return true
}

// NormalAt returns the normal of the first face, in -X, +X, -Y, +Y, -Z, +Z
// order, whose boundary the point lies on or beyond. Edges and corners resolve
// to the earliest face in that order.
func (b *Box) NormalAt(point core.Vec3) core.Vec3 {
	switch {
	case point.X <= b.Min.X:
		return faceNormals[0]
	case point.X >= b.Max.X:
		return faceNormals[1]
	case point.Y <= b.Min.Y:
		return faceNormals[2]
	case point.Y >= b.Max.Y:
		return faceNormals[3]
	case point.Z <= b.Min.Z:
		return faceNormals[4]
	default:
		return faceNormals[5]
	}
}
