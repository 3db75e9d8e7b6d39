package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

var testMaterial = material.NewDiffuse(core.NewVec3(1, 0, 0))

func distances(hit *Hit) []float64 {
	out := make([]float64, len(hit.Intersections))
	for i, in := range hit.Intersections {
		out[i] = in.Distance
	}
	return out
}

func TestSphere_Intersect_TwoHits(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 10, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, -50), core.NewVec3(0, 0, 1))

	hit, isHit := sphere.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	got := distances(hit)
	if len(got) != 2 || got[0] != 40 || got[1] != 60 {
		t.Errorf("Expected distances [40 60], got %v", got)
	}

	if !hit.Point().Equals(core.NewVec3(0, 0, -10)) {
		t.Errorf("Expected first point (0,0,-10), got %v", hit.Point())
	}
	if hit.Shape != sphere {
		t.Errorf("Expected hit shape to be the sphere")
	}
}

func TestSphere_Intersect_Cases(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 10, testMaterial)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		expected  []float64
	}{
		{"origin inside reports exit only", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), []float64{10}},
		{"sphere behind origin", core.NewVec3(0, 0, 50), core.NewVec3(0, 0, 1), nil},
		{"clear miss", core.NewVec3(20, 0, -50), core.NewVec3(0, 0, 1), nil},
		{"tangent counts as miss", core.NewVec3(10, 0, -50), core.NewVec3(0, 0, 1), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Intersect(core.NewRay(tt.origin, tt.direction))
			if tt.expected == nil {
				if isHit {
					t.Errorf("Expected miss, got %v", distances(hit))
				}
				return
			}
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			got := distances(hit)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if math.Abs(got[i]-tt.expected[i]) > 1e-9 {
					t.Errorf("Expected %v, got %v", tt.expected, got)
				}
			}
		})
	}
}

func TestSphere_NormalAt(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2, testMaterial)
	normal := sphere.NormalAt(core.NewVec3(1, 4, 3))
	if !normal.Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("Expected (0,1,0), got %v", normal)
	}
}

func TestHit_NearestAndCollapse(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 10, testMaterial)
	hit, _ := sphere.Intersect(core.NewRay(core.NewVec3(0, 0, -50), core.NewVec3(0, 0, 1)))
	hit.Intersections[0], hit.Intersections[1] = hit.Intersections[1], hit.Intersections[0]

	i := hit.Nearest()
	if i != 1 {
		t.Fatalf("Expected nearest index 1, got %d", i)
	}
	hit.Collapse(i)
	if len(hit.Intersections) != 1 || hit.Distance() != 40 {
		t.Errorf("Expected single intersection at 40, got %v", distances(hit))
	}
	if !hit.Normal().Equals(core.NewVec3(0, 0, -1)) {
		t.Errorf("Expected normal (0,0,-1), got %v", hit.Normal())
	}
}
