package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

func TestPlane_Intersect(t *testing.T) {
	ground := NewPlane(core.NewVec3(0, 1, 0), 0, testMaterial)

	tests := []struct {
		name      string
		plane     *Plane
		origin    core.Vec3
		direction core.Vec3
		shouldHit bool
		expectedT float64
	}{
		{"straight down", ground, core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), true, 5},
		{"moving away", ground, core.NewVec3(0, 5, 0), core.NewVec3(0, 1, 0), false, 0},
		{"parallel", ground, core.NewVec3(0, 5, 0), core.NewVec3(1, 0, 0), false, 0},
		{"from below", ground, core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0), true, 2},
		{"unnormalized normal", NewPlane(core.NewVec3(0, 2, 0), 3, testMaterial), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), true, 3},
		{"oblique", ground, core.NewVec3(0, 3, 0), core.NewVec3(4, -3, 0), true, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := tt.plane.Intersect(core.NewRay(tt.origin, tt.direction))
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got hit=%v", tt.shouldHit, isHit)
			}
			if !tt.shouldHit {
				return
			}
			if len(hit.Intersections) != 1 {
				t.Fatalf("Expected exactly one intersection, got %d", len(hit.Intersections))
			}
			if math.Abs(hit.Distance()-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.Distance())
			}
		})
	}
}

func TestPlane_NormalIsConstant(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 3), 1, testMaterial)
	for _, p := range []core.Vec3{core.NewVec3(0, 0, 1), core.NewVec3(100, -4, 1)} {
		if !plane.NormalAt(p).Equals(core.NewVec3(0, 0, 1)) {
			t.Errorf("Expected (0,0,1) at %v, got %v", p, plane.NormalAt(p))
		}
	}
}
