package lights

import (
	"math"
	"testing"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

func newTestSpotLight() *SpotLight {
	return NewSpotLight(
		core.NewVec3(0, 55, 0),
		core.NewVec3(0.5, 1, 1),
		core.NewVec3(1, 1, 1),
		30, 70,
		core.NewVec3(0, -2, 0),
	)
}

func TestPointLight_FullIntensity(t *testing.T) {
	light := NewPointLight(core.NewVec3(1, 2, 3), core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.5, 0.5))

	for _, p := range []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 2, 3),
		core.NewVec3(-100, 50, 1e6),
	} {
		if got := light.Intensity(p); got != 1.0 {
			t.Errorf("Intensity(%v): expected 1, got %f", p, got)
		}
	}
	if light.Type() != LightTypePoint {
		t.Errorf("Expected type %q, got %q", LightTypePoint, light.Type())
	}
}

func TestSpotLight_Construction(t *testing.T) {
	light := newTestSpotLight()

	if !light.Direction().ApproxEquals(core.NewVec3(0, -1, 0), 1e-12) {
		t.Errorf("Expected normalized direction, got %v", light.Direction())
	}
	if !light.Position().Equals(core.NewVec3(0, 55, 0)) {
		t.Errorf("Unexpected position %v", light.Position())
	}

	clamped := NewSpotLight(core.Vec3{}, core.Vec3{}, core.Vec3{}, 200, 185, core.NewVec3(0, 0, 1))
	inner, outer := clamped.Angles()
	if inner != MaxConeAngle || outer != MaxConeAngle {
		t.Errorf("Expected angles clamped to %f, got %f and %f", MaxConeAngle, inner, outer)
	}
}

func TestSpotLight_Intensity(t *testing.T) {
	light := newTestSpotLight()
	// Offset at distance 20 below the light that sits exactly on the outer cone
	outerOffset := 20 * math.Tan(35*math.Pi/180)
	innerOffset := 20 * math.Tan(15*math.Pi/180)

	tests := []struct {
		name     string
		point    core.Vec3
		expected float64
	}{
		{"on axis", core.NewVec3(0, 35, 0), 1.0},
		{"inside inner cone", core.NewVec3(innerOffset/2, 35, 0), 1.0},
		{"outer boundary", core.NewVec3(outerOffset, 35, 0), 0.0},
		{"outside outer cone", core.NewVec3(0, 35, outerOffset*2), 0.0},
		{"behind light", core.NewVec3(0, 60, 0), 0.0},
		{"level with light", core.NewVec3(10, 55, 0), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := light.Intensity(tt.point)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected intensity %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestSpotLight_FalloffMonotonic(t *testing.T) {
	light := newTestSpotLight()
	innerOffset := 20 * math.Tan(15*math.Pi/180)
	outerOffset := 20 * math.Tan(35*math.Pi/180)

	prev := light.Intensity(core.NewVec3(innerOffset, 35, 0))
	if math.Abs(prev-1) > 1e-9 {
		t.Fatalf("Expected intensity 1 at the inner boundary, got %f", prev)
	}

	const steps = 200
	for i := 1; i <= steps; i++ {
		offset := innerOffset + (outerOffset-innerOffset)*float64(i)/steps
		got := light.Intensity(core.NewVec3(0, 35, offset))
		if got > prev+1e-12 {
			t.Fatalf("Intensity increased from %f to %f at offset %f", prev, got, offset)
		}
		if got < 0 || got > 1 {
			t.Fatalf("Intensity %f out of range at offset %f", got, offset)
		}
		prev = got
	}
}
