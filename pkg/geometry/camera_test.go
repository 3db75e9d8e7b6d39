package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

func newTestCamera() *Camera {
	return NewCamera(CameraConfig{
		Position: core.NewVec3(0, 0, 0),
		LookAt:   core.NewVec3(0, 0, 1),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     90,
		Near:     1,
	}, 200, 100)
}

func TestCamera_Basis(t *testing.T) {
	camera := newTestCamera()
	right, up, forward := camera.Basis()

	const tolerance = 1e-12
	if !right.ApproxEquals(core.NewVec3(1, 0, 0), tolerance) {
		t.Errorf("Expected right (1,0,0), got %v", right)
	}
	if !up.ApproxEquals(core.NewVec3(0, 1, 0), tolerance) {
		t.Errorf("Expected up (0,1,0), got %v", up)
	}
	if !forward.ApproxEquals(core.NewVec3(0, 0, 1), tolerance) {
		t.Errorf("Expected forward (0,0,1), got %v", forward)
	}
}

func TestCamera_ViewPlane(t *testing.T) {
	camera := newTestCamera()

	const tolerance = 1e-9
	if !camera.ViewOrigin().ApproxEquals(core.NewVec3(-2, 1, 1), tolerance) {
		t.Errorf("Expected view origin (-2,1,1), got %v", camera.ViewOrigin())
	}

	tests := []struct {
		px, py   float64
		expected core.Vec3
	}{
		{0, 0, core.NewVec3(-2, 1, 1)},
		{100, 50, core.NewVec3(0, 0, 1)},
		{200, 100, core.NewVec3(2, -1, 1)},
	}
	for _, tt := range tests {
		got := camera.PixelToWorld(tt.px, tt.py)
		if !got.ApproxEquals(tt.expected, tolerance) {
			t.Errorf("PixelToWorld(%v, %v): expected %v, got %v", tt.px, tt.py, tt.expected, got)
		}
	}

	ray := camera.GetRay(100, 50)
	if !ray.Direction.ApproxEquals(core.NewVec3(0, 0, 1), tolerance) {
		t.Errorf("Expected center ray along +Z, got %v", ray.Direction)
	}
	if math.Abs(ray.Direction.Length()-1) > tolerance {
		t.Errorf("Expected unit direction, got length %f", ray.Direction.Length())
	}
}

func TestCamera_RoundTrip(t *testing.T) {
	config := CameraConfig{
		Position: core.NewVec3(0, 3, -50),
		LookAt:   core.NewVec3(0, 0, 1),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     60,
		Near:     1,
	}
	camera := NewCamera(config, 300, 200)
	again := NewCamera(config, 300, 200)

	for _, p := range [][2]int{{0, 0}, {150, 100}, {299, 0}, {17, 183}, {299, 199}} {
		ray := camera.GetRay(p[0], p[1])
		if other := again.GetRay(p[0], p[1]); !other.Direction.Equals(ray.Direction) {
			t.Errorf("Pixel %v: identical cameras produced %v and %v", p, ray.Direction, other.Direction)
		}

		px, py, ok := camera.WorldToPixel(ray.At(37))
		if !ok {
			t.Fatalf("Pixel %v: expected point in front of camera", p)
		}
		if math.Abs(px-float64(p[0])) > 1e-6 || math.Abs(py-float64(p[1])) > 1e-6 {
			t.Errorf("Pixel %v: round trip gave (%f, %f)", p, px, py)
		}
	}

	if _, _, ok := camera.WorldToPixel(core.NewVec3(0, 3, -60)); ok {
		t.Error("Expected point behind the camera to be rejected")
	}
}

func TestCamera_RotateAboutY(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Position: core.NewVec3(0, 0, -50),
		LookAt:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     45,
		Near:     1,
	}, 100, 100)

	camera.RotateAboutY(math.Pi / 2)

	if !camera.Config().Position.ApproxEquals(core.NewVec3(50, 0, 0), 1e-9) {
		t.Errorf("Expected position (50,0,0), got %v", camera.Config().Position)
	}
	_, _, forward := camera.Basis()
	if !forward.ApproxEquals(core.NewVec3(-1, 0, 0), 1e-9) {
		t.Errorf("Expected forward (-1,0,0), got %v", forward)
	}
}

func TestMergeCameraConfig(t *testing.T) {
	merged := MergeCameraConfig(DefaultCameraConfig(), CameraConfig{VFov: 60, Position: core.NewVec3(1, 2, 3)})
	if merged.VFov != 60 || !merged.Position.Equals(core.NewVec3(1, 2, 3)) {
		t.Errorf("Override not applied: %+v", merged)
	}
	if merged.Near != 1 || !merged.Up.Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("Base values lost: %+v", merged)
	}
}

func TestCamera_Tween(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig(), 100, 100)
	if camera.IsTweening() {
		t.Fatal("Expected no tween before a target is set")
	}
	if camera.AdvanceTween() {
		t.Fatal("AdvanceTween without a target should report false")
	}

	target := core.NewVec3(10, 0, 0)
	fov := 55.0
	if err := camera.SetTweenTarget(4, TweenTarget{Position: &target, VFov: &fov}); err != nil {
		t.Fatalf("SetTweenTarget: %v", err)
	}

	// Each frame adds 10·ease(k/4) to the previous position
	expectedX := []float64{1.5625, 6.5625, 15, 25}
	for frame, want := range expectedX {
		more := camera.AdvanceTween()
		config := camera.Config()
		if math.Abs(config.Position.X-want) > 1e-12 {
			t.Errorf("Frame %d: expected x=%f, got %f", frame+1, want, config.Position.X)
		}
		if !config.LookAt.Equals(core.NewVec3(0, 0, 1)) {
			t.Errorf("Frame %d: untargeted look-at changed to %v", frame+1, config.LookAt)
		}
		if wantMore := frame < len(expectedX)-1; more != wantMore {
			t.Errorf("Frame %d: expected in-progress=%v, got %v", frame+1, wantMore, more)
		}
	}

	if got := camera.Config().VFov; math.Abs(got-70) > 1e-12 {
		t.Errorf("Expected final fov 70, got %f", got)
	}
	if camera.IsTweening() {
		t.Error("Expected tween to be finished")
	}
}

func TestCamera_TweenAccumulatesFromCurrentState(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig(), 100, 100)
	target := core.NewVec3(10, 0, 0)
	if err := camera.SetTweenTarget(2, TweenTarget{Position: &target}); err != nil {
		t.Fatalf("SetTweenTarget: %v", err)
	}

	camera.AdvanceTween()
	if got := camera.Config().Position; !got.Equals(core.NewVec3(5, 0, 0)) {
		t.Errorf("After frame 1: expected (5, 0, 0), got %v", got)
	}
	camera.AdvanceTween()
	if got := camera.Config().Position; !got.Equals(core.NewVec3(15, 0, 0)) {
		t.Errorf("After frame 2: expected (15, 0, 0), got %v", got)
	}

	// Custom easing applies the same per-frame offsets
	camera = NewCamera(DefaultCameraConfig(), 100, 100)
	if err := camera.SetTweenTarget(2, TweenTarget{Position: &target}); err != nil {
		t.Fatalf("SetTweenTarget: %v", err)
	}
	linear := func(t float64) float64 { return t }
	camera.AdvanceTweenWith(linear)
	camera.AdvanceTweenWith(linear)
	if got := camera.Config().Position; !got.Equals(core.NewVec3(15, 0, 0)) {
		t.Errorf("Linear easing: expected (15, 0, 0), got %v", got)
	}
}

func TestCamera_TweenRejectsZeroFrames(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig(), 10, 10)
	if err := camera.SetTweenTarget(0, TweenTarget{}); err == nil {
		t.Error("Expected error for zero frames")
	}
}

func TestSmoothstep(t *testing.T) {
	if Smoothstep(0) != 0 || Smoothstep(1) != 1 || Smoothstep(0.5) != 0.5 {
		t.Errorf("Unexpected endpoints: %f %f %f", Smoothstep(0), Smoothstep(0.5), Smoothstep(1))
	}
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := Smoothstep(float64(i) / 100)
		if v < prev {
			t.Fatalf("Smoothstep not monotonic at %d", i)
		}
		prev = v
	}
}
