package geometry

import (
	"fmt"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// EaseFunc maps tween progress in [0,1] to interpolation weight in [0,1]
type EaseFunc func(t float64) float64

// Smoothstep is the default easing curve, 3t² - 2t³
func Smoothstep(t float64) float64 {
	return 3*t*t - 2*t*t*t
}

// TweenTarget names the camera parameters to animate. Nil fields keep their
// current value.
type TweenTarget struct {
	Position *core.Vec3
	LookAt   *core.Vec3
	Up       *core.Vec3
	VFov     *float64
	Near     *float64
}

// cameraTween holds the per-parameter deltas and the precomputed frame times
type cameraTween struct {
	delta   CameraConfig
	tValues []float64
	frame   int
}

// SetTweenTarget starts animating towards target over the given number of frames
func (c *Camera) SetTweenTarget(frames int, target TweenTarget) error {
	if frames <= 0 {
		return fmt.Errorf("tween frame count must be positive, got %d", frames)
	}

	tw := &cameraTween{tValues: make([]float64, frames)}
	for k := 1; k <= frames; k++ {
		tw.tValues[k-1] = float64(k) / float64(frames)
	}

	if target.Position != nil {
		tw.delta.Position = target.Position.Subtract(c.config.Position)
	}
	if target.LookAt != nil {
		tw.delta.LookAt = target.LookAt.Subtract(c.config.LookAt)
	}
	if target.Up != nil {
		tw.delta.Up = target.Up.Subtract(c.config.Up)
	}
	if target.VFov != nil {
		tw.delta.VFov = *target.VFov - c.config.VFov
	}
	if target.Near != nil {
		tw.delta.Near = *target.Near - c.config.Near
	}

	c.tween = tw
	return nil
}

// IsTweening reports whether a tween still has frames left
func (c *Camera) IsTweening() bool {
	return c.tween != nil
}

// AdvanceTween applies one smoothstep tween frame and reports whether more remain
func (c *Camera) AdvanceTween() bool {
	return c.AdvanceTweenWith(Smoothstep)
}

// AdvanceTweenWith applies one tween frame using the given easing function.
// Frame k of N adds delta·ease(k/N) to the current value of every animated
// parameter. The offsets accumulate, so the camera ends at
// start + delta·Σease(k/N) rather than on the target itself.
func (c *Camera) AdvanceTweenWith(ease EaseFunc) bool {
	tw := c.tween
	if tw == nil {
		return false
	}

	w := ease(tw.tValues[tw.frame])
	cfg := c.config
	cfg.Position = cfg.Position.Add(tw.delta.Position.Multiply(w))
	cfg.LookAt = cfg.LookAt.Add(tw.delta.LookAt.Multiply(w))
	cfg.Up = cfg.Up.Add(tw.delta.Up.Multiply(w))
	cfg.VFov += tw.delta.VFov * w
	cfg.Near += tw.delta.Near * w
	c.Set(cfg)

	tw.frame++
	if tw.frame >= len(tw.tValues) {
		c.tween = nil
	}
	return c.tween != nil
}
