package geometry

import (
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// CameraConfig contains the user-facing camera parameters
type CameraConfig struct {
	Position core.Vec3 // Camera position in world space
	LookAt   core.Vec3 // Center of interest
	Up       core.Vec3 // General up direction
	VFov     float64   // Vertical field of view in degrees
	Near     float64   // Distance from the camera to the view plane
}

// DefaultCameraConfig returns a camera at the origin looking down +Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Position: core.NewVec3(0, 0, 0),
		LookAt:   core.NewVec3(0, 0, 1),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     45.0,
		Near:     1.0,
	}
}

// MergeCameraConfig overlays the non-zero fields of override onto base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	zero := core.Vec3{}
	if !override.Position.Equals(zero) {
		result.Position = override.Position
	}
	if !override.LookAt.Equals(zero) {
		result.LookAt = override.LookAt
	}
	if !override.Up.Equals(zero) {
		result.Up = override.Up
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.Near != 0 {
		result.Near = override.Near
	}
	return result
}

// Camera maps output pixels to world-space rays through a virtual view plane
type Camera struct {
	config CameraConfig

	// Output surface dimensions, read once
	width, height int
	aspectRatio   float64

	// Orthonormal basis
	right   core.Vec3
	trueUp  core.Vec3
	forward core.Vec3

	// View plane
	halfWidth   float64
	halfHeight  float64
	viewOrigin  core.Vec3 // World position of the top-left corner
	widthRatio  float64   // View-plane units per output pixel, horizontally
	heightRatio float64   // View-plane units per output pixel, vertically

	tween *cameraTween
}

// NewCamera creates a camera for an output surface of the given size
func NewCamera(config CameraConfig, width, height int) *Camera {
	c := &Camera{
		width:       width,
		height:      height,
		aspectRatio: float64(width) / float64(height),
	}
	c.Set(config)
	return c
}

// Set recomputes the basis and view plane from scratch
func (c *Camera) Set(config CameraConfig) {
	c.config = config

	c.forward = config.LookAt.Subtract(config.Position).Normalize()
	c.right = config.Up.Cross(c.forward).Normalize()
	c.trueUp = c.forward.Cross(c.right).Normalize()

	c.halfHeight = math.Tan(config.VFov*math.Pi/360.0) * config.Near
	c.halfWidth = c.halfHeight * c.aspectRatio

	c.widthRatio = 2 * c.halfWidth / float64(c.width)
	c.heightRatio = 2 * c.halfHeight / float64(c.height)

	c.viewOrigin = config.Position.
		Add(c.forward.Multiply(config.Near)).
		Add(c.trueUp.Multiply(c.halfHeight)).
		Subtract(c.right.Multiply(c.halfWidth))
}

// Config returns the current camera parameters
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Basis returns the right, up and forward unit vectors
func (c *Camera) Basis() (right, up, forward core.Vec3) {
	return c.right, c.trueUp, c.forward
}

// ViewOrigin returns the world position of the view plane's top-left corner
func (c *Camera) ViewOrigin() core.Vec3 {
	return c.viewOrigin
}

// Size returns the output dimensions the camera was created for
func (c *Camera) Size() (width, height int) {
	return c.width, c.height
}

// PixelToWorld returns the world-space point on the view plane for output
// pixel coordinates (px, py), with y growing downward
func (c *Camera) PixelToWorld(px, py float64) core.Vec3 {
	return c.viewOrigin.
		Add(c.right.Multiply(px * c.widthRatio)).
		Subtract(c.trueUp.Multiply(py * c.heightRatio))
}

// GetRay returns the primary ray through pixel (x, y)
func (c *Camera) GetRay(x, y int) core.Ray {
	target := c.PixelToWorld(float64(x), float64(y))
	return core.NewRay(c.config.Position, target.Subtract(c.config.Position))
}

// WorldToPixel projects a world point through the view plane back to pixel
// coordinates. Points on or behind the camera plane report false.
func (c *Camera) WorldToPixel(point core.Vec3) (px, py float64, ok bool) {
	dir := point.Subtract(c.config.Position)
	depth := dir.Dot(c.forward)
	if depth <= 0 {
		return 0, 0, false
	}

	onPlane := c.config.Position.Add(dir.Multiply(c.config.Near / depth))
	rel := onPlane.Subtract(c.viewOrigin)
	px = rel.Dot(c.right) / c.widthRatio
	py = -rel.Dot(c.trueUp) / c.heightRatio
	return px, py, true
}

// RotateAboutY orbits the camera position around the world Y axis by angle radians
func (c *Camera) RotateAboutY(angle float64) {
	cos, sin := math.Cos(angle), math.Sin(angle)
	config := c.config
	p := config.Position
	config.Position = core.NewVec3(p.X*cos-p.Z*sin, p.Y, p.X*sin+p.Z*cos)
	c.Set(config)
}
