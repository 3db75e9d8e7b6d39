// Package debugdraw renders a flat wireframe of a scene projected onto the
// XY plane. Spheres become circles, boxes and cylinders become rectangles,
// planes become lines and lights become markers.
package debugdraw

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/lights"
	"github.com/df07/go-scanline-raytracer/pkg/scene"
)

// Options controls the wireframe output
type Options struct {
	Width, Height int
	Thickness     float64    // Stroke width in pixels
	Scale         float64    // Pixels per world unit
	Center        core.Vec3  // World point drawn at the image center (Z ignored)
	Labels        bool       // Draw shape kind next to each shape
	Background    color.RGBA // Fill color; zero means transparent
}

// DefaultOptions returns options for a width×height image centered on the origin
func DefaultOptions(width, height int) Options {
	return Options{
		Width:     width,
		Height:    height,
		Thickness: 3,
		Scale:     1,
		Labels:    true,
	}
}

// Drawer draws primitives into a gg context
type Drawer struct {
	dc   *gg.Context
	opts Options
}

// NewDrawer creates a drawer with a fresh canvas
func NewDrawer(opts Options) *Drawer {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Thickness <= 0 {
		opts.Thickness = 1
	}
	dc := gg.NewContext(opts.Width, opts.Height)
	if opts.Background.A > 0 {
		dc.SetColor(opts.Background)
		dc.Clear()
	}
	return &Drawer{dc: dc, opts: opts}
}

// Render draws every shape and light of the scene and returns the image
func Render(sc *scene.Scene, opts Options) image.Image {
	d := NewDrawer(opts)
	for _, shape := range sc.Shapes {
		d.DrawShape(shape)
	}
	for _, light := range sc.Lights {
		d.DrawLight(light)
	}
	return d.Image()
}

// Image returns the canvas
func (d *Drawer) Image() image.Image {
	return d.dc.Image()
}

// toPixel maps world XY to canvas coordinates with Y growing upward
func (d *Drawer) toPixel(x, y float64) (float64, float64) {
	px := float64(d.opts.Width)/2 + (x-d.opts.Center.X)*d.opts.Scale
	py := float64(d.opts.Height)/2 - (y-d.opts.Center.Y)*d.opts.Scale
	return px, py
}

// toWorld is the inverse of toPixel
func (d *Drawer) toWorld(px, py float64) (float64, float64) {
	x := (px-float64(d.opts.Width)/2)/d.opts.Scale + d.opts.Center.X
	y := (float64(d.opts.Height)/2-py)/d.opts.Scale + d.opts.Center.Y
	return x, y
}

// DrawShape draws one primitive in its material color
func (d *Drawer) DrawShape(shape geometry.Shape) {
	d.dc.SetColor(shape.Material().DisplayColor())
	d.dc.SetLineWidth(d.opts.Thickness)

	var labelX, labelY float64
	switch s := shape.(type) {
	case *geometry.Sphere:
		labelX, labelY = d.toPixel(s.Center.X, s.Center.Y)
		d.dc.DrawCircle(labelX, labelY, s.Radius*d.opts.Scale)
		d.dc.Stroke()

	case *geometry.Box:
		labelX, labelY = d.rect(s.Min.X, s.Min.Y, s.Max.X, s.Max.Y)

	case *geometry.Cylinder:
		labelX, labelY = d.rect(s.Base.X-s.Radius, s.Base.Y, s.Base.X+s.Radius, s.Base.Y+s.Height)

	case *geometry.Plane:
		x0, y0, x1, y1, ok := d.planeSegment(s)
		if !ok {
			return
		}
		d.dc.DrawLine(x0, y0, x1, y1)
		d.dc.Stroke()
		labelX, labelY = (x0+x1)/2, (y0+y1)/2-10
	}

	if d.opts.Labels {
		d.dc.DrawStringAnchored(geometry.Kind(shape), labelX, labelY, 0.5, 0.5)
	}
}

// rect strokes the world-space rectangle and returns its pixel center
func (d *Drawer) rect(minX, minY, maxX, maxY float64) (float64, float64) {
	x0, y0 := d.toPixel(minX, maxY)
	x1, y1 := d.toPixel(maxX, minY)
	d.dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
	d.dc.Stroke()
	return (x0 + x1) / 2, (y0 + y1) / 2
}

// planeSegment clips the plane's XY trace to the canvas. Planes parallel to
// the XY plane have no trace and report false.
func (d *Drawer) planeSegment(p *geometry.Plane) (x0, y0, x1, y1 float64, ok bool) {
	n := p.Normal
	left, top := d.toWorld(0, 0)
	right, bottom := d.toWorld(float64(d.opts.Width), float64(d.opts.Height))

	switch {
	case math.Abs(n.X) > math.Abs(n.Y):
		// Mostly vertical: solve for x at the top and bottom edges
		ax := (p.D - n.Y*top) / n.X
		bx := (p.D - n.Y*bottom) / n.X
		x0, y0 = d.toPixel(ax, top)
		x1, y1 = d.toPixel(bx, bottom)
	case n.Y != 0:
		ay := (p.D - n.X*left) / n.Y
		by := (p.D - n.X*right) / n.Y
		x0, y0 = d.toPixel(left, ay)
		x1, y1 = d.toPixel(right, by)
	default:
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1, y1, true
}

// DrawLight draws a light position marker and, for spotlights, the cone axis
func (d *Drawer) DrawLight(light lights.Light) {
	c := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	d.dc.SetColor(c)
	d.dc.SetLineWidth(1)

	pos := light.Position()
	x, y := d.toPixel(pos.X, pos.Y)
	d.dc.DrawCircle(x, y, 5)
	d.dc.Fill()

	if spot, ok := light.(*lights.SpotLight); ok {
		d.DrawRay(core.NewNormalizedRay(pos, spot.Direction()), 20)
	}
}

// DrawRay draws a ray from its origin out to length world units
func (d *Drawer) DrawRay(ray core.Ray, length float64) {
	end := ray.At(length)
	x0, y0 := d.toPixel(ray.Origin.X, ray.Origin.Y)
	x1, y1 := d.toPixel(end.X, end.Y)

	d.dc.SetColor(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	d.dc.SetLineWidth(1)
	d.dc.DrawLine(x0, y0, x1, y1)
	d.dc.Stroke()
	d.dc.DrawCircle(x0, y0, 3)
	d.dc.Fill()
}
