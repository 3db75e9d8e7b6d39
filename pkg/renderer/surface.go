package renderer

import (
	"image"
	"image/color"
)

// Surface is the pixel buffer a render writes into. Width and Height are read
// once when a Raytracer is created.
type Surface interface {
	Width() int
	Height() int
	SetPixel(x, y int, c color.RGBA)
}

// ImageSurface adapts an *image.RGBA to Surface. Writes to distinct rows are
// safe from separate goroutines.
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface allocates a width×height RGBA surface
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// WrapImage uses an existing image as a surface
func WrapImage(img *image.RGBA) *ImageSurface {
	return &ImageSurface{img: img}
}

func (s *ImageSurface) Width() int  { return s.img.Bounds().Dx() }
func (s *ImageSurface) Height() int { return s.img.Bounds().Dy() }

func (s *ImageSurface) SetPixel(x, y int, c color.RGBA) {
	b := s.img.Bounds()
	s.img.SetRGBA(b.Min.X+x, b.Min.Y+y, c)
}

// Image returns the backing image
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Row returns a copy of scanline y as its own image
func (s *ImageSurface) Row(y int) *image.RGBA {
	b := s.img.Bounds()
	row := image.NewRGBA(image.Rect(0, 0, b.Dx(), 1))
	start := s.img.PixOffset(b.Min.X, b.Min.Y+y)
	copy(row.Pix, s.img.Pix[start:start+4*b.Dx()])
	return row
}
