package renderer

import (
	"image"
	"image/color"
	"testing"
)

func TestImageSurface(t *testing.T) {
	surface := NewImageSurface(4, 3)
	if surface.Width() != 4 || surface.Height() != 3 {
		t.Fatalf("Expected 4x3, got %dx%d", surface.Width(), surface.Height())
	}

	red := color.RGBA{R: 255, A: 255}
	surface.SetPixel(2, 1, red)
	if got := surface.Image().RGBAAt(2, 1); got != red {
		t.Errorf("Expected %v, got %v", red, got)
	}

	row := surface.Row(1)
	if row.Bounds().Dx() != 4 || row.Bounds().Dy() != 1 {
		t.Fatalf("Unexpected row bounds %v", row.Bounds())
	}
	if got := row.RGBAAt(2, 0); got != red {
		t.Errorf("Row copy: expected %v, got %v", red, got)
	}

	// Row is a copy
	row.SetRGBA(2, 0, color.RGBA{})
	if surface.Image().RGBAAt(2, 1) != red {
		t.Error("Row shares storage with the surface")
	}
}

func TestWrapImage_OffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 13, 22))
	surface := WrapImage(img)
	if surface.Width() != 3 || surface.Height() != 2 {
		t.Fatalf("Expected 3x2, got %dx%d", surface.Width(), surface.Height())
	}

	blue := color.RGBA{B: 255, A: 255}
	surface.SetPixel(0, 1, blue)
	if got := img.RGBAAt(10, 21); got != blue {
		t.Errorf("Expected pixel written at image origin offset, got %v", got)
	}
	if got := surface.Row(1).RGBAAt(0, 0); got != blue {
		t.Errorf("Expected row to respect bounds offset, got %v", got)
	}
}

func TestRenderStats(t *testing.T) {
	var stats RenderStats
	if stats.Coverage() != 0 || stats.Complete() {
		t.Errorf("Empty stats should have zero coverage and be incomplete")
	}

	stats.Height = 2
	stats.add(ScanlineStats{Y: 0, Pixels: 10, PrimaryHits: 5})
	stats.add(ScanlineStats{Y: 1, Pixels: 10, PrimaryHits: 10})
	if stats.Coverage() != 0.75 {
		t.Errorf("Expected coverage 0.75, got %f", stats.Coverage())
	}
	if !stats.Complete() {
		t.Error("Expected complete after both rows")
	}
}
