package material

import (
	"image/color"
	"testing"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

func TestNewMaterial_DerivesAmbient(t *testing.T) {
	diffuse := core.NewVec3(1, 0.5, 0)
	mat := NewMaterial(diffuse, core.NewVec3(0.2, 0.2, 0.2), 40)

	expected := core.NewVec3(0.3, 0.15, 0)
	if !mat.Ambient().ApproxEquals(expected, 1e-12) {
		t.Errorf("Expected ambient %v, got %v", expected, mat.Ambient())
	}
	if !mat.Diffuse().Equals(diffuse) {
		t.Errorf("Expected diffuse %v, got %v", diffuse, mat.Diffuse())
	}
	if mat.Hardness() != 40 {
		t.Errorf("Expected hardness 40, got %f", mat.Hardness())
	}
}

func TestNewDiffuse_Defaults(t *testing.T) {
	mat := NewDiffuse(core.NewVec3(0, 1, 0))
	if !mat.Specular().Equals(core.NewVec3(1, 1, 1)) {
		t.Errorf("Expected white specular, got %v", mat.Specular())
	}
	if mat.Hardness() != DefaultHardness {
		t.Errorf("Expected hardness %f, got %f", DefaultHardness, mat.Hardness())
	}
}

func TestNewMaterial_NonPositiveHardness(t *testing.T) {
	mat := NewMaterial(core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1), 0)
	if mat.Hardness() != DefaultHardness {
		t.Errorf("Expected fallback hardness %f, got %f", DefaultHardness, mat.Hardness())
	}
}

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name     string
		in       core.Vec3
		expected color.RGBA
	}{
		{"black", core.NewVec3(0, 0, 0), color.RGBA{0, 0, 0, 255}},
		{"white", core.NewVec3(1, 1, 1), color.RGBA{255, 255, 255, 255}},
		{"clamped", core.NewVec3(2, -1, 0.5), color.RGBA{255, 0, 127, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToRGBA(tt.in); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#323232")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c != (color.RGBA{50, 50, 50, 255}) {
		t.Errorf("Expected (50,50,50), got %v", c)
	}
	if HexColor(c) != "#323232" {
		t.Errorf("Expected #323232, got %s", HexColor(c))
	}

	for _, bad := range []string{"", "#12345", "zzzzzz", "#1234567"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}
