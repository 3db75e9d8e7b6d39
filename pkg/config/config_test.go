package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

func TestLoad_EnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("RAYTRACER_SCENE", "mirrors")
	t.Setenv("RAYTRACER_WIDTH", "640")
	t.Setenv("RAYTRACER_MAX_DEPTH", "2")
	t.Setenv("RAYTRACER_EPSILON", "0.01")
	t.Setenv("RAYTRACER_WIREFRAME", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Scene != "mirrors" {
		t.Errorf("Scene: expected mirrors, got %q", cfg.Scene)
	}
	if cfg.Width != 640 || cfg.Height != 200 {
		t.Errorf("Size: expected 640x200, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.MaxDepth != 2 {
		t.Errorf("MaxDepth: expected 2, got %d", cfg.MaxDepth)
	}
	if cfg.Epsilon != 0.01 {
		t.Errorf("Epsilon: expected 0.01, got %g", cfg.Epsilon)
	}
	if !cfg.Wireframe {
		t.Error("Wireframe: expected true")
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "RAYTRACER_WIDTH=120\nRAYTRACER_HEIGHT=80\nRAYTRACER_PORT=9090\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	// Process environment wins over the file
	t.Setenv("RAYTRACER_WIDTH", "50")

	cfg, err := Load(path, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 50 {
		t.Errorf("Width: expected env value 50, got %d", cfg.Width)
	}
	if cfg.Height != 80 {
		t.Errorf("Height: expected file value 80, got %d", cfg.Height)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port: expected 9090, got %d", cfg.Port)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		message string
	}{
		{"non-numeric width", "RAYTRACER_WIDTH", "wide", "RAYTRACER_WIDTH"},
		{"bad bool", "RAYTRACER_WIREFRAME", "maybe", "RAYTRACER_WIREFRAME"},
		{"zero height", "RAYTRACER_HEIGHT", "0", "invalid image size"},
		{"negative depth", "RAYTRACER_MAX_DEPTH", "-1", "max depth"},
		{"zero upscale", "RAYTRACER_UPSCALE", "0", "upscale"},
		{"port out of range", "RAYTRACER_PORT", "70000", "invalid port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			if err == nil {
				t.Fatalf("Expected error for %s=%s", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("Expected error mentioning %q, got %v", tt.message, err)
			}
		})
	}
}
