// Package config loads run settings from RAYTRACER_* environment variables,
// optionally seeded from .env files. Process environment wins over files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every variable name
const EnvPrefix = "RAYTRACER_"

// Config holds settings shared by the CLI, the viewer and the web server
type Config struct {
	Scene     string  // Built-in scene ID
	Width     int     // Output width in pixels
	Height    int     // Output height in pixels
	MaxDepth  int     // Reflection recursion depth
	Epsilon   float64 // Secondary ray surface offset
	Workers   int     // Parallel scanline workers (0 = CPU count)
	OutputDir string  // Where the CLI writes images
	Upscale   int     // Integer upscale factor applied to saved images
	Wireframe bool    // Also write an XY debug wireframe
	Port      int     // Web server port
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		Scene:     "default",
		Width:     300,
		Height:    200,
		MaxDepth:  5,
		Epsilon:   0.001,
		Workers:   0,
		OutputDir: "output",
		Upscale:   1,
		Wireframe: false,
		Port:      8080,
	}
}

// Load reads the given .env files (missing files are skipped) and the process
// environment on top of Default.
func Load(envFiles ...string) (Config, error) {
	fileValues := make(map[string]string)
	for _, path := range envFiles {
		values, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
		for k, v := range values {
			fileValues[k] = v
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileValues[key]
		return v, ok
	}

	cfg, err := apply(Default(), lookup)
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// apply overwrites fields of cfg for every variable lookup finds
func apply(cfg Config, lookup func(string) (string, bool)) (Config, error) {
	var errs []error

	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	integer := func(name string, dst *int) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = n
		}
	}
	float := func(name string, dst *float64) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = f
		}
	}
	boolean := func(name string, dst *bool) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = b
		}
	}

	str("SCENE", &cfg.Scene)
	integer("WIDTH", &cfg.Width)
	integer("HEIGHT", &cfg.Height)
	integer("MAX_DEPTH", &cfg.MaxDepth)
	float("EPSILON", &cfg.Epsilon)
	integer("WORKERS", &cfg.Workers)
	str("OUTPUT_DIR", &cfg.OutputDir)
	integer("UPSCALE", &cfg.Upscale)
	boolean("WIREFRAME", &cfg.Wireframe)
	integer("PORT", &cfg.Port)

	return cfg, errors.Join(errs...)
}

// Validate checks that the settings can drive a render
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	case c.MaxDepth < 0:
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	case c.Epsilon <= 0:
		return fmt.Errorf("epsilon must be positive, got %g", c.Epsilon)
	case c.Workers < 0:
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	case c.Upscale < 1:
		return fmt.Errorf("upscale must be at least 1, got %d", c.Upscale)
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}
