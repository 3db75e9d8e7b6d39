package server

import (
	"encoding/json"
	"fmt"
	"image/color"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-scanline-raytracer/pkg/config"
	"github.com/df07/go-scanline-raytracer/pkg/material"
	"github.com/df07/go-scanline-raytracer/pkg/scene"
)

// Request limits shared by the render and inspect endpoints
const (
	minSize       = 16
	maxSize       = 2000
	maxDepthLimit = 20
	maxBatchSize  = 256
	maxUpscale    = 8
)

// Server handles web requests for the scanline raytracer
type Server struct {
	port     int
	defaults config.Config
	mux      *http.ServeMux
}

// NewServer creates a new web server; request parameters default to cfg
func NewServer(cfg config.Config) *Server {
	s := &Server{port: cfg.Port, defaults: cfg, mux: http.NewServeMux()}

	// Serve static files
	s.mux.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/inspect", s.handleInspect)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	s.mux.HandleFunc("/api/health", s.handleHealth)
	return s
}

// Handler returns the request router
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.mux)
}

// RenderRequest represents a render or inspect request from the client
type RenderRequest struct {
	Scene      string      `json:"scene"`      // Scene ID (e.g., "default")
	Width      int         `json:"width"`      // Image width
	Height     int         `json:"height"`     // Image height
	MaxDepth   int         `json:"maxDepth"`   // Reflection recursion depth
	Background *color.RGBA `json:"background"` // Optional background override
	BatchSize  int         `json:"batchSize"`  // Scanlines per streamed update
	Upscale    int         `json:"upscale"`    // Nearest-neighbour scale applied to streamed rows
}

// parseCommonSceneParams parses the parameters that identify a scene render
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) error {
	query := r.URL.Query()

	if sceneID := query.Get("scene"); sceneID != "" {
		req.Scene = sceneID
	} else {
		req.Scene = s.defaults.Scene
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", s.defaults.Width, minSize, maxSize); err != nil {
		return err
	}
	if req.Height, err = parseIntParam(query, "height", s.defaults.Height, minSize, maxSize); err != nil {
		return err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", s.defaults.MaxDepth, 0, maxDepthLimit); err != nil {
		return err
	}
	if value := query.Get("background"); value != "" {
		bg, err := material.ParseHexColor(value)
		if err != nil {
			return err
		}
		req.Background = &bg
	}
	return nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene builds the requested scene and applies per-request overrides.
// Returns nil for unknown scenes.
func (s *Server) createScene(req *RenderRequest) *scene.Scene {
	sceneObj, err := scene.Create(req.Scene)
	if err != nil {
		return nil
	}
	if req.Background != nil {
		sceneObj.Background = *req.Background
	}
	return sceneObj
}

// writeJSON writes v with the given status code
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// writeError writes a JSON error body
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes grouped for the UI
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListAllScenes())
}

// handleSceneConfig returns the camera, lighting summary and request limits for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = s.defaults.Scene
	}

	sceneObj, err := scene.Create(sceneName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cam := sceneObj.CameraConfig
	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":      s.defaults.Width,
			"height":     s.defaults.Height,
			"maxDepth":   s.defaults.MaxDepth,
			"background": material.HexColor(sceneObj.Background),
		},
		"camera": map[string]interface{}{
			"position": [3]float64{cam.Position.X, cam.Position.Y, cam.Position.Z},
			"lookAt":   [3]float64{cam.LookAt.X, cam.LookAt.Y, cam.LookAt.Z},
			"up":       [3]float64{cam.Up.X, cam.Up.Y, cam.Up.Z},
			"vfov":     cam.VFov,
			"near":     cam.Near,
		},
		"shapes": sceneObj.CountByKind(),
		"lights": len(sceneObj.Lights),
		"limits": map[string]interface{}{
			"width":     map[string]int{"min": minSize, "max": maxSize},
			"height":    map[string]int{"min": minSize, "max": maxSize},
			"maxDepth":  map[string]int{"min": 0, "max": maxDepthLimit},
			"batchSize": map[string]int{"min": 1, "max": maxBatchSize},
			"upscale":   map[string]int{"min": 1, "max": maxUpscale},
		},
	}

	writeJSON(w, http.StatusOK, response)
}
