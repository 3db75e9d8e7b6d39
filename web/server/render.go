package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/renderer"
	"github.com/df07/go-scanline-raytracer/pkg/scene"
)

// DefaultBatchSize is the number of finished scanlines per streamed update
const DefaultBatchSize = 16

// RowData is one rendered scanline encoded as a PNG strip
type RowData struct {
	Y         int    `json:"y"`
	ImageData string `json:"imageData"` // Base64 encoded PNG, Upscale pixels tall
}

// ScanlineUpdate carries a batch of finished scanlines. Rows arrive in
// completion order, not top to bottom.
type ScanlineUpdate struct {
	RenderID  string    `json:"renderId"`
	Rows      []RowData `json:"rows"`
	Completed int       `json:"completed"` // Scanlines finished so far
	Total     int       `json:"total"`
	Upscale   int       `json:"upscale"`
}

// FrameUpdate is sent once the whole frame is rendered
type FrameUpdate struct {
	RenderID       string  `json:"renderId"`
	ImageData      string  `json:"imageData"` // Base64 encoded PNG of the full frame
	ElapsedMs      int64   `json:"elapsedMs"`
	Scanlines      int     `json:"scanlines"`
	TotalPixels    int     `json:"totalPixels"`
	PrimaryHits    int     `json:"primaryHits"`
	Coverage       float64 `json:"coverage"`
	Workers        int     `json:"workers"`
	PrimitiveCount int     `json:"primitiveCount"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "scanlines", "frameComplete", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// RenderingPipeline contains the configured scene and raytracer
type RenderingPipeline struct {
	Scene     *scene.Scene
	Surface   *renderer.ImageSurface
	Raytracer *renderer.Raytracer
}

// handleRender renders one frame, streaming finished scanlines via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	clientCtx := r.Context()
	ctx, cancel := context.WithCancel(clientCtx)
	defer cancel()

	// Single writer goroutine owns w
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		s.writeSSEEvents(w, clientCtx, sseEventChan)
		close(writerDone)
	}()

	renderID, consoleChan, webLogger := s.setupConsoleLogging()
	var consoleWG sync.WaitGroup
	consoleWG.Add(1)
	go func() {
		defer consoleWG.Done()
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()

	// Console streaming must stop before the event channel closes
	defer func() {
		cancel()
		consoleWG.Wait()
		close(sseEventChan)
		<-writerDone
	}()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.handleError(clientCtx, sseEventChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	pipeline, err := s.setupRenderingPipeline(req, webLogger)
	if err != nil {
		s.handleError(clientCtx, sseEventChan, err.Error())
		return
	}

	startTime := time.Now()
	batch := make([]RowData, 0, req.BatchSize)
	completed := 0
	flush := func() {
		if len(batch) == 0 {
			return
		}
		s.sendEvent(clientCtx, sseEventChan, "scanlines", ScanlineUpdate{
			RenderID:  renderID,
			Rows:      batch,
			Completed: completed,
			Total:     req.Height,
			Upscale:   req.Upscale,
		})
		batch = make([]RowData, 0, req.BatchSize)
	}

	stats, err := pipeline.Raytracer.RenderFrame(clientCtx, func(line renderer.ScanlineStats) {
		completed++
		row, err := s.encodeRow(pipeline.Surface, line.Y, req.Upscale)
		if err != nil {
			log.Printf("Error encoding scanline %d: %v", line.Y, err)
			return
		}
		batch = append(batch, row)
		if len(batch) >= req.BatchSize {
			flush()
		}
	})
	flush()

	if err != nil {
		if clientCtx.Err() == nil {
			s.handleError(clientCtx, sseEventChan, fmt.Sprintf("Rendering failed: %v", err))
		}
		return
	}

	frameData, err := s.imageToBase64PNG(pipeline.Surface.Image())
	if err != nil {
		s.handleError(clientCtx, sseEventChan, fmt.Sprintf("Failed to encode frame: %v", err))
		return
	}
	s.sendEvent(clientCtx, sseEventChan, "frameComplete", FrameUpdate{
		RenderID:       renderID,
		ImageData:      frameData,
		ElapsedMs:      time.Since(startTime).Milliseconds(),
		Scanlines:      stats.Scanlines,
		TotalPixels:    stats.TotalPixels,
		PrimaryHits:    stats.PrimaryHits,
		Coverage:       stats.Coverage(),
		Workers:        stats.Workers,
		PrimitiveCount: pipeline.Scene.GetPrimitiveCount(),
	})

	select {
	case sseEventChan <- SSEEvent{Type: "complete", Data: "Rendering completed"}:
	case <-clientCtx.Done():
	}
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates a render ID, console channel and web logger for a render
func (s *Server) setupConsoleLogging() (string, chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := uuid.NewString()
	webLogger := NewWebLogger(renderID, consoleChan)
	return renderID, consoleChan, webLogger
}

// writeSSEEvents handles writing all SSE events in a single goroutine (thread-safe)
func (s *Server) writeSSEEvents(w http.ResponseWriter, ctx context.Context, sseEventChan chan SSEEvent) {
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				return
			}

			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
				// Client disconnected during write
				return
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}

		case <-ctx.Done():
			return
		}
	}
}

// streamConsoleMessages forwards console messages until ctx is done, then
// forwards whatever is still buffered.
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan chan ConsoleMessage, sseEventChan chan SSEEvent) {
	forward := func(msg ConsoleMessage) {
		data, err := json.Marshal(msg)
		if err != nil {
			log.Printf("Error marshaling console message: %v", err)
			return
		}
		select {
		case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
		default:
			// Channel full, skip message to avoid blocking
		}
	}

	for {
		select {
		case msg := <-consoleChan:
			forward(msg)
		case <-ctx.Done():
			for {
				select {
				case msg := <-consoleChan:
					forward(msg)
				default:
					return
				}
			}
		}
	}
}

// setupRenderingPipeline creates and configures the scene and raytracer
func (s *Server) setupRenderingPipeline(req *RenderRequest, logger core.Logger) (*RenderingPipeline, error) {
	sceneObj := s.createScene(req)
	if sceneObj == nil {
		return nil, fmt.Errorf("Unknown scene: %s", req.Scene)
	}

	surface := renderer.NewImageSurface(req.Width, req.Height)
	config := renderer.MergeRenderConfig(renderer.DefaultRenderConfig(), renderer.RenderConfig{
		Epsilon:    s.defaults.Epsilon,
		NumWorkers: s.defaults.Workers,
	})
	// Zero is a valid depth, so it is not merged
	config.MaxDepth = req.MaxDepth

	return &RenderingPipeline{
		Scene:     sceneObj,
		Surface:   surface,
		Raytracer: renderer.NewRaytracer(sceneObj, surface, config, logger),
	}, nil
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if err := s.parseCommonSceneParams(r, req); err != nil {
		return nil, err
	}

	var err error
	if req.BatchSize, err = parseIntParam(r.URL.Query(), "batchSize", DefaultBatchSize, 1, maxBatchSize); err != nil {
		return nil, err
	}
	if req.Upscale, err = parseIntParam(r.URL.Query(), "upscale", 1, 1, maxUpscale); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.MaxDepth > 10 {
		log.Printf("Render warning: Large image with deep reflections may render slowly")
	}

	return req, nil
}

// encodeRow copies scanline y, scales it and encodes it as base64 PNG
func (s *Server) encodeRow(surface *renderer.ImageSurface, y, upscale int) (RowData, error) {
	var row image.Image = surface.Row(y)
	if upscale > 1 {
		b := row.Bounds()
		row = resize.Resize(uint(b.Dx()*upscale), uint(b.Dy()*upscale), row, resize.NearestNeighbor)
	}
	data, err := s.imageToBase64PNG(row)
	if err != nil {
		return RowData{}, err
	}
	return RowData{Y: y, ImageData: data}, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// sendEvent marshals v and queues it as an SSE event
func (s *Server) sendEvent(ctx context.Context, sseEventChan chan SSEEvent, eventType string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error marshaling %s update: %v", eventType, err)
		return
	}
	select {
	case sseEventChan <- SSEEvent{Type: eventType, Data: string(data)}:
	case <-ctx.Done():
	}
}

// handleError sends an error event to the SSE channel
func (s *Server) handleError(ctx context.Context, sseEventChan chan SSEEvent, message string) {
	select {
	case sseEventChan <- SSEEvent{Type: "error", Data: message}:
	case <-ctx.Done():
		// Client disconnected, don't block
	}
}
