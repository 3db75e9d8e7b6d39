package server

import (
	"image/color"
	"net/http"
	"strconv"

	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/material"
	"github.com/df07/go-scanline-raytracer/pkg/renderer"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        string                 `json:"color"` // Rendered pixel color, #rrggbb
	Properties   map[string]interface{} `json:"properties"`
}

func vec(v interface{ Get(int) float64 }) [3]float64 {
	return [3]float64{v.Get(0), v.Get(1), v.Get(2)}
}

// extractMaterialInfo reports the Phong coefficients of a material
func (s *Server) extractMaterialInfo(mat material.Material) map[string]interface{} {
	return map[string]interface{}{
		"ambient":  vec(mat.Ambient()),
		"diffuse":  vec(mat.Diffuse()),
		"specular": vec(mat.Specular()),
		"hardness": mat.Hardness(),
		"color":    material.HexColor(mat.DisplayColor()),
	}
}

// extractGeometryInfo extracts detailed geometry information
func (s *Server) extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vec(geom.Center)
		properties["radius"] = geom.Radius

	case *geometry.Plane:
		properties["normal"] = vec(geom.Normal)
		properties["d"] = geom.D

	case *geometry.Box:
		properties["min"] = vec(geom.Min)
		properties["max"] = vec(geom.Max)

	case *geometry.Cylinder:
		properties["base"] = vec(geom.Base)
		properties["height"] = geom.Height
		properties["radius"] = geom.Radius
	}

	return geometry.Kind(shape), properties
}

// handleInspect casts the primary ray through one pixel and describes what it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	inspectReq := &RenderRequest{}

	if err := s.parseCommonSceneParams(r, inspectReq); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}

	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	if pixelX < 0 || pixelX >= inspectReq.Width || pixelY < 0 || pixelY >= inspectReq.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sceneObj := s.createScene(inspectReq)
	if sceneObj == nil {
		writeError(w, http.StatusBadRequest, "Unknown scene: "+inspectReq.Scene)
		return
	}

	config := renderer.DefaultRenderConfig()
	config.MaxDepth = inspectReq.MaxDepth
	rt := renderer.NewRaytracer(sceneObj, sizeOnly{inspectReq.Width, inspectReq.Height}, config, nil)

	result, err := rt.InspectPixel(pixelX, pixelY)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false, Color: material.HexColor(result.Color)})
		return
	}

	geometryType, geometryProps := s.extractGeometryInfo(result.Shape)
	response := InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        vec(result.Point),
		Normal:       vec(result.Normal),
		Distance:     result.Distance,
		Color:        material.HexColor(result.Color),
		Properties: map[string]interface{}{
			"material": s.extractMaterialInfo(result.Shape.Material()),
			"geometry": geometryProps,
		},
	}

	writeJSON(w, http.StatusOK, response)
}

// sizeOnly is a surface that is never drawn to; inspection only needs the camera dimensions
type sizeOnly struct{ width, height int }

func (s sizeOnly) Width() int                    { return s.width }
func (s sizeOnly) Height() int                   { return s.height }
func (s sizeOnly) SetPixel(int, int, color.RGBA) {}
