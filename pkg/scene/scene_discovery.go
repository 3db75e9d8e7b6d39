package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-scanline-raytracer/pkg/geometry"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, used with Create
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

const builtInGroup = "Built-in Scenes"

type sceneEntry struct {
	info   SceneInfo
	create func(overrides ...geometry.CameraConfig) *Scene
}

var registry = []sceneEntry{
	{
		info: SceneInfo{
			ID:          "default",
			Description: "Plane, sphere, box and cylinder under a spotlight",
			Group:       builtInGroup,
		},
		create: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "mirrors",
			Description: "Glossy spheres between two facing walls, two point lights",
			Group:       builtInGroup,
		},
		create: NewMirrorsScene,
	},
	{
		info: SceneInfo{
			ID:          "sphere-grid",
			Description: "6x6 grid of colored spheres on a plane",
			Group:       "Stress Scenes",
		},
		create: func(overrides ...geometry.CameraConfig) *Scene {
			return NewSphereGridScene(6, overrides...)
		},
	},
}

func init() {
	for i := range registry {
		name := titleCase(registry[i].info.ID)
		registry[i].info.Name = name
		registry[i].info.DisplayName = name
	}
}

// Available returns the IDs of all built-in scenes, sorted
func Available() []string {
	ids := make([]string, 0, len(registry))
	for _, e := range registry {
		ids = append(ids, e.info.ID)
	}
	sort.Strings(ids)
	return ids
}

// Create builds the scene with the given ID, applying an optional camera override
func Create(id string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	for _, e := range registry {
		if e.info.ID == id {
			return e.create(cameraOverrides...), nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q (available: %s)", id, strings.Join(Available(), ", "))
}

// ListAllScenes returns the built-in scenes grouped by category
func ListAllScenes() ScenesResponse {
	var response ScenesResponse

	groupMap := make(map[string][]SceneInfo)
	for _, e := range registry {
		groupMap[e.info.Group] = append(groupMap[e.info.Group], e.info)
	}

	// Built-in first, then alphabetical
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtInGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	if scenes, exists := groupMap[builtInGroup]; exists {
		response.Groups = append(response.Groups, SceneGroup{Name: builtInGroup, Scenes: scenes})
	}
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{Name: groupName, Scenes: groupMap[groupName]})
	}

	return response
}

// titleCase converts an identifier-style string to title case
// e.g., "sphere-grid" -> "Sphere Grid"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
