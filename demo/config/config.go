package config

import (
	"fmt"
	"os"

	"github.com/gorustyt/gonav/common"
	"github.com/gorustyt/gonav/navmesh"
	"gopkg.in/yaml.v3"
)

// Scene is the YAML description of a demo world: the walkable surface plus
// the agents moving on it. In a real host these buffers would come from the
// asset pipeline.
type Scene struct {
	Vertices  [][3]float64  `yaml:"vertices"`
	Triangles [][3]uint32   `yaml:"triangles"`
	Agents    []AgentConfig `yaml:"agents"`
}

type AgentConfig struct {
	Position          [3]float64 `yaml:"position"`
	Speed             float64    `yaml:"speed"`
	MinTargetDistance float64    `yaml:"min_target_distance"`
	Destination       [3]float64 `yaml:"destination"`
	Query             string     `yaml:"query"`     // closest | accuracy
	PathMode          string     `yaml:"path_mode"` // fast | accuracy
}

// Load reads a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &s, nil
}

// BuildMesh constructs the scene's nav mesh.
func (s *Scene) BuildMesh() (*navmesh.NavMesh, error) {
	verts := make([]navmesh.NavVec3, len(s.Vertices))
	for i, v := range s.Vertices {
		verts[i] = common.V3(v[0], v[1], v[2])
	}
	tris := make([]navmesh.NavTriangle, len(s.Triangles))
	for i, t := range s.Triangles {
		tris[i] = navmesh.NavTriangle{First: t[0], Second: t[1], Third: t[2]}
	}
	return navmesh.NewNavMesh(verts, tris)
}

// QueryMode maps the YAML query string onto a NavQuery tier; accuracy is the
// default.
func (c *AgentConfig) QueryMode() navmesh.NavQuery {
	if c.Query == "closest" {
		return navmesh.NavQueryClosest
	}
	return navmesh.NavQueryAccuracy
}

// PathModeValue maps the YAML path mode string onto a NavPathMode tier;
// accuracy is the default.
func (c *AgentConfig) PathModeValue() navmesh.NavPathMode {
	if c.PathMode == "fast" {
		return navmesh.NavPathModeFast
	}
	return navmesh.NavPathModeAccuracy
}

// DefaultScene is the documented example surface: a ring-shaped room of 10
// vertices and 8 triangles around a blocked rectangle, with one agent walking
// from the lower-left half toward the upper-right corner.
func DefaultScene() *Scene {
	return &Scene{
		Vertices: [][3]float64{
			{50, 50, 0},   // 0
			{500, 50, 0},  // 1
			{500, 100, 0}, // 2
			{100, 100, 0}, // 3
			{100, 300, 0}, // 4
			{700, 300, 0}, // 5
			{700, 50, 0},  // 6
			{750, 50, 0},  // 7
			{750, 550, 0}, // 8
			{50, 550, 0},  // 9
		},
		Triangles: [][3]uint32{
			{1, 2, 3}, // 0
			{0, 1, 3}, // 1
			{0, 3, 4}, // 2
			{0, 4, 9}, // 3
			{4, 8, 9}, // 4
			{4, 5, 8}, // 5
			{5, 7, 8}, // 6
			{5, 6, 7}, // 7
		},
		Agents: []AgentConfig{{
			Position:          [3]float64{400, 450, 0},
			Speed:             100,
			MinTargetDistance: 1,
			Destination:       [3]float64{700, 500, 0},
			Query:             "accuracy",
			PathMode:          "accuracy",
		}},
	}
}
