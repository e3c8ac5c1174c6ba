package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gorustyt/gonav/navmesh"
)

func TestDefaultSceneBuilds(t *testing.T) {
	s := DefaultScene()
	m, err := s.BuildMesh()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if m.TriangleCount() != 8 {
		t.Errorf("triangle count = %d, want 8", m.TriangleCount())
	}
	if len(s.Agents) != 1 {
		t.Fatalf("agent count = %d, want 1", len(s.Agents))
	}
}

func TestLoadScene(t *testing.T) {
	raw := `
vertices:
  - [0, 0, 0]
  - [10, 0, 0]
  - [0, 10, 0]
triangles:
  - [0, 1, 2]
agents:
  - position: [1, 1, 0]
    speed: 5
    min_target_distance: 0.5
    destination: [8, 1, 0]
    query: closest
    path_mode: fast
`
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := s.BuildMesh(); err != nil {
		t.Fatalf("build: %v", err)
	}
	a := s.Agents[0]
	if a.Speed != 5 || a.MinTargetDistance != 0.5 {
		t.Errorf("agent tuning not parsed: %+v", a)
	}
	if a.QueryMode() != navmesh.NavQueryClosest {
		t.Errorf("query mode = %v, want closest", a.QueryMode())
	}
	if a.PathModeValue() != navmesh.NavPathModeFast {
		t.Errorf("path mode = %v, want fast", a.PathModeValue())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file must fail")
	}
}

func TestModeDefaults(t *testing.T) {
	var c AgentConfig
	if c.QueryMode() != navmesh.NavQueryAccuracy {
		t.Error("empty query string defaults to accuracy")
	}
	if c.PathModeValue() != navmesh.NavPathModeAccuracy {
		t.Error("empty path mode string defaults to accuracy")
	}
}
