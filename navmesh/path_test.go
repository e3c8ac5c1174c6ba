package navmesh

import (
	"errors"
	"testing"

	"github.com/gorustyt/gonav/common"
)

func pointOnMesh(m *NavMesh, p NavVec3) bool {
	for i := range m.tris {
		a, b, c := m.triVerts(int32(i))
		if common.PointInTriangle(p, a, b, c) {
			return true
		}
	}
	return false
}

func TestFindPathSamePoint(t *testing.T) {
	m := exampleMesh(t)
	p := common.V2(300, 85)
	path, err := m.FindPath(p, p, NavQueryAccuracy, NavPathModeAccuracy)
	if err != nil {
		t.Fatal(err)
	}
	assertTrue(t, len(path) == 1, "same point gives a single-point path")
	assertTrue(t, common.Vequal(path[0], p), "single point is the start")
}

func TestFindPathSameTriangle(t *testing.T) {
	m := exampleMesh(t)
	start := common.V2(300, 85)
	end := common.V2(350, 80)
	for _, mode := range []NavPathMode{NavPathModeFast, NavPathModeAccuracy} {
		path, err := m.FindPath(start, end, NavQueryAccuracy, mode)
		if err != nil {
			t.Fatal(err)
		}
		assertTrue(t, len(path) == 2, "same triangle gives a direct path")
		assertTrue(t, common.Vequal(path[0], start) && common.Vequal(path[1], end), "direct path endpoints")
	}
}

func TestFindPathAccuracyScenario(t *testing.T) {
	m := exampleMesh(t)
	start := common.V2(60, 60)
	end := common.V2(700, 500)

	path, err := m.FindPath(start, end, NavQueryAccuracy, NavPathModeAccuracy)
	if err != nil {
		t.Fatal(err)
	}
	assertTrue(t, len(path) >= 2, "path reaches across the ring")
	assertTrue(t, common.Vequal(path[0], start), "first point is the start")
	assertTrue(t, common.Vequal(path[len(path)-1], end), "last point is the destination")

	// The taut route turns exactly at the blocked rectangle's corner.
	assertTrue(t, len(path) == 3, "funnel keeps only the blocking corner")
	assertTrue(t, common.Vequal(path[1], common.V2(100, 300)), "corner at (100,300)")

	// No sampled point along the path may leave the walkable union.
	for i := 0; i+1 < len(path); i++ {
		for step := 0; step <= 20; step++ {
			p := common.Lerp(path[i], path[i+1], float64(step)/20)
			assertTrue(t, pointOnMesh(m, p), "path stays on the mesh")
		}
	}
}

func TestFindPathFastNotShorterThanAccuracy(t *testing.T) {
	m := exampleMesh(t)
	start := common.V2(60, 60)
	end := common.V2(700, 500)

	fast, err := m.FindPath(start, end, NavQueryAccuracy, NavPathModeFast)
	if err != nil {
		t.Fatal(err)
	}
	accurate, err := m.FindPath(start, end, NavQueryAccuracy, NavPathModeAccuracy)
	if err != nil {
		t.Fatal(err)
	}
	assertTrue(t, common.Vequal(fast[0], start) && common.Vequal(fast[len(fast)-1], end),
		"fast path endpoints")
	assertTrue(t, accurate.Length() <= fast.Length()+common.Epsilon,
		"corridor tightening never lengthens the route")
}

func TestFindPathDeterministic(t *testing.T) {
	m := exampleMesh(t)
	start := common.V2(60, 60)
	end := common.V2(700, 500)
	first, err := m.FindPath(start, end, NavQueryAccuracy, NavPathModeFast)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := m.FindPath(start, end, NavQueryAccuracy, NavPathModeFast)
		if err != nil {
			t.Fatal(err)
		}
		assertTrue(t, len(again) == len(first), "same input gives same output")
		for j := range again {
			assertTrue(t, common.Vequal(again[j], first[j]), "same input gives same points")
		}
	}
}

func TestFindPathDisjointIslands(t *testing.T) {
	verts := []NavVec3{
		common.V2(0, 0), common.V2(10, 0), common.V2(0, 10),
		common.V2(100, 100), common.V2(110, 100), common.V2(100, 110),
	}
	tris := []NavTriangle{{0, 1, 2}, {3, 4, 5}}
	m, err := NewNavMesh(verts, tris)
	if err != nil {
		t.Fatal(err)
	}
	_, err = m.FindPath(common.V2(2, 2), common.V2(102, 102), NavQueryAccuracy, NavPathModeAccuracy)
	assertTrue(t, errors.Is(err, ErrNoPath), "islands are unreachable")
}

func TestFindPathEmptyMesh(t *testing.T) {
	m, err := NewNavMesh(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = m.FindPath(common.V2(0, 0), common.V2(1, 1), NavQueryAccuracy, NavPathModeAccuracy)
	assertTrue(t, errors.Is(err, ErrPointOutsideMesh), "empty mesh cannot be pathed")
}

func TestFindPathFastCrossesEdgeMidpoints(t *testing.T) {
	m := exampleMesh(t)
	path, err := m.FindPath(common.V2(60, 60), common.V2(700, 500), NavQueryAccuracy, NavPathModeFast)
	if err != nil {
		t.Fatal(err)
	}
	// Corridor 1-2-3-4-5 crosses four shared edges.
	assertTrue(t, len(path) == 6, "start, four midpoints, end")
	mids := []NavVec3{
		common.V2(75, 75),   // edge 0-3
		common.V2(75, 175),  // edge 0-4
		common.V2(75, 425),  // edge 4-9
		common.V2(425, 425), // edge 4-8
	}
	for i, mid := range mids {
		assertTrue(t, common.Vequal(path[i+1], mid), "crossed edge midpoint")
	}
}
