package navmesh

import (
	"errors"
	"testing"

	"github.com/gorustyt/gonav/common"
)

func TestNavMeshDataRoundTrip(t *testing.T) {
	m := exampleMesh(t)
	data := m.Data().ToBin()

	decoded, err := NewNavMeshFromBin(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	assertTrue(t, decoded.TriangleCount() == m.TriangleCount(), "triangle count survives")
	assertTrue(t, len(decoded.Vertices()) == len(m.Vertices()), "vertex count survives")
	for i, v := range m.Vertices() {
		assertTrue(t, common.Vequal(decoded.Vertices()[i], v), "vertex values survive")
	}
	// Connectivity is re-derived, not stored; it must come back identical.
	for i := 0; i < m.TriangleCount(); i++ {
		assertTrue(t, len(decoded.Neighbors(i)) == len(m.Neighbors(i)), "adjacency re-derived")
	}

	// The decoded mesh answers queries like the original.
	path, err := decoded.FindPath(common.V2(60, 60), common.V2(700, 500), NavQueryAccuracy, NavPathModeAccuracy)
	if err != nil {
		t.Fatal(err)
	}
	assertTrue(t, common.Vequal(path[len(path)-1], common.V2(700, 500)), "decoded mesh pathing")
}

func TestNavMeshFromBinBadMagic(t *testing.T) {
	data := exampleMesh(t).Data().ToBin()
	data[3] ^= 0xFF
	_, err := NewNavMeshFromBin(data)
	assertTrue(t, err != nil, "corrupted magic must fail")
}

func TestNavMeshFromBinTruncated(t *testing.T) {
	data := exampleMesh(t).Data().ToBin()
	for _, n := range []int{0, 10, 16, len(data) - 1} {
		_, err := NewNavMeshFromBin(data[:n])
		assertTrue(t, err != nil, "truncated buffer must fail")
	}
}

func TestNavMeshFromBinRevalidates(t *testing.T) {
	// A buffer with an out-of-range triangle index decodes but must not
	// produce a mesh.
	bad := &NavMeshData{
		Verts: []NavVec3{common.V2(0, 0), common.V2(1, 0), common.V2(0, 1)},
		Tris:  []NavTriangle{{0, 1, 9}},
	}
	_, err := NewNavMeshFromBin(bad.ToBin())
	assertTrue(t, errors.Is(err, ErrInvalidTriangle), "tampered buffer fails validation")
}
