package navmesh

import (
	"fmt"

	"github.com/gorustyt/gonav/common"
)

type NavVec3 = common.Vec3

// NavTriangle references three vertices of the mesh vertex buffer, in
// counterclockwise or clockwise order; winding is not significant.
type NavTriangle struct {
	First, Second, Third uint32
}

// NavPath is an ordered point sequence from start to destination. Consecutive
// points are connected by straight segments inside the walkable surface.
type NavPath []NavVec3

// Length returns the total polyline length of the path.
func (p NavPath) Length() float64 {
	res := 0.0
	for i := 0; i+1 < len(p); i++ {
		res += common.Vdist(p[i], p[i+1])
	}
	return res
}

// navEdge is an unordered vertex index pair keying the edge adjacency map.
type navEdge [2]uint32

func makeNavEdge(a, b uint32) navEdge {
	if a > b {
		a, b = b, a
	}
	return navEdge{a, b}
}

// NavMesh owns an immutable vertex and triangle buffer plus the connectivity
// derived from them at construction. It is safe for unsynchronized concurrent
// reads once built.
type NavMesh struct {
	verts []NavVec3
	tris  []NavTriangle

	centers   []NavVec3   // triangle centroids
	normals   []NavVec3   // unit face normals
	neighbors [][]int32   // per triangle, edge-sharing triangles (up to 3)
	edges     map[navEdge][]int32
	vertTris  [][]int32 // vertex index -> triangles touching it
}

// NewNavMesh validates the buffers and derives the adjacency graph and the
// vertex membership index. Construction is atomic: any out-of-range index,
// repeated index or degenerate triangle fails with ErrInvalidTriangle and no
// mesh is produced.
//
// Edges shared by more than two triangles (non-manifold input) keep the first
// two owners encountered; extra owners get no adjacency through that edge.
func NewNavMesh(vertices []NavVec3, triangles []NavTriangle) (*NavMesh, error) {
	// Own copies of the buffers; the mesh must stay immutable no matter what
	// the caller later does with its slices.
	m := &NavMesh{
		verts:     append([]NavVec3(nil), vertices...),
		tris:      append([]NavTriangle(nil), triangles...),
		centers:   make([]NavVec3, len(triangles)),
		normals:   make([]NavVec3, len(triangles)),
		neighbors: make([][]int32, len(triangles)),
		edges:     make(map[navEdge][]int32, len(triangles)*3/2),
		vertTris:  make([][]int32, len(vertices)),
	}
	for i, tri := range triangles {
		idx := [3]uint32{tri.First, tri.Second, tri.Third}
		for _, v := range idx {
			if int(v) >= len(vertices) {
				return nil, fmt.Errorf("%w: triangle %d references vertex %d of %d",
					ErrInvalidTriangle, i, v, len(vertices))
			}
		}
		if idx[0] == idx[1] || idx[1] == idx[2] || idx[0] == idx[2] {
			return nil, fmt.Errorf("%w: triangle %d repeats a vertex index", ErrInvalidTriangle, i)
		}
		a, b, c := vertices[idx[0]], vertices[idx[1]], vertices[idx[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Len() <= common.Epsilon {
			return nil, fmt.Errorf("%w: triangle %d is degenerate", ErrInvalidTriangle, i)
		}
		m.centers[i] = a.Add(b).Add(c).Mul(1.0 / 3.0)
		m.normals[i] = n.Normalize()
	}

	for i, tri := range triangles {
		ti := int32(i)
		for _, e := range [3]navEdge{
			makeNavEdge(tri.First, tri.Second),
			makeNavEdge(tri.Second, tri.Third),
			makeNavEdge(tri.Third, tri.First),
		} {
			if owners := m.edges[e]; len(owners) < 2 {
				m.edges[e] = append(owners, ti)
			}
		}
		m.vertTris[tri.First] = append(m.vertTris[tri.First], ti)
		m.vertTris[tri.Second] = append(m.vertTris[tri.Second], ti)
		m.vertTris[tri.Third] = append(m.vertTris[tri.Third], ti)
	}
	for i, tri := range triangles {
		ti := int32(i)
		for _, e := range [3]navEdge{
			makeNavEdge(tri.First, tri.Second),
			makeNavEdge(tri.Second, tri.Third),
			makeNavEdge(tri.Third, tri.First),
		} {
			for _, owner := range m.edges[e] {
				if owner != ti {
					m.neighbors[i] = append(m.neighbors[i], owner)
				}
			}
		}
	}
	return m, nil
}

func (m *NavMesh) Vertices() []NavVec3 {
	return m.verts
}

func (m *NavMesh) Triangles() []NavTriangle {
	return m.tris
}

func (m *NavMesh) TriangleCount() int {
	return len(m.tris)
}

// Center returns the centroid of triangle i.
func (m *NavMesh) Center(i int) NavVec3 {
	return m.centers[i]
}

// Normal returns the unit face normal of triangle i.
func (m *NavMesh) Normal(i int) NavVec3 {
	return m.normals[i]
}

// Neighbors returns the triangles sharing an edge with triangle i.
func (m *NavMesh) Neighbors(i int) []int32 {
	return m.neighbors[i]
}

// TrianglesAt returns the triangles touching the given vertex.
func (m *NavMesh) TrianglesAt(vertex uint32) []int32 {
	return m.vertTris[vertex]
}

// triVerts returns the three corner positions of triangle i.
func (m *NavMesh) triVerts(i int32) (a, b, c NavVec3) {
	tri := m.tris[i]
	return m.verts[tri.First], m.verts[tri.Second], m.verts[tri.Third]
}

// sharedEdge returns the two vertices of the edge shared by triangles a and
// b, or false when the triangles are not adjacent.
func (m *NavMesh) sharedEdge(a, b int32) (NavVec3, NavVec3, bool) {
	ta, tb := m.tris[a], m.tris[b]
	ia := [3]uint32{ta.First, ta.Second, ta.Third}
	ib := [3]uint32{tb.First, tb.Second, tb.Third}
	var shared []uint32
	for _, va := range ia {
		for _, vb := range ib {
			if va == vb {
				shared = append(shared, va)
			}
		}
	}
	if len(shared) != 2 {
		return NavVec3{}, NavVec3{}, false
	}
	return m.verts[shared[0]], m.verts[shared[1]], true
}
