package navmesh

import (
	"math"

	"github.com/gorustyt/gonav/common"
)

// NavQuery selects the quality tier used to snap an arbitrary point onto the
// mesh.
type NavQuery int

const (
	// NavQueryClosest projects onto the plane of a nearby triangle. Cheap;
	// the result may fall outside the triangle bounds for far-away points.
	NavQueryClosest NavQuery = iota
	// NavQueryAccuracy clamps against every triangle and returns the true
	// globally closest in-mesh point.
	NavQueryAccuracy
)

// NavPathMode selects the quality tier of the produced path shape.
type NavPathMode int

const (
	// NavPathModeFast emits the midpoint of each crossed edge.
	NavPathModeFast NavPathMode = iota
	// NavPathModeAccuracy string-pulls the corridor into the geometrically
	// shortest path inside it.
	NavPathModeAccuracy
)

// ClosestPoint snaps p onto the mesh and returns the snapped point together
// with the owning triangle index. Fails with ErrPointOutsideMesh when the
// mesh has no triangles.
func (m *NavMesh) ClosestPoint(p NavVec3, query NavQuery) (NavVec3, int, error) {
	if len(m.tris) == 0 {
		return NavVec3{}, -1, ErrPointOutsideMesh
	}
	if query == NavQueryClosest {
		pt, tri := m.closestPointPlanes(p)
		return pt, tri, nil
	}
	pt, tri := m.closestPointClamped(p)
	return pt, tri, nil
}

// closestPointPlanes picks the plane-nearest triangle among those touching
// the vertex nearest to p and projects p onto its plane. The projection is
// not clamped to the triangle bounds.
func (m *NavMesh) closestPointPlanes(p NavVec3) (NavVec3, int) {
	nearest := uint32(0)
	nearestD2 := math.MaxFloat64
	for i, v := range m.verts {
		if d2 := common.VdistSqr(p, v); d2 < nearestD2 {
			nearestD2 = d2
			nearest = uint32(i)
		}
	}
	// A member triangle that contains the projection wins outright.
	for _, ti := range m.vertTris[nearest] {
		a, b, c := m.triVerts(ti)
		if common.PointInTriangle(p, a, b, c) {
			return common.ProjectPtPlane(p, m.centers[ti], m.normals[ti]), int(ti)
		}
	}
	best := int32(-1)
	bestDist := math.MaxFloat64
	for _, ti := range m.vertTris[nearest] {
		if d := common.Abs(common.DistPtPlane(p, m.centers[ti], m.normals[ti])); d < bestDist {
			bestDist = d
			best = ti
		}
	}
	if best < 0 {
		// Isolated vertex; fall back to the exhaustive scan.
		return m.closestPointClamped(p)
	}
	return common.ProjectPtPlane(p, m.centers[best], m.normals[best]), int(best)
}

// closestPointClamped scans every triangle with an exact clamped
// closest-point test.
func (m *NavMesh) closestPointClamped(p NavVec3) (NavVec3, int) {
	best := 0
	bestPt := NavVec3{}
	bestD2 := math.MaxFloat64
	for i := range m.tris {
		a, b, c := m.triVerts(int32(i))
		pt := common.ClosestPtPointTriangle(p, a, b, c)
		if d2 := common.VdistSqr(p, pt); d2 < bestD2 {
			bestD2 = d2
			bestPt = pt
			best = i
		}
	}
	return bestPt, best
}

// FindTriangle returns the triangle containing p, or false when p lies inside
// no triangle. NavQueryClosest returns the first plausible hit;
// NavQueryAccuracy verifies containment across all candidates and picks the
// one whose plane is nearest to p.
func (m *NavMesh) FindTriangle(p NavVec3, query NavQuery) (int, bool) {
	if query == NavQueryClosest {
		for i := range m.tris {
			a, b, c := m.triVerts(int32(i))
			if common.PointInTriangle(p, a, b, c) {
				return i, true
			}
		}
		return -1, false
	}
	best := -1
	bestDist := math.MaxFloat64
	for i := range m.tris {
		a, b, c := m.triVerts(int32(i))
		if !common.PointInTriangle(p, a, b, c) {
			continue
		}
		if d := common.Abs(common.DistPtPlane(p, m.centers[i], m.normals[i])); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best, best >= 0
}
