package navmesh

import (
	"github.com/gorustyt/gonav/common"
)

// FindPath computes a path between two arbitrary points. Both endpoints are
// snapped onto the mesh with the given NavQuery tier, the triangle corridor
// between the owning triangles is searched over the adjacency graph, and the
// corridor is converted to points according to the NavPathMode tier.
//
// Fails with ErrPointOutsideMesh when snapping finds no triangle and with
// ErrNoPath when the owning triangles are not connected; no partial path is
// ever returned.
func (m *NavMesh) FindPath(start, end NavVec3, query NavQuery, mode NavPathMode) (NavPath, error) {
	sp, st, err := m.ClosestPoint(start, query)
	if err != nil {
		return nil, err
	}
	ep, et, err := m.ClosestPoint(end, query)
	if err != nil {
		return nil, err
	}

	if st == et {
		if common.Vequal(sp, ep) {
			return NavPath{sp}, nil
		}
		return NavPath{sp, ep}, nil
	}

	corridor, err := m.searchCorridor(int32(st), int32(et), sp, ep)
	if err != nil {
		return nil, err
	}
	if mode == NavPathModeAccuracy {
		return m.stringPull(corridor, sp, ep), nil
	}
	return m.midpointPath(corridor, sp, ep), nil
}

// searchCorridor runs an A* search over the triangle adjacency graph. Node
// positions are the midpoints of the crossed shared edges (the start node
// carries the exact start point), traversal cost is the Euclidean distance
// between node positions and the heuristic is the straight-line distance to
// the destination point.
func (m *NavMesh) searchCorridor(startTri, endTri int32, sp, ep NavVec3) ([]int32, error) {
	pool := newNavNodePool()
	open := newNavNodeQueue()

	startNode := pool.GetNode(startTri)
	startNode.Pos = sp
	startNode.Cost = 0
	startNode.Total = common.Vdist(sp, ep)
	startNode.Flags = navNodeOpen
	open.Offer(startNode)

	for !open.Empty() {
		bestNode := open.Poll()
		bestNode.Flags &= ^uint8(navNodeOpen)
		bestNode.Flags |= navNodeClosed

		if bestNode.Tri == endTri {
			return corridorToNode(pool, bestNode), nil
		}

		var parentTri = int32(-1)
		if parent := pool.GetNodeAtIdx(bestNode.Pidx); parent != nil {
			parentTri = parent.Tri
		}

		for _, neighbourTri := range m.neighbors[bestNode.Tri] {
			// Do not expand back to where we came from.
			if neighbourTri == parentTri {
				continue
			}

			neighbourNode := pool.GetNode(neighbourTri)

			// First visit, calculate the node position.
			if neighbourNode.Flags == 0 {
				neighbourNode.Pos = m.edgeMidPoint(bestNode.Tri, neighbourTri)
			}

			var cost, heuristic float64
			if neighbourTri == endTri {
				cost = bestNode.Cost +
					common.Vdist(bestNode.Pos, neighbourNode.Pos) +
					common.Vdist(neighbourNode.Pos, ep)
				heuristic = 0
			} else {
				cost = bestNode.Cost + common.Vdist(bestNode.Pos, neighbourNode.Pos)
				heuristic = common.Vdist(neighbourNode.Pos, ep)
			}
			total := cost + heuristic

			// Already considered and the new result is no better, skip.
			if neighbourNode.Flags&(navNodeOpen|navNodeClosed) != 0 && total >= neighbourNode.Total {
				continue
			}

			neighbourNode.Pidx = pool.GetNodeIdx(bestNode)
			neighbourNode.Cost = cost
			neighbourNode.Total = total
			neighbourNode.Flags &= ^uint8(navNodeClosed)

			if neighbourNode.Flags&navNodeOpen != 0 {
				open.Update(neighbourNode)
			} else {
				neighbourNode.Flags |= navNodeOpen
				open.Offer(neighbourNode)
			}
		}
	}

	return nil, ErrNoPath
}

func corridorToNode(pool *navNodePool, endNode *navNode) []int32 {
	var reversed []int32
	for node := endNode; node != nil; node = pool.GetNodeAtIdx(node.Pidx) {
		reversed = append(reversed, node.Tri)
	}
	corridor := make([]int32, len(reversed))
	for i, tri := range reversed {
		corridor[len(reversed)-1-i] = tri
	}
	return corridor
}

// edgeMidPoint returns the midpoint of the edge shared by the two triangles.
func (m *NavMesh) edgeMidPoint(from, to int32) NavVec3 {
	a, b, _ := m.sharedEdge(from, to)
	return a.Add(b).Mul(0.5)
}

// midpointPath emits the start point, the midpoint of every crossed edge and
// the end point.
func (m *NavMesh) midpointPath(corridor []int32, sp, ep NavVec3) NavPath {
	path := NavPath{sp}
	for i := 0; i+1 < len(corridor); i++ {
		mid := m.edgeMidPoint(corridor[i], corridor[i+1])
		if !common.Vequal(path[len(path)-1], mid) {
			path = append(path, mid)
		}
	}
	if !common.Vequal(path[len(path)-1], ep) {
		path = append(path, ep)
	}
	return path
}

// navPortal is a crossed edge ordered left/right as seen when walking the
// corridor.
type navPortal struct {
	left, right NavVec3
}

// portalBetween orders the shared edge of two adjacent triangles relative to
// the walk direction out of the first triangle's center.
func (m *NavMesh) portalBetween(from, to int32) navPortal {
	a, b, _ := m.sharedEdge(from, to)
	if common.TriArea2D(m.centers[from], a, b) <= 0 {
		return navPortal{left: b, right: a}
	}
	return navPortal{left: a, right: b}
}

// stringPull tightens the corridor with the funnel algorithm, producing the
// geometrically shortest path inside the crossed triangle sequence. Funnel
// predicates work on the xy projection; corner points keep their original z.
func (m *NavMesh) stringPull(corridor []int32, sp, ep NavVec3) NavPath {
	portals := make([]navPortal, 0, len(corridor))
	for i := 0; i+1 < len(corridor); i++ {
		portals = append(portals, m.portalBetween(corridor[i], corridor[i+1]))
	}
	portals = append(portals, navPortal{left: ep, right: ep})

	// Portals the start point already lies on constrain nothing; starting the
	// funnel on one of them degenerates the area predicates.
	trim := 0
	for trim < len(portals)-1 {
		if _, d2 := common.DistPtSegSqr(sp, portals[trim].left, portals[trim].right); d2 >= common.Sqr(0.001) {
			break
		}
		trim++
	}
	portals = portals[trim:]

	path := NavPath{sp}
	portalApex, portalLeft, portalRight := sp, portals[0].left, portals[0].right
	apexIndex, leftIndex, rightIndex := 0, 0, 0

	for i := 1; i < len(portals); i++ {
		left, right := portals[i].left, portals[i].right

		// Right vertex.
		if common.TriArea2D(portalApex, portalRight, right) <= 0 {
			if common.Vequal(portalApex, portalRight) || common.TriArea2D(portalApex, portalLeft, right) > 0 {
				// Tighten the funnel.
				portalRight = right
				rightIndex = i
			} else {
				// Right over left, insert left to path and restart scan from
				// the left portal.
				if !common.Vequal(path[len(path)-1], portalLeft) {
					path = append(path, portalLeft)
				}
				portalApex = portalLeft
				apexIndex = leftIndex
				portalLeft, portalRight = portalApex, portalApex
				leftIndex, rightIndex = apexIndex, apexIndex
				i = apexIndex
				continue
			}
		}

		// Left vertex.
		if common.TriArea2D(portalApex, portalLeft, left) >= 0 {
			if common.Vequal(portalApex, portalLeft) || common.TriArea2D(portalApex, portalRight, left) < 0 {
				// Tighten the funnel.
				portalLeft = left
				leftIndex = i
			} else {
				// Left over right, insert right to path and restart scan from
				// the right portal.
				if !common.Vequal(path[len(path)-1], portalRight) {
					path = append(path, portalRight)
				}
				portalApex = portalRight
				apexIndex = rightIndex
				portalLeft, portalRight = portalApex, portalApex
				leftIndex, rightIndex = apexIndex, apexIndex
				i = apexIndex
				continue
			}
		}
	}

	if !common.Vequal(path[len(path)-1], ep) {
		path = append(path, ep)
	}
	return path
}
