package agent

import (
	"math"

	"github.com/gorustyt/gonav/common"
	"github.com/gorustyt/gonav/navmesh"
)

// NavDriver turns elapsed time plus the agent's path into a new position and
// heading. Implementations report arrival; the driver, not the advance query,
// clears a consumed path.
type NavDriver interface {
	Drive(a *NavAgent, dt float64) bool
}

// PathAdvance walks the path polyline. The agent position is projected onto
// the nearest segment (earliest segment wins on ties), then advanced by
// exactly maxDistance across segment boundaries. It returns the point reached
// and the unconsumed distance left when the path ended before the budget did;
// a positive leftover signals arrival.
//
// Returns false for an empty path, a non-positive budget, or a position
// already at the final point - the expected terminal condition, not a fault.
// The path is never mutated.
func PathAdvance(path navmesh.NavPath, position navmesh.NavVec3, maxDistance float64) (navmesh.NavVec3, float64, bool) {
	if len(path) == 0 || maxDistance <= 0 {
		return navmesh.NavVec3{}, 0, false
	}
	if len(path) == 1 {
		if common.Vequal(position, path[0]) {
			return navmesh.NavVec3{}, 0, false
		}
		return path[0], maxDistance, true
	}

	bestSeg := 0
	bestT := 0.0
	bestD2 := math.MaxFloat64
	for i := 0; i+1 < len(path); i++ {
		t, d2 := common.DistPtSegSqr(position, path[i], path[i+1])
		if d2 < bestD2 {
			bestD2 = d2
			bestSeg = i
			bestT = t
		}
	}

	cur := common.Lerp(path[bestSeg], path[bestSeg+1], bestT)
	last := path[len(path)-1]
	if bestSeg == len(path)-2 && common.Vequal(cur, last) {
		return navmesh.NavVec3{}, 0, false
	}

	remaining := maxDistance
	for seg := bestSeg; ; seg++ {
		segEnd := path[seg+1]
		d := common.Vdist(cur, segEnd)
		if remaining < d {
			return cur.Add(segEnd.Sub(cur).Mul(remaining / d)), 0, true
		}
		remaining -= d
		cur = segEnd
		if seg+2 >= len(path) {
			// Path exhausted before the budget.
			return cur, remaining, true
		}
	}
}

// SimpleNavDriver performs straight movement toward a look-ahead point on the
// path, the look-ahead being the larger of the agent's minimum target
// distance and the distance covered this tick.
type SimpleNavDriver struct{}

func (SimpleNavDriver) Drive(a *NavAgent, dt float64) bool {
	path := a.Path()
	if len(path) == 0 || dt <= 0 || a.Speed <= 0 {
		return false
	}
	lookAhead := math.Max(a.MinTargetDistance, a.Speed*dt)
	target, _, ok := PathAdvance(path, a.Position, lookAhead)
	if !ok {
		// Path consumed.
		a.ClearPath()
		return true
	}

	diff := target.Sub(a.Position)
	dist := diff.Len()
	if dist > common.Epsilon {
		dir := diff.Mul(1 / dist)
		a.Position = a.Position.Add(dir.Mul(math.Min(a.Speed*dt, dist)))
		a.Direction = dir
	}
	if common.Vequal(a.Position, path[len(path)-1]) {
		a.ClearPath()
		return true
	}
	return false
}

// DriveAgents runs one movement tick for every agent that has a driver.
func DriveAgents(dt float64, agents []*NavAgent) {
	for _, a := range agents {
		if a.Driver != nil {
			a.Driver.Drive(a, dt)
		}
	}
}
