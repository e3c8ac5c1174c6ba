package agent

import (
	"sync/atomic"

	"github.com/gorustyt/gonav/navmesh"
)

type NavAgentID uint64

var lastAgentID atomic.Uint64

// NavAgentState describes where an agent is in its planning lifecycle.
type NavAgentState int

const (
	// NavAgentIdle: no path and no pending destination.
	NavAgentIdle NavAgentState = iota
	// NavAgentSeeking: destination set, path computation pending.
	NavAgentSeeking
	// NavAgentFollowing: a valid path is held and being consumed.
	NavAgentFollowing
)

const (
	DefaultSpeed             = 10.0
	DefaultMinTargetDistance = 1.0
)

type destination struct {
	target NavAgentTarget
	query  navmesh.NavQuery
	mode   navmesh.NavPathMode
	mesh   navmesh.NavMeshID
}

// NavAgent is per-entity navigation state. The owning driver mutates it every
// tick; nothing else does, so independent agents can be updated concurrently.
type NavAgent struct {
	// Position is owned by the agent and advanced by its driver.
	Position navmesh.NavVec3
	// Direction is the unit heading of the last movement.
	Direction navmesh.NavVec3
	// Speed is the maximum travel distance per second. Never negative.
	Speed float64
	// MinTargetDistance is the look-ahead floor used when picking the next
	// target point on the path.
	MinTargetDistance float64
	// Driver advances the agent along its path each tick.
	Driver NavDriver

	id        NavAgentID
	path      navmesh.NavPath
	dest      *destination
	dirtyPath bool
}

// NewNavAgent creates an idle agent at the given position with default speed
// and look-ahead.
func NewNavAgent(position navmesh.NavVec3) *NavAgent {
	return &NavAgent{
		Position:          position,
		Direction:         navmesh.NavVec3{1, 0, 0},
		Speed:             DefaultSpeed,
		MinTargetDistance: DefaultMinTargetDistance,
		id:                NavAgentID(lastAgentID.Add(1)),
	}
}

func (a *NavAgent) ID() NavAgentID {
	return a.id
}

// Path returns the currently held path, nil when there is none. Callers must
// not mutate it.
func (a *NavAgent) Path() navmesh.NavPath {
	return a.path
}

func (a *NavAgent) State() NavAgentState {
	switch {
	case a.dirtyPath:
		return NavAgentSeeking
	case len(a.path) > 0:
		return NavAgentFollowing
	default:
		return NavAgentIdle
	}
}

// SetDestination queues a path computation toward the target on the given
// mesh. Any previously held path keeps driving the agent until the next
// MaintainAgents pass replaces it wholesale.
func (a *NavAgent) SetDestination(target NavAgentTarget, query navmesh.NavQuery, mode navmesh.NavPathMode, mesh navmesh.NavMeshID) {
	a.dest = &destination{target: target, query: query, mode: mode, mesh: mesh}
	a.dirtyPath = true
}

// RecalculatePath queues a recomputation of the path toward the current
// destination, if any. Useful when following a moving target.
func (a *NavAgent) RecalculatePath() {
	if a.dest != nil {
		a.dirtyPath = true
	}
}

// ClearPath drops the held path and the destination, returning the agent to
// the idle state.
func (a *NavAgent) ClearPath() {
	a.path = nil
	a.dest = nil
	a.dirtyPath = false
}

// Destination returns the current destination target, if one is set.
func (a *NavAgent) Destination() (NavAgentTarget, bool) {
	if a.dest == nil {
		return nil, false
	}
	return a.dest.target, true
}
