package agent

import "github.com/gorustyt/gonav/navmesh"

// NavAgentTarget resolves a destination descriptor into a concrete point.
// Resolution happens right before each path computation, so the planner only
// ever sees a snapshot point and never a live reference to another agent.
type NavAgentTarget interface {
	Resolve() (navmesh.NavVec3, bool)
}

// PointTarget is a fixed destination point.
type PointTarget navmesh.NavVec3

func (t PointTarget) Resolve() (navmesh.NavVec3, bool) {
	return navmesh.NavVec3(t), true
}

// AgentTarget follows another agent. Each resolution snapshots that agent's
// position at that moment; re-planning cadence against the moving target is
// the driver host's policy.
type AgentTarget struct {
	Agent *NavAgent
}

func (t AgentTarget) Resolve() (navmesh.NavVec3, bool) {
	if t.Agent == nil {
		return navmesh.NavVec3{}, false
	}
	return t.Agent.Position, true
}
