package agent

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gorustyt/gonav/navmesh"
)

var (
	// ErrUnknownMesh reports a destination referencing a mesh id the registry
	// does not hold.
	ErrUnknownMesh = errors.New("agent: unknown nav mesh")
	// ErrUnresolvedTarget reports a destination target that produced no
	// point.
	ErrUnresolvedTarget = errors.New("agent: destination target did not resolve")
)

// AgentError is a per-agent path computation failure.
type AgentError struct {
	ID  NavAgentID
	Err error
}

func (e AgentError) Error() string {
	return fmt.Sprintf("agent %d: %v", e.ID, e.Err)
}

func (e AgentError) Unwrap() error {
	return e.Err
}

// MaintainAgents recomputes the path of every agent with a pending
// destination. Computations run concurrently across agents: meshes are
// immutable, the registry is only read and each agent's state is touched by
// its own goroutine alone.
//
// A failed computation leaves its agent idle with no path and no destination,
// and is reported in the result instead of being swallowed.
func MaintainAgents(reg *navmesh.NavMeshRegistry, agents []*NavAgent) []AgentError {
	results := make([]*AgentError, len(agents))
	var wg sync.WaitGroup
	for i, a := range agents {
		if !a.dirtyPath {
			continue
		}
		wg.Add(1)
		go func(i int, a *NavAgent) {
			defer wg.Done()
			if err := maintainOne(reg, a); err != nil {
				results[i] = &AgentError{ID: a.id, Err: err}
			}
		}(i, a)
	}
	wg.Wait()

	var errs []AgentError
	for _, res := range results {
		if res != nil {
			errs = append(errs, *res)
		}
	}
	return errs
}

func maintainOne(reg *navmesh.NavMeshRegistry, a *NavAgent) error {
	dest := a.dest
	a.dirtyPath = false

	point, ok := dest.target.Resolve()
	if !ok {
		a.ClearPath()
		return ErrUnresolvedTarget
	}
	mesh, ok := reg.Get(dest.mesh)
	if !ok {
		a.ClearPath()
		return fmt.Errorf("%w: id %d", ErrUnknownMesh, dest.mesh)
	}
	path, err := mesh.FindPath(a.Position, point, dest.query, dest.mode)
	if err != nil {
		a.ClearPath()
		return err
	}
	a.path = path
	return nil
}
