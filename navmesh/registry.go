package navmesh

import (
	"sort"
	"sync"
)

// NavMeshID identifies a registered mesh for the registry's lifetime. The
// zero value never names a mesh.
type NavMeshID uint32

// NavMeshRegistry maps identifiers to meshes. The host owns the registry and
// passes it into whatever needs mesh lookup; registration is rare and
// synchronized against concurrent lookups with a single-writer/many-reader
// lock.
type NavMeshRegistry struct {
	mu     sync.RWMutex
	meshes map[NavMeshID]*NavMesh
	nextID NavMeshID
}

func NewNavMeshRegistry() *NavMeshRegistry {
	return &NavMeshRegistry{meshes: make(map[NavMeshID]*NavMesh)}
}

// Register stores the mesh and returns its identifier. Identifiers are never
// reused within one registry.
func (r *NavMeshRegistry) Register(m *NavMesh) NavMeshID {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.meshes[r.nextID] = m
	return r.nextID
}

// Get returns the mesh registered under id, if any.
func (r *NavMeshRegistry) Get(id NavMeshID) (*NavMesh, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.meshes[id]
	return m, ok
}

// Unregister removes the mesh registered under id and reports whether it was
// present.
func (r *NavMeshRegistry) Unregister(id NavMeshID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.meshes[id]
	delete(r.meshes, id)
	return ok
}

// Meshes returns a sorted snapshot of the registered identifiers.
func (r *NavMeshRegistry) Meshes() []NavMeshID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]NavMeshID, 0, len(r.meshes))
	for id := range r.meshes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
