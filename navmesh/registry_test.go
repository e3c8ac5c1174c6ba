package navmesh

import "testing"

func TestRegistry(t *testing.T) {
	r := NewNavMeshRegistry()
	m1 := exampleMesh(t)
	m2 := exampleMesh(t)

	id1 := r.Register(m1)
	id2 := r.Register(m2)
	assertTrue(t, id1 != 0 && id2 != 0, "ids are never the zero value")
	assertTrue(t, id1 != id2, "ids are distinct")

	got, ok := r.Get(id1)
	assertTrue(t, ok && got == m1, "lookup finds the registered mesh")
	got, ok = r.Get(id2)
	assertTrue(t, ok && got == m2, "lookup finds the second mesh")

	_, ok = r.Get(NavMeshID(999))
	assertTrue(t, !ok, "unknown id misses")

	ids := r.Meshes()
	assertTrue(t, len(ids) == 2 && ids[0] == id1 && ids[1] == id2, "sorted snapshot")

	assertTrue(t, r.Unregister(id1), "unregister removes")
	assertTrue(t, !r.Unregister(id1), "double unregister misses")
	_, ok = r.Get(id1)
	assertTrue(t, !ok, "removed mesh is gone")

	// Ids are not reused after removal.
	id3 := r.Register(m1)
	assertTrue(t, id3 != id1 && id3 != id2, "ids stay unique for the registry lifetime")
}
