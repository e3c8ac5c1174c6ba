package navmesh

import (
	"fmt"

	"github.com/gorustyt/gonav/common/rw"
)

const (
	// NavMeshMagic identifies a serialized mesh buffer ('G'|'N'|'A'|'V').
	NavMeshMagic = uint32('G')<<24 | uint32('N')<<16 | uint32('A')<<8 | uint32('V')
	// NavMeshVersion is the current binary format version.
	NavMeshVersion = 1
)

// NavMeshData is the serializable form of a mesh: the raw buffers without any
// derived state. Adjacency is rebuilt on load.
type NavMeshData struct {
	Verts []NavVec3
	Tris  []NavTriangle
}

// ToBin encodes the buffers as little-endian bytes behind a magic/version
// header.
func (d *NavMeshData) ToBin() []byte {
	w := rw.NewNavMeshDataBinWriter()
	w.WriteUInt32(NavMeshMagic)
	w.WriteUInt32(NavMeshVersion)
	w.WriteUInt32(uint32(len(d.Verts)))
	w.WriteUInt32(uint32(len(d.Tris)))
	for _, v := range d.Verts {
		w.WriteFloat64(v.X())
		w.WriteFloat64(v.Y())
		w.WriteFloat64(v.Z())
	}
	for _, t := range d.Tris {
		w.WriteUInt32(t.First)
		w.WriteUInt32(t.Second)
		w.WriteUInt32(t.Third)
	}
	return w.GetWriteBytes()
}

// FromBin decodes a buffer produced by ToBin. The header and the buffer size
// are validated before any bulk read.
func (d *NavMeshData) FromBin(data []byte) error {
	r := rw.NewNavMeshDataBinReader(data)
	if r.Len() < 16 {
		return fmt.Errorf("navmesh: truncated data: %d bytes", len(data))
	}
	if magic := r.ReadUInt32(); magic != NavMeshMagic {
		return fmt.Errorf("navmesh: bad magic %#x", magic)
	}
	if version := r.ReadUInt32(); version != NavMeshVersion {
		return fmt.Errorf("navmesh: unsupported version %d", version)
	}
	vertCount := int(r.ReadUInt32())
	triCount := int(r.ReadUInt32())
	if need := vertCount*3*8 + triCount*3*4; r.Len() < need {
		return fmt.Errorf("navmesh: truncated data: want %d payload bytes, have %d", need, r.Len())
	}
	d.Verts = make([]NavVec3, vertCount)
	for i := range d.Verts {
		d.Verts[i] = NavVec3{r.ReadFloat64(), r.ReadFloat64(), r.ReadFloat64()}
	}
	d.Tris = make([]NavTriangle, triCount)
	for i := range d.Tris {
		d.Tris[i] = NavTriangle{First: r.ReadUInt32(), Second: r.ReadUInt32(), Third: r.ReadUInt32()}
	}
	return nil
}

// Data returns a serializable copy of the mesh buffers.
func (m *NavMesh) Data() *NavMeshData {
	return &NavMeshData{
		Verts: append([]NavVec3(nil), m.verts...),
		Tris:  append([]NavTriangle(nil), m.tris...),
	}
}

// NewNavMeshFromBin decodes and rebuilds a mesh. The decoded buffers pass
// through the same validation as NewNavMesh; a tampered buffer fails instead
// of producing a partially usable mesh.
func NewNavMeshFromBin(data []byte) (*NavMesh, error) {
	var d NavMeshData
	if err := d.FromBin(data); err != nil {
		return nil, err
	}
	return NewNavMesh(d.Verts, d.Tris)
}
