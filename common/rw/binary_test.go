package rw

import "testing"

func TestReaderWriter(t *testing.T) {
	w := NewNavMeshDataBinWriter()
	w.WriteUInt32(0xCAFEBABE)
	w.WriteFloat64(12.5)
	w.PadZero(3)
	w.WriteUInt8(7)

	r := NewNavMeshDataBinReader(w.GetWriteBytes())
	if got := r.ReadUInt32(); got != 0xCAFEBABE {
		t.Errorf("uint32: got %#x", got)
	}
	if got := r.ReadFloat64(); got != 12.5 {
		t.Errorf("float64: got %v", got)
	}
	r.Skip(3)
	if got := r.ReadUInt8(); got != 7 {
		t.Errorf("uint8 after pad: got %d", got)
	}
	if r.Len() != 0 {
		t.Errorf("leftover bytes: %d", r.Len())
	}
}

func TestReadPastEndPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on short read")
		}
	}()
	r := NewNavMeshDataBinReader([]byte{1, 2})
	r.ReadUInt32()
}
