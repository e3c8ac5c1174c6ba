package rw

import (
	"bytes"
	"encoding/binary"
	"math"
)

// ReaderWriter is a little-endian binary cursor over a byte buffer. Reads
// past the end of the buffer panic; callers are expected to validate sizes
// against Len before bulk reads.
type ReaderWriter struct {
	order   binary.ByteOrder
	dataBuf []byte
	rw      bytes.Buffer
}

func NewNavMeshDataBinWriter() *ReaderWriter {
	return &ReaderWriter{order: binary.LittleEndian, dataBuf: make([]byte, 8)}
}

func NewNavMeshDataBinReader(data []byte) *ReaderWriter {
	d := &ReaderWriter{order: binary.LittleEndian, dataBuf: make([]byte, 8)}
	d.rw.Write(data)
	return d
}

// Len returns the number of unread bytes.
func (w *ReaderWriter) Len() int {
	return w.rw.Len()
}

func (w *ReaderWriter) ReadUInt8() uint8 {
	res, err := w.rw.ReadByte()
	if err != nil {
		panic(err)
	}
	return res
}

func (w *ReaderWriter) ReadUInt16() uint16 {
	w.mustRead(2)
	return w.order.Uint16(w.dataBuf[:2])
}

func (w *ReaderWriter) ReadUInt32() uint32 {
	w.mustRead(4)
	return w.order.Uint32(w.dataBuf[:4])
}

func (w *ReaderWriter) ReadUInt64() uint64 {
	w.mustRead(8)
	return w.order.Uint64(w.dataBuf[:8])
}

func (w *ReaderWriter) ReadFloat32() float32 {
	return math.Float32frombits(w.ReadUInt32())
}

func (w *ReaderWriter) ReadFloat64() float64 {
	return math.Float64frombits(w.ReadUInt64())
}

func (w *ReaderWriter) ReadUInt32s(value []uint32) {
	for i := range value {
		value[i] = w.ReadUInt32()
	}
}

func (w *ReaderWriter) ReadFloat64s(value []float64) {
	for i := range value {
		value[i] = w.ReadFloat64()
	}
}

func (w *ReaderWriter) Skip(n int) {
	for i := 0; i < n; i++ {
		w.ReadUInt8()
	}
}

func (w *ReaderWriter) WriteUInt8(value uint8) {
	w.rw.WriteByte(value)
}

func (w *ReaderWriter) WriteUInt16(value uint16) {
	w.order.PutUint16(w.dataBuf[:2], value)
	w.rw.Write(w.dataBuf[:2])
}

func (w *ReaderWriter) WriteUInt32(value uint32) {
	w.order.PutUint32(w.dataBuf[:4], value)
	w.rw.Write(w.dataBuf[:4])
}

func (w *ReaderWriter) WriteUInt64(value uint64) {
	w.order.PutUint64(w.dataBuf[:8], value)
	w.rw.Write(w.dataBuf[:8])
}

func (w *ReaderWriter) WriteFloat32(value float32) {
	w.WriteUInt32(math.Float32bits(value))
}

func (w *ReaderWriter) WriteFloat64(value float64) {
	w.WriteUInt64(math.Float64bits(value))
}

func (w *ReaderWriter) WriteUInt32s(value []uint32) {
	for _, v := range value {
		w.WriteUInt32(v)
	}
}

func (w *ReaderWriter) WriteFloat64s(value []float64) {
	for _, v := range value {
		w.WriteFloat64(v)
	}
}

func (w *ReaderWriter) PadZero(n int) {
	for i := 0; i < n; i++ {
		w.WriteUInt8(0)
	}
}

func (w *ReaderWriter) GetWriteBytes() []byte {
	return w.rw.Bytes()
}

func (w *ReaderWriter) mustRead(n int) {
	got, err := w.rw.Read(w.dataBuf[:n])
	if err != nil || got != n {
		panic("rw: read past end of buffer")
	}
}
