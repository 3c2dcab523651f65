package stl

import (
	"encoding/binary"
	"math"
)

// reader walks a byte slice of little-endian fields. Out-of-range reads
// clamp to the end and return zeros; Read validates the total length up
// front, so that never triggers on a well-formed file.
type reader struct {
	data []byte
	off  int
}

func (r *reader) bytes(n int) []byte {
	if r.off+n > len(r.data) {
		r.off = len(r.data)
		return nil
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b
}

func (r *reader) skip(n int) {
	r.off += n
	if r.off > len(r.data) {
		r.off = len(r.data)
	}
}

func (r *reader) u32() uint32 {
	if r.off+4 > len(r.data) {
		r.off = len(r.data)
		return 0
	}
	v := binary.LittleEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v
}

func (r *reader) f32() float32 {
	return math.Float32frombits(r.u32())
}
