// Package stl reads and writes binary STL (little-endian triangle soup:
// 80-byte header, uint32 count, then 50-byte records of normal, three
// vertices, and a zero attribute word).
package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"roman-dodecahedron/internal/mesh"
)

const (
	headerSize = 80
	recordSize = 50
)

// FileSize returns the exact size in bytes of a binary STL holding n
// triangles.
func FileSize(n int) int64 {
	return headerSize + 4 + int64(n)*recordSize
}

// Encode writes the mesh to w. comment fills the 80-byte header, padded
// with zeros or truncated. Facet normals come from each triangle's edge
// cross product; degenerate triangles get a zero normal.
func Encode(w io.Writer, comment string, m *mesh.Mesh) error {
	var header [headerSize]byte
	copy(header[:], comment)
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(m.Len()))
	if _, err := w.Write(count[:]); err != nil {
		return err
	}

	var rec [recordSize]byte
	for _, t := range m.Tris {
		off := 0
		put := func(v float64) {
			binary.LittleEndian.PutUint32(rec[off:], math.Float32bits(float32(v)))
			off += 4
		}
		n := t.Normal()
		put(n[0])
		put(n[1])
		put(n[2])
		for _, p := range t {
			put(p[0])
			put(p[1])
			put(p[2])
		}
		binary.LittleEndian.PutUint16(rec[off:], 0) // attribute byte count
		if _, err := w.Write(rec[:]); err != nil {
			return err
		}
	}
	return nil
}

// Write saves the mesh to path. The file is written to a temp file in the
// same directory and renamed into place, so a failure never leaves a
// partial file that looks valid.
func Write(path, comment string, m *mesh.Mesh) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".stl-*")
	if err != nil {
		return fmt.Errorf("stl: create temp for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	bw := bufio.NewWriter(tmp)
	err = Encode(bw, comment, m)
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("stl: write %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("stl: close %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("stl: rename to %s: %w", path, err)
	}
	return nil
}
