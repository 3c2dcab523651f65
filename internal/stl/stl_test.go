package stl

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"roman-dodecahedron/internal/mathutil"
	"roman-dodecahedron/internal/mesh"
)

// testMesh uses float32-exact coordinates so round trips compare equal.
func testMesh() *mesh.Mesh {
	var m mesh.Mesh
	m.Add(mathutil.Vec3{0, 0, 0}, mathutil.Vec3{1.5, 0, 0}, mathutil.Vec3{0, 2.25, 0})
	m.Add(mathutil.Vec3{-0.5, 0.125, 3}, mathutil.Vec3{4, -8, 0.75}, mathutil.Vec3{1, 1, 1})
	return &m
}

func TestRoundTrip(t *testing.T) {
	m := testMesh()
	path := filepath.Join(t.TempDir(), "out.stl")
	if err := Write(path, "round trip", m); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != FileSize(m.Len()) {
		t.Fatalf("file size %d, want %d", info.Size(), FileSize(m.Len()))
	}

	comment, got, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if comment != "round trip" {
		t.Errorf("comment %q", comment)
	}
	if got.Len() != m.Len() {
		t.Fatalf("triangle count %d, want %d", got.Len(), m.Len())
	}
	for i := range m.Tris {
		if got.Tris[i] != m.Tris[i] {
			t.Errorf("triangle %d: %v, want %v", i, got.Tris[i], m.Tris[i])
		}
	}
}

func TestEncodeLayout(t *testing.T) {
	m := testMesh()
	var buf bytes.Buffer
	long := "this header comment is deliberately longer than the eighty bytes the format allows, so it must be truncated"
	if err := Encode(&buf, long, m); err != nil {
		t.Fatal(err)
	}
	if int64(buf.Len()) != FileSize(m.Len()) {
		t.Fatalf("encoded %d bytes, want %d", buf.Len(), FileSize(m.Len()))
	}

	data := buf.Bytes()
	if string(data[:headerSize]) != long[:headerSize] {
		t.Error("header not truncated to 80 bytes")
	}
	// Count field right after the header.
	if data[headerSize] != 2 || data[headerSize+1] != 0 {
		t.Error("triangle count not little-endian 2")
	}
	// Attribute word of the first record is zero.
	attrOff := headerSize + 4 + recordSize - 2
	if data[attrOff] != 0 || data[attrOff+1] != 0 {
		t.Error("attribute word not zero")
	}
}

func TestDegenerateTriangleGetsZeroNormal(t *testing.T) {
	var m mesh.Mesh
	m.Add(mathutil.Vec3{1, 1, 1}, mathutil.Vec3{1, 1, 1}, mathutil.Vec3{1, 1, 1})

	var buf bytes.Buffer
	if err := Encode(&buf, "", &m); err != nil {
		t.Fatal(err)
	}
	normal := buf.Bytes()[headerSize+4 : headerSize+4+12]
	for i, b := range normal {
		if b != 0 {
			t.Fatalf("normal byte %d = %#x, want 0", i, b)
		}
	}
}

func TestWriteFailureLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.stl")
	if err := Write(path, "", testMesh()); err == nil {
		t.Fatal("want error for unwritable path")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("failed write left a file behind")
	}
}

func TestReadRejectsTruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trunc.stl")
	var buf bytes.Buffer
	if err := Encode(&buf, "", testMesh()); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes()[:buf.Len()-10], 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Read(path); err == nil {
		t.Error("truncated file: want error")
	}
}
