package solid

import (
	"fmt"
	"runtime"
	"sync"

	"roman-dodecahedron/internal/geometry"
	"roman-dodecahedron/internal/mesh"
)

// Params holds everything the generator needs. All dimensions in mm.
type Params struct {
	Circumradius       float64   // half the vertex-to-vertex diameter
	WallThickness      float64   // bore depth below each face
	KnobRadius         float64   // standoff sphere radius, 0 disables knobs
	KnobOffsetFraction float64   // knob center offset = KnobRadius * fraction
	HoleDiameters      []float64 // one per face, geometry.NumFaces entries
	SphereSegments     int       // knob angular resolution
	HoleSegments       int       // rim / bore angular resolution
}

func (p Params) validate() error {
	if p.Circumradius <= 0 {
		return fmt.Errorf("solid: circumradius must be positive, got %g", p.Circumradius)
	}
	if p.WallThickness <= 0 {
		return fmt.Errorf("solid: wall thickness must be positive, got %g", p.WallThickness)
	}
	if len(p.HoleDiameters) != geometry.NumFaces {
		return fmt.Errorf("solid: got %d hole diameters, want %d", len(p.HoleDiameters), geometry.NumFaces)
	}
	for i, dia := range p.HoleDiameters {
		if dia < 0 {
			return fmt.Errorf("solid: hole diameter for face %d is negative (%g)", i, dia)
		}
	}
	if p.SphereSegments < 3 || p.HoleSegments < 3 {
		return fmt.Errorf("solid: segment counts must be at least 3 (sphere %d, hole %d)", p.SphereSegments, p.HoleSegments)
	}
	return nil
}

// Build generates the complete solid: twelve pierced faces with bore walls
// and floors, then the twenty vertex knobs. Faces are independent, so they
// are built concurrently into per-face buffers and concatenated in face
// order, keeping the output deterministic.
func Build(p Params) (*mesh.Mesh, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	d, err := geometry.NewDodecahedron(p.Circumradius)
	if err != nil {
		return nil, err
	}

	buffers := make([]*mesh.Mesh, geometry.NumFaces)

	workers := runtime.NumCPU()
	if workers > geometry.NumFaces {
		workers = geometry.NumFaces
	}
	faceChan := make(chan int, geometry.NumFaces)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range faceChan {
				buffers[i] = buildFace(d, i, p)
			}
		}()
	}
	for i := 0; i < geometry.NumFaces; i++ {
		faceChan <- i
	}
	close(faceChan)
	wg.Wait()

	m := &mesh.Mesh{}
	for _, buf := range buffers {
		m.Append(buf)
	}

	PlaceKnobs(m, d, p.KnobRadius, p.KnobOffsetFraction, p.SphereSegments)
	return m, nil
}

// buildFace emits one face's surface and, unless the hole consumed the
// whole pentagon, its bore wall and floor.
func buildFace(d *geometry.Dodecahedron, face int, p Params) *mesh.Mesh {
	m := &mesh.Mesh{}
	holeRadius := p.HoleDiameters[face] / 2

	rim := TriangulateFace(m, d, face, holeRadius, p.HoleSegments, p.WallThickness)
	if rim == nil {
		return m
	}

	normal := d.Normals[face]
	inner := OffsetRim(rim, normal, p.WallThickness)
	// Counts always match here; BoreWall guards its own invariant.
	if err := BoreWall(m, rim, inner); err != nil {
		panic(err)
	}
	BoreFloor(m, d.Centers[face].Sub(normal.Scale(p.WallThickness)), inner)
	return m
}
