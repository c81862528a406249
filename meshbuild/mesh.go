package meshbuild

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/trimesh/halfedge"
)

// Sentinel errors for mesh assembly.
var (
	// ErrNoTriangles indicates an empty triangle soup.
	ErrNoTriangles = errors.New("meshbuild: at least one triangle is required")
	// ErrVertexIndex indicates a triangle references a vertex out of range.
	ErrVertexIndex = errors.New("meshbuild: triangle references a vertex out of range")
	// ErrDegenerateTriangle indicates a triangle repeats a corner.
	ErrDegenerateTriangle = errors.New("meshbuild: triangle repeats a vertex")
	// ErrNonManifold indicates a directed edge occurs twice in the soup.
	ErrNonManifold = errors.New("meshbuild: duplicate directed edge")
	// ErrTooFewSides indicates a parametric fixture size below its minimum.
	ErrTooFewSides = errors.New("meshbuild: parameter too small")
)

// Mesh owns the three flat arrays the halfedge engines borrow. It is the
// host-side container: the engines mutate derived fields of its entries
// in place and never resize the slices.
type Mesh struct {
	Vertices  []halfedge.Vertex
	HalfEdges []halfedge.HalfEdge
	Faces     []halfedge.Face
}

// FaceIndices returns 0..len(Faces)-1 as a batch index list.
func (m *Mesh) FaceIndices() []int32 {
	out := make([]int32, len(m.Faces))
	for i := range out {
		out[i] = int32(i)
	}
	return out
}

// VertexIndices returns 0..len(Vertices)-1 as a batch index list.
func (m *Mesh) VertexIndices() []int32 {
	out := make([]int32, len(m.Vertices))
	for i := range out {
		out[i] = int32(i)
	}
	return out
}

// directed identifies one directed edge by its endpoint vertex indices.
type directed struct {
	from, to int32
}

// FromTriangles assembles the half-edge arrays for a triangle soup over
// the given points. tris[k] lists the corners of triangle k; the face
// engine will derive the right-hand normal of that corner order. Twins
// are paired across shared edges; unshared edges stay boundary
// (Twin == Sentinel). Each referenced vertex is anchored at the first
// outgoing half-edge created for it; unreferenced vertices stay isolated
// (HalfEdge == Sentinel).
//
// Derived fields (lengths, normals, areas, valences, neighbor rings) are
// left zeroed/Sentinel: run the halfedge engines to populate them.
//
// Complexity: O(len(points) + len(tris)) time and memory.
func FromTriangles(points []r3.Vec, tris [][3]int32) (*Mesh, error) {
	if len(tris) == 0 {
		return nil, ErrNoTriangles
	}

	m := &Mesh{
		Vertices:  make([]halfedge.Vertex, len(points)),
		HalfEdges: make([]halfedge.HalfEdge, 0, 3*len(tris)),
		Faces:     make([]halfedge.Face, 0, len(tris)),
	}
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position = points[i]
		v.HalfEdge = halfedge.Sentinel
		for k := range v.Neighbors {
			v.Neighbors[k] = halfedge.Sentinel
		}
	}

	seen := make(map[directed]int32, 3*len(tris))
	for t, tri := range tris {
		for _, c := range tri {
			if c < 0 || int(c) >= len(points) {
				return nil, fmt.Errorf("meshbuild: triangle %d: %w", t, ErrVertexIndex)
			}
		}
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[2] == tri[0] {
			return nil, fmt.Errorf("meshbuild: triangle %d: %w", t, ErrDegenerateTriangle)
		}

		base := int32(len(m.HalfEdges))
		f := int32(len(m.Faces))
		// Ring winding: target vertices run (a, c, b) along Next, which
		// keeps the engines' corner formula (anchor, Prev, Next) aligned
		// with the right-hand normal of (a, b, c).
		heads := [3]int32{tri[0], tri[2], tri[1]}
		tails := [3]int32{tri[1], tri[0], tri[2]}
		for k := int32(0); k < 3; k++ {
			m.HalfEdges = append(m.HalfEdges, halfedge.HalfEdge{
				Vertex: heads[k],
				Twin:   halfedge.Sentinel,
				Next:   base + (k+1)%3,
				Prev:   base + (k+2)%3,
				Face:   f,
			})
		}
		m.Faces = append(m.Faces, halfedge.Face{HalfEdge: base})

		for k := int32(0); k < 3; k++ {
			idx := base + k
			de := directed{tails[k], heads[k]}
			if _, dup := seen[de]; dup {
				return nil, fmt.Errorf("meshbuild: triangle %d, edge %d→%d: %w", t, de.from, de.to, ErrNonManifold)
			}
			seen[de] = idx
			if tw, ok := seen[directed{heads[k], tails[k]}]; ok {
				m.HalfEdges[idx].Twin = tw
				m.HalfEdges[tw].Twin = idx
			}
			if m.Vertices[tails[k]].HalfEdge == halfedge.Sentinel {
				m.Vertices[tails[k]].HalfEdge = idx
			}
		}
	}

	return m, nil
}
