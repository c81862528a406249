// Package halfedge defines the entity records, sentinel errors, and
// batch options for the derived-quantity engines.
package halfedge

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel marks an absent topological link. It is distinct from every
// valid array index; interior edges carry a real Twin, boundary edges
// carry Sentinel.
const Sentinel int32 = -1

// MaxNeighbors is the fixed capacity of Vertex.Neighbors. A vertex's
// Valence may exceed it, in which case Neighbors holds only the first
// MaxNeighbors ring entries while Valence still reports the true total.
// Callers must key on Valence, never on the array's storage length.
const MaxNeighbors = 20

// Sentinel errors for the upfront layout check shared by both engines.
var (
	// ErrNilHalfEdges indicates the half-edge backing array is nil.
	ErrNilHalfEdges = errors.New("halfedge: half-edge array is nil")
	// ErrNilVertices indicates the vertex backing array is nil.
	ErrNilVertices = errors.New("halfedge: vertex array is nil")
	// ErrNilFaces indicates the face backing array is nil.
	ErrNilFaces = errors.New("halfedge: face array is nil")
)

// Vertex is one entry of the flat vertex array.
//
// Position is host-owned geometry; Normal, Valence and Neighbors are
// derived fields rewritten by UpdateVertexNeighbors. HalfEdge anchors the
// vertex at one outgoing half-edge, or Sentinel for an isolated vertex.
type Vertex struct {
	Position  r3.Vec
	Normal    r3.Vec // derived
	HalfEdge  int32
	Valence   int32               // derived
	Neighbors [MaxNeighbors]int32 // derived, ordered ring of half-edge indices
}

// HalfEdge is one entry of the flat half-edge array.
//
// Vertex is the index of the vertex this edge points to. Twin is the
// opposite half-edge on the adjacent face (Sentinel iff boundary).
// Next and Prev cycle around the owning Face in three steps. Length is
// derived and symmetric with the twin.
type HalfEdge struct {
	Vertex int32
	Twin   int32
	Next   int32
	Prev   int32
	Face   int32
	Length float64 // derived
}

// Face is one entry of the flat face array. HalfEdge names one boundary
// half-edge of the triangle; Normal and Area are derived fields
// rewritten by UpdateFaceNormals.
type Face struct {
	HalfEdge int32
	Normal   r3.Vec  // derived
	Area     float64 // derived
}

// Options configures both batch engines.
//   - MaxWalk: cap on ring steps per vertex; a walk that neither closes
//     nor reaches a boundary within the cap is truncated (0 means
//     len(halfedges), which no consistent ring can exceed).
//   - Verbose: if true, prints each skip and truncation via fmt.Printf.
type Options struct {
	MaxWalk int
	Verbose bool
}

// DefaultOptions returns the zero configuration: MaxWalk bound by the
// half-edge array length, no tracing.
func DefaultOptions() Options {
	return Options{}
}

// Stats reports the per-entity outcomes of one batch call. Skips are the
// graceful-degradation path for Sentinel index entries and topology gaps;
// they never surface as errors.
type Stats struct {
	// FacesUpdated counts faces whose Normal and Area were rewritten.
	FacesUpdated int
	// FacesSkipped counts Sentinel entries and faces with a missing ring link.
	FacesSkipped int
	// VerticesUpdated counts vertices whose derived fields were rewritten.
	VerticesUpdated int
	// VerticesSkipped counts Sentinel entries and isolated vertices.
	VerticesSkipped int
	// TruncatedWalks counts ring walks stopped by a missing Next link or
	// by the MaxWalk cap; the vertex is still finalized with the partial ring.
	TruncatedWalks int
}
