// Package halfedge recomputes derived quantities on a triangulated
// surface mesh stored in half-edge form, operating in place on flat,
// caller-owned arrays.
//
// What:
//
//   - UpdateFaceNormals derives each listed face's plane normal and area
//     from its three corner positions.
//   - UpdateVertexNeighbors walks the half-edge ring around each listed
//     vertex, recording the ordered neighbor ring, its valence, the
//     (symmetric) lengths of every visited edge, and an area-weighted
//     vertex normal. Open boundaries are detected and recovered by a
//     reverse sweep so the recorded ring stays angularly continuous.
//
// Why:
//
//   - After topology-changing edits (splits, collapses, flips) only a
//     small subset of entities is stale; both engines accept an index
//     list and touch nothing else.
//   - The arrays are borrowed, never allocated or resized: the host mesh
//     owns storage, the kernel owns only the derived fields it rewrites.
//
// Ordering:
//
//   - UpdateFaceNormals must run before UpdateVertexNeighbors on any face
//     whose corner positions changed; the vertex engine consumes the
//     face's Normal and Area as weights.
//
// Complexity:
//
//   - UpdateFaceNormals:     O(len(faceIndices)).
//   - UpdateVertexNeighbors: O(Σ valence) over the listed vertices.
//
// Errors:
//
//   - ErrNilHalfEdges / ErrNilVertices / ErrNilFaces: a backing array
//     failed the upfront layout check; the batch aborts before any
//     mutation.
//   - Topology gaps (a Sentinel link met mid-traversal) never abort the
//     batch: the affected entity is skipped or its walk truncated, and
//     the outcome is reported through Stats.
package halfedge
