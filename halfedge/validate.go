package halfedge

// validateArrays is the upfront layout check shared by both engines.
// It runs before any mutation, so a failed batch has no partial effect.
// A nil index list is a valid empty batch and is not checked here.
// Complexity: O(1).
func validateArrays(halfedges []HalfEdge, vertices []Vertex, faces []Face) error {
	if halfedges == nil {
		return ErrNilHalfEdges
	}
	if vertices == nil {
		return ErrNilVertices
	}
	if faces == nil {
		return ErrNilFaces
	}
	return nil
}
