package halfedge

import "gonum.org/v1/gonum/spatial/r3"

// unitOrZero returns v scaled to unit length, or the zero vector when v
// has no extent. Both engines share this rule so degenerate geometry
// (zero-area faces, fully degenerate rings) yields a zero normal instead
// of NaNs. Complexity: O(1).
func unitOrZero(v r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if n > 0 {
		return r3.Scale(1/n, v)
	}
	return r3.Vec{}
}
