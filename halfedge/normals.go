package halfedge

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// UpdateFaceNormals recomputes Normal and Area in place for every face
// listed in faceIndices. Sentinel entries are skipped; a face whose ring
// is missing a HalfEdge, Prev or Next link cannot be treated as a valid
// triangle and is left untouched (silent-skip policy, reported through
// Stats.FacesSkipped).
//
// The three corners are resolved as the target vertices of the face's
// anchor half-edge, its Prev, and its Next; the normal is the normalized
// cross product of the two corner spans and the area is half the cross
// product's length. A zero-area triangle gets a zero normal.
//
// Must run before UpdateVertexNeighbors on any face whose corner
// positions changed: the vertex engine consumes Normal and Area as
// weights.
//
// Complexity: O(len(faceIndices)) time, O(1) memory.
func UpdateFaceNormals(faceIndices []int32, halfedges []HalfEdge, vertices []Vertex, faces []Face, opts Options) (Stats, error) {
	var st Stats
	if err := validateArrays(halfedges, vertices, faces); err != nil {
		return st, err
	}

	for _, f := range faceIndices {
		if f == Sentinel {
			st.FacesSkipped++
			continue
		}
		face := &faces[f]

		h := face.HalfEdge
		if h == Sentinel {
			if opts.Verbose {
				fmt.Printf("UpdateFaceNormals: face %d has no half-edge, skipped\n", f)
			}
			st.FacesSkipped++
			continue
		}
		p := halfedges[h].Prev
		n := halfedges[h].Next
		if p == Sentinel || n == Sentinel {
			if opts.Verbose {
				fmt.Printf("UpdateFaceNormals: face %d has a broken ring, skipped\n", f)
			}
			st.FacesSkipped++
			continue
		}

		c0 := vertices[halfedges[h].Vertex].Position
		c1 := vertices[halfedges[p].Vertex].Position
		c2 := vertices[halfedges[n].Vertex].Position

		nvec := r3.Cross(r3.Sub(c1, c0), r3.Sub(c2, c0))
		face.Area = 0.5 * r3.Norm(nvec)
		face.Normal = unitOrZero(nvec)
		st.FacesUpdated++
	}

	return st, nil
}
