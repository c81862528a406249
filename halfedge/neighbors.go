package halfedge

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// UpdateVertexNeighbors rebuilds the derived fields of every vertex
// listed in vertexIndices: the ordered Neighbors ring (half-edge indices
// leaving the vertex), Valence, an area-weighted unit Normal, and the
// Length of every visited half-edge (written symmetrically to its twin).
// Face Normal and Area must already be current for the incident faces;
// see UpdateFaceNormals.
//
// Sentinel entries and isolated vertices (HalfEdge == Sentinel) are
// skipped with all derived fields left untouched; the caller's previous
// values survive.
//
// The forward sweep orbits the outgoing edges via Twin→Next until the
// ring closes on the anchor (interior vertex). Hitting an untwinned edge
// means an open boundary: the collected prefix after the anchor slot is
// reversed in place and a reverse sweep via Prev→Twin collects the rest
// of the ring from the anchor's other side, so the recorded order stays
// angularly continuous. A missing Next mid-sweep, or exceeding
// opts.MaxWalk steps, truncates the walk; the vertex is still finalized
// with whatever was accumulated and the event is counted in
// Stats.TruncatedWalks.
//
// Valence counts every visited ring edge and may exceed MaxNeighbors;
// Neighbors then holds only the first MaxNeighbors entries, and only
// those recorded entries contribute their face's weight to the vertex
// normal. Edge lengths are written for every visited edge regardless.
//
// Complexity: O(Σ valence) over the listed vertices, O(1) memory.
func UpdateVertexNeighbors(vertexIndices []int32, halfedges []HalfEdge, vertices []Vertex, faces []Face, opts Options) (Stats, error) {
	var st Stats
	if err := validateArrays(halfedges, vertices, faces); err != nil {
		return st, err
	}
	maxWalk := opts.MaxWalk
	if maxWalk <= 0 {
		maxWalk = len(halfedges)
	}

	for _, v := range vertexIndices {
		if v == Sentinel {
			st.VerticesSkipped++
			continue
		}
		vert := &vertices[v]

		anchor := vert.HalfEdge
		if anchor == Sentinel {
			if opts.Verbose {
				fmt.Printf("UpdateVertexNeighbors: vertex %d has no half-edge, skipped\n", v)
			}
			st.VerticesSkipped++
			continue
		}

		for k := range vert.Neighbors {
			vert.Neighbors[k] = Sentinel
		}
		var acc r3.Vec
		var i int32
		boundary := false
		truncated := false

		// Forward sweep.
		curr := anchor
		for {
			e := &halfedges[curr]
			if i < MaxNeighbors {
				vert.Neighbors[i] = curr
				if e.Face != Sentinel {
					f := &faces[e.Face]
					acc = r3.Add(acc, r3.Scale(f.Area, f.Normal))
				}
			}
			l := r3.Norm(r3.Sub(vert.Position, vertices[e.Vertex].Position))
			e.Length = l
			i++

			if e.Twin == Sentinel {
				boundary = true
				break
			}
			twin := &halfedges[e.Twin]
			twin.Length = l

			next := twin.Next
			if next == Sentinel {
				truncated = true
				break
			}
			if next == anchor {
				break // ring closed: interior vertex
			}
			if int(i) >= maxWalk {
				truncated = true
				break
			}
			curr = next
		}

		if boundary {
			// Reverse the collected prefix (anchor slot stays fixed) so
			// the ring reads continuously once the reverse sweep fills in
			// the anchor's other side.
			last := i
			if last > MaxNeighbors {
				last = MaxNeighbors
			}
			for a, b := int32(1), last-1; a < b; a, b = a+1, b-1 {
				vert.Neighbors[a], vert.Neighbors[b] = vert.Neighbors[b], vert.Neighbors[a]
			}

			// Reverse sweep: step the other way around the vertex via
			// Prev→Twin. Prev points into the vertex, so its twin is the
			// next outgoing edge; a Sentinel Prev or Twin is the far side
			// of the boundary and stops the walk.
			curr = anchor
			for {
				p := halfedges[curr].Prev
				if p == Sentinel {
					break
				}
				into := &halfedges[p]
				curr = into.Twin
				if curr == Sentinel || curr == anchor {
					break
				}

				e := &halfedges[curr]
				if i < MaxNeighbors {
					vert.Neighbors[i] = curr
					if e.Face != Sentinel {
						f := &faces[e.Face]
						acc = r3.Add(acc, r3.Scale(f.Area, f.Normal))
					}
				}
				l := r3.Norm(r3.Sub(vert.Position, vertices[e.Vertex].Position))
				e.Length = l
				into.Length = l // into is curr's twin
				i++

				if int(i) >= maxWalk {
					truncated = true
					break
				}
			}
		}

		vert.Valence = i
		vert.Normal = unitOrZero(acc)
		st.VerticesUpdated++
		if truncated {
			if opts.Verbose {
				fmt.Printf("UpdateVertexNeighbors: vertex %d ring walk truncated after %d steps\n", v, i)
			}
			st.TruncatedWalks++
		}
	}

	return st, nil
}
