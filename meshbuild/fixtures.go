package meshbuild

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SingleTriangle builds one triangle A=(0,0,0), B=(1,0,0), C=(0,1,0):
// one face with normal (0,0,1) and area 0.5, three boundary half-edges.
func SingleTriangle() *Mesh {
	m, err := FromTriangles(
		[]r3.Vec{{}, {X: 1}, {Y: 1}},
		[][3]int32{{0, 1, 2}},
	)
	if err != nil {
		panic(err) // constant input, cannot fail
	}
	return m
}

// Strip builds a zigzag triangle strip of n triangles over n+2 vertices
// in the z=0 plane. Every vertex lies on the open boundary; adjacent
// triangles share one interior (twinned) edge. Requires n ≥ 1.
// Complexity: O(n).
func Strip(n int) (*Mesh, error) {
	if n < 1 {
		return nil, ErrTooFewSides
	}
	points := make([]r3.Vec, n+2)
	for i := range points {
		points[i] = r3.Vec{X: 0.5 * float64(i), Y: float64(i % 2)}
	}
	tris := make([][3]int32, n)
	for k := range tris {
		a, b, c := int32(k), int32(k+1), int32(k+2)
		if k%2 == 0 {
			tris[k] = [3]int32{a, b, c}
		} else {
			// Swap the base corners so the shared edge is traversed in
			// opposite directions by the two triangles.
			tris[k] = [3]int32{b, a, c}
		}
	}
	return FromTriangles(points, tris)
}

// Fan builds a closed umbrella: a hub at the origin surrounded by n rim
// vertices on the unit circle, with n triangles (hub, k, k+1). The hub
// is an interior vertex of valence n; every rim vertex lies on the open
// boundary (the rim edges have no twin). Requires n ≥ 3.
// Complexity: O(n).
func Fan(n int) (*Mesh, error) {
	if n < 3 {
		return nil, ErrTooFewSides
	}
	points := make([]r3.Vec, n+1)
	for k := 1; k <= n; k++ {
		a := 2 * math.Pi * float64(k-1) / float64(n)
		points[k] = r3.Vec{X: math.Cos(a), Y: math.Sin(a)}
	}
	tris := make([][3]int32, n)
	for k := 1; k < n; k++ {
		tris[k-1] = [3]int32{0, int32(k), int32(k + 1)}
	}
	tris[n-1] = [3]int32{0, int32(n), 1}
	return FromTriangles(points, tris)
}

// Tetrahedron builds the closed four-face shell on four vertices;
// every edge is twinned and every vertex has valence 3.
func Tetrahedron() *Mesh {
	m, err := FromTriangles(
		[]r3.Vec{
			{X: 1, Y: 1, Z: 1},
			{X: 1, Y: -1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
		},
		[][3]int32{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}},
	)
	if err != nil {
		panic(err) // constant input, cannot fail
	}
	return m
}

// Octahedron builds the closed eight-face shell on the six axis unit
// vectors, wound outward; every edge is twinned and every vertex has
// valence 4.
func Octahedron() *Mesh {
	m, err := FromTriangles(
		[]r3.Vec{
			{X: 1}, {X: -1},
			{Y: 1}, {Y: -1},
			{Z: 1}, {Z: -1},
		},
		[][3]int32{
			{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
			{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
		},
	)
	if err != nil {
		panic(err) // constant input, cannot fail
	}
	return m
}
