// Package meshbuild assembles deterministic half-edge meshes for tests,
// examples, and benchmarks of the halfedge engines.
//
// What:
//
//   - FromTriangles links a triangle soup into the three flat arrays the
//     halfedge package operates on: Next/Prev rings in 3-cycles, twins
//     paired across shared edges, each vertex anchored at its first
//     outgoing half-edge.
//   - Canonical fixtures: SingleTriangle, Strip (open boundary),
//     Fan (interior hub, boundary rim), Tetrahedron and Octahedron
//     (closed shells, every edge twinned).
//
// Why:
//
//   - The engines borrow arrays they never allocate; somebody has to be
//     the host. meshbuild is that host for everything under test.
//   - Same inputs ⇒ identical arrays, so expectations on edge indices and
//     neighbor order are stable across runs.
//
// Orientation:
//
//   - A triangle (a, b, c) is wound so the face engine derives the
//     right-hand normal of a→b→c. Twin pairing requires adjacent
//     triangles to traverse their shared edge in opposite directions,
//     i.e. a consistently oriented input soup.
//
// Errors:
//
//   - ErrNoTriangles: the soup is empty.
//   - ErrVertexIndex: a triangle references a vertex out of range.
//   - ErrDegenerateTriangle: a triangle repeats a corner.
//   - ErrNonManifold: a directed edge occurs twice (inconsistent winding
//     or more than two faces on one edge).
//   - ErrTooFewSides: a parametric fixture was asked for too small a size.
package meshbuild
