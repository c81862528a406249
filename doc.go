// Package trimesh is a batch recomputation kernel for triangulated
// surface meshes stored in half-edge form: the piece that refreshes
// derived geometry after topology-changing edits.
//
// 🚀 What is trimesh?
//
//	A small, allocation-free library that brings together:
//		• Face geometry: per-face plane normals and areas
//		• Vertex rings: ordered neighbor discovery with boundary fallback
//		• Valence and symmetric edge lengths, recomputed in place
//		• Area-weighted vertex normals that degrade gracefully on gaps
//
// ✨ Why choose trimesh?
//
//   - Flat, caller-owned arrays – no hidden storage, no resizing
//   - Batch-oriented – touch only the vertices and faces that changed
//   - Rock-solid guarantees – upfront validation, per-entity skip counters
//   - Pure Go – no cgo, vector math on gonum's spatial/r3
//
// Under the hood, everything is organized under two subpackages:
//
//	halfedge/  - the traversal and normal/area engines over flat arrays
//	meshbuild/ - deterministic half-edge fixtures for tests and benchmarks
//
// Quick ASCII example:
//
//	    C
//	    │╲
//	    │ ╲        one face, three half-edges, all boundary:
//	    A──B       normal (0,0,1), area 0.5
//
// Dive into the package docs for the traversal contract, the sentinel
// conventions, and the ordering rule between the two engines.
//
//	go get github.com/katalvlaran/trimesh
package trimesh
