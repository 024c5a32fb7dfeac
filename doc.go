// Package lvlpath is a compact toolkit for minimum-cost path search over
// dense cost matrices.
//
// 🚀 What is lvlpath?
//
//	A small, deterministic library that brings together:
//		• Cost matrices: dense row-major float64 storage with +Inf "no edge" sentinel
//		• Best-first search: A*-style branch-and-bound with an incumbent bound
//		• Heuristics: single-hop estimate or an admissible all-pairs closure
//		• Reference solver: matrix-based Dijkstra for verification and simple queries
//		• Instance generation: seeded Euclidean instances for tests and benchmarks
//
// ✨ Why choose lvlpath?
//
//   - Strict contracts – malformed input is rejected before any search work
//   - Deterministic – fixed loop orders, seeded RNG, stabilized costs
//   - Pure Go – no cgo, no hidden deps
//   - Honest results – exhaustion vs. iteration-budget cutoff are distinguishable
//
// Everything is organized under three subpackages:
//
//	matrix/   — Dense cost matrices, validation, APSP closure, instance generator
//	astar/    — the bounded best-first engine (open list, heuristics, pruning)
//	dijkstra/ — lazy-decrease-key Dijkstra over the same matrices
//
// Quick sketch:
//
//	    0───1
//	    │   │
//	    2───3
//
//	a 4-vertex instance; astar.Search(m, 0, 3) returns the cheapest 0→3 walk.
//
// Dive into the package docs for contracts, complexity notes and examples.
//
//	go get github.com/katalvlaran/lvlpath
package lvlpath
