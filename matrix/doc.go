// Package matrix provides dense cost matrices for path-search algorithms.
//
// A cost matrix is a square, row-major float64 matrix where entry (i,j)
// holds the non-negative cost of travelling directly from vertex i to
// vertex j. The package fixes one sentinel convention for the whole
// module:
//
//   - math.Inf(1) off the diagonal means "no direct edge";
//   - the diagonal is 0 (cost of staying put).
//
// Components:
//
//   - Matrix / Dense    — the storage interface and its flat-slice implementation.
//   - NewDenseFromRows  — shape-checked construction from [][]float64.
//   - NewCostMatrix     — an n×n "empty" instance (0 diagonal, +Inf elsewhere).
//   - ValidateSquare / ValidateCosts — strict shape and value validation.
//   - FloydWarshall / MetricClosure  — in-place all-pairs shortest paths.
//   - Random            — deterministic Euclidean instance generator.
//
// Determinism & policy:
//
//   - All loops use fixed iteration order; same input ⇒ same output.
//   - Generators are seeded; seed 0 maps to a stable default seed.
//   - No logging; only sentinel errors, never panics on user input.
package matrix
