// Package astar implements a bounded best-first path search (A*-style
// branch-and-bound) over dense cost matrices.
//
// Given an n×n cost matrix (math.Inf(1) marks "no edge"), a start vertex
// and an end vertex, Search explores simple paths in ascending order of
// estimated total cost f = g + h:
//
//   - g is the accumulated cost along the node's path;
//   - h is a heuristic estimate of the remaining cost to the end vertex;
//   - an incumbent best solution (upper bound) prunes every candidate
//     whose f cannot improve on it, at push time.
//
// The goal test is "last visited vertex equals the end vertex" — this is
// a point-to-point query, not a full tour: the search never requires
// visiting every vertex.
//
// Heuristics:
//
//   - SingleHop (default) — the direct edge to the end vertex when it
//     exists, otherwise the cheapest outgoing edge of the current vertex.
//     NOT guaranteed admissible: on pathological instances the fallback
//     can overestimate the true remaining cost, so the returned path is
//     only guaranteed optimal when the instance keeps the estimate a
//     lower bound (e.g. complete metric instances).
//   - AllPairs — the true remaining shortest-path distance, precomputed
//     via matrix.FloydWarshall. Admissible by construction; optimal
//     results whenever the search runs to exhaustion. Costs O(n³) setup.
//
// Termination:
//
//   - TerminatedExhausted — the open list emptied: the result is either a
//     certified answer (admissible heuristic) or "no path" (+Inf cost).
//   - TerminatedBudget — the iteration cap fired first: the result holds
//     the best incumbent so far with no optimality guarantee.
//
// The search is single-threaded and synchronous: one call runs to one of
// the two terminal conditions, and the only cutoff is the iteration
// budget. The matrix is read once into a flat buffer up front, so the
// caller may reuse it freely after Search returns.
//
// Complexity: worst case exponential in n (branch-and-bound over simple
// paths); per expansion O(n) child generation plus O(log q) heap work for
// an open list of size q. Memory is dominated by the open list.
package astar
