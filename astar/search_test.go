// Package astar_test validates the public Search contract.
// Focus:
//  1. Strict sentinels on malformed input (nil, non-square, OOB vertices,
//     NaN/negative entries, bad options) before any search work.
//  2. Correctness on the canonical 4-vertex scenario and tiny instances.
//  3. "No path" and start==end edge cases.
//  4. Optimality against the independent Dijkstra oracle where the
//     heuristic is known admissible (metric instances / AllPairs).
//  5. Budget cutoff vs. exhaustion distinguishability.
//  6. Bounded open-list policy behaves and stays useful.
package astar_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvlpath/astar"
	"github.com/katalvlaran/lvlpath/dijkstra"
	"github.com/katalvlaran/lvlpath/matrix"
)

// inf shortens matrix literals below.
var inf = math.Inf(1)

// mustDense builds a Dense from rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return d
}

// mustErrIs asserts err matches the wanted sentinel.
func mustErrIs(t *testing.T, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("error mismatch: got %v, want %v", err, want)
	}
}

// equalPath compares two vertex sequences.
func equalPath(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// diamond is the canonical 4-vertex instance: the cheap route 0→1→2→3
// (cost 3) beats both the missing direct edge 0→3 and the detour
// 0→2→3 (cost 5).
func diamond(t *testing.T) *matrix.Dense {
	return mustDense(t, [][]float64{
		{0, 1, 4, inf},
		{1, 0, 1, 5},
		{4, 1, 0, 1},
		{inf, 5, 1, 0},
	})
}

// ---------------------------
// 1) Strict sentinels.
// ---------------------------

func TestSearch_InvalidInput(t *testing.T) {
	good := diamond(t)

	t.Run("nil matrix", func(t *testing.T) {
		_, err := astar.Search(nil, 0, 3)
		mustErrIs(t, err, astar.ErrNilMatrix)
	})

	t.Run("non-square", func(t *testing.T) {
		m := mustDense(t, [][]float64{
			{0, 1, 2},
			{1, 0, 3},
		})
		_, err := astar.Search(m, 0, 1)
		mustErrIs(t, err, astar.ErrNonSquare)
	})

	t.Run("start out of range", func(t *testing.T) {
		_, err := astar.Search(good, -1, 3)
		mustErrIs(t, err, astar.ErrVertexOutOfRange)
	})

	t.Run("end out of range", func(t *testing.T) {
		_, err := astar.Search(good, 0, 4)
		mustErrIs(t, err, astar.ErrVertexOutOfRange)
	})

	t.Run("negative entry", func(t *testing.T) {
		m := mustDense(t, [][]float64{
			{0, -1},
			{1, 0},
		})
		_, err := astar.Search(m, 0, 1)
		mustErrIs(t, err, matrix.ErrNegativeWeight)
	})

	t.Run("NaN entry", func(t *testing.T) {
		m := mustDense(t, [][]float64{
			{0, math.NaN()},
			{1, 0},
		})
		_, err := astar.Search(m, 0, 1)
		mustErrIs(t, err, matrix.ErrNaNValue)
	})

	t.Run("bad iteration limit", func(t *testing.T) {
		_, err := astar.Search(good, 0, 3, astar.WithMaxIterations(0))
		mustErrIs(t, err, astar.ErrBadIterationLimit)
	})

	t.Run("negative queue cap", func(t *testing.T) {
		_, err := astar.Search(good, 0, 3, astar.WithMaxQueueSize(-1))
		mustErrIs(t, err, astar.ErrBadQueueCapacity)
	})

	t.Run("bad prune target", func(t *testing.T) {
		_, err := astar.Search(good, 0, 3,
			astar.WithMaxQueueSize(8), astar.WithPruneTarget(1.5))
		mustErrIs(t, err, astar.ErrBadQueueCapacity)
	})

	t.Run("unknown heuristic", func(t *testing.T) {
		_, err := astar.Search(good, 0, 3, astar.WithHeuristic(astar.HeuristicAlgo(42)))
		mustErrIs(t, err, astar.ErrUnknownHeuristic)
	})
}

// ---------------------------
// 2) Canonical scenario.
// ---------------------------

func TestSearch_DiamondScenario(t *testing.T) {
	res, err := astar.Search(diamond(t), 0, 3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !res.Found() {
		t.Fatal("expected a path")
	}
	if res.Cost != 3 {
		t.Fatalf("cost=%v, want 3", res.Cost)
	}
	if !equalPath(res.Path, []int{0, 1, 2, 3}) {
		t.Fatalf("path=%v, want [0 1 2 3]", res.Path)
	}
	if res.Termination != astar.TerminatedExhausted {
		t.Fatalf("termination=%v, want exhausted", res.Termination)
	}
}

func TestSearch_DiamondScenario_AllPairs(t *testing.T) {
	res, err := astar.Search(diamond(t), 0, 3, astar.WithHeuristic(astar.AllPairs))
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Cost != 3 || !equalPath(res.Path, []int{0, 1, 2, 3}) {
		t.Fatalf("got cost=%v path=%v, want 3 / [0 1 2 3]", res.Cost, res.Path)
	}
}

// ---------------------------
// 3) Edge cases.
// ---------------------------

func TestSearch_StartEqualsEnd(t *testing.T) {
	res, err := astar.Search(diamond(t), 2, 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !equalPath(res.Path, []int{2}) {
		t.Fatalf("path=%v, want [2]", res.Path)
	}
	if res.Cost != 0 {
		t.Fatalf("cost=%v, want 0", res.Cost)
	}
	if res.Expanded != 0 {
		t.Fatalf("expanded=%d, want 0 (immediate goal test)", res.Expanded)
	}
}

func TestSearch_UnreachableEnd(t *testing.T) {
	// No finite edge enters vertex 2 from anywhere.
	m := mustDense(t, [][]float64{
		{0, 1, inf},
		{1, 0, inf},
		{inf, inf, 0},
	})
	res, err := astar.Search(m, 0, 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Found() {
		t.Fatalf("expected no path, got %v at cost %v", res.Path, res.Cost)
	}
	if len(res.Path) != 0 {
		t.Fatalf("path=%v, want empty", res.Path)
	}
	if !math.IsInf(res.Cost, 1) {
		t.Fatalf("cost=%v, want +Inf", res.Cost)
	}
	if res.Termination != astar.TerminatedExhausted {
		t.Fatal("a fully explored space must report exhaustion")
	}
}

// ---------------------------
// 4) Optimality vs. the Dijkstra oracle.
// ---------------------------

// Metric (Euclidean) instances keep both heuristics admissible: with a
// complete triangle-inequality matrix, the direct edge equals the true
// shortest remaining distance, so SingleHop never overestimates.
func TestSearch_OptimalOnMetricInstances(t *testing.T) {
	seeds := []int64{1, 17, 42, 99}
	for _, seed := range seeds {
		m, err := matrix.Random(9, matrix.WithSeed(seed))
		if err != nil {
			t.Fatalf("Random: %v", err)
		}
		wantPath, wantCost, derr := dijkstra.ShortestPath(m, 0, 8)
		if derr != nil {
			t.Fatalf("oracle: %v", derr)
		}

		for _, h := range []astar.HeuristicAlgo{astar.SingleHop, astar.AllPairs} {
			res, serr := astar.Search(m, 0, 8, astar.WithHeuristic(h))
			if serr != nil {
				t.Fatalf("seed %d heuristic %v: %v", seed, h, serr)
			}
			if res.Termination != astar.TerminatedExhausted {
				t.Fatalf("seed %d: search did not exhaust", seed)
			}
			if math.Abs(res.Cost-wantCost) > 1e-9 {
				t.Fatalf("seed %d heuristic %v: cost=%v, oracle=%v (path %v vs %v)",
					seed, h, res.Cost, wantCost, res.Path, wantPath)
			}
		}
	}
}

func TestSearch_OptimalWithMissingEdges_AllPairs(t *testing.T) {
	// Incomplete instances break SingleHop's guarantee; AllPairs stays
	// admissible and must still match the oracle exactly.
	m, err := matrix.Random(10, matrix.WithSeed(7), matrix.WithDropProb(0.35))
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	_, wantCost, derr := dijkstra.ShortestPath(m, 0, 9)
	if derr != nil {
		t.Fatalf("oracle: %v", derr)
	}

	res, serr := astar.Search(m, 0, 9, astar.WithHeuristic(astar.AllPairs))
	if serr != nil {
		t.Fatalf("Search: %v", serr)
	}
	if math.IsInf(wantCost, 1) {
		if res.Found() {
			t.Fatalf("oracle says unreachable, search found %v", res.Path)
		}

		return
	}
	if math.Abs(res.Cost-wantCost) > 1e-9 {
		t.Fatalf("cost=%v, oracle=%v", res.Cost, wantCost)
	}
}

// ---------------------------
// 5) Budget cutoff.
// ---------------------------

// uniformComplete returns an n×n matrix with every off-diagonal cost 1.
func uniformComplete(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i != j {
				rows[i][j] = 1
			}
		}
	}

	return mustDense(t, rows)
}

func TestSearch_BudgetCutoffDistinguishable(t *testing.T) {
	m := uniformComplete(t, 10)

	// Tight budget: the direct-edge goal is found on the second pop, but
	// eight sibling nodes are still queued when the cap fires.
	capped, err := astar.Search(m, 0, 9, astar.WithMaxIterations(5))
	if err != nil {
		t.Fatalf("Search (capped): %v", err)
	}
	if capped.Termination != astar.TerminatedBudget {
		t.Fatalf("termination=%v, want budget", capped.Termination)
	}
	if !capped.Found() || capped.Cost != 1 {
		t.Fatalf("capped search must still return the incumbent: cost=%v path=%v", capped.Cost, capped.Path)
	}

	// Same instance, default budget: the space drains completely.
	full, err := astar.Search(m, 0, 9)
	if err != nil {
		t.Fatalf("Search (full): %v", err)
	}
	if full.Termination != astar.TerminatedExhausted {
		t.Fatalf("termination=%v, want exhausted", full.Termination)
	}
	if full.Cost != 1 || !equalPath(full.Path, []int{0, 9}) {
		t.Fatalf("cost=%v path=%v, want 1 / [0 9]", full.Cost, full.Path)
	}
}

func TestSearch_BudgetBeforeAnySolution(t *testing.T) {
	// One iteration: the seed expands, the goal child is queued but never
	// popped. Best-effort result is "nothing yet" + budget termination.
	m := uniformComplete(t, 6)
	res, err := astar.Search(m, 0, 5, astar.WithMaxIterations(1))
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Termination != astar.TerminatedBudget {
		t.Fatalf("termination=%v, want budget", res.Termination)
	}
	if res.Found() {
		t.Fatalf("no goal was popped, yet Found: %v", res.Path)
	}
}

// ---------------------------
// 6) Bounded open list.
// ---------------------------

func TestSearch_CappedQueueStillFindsEasyGoal(t *testing.T) {
	m, err := matrix.Random(12, matrix.WithSeed(2))
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	res, serr := astar.Search(m, 0, 11,
		astar.WithMaxQueueSize(64), astar.WithPruneTarget(0.5))
	if serr != nil {
		t.Fatalf("Search: %v", serr)
	}
	// A capped search is best-effort: it must terminate cleanly and, on a
	// complete metric instance, at least the direct edge must survive.
	if !res.Found() {
		t.Fatal("capped search lost every candidate on a complete instance")
	}
	direct, _ := m.At(0, 11)
	if res.Cost > direct+1e-9 {
		t.Fatalf("cost=%v worse than the direct edge %v", res.Cost, direct)
	}
}

func TestSearch_ExpandedCounter(t *testing.T) {
	res, err := astar.Search(diamond(t), 0, 3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Expanded == 0 {
		t.Fatal("a multi-hop search must expand at least the seed")
	}
}
