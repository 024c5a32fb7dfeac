package astar

// Default knobs. DefaultMaxIterations matches the reference budget the
// engine was tuned with; the queue starts small and doubles on demand.
const (
	// DefaultMaxIterations bounds the number of open-list pops per search.
	DefaultMaxIterations = 150_000

	// DefaultQueueCapacity is the initial open-list backing capacity.
	DefaultQueueCapacity = 1024

	// DefaultPruneTarget is the fraction of MaxQueueSize kept when a
	// capped open list overflows (best nodes survive).
	DefaultPruneTarget = 0.5
)

// Options configures one Search invocation.
//
//   - MaxIterations: hard cap on open-list pops; must be > 0.
//   - InitialQueueCapacity: starting backing capacity of the open list; > 0.
//   - MaxQueueSize: 0 disables the cap (default); when > 0 the open list
//     never holds more than this many nodes — on overflow the worst nodes
//     are discarded down to PruneTarget·MaxQueueSize. A capped search can
//     discard the node leading to the optimum: the cap trades completeness
//     for bounded memory.
//   - PruneTarget: survivor fraction in (0, 1] for the cap policy.
//   - Heuristic: SingleHop (default) or AllPairs.
type Options struct {
	MaxIterations        int
	InitialQueueCapacity int
	MaxQueueSize         int
	PruneTarget          float64
	Heuristic            HeuristicAlgo
}

// Option is a functional option for Search.
type Option func(*Options)

// WithMaxIterations sets the iteration budget (pops of the open list).
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithQueueCapacity sets the initial open-list backing capacity.
func WithQueueCapacity(n int) Option {
	return func(o *Options) { o.InitialQueueCapacity = n }
}

// WithMaxQueueSize enables the bounded open-list policy: the queue never
// holds more than max nodes; on overflow the worst nodes are dropped.
// Pass 0 to disable the cap.
func WithMaxQueueSize(max int) Option {
	return func(o *Options) { o.MaxQueueSize = max }
}

// WithPruneTarget sets the survivor fraction used when a capped open
// list overflows. Only meaningful together with WithMaxQueueSize.
func WithPruneTarget(frac float64) Option {
	return func(o *Options) { o.PruneTarget = frac }
}

// WithHeuristic selects the h estimator.
func WithHeuristic(algo HeuristicAlgo) Option {
	return func(o *Options) { o.Heuristic = algo }
}

// DefaultOptions returns the baseline configuration used by Search when
// no options are supplied.
func DefaultOptions() Options {
	return Options{
		MaxIterations:        DefaultMaxIterations,
		InitialQueueCapacity: DefaultQueueCapacity,
		MaxQueueSize:         0,
		PruneTarget:          DefaultPruneTarget,
		Heuristic:            SingleHop,
	}
}

// validateOptions checks internal consistency of Options without touching
// the matrix. Only sentinel errors; no panics.
//
// Complexity: O(1).
func validateOptions(o Options) error {
	if o.MaxIterations <= 0 {
		return ErrBadIterationLimit
	}
	if o.InitialQueueCapacity <= 0 {
		return ErrBadQueueCapacity
	}
	if o.MaxQueueSize < 0 {
		return ErrBadQueueCapacity
	}
	if o.MaxQueueSize > 0 && (o.PruneTarget <= 0 || o.PruneTarget > 1) {
		return ErrBadQueueCapacity
	}
	switch o.Heuristic {
	case SingleHop, AllPairs:
		// known
	default:
		return ErrUnknownHeuristic
	}

	return nil
}
