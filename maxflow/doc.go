// Package maxflow implements maximum-flow algorithms over a *core.Network:
// two interchangeable augmenting-path strategies and two further methods.
//
// The algorithms offered are:
//
//   - FordFulkerson
//
//   - Method: depth-first search (iterative, explicit stack) for any
//     augmenting path.
//
//   - Time:   O(E · F), where F is the total flow pushed; the number of
//     augmentations is capacity-dependent on pathological integer inputs.
//
//   - Memory: O(V) for the stack, visited marks, and parent arcs.
//
//   - EdmondsKarp
//
//   - Method: breadth-first search for the shortest (fewest-edge)
//     augmenting path each round.
//
//   - Time:   O(V · E²) — O(V·E) augmentations of O(E) each.
//
//   - Memory: O(V) for the queue and parent arcs.
//
//   - PushRelabel
//
//   - Method: FIFO preflow — saturate the source, then discharge active
//     nodes from a FIFO queue, pushing along admissible arcs
//     (residual > 0 and height[u] == height[v]+1) and relabeling when
//     no admissible arc remains.
//
//   - Time:   O(V³).
//
//   - Memory: O(V) for heights, excess, and the active queue.
//
//   - Dinic
//
//   - Method: level graph construction + blocking flow.
//
//   - Time:   O(E · √V) on unit-capacity networks, O(V²·E) in general.
//
//   - Memory: O(V) for levels and arc iterators.
//
// All four return the identical maximum flow value for the same network and
// (source, sink) pair — this cross-algorithm agreement is the primary
// correctness property and is exercised directly by the test suite.
//
// # Ownership
//
// Every solver mutates the given network's flow state in place and assumes
// exclusive ownership for the duration of the call. To compare algorithms on
// one topology, run each on its own (*core.Network).Clone(). Re-running a
// solver on a network already at maximum flow adds zero flow.
//
// # Options
//
// Options configures all solvers; the zero value is usable and
// DefaultOptions() spells out the defaults:
//
//	opts := maxflow.DefaultOptions()
//	// opts.Ctx = context.Background()
//	// opts.Verbose = false
//	// opts.MaxAugmentations = 0 (unlimited)
//
// # Errors
//
//	ErrNilNetwork        - nil network supplied.
//	ErrSourceNotFound    - source index outside [0, Order()).
//	ErrSinkNotFound      - sink index outside [0, Order()).
//	ErrAugmentationLimit - MaxAugmentations reached before exhaustion.
//	context.Canceled / context.DeadlineExceeded - opts.Ctx canceled.
//
// A source equal to the sink is not an error: the defined behavior is zero
// flow and immediate return. Exhausting augmenting paths is the normal
// termination signal, not a failure.
package maxflow
