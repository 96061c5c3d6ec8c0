// Package mincost implements minimum-cost maximum flow over a *core.Network
// via successive shortest paths.
//
// Each round runs Bellman-Ford over the residual graph — forward arcs weigh
// their per-unit cost, reverse residual arcs weigh the negated cost — to find
// the cheapest source→sink path, then augments the path's bottleneck along it
// and accumulates bottleneck × path-cost. The algorithm stops when the sink
// becomes unreachable; the result is a maximum flow of minimum total cost.
//
// Bellman-Ford is required rather than Dijkstra because reverse residual arcs
// introduce negative edge weights. Negative-cost *cycles* in the residual
// graph are outside the successive-shortest-path model: they are detected
// with one extra relaxation round, and a cycle reachable from the source
// aborts the run with ErrNegativeCycle rather than looping or returning an
// undefined result.
//
// # Ownership
//
// MinCostMaxFlow mutates the given network's flow state in place and assumes
// exclusive ownership for the duration of the call; run on a
// (*core.Network).Clone() to preserve the original.
//
// # Errors
//
//	ErrNilNetwork     - nil network supplied.
//	ErrSourceNotFound - source index outside [0, Order()).
//	ErrSinkNotFound   - sink index outside [0, Order()).
//	ErrNegativeCycle  - negative-cost residual cycle reachable from source.
//	context.Canceled / context.DeadlineExceeded - opts.Ctx canceled.
package mincost
