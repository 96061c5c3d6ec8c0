package maxflow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlflow/core"
)

// Dinic computes the maximum flow from source to sink using Dinic's
// algorithm: build a level graph by BFS, then push blocking flows along it
// by DFS until the sink falls out of reach.
//
// The network's flow state is mutated in place; run on a Clone() to preserve
// the original.
//
// Steps:
//  1. Normalize options and validate endpoints (O(1)); source == sink
//     returns zero flow immediately.
//  2. Repeat until the sink is unreachable:
//     a. Check opts.Ctx for cancellation.
//     b. BFS over positive-residual arcs to compute level[v], the distance
//     of v from the source (O(V + E)).
//     c. DFS blocking-flow pushes that only descend one level per step,
//     with a per-node arc iterator so each arc is examined once per
//     phase (O(V · E) per phase).
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E · √V) on unit-capacity networks.
//	Memory: O(V) for levels and arc iterators.
func Dinic(n *core.Network, source, sink int, opts Options) (int64, error) {
	opts.normalize()
	if err := validate(n, source, sink); err != nil {
		return 0, err
	}
	if source == sink {
		return 0, nil
	}

	var (
		maxFlow int64
		order   = n.Order()
		level   = make([]int, order)
		iter    = make([]int, order)
		queue   = make([]int, 0, order)
	)

	for {
		if err := opts.Ctx.Err(); err != nil {
			return maxFlow, err
		}

		// phase: rebuild the level graph
		for i := range level {
			level[i] = -1
		}
		queue = append(queue[:0], source)
		level[source] = 0
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			for _, id := range n.Arcs(u) {
				v := n.ArcTo(id)
				if level[v] < 0 && n.ArcResidual(id) > 0 {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		if level[sink] < 0 {
			break
		}

		// blocking flow for this phase
		for i := range iter {
			iter[i] = 0
		}
		for {
			pushed := dinicPush(n, level, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			if opts.Verbose {
				fmt.Printf("dinic: pushed %d, total %d\n", pushed, maxFlow)
			}
		}
	}

	return maxFlow, nil
}

// dinicPush sends up to available units of flow from u toward the sink,
// descending exactly one level per arc. iter[u] remembers which arcs of u are
// already saturated or dead this phase, so each arc is visited once per
// blocking-flow computation.
func dinicPush(n *core.Network, level, iter []int, u, sink int, available int64) int64 {
	if u == sink {
		return available
	}
	arcs := n.Arcs(u)
	for ; iter[u] < len(arcs); iter[u]++ {
		id := arcs[iter[u]]
		v := n.ArcTo(id)
		r := n.ArcResidual(id)
		if r <= 0 || level[v] != level[u]+1 {
			continue
		}
		send := available
		if r < send {
			send = r
		}
		if pushed := dinicPush(n, level, iter, v, sink, send); pushed > 0 {
			n.Augment(id, pushed)
			return pushed
		}
	}
	return 0
}
