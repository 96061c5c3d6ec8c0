package mincost

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlflow/core"
)

const unreachable = int64(math.MaxInt64)

// MinCostMaxFlow computes a maximum flow of minimum total cost from source to
// sink using successive shortest paths with Bellman-Ford.
//
// It returns the total flow value, the total routing cost (Σ over arcs of
// flow × per-unit cost), and an error. The network's flow state is mutated in
// place; run on a Clone() to preserve the original.
//
// Steps:
//  1. Normalize options and validate endpoints (O(1)); source == sink
//     returns zero flow and zero cost immediately.
//  2. Repeat:
//     a. Check opts.Ctx for cancellation.
//     b. Bellman-Ford from source over positive-residual arcs, recording
//     the parent arc of each node (O(V · E)).
//     c. One extra relaxation round: an arc that still relaxes from a
//     reached node proves a negative-cost residual cycle — abort with
//     ErrNegativeCycle.
//     d. If the sink is unreachable, stop: the flow is maximum.
//     e. Walk the parent arcs for the bottleneck, augment the path, and
//     add bottleneck × dist[sink] to the total cost.
//
// Complexity:
//
//	Time:   O(F · V · E) where F is the number of augmentation rounds.
//	Memory: O(V) for distances and parent arcs.
func MinCostMaxFlow(n *core.Network, source, sink int, opts Options) (int64, int64, error) {
	opts.normalize()
	if err := validate(n, source, sink); err != nil {
		return 0, 0, err
	}
	if source == sink {
		return 0, 0, nil
	}

	var (
		maxFlow   int64
		totalCost int64
		order     = n.Order()
		dist      = make([]int64, order)
		parent    = make([]int, order) // arc that last relaxed each node
	)

	for {
		if err := opts.Ctx.Err(); err != nil {
			return maxFlow, totalCost, err
		}

		for i := range dist {
			dist[i] = unreachable
			parent[i] = -1
		}
		dist[source] = 0

		// relax every residual arc up to V-1 times; stop early at fixpoint
		for round := 0; round < order-1; round++ {
			changed := false
			for u := 0; u < order; u++ {
				if dist[u] == unreachable {
					continue
				}
				for _, id := range n.Arcs(u) {
					if n.ArcResidual(id) <= 0 {
						continue
					}
					v := n.ArcTo(id)
					if d := dist[u] + n.ArcCost(id); d < dist[v] {
						dist[v] = d
						parent[v] = id
						changed = true
					}
				}
			}
			if !changed {
				break
			}
		}

		// a residual arc that still relaxes witnesses a negative cycle
		for u := 0; u < order; u++ {
			if dist[u] == unreachable {
				continue
			}
			for _, id := range n.Arcs(u) {
				if n.ArcResidual(id) <= 0 {
					continue
				}
				if dist[u]+n.ArcCost(id) < dist[n.ArcTo(id)] {
					return maxFlow, totalCost, ErrNegativeCycle
				}
			}
		}

		if dist[sink] == unreachable {
			break
		}

		bottleneck := int64(math.MaxInt64)
		for v := sink; v != source; v = n.ArcFrom(parent[v]) {
			if r := n.ArcResidual(parent[v]); r < bottleneck {
				bottleneck = r
			}
		}
		for v := sink; v != source; v = n.ArcFrom(parent[v]) {
			n.Augment(parent[v], bottleneck)
		}
		maxFlow += bottleneck
		totalCost += bottleneck * dist[sink]

		if opts.Verbose {
			fmt.Printf("mincost: augmented %d at path cost %d, flow %d, cost %d\n",
				bottleneck, dist[sink], maxFlow, totalCost)
		}
	}

	return maxFlow, totalCost, nil
}
