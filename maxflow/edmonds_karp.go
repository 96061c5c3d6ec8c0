package maxflow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlflow/core"
)

// EdmondsKarp computes the maximum flow from source to sink using the
// Edmonds–Karp algorithm: Ford–Fulkerson with breadth-first search, so every
// augmenting path is a shortest (fewest-edge) one. This bounds the number of
// augmentations by O(V·E) regardless of the capacity values.
//
// The network's flow state is mutated in place; run on a Clone() to preserve
// the original.
//
// Steps:
//  1. Normalize options and validate endpoints (O(1)); source == sink
//     returns zero flow immediately.
//  2. Repeat until the sink is unreachable in the residual graph:
//     a. Check opts.Ctx for cancellation.
//     b. BFS from source over positive-residual arcs, tracking the parent
//     arc of each discovered node; stop as soon as the sink is found (O(E)).
//     c. Walk the parent arcs for the bottleneck and augment the path.
//
// Complexity:
//
//	Time:   O(V · E²).
//	Memory: O(V) for the queue, visited marks, and parent arcs.
func EdmondsKarp(n *core.Network, source, sink int, opts Options) (int64, error) {
	opts.normalize()
	if err := validate(n, source, sink); err != nil {
		return 0, err
	}
	if source == sink {
		return 0, nil
	}

	var (
		maxFlow       int64
		augmentations int
		order         = n.Order()
		visited       = make([]bool, order)
		parent        = make([]int, order) // arc that first reached each node
		queue         = make([]int, 0, order)
	)

	for {
		if err := opts.Ctx.Err(); err != nil {
			return maxFlow, err
		}

		for i := range visited {
			visited[i] = false
		}
		queue = append(queue[:0], source)
		visited[source] = true
		found := false

		for head := 0; head < len(queue) && !found; head++ {
			u := queue[head]
			for _, id := range n.Arcs(u) {
				v := n.ArcTo(id)
				if visited[v] || n.ArcResidual(id) <= 0 {
					continue
				}
				visited[v] = true
				parent[v] = id
				if v == sink {
					found = true
					break
				}
				queue = append(queue, v)
			}
		}

		if !found {
			break
		}
		if opts.MaxAugmentations > 0 && augmentations >= opts.MaxAugmentations {
			return maxFlow, ErrAugmentationLimit
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
		augmentations++

		if opts.Verbose {
			fmt.Printf("edmonds-karp: augmented %d, total %d\n", bottleneck, maxFlow)
		}
	}

	return maxFlow, nil
}
