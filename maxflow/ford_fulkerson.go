package maxflow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlflow/core"
)

// FordFulkerson computes the maximum flow from source to sink using the
// Ford–Fulkerson method: repeatedly find any augmenting path by depth-first
// search and push its bottleneck along it. The search is iterative with an
// explicit stack, so recursion depth never limits the graph size.
//
// The network's flow state is mutated in place; run on a Clone() to preserve
// the original.
//
// Steps:
//  1. Normalize options and validate endpoints (O(1)); source == sink
//     returns zero flow immediately.
//  2. Repeat until no augmenting path remains:
//     a. Check opts.Ctx for cancellation.
//     b. Iterative DFS over residual arcs, recording the arc that first
//     reached each node (O(E)).
//     c. If the sink was not reached, stop.
//     d. Walk the parent arcs to find the bottleneck, then augment every
//     arc on the path by it (O(path length)).
//
// Complexity:
//
//	Time:   O(E · F) where F is the returned flow value.
//	Memory: O(V) for the stack, visited marks, arc iterators, and parents.
func FordFulkerson(n *core.Network, source, sink int, opts Options) (int64, error) {
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
		iter          = make([]int, order) // next incident arc to try per node
		parent        = make([]int, order) // arc that first reached each node
		stack         = make([]int, 0, order)
	)

	for {
		if err := opts.Ctx.Err(); err != nil {
			return maxFlow, err
		}

		// fresh search state per augmentation attempt
		for i := range visited {
			visited[i] = false
			iter[i] = 0
		}
		stack = append(stack[:0], source)
		visited[source] = true
		found := false

		for len(stack) > 0 && !found {
			u := stack[len(stack)-1]
			arcs := n.Arcs(u)
			advanced := false
			for iter[u] < len(arcs) {
				id := arcs[iter[u]]
				iter[u]++
				v := n.ArcTo(id)
				if visited[v] || n.ArcResidual(id) <= 0 {
					continue
				}
				visited[v] = true
				parent[v] = id
				if v == sink {
					found = true
				} else {
					stack = append(stack, v)
				}
				advanced = true
				break
			}
			if !advanced {
				stack = stack[:len(stack)-1] // u is exhausted, backtrack
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
			fmt.Printf("ford-fulkerson: augmented %d, total %d\n", bottleneck, maxFlow)
		}
	}

	return maxFlow, nil
}
