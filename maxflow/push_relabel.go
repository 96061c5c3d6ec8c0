package maxflow

import (
	"fmt"

	"github.com/katalvlaran/lvlflow/core"
)

// PushRelabel computes the maximum flow from source to sink using the FIFO
// preflow-push algorithm. Instead of augmenting whole paths it maintains a
// preflow — nodes may temporarily hold excess — and moves that excess
// "downhill" along a height labeling until only the sink retains any.
//
// The network's flow state is mutated in place; run on a Clone() to preserve
// the original.
//
// Steps:
//  1. Normalize options and validate endpoints (O(1)); source == sink
//     returns zero flow immediately.
//  2. Initialize: height[source] = V, every other height 0; saturate each
//     positive-capacity arc out of the source and enqueue its head.
//  3. FIFO discharge loop: dequeue an active node u (never source or sink)
//     and, while u holds excess, push min(excess, residual) along the
//     current admissible arc (residual > 0 and height[u] == height[v]+1),
//     enqueueing nodes that become active. When u's arcs are exhausted,
//     relabel: height[u] = 1 + min height over positive-residual arcs, and
//     restart u's arc scan. Heights only ever grow.
//  4. When the queue drains, the preflow is a maximum flow; its value is
//     -excess[source], the flow that left the source and never came back.
//
// Complexity:
//
//	Time:   O(V³) for the FIFO variant.
//	Memory: O(V) for heights, excess, current-arc pointers, and the queue.
func PushRelabel(n *core.Network, source, sink int, opts Options) (int64, error) {
	opts.normalize()
	if err := validate(n, source, sink); err != nil {
		return 0, err
	}
	if source == sink {
		return 0, nil
	}

	var (
		order   = n.Order()
		height  = make([]int, order)
		excess  = make([]int64, order)
		current = make([]int, order) // per-node current-arc pointer
		active  = make([]int, 0, order)
		queued  = make([]bool, order)
	)
	height[source] = order

	// enqueue marks v active unless it is the source, the sink, or already
	// waiting in the FIFO queue.
	enqueue := func(v int) {
		if v != source && v != sink && !queued[v] && excess[v] > 0 {
			active = append(active, v)
			queued[v] = true
		}
	}

	// saturating push out of the source establishes the initial preflow
	for _, id := range n.Arcs(source) {
		delta := n.ArcResidual(id)
		if delta <= 0 {
			continue
		}
		v := n.ArcTo(id)
		n.Augment(id, delta)
		excess[source] -= delta
		excess[v] += delta
		enqueue(v)
	}

	for len(active) > 0 {
		if err := opts.Ctx.Err(); err != nil {
			return -excess[source], err
		}

		u := active[0]
		active = active[1:]
		queued[u] = false

		// discharge u completely before moving on (FIFO variant)
		arcs := n.Arcs(u)
		for excess[u] > 0 {
			if current[u] == len(arcs) {
				// relabel: lift u just above its lowest residual neighbor
				minHeight := -1
				for _, id := range arcs {
					if n.ArcResidual(id) <= 0 {
						continue
					}
					if h := height[n.ArcTo(id)]; minHeight < 0 || h < minHeight {
						minHeight = h
					}
				}
				if minHeight < 0 {
					break // no residual arc leaves u; excess is stranded
				}
				height[u] = minHeight + 1
				current[u] = 0
				if opts.Verbose {
					fmt.Printf("push-relabel: relabel %d to height %d\n", u, height[u])
				}
				continue
			}

			id := arcs[current[u]]
			v := n.ArcTo(id)
			if r := n.ArcResidual(id); r > 0 && height[u] == height[v]+1 {
				delta := excess[u]
				if r < delta {
					delta = r
				}
				n.Augment(id, delta)
				excess[u] -= delta
				excess[v] += delta
				enqueue(v)
				if opts.Verbose {
					fmt.Printf("push-relabel: push %d from %d to %d\n", delta, u, v)
				}
			} else {
				current[u]++
			}
		}
	}

	return -excess[source], nil
}
