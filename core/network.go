package core

// Network is a flow network over a fixed set of nodes 0..Order()-1.
//
// Arcs live in a dense slice as reciprocal pairs (see package doc); adj holds,
// per node, the indices of all arcs leaving it, and pairIndex maps an ordered
// endpoint pair to its forward arc so repeated AddEdge calls accumulate
// capacity instead of growing the arena.
type Network struct {
	nodes     int
	arcs      []arc
	adj       [][]int
	pairIndex map[[2]int]int
}

// NewNetwork creates an empty flow network with the given number of nodes.
// Returns ErrInvalidNodeCount if nodes ≤ 0.
// Complexity: O(nodes).
func NewNetwork(nodes int) (*Network, error) {
	if nodes <= 0 {
		return nil, ErrInvalidNodeCount
	}
	return &Network{
		nodes:     nodes,
		adj:       make([][]int, nodes),
		pairIndex: make(map[[2]int]int),
	}, nil
}

// Order returns the number of nodes in the network.
func (n *Network) Order() int { return n.nodes }

// ArcCount returns the total number of stored arcs, reverse arcs included.
func (n *Network) ArcCount() int { return len(n.arcs) }

// AddEdge registers a directed edge from→to with the given capacity and an
// optional per-unit cost (WithCost). Calling AddEdge again for the same
// ordered pair accumulates capacity on the existing arc pair; the cost is
// overwritten by the last call that supplies one.
//
// Steps:
//  1. Validate endpoints and capacity (O(1)).
//  2. If the ordered pair already has a forward arc, accumulate capacity and
//     update cost in place.
//  3. Otherwise append a reciprocal arc pair: forward (cap, cost) at index i,
//     reverse (0, -cost) at index i^1, and register both in the endpoints'
//     adjacency so residual arcs are traversable in either direction.
//
// Complexity: O(1) amortized.
func (n *Network) AddEdge(from, to int, capacity int64, opts ...EdgeOption) error {
	if from < 0 || from >= n.nodes || to < 0 || to >= n.nodes {
		return ErrNodeOutOfRange
	}
	if from == to {
		return ErrSelfLoop
	}
	if capacity < 0 {
		return ErrNegativeCapacity
	}

	var cfg edgeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if i, ok := n.pairIndex[[2]int{from, to}]; ok {
		n.arcs[i].cap += capacity
		if cfg.costSet {
			n.arcs[i].cost = cfg.cost
			n.arcs[i^1].cost = -cfg.cost
		}
		return nil
	}

	i := len(n.arcs)
	n.arcs = append(n.arcs,
		arc{to: to, cap: capacity, cost: cfg.cost},
		arc{to: from, cap: 0, cost: -cfg.cost},
	)
	n.adj[from] = append(n.adj[from], i)
	n.adj[to] = append(n.adj[to], i^1)
	n.pairIndex[[2]int{from, to}] = i

	return nil
}

// Arcs returns the indices of all arcs leaving u, forward and reverse alike,
// in insertion order. The returned slice is owned by the network and must not
// be modified. Out-of-range u yields nil.
func (n *Network) Arcs(u int) []int {
	if u < 0 || u >= n.nodes {
		return nil
	}
	return n.adj[u]
}

// ArcTo returns the head node of arc i.
func (n *Network) ArcTo(i int) int { return n.arcs[i].to }

// ArcFrom returns the tail node of arc i (the head of its reverse arc).
func (n *Network) ArcFrom(i int) int { return n.arcs[i^1].to }

// Reverse returns the index of the reciprocal of arc i.
func (n *Network) Reverse(i int) int { return i ^ 1 }

// ArcResidual returns the residual capacity of arc i: capacity minus flow.
// Never negative while the flow invariants hold.
func (n *Network) ArcResidual(i int) int64 { return n.arcs[i].cap - n.arcs[i].flow }

// ArcCost returns the per-unit cost of arc i; reverse arcs carry the negated
// cost of their forward partner.
func (n *Network) ArcCost(i int) int64 { return n.arcs[i].cost }

// Augment routes delta units of flow along arc i, keeping the pair
// antisymmetric: flow(i) grows by delta and flow(i^1) shrinks by delta.
// Callers must ensure delta ≤ ArcResidual(i) or the residual invariant breaks.
func (n *Network) Augment(i int, delta int64) {
	n.arcs[i].flow += delta
	n.arcs[i^1].flow -= delta
}

// Capacity returns the accumulated capacity of the ordered pair u→v,
// or 0 when no such edge was added.
func (n *Network) Capacity(u, v int) int64 {
	if i, ok := n.pairIndex[[2]int{u, v}]; ok {
		return n.arcs[i].cap
	}
	return 0
}

// Cost returns the per-unit cost of the ordered pair u→v, or 0 when no such
// edge was added.
func (n *Network) Cost(u, v int) int64 {
	if i, ok := n.pairIndex[[2]int{u, v}]; ok {
		return n.arcs[i].cost
	}
	return 0
}

// Flow returns the signed flow routed from u to v, summed over the arc pairs
// touching the ordered pair. Antisymmetry holds: Flow(u,v) == -Flow(v,u).
func (n *Network) Flow(u, v int) int64 {
	var f int64
	if i, ok := n.pairIndex[[2]int{u, v}]; ok {
		f += n.arcs[i].flow
	}
	// Flow pushed back along the reverse arc of an antiparallel edge v→u
	// also counts as u→v flow.
	if j, ok := n.pairIndex[[2]int{v, u}]; ok {
		f += n.arcs[j^1].flow
	}
	return f
}

// Residual returns the residual capacity from u to v: Capacity(u,v) minus
// Flow(u,v). Never negative while the flow invariants hold.
func (n *Network) Residual(u, v int) int64 {
	return n.Capacity(u, v) - n.Flow(u, v)
}

// Edges returns a snapshot of all forward arcs in insertion order, exposing
// the per-arc flow assignment. O(E) allocation per call.
func (n *Network) Edges() []Edge {
	edges := make([]Edge, 0, len(n.arcs)/2)
	for u := 0; u < n.nodes; u++ {
		for _, i := range n.adj[u] {
			if i%2 != 0 {
				continue // reverse arcs are bookkeeping, not edges
			}
			a := n.arcs[i]
			edges = append(edges, Edge{From: u, To: a.to, Capacity: a.cap, Cost: a.cost, Flow: a.flow})
		}
	}
	return edges
}

// Clone returns a deep, independent copy of the network, flow state included.
// Run each algorithm of a comparison on its own clone: every solver mutates
// the network it is given.
// Complexity: O(V + E).
func (n *Network) Clone() *Network {
	c := &Network{
		nodes:     n.nodes,
		arcs:      append([]arc(nil), n.arcs...),
		adj:       make([][]int, n.nodes),
		pairIndex: make(map[[2]int]int, len(n.pairIndex)),
	}
	for u, list := range n.adj {
		c.adj[u] = append([]int(nil), list...)
	}
	for k, v := range n.pairIndex {
		c.pairIndex[k] = v
	}
	return c
}

// Reset zeroes all flow, restoring every arc to its initial residual
// capacity. The topology, capacities, and costs are untouched.
func (n *Network) Reset() {
	for i := range n.arcs {
		n.arcs[i].flow = 0
	}
}
