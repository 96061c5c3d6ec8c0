// Package core defines the FlowNetwork data model shared by every flow
// algorithm in lvlflow: a fixed-size arena of nodes plus an explicit arc list,
// with capacity, cost, and flow bookkeeping and residual-capacity queries.
//
// # Representation
//
// A Network is created with a fixed node count; nodes are identified by the
// integer indices 0..Order()-1. Arcs are stored in a dense slice and created
// in reciprocal pairs: for every forward arc at index i (capacity c, cost w)
// its reverse arc lives at index i^1 (capacity 0, cost -w). Each node holds
// the indices of all arcs leaving it, forward and reverse alike, so residual
// arcs are traversable in both directions without hashing.
//
// Flow is antisymmetric by construction: augmenting arc i by Δ adds Δ to its
// flow and subtracts Δ from the flow of arc i^1, so Flow(u,v) == -Flow(v,u)
// holds after every augmentation. The residual capacity of an arc is its
// capacity minus its flow and is never negative while the invariant holds.
//
// # Usage
//
//	n, err := core.NewNetwork(4)
//	if err != nil { ... }
//	_ = n.AddEdge(0, 1, 10, core.WithCost(2))
//	_ = n.AddEdge(1, 3, 10, core.WithCost(1))
//
// Repeated AddEdge calls between the same ordered pair accumulate capacity;
// the cost of the pair is the last one written.
//
// # Ownership
//
// A Network is not safe for concurrent use. Every solver in lvlflow mutates
// the network's flow state in place and assumes exclusive ownership for the
// duration of the call; to compare algorithms on the same topology, run each
// on its own Clone().
//
// # Errors
//
//	ErrInvalidNodeCount - NewNetwork called with a non-positive node count.
//	ErrNodeOutOfRange   - an endpoint is outside [0, Order()).
//	ErrNegativeCapacity - AddEdge called with capacity < 0.
//	ErrSelfLoop         - AddEdge called with identical endpoints.
package core
