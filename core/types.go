package core

import "errors"

// Sentinel errors for network construction.
var (
	// ErrInvalidNodeCount indicates NewNetwork was called with count ≤ 0.
	ErrInvalidNodeCount = errors.New("core: node count must be positive")

	// ErrNodeOutOfRange indicates an endpoint outside [0, Order()).
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrNegativeCapacity indicates AddEdge was called with capacity < 0.
	ErrNegativeCapacity = errors.New("core: negative edge capacity")

	// ErrSelfLoop indicates AddEdge was called with from == to.
	// A self-loop can never lie on an augmenting path.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// arc is one direction of a reciprocal arc pair. The reverse of the arc at
// index i is the arc at index i^1: forward arcs carry the accumulated
// capacity and the user-supplied cost, reverse arcs carry capacity 0 and the
// negated cost. flow on the two arcs of a pair always sums to zero.
type arc struct {
	to   int   // head node of this arc
	cap  int64 // accumulated capacity (0 on reverse arcs)
	cost int64 // per-unit routing cost (negated on reverse arcs)
	flow int64 // signed flow; flow(i) == -flow(i^1)
}

// Edge is the public, read-only view of one forward arc, exposed by
// (*Network).Edges for per-arc flow inspection.
type Edge struct {
	// From and To are the arc's endpoints.
	From, To int

	// Capacity is the total accumulated capacity From→To.
	Capacity int64

	// Cost is the per-unit routing cost (last write wins).
	Cost int64

	// Flow is the signed flow currently routed on the arc.
	Flow int64
}

// EdgeOption configures properties of an individual edge when added.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	cost    int64
	costSet bool
}

// WithCost sets the per-unit routing cost of the edge. Only Min-Cost Flow
// consults costs; when omitted the cost is zero. If the same ordered pair is
// added more than once, the last written cost wins.
func WithCost(cost int64) EdgeOption {
	return func(c *edgeConfig) {
		c.cost = cost
		c.costSet = true
	}
}
