package mincost

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvlflow/core"
)

// Sentinel errors for min-cost flow execution.
var (
	// ErrNilNetwork is returned when a nil network pointer is passed.
	ErrNilNetwork = errors.New("mincost: network is nil")

	// ErrSourceNotFound is returned when the source index is out of range.
	ErrSourceNotFound = errors.New("mincost: source node out of range")

	// ErrSinkNotFound is returned when the sink index is out of range.
	ErrSinkNotFound = errors.New("mincost: sink node out of range")

	// ErrNegativeCycle is returned when a negative-cost cycle reachable
	// from the source exists in the residual graph. Successive shortest
	// paths assumes no such cycle; the flow and cost accumulated before
	// detection are returned alongside the error.
	ErrNegativeCycle = errors.New("mincost: negative-cost cycle in residual graph")
)

// Options configures MinCostMaxFlow.
//   - Ctx: cancellation / deadline, checked once per augmentation round.
//   - Verbose: if true, print each augmentation via fmt.Printf.
type Options struct {
	Ctx     context.Context
	Verbose bool
}

// DefaultOptions returns production-safe defaults: background context,
// no logging.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// normalize fills in defaults so the zero Options value is usable.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}

// validate checks the solver preconditions.
func validate(n *core.Network, source, sink int) error {
	if n == nil {
		return ErrNilNetwork
	}
	if source < 0 || source >= n.Order() {
		return ErrSourceNotFound
	}
	if sink < 0 || sink >= n.Order() {
		return ErrSinkNotFound
	}
	return nil
}
