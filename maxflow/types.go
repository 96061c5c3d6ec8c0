package maxflow

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvlflow/core"
)

// Sentinel errors for max-flow execution.
var (
	// ErrNilNetwork is returned when a nil network pointer is passed.
	ErrNilNetwork = errors.New("maxflow: network is nil")

	// ErrSourceNotFound is returned when the source index is out of range.
	ErrSourceNotFound = errors.New("maxflow: source node out of range")

	// ErrSinkNotFound is returned when the sink index is out of range.
	ErrSinkNotFound = errors.New("maxflow: sink node out of range")

	// ErrAugmentationLimit is returned when MaxAugmentations is reached
	// before the augmenting paths are exhausted. The flow accumulated so
	// far is returned alongside it.
	ErrAugmentationLimit = errors.New("maxflow: augmentation limit reached")
)

// Options configures all max-flow solvers.
//   - Ctx: cancellation / deadline, checked once per outer iteration.
//   - Verbose: if true, print each augmentation via fmt.Printf.
//   - MaxAugmentations: if > 0, abort with ErrAugmentationLimit once this
//     many augmentations have been applied (ignored by PushRelabel, which
//     does not augment along paths).
type Options struct {
	Ctx              context.Context
	Verbose          bool
	MaxAugmentations int
}

// DefaultOptions returns production-safe defaults: background context,
// no logging, no augmentation cap.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// normalize fills in defaults so the zero Options value is usable.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}

// validate checks the shared preconditions of every solver.
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
