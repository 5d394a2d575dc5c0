package jstringify

import (
	"context"
	"fmt"
)

// An Option overrides one default of a Stringify call.
type Option func(*stringifyOpts)

type stringifyOpts struct {
	ctx      context.Context
	maxDepth int
}

func defaultOpts() stringifyOpts {
	return stringifyOpts{
		ctx:      context.Background(),
		maxDepth: defaultMaxDepth,
	}
}

func (o *stringifyOpts) apply(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
}

func (o stringifyOpts) validate() error {
	switch {
	case o.ctx == nil:
		return fmt.Errorf("nil context")
	case o.maxDepth <= 0:
		return fmt.Errorf("non-positive max depth")
	default:
		return nil
	}
}

// MaxDepth overrides the recursion-depth ceiling used by the cycle
// guard in place of a host stack-usage probe. The default is
// defaultMaxDepth.
func MaxDepth(n int) Option {
	return func(o *stringifyOpts) { o.maxDepth = n }
}

// WithContext sets the context checked for cancellation at each
// composite entry, realizing cooperative cancellation in place of a
// host stack-overflow signal. The default is context.Background.
func WithContext(ctx context.Context) Option {
	return func(o *stringifyOpts) { o.ctx = ctx }
}
