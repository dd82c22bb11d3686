// Package entitlement answers whether premium card artwork is unlocked.
package entitlement

import "context"

// Source reports whether the premium entitlement is held.
type Source interface {
	Unlocked(ctx context.Context) (bool, error)
}

// Static is a fixed answer, typically the premium key of the config file.
type Static bool

func (s Static) Unlocked(context.Context) (bool, error) {
	return bool(s), nil
}

// Func adapts a function to Source.
type Func func(ctx context.Context) (bool, error)

func (f Func) Unlocked(ctx context.Context) (bool, error) {
	return f(ctx)
}
