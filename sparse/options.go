// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for Matrix.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No global state.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Options never change what a Matrix stores, only how it is stored,
//     copied and traced.
package sparse

import (
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCapacityHint is the initial capacity of every newly created
	// storage-node map.
	DefaultCapacityHint = 8

	// DefaultValueCloning makes Clone deep-copy values that implement Cloner.
	DefaultValueCloning = true
)

// ---------- Internal panic messages ----------

const (
	panicNilLogger       = "sparse: WithLogger: logger must be non-nil"
	panicCapacityInvalid = "sparse: WithCapacityHint: hint must be in [1, MaxUint32]"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	logger       *slog.Logger // structural trace: node creation and pruning
	capHint      int          // initial map capacity per node
	valueCloning bool         // Clone uses Cloner[T] when implemented
	resolved     bool         // set by gatherOptions; false on a zero Matrix
}

// WithLogger routes debug traces of node creation and pruning to l.
// Panics if l is nil.
// Complexity: O(1).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithCapacityHint sets the initial capacity of every storage-node map
// created by writes. Larger hints trade memory for fewer rehashes on dense
// branches. Panics if n is not in [1, MaxUint32].
// Complexity: O(1).
func WithCapacityHint(n int) Option {
	if n <= 0 || uint64(n) > math.MaxUint32 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capHint = n }
}

// WithValueCloning toggles deep copying of Cloner values in Clone.
// When disabled, Clone copies values by assignment.
func WithValueCloning(on bool) Option {
	return func(o *Options) { o.valueCloning = on }
}

// NewOptions resolves opts on top of the defaults.
// Useful to inspect the effective configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Logger returns the effective logger.
func (o Options) Logger() *slog.Logger { return o.logger }

// CapacityHint returns the effective per-node capacity hint.
func (o Options) CapacityHint() int { return o.capHint }

// ValueCloning reports whether Clone deep-copies Cloner values.
func (o Options) ValueCloning() bool { return o.valueCloning }

// gatherOptions applies user-provided setters on top of defaults.
// Last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		logger:       slog.New(slog.DiscardHandler),
		capHint:      DefaultCapacityHint,
		valueCloning: DefaultValueCloning,
	}
	for _, set := range user {
		set(&o)
	}
	o.resolved = true

	return o
}
