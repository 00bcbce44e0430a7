// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulq

// Options configures queue creation and entry-point selection.
type Options struct {
	// Producer/Consumer constraints (determines queue binding)
	singleProducer bool
	singleConsumer bool
}

// Builder creates queues with fluent configuration.
//
// The queues are unbounded, so there is no capacity to configure; the
// builder exists to pick the cheapest safe entry points from the declared
// access pattern.
//
// Example:
//
//	// SPSC binding (optimal for single producer/consumer)
//	q := ulq.BuildSPSC[Event](ulq.New().SingleProducer().SingleConsumer())
//
//	// MPMC (default, general purpose)
//	q := ulq.BuildMPMC[Request](ulq.New())
type Builder struct {
	opts Options
}

// New creates a queue builder.
//
// Example:
//
//	// Create builder, then configure and build
//	b := ulq.New()
//	q := ulq.BuildSPSC[int](b.SingleProducer().SingleConsumer())
//
//	// Or chain directly
//	q := ulq.BuildMPMC[int](ulq.New())
func New() *Builder {
	return &Builder{}
}

// SingleProducer declares that only one goroutine will enqueue.
// Selects the enqueue path without the head exchange (SPSC or SPMC).
func (b *Builder) SingleProducer() *Builder {
	b.opts.singleProducer = true
	return b
}

// SingleConsumer declares that only one goroutine will dequeue.
// Selects the dequeue path without the claim protocol (SPSC or MPSC).
func (b *Builder) SingleConsumer() *Builder {
	b.opts.singleConsumer = true
	return b
}

// Build creates a Queue[T] with automatic entry-point selection.
//
// Selection:
//
//	SingleProducer + SingleConsumer → SPSC binding
//	SingleConsumer only             → MPSC binding
//	SingleProducer only             → SPMC binding
//	Neither                         → List (full MPMC)
//
// All four share the one unbounded list algorithm; the bindings differ
// only in which producer/consumer fast paths they commit to.
//
// For type-safe returns with concrete types, use:
//   - BuildSPSC[T](b) → *SPSC[T]
//   - BuildMPSC[T](b) → *MPSC[T]
//   - BuildSPMC[T](b) → *SPMC[T]
//   - BuildMPMC[T](b) → *List[T]
func Build[T any](b *Builder) Queue[T] {
	switch {
	case b.opts.singleProducer && b.opts.singleConsumer:
		return NewSPSC[T]()
	case b.opts.singleProducer:
		return NewSPMC[T]()
	case b.opts.singleConsumer:
		return NewMPSC[T]()
	default:
		return NewList[T]()
	}
}

// BuildSPSC creates an SPSC queue with compile-time type safety.
// Panics if builder is not configured with SingleProducer().SingleConsumer().
func BuildSPSC[T any](b *Builder) *SPSC[T] {
	if !b.opts.singleProducer || !b.opts.singleConsumer {
		panic("ulq: BuildSPSC requires SingleProducer().SingleConsumer()")
	}
	return NewSPSC[T]()
}

// BuildMPSC creates an MPSC queue with compile-time type safety.
// Panics if builder is not configured with SingleConsumer() only.
func BuildMPSC[T any](b *Builder) *MPSC[T] {
	if b.opts.singleProducer || !b.opts.singleConsumer {
		panic("ulq: BuildMPSC requires SingleConsumer() without SingleProducer()")
	}
	return NewMPSC[T]()
}

// BuildSPMC creates an SPMC queue with compile-time type safety.
// Panics if builder is not configured with SingleProducer() only.
func BuildSPMC[T any](b *Builder) *SPMC[T] {
	if !b.opts.singleProducer || b.opts.singleConsumer {
		panic("ulq: BuildSPMC requires SingleProducer() without SingleConsumer()")
	}
	return NewSPMC[T]()
}

// BuildMPMC creates a full MPMC queue with compile-time type safety.
// Panics if builder has any constraints set.
func BuildMPMC[T any](b *Builder) *List[T] {
	if b.opts.singleProducer || b.opts.singleConsumer {
		panic("ulq: BuildMPMC requires no constraints")
	}
	return NewList[T]()
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
