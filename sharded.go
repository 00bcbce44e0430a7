// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulq

import "code.hybscloud.com/atomix"

// shard pads a List so that adjacent shards never share a cache line.
type shard[T any] struct {
	List[T]
	_ pad
}

// Sharded is a fixed fan-out of independent List queues with adaptive
// routing.
//
// Producers are spread round-robin across the shards: each [Producer]
// handle is bound to one shard at creation and keeps it for its lifetime.
// Consumers scan the shards in a per-handle "hit list" order that moves
// the shard of the last successful dequeue to the front, so under skewed
// or bursty traffic the common case is a single shard check instead of a
// full scan.
//
// Ordering: FIFO per shard only. There is no ordering guarantee across
// shards.
//
// Per-goroutine routing state lives in the [Producer] and [Consumer]
// handles, not in the Sharded queue itself. Obtain one handle per
// goroutine; handles are never synchronized. For application-level
// sharding keys, address a shard directly through At.
type Sharded[T any] struct {
	next      atomix.Uint64 // Producer affinity counter
	_         pad
	subqueues []shard[T]
}

// NewSharded creates a sharded queue with a fixed number of shards.
// The shard count never changes after construction. Panics if shards < 1.
func NewSharded[T any](shards int) *Sharded[T] {
	if shards < 1 {
		panic("ulq: shards must be >= 1")
	}
	s := &Sharded[T]{subqueues: make([]shard[T], shards)}
	for i := range s.subqueues {
		s.subqueues[i].init()
	}
	return s
}

// Shards returns the fixed shard count.
func (s *Sharded[T]) Shards() int {
	return len(s.subqueues)
}

// At returns the shard at index, for explicit-index access:
//
//	s.At(key % s.Shards()).Enqueue(&v)
//
// Enqueueing through At is always multi-producer safe. Dequeueing through
// At bypasses the hit list and targets the one shard. index must be in
// [0, Shards()); anything else panics.
func (s *Sharded[T]) At(index int) *List[T] {
	return &s.subqueues[index].List
}

// Producer is a per-goroutine enqueue handle bound to one shard.
type Producer[T any] struct {
	q     *List[T]
	index int
}

// Producer assigns the next shard round-robin and returns an enqueue
// handle bound to it. The handle belongs to the calling goroutine and
// must not be shared.
func (s *Sharded[T]) Producer() *Producer[T] {
	i := int((s.next.AddAcqRel(1) - 1) % uint64(len(s.subqueues)))
	return &Producer[T]{q: &s.subqueues[i].List, index: i}
}

// Enqueue adds an element to the bound shard. Cannot fail.
//
// Always the multi-producer path: once more handles exist than shards,
// distinct goroutines share a shard, so even the affinitized enqueue must
// tolerate concurrent producers.
func (p *Producer[T]) Enqueue(elem *T) {
	p.q.Enqueue(elem)
}

// Index returns the bound shard index.
func (p *Producer[T]) Index() int {
	return p.index
}

// Consumer is a per-goroutine dequeue handle with its own hit list.
type Consumer[T any] struct {
	s    *Sharded[T]
	hits []int
}

// Consumer returns a dequeue handle whose hit list starts in natural
// order [0, 1, ... Shards()-1]. The handle belongs to the calling
// goroutine and must not be shared.
func (s *Sharded[T]) Consumer() *Consumer[T] {
	hits := make([]int, len(s.subqueues))
	for i := range hits {
		hits[i] = i
	}
	return &Consumer[T]{s: s, hits: hits}
}

// Dequeue scans the shards in hit-list order and returns the first
// element found. Safe under arbitrary concurrent consumers.
//
// The scan runs in two phases. Phase one tries each shard's light dequeue,
// which never spins: a shard momentarily claimed by another consumer is
// skipped as if empty, because a different shard likely holds data. Only
// when the whole light pass comes up empty does phase two rescan with the
// claiming dequeue, waiting out contention shard by shard.
//
// On success the hit shard moves to the front of the hit list; the
// relative order of the others is preserved. Returns (zero-value,
// ErrWouldBlock) when both passes exhaust the hit list.
func (c *Consumer[T]) Dequeue() (T, error) {
	for i, idx := range c.hits {
		if elem, err := c.s.subqueues[idx].DequeueLight(); err == nil {
			c.promote(i)
			return elem, nil
		}
	}
	for i, idx := range c.hits {
		if elem, err := c.s.subqueues[idx].Dequeue(); err == nil {
			c.promote(i)
			return elem, nil
		}
	}
	var zero T
	return zero, ErrWouldBlock
}

// DequeueSC is the single-consumer scan: each shard is tried with its
// single-consumer dequeue, with the same hit-list rotation as Dequeue.
//
// Precondition: no other goroutine consumes from any of the same shards
// concurrently, through any path. Violating this is undefined behavior.
func (c *Consumer[T]) DequeueSC() (T, error) {
	for i, idx := range c.hits {
		if elem, err := c.s.subqueues[idx].DequeueSC(); err == nil {
			c.promote(i)
			return elem, nil
		}
	}
	var zero T
	return zero, ErrWouldBlock
}

// promote moves the hit at position i to the front of the hit list,
// shifting the entries before it back one slot.
func (c *Consumer[T]) promote(i int) {
	if i == 0 {
		return
	}
	idx := c.hits[i]
	copy(c.hits[1:i+1], c.hits[:i])
	c.hits[0] = idx
}
