// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulq

import (
	"sync/atomic"

	"code.hybscloud.com/spin"
)

// node is one cell of the intrusive list.
//
// Ownership: while reachable behind head, the active list owns the node;
// after being consumed, the freelist owns it. Never both at once, and never
// two threads at once (the consumer end is handed over by exclusive claim).
type node[T any] struct {
	next atomic.Pointer[node[T]]
	data T
}

// List is an unbounded multi-producer multi-consumer linked queue.
//
// The queue is a singly-linked list with an atomic producer end (head) and
// an atomic consumer end (tail). tail always points at a consumed sentinel
// node; the value sequence of the queue is the chain of nodes linked behind
// it. Consumed nodes are recycled through an internal freelist, so after a
// warm-up phase sustained enqueue/dequeue traffic allocates nothing.
//
// List can also be used as any combination of single-producer and
// single-consumer queues for additional performance in those contexts:
// EnqueueSP skips the head exchange and DequeueSC skips the claim protocol.
// For type-level enforcement of an access pattern, see [SPSC], [MPSC] and
// [SPMC], or the builder in [Build].
//
// Ordering: values dequeue in the order their enqueues linked them. The
// order is total per List; the sharded layer ([Sharded]) gives no ordering
// across shards.
//
// Memory: one node per in-flight element plus the recycled nodes of the
// high-water mark. Nodes are never returned to the allocator; the garbage
// collector reclaims everything when the List itself becomes unreachable.
type List[T any] struct {
	_ pad
	// Producer side: Enqueue exchanges head, acquire scans from freeTail.
	head     atomic.Pointer[node[T]]
	freeTail atomic.Pointer[node[T]]
	_        pad
	// Consumer side: tail is the consumed sentinel, release appends at freeHead.
	tail     atomic.Pointer[node[T]]
	freeHead atomic.Pointer[node[T]]
	_        pad
}

// NewList creates a new unbounded MPMC queue.
// NewList is the full-capability constructor; the pattern-restricted
// constructors ([NewSPSC], [NewMPSC], [NewSPMC]) wrap the same algorithm.
func NewList[T any]() *List[T] {
	q := &List[T]{}
	q.init()
	return q
}

// init installs the active-list sentinel and the freelist sentinel.
// Runs once before first use; called by NewList and NewSharded.
func (q *List[T]) init() {
	sentinel := &node[T]{}
	q.head.Store(sentinel)
	q.tail.Store(sentinel)
	free := &node[T]{}
	q.freeHead.Store(free)
	q.freeTail.Store(free)
}

// Enqueue adds an element to the queue. Safe under arbitrary concurrent
// producers: the head exchange gives each producer a unique predecessor to
// link from.
//
// The element is copied into a recycled or freshly allocated node; the
// original can be modified after Enqueue returns. Enqueue cannot fail:
// the queue is unbounded.
func (q *List[T]) Enqueue(elem *T) {
	n := q.acquire(elem)
	prev := q.head.Swap(n)
	prev.next.Store(n)
}

// EnqueueSP adds an element assuming no concurrent enqueuer.
// Skips the head exchange; the link store still publishes the fully
// written node to consumers. Calling EnqueueSP from two goroutines at
// once is undefined behavior.
func (q *List[T]) EnqueueSP(elem *T) {
	n := q.acquire(elem)
	head := q.head.Load()
	head.next.Store(n)
	q.head.Store(n)
}

// DequeueSC removes and returns an element assuming no concurrent consumer.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
//
// No claim protocol and no retry loop: the caller guarantees exclusive
// access to the consumer end. Mixing DequeueSC with concurrent Dequeue or
// DequeueLight calls on the same queue is undefined behavior.
func (q *List[T]) DequeueSC() (T, error) {
	tail := q.tail.Load()
	next := tail.next.Load()
	if next == nil {
		var zero T
		return zero, ErrWouldBlock
	}
	elem := next.data
	var zero T
	next.data = zero
	q.tail.Store(next)
	q.release(tail)
	return elem, nil
}

// Dequeue removes and returns an element. Safe under arbitrary concurrent
// consumers.
//
// The consumer end is claimed by exchanging tail with nil; while another
// consumer holds the claim, Dequeue spins with a cooperative yield. The
// spin is bounded only by the other consumers' progress, never by a
// timeout, and is not fair under three-or-more-way contention.
//
// Returns (zero-value, ErrWouldBlock) only when the queue is empty.
func (q *List[T]) Dequeue() (T, error) {
	sw := spin.Wait{}
	tail := q.tail.Swap(nil)
	for tail == nil {
		sw.Once()
		tail = q.tail.Swap(nil)
	}
	return q.consume(tail)
}

// DequeueLight is Dequeue without the spin: if another consumer currently
// holds the claim, it returns (zero-value, ErrWouldBlock) immediately.
//
// On this path the caller cannot distinguish an empty queue from a
// momentarily contended one. That is the intended trade: callers with
// alternative queues to try (see [Consumer.Dequeue]) move on instead of
// waiting.
func (q *List[T]) DequeueLight() (T, error) {
	tail := q.tail.Swap(nil)
	if tail == nil {
		var zero T
		return zero, ErrWouldBlock
	}
	return q.consume(tail)
}

// consume finishes a claimed dequeue. The caller holds the exclusive claim:
// every other consumer observes q.tail as nil until tail is stored back.
func (q *List[T]) consume(tail *node[T]) (T, error) {
	next := tail.next.Load()
	if next == nil {
		// Empty: release the claim with the sentinel unchanged.
		q.tail.Store(tail)
		var zero T
		return zero, ErrWouldBlock
	}
	elem := next.data
	var zero T
	next.data = zero
	q.tail.Store(next)
	q.release(tail)
	return elem, nil
}

// acquire returns a node carrying *elem, reusing a recycled node when one
// is available and allocating otherwise.
func (q *List[T]) acquire(elem *T) *node[T] {
	n := q.reuse()
	if n == nil {
		return &node[T]{data: *elem}
	}
	n.data = *elem
	n.next.Store(nil)
	return n
}

// reuse claims one recycled node, or returns nil when none is available.
// Concurrent producers race here, so the free tail advances past claimed
// nodes by compare-and-swap.
func (q *List[T]) reuse() *node[T] {
	n := q.freeTail.Load()
	for next := n.next.Load(); next != nil; next = n.next.Load() {
		if q.freeTail.CompareAndSwap(n, next) {
			return n
		}
		n = q.freeTail.Load()
	}
	return nil
}

// release returns a consumed node to the freelist. The caller owns n
// exclusively at this point. The link is cleared before n becomes
// reachable from the free head, so a racing reuse never observes a stale
// link.
func (q *List[T]) release(n *node[T]) {
	n.next.Store(nil)
	prev := q.freeHead.Swap(n)
	prev.next.Store(n)
}
