// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulq

// Queue is the combined producer-consumer interface for an unbounded FIFO
// queue.
//
// Queue is satisfied by [List] and by the pattern-restricted views
// ([SPSC], [MPSC], [SPMC]); a [Producer] and [Consumer] handle pair from a
// [Sharded] queue satisfies the two sides separately.
//
// The interface intentionally excludes length because accurate counts in
// lock-free algorithms require expensive cross-core synchronization.
// Track counts in application logic when needed.
//
// Example:
//
//	q := ulq.NewList[int]()
//
//	// Enqueue (never fails, the queue is unbounded)
//	val := 42
//	q.Enqueue(&val)
//
//	// Dequeue
//	elem, err := q.Dequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Enqueuer[T]
	Dequeuer[T]
}

// Enqueuer is the interface for the producer side.
//
// The element is passed by pointer to avoid copying large structs. The
// queue stores a copy of the pointed-to value, so the original can be
// modified after Enqueue returns.
//
// Enqueue has no error: an unbounded queue has no full condition, and
// allocation failure is fatal rather than reportable.
type Enqueuer[T any] interface {
	// Enqueue adds an element to the queue.
	// The element is copied into a recycled or fresh node.
	//
	// Thread safety depends on the implementation:
	//   - List, MPSC, Producer: multiple producers safe
	//   - SPSC, SPMC: single producer only
	Enqueue(elem *T)
}

// Dequeuer is the interface for the consumer side.
//
// The element is returned by value, copied out of the node; the node's
// slot is cleared to allow garbage collection of referenced objects.
type Dequeuer[T any] interface {
	// Dequeue removes and returns an element from the queue.
	// Returns (zero-value, ErrWouldBlock) if no element is available.
	//
	// Thread safety depends on the implementation:
	//   - List, SPMC, Consumer: multiple consumers safe
	//   - SPSC, MPSC: single consumer only
	Dequeue() (T, error)
}
