// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulq

// SPSC is the single-producer single-consumer binding of [List].
//
// Both ends take their exclusive fast path: enqueue skips the head
// exchange and dequeue skips the claim protocol. Exactly one producer
// goroutine and one consumer goroutine; anything else is undefined
// behavior, including data corruption.
type SPSC[T any] struct {
	q *List[T]
}

// NewSPSC creates a new unbounded SPSC queue.
func NewSPSC[T any]() *SPSC[T] {
	return &SPSC[T]{q: NewList[T]()}
}

// Enqueue adds an element to the queue (producer only). Cannot fail.
func (q *SPSC[T]) Enqueue(elem *T) {
	q.q.EnqueueSP(elem)
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *SPSC[T]) Dequeue() (T, error) {
	return q.q.DequeueSC()
}
