// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulq

// MPSC is the multi-producer single-consumer binding of [List].
//
// Enqueue is safe under arbitrary concurrent producers; dequeue takes the
// single-consumer fast path with no claim protocol. More than one consumer
// goroutine is undefined behavior.
type MPSC[T any] struct {
	q *List[T]
}

// NewMPSC creates a new unbounded MPSC queue.
func NewMPSC[T any]() *MPSC[T] {
	return &MPSC[T]{q: NewList[T]()}
}

// Enqueue adds an element to the queue (multiple producers safe).
// Cannot fail.
func (q *MPSC[T]) Enqueue(elem *T) {
	q.q.Enqueue(elem)
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *MPSC[T]) Dequeue() (T, error) {
	return q.q.DequeueSC()
}
