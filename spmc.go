// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulq

// SPMC is the single-producer multi-consumer binding of [List].
//
// Enqueue takes the single-producer fast path; dequeue uses the claiming
// multi-consumer protocol and is safe under arbitrary concurrent
// consumers. More than one producer goroutine is undefined behavior.
type SPMC[T any] struct {
	q *List[T]
}

// NewSPMC creates a new unbounded SPMC queue.
func NewSPMC[T any]() *SPMC[T] {
	return &SPMC[T]{q: NewList[T]()}
}

// Enqueue adds an element to the queue (producer only). Cannot fail.
func (q *SPMC[T]) Enqueue(elem *T) {
	q.q.EnqueueSP(elem)
}

// Dequeue removes and returns an element (multiple consumers safe).
// Returns (zero-value, ErrWouldBlock) if the queue is empty; spins with a
// cooperative yield while another consumer holds the consumer end.
func (q *SPMC[T]) Dequeue() (T, error) {
	return q.q.Dequeue()
}
