// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ulq provides unbounded FIFO queue implementations.
//
// The package offers a lock-free unbounded linked queue with entry points
// for every producer/consumer pattern, and a sharded layer that spreads
// load across multiple independent queues with adaptive routing:
//
//   - List: the full multi-producer multi-consumer queue
//   - SPSC / MPSC / SPMC: pattern-restricted bindings of List
//   - Sharded: N padded List shards with affinity routing and hit lists
//
// # Quick Start
//
// Direct constructors (recommended for most cases):
//
//	q := ulq.NewList[Event]()       // full MPMC
//	q := ulq.NewSPSC[*Request]()    // single producer, single consumer
//	s := ulq.NewSharded[Task](8)    // 8 shards
//
// Builder API selects the binding from declared constraints:
//
//	q := ulq.Build[Event](ulq.New().SingleProducer().SingleConsumer()) // → SPSC
//	q := ulq.Build[Event](ulq.New().SingleConsumer())                  // → MPSC
//	q := ulq.Build[Event](ulq.New().SingleProducer())                  // → SPMC
//	q := ulq.Build[Event](ulq.New())                                   // → List
//
// # Basic Usage
//
// Enqueue never fails — the queues are unbounded, so there is no full
// condition and no backpressure. Dequeue is non-blocking and reports an
// empty queue as [ErrWouldBlock]:
//
//	q := ulq.NewList[int]()
//
//	value := 42
//	q.Enqueue(&value)
//
//	elem, err := q.Dequeue()
//	if ulq.IsWouldBlock(err) {
//	    // Queue is empty - try again later
//	}
//
// # The Unbounded List Queue
//
// List is an intrusive singly-linked list with an atomic producer end and
// an atomic consumer end. The consumer end always points at an already
// consumed sentinel node; the values of the queue are the chain linked
// behind it. Consumed nodes are recycled through an internal lock-free
// freelist, so sustained traffic allocates only while the queue's
// high-water mark is still growing.
//
// All entry points operate on the same structure:
//
//	q.Enqueue(&v)        // multi-producer safe (head exchange)
//	q.EnqueueSP(&v)      // single producer only (no exchange)
//	q.Dequeue()          // multi-consumer safe (claim, spin on contention)
//	q.DequeueLight()     // multi-consumer, no spin (see below)
//	q.DequeueSC()        // single consumer only (no claim)
//
// The SP/SC forms are cheaper but place the exclusivity burden on the
// caller; violating it is undefined behavior. The SPSC, MPSC and SPMC
// types fix a binding at the type level so the choice is made once, at
// construction.
//
// Multi-consumer dequeues claim the consumer end by atomically exchanging
// it with a placeholder. Dequeue waits out a claim held by another
// consumer with a cooperative spin; DequeueLight instead gives up
// immediately, returning ErrWouldBlock without distinguishing "empty"
// from "claimed elsewhere". Light dequeues exist for callers that have
// somewhere better to look — which is exactly how the sharded layer uses
// them.
//
// # Sharded Queues
//
// Sharded fans out over a fixed number of List shards, each padded to its
// own cache line. Producers get affinity handles assigned round-robin;
// consumers get handles with a per-handle "hit list" scan order that
// promotes the most recently productive shard to the front:
//
//	s := ulq.NewSharded[Job](8)
//
//	// Each producer goroutine takes its own handle
//	go func() {
//	    p := s.Producer()
//	    for job := range jobs {
//	        p.Enqueue(&job)
//	    }
//	}()
//
//	// Each consumer goroutine takes its own handle
//	go func() {
//	    c := s.Consumer()
//	    backoff := iox.Backoff{}
//	    for {
//	        job, err := c.Dequeue()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        job.Run()
//	    }
//	}()
//
// Under skewed producer/consumer ratios or bursty traffic, the shard that
// yielded data last is likely to yield again; the hit list turns the
// common case into a single shard check while still covering every shard
// on each call. Consumer.Dequeue scans twice: first with light dequeues
// (skipping contended shards), then, only if the light pass found
// nothing, with claiming dequeues.
//
// Handles hold per-goroutine state and must not be shared between
// goroutines. Applications with a natural sharding key can bypass
// affinity and address shards directly:
//
//	s.At(key % s.Shards()).Enqueue(&v)
//	elem, err := s.At(idx).Dequeue()
//
// Ordering is FIFO per shard; there is no global order across shards.
//
// # Error Handling
//
// Dequeues return [ErrWouldBlock] when no element is available. This
// error is sourced from [code.hybscloud.com/iox] for ecosystem
// consistency.
//
//	backoff := iox.Backoff{}
//	for {
//	    elem, err := q.Dequeue()
//	    if err != nil {
//	        backoff.Wait()
//	        continue
//	    }
//	    backoff.Reset()
//	    process(elem)
//	}
//
// For semantic error classification (delegates to iox):
//
//	ulq.IsWouldBlock(err)  // true if queue empty (or contended, light path)
//	ulq.IsSemantic(err)    // true if control flow signal
//	ulq.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// There is no other error condition. Misuse of a single-producer or
// single-consumer entry point is undefined behavior, not a runtime
// check; allocation failure is a fatal runtime condition, not an error
// return.
//
// # Thread Safety
//
// All operations are safe within their access pattern constraints:
//
//   - Enqueue / Dequeue / DequeueLight: any number of goroutines
//   - EnqueueSP: one producer goroutine at a time
//   - DequeueSC: one consumer goroutine at a time
//   - Producer/Consumer handles: owned by a single goroutine
//
// Violating these constraints causes undefined behavior including data
// corruption. Mixing DequeueSC with concurrent claiming dequeues on the
// same queue is likewise undefined.
//
// # Waiting
//
// The only waiting operation is the claiming dequeue's spin while another
// consumer holds the consumer end. The spin yields cooperatively, is not
// fair, and cannot be cancelled; callers that need a prompt negative
// answer use DequeueLight and decide for themselves. Everything else
// completes in a bounded number of steps.
//
// # Memory
//
// Nodes are recycled, never freed: a queue retains the node count of its
// high-water mark until the queue itself becomes unreachable, at which
// point the garbage collector reclaims the whole structure. Destruction
// needs no explicit teardown and assumes no concurrent access is still
// in progress.
//
// Length and capacity accessors are intentionally not provided: the
// queues are unbounded, and accurate counts in lock-free algorithms
// require expensive cross-core synchronization. Track counts in
// application logic when needed.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for scalar atomics, and
// [code.hybscloud.com/spin] for CPU pause instructions. List links use
// the runtime-integrated sync/atomic pointer type so that recycled nodes
// stay visible to the garbage collector.
package ulq
