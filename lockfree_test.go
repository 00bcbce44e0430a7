// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// High-contention tests for the unbounded list queue and the sharded
// layer. Iteration counts scale down under the race detector, which runs
// an order of magnitude slower; the algorithms themselves synchronize
// through sync/atomic and are fully detector-visible.

package ulq_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/ulq"
)

// perProducer returns the per-producer value count for stress tests.
func perProducer() int {
	if ulq.RaceEnabled {
		return 500
	}
	return 10000
}

// =============================================================================
// List - Concurrent Producers/Consumers
// =============================================================================

// TestListNoLossNoDupMPMC drains P producers with C consumers and checks
// the dequeued multiset equals the enqueued multiset exactly.
func TestListNoLossNoDupMPMC(t *testing.T) {
	const producers, consumers = 4, 4
	perProd := perProducer()
	total := producers * perProd

	q := ulq.NewList[int]()
	seen := make([]atomix.Int32, total)
	var consumed atomix.Int64

	var prodWg, consWg sync.WaitGroup
	for p := range producers {
		prodWg.Add(1)
		go func(base int) {
			defer prodWg.Done()
			for i := range perProd {
				v := base + i
				q.Enqueue(&v)
			}
		}(p * perProd)
	}

	for range consumers {
		consWg.Add(1)
		go func() {
			defer consWg.Done()
			backoff := iox.Backoff{}
			for consumed.Load() < int64(total) {
				val, err := q.Dequeue()
				if err != nil {
					backoff.Wait()
					continue
				}
				backoff.Reset()
				seen[val].Add(1)
				consumed.Add(1)
			}
		}()
	}

	prodWg.Wait()
	consWg.Wait()

	for i := range seen {
		if n := seen[i].Load(); n != 1 {
			t.Fatalf("value %d dequeued %d times, want 1", i, n)
		}
	}
}

// TestMPSCPerProducerOrder verifies that with a single consumer, each
// producer's values arrive in their enqueue order.
func TestMPSCPerProducerOrder(t *testing.T) {
	const producers = 4
	perProd := perProducer()
	total := producers * perProd

	q := ulq.NewMPSC[[2]int]()
	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := range perProd {
				v := [2]int{id, i}
				q.Enqueue(&v)
			}
		}(p)
	}

	lastSeen := [producers]int{}
	for i := range lastSeen {
		lastSeen[i] = -1
	}
	backoff := iox.Backoff{}
	for n := 0; n < total; {
		val, err := q.Dequeue()
		if err != nil {
			backoff.Wait()
			continue
		}
		backoff.Reset()
		id, seq := val[0], val[1]
		if seq <= lastSeen[id] {
			t.Fatalf("producer %d: sequence %d after %d", id, seq, lastSeen[id])
		}
		lastSeen[id] = seq
		n++
	}
	wg.Wait()

	for id, last := range lastSeen {
		if last != perProd-1 {
			t.Fatalf("producer %d: last sequence %d, want %d", id, last, perProd-1)
		}
	}
}

// TestSPMCConcurrentConsumers verifies no loss and no duplication with one
// producer and several claiming consumers.
func TestSPMCConcurrentConsumers(t *testing.T) {
	const consumers = 4
	total := perProducer()

	q := ulq.NewSPMC[int]()
	seen := make([]atomix.Int32, total)
	var consumed atomix.Int64

	var wg sync.WaitGroup
	for range consumers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			backoff := iox.Backoff{}
			for consumed.Load() < int64(total) {
				val, err := q.Dequeue()
				if err != nil {
					backoff.Wait()
					continue
				}
				backoff.Reset()
				seen[val].Add(1)
				consumed.Add(1)
			}
		}()
	}

	for i := range total {
		v := i
		q.Enqueue(&v)
	}
	wg.Wait()

	for i := range seen {
		if n := seen[i].Load(); n != 1 {
			t.Fatalf("value %d dequeued %d times, want 1", i, n)
		}
	}
}

// TestListLightConsumersMakeProgress runs consumers on the light path
// only. Light misses under contention are expected; the drain must still
// complete with every value seen exactly once.
func TestListLightConsumersMakeProgress(t *testing.T) {
	const consumers = 4
	total := perProducer()

	q := ulq.NewList[int]()
	for i := range total {
		v := i
		q.Enqueue(&v)
	}

	seen := make([]atomix.Int32, total)
	var consumed atomix.Int64
	var misses atomix.Int64

	var wg sync.WaitGroup
	for range consumers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			backoff := iox.Backoff{}
			for consumed.Load() < int64(total) {
				val, err := q.DequeueLight()
				if err != nil {
					misses.Add(1)
					backoff.Wait()
					continue
				}
				backoff.Reset()
				seen[val].Add(1)
				consumed.Add(1)
			}
		}()
	}
	wg.Wait()

	for i := range seen {
		if n := seen[i].Load(); n != 1 {
			t.Fatalf("value %d dequeued %d times, want 1", i, n)
		}
	}
	t.Logf("light misses: %d", misses.Load())
}

// =============================================================================
// Sharded - Concurrent Handles
// =============================================================================

// TestShardedNoLossNoDup drains P producer handles with C consumer
// handles across a small shard count, so handles share shards and the
// two-phase scan sees real contention.
func TestShardedNoLossNoDup(t *testing.T) {
	const shards, producers, consumers = 2, 4, 4
	perProd := perProducer()
	total := producers * perProd

	s := ulq.NewSharded[int](shards)
	seen := make([]atomix.Int32, total)
	var consumed atomix.Int64

	var prodWg, consWg sync.WaitGroup
	for p := range producers {
		prodWg.Add(1)
		go func(base int) {
			defer prodWg.Done()
			h := s.Producer()
			for i := range perProd {
				v := base + i
				h.Enqueue(&v)
			}
		}(p * perProd)
	}

	for range consumers {
		consWg.Add(1)
		go func() {
			defer consWg.Done()
			h := s.Consumer()
			backoff := iox.Backoff{}
			for consumed.Load() < int64(total) {
				val, err := h.Dequeue()
				if err != nil {
					backoff.Wait()
					continue
				}
				backoff.Reset()
				seen[val].Add(1)
				consumed.Add(1)
			}
		}()
	}

	prodWg.Wait()
	consWg.Wait()

	for i := range seen {
		if n := seen[i].Load(); n != 1 {
			t.Fatalf("value %d dequeued %d times, want 1", i, n)
		}
	}
}

// TestShardedExplicitIndexConcurrent hammers one shard through At from
// many goroutines while the others stay empty.
func TestShardedExplicitIndexConcurrent(t *testing.T) {
	const shards, producers = 4, 8
	perProd := perProducer()
	total := producers * perProd

	s := ulq.NewSharded[int](shards)

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := range perProd {
				v := base + i
				s.At(1).Enqueue(&v)
			}
		}(p * perProd)
	}
	wg.Wait()

	seen := make([]bool, total)
	c := s.Consumer()
	for range total {
		val, err := c.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue: %v", err)
		}
		if seen[val] {
			t.Fatalf("value %d dequeued twice", val)
		}
		seen[val] = true
	}
	if _, err := c.Dequeue(); err == nil {
		t.Fatal("Dequeue on drained: expected ErrWouldBlock")
	}
}
