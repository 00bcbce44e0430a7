// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ulq_test

import (
	"fmt"

	"code.hybscloud.com/ulq"
)

// ExampleNewList demonstrates basic enqueue/dequeue on the unbounded
// MPMC queue.
func ExampleNewList() {
	q := ulq.NewList[string]()

	for _, s := range []string{"alpha", "beta", "gamma"} {
		q.Enqueue(&s)
	}

	for {
		s, err := q.Dequeue()
		if err != nil {
			break
		}
		fmt.Println(s)
	}

	// Output:
	// alpha
	// beta
	// gamma
}

// ExampleBuild demonstrates entry-point selection through the builder.
func ExampleBuild() {
	// Declaring the access pattern picks the cheapest safe entry points.
	q := ulq.Build[int](ulq.New().SingleProducer().SingleConsumer())

	v := 1
	q.Enqueue(&v)
	v = 2
	q.Enqueue(&v)

	for {
		n, err := q.Dequeue()
		if err != nil {
			break
		}
		fmt.Println(n)
	}

	// Output:
	// 1
	// 2
}

// ExampleSharded demonstrates affinity handles on a sharded queue.
func ExampleSharded() {
	s := ulq.NewSharded[int](2)

	// Handles are normally one per goroutine; here a single goroutine
	// keeps the output deterministic.
	pa := s.Producer() // bound to shard 0
	pb := s.Producer() // bound to shard 1

	for _, v := range []int{1, 2, 3} {
		pa.Enqueue(&v)
	}
	for _, v := range []int{10, 20} {
		pb.Enqueue(&v)
	}

	c := s.Consumer()
	sum := 0
	for {
		v, err := c.Dequeue()
		if err != nil {
			break
		}
		sum += v
	}
	fmt.Println(sum)

	// Output:
	// 36
}

// ExampleSharded_At demonstrates explicit-index routing with an
// application-level sharding key.
func ExampleSharded_At() {
	type event struct {
		UserID int
		Action string
	}

	s := ulq.NewSharded[event](4)

	// Same user always lands on the same shard, so per-user order holds.
	events := []event{
		{UserID: 42, Action: "login"},
		{UserID: 7, Action: "login"},
		{UserID: 42, Action: "purchase"},
		{UserID: 42, Action: "logout"},
	}
	for _, ev := range events {
		s.At(ev.UserID % s.Shards()).Enqueue(&ev)
	}

	shard := 42 % s.Shards()
	for {
		ev, err := s.At(shard).Dequeue()
		if err != nil {
			break
		}
		fmt.Printf("user %d: %s\n", ev.UserID, ev.Action)
	}

	// Output:
	// user 42: login
	// user 42: purchase
	// user 42: logout
}
