package main

import (
	"fmt"

	"github.com/ringlab/ring"
)

func fillAndDrain(d *ring.Deque[int], n int) int {
	for i := 0; i < n; i++ {
		d.AddFirst(i)
	}
	for d.Len() > n/8 {
		d.RemoveLast()
	}
	return d.Cap()
}

func main() {
	// Default watermark: the buffer follows the deque down.
	fmt.Println(fillAndDrain(ring.Must[int](nil), 1024))

	// A high watermark keeps more memory around for bursty workloads.
	fmt.Println(fillAndDrain(ring.Must[int](&ring.Options{
		ShrinkWatermark: 512,
	}), 1024))

	// Shrinking disabled: capacity only grows.
	fmt.Println(fillAndDrain(ring.Must[int](&ring.Options{
		DisableShrink: true,
	}), 1024))
}
