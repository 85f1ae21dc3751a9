package main

import (
	"github.com/ringlab/ring"
	"github.com/ringlab/ring/stats"
)

func main() {
	// Create a new statistics counter
	counter := stats.NewCounter()

	// Initialize deque with statistics recorder
	d := ring.Must[int](&ring.Options{
		InitialCapacity: 4,
		StatsRecorder:   counter, // Attach stats collector to deque
	})

	// Phase 1: Grow the buffer
	// ------------------------
	// 4 -> 8 -> ... -> 256
	for i := 0; i < 256; i++ {
		d.AddLast(i)
	}

	// Phase 2: Drain it
	// -----------------
	// The buffer shrinks once the deque is a quarter full
	// and holds more than 16 elements.
	for d.Len() > 0 {
		d.RemoveFirst()
	}

	// Phase 3: Verify statistics
	// --------------------------
	snapshot := counter.Snapshot()

	if snapshot.Grows != 6 {
		panic("incorrect number of grows")
	}
	if snapshot.Shrinks != 1 {
		panic("incorrect number of shrinks")
	}
	if snapshot.PeakCapacity != 256 {
		panic("incorrect peak capacity")
	}
}
