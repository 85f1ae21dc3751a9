package main

import (
	"fmt"

	"github.com/ringlab/ring"
)

const windowSize = 5

// movingAverage keeps the last windowSize samples and their sum.
type movingAverage struct {
	window *ring.Deque[float64]
	sum    float64
}

func (m *movingAverage) Add(sample float64) float64 {
	m.window.AddLast(sample)
	m.sum += sample
	if m.window.Len() > windowSize {
		oldest, _ := m.window.RemoveFirst()
		m.sum -= oldest
	}
	return m.sum / float64(m.window.Len())
}

func main() {
	// The zero value is ready to use.
	m := &movingAverage{window: &ring.Deque[float64]{}}

	for _, sample := range []float64{1, 2, 3, 4, 5, 6, 7, 8} {
		fmt.Printf("%.1f ", m.Add(sample))
	}
	fmt.Println()

	// Walk the window from the newest to the oldest sample.
	for v := range m.window.Backward() {
		fmt.Print(v, " ")
	}
	fmt.Println()
}
