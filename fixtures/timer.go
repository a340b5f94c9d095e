package fixtures

import "time"

// BenchmarkTimer measures elapsed wall-clock time between Start and Stop.
type BenchmarkTimer struct {
	startTime time.Time
	endTime   time.Time
}

func NewBenchmarkTimer() *BenchmarkTimer {
	return &BenchmarkTimer{}
}

func (b *BenchmarkTimer) Start() {
	b.startTime = time.Now()
}

func (b *BenchmarkTimer) Stop() {
	b.endTime = time.Now()
}

// Elapsed returns the time between Start and Stop, or zero if the timer has
// not completed a start/stop cycle.
func (b *BenchmarkTimer) Elapsed() time.Duration {
	if b.startTime.IsZero() || b.endTime.IsZero() {
		return 0
	}
	return b.endTime.Sub(b.startTime)
}
