// Package mon keeps lightweight timing of repeated operations, such as
// batches of generator draws.
package mon

import (
	"sort"
	"sync/atomic"
	"time"
)

const (
	bufferShift = 8 // 256 elements
	bufferElems = 1 << bufferShift
	bufferMask  = bufferElems - 1
)

// Histogram is a ring histogram of durations that have been observed.
type Histogram struct {
	total   int64
	current int64
	durs    [bufferElems]int64
}

// Timer is an in flight observation returned by Start.
type Timer struct {
	h     *Histogram
	start time.Time
}

// Start begins timing one execution.
func (h *Histogram) Start() Timer {
	h.start()
	return Timer{h: h, start: time.Now()}
}

// Stop records the time since Start and returns it.
func (t Timer) Stop() time.Duration {
	dur := time.Since(t.start)
	t.h.done(int64(dur))
	return dur
}

// Time runs fn once and records how long it took.
func (h *Histogram) Time(fn func()) time.Duration {
	timer := h.Start()
	fn()
	return timer.Stop()
}

// start should be called before done, to keep track of concurrent executions.
func (h *Histogram) start() { atomic.AddInt64(&h.current, 1) }

// done stores the duration in the ring buffer, incrementing the count.
func (h *Histogram) done(dur int64) {
	loc := &h.durs[(atomic.AddInt64(&h.total, 1)-1)&bufferMask]
	atomic.StoreInt64(loc, dur)
	atomic.AddInt64(&h.current, -1)
}

// Total returns the amount of times a duration has been added to the histogram.
func (h *Histogram) Total() int64 { return atomic.LoadInt64(&h.total) }

// Current returns the amount of currently recording executions exist
func (h *Histogram) Current() int64 { return atomic.LoadInt64(&h.current) }

// dursLen returns the number of valid entries in the durs buffer.
func (h *Histogram) dursLen() int {
	n := h.Total()
	if n >= bufferElems {
		return bufferElems
	}
	return int(n)
}

// Durations returns a copy of observed durations.
func (h *Histogram) Durations() []int64 {
	out := make([]int64, h.dursLen())
	for i := range out {
		out[i] = atomic.LoadInt64(&h.durs[i&bufferMask])
	}
	return out
}

// Average returns the average time in nanoseconds, or zero if nothing has
// been observed.
func (h *Histogram) Average() float64 {
	n := h.dursLen()
	if n == 0 {
		return 0
	}
	total := int64(0)
	for i := 0; i < n; i++ {
		total += atomic.LoadInt64(&h.durs[i])
	}
	return float64(total) / float64(n)
}

// Quantile returns the observed duration at quantile q in [0, 1], or zero
// if nothing has been observed.
func (h *Histogram) Quantile(q float64) time.Duration {
	durs := h.Durations()
	if len(durs) == 0 {
		return 0
	}
	sort.Slice(durs, func(i, j int) bool { return durs[i] < durs[j] })

	switch {
	case q <= 0:
		return time.Duration(durs[0])
	case q >= 1:
		return time.Duration(durs[len(durs)-1])
	}
	return time.Duration(durs[int(q*float64(len(durs)-1)+0.5)])
}
