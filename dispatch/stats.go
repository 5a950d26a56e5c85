package dispatch

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/forgelight/eventcore/events"
)

// TypeStats is a snapshot of the dispatch timings recorded for one event
// type.
type TypeStats struct {
	Type    events.TypeID
	Count   uint64
	Total   time.Duration
	Min     time.Duration
	Max     time.Duration
	Average time.Duration
}

// minUnset marks an accumulator that has not recorded yet.
const minUnset = math.MaxInt64

type typeAccumulator struct {
	count atomic.Uint64
	total atomic.Int64
	min   atomic.Int64
	max   atomic.Int64
}

// PerfTracker accumulates per-type dispatch timings. Writers and readers
// never block each other; a snapshot taken during a burst of recording is
// eventually consistent across its fields.
type PerfTracker struct {
	perType [events.TypeCount]typeAccumulator
}

// NewPerfTracker returns a tracker with all counters at zero.
func NewPerfTracker() *PerfTracker {
	p := &PerfTracker{}
	for t := range p.perType {
		p.perType[t].min.Store(minUnset)
	}
	return p
}

// Record adds one dispatch of the given type that took d.
func (p *PerfTracker) Record(t events.TypeID, d time.Duration) {
	if t < 0 || t >= events.TypeCount {
		return
	}

	acc := &p.perType[t]
	acc.count.Add(1)
	acc.total.Add(int64(d))

	for {
		cur := acc.min.Load()
		if int64(d) >= cur || acc.min.CompareAndSwap(cur, int64(d)) {
			break
		}
	}
	for {
		cur := acc.max.Load()
		if int64(d) <= cur || acc.max.CompareAndSwap(cur, int64(d)) {
			break
		}
	}
}

// Stats returns a snapshot for one type.
func (p *PerfTracker) Stats(t events.TypeID) TypeStats {
	if t < 0 || t >= events.TypeCount {
		return TypeStats{Type: t}
	}

	acc := &p.perType[t]
	count := acc.count.Load()
	if count == 0 {
		return TypeStats{Type: t}
	}

	s := TypeStats{
		Type:  t,
		Count: count,
		Total: time.Duration(acc.total.Load()),
		Max:   time.Duration(acc.max.Load()),
	}
	if min := acc.min.Load(); min != minUnset {
		s.Min = time.Duration(min)
	}
	s.Average = s.Total / time.Duration(count)
	return s
}

// AllStats returns a snapshot for every type that recorded at least one
// dispatch.
func (p *PerfTracker) AllStats() []TypeStats {
	out := make([]TypeStats, 0, events.TypeCount)
	for t := events.TypeID(0); t < events.TypeCount; t++ {
		if s := p.Stats(t); s.Count > 0 {
			out = append(out, s)
		}
	}
	return out
}

// Reset zeroes all counters.
func (p *PerfTracker) Reset() {
	for t := range p.perType {
		acc := &p.perType[t]
		acc.count.Store(0)
		acc.total.Store(0)
		acc.min.Store(minUnset)
		acc.max.Store(0)
	}
}
