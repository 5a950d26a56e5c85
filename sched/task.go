// Package sched provides the fixed-size worker pool that executes dispatch
// work off the game update thread, ordered by five priority levels.
package sched

import (
	"time"
)

// Priority orders tasks. Lower values run first.
type Priority int

// The five priority levels.
const (
	Critical Priority = iota
	High
	Normal
	Low
	IdlePriority

	numPriorities
)

func (p Priority) String() string {
	switch p {
	case Critical:
		return "Critical"
	case High:
		return "High"
	case Normal:
		return "Normal"
	case Low:
		return "Low"
	case IdlePriority:
		return "Idle"
	}
	return "Unknown"
}

// A Handle tracks the completion of one submitted task. Callers that do not
// care about completion can discard it.
type Handle struct {
	seq  uint64
	done chan struct{}
}

// Wait blocks until the task has finished or the timeout elapses. It
// returns true when the task completed. A zero or negative timeout only
// polls.
func (h *Handle) Wait(timeout time.Duration) bool {
	if timeout <= 0 {
		select {
		case <-h.done:
			return true
		default:
			return false
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-h.done:
		return true
	case <-timer.C:
		return false
	}
}

// Done returns a channel closed when the task has finished. The task is
// considered finished even if its function panicked.
func (h *Handle) Done() <-chan struct{} { return h.done }

type task struct {
	fn     func()
	seq    uint64
	handle *Handle
}
