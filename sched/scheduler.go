package sched

import (
	"errors"
	"log"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrStopped is returned by Submit after Stop has been called.
var ErrStopped = errors.New("sched: scheduler stopped")

// Counters is a snapshot of the scheduler's lifetime statistics.
type Counters struct {
	Submitted uint64
	Completed uint64
	Panicked  uint64
}

// A Scheduler runs submitted tasks on a fixed pool of workers. Workers
// always take from the highest-priority non-empty queue, FIFO within a
// level. Submission never blocks; queues grow as needed.
type Scheduler struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queues  [numPriorities][]task
	started bool
	stopped bool
	nextSeq uint64

	workers   int
	waitGroup sync.WaitGroup

	submitted atomic.Uint64
	completed atomic.Uint64
	panicked  atomic.Uint64

	logger *log.Logger
}

// NewScheduler creates a scheduler. Call Start before submitting.
func NewScheduler() *Scheduler {
	s := &Scheduler{logger: log.Default()}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// SetLogger replaces the logger used for task panics. Must be called before
// Start.
func (s *Scheduler) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// DefaultWorkerCount is the worker count used when Start is given zero:
// one OS thread's worth of parallelism is left to the caller.
func DefaultWorkerCount() int {
	n := runtime.GOMAXPROCS(0) - 1
	if n < 1 {
		n = 1
	}
	return n
}

// Start spawns the worker pool. A zero workerCount selects
// DefaultWorkerCount. Calling Start on a running scheduler is a no-op and
// does not spawn extra workers. A stopped scheduler cannot be restarted.
func (s *Scheduler) Start(workerCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started || s.stopped {
		return
	}
	if workerCount <= 0 {
		workerCount = DefaultWorkerCount()
	}

	s.workers = workerCount
	s.started = true

	s.waitGroup.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go s.worker(i)
	}
}

// Submit enqueues fn at the given priority and returns a handle that can be
// awaited. It never blocks on queue depth. After Stop it fails fast with
// ErrStopped.
func (s *Scheduler) Submit(p Priority, fn func()) (*Handle, error) {
	if p < Critical || p >= numPriorities {
		p = Normal
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil, ErrStopped
	}

	s.nextSeq++
	t := task{
		fn:     fn,
		seq:    s.nextSeq,
		handle: &Handle{seq: s.nextSeq, done: make(chan struct{})},
	}
	s.queues[p] = append(s.queues[p], t)
	s.submitted.Add(1)

	// Urgent work wakes everyone; the rest avoids a thundering herd.
	if p <= High {
		s.cond.Broadcast()
	} else {
		s.cond.Signal()
	}
	s.mu.Unlock()

	return t.handle, nil
}

// Stop refuses further submissions, lets the workers drain everything
// already queued, and blocks until they have all exited. Stopping a
// scheduler that never started, or stopping twice, is safe.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		s.waitGroup.Wait()
		return
	}
	s.stopped = true
	s.cond.Broadcast()
	s.mu.Unlock()

	s.waitGroup.Wait()
}

// IsStopped reports whether Stop has been called.
func (s *Scheduler) IsStopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

// WorkerCount returns the number of workers the pool started with, zero
// before Start.
func (s *Scheduler) WorkerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workers
}

// QueueDepths returns the number of queued tasks per priority level,
// Critical first.
func (s *Scheduler) QueueDepths() [5]int {
	var depths [5]int
	s.mu.Lock()
	for i := range s.queues {
		depths[i] = len(s.queues[i])
	}
	s.mu.Unlock()
	return depths
}

// CounterSnapshot returns the lifetime submission statistics.
func (s *Scheduler) CounterSnapshot() Counters {
	return Counters{
		Submitted: s.submitted.Load(),
		Completed: s.completed.Load(),
		Panicked:  s.panicked.Load(),
	}
}

func (s *Scheduler) worker(id int) {
	defer s.waitGroup.Done()

	for {
		s.mu.Lock()
		t, ok := s.takeLocked()
		for !ok && !s.stopped {
			s.cond.Wait()
			t, ok = s.takeLocked()
		}
		if !ok {
			// stopped and fully drained
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		s.run(id, t)
	}
}

// takeLocked pops the oldest task from the highest-priority non-empty
// queue. Caller holds s.mu.
func (s *Scheduler) takeLocked() (task, bool) {
	for p := range s.queues {
		q := s.queues[p]
		if len(q) == 0 {
			continue
		}
		t := q[0]
		// Shift rather than re-slice so drained prefixes are freed.
		copy(q, q[1:])
		s.queues[p] = q[:len(q)-1]
		return t, true
	}
	return task{}, false
}

func (s *Scheduler) run(workerID int, t task) {
	defer close(t.handle.done)
	defer func() {
		if r := recover(); r != nil {
			s.panicked.Add(1)
			s.logger.Printf("sched: worker %d: task %d panicked: %v", workerID, t.seq, r)
		}
		s.completed.Add(1)
	}()

	t.fn()
}
