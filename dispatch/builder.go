package dispatch

import (
	"log"
	"os"
	"time"

	"github.com/forgelight/eventcore/sched"
)

// Builder configures and creates Managers.
type Builder struct {
	scheduler          *sched.Scheduler
	logger             *log.Logger
	threaded           bool
	threadingThreshold int
	batchSize          int
	drainBudget        time.Duration
}

// MakeBuilder returns a Builder with the default configuration: threading
// enabled, threshold 50, batch size 32, 2ms drain budget.
func MakeBuilder() Builder {
	return Builder{
		threaded:           true,
		threadingThreshold: defaultThreadingThreshold,
		batchSize:          defaultBatchSize,
		drainBudget:        defaultDrainBudget,
	}
}

// WithScheduler sets the worker pool used by the threaded condition pass.
// Without one the manager always evaluates inline.
func (b Builder) WithScheduler(s *sched.Scheduler) Builder {
	b.scheduler = s
	return b
}

// WithLogger sets the logger used for handler errors and lifecycle messages.
func (b Builder) WithLogger(l *log.Logger) Builder {
	b.logger = l
	return b
}

// WithoutThreading starts the manager with the threaded condition pass off.
func (b Builder) WithoutThreading() Builder {
	b.threaded = false
	return b
}

// WithThreadingThreshold sets the registered-event count above which the
// condition pass is farmed out to the scheduler.
func (b Builder) WithThreadingThreshold(n int) Builder {
	b.threadingThreshold = n
	return b
}

// WithBatchSize sets the number of events per scheduler task.
func (b Builder) WithBatchSize(n int) Builder {
	b.batchSize = n
	return b
}

// WithDrainBudget sets the per-tick time budget for delivering deferred
// envelopes.
func (b Builder) WithDrainBudget(d time.Duration) Builder {
	b.drainBudget = d
	return b
}

// Build creates the Manager. The manager still needs Init before use.
func (b Builder) Build() *Manager {
	b.parametersMustBeValid()

	logger := b.logger
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	m := &Manager{
		registry:           NewRegistry(),
		handlers:           NewHandlerRegistry(),
		pending:            newPendingBuffer(),
		perf:               NewPerfTracker(),
		scheduler:          b.scheduler,
		logger:             logger,
		threadingThreshold: b.threadingThreshold,
		batchSize:          b.batchSize,
		drainBudget:        b.drainBudget,
	}
	m.threaded.Store(b.threaded)
	m.initPools()

	return m
}

func (b Builder) parametersMustBeValid() {
	if b.threadingThreshold < 0 {
		log.Panicf("threading threshold must not be negative, got %d",
			b.threadingThreshold)
	}
	if b.batchSize <= 0 {
		log.Panicf("batch size must be positive, got %d", b.batchSize)
	}
	if b.drainBudget <= 0 {
		log.Panicf("drain budget must be positive, got %v", b.drainBudget)
	}
}
