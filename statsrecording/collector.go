package statsrecording

import (
	"runtime"
	"strconv"
	"time"

	"github.com/rs/xid"

	"github.com/forgelight/eventcore/dispatch"
	"github.com/forgelight/eventcore/sched"
)

// Collector samples a dispatch manager, and optionally its scheduler, into a
// StatsRecorder. One Sample call records one row per event type with at
// least one dispatch, one tick row, and one scheduler row.
//
// Sample is meant to be called from the update loop, typically every N
// ticks; it is not safe for concurrent use.
type Collector struct {
	recorder  StatsRecorder
	manager   *dispatch.Manager
	scheduler *sched.Scheduler

	runID string
	tick  uint64
}

// NewCollector creates the stats tables and writes the run metadata.
// The scheduler may be nil.
func NewCollector(
	recorder StatsRecorder,
	manager *dispatch.Manager,
	scheduler *sched.Scheduler,
) *Collector {
	c := &Collector{
		recorder:  recorder,
		manager:   manager,
		scheduler: scheduler,
		runID:     xid.New().String(),
	}

	recorder.CreateTable(TableRunInfo, RunInfoRow{})
	recorder.CreateTable(TableDispatch, DispatchRow{})
	recorder.CreateTable(TableTicks, TickRow{})
	if scheduler != nil {
		recorder.CreateTable(TableScheduler, SchedulerRow{})
	}

	c.writeRunInfo()

	return c
}

// RunID identifies this recording run.
func (c *Collector) RunID() string { return c.runID }

func (c *Collector) writeRunInfo() {
	c.recorder.InsertData(TableRunInfo, RunInfoRow{"run_id", c.runID})
	c.recorder.InsertData(TableRunInfo, RunInfoRow{
		"start_time", time.Now().Format(time.RFC3339),
	})
	c.recorder.InsertData(TableRunInfo, RunInfoRow{
		"num_cpu", strconv.Itoa(runtime.NumCPU()),
	})
	if c.scheduler != nil {
		c.recorder.InsertData(TableRunInfo, RunInfoRow{
			"worker_count", strconv.Itoa(c.scheduler.WorkerCount()),
		})
	}
}

// Sample records one snapshot. tickDuration is how long the last Update
// took.
func (c *Collector) Sample(tickDuration time.Duration) {
	c.tick++

	for _, s := range c.manager.Perf().AllStats() {
		c.recorder.InsertData(TableDispatch, DispatchRow{
			Tick:      c.tick,
			EventType: s.Type.String(),
			Count:     s.Count,
			TotalNS:   s.Total.Nanoseconds(),
			MinNS:     s.Min.Nanoseconds(),
			MaxNS:     s.Max.Nanoseconds(),
			AvgNS:     s.Average.Nanoseconds(),
		})
	}

	c.recorder.InsertData(TableTicks, TickRow{
		Tick:       c.tick,
		DurationNS: tickDuration.Nanoseconds(),
		Pending:    c.manager.PendingCount(),
		Dropped:    c.manager.DroppedCount(),
	})

	if c.scheduler != nil {
		counters := c.scheduler.CounterSnapshot()
		depths := c.scheduler.QueueDepths()
		c.recorder.InsertData(TableScheduler, SchedulerRow{
			Tick:          c.tick,
			Submitted:     counters.Submitted,
			Completed:     counters.Completed,
			Panicked:      counters.Panicked,
			DepthCritical: depths[sched.Critical],
			DepthHigh:     depths[sched.High],
			DepthNormal:   depths[sched.Normal],
			DepthLow:      depths[sched.Low],
			DepthIdle:     depths[sched.IdlePriority],
		})
	}
}

// Close records the end time and flushes the recorder.
func (c *Collector) Close() {
	c.recorder.InsertData(TableRunInfo, RunInfoRow{
		"end_time", time.Now().Format(time.RFC3339),
	})
	c.recorder.Flush()
}
