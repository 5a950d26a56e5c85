// Package core assembles the dispatch engine: the worker pool, the dispatch
// manager, and the optional monitoring and stats-recording services, built
// and torn down together.
package core

import (
	"time"

	"github.com/forgelight/eventcore/dispatch"
	"github.com/forgelight/eventcore/monitoring"
	"github.com/forgelight/eventcore/sched"
	"github.com/forgelight/eventcore/statsrecording"
)

// A Core provides the services required to run an event-driven game loop.
type Core struct {
	id string

	scheduler *sched.Scheduler
	manager   *dispatch.Manager
	monitor   *monitoring.Monitor
	recorder  statsrecording.StatsRecorder
	collector *statsrecording.Collector

	sampleInterval uint64
	tick           uint64
}

// ID identifies this core instance.
func (c *Core) ID() string {
	return c.id
}

// Manager returns the dispatch manager.
func (c *Core) Manager() *dispatch.Manager {
	return c.manager
}

// Scheduler returns the worker pool.
func (c *Core) Scheduler() *sched.Scheduler {
	return c.scheduler
}

// Monitor returns the monitor, or nil when monitoring is disabled.
func (c *Core) Monitor() *monitoring.Monitor {
	return c.monitor
}

// Recorder returns the stats recorder, or nil when recording is disabled.
func (c *Core) Recorder() statsrecording.StatsRecorder {
	return c.recorder
}

// Update advances the dispatch core by one game tick and samples statistics
// on the configured cadence.
func (c *Core) Update(dt time.Duration) {
	start := time.Now()

	c.manager.Update(dt)

	c.tick++
	if c.collector != nil && c.tick%c.sampleInterval == 0 {
		c.collector.Sample(time.Since(start))
	}
}

// DumpStats takes a stats sample immediately and flushes all buffered rows
// to the recorder. It is a no-op when recording is disabled.
func (c *Core) DumpStats() {
	if c.collector == nil {
		return
	}
	c.collector.Sample(0)
	c.recorder.Flush()
}

// Terminate tears the core down: the manager first so no new work is
// produced, then the worker pool, then the stats flush.
func (c *Core) Terminate() {
	c.manager.Clean()
	c.scheduler.Stop()
	if c.collector != nil {
		c.collector.Close()
	}
}
