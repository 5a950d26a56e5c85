package core

import (
	"time"

	"github.com/rs/xid"

	"github.com/forgelight/eventcore/dispatch"
	"github.com/forgelight/eventcore/monitoring"
	"github.com/forgelight/eventcore/sched"
	"github.com/forgelight/eventcore/statsrecording"
)

// Builder can be used to build a Core.
type Builder struct {
	workerCount        int
	threaded           bool
	threadingThreshold int
	batchSize          int
	drainBudget        time.Duration

	monitorOn   bool
	monitorPort int

	recordingOn    bool
	outputFileName string
	recorderConfig *statsrecording.RecorderConfig
	sampleInterval int
}

// MakeBuilder creates a new builder with monitoring and recording on,
// threading on, and one worker per spare CPU.
func MakeBuilder() Builder {
	return Builder{
		threaded:       true,
		monitorOn:      true,
		recordingOn:    true,
		sampleInterval: 60,
	}
}

// WithWorkerCount sets the size of the worker pool. Zero means one worker
// per CPU, minus one for the update loop.
func (b Builder) WithWorkerCount(n int) Builder {
	b.workerCount = n
	return b
}

// WithoutThreading starts the dispatch manager with the threaded condition
// pass off.
func (b Builder) WithoutThreading() Builder {
	b.threaded = false
	return b
}

// WithThreadingThreshold sets the registered-event count above which the
// condition pass uses the worker pool.
func (b Builder) WithThreadingThreshold(n int) Builder {
	b.threadingThreshold = n
	return b
}

// WithBatchSize sets the number of events per worker task.
func (b Builder) WithBatchSize(n int) Builder {
	b.batchSize = n
	return b
}

// WithDrainBudget sets the per-tick delivery time budget.
func (b Builder) WithDrainBudget(d time.Duration) Builder {
	b.drainBudget = d
	return b
}

// WithoutMonitoring sets the core to not start a monitoring server.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithoutStatsRecording sets the core to not record statistics.
func (b Builder) WithoutStatsRecording() Builder {
	b.recordingOn = false
	return b
}

// WithOutputFileName sets the custom output file name for the stats
// recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

// WithRecorderConfig selects the stats backend explicitly, e.g. a
// ClickHouse server instead of the default SQLite file.
func (b Builder) WithRecorderConfig(cfg statsrecording.RecorderConfig) Builder {
	b.recorderConfig = &cfg
	return b
}

// WithSampleInterval sets how many ticks pass between stats samples.
func (b Builder) WithSampleInterval(ticks int) Builder {
	b.sampleInterval = ticks
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.recordingOn && b.outputFileName != "" {
		panic("output file name cannot be set when recording is disabled")
	}

	if !b.recordingOn && b.recorderConfig != nil {
		panic("recorder config cannot be set when recording is disabled")
	}

	if b.recorderConfig != nil && b.outputFileName != "" {
		panic("output file name and recorder config cannot both be set")
	}

	if b.workerCount < 0 {
		panic("worker count must not be negative")
	}

	if b.sampleInterval <= 0 {
		panic("sample interval must be positive")
	}
}

// Build builds the core: the worker pool is started, the manager is
// initialized, and the optional services are wired and running.
func (b Builder) Build() *Core {
	b.parametersMustBeValid()

	c := &Core{
		id:             xid.New().String(),
		sampleInterval: uint64(b.sampleInterval),
	}

	workerCount := b.workerCount
	if workerCount == 0 {
		workerCount = sched.DefaultWorkerCount()
	}
	c.scheduler = sched.NewScheduler()
	c.scheduler.Start(workerCount)

	mb := dispatch.MakeBuilder().WithScheduler(c.scheduler)
	if !b.threaded {
		mb = mb.WithoutThreading()
	}
	if b.threadingThreshold > 0 {
		mb = mb.WithThreadingThreshold(b.threadingThreshold)
	}
	if b.batchSize > 0 {
		mb = mb.WithBatchSize(b.batchSize)
	}
	if b.drainBudget > 0 {
		mb = mb.WithDrainBudget(b.drainBudget)
	}
	c.manager = mb.Build()
	c.manager.Init()

	if b.recordingOn {
		if b.recorderConfig != nil {
			c.recorder = statsrecording.NewRecorderWithConfig(*b.recorderConfig)
		} else {
			outputPath := b.outputFileName
			if outputPath == "" {
				outputPath = "eventcore_run_" + c.id
			}
			c.recorder = statsrecording.NewSQLiteWriter(outputPath)
		}
		c.collector = statsrecording.NewCollector(
			c.recorder, c.manager, c.scheduler)
	}

	if b.monitorOn {
		c.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			c.monitor.WithPortNumber(b.monitorPort)
		}
		c.monitor.RegisterManager(c.manager)
		c.monitor.RegisterScheduler(c.scheduler)
		c.monitor.StartServer()
	}

	return c
}
