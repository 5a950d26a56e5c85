package statsrecording

// Table names used by the collector.
const (
	TableRunInfo   = "run_info"
	TableDispatch  = "dispatch_stats"
	TableTicks     = "ticks"
	TableScheduler = "scheduler_stats"
)

// RunInfoRow is one key-value property describing the recording run.
type RunInfoRow struct {
	Property string
	Value    string
}

// DispatchRow is the cumulative dispatch timing for one event type at one
// sample point. Durations are nanoseconds.
type DispatchRow struct {
	Tick      uint64
	EventType string
	Count     uint64
	TotalNS   int64
	MinNS     int64
	MaxNS     int64
	AvgNS     int64
}

// TickRow describes one sampled update tick.
type TickRow struct {
	Tick       uint64
	DurationNS int64
	Pending    int
	Dropped    uint64
}

// SchedulerRow is a snapshot of the worker pool at one sample point.
type SchedulerRow struct {
	Tick          uint64
	Submitted     uint64
	Completed     uint64
	Panicked      uint64
	DepthCritical int
	DepthHigh     int
	DepthNormal   int
	DepthLow      int
	DepthIdle     int
}
