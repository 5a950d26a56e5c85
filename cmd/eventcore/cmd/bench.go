package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/forgelight/eventcore/core"
	"github.com/forgelight/eventcore/dispatch"
	"github.com/forgelight/eventcore/events"
	"github.com/forgelight/eventcore/statsrecording"
)

var benchFlags = struct {
	eventCount  int
	tickCount   int
	tickMillis  int
	workerCount int
	fireRate    float64
	noThreading bool
	monitor     bool
	monitorPort int
	record      bool
	output      string
	clickhouse  string
}{}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run a synthetic dispatch workload and print timing statistics.",
	Run:   runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().IntVar(&benchFlags.eventCount, "events", 500,
		"number of registered events")
	benchCmd.Flags().IntVar(&benchFlags.tickCount, "ticks", 1000,
		"number of update ticks to run")
	benchCmd.Flags().IntVar(&benchFlags.tickMillis, "tick-ms", 16,
		"simulated tick length in milliseconds")
	benchCmd.Flags().IntVar(&benchFlags.workerCount, "workers", 0,
		"worker pool size, 0 means one per spare CPU")
	benchCmd.Flags().Float64Var(&benchFlags.fireRate, "fire-rate", 0.05,
		"per-tick probability that an event's conditions pass")
	benchCmd.Flags().BoolVar(&benchFlags.noThreading, "no-threading", false,
		"evaluate conditions inline instead of on the worker pool")
	benchCmd.Flags().BoolVar(&benchFlags.monitor, "monitor", false,
		"start the monitoring server during the run")
	benchCmd.Flags().IntVar(&benchFlags.monitorPort, "port", 0,
		"monitoring server port, 0 picks a random port")
	benchCmd.Flags().BoolVar(&benchFlags.record, "record", false,
		"record statistics to a SQLite file")
	benchCmd.Flags().StringVar(&benchFlags.output, "output", "",
		"stats output file name, empty generates a unique name")
	benchCmd.Flags().StringVar(&benchFlags.clickhouse, "clickhouse", "",
		"record to a ClickHouse server instead of SQLite, "+
			"clickhouse://host:port/db?username=u&password=p")
}

// applyEnvDefaults fills flags the user left unset from the environment. It
// runs after Execute has loaded .env, so values from that file are visible
// here; init-time defaults would be read before the load.
func applyEnvDefaults(cmd *cobra.Command) {
	if !cmd.Flags().Changed("port") {
		benchFlags.monitorPort = envInt("EVENTCORE_MONITOR_PORT",
			benchFlags.monitorPort)
	}
	if !cmd.Flags().Changed("output") {
		if v := os.Getenv("EVENTCORE_OUTPUT"); v != "" {
			benchFlags.output = v
		}
	}
	if !cmd.Flags().Changed("clickhouse") {
		if v := os.Getenv("EVENTCORE_CLICKHOUSE"); v != "" {
			benchFlags.clickhouse = v
		}
	}
}

func envInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func runBench(cmd *cobra.Command, _ []string) {
	applyEnvDefaults(cmd)

	c := buildBenchCore()
	defer c.Terminate()

	var delivered atomic.Int64
	for t := events.TypeID(0); t < events.TypeCount; t++ {
		c.Manager().Subscribe(t, func(dispatch.EventData) error {
			delivered.Add(1)
			return nil
		})
	}

	registerBenchEvents(c.Manager())

	dt := time.Duration(benchFlags.tickMillis) * time.Millisecond
	start := time.Now()
	for i := 0; i < benchFlags.tickCount; i++ {
		c.Update(dt)
	}
	elapsed := time.Since(start)

	printBenchReport(c, delivered.Load(), elapsed)
}

func buildBenchCore() *core.Core {
	b := core.MakeBuilder().
		WithWorkerCount(benchFlags.workerCount)

	if benchFlags.noThreading {
		b = b.WithoutThreading()
	}

	if benchFlags.monitor {
		if benchFlags.monitorPort > 0 {
			b = b.WithMonitorPort(benchFlags.monitorPort)
		}
	} else {
		b = b.WithoutMonitoring()
	}

	if benchFlags.record {
		switch {
		case benchFlags.clickhouse != "":
			b = b.WithRecorderConfig(statsrecording.RecorderConfig{
				Type:    "clickhouse",
				ConnStr: benchFlags.clickhouse,
			})
		case benchFlags.output != "":
			b = b.WithOutputFileName(benchFlags.output)
		}
	} else {
		b = b.WithoutStatsRecording()
	}

	return b.Build()
}

func registerBenchEvents(m *dispatch.Manager) {
	condition := func() bool {
		return rand.Float64() < benchFlags.fireRate
	}

	for i := 0; i < benchFlags.eventCount; i++ {
		name := fmt.Sprintf("bench.%04d", i)
		switch i % 4 {
		case 0:
			m.CreateWeatherEvent(name, events.WeatherStormy, condition)
		case 1:
			m.CreateNPCSpawnEvent(name, events.SpawnParameters{
				NPCKind: "bench-npc",
				Count:   3,
			}, condition)
		case 2:
			e := m.CreateCustomEvent(name, condition, nil)
			e.SetPriority(i % 10)
		case 3:
			e := m.CreateCustomEvent(name, condition, nil)
			e.SetCooldown(250 * time.Millisecond)
		}
	}
}

func printBenchReport(c *core.Core, delivered int64, elapsed time.Duration) {
	fmt.Printf("ran %d ticks over %d events in %v\n",
		benchFlags.tickCount, benchFlags.eventCount, elapsed)
	fmt.Printf("delivered %d envelopes, %d dropped, %d still pending\n",
		delivered, c.Manager().DroppedCount(), c.Manager().PendingCount())

	counters := c.Scheduler().CounterSnapshot()
	fmt.Printf("scheduler: %d tasks submitted, %d completed, %d panicked\n",
		counters.Submitted, counters.Completed, counters.Panicked)

	fmt.Println("per-type dispatch timings:")
	for _, s := range c.Manager().Perf().AllStats() {
		fmt.Printf("  %-15s count=%-8d avg=%-12v min=%-12v max=%v\n",
			s.Type, s.Count, s.Average, s.Min, s.Max)
	}
}
