// Package monitoring turns a running dispatch core into a small HTTP server
// for inspection: registered events, per-type timings, scheduler state, and
// process resources.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/forgelight/eventcore/dispatch"
	"github.com/forgelight/eventcore/events"
	"github.com/forgelight/eventcore/sched"
)

// Monitor exposes a dispatch manager and its scheduler over HTTP.
type Monitor struct {
	manager     *dispatch.Manager
	scheduler   *sched.Scheduler
	portNumber  int
	openBrowser bool
	startTime   time.Time
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor. Ports below 1000 are
// rejected and a random port is used instead.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithBrowser makes StartServer open the monitor URL in the default
// browser.
func (m *Monitor) WithBrowser() *Monitor {
	m.openBrowser = true
	return m
}

// RegisterManager registers the dispatch manager to be monitored.
func (m *Monitor) RegisterManager(mgr *dispatch.Manager) {
	m.manager = mgr
}

// RegisterScheduler registers the worker pool to be monitored.
func (m *Monitor) RegisterScheduler(s *sched.Scheduler) {
	m.scheduler = s
}

// StartServer starts the monitor as a web server, on the configured port or
// a random one. It returns the address the server listens on.
func (m *Monitor) StartServer() string {
	m.startTime = time.Now()

	r := mux.NewRouter()
	r.HandleFunc("/api/status", m.status)
	r.HandleFunc("/api/stats", m.allStats)
	r.HandleFunc("/api/stats/{type}", m.typeStats)
	r.HandleFunc("/api/events", m.listEvents)
	r.HandleFunc("/api/event/{name}", m.eventDetails)
	r.HandleFunc("/api/trigger/{name}", m.triggerEvent)
	r.HandleFunc("/api/scheduler", m.schedulerState)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	r.PathPrefix("/debug/").Handler(http.DefaultServeMux)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring dispatch core with %s\n", url)

	go func() {
		err = http.Serve(listener, r)
		dieOnErr(err)
	}()

	if m.openBrowser {
		if err := browser.OpenURL(url); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot open browser: %s\n", err)
		}
	}

	return listener.Addr().String()
}

type statusRsp struct {
	Initialized   bool    `json:"initialized"`
	Threading     bool    `json:"threading"`
	PendingCount  int     `json:"pending_count"`
	DroppedCount  uint64  `json:"dropped_count"`
	EventCount    int     `json:"event_count"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

func (m *Monitor) status(w http.ResponseWriter, _ *http.Request) {
	rsp := statusRsp{
		Initialized:   m.manager.IsInitialized(),
		Threading:     m.manager.IsThreadingEnabled(),
		PendingCount:  m.manager.PendingCount(),
		DroppedCount:  m.manager.DroppedCount(),
		EventCount:    m.manager.Events().Len(),
		UptimeSeconds: time.Since(m.startTime).Seconds(),
	}

	writeJSON(w, rsp)
}

type typeStatsRsp struct {
	EventType string  `json:"event_type"`
	Count     uint64  `json:"count"`
	TotalMS   float64 `json:"total_ms"`
	MinMS     float64 `json:"min_ms"`
	MaxMS     float64 `json:"max_ms"`
	AvgMS     float64 `json:"avg_ms"`
}

func statsToRsp(s dispatch.TypeStats) typeStatsRsp {
	return typeStatsRsp{
		EventType: s.Type.String(),
		Count:     s.Count,
		TotalMS:   float64(s.Total) / float64(time.Millisecond),
		MinMS:     float64(s.Min) / float64(time.Millisecond),
		MaxMS:     float64(s.Max) / float64(time.Millisecond),
		AvgMS:     float64(s.Average) / float64(time.Millisecond),
	}
}

func (m *Monitor) allStats(w http.ResponseWriter, _ *http.Request) {
	all := m.manager.Perf().AllStats()

	rsp := make([]typeStatsRsp, 0, len(all))
	for _, s := range all {
		rsp = append(rsp, statsToRsp(s))
	}

	writeJSON(w, rsp)
}

func (m *Monitor) typeStats(w http.ResponseWriter, r *http.Request) {
	typeName := mux.Vars(r)["type"]
	t := events.TypeIDFromString(typeName)

	writeJSON(w, statsToRsp(m.manager.Perf().Stats(t)))
}

func (m *Monitor) listEvents(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprint(w, "[")
	for i, name := range m.manager.Events().Names() {
		if i > 0 {
			fmt.Fprint(w, ",")
		}

		fmt.Fprintf(w, "%q", name)
	}
	fmt.Fprint(w, "]")
}

func (m *Monitor) eventDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	event := m.findEventOr404(w, name)
	if event == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(event)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

func (m *Monitor) triggerEvent(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	mode := dispatch.Deferred
	if r.URL.Query().Get("mode") == "immediate" {
		mode = dispatch.Immediate
	}

	err := m.manager.TriggerEvent(name, mode)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, "Error: %s", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type schedulerRsp struct {
	WorkerCount int      `json:"worker_count"`
	Stopped     bool     `json:"stopped"`
	Submitted   uint64   `json:"submitted"`
	Completed   uint64   `json:"completed"`
	Panicked    uint64   `json:"panicked"`
	QueueDepths []int    `json:"queue_depths"`
	Priorities  []string `json:"priorities"`
}

func (m *Monitor) schedulerState(w http.ResponseWriter, _ *http.Request) {
	if m.scheduler == nil {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, "No scheduler registered")
		return
	}

	counters := m.scheduler.CounterSnapshot()
	depths := m.scheduler.QueueDepths()

	rsp := schedulerRsp{
		WorkerCount: m.scheduler.WorkerCount(),
		Stopped:     m.scheduler.IsStopped(),
		Submitted:   counters.Submitted,
		Completed:   counters.Completed,
		Panicked:    counters.Panicked,
		QueueDepths: depths[:],
		Priorities: []string{
			sched.Critical.String(),
			sched.High.String(),
			sched.Normal.String(),
			sched.Low.String(),
			sched.IdlePriority.String(),
		},
	}

	writeJSON(w, rsp)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	proc, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memoryInfo, err := proc.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memoryInfo.RSS,
	}

	writeJSON(w, rsp)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	writeJSON(w, prof)
}

func (m *Monitor) findEventOr404(
	w http.ResponseWriter,
	name string,
) events.Event {
	event, ok := m.manager.GetEvent(name)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Event not found"))
		dieOnErr(err)
		return nil
	}

	return event
}

func writeJSON(w http.ResponseWriter, v any) {
	bytes, err := json.Marshal(v)
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
