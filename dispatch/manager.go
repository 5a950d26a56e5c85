package dispatch

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/forgelight/eventcore/events"
	"github.com/forgelight/eventcore/sched"
)

// Dispatch errors.
var (
	// ErrNotInitialized is returned when the manager is used before Init or
	// after Clean.
	ErrNotInitialized = errors.New("dispatch: manager not initialized")

	// ErrUnknownEvent is returned when a trigger names an event that is not
	// registered.
	ErrUnknownEvent = errors.New("dispatch: unknown event")
)

const (
	// defaultThreadingThreshold is the registered-event count above which the
	// condition pass is farmed out to the scheduler.
	defaultThreadingThreshold = 50

	// defaultBatchSize is the number of events per scheduler task during the
	// threaded condition pass.
	defaultBatchSize = 32

	// defaultDrainBudget caps the time one Update tick spends delivering
	// deferred envelopes. Leftovers carry over to the next tick.
	defaultDrainBudget = 2 * time.Millisecond

	// threadingDrainWait bounds how long EnableThreading(false) waits for
	// scheduler batches already in flight.
	threadingDrainWait = 500 * time.Millisecond
)

// Manager is the dispatch core. It owns the event registry, the handler
// registry, the deferred queue, and the per-type performance tracker, and it
// drives them all from Update.
//
// Update must be called from a single goroutine, the game update loop. Every
// other method is safe to call from any goroutine, including from inside
// handlers. With threading enabled, handlers for a large deferred backlog
// may run on worker goroutines and must be safe for that.
type Manager struct {
	registry *Registry
	handlers *HandlerRegistry
	pending  *pendingBuffer
	perf     *PerfTracker

	scheduler *sched.Scheduler
	logger    *log.Logger

	threadingThreshold int
	batchSize          int
	drainBudget        time.Duration

	initialized atomic.Bool
	threaded    atomic.Bool

	// flightMu serializes batch submission against the bounded waits in
	// EnableThreading and PrepareForStateTransition, so no batch starts
	// while a wait is in progress. inFlight counts submitted batches not
	// yet finished.
	flightMu sync.Mutex
	inFlight atomic.Int64

	// carryMu guards carry, which holds envelopes the previous tick could
	// not deliver within its budget. The monitor reads its length from the
	// serve goroutine.
	carryMu sync.Mutex
	carry   []EventData

	weatherPool sync.Pool
	scenePool   sync.Pool
	npcPool     sync.Pool
}

// Init prepares the manager for dispatching. Calling Init on an initialized
// manager is a no-op.
func (m *Manager) Init() {
	if m.initialized.Swap(true) {
		return
	}
	m.logger.Printf("dispatch: initialized, threading=%v, threshold=%d, batch=%d",
		m.threaded.Load(), m.threadingThreshold, m.batchSize)
}

// IsInitialized reports whether the manager is between Init and Clean.
func (m *Manager) IsInitialized() bool {
	return m.initialized.Load()
}

// Clean tears the manager down: handlers first so nothing fires during
// cleanup, then events, then queued envelopes, then the counters. The
// scheduler is left running; it belongs to the caller.
func (m *Manager) Clean() {
	if !m.initialized.Swap(false) {
		return
	}

	m.handlers.ClearAll()
	m.ClearAllEvents()
	m.pending.Clear()
	m.carryMu.Lock()
	for i := range m.carry {
		m.carry[i].consume()
	}
	m.carry = nil
	m.carryMu.Unlock()
	m.perf.Reset()
	m.logger.Printf("dispatch: cleaned up")
}

// Events returns the event registry.
func (m *Manager) Events() *Registry { return m.registry }

// Handlers returns the handler registry.
func (m *Manager) Handlers() *HandlerRegistry { return m.handlers }

// Perf returns the performance tracker.
func (m *Manager) Perf() *PerfTracker { return m.perf }

// RegisterEvent adds e to the registry. It reports whether an event with the
// same name was replaced.
func (m *Manager) RegisterEvent(e events.Event) bool {
	return m.registry.Register(e)
}

// UnregisterEvent removes the named event from the registry.
func (m *Manager) UnregisterEvent(name string) bool {
	return m.registry.Unregister(name)
}

// GetEvent returns the named event.
func (m *Manager) GetEvent(name string) (events.Event, bool) {
	return m.registry.Get(name)
}

// HasEvent reports whether an event is registered under name.
func (m *Manager) HasEvent(name string) bool {
	return m.registry.Has(name)
}

// EventCount returns the number of registered events.
func (m *Manager) EventCount() int {
	return m.registry.Len()
}

// SetEventActive toggles the named event's active flag without registering
// or unregistering it. It reports whether the event exists.
func (m *Manager) SetEventActive(name string, active bool) bool {
	return m.registry.SetActive(name, active)
}

// IsEventActive reports whether the named event exists and is active.
func (m *Manager) IsEventActive(name string) bool {
	return m.registry.IsActive(name)
}

// ClearAllEvents cleans every registered event and empties the registry.
func (m *Manager) ClearAllEvents() {
	for _, e := range m.registry.All() {
		e.Clean()
	}
	m.registry.Clear()
}

// Subscribe registers fn for every event of type t.
func (m *Manager) Subscribe(t events.TypeID, fn HandlerFunc) Token {
	return m.handlers.Subscribe(t, fn)
}

// SubscribeName registers fn for the named event only.
func (m *Manager) SubscribeName(name string, fn HandlerFunc) Token {
	return m.handlers.SubscribeName(name, fn)
}

// Unsubscribe removes the handler registered with token. Unknown tokens are
// ignored.
func (m *Manager) Unsubscribe(token Token) bool {
	return m.handlers.Unsubscribe(token)
}

// ClearAllHandlers removes every registered handler.
func (m *Manager) ClearAllHandlers() {
	m.handlers.ClearAll()
}

// TriggerEvent fires the named registered event. With Immediate the handlers
// run before TriggerEvent returns; with Deferred the envelope is queued for
// the next Update tick.
func (m *Manager) TriggerEvent(name string, mode Mode) error {
	if !m.initialized.Load() {
		return ErrNotInitialized
	}

	e, ok := m.registry.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEvent, name)
	}

	m.Trigger(EventData{
		Event:    e,
		Type:     e.TypeID(),
		Name:     name,
		priority: e.Priority(),
	}, mode)
	return nil
}

// Trigger fires a prebuilt envelope. Synthetic envelopes with a nil Event
// are allowed; they are delivered to handlers only.
func (m *Manager) Trigger(d EventData, mode Mode) {
	if !m.initialized.Load() {
		d.consume()
		return
	}
	if mode == Immediate {
		m.deliver(d)
		return
	}
	m.pending.Push(d)
}

// ExecuteEvent runs the named event's handlers right now, outside the queue.
// With no handlers subscribed, the event's own Execute runs as the fallback.
// It reports whether anything ran.
func (m *Manager) ExecuteEvent(name string) bool {
	e, ok := m.registry.Get(name)
	if !ok {
		return false
	}

	m.deliver(EventData{
		Event:    e,
		Type:     e.TypeID(),
		Name:     name,
		priority: e.Priority(),
	})
	return true
}

// ExecuteEventsByType runs every registered event of type t, highest event
// priority first. It returns the number of events executed.
func (m *Manager) ExecuteEventsByType(t events.TypeID) int {
	evs := m.registry.ListByType(t)
	sort.SliceStable(evs, func(i, j int) bool {
		return evs[i].Priority() > evs[j].Priority()
	})

	for _, e := range evs {
		m.deliver(EventData{
			Event:    e,
			Type:     e.TypeID(),
			Name:     e.Name(),
			priority: e.Priority(),
		})
	}
	return len(evs)
}

// EnableThreading toggles the threaded condition pass. Disabling waits,
// bounded, for scheduler batches already in flight so the caller can rely on
// single-threaded evaluation afterwards.
func (m *Manager) EnableThreading(on bool) {
	was := m.threaded.Swap(on)
	if was && !on {
		m.flightMu.Lock()
		drained := m.waitInFlight(threadingDrainWait)
		m.flightMu.Unlock()
		if !drained {
			m.logger.Printf("dispatch: threading disable timed out waiting for in-flight batches")
		}
	}
}

// IsThreadingEnabled reports whether the condition pass may use the
// scheduler.
func (m *Manager) IsThreadingEnabled() bool {
	return m.threaded.Load()
}

// PendingCount returns the number of envelopes queued for the next tick,
// including carry-over from the previous tick.
func (m *Manager) PendingCount() int {
	m.carryMu.Lock()
	carried := len(m.carry)
	m.carryMu.Unlock()
	return m.pending.Len() + carried
}

// DroppedCount returns the number of envelopes evicted by queue pressure.
func (m *Manager) DroppedCount() uint64 {
	return m.pending.Dropped()
}

// PrepareForStateTransition discards everything queued so a scene or state
// change starts with an empty dispatch pipeline. Registered events and
// handlers survive; only undelivered envelopes are dropped.
func (m *Manager) PrepareForStateTransition() {
	m.flightMu.Lock()
	m.waitInFlight(threadingDrainWait)
	m.flightMu.Unlock()

	m.pending.Clear()
	m.carryMu.Lock()
	for i := range m.carry {
		m.carry[i].consume()
	}
	m.carry = m.carry[:0]
	m.carryMu.Unlock()
}

// Update advances the dispatch core by one tick: cooldowns and conditions
// are evaluated for every registered event, events whose conditions pass are
// queued, then the deferred queue is drained within the tick's time budget.
func (m *Manager) Update(dt time.Duration) {
	if !m.initialized.Load() {
		return
	}

	m.conditionPass(dt)
	m.drain()
}

func (m *Manager) conditionPass(dt time.Duration) {
	evs := m.registry.All()
	if len(evs) == 0 {
		return
	}

	if !m.useThreading(len(evs)) {
		for _, e := range evs {
			m.evaluate(e, dt)
		}
		return
	}

	var wg sync.WaitGroup
	m.flightMu.Lock()
	for start := 0; start < len(evs); start += m.batchSize {
		end := start + m.batchSize
		if end > len(evs) {
			end = len(evs)
		}
		batch := evs[start:end]

		wg.Add(1)
		m.inFlight.Add(1)
		_, err := m.scheduler.Submit(sched.High, func() {
			defer wg.Done()
			defer m.inFlight.Add(-1)
			for _, e := range batch {
				m.evaluate(e, dt)
			}
		})
		if err != nil {
			// Scheduler gone, fall back to inline for this batch.
			wg.Done()
			m.inFlight.Add(-1)
			for _, e := range batch {
				m.evaluate(e, dt)
			}
		}
	}
	m.flightMu.Unlock()
	wg.Wait()
}

func (m *Manager) useThreading(eventCount int) bool {
	return m.threaded.Load() &&
		m.scheduler != nil &&
		!m.scheduler.IsStopped() &&
		eventCount > m.threadingThreshold
}

// evaluate advances one event's cooldown and queues it if its conditions
// pass. One-time events deactivate once queued.
func (m *Manager) evaluate(e events.Event, dt time.Duration) {
	e.UpdateCooldown(dt)
	if !e.IsActive() || e.IsOnCooldown() {
		return
	}

	e.Update()
	if !e.CheckConditions() {
		return
	}

	m.pending.Push(EventData{
		Event:    e,
		Type:     e.TypeID(),
		Name:     e.Name(),
		priority: e.Priority(),
	})
	e.StartCooldown()
	if e.IsOneTime() {
		e.SetActive(false)
	}
}

// drain delivers carried-over envelopes and this tick's queue, highest event
// priority first. Large backlogs go to the worker pool in batches; the
// inline path stops at the tick's time budget and carries leftovers over.
func (m *Manager) drain() {
	swapped := m.pending.Swap()

	m.carryMu.Lock()
	batch := append(m.carry, swapped...)
	m.carry = nil
	m.carryMu.Unlock()

	if len(batch) == 0 {
		return
	}
	sort.SliceStable(batch, func(i, j int) bool {
		return batch[i].priority > batch[j].priority
	})

	if m.useThreading(len(batch)) {
		m.drainThreaded(batch)
		return
	}

	deadline := time.Now().Add(m.drainBudget)
	for i := range batch {
		m.deliver(batch[i])
		if time.Now().After(deadline) && i+1 < len(batch) {
			m.carryMu.Lock()
			m.carry = append(m.carry, batch[i+1:]...)
			m.carryMu.Unlock()
			break
		}
	}
}

// drainThreaded delivers the envelopes as Normal-priority worker tasks and
// waits for them, so the generation boundary holds. Delivery order across
// workers is not guaranteed.
func (m *Manager) drainThreaded(batch []EventData) {
	var wg sync.WaitGroup
	m.flightMu.Lock()
	for start := 0; start < len(batch); start += m.batchSize {
		end := start + m.batchSize
		if end > len(batch) {
			end = len(batch)
		}
		part := batch[start:end]

		wg.Add(1)
		m.inFlight.Add(1)
		_, err := m.scheduler.Submit(sched.Normal, func() {
			defer wg.Done()
			defer m.inFlight.Add(-1)
			for i := range part {
				m.deliver(part[i])
			}
		})
		if err != nil {
			wg.Done()
			m.inFlight.Add(-1)
			for i := range part {
				m.deliver(part[i])
			}
		}
	}
	m.flightMu.Unlock()
	wg.Wait()
}

// deliver runs one envelope through its handler snapshot. With no handlers,
// the event's own Execute runs as the fallback. Handler errors are logged;
// panics are recovered so one handler cannot take down the tick.
func (m *Manager) deliver(d EventData) {
	start := time.Now()

	hs := m.handlers.Resolve(d.Type, d.Name)
	if len(hs) == 0 {
		if d.Event != nil {
			m.safeExecute(d.Event)
		}
	} else {
		for _, h := range hs {
			m.safeHandle(h, d)
		}
	}
	d.consume()

	m.perf.Record(d.Type, time.Since(start))
}

func (m *Manager) safeHandle(h HandlerFunc, d EventData) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Printf("dispatch: handler panic on %s %q: %v", d.Type, d.Name, r)
		}
	}()

	if err := h(d); err != nil {
		m.logger.Printf("dispatch: handler error on %s %q: %v", d.Type, d.Name, err)
	}
}

func (m *Manager) safeExecute(e events.Event) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Printf("dispatch: event %q execute panic: %v", e.Name(), r)
		}
	}()

	e.Execute()
}

// waitInFlight polls until no scheduler batches are in flight or d elapses.
// It reports whether the count reached zero. Callers hold flightMu so no new
// batch starts during the wait.
func (m *Manager) waitInFlight(d time.Duration) bool {
	deadline := time.Now().Add(d)
	for m.inFlight.Load() > 0 {
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(50 * time.Microsecond)
	}
	return true
}
