// Package events defines the event contract consumed by the dispatch core
// and the concrete event types the engine ships with.
package events

import (
	"sync"
	"time"
)

// TypeID identifies the category of an event. Handler resolution is a table
// lookup on this value, so the set is closed.
type TypeID int

// The known event categories.
const (
	TypeWeather TypeID = iota
	TypeSceneChange
	TypeNPCSpawn
	TypeResourceChange
	TypeParticleEffect
	TypeWorld
	TypeCamera
	TypeTime
	TypeHarvest
	TypeCustom

	// TypeCount is a sentinel for sizing type-indexed tables.
	TypeCount
)

var typeNames = [TypeCount]string{
	TypeWeather:        "Weather",
	TypeSceneChange:    "SceneChange",
	TypeNPCSpawn:       "NPCSpawn",
	TypeResourceChange: "ResourceChange",
	TypeParticleEffect: "ParticleEffect",
	TypeWorld:          "World",
	TypeCamera:         "Camera",
	TypeTime:           "Time",
	TypeHarvest:        "Harvest",
	TypeCustom:         "Custom",
}

func (t TypeID) String() string {
	if t < 0 || t >= TypeCount {
		return "Unknown"
	}
	return typeNames[t]
}

// TypeIDFromString returns the TypeID named by s. Unknown names map to
// TypeCustom, matching how the engine treats unrecognized event kinds.
func TypeIDFromString(s string) TypeID {
	for id, name := range typeNames {
		if name == s {
			return TypeID(id)
		}
	}
	return TypeCustom
}

// An Event is a named game occurrence that can be triggered on conditions.
//
// Update refreshes the event's internal state once per tick. Execute runs the
// event's built-in behavior; it is the fallback when no handlers are
// subscribed for the event. CheckConditions reports whether the event wants
// to fire this tick. Reset returns the event to its initial state so a
// one-time event can fire again. Clean releases any resources the event
// holds.
//
// Implementations must be safe for concurrent use: the dispatch core may
// evaluate conditions on a worker thread while game code toggles the active
// flag from another.
type Event interface {
	Name() string
	TypeID() TypeID

	Update()
	Execute()
	Reset()
	Clean()

	CheckConditions() bool

	IsActive() bool
	SetActive(active bool)

	IsOneTime() bool
	SetOneTime(oneTime bool)
	HasTriggered() bool

	Priority() int
	SetPriority(priority int)

	Cooldown() time.Duration
	SetCooldown(d time.Duration)
	IsOnCooldown() bool
	StartCooldown()
	ResetCooldown()
	UpdateCooldown(dt time.Duration)
}

// BaseEvent provides the shared state and getters for concrete event types.
// Embed it and override the behavior methods.
type BaseEvent struct {
	name   string
	typeID TypeID

	mu           sync.Mutex
	active       bool
	oneTime      bool
	triggered    bool
	priority     int
	cooldown     time.Duration
	cooldownLeft time.Duration
	onCooldown   bool
}

// NewBaseEvent creates a BaseEvent with the given identity. The event starts
// active, repeating, and with no cooldown.
func NewBaseEvent(name string, typeID TypeID) *BaseEvent {
	return &BaseEvent{
		name:   name,
		typeID: typeID,
		active: true,
	}
}

// Name returns the unique name the event was registered under.
func (e *BaseEvent) Name() string { return e.name }

// TypeID returns the event's category.
func (e *BaseEvent) TypeID() TypeID { return e.typeID }

// Update is a no-op; concrete types override it.
func (e *BaseEvent) Update() {}

// Execute marks the event as triggered. Concrete types call through after
// running their own behavior.
func (e *BaseEvent) Execute() {
	e.mu.Lock()
	e.triggered = true
	e.mu.Unlock()
}

// Reset clears the triggered flag and the cooldown so the event can fire
// again.
func (e *BaseEvent) Reset() {
	e.mu.Lock()
	e.triggered = false
	e.onCooldown = false
	e.cooldownLeft = 0
	e.mu.Unlock()
}

// Clean is a no-op; concrete types override it when they hold resources.
func (e *BaseEvent) Clean() {}

// CheckConditions reports false; concrete types override it.
func (e *BaseEvent) CheckConditions() bool { return false }

// IsActive reports whether the event participates in the update pass.
func (e *BaseEvent) IsActive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// SetActive toggles participation in the update pass. It does not register
// or remove the event.
func (e *BaseEvent) SetActive(active bool) {
	e.mu.Lock()
	e.active = active
	e.mu.Unlock()
}

// IsOneTime reports whether the event deactivates after one trigger.
func (e *BaseEvent) IsOneTime() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.oneTime
}

// SetOneTime marks the event to deactivate after one successful trigger.
func (e *BaseEvent) SetOneTime(oneTime bool) {
	e.mu.Lock()
	e.oneTime = oneTime
	e.mu.Unlock()
}

// HasTriggered reports whether Execute has run since the last Reset.
func (e *BaseEvent) HasTriggered() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.triggered
}

// Priority returns the event's batch-ordering priority. Higher fires first
// within a drained batch; it does not map onto scheduler priorities.
func (e *BaseEvent) Priority() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.priority
}

// SetPriority sets the batch-ordering priority.
func (e *BaseEvent) SetPriority(priority int) {
	e.mu.Lock()
	e.priority = priority
	e.mu.Unlock()
}

// Cooldown returns the configured cooldown duration.
func (e *BaseEvent) Cooldown() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cooldown
}

// SetCooldown configures the minimum time between triggers. Zero disables
// the cooldown.
func (e *BaseEvent) SetCooldown(d time.Duration) {
	e.mu.Lock()
	e.cooldown = d
	e.mu.Unlock()
}

// IsOnCooldown reports whether the cooldown window is still elapsing.
func (e *BaseEvent) IsOnCooldown() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.onCooldown
}

// StartCooldown begins the cooldown window if one is configured.
func (e *BaseEvent) StartCooldown() {
	e.mu.Lock()
	if e.cooldown > 0 {
		e.onCooldown = true
		e.cooldownLeft = e.cooldown
	}
	e.mu.Unlock()
}

// ResetCooldown cancels an elapsing cooldown window.
func (e *BaseEvent) ResetCooldown() {
	e.mu.Lock()
	e.onCooldown = false
	e.cooldownLeft = 0
	e.mu.Unlock()
}

// UpdateCooldown advances the cooldown window by dt.
func (e *BaseEvent) UpdateCooldown(dt time.Duration) {
	e.mu.Lock()
	if e.onCooldown {
		e.cooldownLeft -= dt
		if e.cooldownLeft <= 0 {
			e.onCooldown = false
			e.cooldownLeft = 0
		}
	}
	e.mu.Unlock()
}
