// Package dispatch implements the concurrent event-dispatch core: the event
// and handler registries, the double-buffered pending queue, and the update
// tick that hands deferred work to the scheduler.
package dispatch

import (
	"github.com/forgelight/eventcore/events"
)

// Mode selects how a trigger is delivered.
type Mode int

const (
	// Deferred queues the trigger for the next Update tick.
	Deferred Mode = iota
	// Immediate runs the handlers synchronously on the calling thread.
	Immediate
)

func (m Mode) String() string {
	if m == Immediate {
		return "Immediate"
	}
	return "Deferred"
}

// EventData is the envelope handed to handlers. Event may be nil for
// synthetic triggers that only carry a payload. The envelope is created at
// trigger time and consumed exactly once by the handler set resolved at
// drain time.
type EventData struct {
	Event   events.Event
	Type    events.TypeID
	Name    string
	Payload any

	// priority copied from the event at trigger time; orders delivery within
	// one drained generation.
	priority int

	// onConsumed runs after the last handler, e.g. to return a pooled event.
	onConsumed func()
}

// consume runs the envelope's consumption hook once.
func (d *EventData) consume() {
	if d.onConsumed != nil {
		d.onConsumed()
		d.onConsumed = nil
	}
}

// HandlerFunc is an event-handler callback. A returned error is logged with
// the event's type and name; it never stops the dispatch tick. Panics are
// recovered at the dispatch boundary.
type HandlerFunc func(EventData) error

// Trigger payloads carried by the convenience triggers. Handlers that only
// need the payload can ignore the Event field entirely.

// WeatherChange is the payload of ChangeWeather triggers.
type WeatherChange struct {
	Kind           events.WeatherKind
	TransitionTime float64 // seconds
}

// SceneChange is the payload of ChangeScene triggers.
type SceneChange struct {
	TargetScene string
	Transition  events.TransitionKind
	Duration    float64 // seconds
}

// NPCSpawn is the payload of SpawnNPC triggers.
type NPCSpawn struct {
	Kind string
	X, Y float64
}

// ResourceChange is the payload of TriggerResourceChange triggers.
type ResourceChange struct {
	OwnerID     string
	Resource    events.ResourceHandle
	OldQuantity int
	NewQuantity int
	Reason      string
}

// ParticleEffect is the payload of TriggerParticleEffect triggers.
type ParticleEffect struct {
	EffectName string
	X, Y       float64
	Intensity  float64
	Duration   float64 // seconds, <= 0 lets the effect decide
	GroupTag   string
}
