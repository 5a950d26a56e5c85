package dispatch

import (
	"sort"
	"sync"

	"github.com/forgelight/eventcore/events"
)

// Registry keeps named events and an index by type. Names are unique;
// registering a name again replaces the previous event.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]events.Event
	byType map[events.TypeID][]string
}

// NewRegistry returns an empty event registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]events.Event),
		byType: make(map[events.TypeID][]string),
	}
}

// Register adds e under its name, replacing any event previously registered
// under the same name. It reports whether an event was replaced. The
// replaced event is not cleaned: in-flight envelopes and callers may still
// hold it, the same as after Unregister.
func (r *Registry) Register(e events.Event) (replaced bool) {
	if e == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := e.Name()
	old, replaced := r.byName[name]
	if replaced {
		r.removeFromTypeLocked(old.TypeID(), name)
	}
	r.byName[name] = e
	r.byType[e.TypeID()] = append(r.byType[e.TypeID()], name)

	return replaced
}

// Unregister removes the event registered under name. It reports whether an
// event was removed.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byName[name]
	if !ok {
		return false
	}
	delete(r.byName, name)
	r.removeFromTypeLocked(e.TypeID(), name)

	return true
}

// Get returns the event registered under name.
func (r *Registry) Get(name string) (events.Event, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byName[name]
	return e, ok
}

// Has reports whether an event is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byName[name]
	return ok
}

// SetActive toggles the named event's active flag. It reports whether the
// event exists.
func (r *Registry) SetActive(name string, active bool) bool {
	e, ok := r.Get(name)
	if !ok {
		return false
	}
	e.SetActive(active)
	return true
}

// IsActive reports whether the named event exists and is active.
func (r *Registry) IsActive(name string) bool {
	e, ok := r.Get(name)
	return ok && e.IsActive()
}

// ListByType returns a snapshot of the events registered with the given type.
func (r *Registry) ListByType(t events.TypeID) []events.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := r.byType[t]
	if len(names) == 0 {
		return nil
	}

	out := make([]events.Event, 0, len(names))
	for _, n := range names {
		out = append(out, r.byName[n])
	}
	return out
}

// Names returns a sorted snapshot of all registered event names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.byName))
	for n := range r.byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// All returns a snapshot of every registered event.
func (r *Registry) All() []events.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]events.Event, 0, len(r.byName))
	for _, e := range r.byName {
		out = append(out, e)
	}
	return out
}

// Len returns the number of registered events.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byName)
}

// Clear removes all events.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byName = make(map[string]events.Event)
	r.byType = make(map[events.TypeID][]string)
}

func (r *Registry) removeFromTypeLocked(t events.TypeID, name string) {
	names := r.byType[t]
	for i, n := range names {
		if n == name {
			r.byType[t] = append(names[:i], names[i+1:]...)
			break
		}
	}
	if len(r.byType[t]) == 0 {
		delete(r.byType, t)
	}
}
