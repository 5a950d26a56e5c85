package dispatch

import (
	"sync"

	"github.com/forgelight/eventcore/events"
)

// Token identifies a handler subscription. Tokens are never reused, so a
// stale token held after Unsubscribe is harmless.
type Token uint64

// handlerSlot keeps the token alongside the callback so removal can nil the
// slot without disturbing registration order.
type handlerSlot struct {
	token Token
	fn    HandlerFunc
}

// HandlerRegistry maps event types and event names to ordered handler lists.
// Type handlers fire for every event of that type; name handlers fire only
// for the named event. Removal is idempotent.
type HandlerRegistry struct {
	mu        sync.RWMutex
	nextToken Token
	byType    map[events.TypeID][]handlerSlot
	byName    map[string][]handlerSlot
}

// NewHandlerRegistry returns an empty handler registry.
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		byType: make(map[events.TypeID][]handlerSlot),
		byName: make(map[string][]handlerSlot),
	}
}

// Subscribe registers fn for every event of type t and returns the removal
// token.
func (h *HandlerRegistry) Subscribe(t events.TypeID, fn HandlerFunc) Token {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextToken++
	h.byType[t] = append(h.byType[t], handlerSlot{token: h.nextToken, fn: fn})
	return h.nextToken
}

// SubscribeName registers fn for the event registered under name and returns
// the removal token.
func (h *HandlerRegistry) SubscribeName(name string, fn HandlerFunc) Token {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextToken++
	h.byName[name] = append(h.byName[name], handlerSlot{token: h.nextToken, fn: fn})
	return h.nextToken
}

// Unsubscribe removes the handler registered with token. It reports whether a
// handler was removed; removing an unknown or already-removed token is a
// no-op.
func (h *HandlerRegistry) Unsubscribe(token Token) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for t, slots := range h.byType {
		if trimmed, ok := removeSlot(slots, token); ok {
			if len(trimmed) == 0 {
				delete(h.byType, t)
			} else {
				h.byType[t] = trimmed
			}
			return true
		}
	}
	for n, slots := range h.byName {
		if trimmed, ok := removeSlot(slots, token); ok {
			if len(trimmed) == 0 {
				delete(h.byName, n)
			} else {
				h.byName[n] = trimmed
			}
			return true
		}
	}
	return false
}

// UnsubscribeAllForType removes every handler registered for type t.
func (h *HandlerRegistry) UnsubscribeAllForType(t events.TypeID) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := len(h.byType[t])
	delete(h.byType, t)
	return n
}

// UnsubscribeAllForName removes every handler registered for name.
func (h *HandlerRegistry) UnsubscribeAllForName(name string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := len(h.byName[name])
	delete(h.byName, name)
	return n
}

// ClearAll removes every handler.
func (h *HandlerRegistry) ClearAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.byType = make(map[events.TypeID][]handlerSlot)
	h.byName = make(map[string][]handlerSlot)
}

// CountForType returns the number of handlers registered for type t.
func (h *HandlerRegistry) CountForType(t events.TypeID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.byType[t])
}

// CountForName returns the number of handlers registered for name.
func (h *HandlerRegistry) CountForName(name string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.byName[name])
}

// Resolve returns a snapshot of the handlers that apply to an envelope with
// the given type and name, type handlers first, in registration order.
// Handlers added or removed after Resolve returns do not affect the snapshot.
func (h *HandlerRegistry) Resolve(t events.TypeID, name string) []HandlerFunc {
	h.mu.RLock()
	defer h.mu.RUnlock()

	typed := h.byType[t]
	named := h.byName[name]
	if len(typed)+len(named) == 0 {
		return nil
	}

	out := make([]HandlerFunc, 0, len(typed)+len(named))
	for _, s := range typed {
		out = append(out, s.fn)
	}
	for _, s := range named {
		out = append(out, s.fn)
	}
	return out
}

// removeSlot deletes the slot holding token, preserving order.
func removeSlot(slots []handlerSlot, token Token) ([]handlerSlot, bool) {
	for i := range slots {
		if slots[i].token == token {
			return append(slots[:i], slots[i+1:]...), true
		}
	}
	return slots, false
}
