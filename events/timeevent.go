package events

// Clock supplies the in-game time of day. The calendar computation lives
// outside the dispatch core; a TimeEvent only consumes it.
type Clock interface {
	// HourOfDay returns the current in-game hour in [0, 24).
	HourOfDay() float64
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() float64

// HourOfDay calls fn.
func (fn ClockFunc) HourOfDay() float64 { return fn() }

// A TimeEvent fires when the in-game clock enters an hour window. A window
// may wrap midnight, e.g. startHour 22 and endHour 6 covers the night.
type TimeEvent struct {
	*BaseEvent

	clock     Clock
	startHour float64
	endHour   float64
}

// NewTimeEvent creates a time-of-day trigger reading from clock.
func NewTimeEvent(name string, clock Clock, startHour, endHour float64) *TimeEvent {
	return &TimeEvent{
		BaseEvent: NewBaseEvent(name, TypeTime),
		clock:     clock,
		startHour: startHour,
		endHour:   endHour,
	}
}

// Window returns the hour window the event fires in.
func (e *TimeEvent) Window() (startHour, endHour float64) {
	return e.startHour, e.endHour
}

// CheckConditions reports whether the clock is inside the hour window.
func (e *TimeEvent) CheckConditions() bool {
	if e.clock == nil {
		return false
	}
	h := e.clock.HourOfDay()
	if e.startHour <= e.endHour {
		return h >= e.startHour && h < e.endHour
	}
	// window wraps midnight
	return h >= e.startHour || h < e.endHour
}
