package events

import "time"

// WeatherKind names a weather condition.
type WeatherKind string

// Built-in weather conditions. Custom kinds are plain strings.
const (
	WeatherClear  WeatherKind = "Clear"
	WeatherCloudy WeatherKind = "Cloudy"
	WeatherRainy  WeatherKind = "Rainy"
	WeatherStormy WeatherKind = "Stormy"
	WeatherFoggy  WeatherKind = "Foggy"
	WeatherSnowy  WeatherKind = "Snowy"
)

// WeatherParams tunes how a weather change plays out.
type WeatherParams struct {
	Intensity      float64
	TransitionTime time.Duration
}

// A WeatherEvent transitions the world to a weather condition when its
// conditions fire. The visual transition itself belongs to the weather
// subsystem; this event only carries the request.
type WeatherEvent struct {
	*BaseEvent

	kind   WeatherKind
	params WeatherParams

	// condition evaluated each tick; nil means never fire on its own
	condition func() bool
}

// NewWeatherEvent creates a weather event targeting the given condition.
func NewWeatherEvent(name string, kind WeatherKind) *WeatherEvent {
	return &WeatherEvent{
		BaseEvent: NewBaseEvent(name, TypeWeather),
		kind:      kind,
		params:    WeatherParams{Intensity: 1.0, TransitionTime: 5 * time.Second},
	}
}

// WeatherKind returns the target condition.
func (e *WeatherEvent) WeatherKind() WeatherKind { return e.kind }

// SetWeatherKind changes the target condition.
func (e *WeatherEvent) SetWeatherKind(kind WeatherKind) { e.kind = kind }

// Params returns the transition parameters.
func (e *WeatherEvent) Params() WeatherParams { return e.params }

// SetParams replaces the transition parameters.
func (e *WeatherEvent) SetParams(p WeatherParams) { e.params = p }

// SetCondition installs the trigger condition, e.g. a time-of-day or season
// check supplied by the world simulation.
func (e *WeatherEvent) SetCondition(fn func() bool) { e.condition = fn }

// CheckConditions reports whether the installed condition wants the weather
// to change this tick.
func (e *WeatherEvent) CheckConditions() bool {
	if e.condition == nil {
		return false
	}
	return e.condition()
}
