package events

import (
	"fmt"
	"time"
)

// Params carries loosely-typed construction parameters, e.g. parsed from a
// level definition file.
type Params map[string]any

// Str returns the string parameter under key, or def when absent.
func (p Params) Str(key, def string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return def
}

// Num returns the numeric parameter under key, or def when absent. Integer
// and float values are both accepted.
func (p Params) Num(key string, def float64) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	}
	return def
}

// A Definition describes an event to create: its registry name, its type
// tag, and type-specific parameters.
type Definition struct {
	Name   string
	Type   TypeID
	Params Params
}

// Creator builds an event from a definition. Custom creators are keyed by
// the "kind" parameter.
type Creator func(def Definition) (Event, error)

// A Factory creates events from definitions. The built-in types are always
// available; custom kinds are added with RegisterCreator.
type Factory struct {
	creators map[string]Creator
}

// NewFactory creates an empty factory.
func NewFactory() *Factory {
	return &Factory{creators: make(map[string]Creator)}
}

// RegisterCreator adds a creator for custom definitions whose "kind"
// parameter equals kind. Registering the same kind again replaces the
// creator.
func (f *Factory) RegisterCreator(kind string, fn Creator) {
	f.creators[kind] = fn
}

// Create builds an event from def.
func (f *Factory) Create(def Definition) (Event, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("events: definition has no name")
	}
	p := def.Params
	if p == nil {
		p = Params{}
	}

	switch def.Type {
	case TypeWeather:
		e := NewWeatherEvent(def.Name, WeatherKind(p.Str("weather", string(WeatherClear))))
		e.SetParams(WeatherParams{
			Intensity:      p.Num("intensity", 1.0),
			TransitionTime: secondsParam(p, "transitionTime", 5),
		})
		return e, nil

	case TypeSceneChange:
		e := NewSceneChangeEvent(def.Name, p.Str("targetScene", ""))
		e.SetTransition(TransitionKind(p.Str("transition", string(TransitionFade))))
		e.SetDuration(secondsParam(p, "duration", 1))
		return e, nil

	case TypeNPCSpawn:
		return NewNPCSpawnEvent(def.Name, SpawnParameters{
			NPCKind:     p.Str("npcKind", ""),
			Count:       int(p.Num("count", 1)),
			SpawnRadius: p.Num("spawnRadius", 0),
		}), nil

	case TypeParticleEffect:
		return NewParticleEffectEvent(
			def.Name,
			p.Str("effect", ""),
			p.Num("x", 0), p.Num("y", 0),
			p.Num("intensity", 1.0),
			secondsParam(p, "duration", 0),
			p.Str("groupTag", ""),
		), nil

	case TypeCustom:
		kind := p.Str("kind", "")
		creator, ok := f.creators[kind]
		if !ok {
			return nil, fmt.Errorf("events: no creator registered for kind %q", kind)
		}
		return creator(def)
	}

	return nil, fmt.Errorf("events: cannot create events of type %s from a definition", def.Type)
}

func secondsParam(p Params, key string, def float64) time.Duration {
	return time.Duration(p.Num(key, def) * float64(time.Second))
}
