package events

import "time"

// A ParticleEffectEvent requests a visual effect at a world position. These
// are fire-and-forget: one-time by default and never condition-triggered.
type ParticleEffectEvent struct {
	*BaseEvent

	effectName string
	x, y       float64
	intensity  float64
	duration   time.Duration
	groupTag   string
}

// NewParticleEffectEvent creates an effect request at (x, y). A zero
// duration means the effect decides its own lifetime.
func NewParticleEffectEvent(
	name, effectName string,
	x, y, intensity float64,
	duration time.Duration,
	groupTag string,
) *ParticleEffectEvent {
	e := &ParticleEffectEvent{
		BaseEvent:  NewBaseEvent(name, TypeParticleEffect),
		effectName: effectName,
		x:          x,
		y:          y,
		intensity:  intensity,
		duration:   duration,
		groupTag:   groupTag,
	}
	e.SetOneTime(true)
	return e
}

// EffectName returns the effect asset name.
func (e *ParticleEffectEvent) EffectName() string { return e.effectName }

// Position returns the world position of the effect.
func (e *ParticleEffectEvent) Position() (x, y float64) { return e.x, e.y }

// Intensity returns the effect strength multiplier.
func (e *ParticleEffectEvent) Intensity() float64 { return e.intensity }

// Duration returns the requested lifetime; zero lets the effect decide.
func (e *ParticleEffectEvent) Duration() time.Duration { return e.duration }

// GroupTag returns the tag used to stop groups of effects together.
func (e *ParticleEffectEvent) GroupTag() string { return e.groupTag }
