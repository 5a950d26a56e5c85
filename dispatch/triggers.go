package dispatch

import (
	"time"

	"github.com/forgelight/eventcore/events"
)

// Convenience triggers for the common game notifications. They build the
// payload from pools so a burst of triggers does not allocate per call, and
// fire synthetic envelopes without requiring a registered event.

func (m *Manager) initPools() {
	m.weatherPool.New = func() any { return new(WeatherChange) }
	m.scenePool.New = func() any { return new(SceneChange) }
	m.npcPool.New = func() any { return new(NPCSpawn) }
}

// ChangeWeather fires a weather-change notification.
func (m *Manager) ChangeWeather(kind events.WeatherKind, transitionTime float64, mode Mode) {
	p := m.weatherPool.Get().(*WeatherChange)
	p.Kind = kind
	p.TransitionTime = transitionTime

	m.Trigger(EventData{
		Type:       events.TypeWeather,
		Name:       "weather.change",
		Payload:    p,
		onConsumed: func() { m.weatherPool.Put(p) },
	}, mode)
}

// ChangeScene fires a scene-change notification.
func (m *Manager) ChangeScene(targetScene string, transition events.TransitionKind, duration float64, mode Mode) {
	p := m.scenePool.Get().(*SceneChange)
	p.TargetScene = targetScene
	p.Transition = transition
	p.Duration = duration

	m.Trigger(EventData{
		Type:       events.TypeSceneChange,
		Name:       "scene.change",
		Payload:    p,
		onConsumed: func() { m.scenePool.Put(p) },
	}, mode)
}

// SpawnNPC fires an NPC-spawn notification at the given position.
func (m *Manager) SpawnNPC(kind string, x, y float64, mode Mode) {
	p := m.npcPool.Get().(*NPCSpawn)
	p.Kind = kind
	p.X = x
	p.Y = y

	m.Trigger(EventData{
		Type:       events.TypeNPCSpawn,
		Name:       "npc.spawn",
		Payload:    p,
		onConsumed: func() { m.npcPool.Put(p) },
	}, mode)
}

// TriggerResourceChange fires a resource-quantity notification.
func (m *Manager) TriggerResourceChange(ownerID string, resource events.ResourceHandle, oldQuantity, newQuantity int, reason string, mode Mode) {
	m.Trigger(EventData{
		Type: events.TypeResourceChange,
		Name: "resource.change",
		Payload: &ResourceChange{
			OwnerID:     ownerID,
			Resource:    resource,
			OldQuantity: oldQuantity,
			NewQuantity: newQuantity,
			Reason:      reason,
		},
	}, mode)
}

// TriggerParticleEffect fires a particle-effect notification.
func (m *Manager) TriggerParticleEffect(effectName string, x, y, intensity, duration float64, groupTag string, mode Mode) {
	m.Trigger(EventData{
		Type: events.TypeParticleEffect,
		Name: "particle.effect",
		Payload: &ParticleEffect{
			EffectName: effectName,
			X:          x,
			Y:          y,
			Intensity:  intensity,
			Duration:   duration,
			GroupTag:   groupTag,
		},
	}, mode)
}

// World and camera notifications carry the event object itself; their
// payloads have too many shapes to be worth pooling.

func (m *Manager) triggerCarried(e events.Event, mode Mode) {
	m.Trigger(EventData{
		Event: e,
		Type:  e.TypeID(),
		Name:  e.Name(),
	}, mode)
}

// TriggerWorldLoaded fires a world-loaded notification.
func (m *Manager) TriggerWorldLoaded(worldID string, width, height int, mode Mode) {
	m.triggerCarried(events.NewWorldLoadedEvent("world.loaded", worldID, width, height), mode)
}

// TriggerWorldUnloaded fires a world-unloaded notification.
func (m *Manager) TriggerWorldUnloaded(worldID string, mode Mode) {
	m.triggerCarried(events.NewWorldUnloadedEvent("world.unloaded", worldID), mode)
}

// TriggerTileChanged fires a tile-changed notification.
func (m *Manager) TriggerTileChanged(x, y int, changeKind string, mode Mode) {
	m.triggerCarried(events.NewTileChangedEvent("world.tile_changed", x, y, changeKind), mode)
}

// TriggerWorldGenerated fires a world-generated notification.
func (m *Manager) TriggerWorldGenerated(worldID string, width, height int, generationSeconds float64, mode Mode) {
	m.triggerCarried(events.NewWorldGeneratedEvent("world.generated", worldID, width, height, generationSeconds), mode)
}

// TriggerCameraMoved fires a camera-moved notification.
func (m *Manager) TriggerCameraMoved(newPos, oldPos events.Position, mode Mode) {
	m.triggerCarried(events.NewCameraMovedEvent("camera.moved", newPos, oldPos), mode)
}

// TriggerCameraModeChanged fires a camera-mode notification.
func (m *Manager) TriggerCameraModeChanged(newMode, oldMode int, mode Mode) {
	m.triggerCarried(events.NewCameraModeChangedEvent("camera.mode_changed", newMode, oldMode), mode)
}

// TriggerCameraShakeStarted fires a camera-shake notification.
func (m *Manager) TriggerCameraShakeStarted(duration time.Duration, intensity float64, mode Mode) {
	m.triggerCarried(events.NewCameraShakeEvent("camera.shake_started", duration, intensity), mode)
}

// TriggerCameraShakeEnded fires a shake-ended notification.
func (m *Manager) TriggerCameraShakeEnded(mode Mode) {
	m.triggerCarried(events.NewCameraShakeEndedEvent("camera.shake_ended"), mode)
}

// TriggerCameraTargetChanged fires a camera-target notification.
func (m *Manager) TriggerCameraTargetChanged(newTarget, oldTarget string, mode Mode) {
	m.triggerCarried(events.NewCameraTargetChangedEvent("camera.target_changed", newTarget, oldTarget), mode)
}

// CreateWeatherEvent constructs, configures, and registers a repeating
// weather event with the given trigger condition.
func (m *Manager) CreateWeatherEvent(name string, kind events.WeatherKind, condition func() bool) *events.WeatherEvent {
	e := events.NewWeatherEvent(name, kind)
	e.SetCondition(condition)
	m.registry.Register(e)
	return e
}

// CreateSceneChangeEvent constructs and registers a one-time scene-change
// event with the given trigger condition.
func (m *Manager) CreateSceneChangeEvent(name, targetScene string, condition func() bool) *events.SceneChangeEvent {
	e := events.NewSceneChangeEvent(name, targetScene)
	e.SetCondition(condition)
	e.SetOneTime(true)
	m.registry.Register(e)
	return e
}

// CreateNPCSpawnEvent constructs and registers an NPC-spawn event with the
// given trigger condition.
func (m *Manager) CreateNPCSpawnEvent(name string, params events.SpawnParameters, condition func() bool) *events.NPCSpawnEvent {
	e := events.NewNPCSpawnEvent(name, params)
	e.SetCondition(condition)
	m.registry.Register(e)
	return e
}

// CreateTimeEvent constructs and registers an event that fires when the
// clock enters the [startHour, endHour) window. The window may wrap
// midnight.
func (m *Manager) CreateTimeEvent(name string, clock events.Clock, startHour, endHour float64, cooldown time.Duration) *events.TimeEvent {
	e := events.NewTimeEvent(name, clock, startHour, endHour)
	e.SetCooldown(cooldown)
	m.registry.Register(e)
	return e
}

// CreateCustomEvent constructs and registers a fully scripted event.
func (m *Manager) CreateCustomEvent(name string, condition func() bool, action func()) *events.CustomEvent {
	e := events.NewCustomEvent(name, condition, action)
	m.registry.Register(e)
	return e
}
