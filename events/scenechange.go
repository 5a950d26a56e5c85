package events

import "time"

// TransitionKind names a scene transition style.
type TransitionKind string

// Built-in transition styles.
const (
	TransitionFade     TransitionKind = "fade"
	TransitionDissolve TransitionKind = "dissolve"
	TransitionWipe     TransitionKind = "wipe"
	TransitionInstant  TransitionKind = "instant"
)

// A SceneChangeEvent requests a switch to another scene. The scene loading
// and transition rendering are the scene manager's concern.
type SceneChangeEvent struct {
	*BaseEvent

	targetScene string
	transition  TransitionKind
	duration    time.Duration

	condition func() bool
}

// NewSceneChangeEvent creates a scene change request targeting sceneID.
func NewSceneChangeEvent(name, targetScene string) *SceneChangeEvent {
	return &SceneChangeEvent{
		BaseEvent:   NewBaseEvent(name, TypeSceneChange),
		targetScene: targetScene,
		transition:  TransitionFade,
		duration:    time.Second,
	}
}

// TargetScene returns the scene to switch to.
func (e *SceneChangeEvent) TargetScene() string { return e.targetScene }

// SetTargetScene changes the destination scene.
func (e *SceneChangeEvent) SetTargetScene(id string) { e.targetScene = id }

// Transition returns the transition style.
func (e *SceneChangeEvent) Transition() TransitionKind { return e.transition }

// SetTransition changes the transition style.
func (e *SceneChangeEvent) SetTransition(t TransitionKind) { e.transition = t }

// Duration returns how long the transition plays.
func (e *SceneChangeEvent) Duration() time.Duration { return e.duration }

// SetDuration changes how long the transition plays.
func (e *SceneChangeEvent) SetDuration(d time.Duration) { e.duration = d }

// SetCondition installs the trigger condition.
func (e *SceneChangeEvent) SetCondition(fn func() bool) { e.condition = fn }

// CheckConditions reports whether the installed condition wants the scene
// to change this tick.
func (e *SceneChangeEvent) CheckConditions() bool {
	if e.condition == nil {
		return false
	}
	return e.condition()
}
