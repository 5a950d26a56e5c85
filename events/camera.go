package events

import "time"

// CameraEventKind distinguishes the camera notifications sharing one type
// tag.
type CameraEventKind int

// The camera notification kinds.
const (
	CameraMoved CameraEventKind = iota
	CameraModeChanged
	CameraShakeStarted
	CameraShakeEnded
	CameraTargetChanged
)

func (k CameraEventKind) String() string {
	switch k {
	case CameraMoved:
		return "moved"
	case CameraModeChanged:
		return "mode_changed"
	case CameraShakeStarted:
		return "shake_started"
	case CameraShakeEnded:
		return "shake_ended"
	case CameraTargetChanged:
		return "target_changed"
	}
	return "unknown"
}

// Position is a 2D world position.
type Position struct {
	X, Y float64
}

// A CameraEvent notifies subscribers of camera movement, mode changes, and
// shake effects.
type CameraEvent struct {
	*BaseEvent

	kind CameraEventKind

	newPos, oldPos   Position
	newMode, oldMode int

	shakeDuration  time.Duration
	shakeIntensity float64

	newTarget, oldTarget string
}

// NewCameraMovedEvent creates a camera-moved notification.
func NewCameraMovedEvent(name string, newPos, oldPos Position) *CameraEvent {
	return &CameraEvent{
		BaseEvent: NewBaseEvent(name, TypeCamera),
		kind:      CameraMoved,
		newPos:    newPos,
		oldPos:    oldPos,
	}
}

// NewCameraModeChangedEvent creates a mode-change notification.
func NewCameraModeChangedEvent(name string, newMode, oldMode int) *CameraEvent {
	return &CameraEvent{
		BaseEvent: NewBaseEvent(name, TypeCamera),
		kind:      CameraModeChanged,
		newMode:   newMode,
		oldMode:   oldMode,
	}
}

// NewCameraShakeEvent creates a shake-started notification.
func NewCameraShakeEvent(name string, duration time.Duration, intensity float64) *CameraEvent {
	return &CameraEvent{
		BaseEvent:      NewBaseEvent(name, TypeCamera),
		kind:           CameraShakeStarted,
		shakeDuration:  duration,
		shakeIntensity: intensity,
	}
}

// NewCameraShakeEndedEvent creates a shake-ended notification.
func NewCameraShakeEndedEvent(name string) *CameraEvent {
	return &CameraEvent{
		BaseEvent: NewBaseEvent(name, TypeCamera),
		kind:      CameraShakeEnded,
	}
}

// NewCameraTargetChangedEvent creates a target-change notification. Targets
// are entity ids; either may be empty.
func NewCameraTargetChangedEvent(name, newTarget, oldTarget string) *CameraEvent {
	return &CameraEvent{
		BaseEvent: NewBaseEvent(name, TypeCamera),
		kind:      CameraTargetChanged,
		newTarget: newTarget,
		oldTarget: oldTarget,
	}
}

// Kind returns which camera notification this is.
func (e *CameraEvent) Kind() CameraEventKind { return e.kind }

// Positions returns the new and old camera position for moved notifications.
func (e *CameraEvent) Positions() (newPos, oldPos Position) {
	return e.newPos, e.oldPos
}

// Modes returns the new and old camera mode for mode-change notifications.
func (e *CameraEvent) Modes() (newMode, oldMode int) { return e.newMode, e.oldMode }

// Shake returns the shake parameters for shake-started notifications.
func (e *CameraEvent) Shake() (duration time.Duration, intensity float64) {
	return e.shakeDuration, e.shakeIntensity
}

// Targets returns the new and old follow target for target-change
// notifications.
func (e *CameraEvent) Targets() (newTarget, oldTarget string) {
	return e.newTarget, e.oldTarget
}
