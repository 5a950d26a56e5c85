package events

// A CustomEvent wires caller-supplied condition and action functions into
// the event contract. Game logic uses it for one-off triggers that do not
// deserve their own type.
type CustomEvent struct {
	*BaseEvent

	condition func() bool
	action    func()
	onUpdate  func()
	onClean   func()
}

// NewCustomEvent creates an event that fires when condition returns true and
// runs action when executed. Either function may be nil.
func NewCustomEvent(name string, condition func() bool, action func()) *CustomEvent {
	return &CustomEvent{
		BaseEvent: NewBaseEvent(name, TypeCustom),
		condition: condition,
		action:    action,
	}
}

// OnUpdate installs a per-tick state refresh hook.
func (e *CustomEvent) OnUpdate(fn func()) { e.onUpdate = fn }

// Update runs the installed refresh hook.
func (e *CustomEvent) Update() {
	if e.onUpdate != nil {
		e.onUpdate()
	}
}

// Execute runs the action and marks the event triggered.
func (e *CustomEvent) Execute() {
	if e.action != nil {
		e.action()
	}
	e.BaseEvent.Execute()
}

// OnClean installs a hook that runs when the event is cleaned up.
func (e *CustomEvent) OnClean(fn func()) { e.onClean = fn }

// Clean runs the installed cleanup hook.
func (e *CustomEvent) Clean() {
	if e.onClean != nil {
		e.onClean()
	}
}

// CheckConditions evaluates the installed condition.
func (e *CustomEvent) CheckConditions() bool {
	if e.condition == nil {
		return false
	}
	return e.condition()
}
