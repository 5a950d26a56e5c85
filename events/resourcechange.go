package events

// ResourceHandle identifies a resource kind in the inventory system without
// importing it.
type ResourceHandle uint64

// InvalidResourceHandle is the zero, never-valid handle.
const InvalidResourceHandle ResourceHandle = 0

// A ResourceChangeEvent records a quantity change of a resource owned by an
// entity. It is usually fired as a notification rather than registered with
// conditions.
type ResourceChangeEvent struct {
	*BaseEvent

	ownerID     string
	resource    ResourceHandle
	oldQuantity int
	newQuantity int
	reason      string
}

// NewResourceChangeEvent creates a change notification.
func NewResourceChangeEvent(
	name, ownerID string,
	resource ResourceHandle,
	oldQuantity, newQuantity int,
	reason string,
) *ResourceChangeEvent {
	return &ResourceChangeEvent{
		BaseEvent:   NewBaseEvent(name, TypeResourceChange),
		ownerID:     ownerID,
		resource:    resource,
		oldQuantity: oldQuantity,
		newQuantity: newQuantity,
		reason:      reason,
	}
}

// OwnerID returns the owning entity's id.
func (e *ResourceChangeEvent) OwnerID() string { return e.ownerID }

// Resource returns the changed resource's handle.
func (e *ResourceChangeEvent) Resource() ResourceHandle { return e.resource }

// Quantities returns the quantity before and after the change.
func (e *ResourceChangeEvent) Quantities() (old, new int) {
	return e.oldQuantity, e.newQuantity
}

// Delta returns the signed quantity change.
func (e *ResourceChangeEvent) Delta() int { return e.newQuantity - e.oldQuantity }

// Reason returns the free-form cause, e.g. "harvest" or "craft".
func (e *ResourceChangeEvent) Reason() string { return e.reason }
