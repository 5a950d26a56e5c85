package events

// WorldEventKind distinguishes the world notifications sharing one type tag.
type WorldEventKind int

// The world notification kinds.
const (
	WorldLoaded WorldEventKind = iota
	WorldUnloaded
	WorldTileChanged
	WorldGenerated
)

func (k WorldEventKind) String() string {
	switch k {
	case WorldLoaded:
		return "loaded"
	case WorldUnloaded:
		return "unloaded"
	case WorldTileChanged:
		return "tile_changed"
	case WorldGenerated:
		return "generated"
	}
	return "unknown"
}

// A WorldEvent notifies subscribers of world lifecycle changes: loads,
// unloads, generation, and tile edits.
type WorldEvent struct {
	*BaseEvent

	kind    WorldEventKind
	worldID string

	// dimensions for loaded/generated
	width, height int

	// tile position and change description for tile_changed
	tileX, tileY int
	changeKind   string

	// generation wall time for generated
	generationSeconds float64
}

// NewWorldLoadedEvent creates a world-loaded notification.
func NewWorldLoadedEvent(name, worldID string, width, height int) *WorldEvent {
	return &WorldEvent{
		BaseEvent: NewBaseEvent(name, TypeWorld),
		kind:      WorldLoaded,
		worldID:   worldID,
		width:     width,
		height:    height,
	}
}

// NewWorldUnloadedEvent creates a world-unloaded notification.
func NewWorldUnloadedEvent(name, worldID string) *WorldEvent {
	return &WorldEvent{
		BaseEvent: NewBaseEvent(name, TypeWorld),
		kind:      WorldUnloaded,
		worldID:   worldID,
	}
}

// NewTileChangedEvent creates a tile-edit notification.
func NewTileChangedEvent(name string, x, y int, changeKind string) *WorldEvent {
	return &WorldEvent{
		BaseEvent:  NewBaseEvent(name, TypeWorld),
		kind:       WorldTileChanged,
		tileX:      x,
		tileY:      y,
		changeKind: changeKind,
	}
}

// NewWorldGeneratedEvent creates a generation-finished notification.
func NewWorldGeneratedEvent(
	name, worldID string,
	width, height int,
	generationSeconds float64,
) *WorldEvent {
	return &WorldEvent{
		BaseEvent:         NewBaseEvent(name, TypeWorld),
		kind:              WorldGenerated,
		worldID:           worldID,
		width:             width,
		height:            height,
		generationSeconds: generationSeconds,
	}
}

// Kind returns which world notification this is.
func (e *WorldEvent) Kind() WorldEventKind { return e.kind }

// WorldID returns the world the notification is about.
func (e *WorldEvent) WorldID() string { return e.worldID }

// Dimensions returns the world size for loaded/generated notifications.
func (e *WorldEvent) Dimensions() (width, height int) { return e.width, e.height }

// Tile returns the edited tile position and change description.
func (e *WorldEvent) Tile() (x, y int, changeKind string) {
	return e.tileX, e.tileY, e.changeKind
}

// GenerationSeconds returns how long generation took.
func (e *WorldEvent) GenerationSeconds() float64 { return e.generationSeconds }
