package events

// SpawnPoint is a world position an NPC can appear at.
type SpawnPoint struct {
	X, Y float64
}

// SpawnParameters describes what to spawn and where.
type SpawnParameters struct {
	NPCKind     string
	Count       int
	SpawnRadius float64
	Points      []SpawnPoint
}

// An NPCSpawnEvent asks the entity system to create NPCs. The spawning rules
// themselves live with the entity system.
type NPCSpawnEvent struct {
	*BaseEvent

	params SpawnParameters

	condition func() bool
}

// NewNPCSpawnEvent creates a spawn request with the given parameters.
func NewNPCSpawnEvent(name string, params SpawnParameters) *NPCSpawnEvent {
	if params.Count <= 0 {
		params.Count = 1
	}
	return &NPCSpawnEvent{
		BaseEvent: NewBaseEvent(name, TypeNPCSpawn),
		params:    params,
	}
}

// Params returns the spawn parameters.
func (e *NPCSpawnEvent) Params() SpawnParameters { return e.params }

// SetParams replaces the spawn parameters.
func (e *NPCSpawnEvent) SetParams(p SpawnParameters) { e.params = p }

// AddSpawnPoint appends a candidate position.
func (e *NPCSpawnEvent) AddSpawnPoint(x, y float64) {
	e.params.Points = append(e.params.Points, SpawnPoint{X: x, Y: y})
}

// SetCondition installs the trigger condition, e.g. a proximity check.
func (e *NPCSpawnEvent) SetCondition(fn func() bool) { e.condition = fn }

// CheckConditions reports whether the installed condition wants a spawn this
// tick.
func (e *NPCSpawnEvent) CheckConditions() bool {
	if e.condition == nil {
		return false
	}
	return e.condition()
}
