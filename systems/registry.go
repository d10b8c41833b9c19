package systems

// System IDs in schedule order.
const (
	SystemInput     = "input"
	SystemMovement  = "movement"
	SystemFoodSpawn = "food_spawn"
	SystemScale     = "scale"
	SystemTranslate = "translate"
)

// SystemInfo describes a game system for UI display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this system does
	Category    string // Grouping (e.g., "input", "logic", "render")
	TimerGated  bool   // Runs only when its timer fires
}

// SystemRegistry holds metadata about all systems.
// This centralizes system naming so the HUD, perf tracker and CSV output stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all known systems in the order they run each frame.
// Update this when adding new systems.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: SystemInput, Name: "Input", Description: "Maps arrow keys to head direction", Category: "input"})

	r.Register(SystemInfo{ID: SystemMovement, Name: "Movement", Description: "Steps the head and ripples segments", Category: "logic", TimerGated: true})
	r.Register(SystemInfo{ID: SystemFoodSpawn, Name: "Food Spawn", Description: "Places food at a random cell", Category: "logic", TimerGated: true})

	r.Register(SystemInfo{ID: SystemScale, Name: "Scale", Description: "Grid size to pixel scale", Category: "render"})
	r.Register(SystemInfo{ID: SystemTranslate, Name: "Translate", Description: "Grid position to pixel translation", Category: "render"})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns system info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a system ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered systems.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// IDs returns all system IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
