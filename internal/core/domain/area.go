package domain

// LifeArea is a fixed catalog entry. Areas are never created or destroyed at
// runtime; habits and weekly goals reference them by ID.
type LifeArea struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// DefaultColor is used when a habit references an area that is not in the
// catalog. Icon mapping is a presentation concern and lives outside the core.
const DefaultColor = "#3B82F6"

var lifeAreas = []LifeArea{
	{ID: "health", Name: "Health", Color: "#09855c", Description: "Physical & mental wellbeing"},
	{ID: "finance", Name: "Finance", Color: "#3B82F6", Description: "Financial management & growth"},
	{ID: "knowledge", Name: "Knowledge", Color: "#F59E0B", Description: "Learning & education"},
	{ID: "communication", Name: "Communication", Color: "#8B5CF6", Description: "Social & professional communication"},
	{ID: "skill", Name: "Skill", Color: "#EF4444", Description: "Professional & personal skills"},
	{ID: "meditation", Name: "Meditation", Color: "#00ffe5", Description: "Mindfulness & inner peace"},
}

// LifeAreas returns the catalog in display order. The returned slice is a
// copy, callers may not mutate the catalog.
func LifeAreas() []LifeArea {
	out := make([]LifeArea, len(lifeAreas))
	copy(out, lifeAreas)
	return out
}

// AreaByID looks up a catalog entry. ok is false for unknown ids.
func AreaByID(id string) (LifeArea, bool) {
	for _, a := range lifeAreas {
		if a.ID == id {
			return a, true
		}
	}
	return LifeArea{}, false
}

// AreaColor resolves the display color for an area id, falling back to
// DefaultColor for unknown areas.
func AreaColor(id string) string {
	if a, ok := AreaByID(id); ok {
		return a.Color
	}
	return DefaultColor
}
