package models

// Room condition classifications. The kind drives color/icon selection on
// the dashboard and row coloring in the exported report.
const (
	KindSafe  = "safe"
	KindSmoke = "smoke"
	KindFire  = "fire"
	KindTemp  = "temp"
)

// Room is one fixed facility zone: a condition classification plus two
// numeric readings. Exactly four rooms exist for the whole session; their
// field values are swapped wholesale between the two presets below.
type Room struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	Kind         string `json:"kind"`          // safe | smoke | fire | temp
	TemperatureC int    `json:"temperature_c"` // °C
	SmokeLevel   int    `json:"smoke_level"`   // percent, 0..100
}

// SafeRooms returns the fixed all-clear preset. Each call returns a fresh
// slice so callers can never alias the preset tables.
func SafeRooms() []Room {
	return []Room{
		{ID: 1, Name: "Main Office", Status: "All clear", Kind: KindSafe, TemperatureC: 22, SmokeLevel: 0},
		{ID: 2, Name: "Server Room", Status: "All clear", Kind: KindSafe, TemperatureC: 24, SmokeLevel: 0},
		{ID: 3, Name: "Storage Bay", Status: "All clear", Kind: KindSafe, TemperatureC: 21, SmokeLevel: 0},
		{ID: 4, Name: "Lobby", Status: "All clear", Kind: KindSafe, TemperatureC: 23, SmokeLevel: 0},
	}
}

// IncidentRooms returns the fixed emergency preset: one open fire, one
// dense-smoke zone, one abnormal heat rise, and one zone still safe.
func IncidentRooms() []Room {
	return []Room{
		{ID: 1, Name: "Main Office", Status: "Dense smoke detected", Kind: KindSmoke, TemperatureC: 34, SmokeLevel: 78},
		{ID: 2, Name: "Server Room", Status: "Open flame detected", Kind: KindFire, TemperatureC: 85, SmokeLevel: 90},
		{ID: 3, Name: "Storage Bay", Status: "Critical temperature rise", Kind: KindTemp, TemperatureC: 67, SmokeLevel: 15},
		{ID: 4, Name: "Lobby", Status: "No anomalies detected", Kind: KindSafe, TemperatureC: 23, SmokeLevel: 2},
	}
}
