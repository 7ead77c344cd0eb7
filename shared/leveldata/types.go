// Package leveldata provides TMX arena parsing shared between the viewer and
// the headless simulator. It has no dependencies on ebitengine, donburi, or
// resolv, pure data only.
package leveldata

// ArenaData holds the terrain description parsed from a TMX arena file.
type ArenaData struct {
	Name         string
	Width        int
	Height       int
	GroundY      float64
	TerrainLeft  float64
	TerrainRight float64
	TerrainTop   float64
	TerrainBot   float64
	Spawns       []SpawnPoint
}

// SpawnPoint represents a fighter start location.
type SpawnPoint struct {
	X           float64
	Side        int
	FacingRight bool
}
