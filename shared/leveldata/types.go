// Package leveldata parses TMX levels into plain records. It has no
// dependencies on ebitengine, donburi, or resolv.
package leveldata

// Level holds everything the simulation needs from a TMX file. All
// rectangles are top-left based, in world units.
type Level struct {
	Name        string
	Solids      []SolidRect
	Platforms   []FloatingPlatform
	Breakables  []Rect
	SpawnPoints []SpawnPoint
	Enemies     []EnemySpawn
	MapWidth    int
	MapHeight   int
}

type Rect struct {
	X, Y, W, H float64
}

// SolidRect represents a solid collision tile.
type SolidRect struct {
	Rect
	OneWay   bool
	Slope    int    // 0, 1 rises to the right, -1 rises to the left
	Material string // "stone" or "grassy"
}

// FloatingPlatform is a one-way platform that bobs up by Rise over Period
// seconds and back.
type FloatingPlatform struct {
	Rect
	Rise   float64
	Period float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// EnemySpawn places an enemy of the named kind.
type EnemySpawn struct {
	X, Y float64
	Kind string
}
