package components

import "github.com/yohamta/donburi"

// BreakableData is carried by objects that fall while airborne and turn
// into solid ground once they rest.
type BreakableData struct {
	HP float64 // milliseconds left for decaying summoned platforms
}

// SummonableData is a player-conjured rock. While Active it follows the
// player; once released it is either thrown or placed as a platform.
type SummonableData struct {
	Active    bool
	Speed     float64 // units/s
	MaxOffset float64
}

var (
	Breakable  = donburi.NewComponentType[BreakableData]()
	Summonable = donburi.NewComponentType[SummonableData]()
)
