package components

import "github.com/yohamta/donburi"

type GravityData struct {
	Magnitude        float64 // units/s²
	TerminalVelocity float64 // units/s
}

var Gravity = donburi.NewComponentType[GravityData]()
