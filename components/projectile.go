package components

import "github.com/yohamta/donburi"

type ProjectileType int

const (
	ProjectileEnemyEgg ProjectileType = iota
	ProjectileDecoy
	ProjectileHeart
	ProjectileFeather
	ProjectileIcicle
	ProjectileFireball
	ProjectileRock
)

type ProjectileData struct {
	Type   ProjectileType
	Enemy  bool
	Decoy  bool
	Landed bool
	Timer  float64 // ms until a landed projectile despawns
}

var Projectile = donburi.NewComponentType[ProjectileData]()
