package config

import (
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only ECS layer.
const Default ecs.LayerID = 0

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	// MaxStep caps the elapsed time of one step; anything beyond it is dropped.
	MaxStep time.Duration `yaml:"max_step"`

	// Collision
	LandingProbe       float64 `yaml:"landing_probe"`        // Downward nudge used to detect ground
	SolidWindow        float64 `yaml:"solid_window"`         // Half-size of the solid pre-filter window
	DynamicWindow      float64 `yaml:"dynamic_window"`       // Half-size of the dynamic pair pre-filter window
	LandingSoundSpeed  float64 `yaml:"landing_sound_speed"`  // Fall speed that triggers the landing sound
	KillPlaneMargin    float64 `yaml:"kill_plane_margin"`    // Distance below the level where players die
	KillPlaneThickness float64 `yaml:"kill_plane_thickness"` // Height of the dead zone rectangle

	// Timers (ms)
	LandTimer           float64 `yaml:"land_timer"`
	ProjectileLandTimer float64 `yaml:"projectile_land_timer"`
	HeartBonusTimer     float64 `yaml:"heart_bonus_timer"`
	DecoyTimer          float64 `yaml:"decoy_timer"`
	RespawnInvulnTimer  float64 `yaml:"respawn_invuln_timer"`
}

// BodyConfig is the default tuning copied into a new Physics/Gravity pair.
type BodyConfig struct {
	Elasticity       float64 `yaml:"elasticity"`
	AirDrag          float64 `yaml:"air_drag"`
	GroundDrag       float64 `yaml:"ground_drag"`
	RampSpeed        float64 `yaml:"ramp_speed"`
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	MoveSpeed     float64 `yaml:"move_speed"`
	JumpSpeed     float64 `yaml:"jump_speed"`
	HurtSpeed     float64 `yaml:"hurt_speed"`
	DashFactor    float64 `yaml:"dash_factor"`
	RunFactor     float64 `yaml:"run_factor"`
	RunningSpeed  float64 `yaml:"running_speed"` // |velocity.x| above which the player counts as running
	DashTime      float64 `yaml:"dash_time"`     // ms
	Health        int     `yaml:"health"`
	Width, Height float64 `yaml:"-"`
}

// SummonableConfig contains conjured rock tuning
type SummonableConfig struct {
	Speed     float64
	MaxOffset float64
	Size      float64
	// PlatformHP is how long (ms) a placed rock lasts.
	PlatformHP float64
	ThrowSpeed float64
}

// CombatConfig contains melee, contact and projectile damage tuning
type CombatConfig struct {
	HitboxWidth    float64 `yaml:"hitbox_width"`
	HitboxHeight   float64 `yaml:"hitbox_height"`
	HitboxLifetime float64 `yaml:"hitbox_lifetime"` // ms
	AttackCooldown float64 `yaml:"attack_cooldown"` // ms

	PlayerDamage     int `yaml:"player_damage"`
	ProjectileDamage int `yaml:"projectile_damage"`
	ContactDamage    int `yaml:"contact_damage"`

	Knockback   float64 `yaml:"knockback"`
	KnockbackUp float64 `yaml:"knockback_up"` // negative, Y grows downward

	PlayerInvuln float64 `yaml:"player_invuln"` // ms
	EnemyInvuln  float64 `yaml:"enemy_invuln"`  // ms
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name          string
	Behavior      string // "patrol", "chase" or "hover"
	Speed         float64
	AggroDistance float64
	PatrolRange   float64
	Flying        bool
	Health        int
	Width, Height float64
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig
}

// Global configuration instances
var Physics PhysicsConfig
var Body BodyConfig
var Player PlayerConfig
var Summonable SummonableConfig
var Combat CombatConfig
var Enemy EnemyConfig

func init() {
	Physics = PhysicsConfig{
		MaxStep: time.Second / 60,

		LandingProbe:       3,
		SolidWindow:        256,
		DynamicWindow:      128,
		LandingSoundSpeed:  750,
		KillPlaneMargin:    256,
		KillPlaneThickness: 512,

		LandTimer:           250,
		ProjectileLandTimer: 2000,
		HeartBonusTimer:     2000,
		DecoyTimer:          6000,
		RespawnInvulnTimer:  800,
	}

	Body = BodyConfig{
		Elasticity:       0,
		AirDrag:          0.01,
		GroundDrag:       0.15,
		RampSpeed:        1.0,
		Gravity:          9.8 * 256,
		TerminalVelocity: 2400,
	}

	Player = PlayerConfig{
		MoveSpeed:    300,
		JumpSpeed:    -900,
		HurtSpeed:    -500,
		DashFactor:   2.5,
		RunFactor:    1.2,
		RunningSpeed: 100,
		DashTime:     200,
		Health:       5,
		Width:        84,
		Height:       84,
	}

	Summonable = SummonableConfig{
		Speed:      156,
		MaxOffset:  72,
		Size:       48,
		PlatformHP: 7000,
		ThrowSpeed: 2000,
	}

	Combat = CombatConfig{
		HitboxWidth:    64,
		HitboxHeight:   64,
		HitboxLifetime: 150,
		AttackCooldown: 350,

		PlayerDamage:     1,
		ProjectileDamage: 1,
		ContactDamage:    1,

		Knockback:   450,
		KnockbackUp: -450,

		PlayerInvuln: 1000,
		EnemyInvuln:  250,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"Tree": {
				Name:        "Tree",
				Behavior:    "patrol",
				Speed:       120,
				PatrolRange: 128,
				Health:      3,
				Width:       64,
				Height:      96,
			},
			"Slime": {
				Name:          "Slime",
				Behavior:      "chase",
				Speed:         180,
				AggroDistance: 320,
				Health:        2,
				Width:         48,
				Height:        40,
			},
			"Birdo": {
				Name:          "Birdo",
				Behavior:      "hover",
				Speed:         200,
				AggroDistance: 400,
				Flying:        true,
				Health:        2,
				Width:         56,
				Height:        48,
			},
		},
	}
}

// MaxStepMS returns the step cap in milliseconds.
func MaxStepMS() float64 {
	return float64(Physics.MaxStep) / float64(time.Millisecond)
}
