package systems

import (
	"github.com/automoto/ascension/components"
	cfg "github.com/automoto/ascension/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads into the Input singleton.
// Must run before ApplyPlayerInput.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Merge the left analog stick into the directional actions.
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h < -deadzone {
			input.Current[cfg.ActionMoveLeft] = true
		}
		if h > deadzone {
			input.Current[cfg.ActionMoveRight] = true
		}
		if v > deadzone {
			input.Current[cfg.ActionDown] = true
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// ApplyPlayerInput copies the action state onto the player's key flags and
// fires the one-shot actions (pause, dash, summon, throw).
func ApplyPlayerInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		TogglePause(ecs)
	}
	if IsPaused(ecs) {
		return
	}

	pe, ok := firstPlayer(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(pe)
	player.KeyLeft = input.Current[cfg.ActionMoveLeft]
	player.KeyRight = input.Current[cfg.ActionMoveRight]
	player.KeyJump = input.Current[cfg.ActionJump]
	player.KeyAttack = input.Current[cfg.ActionAttack]
	// Down latches on press so placing a rock can cancel it mid-hold.
	switch down := GetAction(input, cfg.ActionDown); {
	case down.JustPressed:
		player.KeyDown = true
	case down.JustReleased:
		player.KeyDown = false
	}

	if GetAction(input, cfg.ActionDash).JustPressed && player.DashTimer <= 0 && !player.Dead {
		player.DashTimer = cfg.Player.DashTime
	}
	if GetAction(input, cfg.ActionSummon).JustPressed {
		ToggleSummon(ecs)
	}
	if GetAction(input, cfg.ActionThrow).JustPressed {
		ThrowSummoned(ecs)
	}
}
