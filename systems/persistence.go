package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/ascension/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

const respawnKey = "respawn"

// SavedRespawn is the player's respawn point as stored on disk.
type SavedRespawn struct {
	Level string  `json:"level"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the save storage for appName.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// SaveRespawnPoint stores the player's saved position for level. It does
// nothing when persistence is not initialized.
func SaveRespawnPoint(level string, player *components.PlayerData) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(SavedRespawn{
		Level: level,
		X:     player.SavedPosition.X,
		Y:     player.SavedPosition.Y,
	})
	if err != nil {
		return fmt.Errorf("encode respawn point: %w", err)
	}
	if err := gdataManager.SaveItem(respawnKey, data); err != nil {
		return fmt.Errorf("save respawn point: %w", err)
	}
	return nil
}

// LoadRespawnPoint returns the stored respawn point for level. The bool is
// false when nothing was saved for that level.
func LoadRespawnPoint(level string) (components.Vector, bool, error) {
	if gdataManager == nil {
		return components.Vector{}, false, nil
	}

	data, err := gdataManager.LoadItem(respawnKey)
	if err != nil {
		log.Printf("Warning: Could not load respawn point: %v", err)
		return components.Vector{}, false, nil
	}
	if len(data) == 0 {
		return components.Vector{}, false, nil
	}

	var saved SavedRespawn
	if err := json.Unmarshal(data, &saved); err != nil {
		return components.Vector{}, false, fmt.Errorf("decode respawn point: %w", err)
	}
	if saved.Level != level {
		return components.Vector{}, false, nil
	}
	return components.Vector{X: saved.X, Y: saved.Y}, true, nil
}

// RestoreRespawnPoint places the player at the stored respawn point for
// level, if there is one.
func RestoreRespawnPoint(e *donburi.Entry, level string) error {
	pos, ok, err := LoadRespawnPoint(level)
	if err != nil || !ok {
		return err
	}
	player := components.Player.Get(e)
	player.SavedPosition = pos
	player.LastPosition = pos
	components.Motion.Get(e).Position = pos
	return nil
}
