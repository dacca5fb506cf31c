package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files.
const (
	SolidLayer     = "solids"
	SpawnGroup     = "PlayerSpawn"
	EnemyGroup     = "Enemies"
	BreakableGroup = "Breakables"
	PlatformGroup  = "Platforms"
)

const (
	defaultRise      = 64
	defaultPeriodSec = 4
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				solid := SolidRect{
					Rect:     Rect{X: float64(x) * tileW, Y: float64(y) * tileH, W: tileW, H: tileH},
					Material: "stone",
				}
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					props := tilesetTile.Properties
					solid.Slope = ParseSlope(props.GetString("slope"))
					solid.OneWay = props.GetBool("oneway")
					if m := props.GetString("material"); m != "" {
						solid.Material = m
					}
				}
				lvl.Solids = append(lvl.Solids, solid)
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case SpawnGroup:
			for _, o := range og.Objects {
				lvl.SpawnPoints = append(lvl.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case EnemyGroup:
			for _, o := range og.Objects {
				lvl.Enemies = append(lvl.Enemies, EnemySpawn{X: o.X, Y: o.Y, Kind: o.Name})
			}
		case BreakableGroup:
			for _, o := range og.Objects {
				lvl.Breakables = append(lvl.Breakables, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case PlatformGroup:
			for _, o := range og.Objects {
				p := FloatingPlatform{
					Rect:   Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Rise:   o.Properties.GetFloat("rise"),
					Period: o.Properties.GetFloat("period"),
				}
				if p.Rise == 0 {
					p.Rise = defaultRise
				}
				if p.Period == 0 {
					p.Period = defaultPeriodSec
				}
				lvl.Platforms = append(lvl.Platforms, p)
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(lvl.SpawnPoints, func(i, j int) bool {
		return lvl.SpawnPoints[i].X < lvl.SpawnPoints[j].X
	})

	return lvl, nil
}

// ParseSlope maps a tile's slope property to a ramp direction.
func ParseSlope(s string) int {
	switch s {
	case "45_up_right":
		return 1
	case "45_up_left":
		return -1
	}
	return 0
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns
// them keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		lvl, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[lvl.Name] = lvl
		names = append(names, lvl.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
