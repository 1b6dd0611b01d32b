package leveldata

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

const (
	tileLayerName   = "tiles"
	objectGroupName = "objects"
	playerKind      = "player"
)

// Load parses a TMX file. Tile behavior comes from tileset tile properties:
// "solid", "unisolid", "slope", "ice", "hurts" and "water". It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:    float64(levelMap.Width * levelMap.TileWidth),
		Height:   float64(levelMap.Height * levelMap.TileHeight),
		TileSize: float64(levelMap.TileWidth),
	}
	if props := levelMap.Properties; props != nil {
		lvl.Music = props.GetString("music")
		lvl.Script = props.GetString("script")
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != tileLayerName {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
				if err != nil || tilesetTile.Properties == nil {
					// plain decoration
					continue
				}
				t, ok := parseTile(tilesetTile.Properties)
				if !ok {
					continue
				}
				t.Rect = gamemath.NewRect(float64(x)*tileW, float64(y)*tileH, tileW, tileH)
				lvl.Tiles = append(lvl.Tiles, t)
			}
		}
		break
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		if og.Name != objectGroupName {
			continue
		}
		for _, o := range og.Objects {
			kind := strings.ToLower(o.Type)
			if kind == "" {
				kind = strings.ToLower(o.Name)
			}
			if kind == playerKind {
				lvl.PlayerSpawn = gamemath.Vector{X: o.X, Y: o.Y}
				spawnFound = true
				continue
			}
			spawn := Spawn{
				Kind: kind,
				Name: o.Name,
				Rect: gamemath.NewRect(o.X, o.Y, o.Width, o.Height),
			}
			if o.Properties != nil {
				spawn.Dir = parseDir(o.Properties.GetString("direction"))
				spawn.Props = properties(o.Properties)
			}
			lvl.Spawns = append(lvl.Spawns, spawn)
		}
	}
	if !spawnFound {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}

	// Sort spawns left-to-right for a stable update order
	sort.SliceStable(lvl.Spawns, func(i, j int) bool {
		return lvl.Spawns[i].Rect.X < lvl.Spawns[j].Rect.X
	})

	return lvl, nil
}

// propertySource is satisfied by go-tiled's property lists.
type propertySource interface {
	GetString(name string) string
	GetBool(name string) bool
}

func parseTile(props propertySource) (Tile, bool) {
	t := Tile{
		Ice:   props.GetBool("ice"),
		Hurts: props.GetBool("hurts"),
		Water: props.GetBool("water"),
	}
	slope := props.GetString("slope")
	switch {
	case slope != "":
		t.Kind = TileRamp
		t.Slope = gamemath.ParseSlope(slope)
		if t.Slope == gamemath.SlopeNone {
			log.Printf("Warning: unknown slope %q, using a solid tile", slope)
			t.Kind = TileSolid
		}
	case props.GetBool("solid"):
		t.Kind = TileSolid
	case props.GetBool("unisolid"):
		t.Kind = TilePlatform
	case t.Ice || t.Hurts || t.Water:
		t.Kind = TileArea
	default:
		return Tile{}, false
	}
	return t, true
}

func parseDir(s string) gamemath.Direction {
	switch strings.ToLower(s) {
	case "left":
		return gamemath.DirLeft
	case "right":
		return gamemath.DirRight
	}
	return gamemath.DirAuto
}

// spawnKeys are the object properties copied into Spawn.Props.
var spawnKeys = []string{"kind", "touch", "contents"}

func properties(props propertySource) map[string]string {
	m := make(map[string]string)
	for _, key := range spawnKeys {
		if v := props.GetString(key); v != "" {
			m[key] = v
		}
	}
	return m
}

// LoadAll discovers all .tmx files in levelsDir within fsys, loads each one,
// and returns them keyed by stem name plus a sorted list of names.
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
