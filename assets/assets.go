package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/scripting"
	"github.com/automoto/tuxrun/shared/leveldata"
)

//go:embed all:levels all:scripts
var assetFS embed.FS

// FS returns the embedded asset tree.
func FS() fs.FS { return assetFS }

// LevelLoader loads and caches the embedded levels.
type LevelLoader struct {
	levels map[string]*leveldata.Level
	names  []string
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{levels: make(map[string]*leveldata.Level)}
}

// MustLoadLevels loads every level under levels/. It panics on a broken
// level since they ship inside the binary.
func (l *LevelLoader) MustLoadLevels() []string {
	levels, names, err := leveldata.LoadAll(assetFS, "levels")
	if err != nil {
		panic(err)
	}
	l.levels = levels
	l.names = names
	return names
}

// LoadLevel parses the level at path, e.g. "levels/demo.tmx".
func (l *LevelLoader) LoadLevel(path string) (*leveldata.Level, error) {
	lvl, err := leveldata.Load(assetFS, path)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}
	l.levels[lvl.Name] = lvl
	log.Printf("Loaded level %s (%d tiles, %d objects)", lvl.Name, len(lvl.Tiles), len(lvl.Spawns))
	return lvl, nil
}

// LoadScript compiles a level script. When Debug.AssetDir holds an on-disk
// copy of the script it is preferred, and its path is returned so the
// caller can watch it; otherwise the embedded copy is used and diskPath is
// empty.
func LoadScript(path string) (rt *scripting.Runtime, diskPath string, err error) {
	if dir := config.Debug.AssetDir; dir != "" {
		disk := filepath.Join(dir, filepath.FromSlash(path))
		if _, statErr := os.Stat(disk); statErr == nil {
			rt, err = scripting.Load(os.DirFS(dir), path)
			if err != nil {
				return nil, "", err
			}
			return rt, disk, nil
		} else if !errors.Is(statErr, fs.ErrNotExist) {
			log.Printf("Warning: stat %s: %v", disk, statErr)
		}
	}
	rt, err = scripting.Load(assetFS, path)
	return rt, "", err
}
