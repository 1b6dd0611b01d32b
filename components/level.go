package components

import (
	"github.com/automoto/tuxrun/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level *leveldata.Level
	Path  string
	// Fade is the screen cover alpha, 0 clear and 1 black.
	Fade float64
}

var Level = donburi.NewComponentType[LevelData]()
