package components

import (
	cfg "github.com/automoto/tuxrun/config"
	"github.com/yohamta/donburi"
)

// AudioData is the sector's sound event queue (singleton component). The
// audio system drains it every frame.
type AudioData struct {
	PendingSFX []cfg.SoundID

	Music        cfg.MusicID // track that should be playing
	MusicVolume  float64     // 0.0 - 1.0, driven by fades
	MusicChanged bool        // set when Music changes, cleared by the player
}

var Audio = donburi.NewComponentType[AudioData]()
