package systems

import (
	"log"
	"sync"

	"github.com/automoto/tuxrun/assets"
	"github.com/automoto/tuxrun/components"
	cfg "github.com/automoto/tuxrun/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusic        cfg.MusicID
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX renders all sound effects at startup to avoid lag on first
// play.
func PreloadAllSFX() {
	initGlobalAudio()
	globalAudioLoader.PreloadSFX()
}

// UpdateAudio plays queued sound effects and follows the sector's music
// track and fade volume.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	a := components.Audio.Get(entry)
	for _, id := range a.PendingSFX {
		playSFX(id)
	}
	a.PendingSFX = a.PendingSFX[:0]

	if a.MusicChanged {
		a.MusicChanged = false
		PlayMusic(a.Music)
	}
	if globalMusicPlayer != nil {
		globalMusicPlayer.SetVolume(globalMusicVolume * a.MusicVolume)
	}
}

func playSFX(id cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}
	player, err := globalAudioLoader.LoadSFX(id)
	if err != nil {
		return
	}
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// PlaySFX plays a sound outside of a sector, e.g. in menus.
func PlaySFX(id cfg.SoundID) {
	initGlobalAudio()
	playSFX(id)
}

// PlayMusic switches the looping background track. MusicNone stops it.
func PlayMusic(track cfg.MusicID) {
	initGlobalAudio()

	if track == globalMusic && globalMusicPlayer != nil {
		return
	}
	StopMusic()
	if track == cfg.MusicNone {
		return
	}

	player, err := globalAudioLoader.LoadMusic(track)
	if err != nil {
		log.Printf("Warning: music: %v", err)
		return
	}
	player.SetVolume(globalMusicVolume)
	player.Play()

	globalMusicPlayer = player
	globalMusic = track
}

// StopMusic immediately stops the current music
func StopMusic() {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}
	globalMusic = cfg.MusicNone
}

// PauseMusic pauses the current music playback
func PauseMusic() {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Pause()
	}
}

// ResumeMusic resumes paused music playback
func ResumeMusic() {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Play()
	}
}
