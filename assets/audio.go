package assets

import (
	"bytes"
	"fmt"

	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/shared/synth"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader renders the procedural sounds once and hands out players.
type AudioLoader struct {
	sfxCache   map[config.SoundID][]byte
	musicCache map[config.MusicID][]byte
	context    *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache:   make(map[config.SoundID][]byte),
		musicCache: make(map[config.MusicID][]byte),
		context:    ctx,
	}
}

// PreloadSFX renders every sound effect so the first play does not stall.
func (l *AudioLoader) PreloadSFX() {
	for id := range config.Sound.Tones {
		l.sfx(id)
	}
}

func (l *AudioLoader) sfx(id config.SoundID) []byte {
	if pcm, ok := l.sfxCache[id]; ok {
		return pcm
	}
	pcm := synth.Sound(id, 1)
	l.sfxCache[id] = pcm
	return pcm
}

// LoadSFX returns a new player for the sound id.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	pcm := l.sfx(id)
	if len(pcm) == 0 {
		return nil, fmt.Errorf("no sound for id %d", id)
	}
	return l.context.NewPlayer(bytes.NewReader(pcm))
}

// LoadMusic returns a looping player for track.
func (l *AudioLoader) LoadMusic(track config.MusicID) (*audio.Player, error) {
	pcm, ok := l.musicCache[track]
	if !ok {
		pcm = synth.Music(track)
		l.musicCache[track] = pcm
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("no music for track %d", track)
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	return l.context.NewPlayer(loop)
}
