package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Player sounds
	SoundJump
	SoundBigJump
	SoundHurt
	SoundSkid
	SoundFlip
	SoundKick
	SoundShoot
	SoundSplash
	SoundInvincibleStart
	SoundGrow
	// World sounds
	SoundCoin
	SoundSquish
	SoundFall
	SoundRicochet
	// UI sounds
	SoundMenuSelect
)

// MusicID identifies a background music track.
type MusicID int

const (
	MusicNone MusicID = iota
	MusicLevel
	MusicInvincible
)

// ParseMusic maps a level's "music" property to a track.
func ParseMusic(name string) (MusicID, bool) {
	switch name {
	case "level":
		return MusicLevel, true
	case "invincible":
		return MusicInvincible, true
	}
	return MusicNone, false
}

// Tone describes a procedurally generated sound: a square wave sweeping
// from StartHz to EndHz over Duration seconds.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SoundConfig maps sound IDs to generated tones
type SoundConfig struct {
	Tones             map[SoundID]Tone
	MusicTones        map[MusicID][]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.35,
		DefaultSFXVol:   0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundJump:            {StartHz: 440, EndHz: 880, Duration: 0.12},
			SoundBigJump:         {StartHz: 330, EndHz: 660, Duration: 0.16},
			SoundHurt:            {StartHz: 600, EndHz: 150, Duration: 0.3},
			SoundSkid:            {StartHz: 200, EndHz: 180, Duration: 0.2},
			SoundFlip:            {StartHz: 500, EndHz: 1200, Duration: 0.2},
			SoundKick:            {StartHz: 150, EndHz: 90, Duration: 0.08},
			SoundShoot:           {StartHz: 900, EndHz: 400, Duration: 0.08},
			SoundSplash:          {StartHz: 250, EndHz: 100, Duration: 0.25},
			SoundInvincibleStart: {StartHz: 523, EndHz: 1046, Duration: 0.4},
			SoundGrow:            {StartHz: 262, EndHz: 523, Duration: 0.5},
			SoundCoin:            {StartHz: 988, EndHz: 1319, Duration: 0.1},
			SoundSquish:          {StartHz: 180, EndHz: 60, Duration: 0.12},
			SoundFall:            {StartHz: 400, EndHz: 80, Duration: 0.35},
			SoundRicochet:        {StartHz: 1500, EndHz: 2200, Duration: 0.06},
			SoundMenuSelect:      {StartHz: 660, EndHz: 660, Duration: 0.05},
		},
		MusicTones: map[MusicID][]Tone{
			MusicLevel: {
				{StartHz: 262, EndHz: 262, Duration: 0.25},
				{StartHz: 330, EndHz: 330, Duration: 0.25},
				{StartHz: 392, EndHz: 392, Duration: 0.25},
				{StartHz: 330, EndHz: 330, Duration: 0.25},
			},
			MusicInvincible: {
				{StartHz: 523, EndHz: 523, Duration: 0.125},
				{StartHz: 659, EndHz: 659, Duration: 0.125},
				{StartHz: 784, EndHz: 784, Duration: 0.125},
				{StartHz: 1046, EndHz: 1046, Duration: 0.125},
			},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHurt:  1.5,
			SoundSkid:  0.7,
			SoundShoot: 0.8,
		},
	}
}
