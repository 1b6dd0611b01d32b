// Package synth generates the game's sound effects and music loops as beep
// streams and renders them to the 16-bit stereo PCM ebiten plays.
package synth

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/automoto/tuxrun/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// fadeSamples is the length of the click-free fade at the end of a tone.
const fadeSamples = 256

// sweep is a square wave gliding linearly from start to end Hz.
type sweep struct {
	start, end float64
	phase      float64
	pos, total int
	rate       beep.SampleRate
}

// Sweep streams t as a square wave at rate.
func Sweep(t config.Tone, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		start: t.StartHz,
		end:   t.EndHz,
		total: rate.N(time.Duration(t.Duration * float64(time.Second))),
		rate:  rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.start + (s.end-s.start)*progress

		val := 1.0
		if s.phase >= 0.5 {
			val = -1.0
		}
		if left := s.total - s.pos; left < fadeSamples {
			val *= float64(left) / fadeSamples
		}
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// Melody plays tones back to back.
func Melody(tones []config.Tone, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, len(tones))
	for i, t := range tones {
		parts[i] = Sweep(t, rate)
	}
	return beep.Seq(parts...)
}

// WithVolume scales s linearly; vol <= 0 is silence.
func WithVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// PCM drains s into signed 16-bit little-endian stereo frames.
func PCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok {
			return out
		}
	}
}

// Sound renders the effect id at the configured volume, or nil when id has
// no tone.
func Sound(id config.SoundID, volume float64) []byte {
	t, ok := config.Sound.Tones[id]
	if !ok {
		return nil
	}
	if mult, ok := config.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	rate := beep.SampleRate(config.Audio.SampleRate)
	return PCM(WithVolume(Sweep(t, rate), volume))
}

// Music renders one loop of track at full volume, or nil for MusicNone and
// unknown tracks.
func Music(track config.MusicID) []byte {
	tones, ok := config.Sound.MusicTones[track]
	if !ok || len(tones) == 0 {
		return nil
	}
	return PCM(Melody(tones, beep.SampleRate(config.Audio.SampleRate)))
}
