package synth

import (
	"encoding/binary"
	"testing"

	"github.com/automoto/tuxrun/config"
	"github.com/gopxl/beep"
)

const rate = beep.SampleRate(44100)

func frames(s beep.Streamer) [][2]float64 {
	var all [][2]float64
	buf := make([][2]float64, 300)
	for {
		n, ok := s.Stream(buf)
		all = append(all, buf[:n]...)
		if !ok {
			return all
		}
	}
}

func TestSweepLength(t *testing.T) {
	got := frames(Sweep(config.Tone{StartHz: 440, EndHz: 880, Duration: 0.5}, rate))
	if len(got) != 22050 {
		t.Fatalf("frames = %d, want 22050", len(got))
	}
}

func TestSweepIsSquare(t *testing.T) {
	got := frames(Sweep(config.Tone{StartHz: 220, EndHz: 220, Duration: 0.5}, rate))
	for i, f := range got[:len(got)-fadeSamples] {
		if f[0] != 1 && f[0] != -1 {
			t.Fatalf("frame %d = %v, want ±1", i, f[0])
		}
		if f[0] != f[1] {
			t.Fatalf("frame %d channels differ", i)
		}
	}
	if last := got[len(got)-1][0]; last > 1.0/fadeSamples || last < -1.0/fadeSamples {
		t.Errorf("last frame %v, want faded out", last)
	}
}

func TestSweepGlides(t *testing.T) {
	// count sign changes in the first and last tenth
	got := frames(Sweep(config.Tone{StartHz: 200, EndHz: 2000, Duration: 0.5}, rate))
	flips := func(fs [][2]float64) int {
		n := 0
		for i := 1; i < len(fs); i++ {
			if (fs[i][0] > 0) != (fs[i-1][0] > 0) {
				n++
			}
		}
		return n
	}
	tenth := len(got) / 10
	low := flips(got[:tenth])
	high := flips(got[len(got)-tenth-fadeSamples : len(got)-fadeSamples])
	if high <= low*5 {
		t.Errorf("flips low = %d high = %d, want the end much higher", low, high)
	}
}

func TestMelodyPlaysInSequence(t *testing.T) {
	tones := []config.Tone{
		{StartHz: 262, EndHz: 262, Duration: 0.25},
		{StartHz: 330, EndHz: 330, Duration: 0.5},
	}
	if got := len(frames(Melody(tones, rate))); got != 11025+22050 {
		t.Errorf("frames = %d, want %d", got, 11025+22050)
	}
}

func TestWithVolume(t *testing.T) {
	tone := config.Tone{StartHz: 440, EndHz: 440, Duration: 0.25}
	for _, f := range frames(WithVolume(Sweep(tone, rate), 0)) {
		if f[0] != 0 {
			t.Fatalf("zero volume produced %v", f[0])
		}
	}
	half := frames(WithVolume(Sweep(tone, rate), 0.5))
	if v := half[0][0]; v < 0.49 || v > 0.51 {
		t.Errorf("first frame at half volume = %v", v)
	}
}

func TestPCM(t *testing.T) {
	pcm := PCM(Sweep(config.Tone{StartHz: 440, EndHz: 440, Duration: 0.25}, rate))
	if len(pcm) != 11025*4 {
		t.Fatalf("len = %d, want %d", len(pcm), 11025*4)
	}
	first := int16(binary.LittleEndian.Uint16(pcm[0:2]))
	if first != 32767 {
		t.Errorf("first sample = %d, want full scale", first)
	}
}

func TestSoundAndMusic(t *testing.T) {
	if Sound(config.SoundNone, 1) != nil {
		t.Error("SoundNone must render nothing")
	}
	if len(Sound(config.SoundJump, 1)) == 0 {
		t.Error("jump must render")
	}
	if Music(config.MusicNone) != nil {
		t.Error("MusicNone must render nothing")
	}
	if len(Music(config.MusicLevel))%4 != 0 || len(Music(config.MusicLevel)) == 0 {
		t.Error("level music must render whole frames")
	}
}
