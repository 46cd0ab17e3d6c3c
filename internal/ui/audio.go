// Package ui implements the chess game UI using Ebitengine.
package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType identifies a UI event that triggers a sound effect.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
	SoundCheck
	SoundCastle
	SoundInvalid
	SoundGameEnd
)

const sampleRate = 44100

// AudioManager synthesizes and plays the game's sound effects. Nothing is
// loaded from disk — every clip is generated once at startup.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager builds an AudioManager with all sound effects pre-rendered.
func NewAudioManager() *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  make(map[SoundType][]byte),
		enabled: true,
		volume:  0.5,
	}
	am.sounds[SoundMove] = am.click(440, 0.08, 0.3)
	am.sounds[SoundCapture] = am.click(330, 0.12, 0.5)
	am.sounds[SoundCheck] = am.tone(880, 0.15, 0.4)
	am.sounds[SoundCastle] = am.doubleClick(400, 0.06, 0.3)
	am.sounds[SoundInvalid] = am.buzz(150, 0.1, 0.3)
	am.sounds[SoundGameEnd] = am.chord(0.4, 0.5)
	return am
}

// envelope shapes an amplitude curve over a clip's duration as a function of
// progress (0..1 through the clip).
type envelope func(progress float64) float64

// synthesize renders duration seconds of audio as 16-bit stereo PCM, sampling
// wave(t) at each frame and scaling it by env(progress) and amplitude.
func synthesize(duration, amplitude float64, env envelope, wave func(t float64) float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		progress := t / duration
		sample := wave(t) * env(progress) * amplitude
		writeStereoFrame(data, i, sample)
	}
	return data
}

// writeStereoFrame packs one sample into frame i of a 16-bit stereo buffer,
// duplicating it to both channels.
func writeStereoFrame(data []byte, i int, sample float64) {
	val := int16(sample * 32767)
	base := i * 4
	data[base] = byte(val)
	data[base+1] = byte(val >> 8)
	data[base+2] = byte(val)
	data[base+3] = byte(val >> 8)
}

func expDecay(rate float64) envelope {
	return func(progress float64) float64 { return math.Exp(-progress * rate) }
}

func attackDecay(attackFrac float64) envelope {
	return func(progress float64) float64 {
		if progress < attackFrac {
			return progress / attackFrac
		}
		return 1.0 - (progress-attackFrac)/(1.0-attackFrac)
	}
}

func linearDecay() envelope {
	return func(progress float64) float64 { return 1.0 - progress }
}

// click renders a short percussive wood-on-wood impact with a bit of noise
// texture riding on the fundamental.
func (am *AudioManager) click(freq, duration, amplitude float64) []byte {
	env := expDecay(30 * duration)
	return synthesize(duration, amplitude, env, func(t float64) float64 {
		i := t * sampleRate
		noise := (math.Sin(i*0.3) + math.Sin(i*0.7)) * 0.3
		return math.Sin(2*math.Pi*freq*t) + noise
	})
}

// tone renders a plain sine with an attack-decay envelope.
func (am *AudioManager) tone(freq, duration, amplitude float64) []byte {
	return synthesize(duration, amplitude, attackDecay(0.1), func(t float64) float64 {
		return math.Sin(2 * math.Pi * freq * t)
	})
}

// doubleClick renders two clicks separated by a short gap, for castling.
func (am *AudioManager) doubleClick(freq, duration, amplitude float64) []byte {
	click1 := am.click(freq, duration, amplitude)
	silence := make([]byte, int(sampleRate*0.05)*4)
	click2 := am.click(freq*1.1, duration, amplitude*0.8)

	result := make([]byte, 0, len(click1)+len(silence)+len(click2))
	result = append(result, click1...)
	result = append(result, silence...)
	result = append(result, click2...)
	return result
}

// buzz renders a low error tone with a second harmonic for a square-ish edge.
func (am *AudioManager) buzz(freq, duration, amplitude float64) []byte {
	return synthesize(duration, amplitude*0.5, linearDecay(), func(t float64) float64 {
		return math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t)
	})
}

// chord renders a fading-in, fading-out C major triad for game-end.
func (am *AudioManager) chord(duration, amplitude float64) []byte {
	freqs := [3]float64{261.63, 329.63, 392.00} // C4, E4, G4
	env := func(progress float64) float64 {
		switch {
		case progress < 0.1:
			return progress / 0.1
		case progress > 0.7:
			return (1.0 - progress) / 0.3
		default:
			return 1.0
		}
	}
	return synthesize(duration, amplitude, env, func(t float64) float64 {
		sum := 0.0
		for _, freq := range freqs {
			sum += math.Sin(2 * math.Pi * freq * t)
		}
		return sum / float64(len(freqs))
	})
}

// Play triggers playback of sound on its own player, so overlapping plays
// of the same effect don't cut each other off.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled {
		return
	}

	data, ok := am.sounds[sound]
	if !ok {
		return
	}

	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled toggles sound effect playback.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// SetVolume clamps and sets the playback volume.
func (am *AudioManager) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	am.volume = volume
}

// IsEnabled reports whether sound effects are currently enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}
