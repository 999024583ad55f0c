package game

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	toneSampleRate = beep.SampleRate(44100)
	toneFrequency  = 880.0
	toneVolume     = 0.08
	// fraction of the remaining gain distance covered per sample
	toneAttack = 0.002
)

// typingTone is a beep.Streamer that hums while the typing flag is set
// and fades out when it clears. SetActive is called from the game loop;
// Stream runs on the speaker goroutine.
type typingTone struct {
	sampleRate beep.SampleRate
	freq       float64
	active     atomic.Bool

	gain  float64
	phase float64
}

func newTypingTone(sr beep.SampleRate, freq float64) *typingTone {
	return &typingTone{sampleRate: sr, freq: freq}
}

func (t *typingTone) SetActive(active bool) { t.active.Store(active) }

func (t *typingTone) Stream(samples [][2]float64) (int, bool) {
	target := 0.0
	if t.active.Load() {
		target = toneVolume
	}
	step := 2 * math.Pi * t.freq / float64(t.sampleRate)
	for i := range samples {
		t.gain += (target - t.gain) * toneAttack
		v := math.Sin(t.phase) * t.gain
		samples[i] = [2]float64{v, v}
		t.phase += step
		if t.phase >= 2*math.Pi {
			t.phase -= 2 * math.Pi
		}
	}
	return len(samples), true
}

func (t *typingTone) Err() error { return nil }

// startTone opens the speaker and starts the tone playing.
func startTone() (*typingTone, error) {
	bufferSize := toneSampleRate.N(time.Second / 20)
	if err := speaker.Init(toneSampleRate, bufferSize); err != nil {
		return nil, err
	}
	tone := newTypingTone(toneSampleRate, toneFrequency)
	speaker.Play(tone)
	return tone, nil
}

func stopTone() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}
