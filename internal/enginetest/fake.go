// SPDX-License-Identifier: EPL-2.0

package enginetest

import (
	"math"

	ucra "github.com/ucra/go-ucra"
)

// FakeRenderer is a test helper that renders deterministic audio for the
// notes it is given, satisfying the stream.Renderer contract without
// touching the C engine.
type FakeRenderer struct {
	// Waveform produces the sample at time t seconds. Defaults to a
	// 440 Hz sine at 0.2 gain.
	Waveform func(t float64) float32
	// Err, when set, is returned by every Render call.
	Err error
	// Calls counts Render invocations.
	Calls int
}

// NewSineRenderer creates a fake renderer emitting a sine at the given
// frequency and gain wherever a note is active.
func NewSineRenderer(frequency, gain float64) *FakeRenderer {
	return &FakeRenderer{
		Waveform: func(t float64) float32 {
			return float32(gain * math.Sin(2*math.Pi*frequency*t))
		},
	}
}

// NewSilentRenderer creates a fake renderer emitting silence.
func NewSilentRenderer() *FakeRenderer {
	return &FakeRenderer{Waveform: func(float64) float32 { return 0 }}
}

// NewConstantRenderer creates a fake renderer emitting a constant value.
func NewConstantRenderer(value float32) *FakeRenderer {
	return &FakeRenderer{Waveform: func(float64) float32 { return value }}
}

// Render mimics the reference engine's shape: total duration is the latest
// note end, frames are duration times rate, all channels carry the same
// signal.
func (f *FakeRenderer) Render(cfg *ucra.RenderConfig) (*ucra.RenderResult, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.Calls++

	rate := cfg.SampleRate
	if rate == 0 {
		rate = 44100
	}
	channels := cfg.Channels
	if channels == 0 {
		channels = 1
	}

	var totalDur float64
	for _, n := range cfg.Notes {
		if end := n.StartSec + n.DurationSec; end > totalDur {
			totalDur = end
		}
	}
	if totalDur <= 0 {
		return ucra.NewRenderResult(nil, 0, channels, rate, nil), nil
	}

	frames := uint64(totalDur*float64(rate) + 0.5)
	samples := make([]float32, frames*uint64(channels))
	wave := f.Waveform
	if wave == nil {
		wave = NewSineRenderer(440, 0.2).Waveform
	}

	for i := uint64(0); i < frames; i++ {
		t := float64(i) / float64(rate)
		var active bool
		for _, n := range cfg.Notes {
			if t >= n.StartSec && t <= n.StartSec+n.DurationSec {
				active = true
				break
			}
		}
		if !active {
			continue
		}
		s := wave(t)
		for ch := uint64(0); ch < uint64(channels); ch++ {
			samples[i*uint64(channels)+ch] = s
		}
	}

	return ucra.NewRenderResult(samples, frames, channels, rate, nil), nil
}
