// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	ucra "github.com/ucra/go-ucra"
)

// Format selects the WAV sample encoding.
type Format int

const (
	// Float32 writes 32-bit IEEE float samples (format tag 3).
	Float32 Format = iota
	// PCM16 writes 16-bit PCM samples (format tag 1).
	PCM16
)

const (
	formatTagPCM   = 1
	formatTagFloat = 3
)

// WriteFloat32 writes interleaved float32 samples as a 32-bit IEEE float WAV.
func WriteFloat32(ws io.WriteSeeker, sampleRate, channels int, samples []float32) error {
	if channels < 1 {
		return ErrInvalidChannels
	}
	if len(samples)%channels != 0 {
		return ErrPartialFrame
	}

	enc := gowav.NewEncoder(ws, sampleRate, 32, channels, formatTagFloat)
	for _, s := range samples {
		if err := enc.WriteFrame(s); err != nil {
			return fmt.Errorf("write sample: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}

// WritePCM16 writes interleaved float32 samples as a 16-bit PCM WAV.
// Samples are clamped to [-1, 1] before conversion.
func WritePCM16(ws io.WriteSeeker, sampleRate, channels int, samples []float32) error {
	if channels < 1 {
		return ErrInvalidChannels
	}
	if len(samples)%channels != 0 {
		return ErrPartialFrame
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	const scale float32 = 32767.0
	for i, x := range samples {
		if x > 1 {
			x = 1
		} else if x < -1 {
			x = -1
		}
		buf.Data[i] = int(x * scale)
	}

	enc := gowav.NewEncoder(ws, sampleRate, 16, channels, formatTagPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}

// WriteResult writes a render result in the chosen format. The result's own
// sample rate and channel count are used, so it can be called while the
// result view is still valid without copying.
func WriteResult(ws io.WriteSeeker, res *ucra.RenderResult, format Format) error {
	samples := res.Samples()
	rate := int(res.SampleRate())
	channels := int(res.Channels())

	switch format {
	case PCM16:
		return WritePCM16(ws, rate, channels, samples)
	default:
		return WriteFloat32(ws, rate, channels, samples)
	}
}
