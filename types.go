// SPDX-License-Identifier: EPL-2.0

package ucra

// Curve is a paired time/value sample sequence describing pitch (Hz) or
// amplitude variation over a note's duration. Times are seconds relative to
// the note start. Both sequences always have the same length.
type Curve struct {
	times  []float32
	values []float32
}

// NewCurve builds a Curve from equal-length time and value sequences.
// Returns ErrCurveLengthMismatch when the lengths differ.
//
// The slices are borrowed, not copied: they must stay alive and unmodified
// for the duration of any Render call that references the curve.
func NewCurve(times, values []float32) (*Curve, error) {
	if len(times) != len(values) {
		return nil, ErrCurveLengthMismatch
	}
	return &Curve{times: times, values: values}, nil
}

// Times returns the time points in seconds.
func (c *Curve) Times() []float32 { return c.times }

// Values returns the value points.
func (c *Curve) Values() []float32 { return c.values }

// Len returns the number of points in the curve.
func (c *Curve) Len() int { return len(c.times) }

// NoteSegment describes one musical event.
type NoteSegment struct {
	// StartSec is the note start time in seconds.
	StartSec float64
	// DurationSec is the note duration in seconds.
	DurationSec float64
	// MIDINote is the pitch, 0..127, or -1 if unpitched.
	MIDINote int16
	// Velocity is 0..127.
	Velocity uint8
	// Lyric is optional UTF-8 lyric text.
	Lyric string
	// F0 optionally overrides the pitch with a curve in Hz.
	F0 *Curve
	// Env optionally shapes the amplitude with a normalized [0..1] curve.
	Env *Curve
}

// RenderConfig is the full input for one Render call. The Notes slice and
// any curves it references must stay alive and unmodified until Render
// returns.
type RenderConfig struct {
	// SampleRate in Hz, e.g. 44100 or 48000.
	SampleRate uint32
	// Channels is the output channel count (1=mono, 2=stereo, ...).
	Channels uint32
	// BlockSize is the preferred render block size in frames; 0 lets the
	// engine choose.
	BlockSize uint32
	// Flags is reserved.
	Flags uint32
	// Notes to render.
	Notes []NoteSegment
	// Options are optional engine key/value options.
	Options map[string]string
}

// RenderResult is one render invocation's output: an interleaved float32
// sample view plus its format metadata.
//
// When produced by (*Engine).Render, the sample buffer is owned by the
// engine and only valid until the next Render call on the same Engine or
// until Close. Use CopySamples to keep the data past that point.
type RenderResult struct {
	pcm        []float32
	frames     uint64
	channels   uint32
	sampleRate uint32
	metadata   map[string]string
}

// NewRenderResult wraps already-rendered samples in a RenderResult. It is
// intended for Renderer implementations that are not backed by the C ABI,
// such as pure-Go engines and test fakes; results built this way own their
// buffer and have no lifetime restriction.
func NewRenderResult(samples []float32, frames uint64, channels, sampleRate uint32, metadata map[string]string) *RenderResult {
	return &RenderResult{
		pcm:        samples,
		frames:     frames,
		channels:   channels,
		sampleRate: sampleRate,
		metadata:   metadata,
	}
}

// Samples returns the interleaved float32 sample view, frames*channels
// values long. Nil when the render produced no frames. See the type
// documentation for the view's validity window.
func (r *RenderResult) Samples() []float32 { return r.pcm }

// CopySamples returns a caller-owned copy of the sample buffer.
func (r *RenderResult) CopySamples() []float32 {
	if r.pcm == nil {
		return nil
	}
	out := make([]float32, len(r.pcm))
	copy(out, r.pcm)
	return out
}

// Frames returns the frame count.
func (r *RenderResult) Frames() uint64 { return r.frames }

// Channels returns the channel count.
func (r *RenderResult) Channels() uint32 { return r.channels }

// SampleRate returns the sample rate in Hz.
func (r *RenderResult) SampleRate() uint32 { return r.sampleRate }

// Metadata returns optional engine-reported metadata. The map is a copy
// owned by the result; it may be empty.
func (r *RenderResult) Metadata() map[string]string { return r.metadata }
