// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	ucra "github.com/ucra/go-ucra"
)

var (
	// ErrEndOfScore is returned by a PullFunc when no more blocks follow.
	ErrEndOfScore = errors.New("stream: end of score")

	// ErrClosed is returned by Read after Close.
	ErrClosed = errors.New("stream: closed")

	// ErrInvalidConfig is returned by Open for an unusable configuration.
	ErrInvalidConfig = errors.New("stream: invalid config")
)

// Renderer is the render entry point a Stream drives. *ucra.Engine
// implements it; tests substitute fakes.
type Renderer interface {
	Render(cfg *ucra.RenderConfig) (*ucra.RenderResult, error)
}

// PullFunc supplies the notes for the next block. blockStart is the block's
// position in the overall stream and blockFrames its length in frames; note
// times are relative to the block start. Returning ErrEndOfScore ends the
// stream; an empty note slice renders a silent block.
type PullFunc func(blockStart time.Duration, blockFrames int) ([]ucra.NoteSegment, error)

// Config sets the stream's output format.
type Config struct {
	// SampleRate in Hz.
	SampleRate uint32
	// Channels is the output channel count.
	Channels uint32
	// BlockFrames is the render block size in frames. 0 means the default
	// of 4096 (about 93ms at 44.1kHz).
	BlockFrames int
}

const defaultBlockFrames = 4096

// Stream pulls notes block by block, renders them, and buffers the PCM.
type Stream struct {
	mu       sync.Mutex
	renderer Renderer
	cfg      Config
	pull     PullFunc

	buf      []float32 // rendered samples not yet read
	off      int       // read offset into buf
	frames   uint64    // total frames rendered so far
	finished bool
	closed   bool
}

// Open validates the configuration and creates a stream. No rendering
// happens until the first Read.
func Open(r Renderer, cfg Config, pull PullFunc) (*Stream, error) {
	if r == nil || pull == nil {
		return nil, fmt.Errorf("%w: renderer and pull func required", ErrInvalidConfig)
	}
	if cfg.SampleRate == 0 || cfg.Channels == 0 {
		return nil, fmt.Errorf("%w: sample rate and channels required", ErrInvalidConfig)
	}
	if cfg.BlockFrames < 0 {
		return nil, fmt.Errorf("%w: negative block size", ErrInvalidConfig)
	}
	if cfg.BlockFrames == 0 {
		cfg.BlockFrames = defaultBlockFrames
	}
	return &Stream{renderer: r, cfg: cfg, pull: pull}, nil
}

// SampleRate returns the stream's sample rate in Hz.
func (s *Stream) SampleRate() int { return int(s.cfg.SampleRate) }

// Channels returns the stream's channel count.
func (s *Stream) Channels() int { return int(s.cfg.Channels) }

// Read fills dst with interleaved float32 samples, rendering new blocks as
// needed. Returns the number of samples written. When the score is finished
// and the buffer is drained, Read returns 0 and io.EOF.
func (s *Stream) Read(dst []float32) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrClosed
	}
	if len(dst) == 0 {
		return 0, nil
	}

	for s.off >= len(s.buf) && !s.finished {
		if err := s.fillBlock(); err != nil {
			return 0, err
		}
	}

	n := copy(dst, s.buf[s.off:])
	s.off += n

	if n == 0 && s.finished {
		return 0, io.EOF
	}
	return n, nil
}

// fillBlock pulls and renders one block into the buffer. Caller holds mu.
func (s *Stream) fillBlock() error {
	blockStart := time.Duration(float64(s.frames) / float64(s.cfg.SampleRate) * float64(time.Second))

	notes, err := s.pull(blockStart, s.cfg.BlockFrames)
	if err != nil {
		if errors.Is(err, ErrEndOfScore) {
			s.finished = true
			return nil
		}
		return fmt.Errorf("pull block: %w", err)
	}

	channels := int(s.cfg.Channels)
	var samples []float32
	if len(notes) == 0 {
		samples = make([]float32, s.cfg.BlockFrames*channels)
	} else {
		res, err := s.renderer.Render(&ucra.RenderConfig{
			SampleRate: s.cfg.SampleRate,
			Channels:   s.cfg.Channels,
			BlockSize:  uint32(s.cfg.BlockFrames),
			Notes:      notes,
		})
		if err != nil {
			return fmt.Errorf("render block: %w", err)
		}
		// the engine-owned view is only valid until the next render, so
		// the block is copied into the stream's own buffer
		samples = res.CopySamples()
		if len(samples) == 0 {
			samples = make([]float32, s.cfg.BlockFrames*channels)
		}
	}

	// drop already-consumed samples before appending
	if s.off > 0 {
		s.buf = s.buf[:copy(s.buf, s.buf[s.off:])]
		s.off = 0
	}
	s.buf = append(s.buf, samples...)
	s.frames += uint64(len(samples) / channels)
	return nil
}

// Close marks the stream closed. It never closes the underlying Renderer,
// which the caller owns. Safe to call more than once.
func (s *Stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.buf = nil
	s.off = 0
	return nil
}
