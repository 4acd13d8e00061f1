// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	ucra "github.com/ucra/go-ucra"
)

func sineSamples(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(0.5 * math.Sin(2*math.Pi*440*float64(i)/44100))
	}
	return out
}

func writeTemp(t *testing.T, name string, write func(f *os.File) error) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestWriteFloat32_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := sineSamples(4410)
	path := writeTemp(t, "float.wav", func(f *os.File) error {
		return WriteFloat32(f, 44100, 1, samples)
	})

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	info, err := ReadInfo(f)
	if err != nil {
		t.Fatalf("ReadInfo() error = %v", err)
	}

	if info.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", info.SampleRate)
	}
	if info.Channels != 1 {
		t.Errorf("Channels = %d, want 1", info.Channels)
	}
	if info.Format != 3 {
		t.Errorf("Format = %d, want 3 (IEEE float)", info.Format)
	}
	if info.BitDepth != 32 {
		t.Errorf("BitDepth = %d, want 32", info.BitDepth)
	}
}

func TestWritePCM16_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := sineSamples(4800 * 2)
	path := writeTemp(t, "pcm.wav", func(f *os.File) error {
		return WritePCM16(f, 48000, 2, samples)
	})

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	info, err := ReadInfo(f)
	if err != nil {
		t.Fatalf("ReadInfo() error = %v", err)
	}

	if info.SampleRate != 48000 {
		t.Errorf("SampleRate = %d, want 48000", info.SampleRate)
	}
	if info.Channels != 2 {
		t.Errorf("Channels = %d, want 2", info.Channels)
	}
	if info.Format != 1 {
		t.Errorf("Format = %d, want 1 (PCM)", info.Format)
	}
	if info.BitDepth != 16 {
		t.Errorf("BitDepth = %d, want 16", info.BitDepth)
	}
}

func TestWritePCM16_Clamps(t *testing.T) {
	t.Parallel()

	// Out-of-range samples must clamp, not wrap.
	path := writeTemp(t, "clamp.wav", func(f *os.File) error {
		return WritePCM16(f, 8000, 1, []float32{2.0, -2.0, 0.0})
	})

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	if _, err := ReadInfo(f); err != nil {
		t.Fatalf("ReadInfo() error = %v", err)
	}
}

func TestWriteResult(t *testing.T) {
	t.Parallel()

	samples := sineSamples(1000)
	res := ucra.NewRenderResult(samples, 1000, 1, 22050, nil)

	path := writeTemp(t, "result.wav", func(f *os.File) error {
		return WriteResult(f, res, Float32)
	})

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	info, err := ReadInfo(f)
	if err != nil {
		t.Fatalf("ReadInfo() error = %v", err)
	}
	if info.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050", info.SampleRate)
	}
	if info.Format != 3 {
		t.Errorf("Format = %d, want 3", info.Format)
	}
}

func TestWrite_Validation(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "invalid.wav"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	if err := WriteFloat32(f, 44100, 0, nil); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("WriteFloat32(channels=0) error = %v, want ErrInvalidChannels", err)
	}
	if err := WriteFloat32(f, 44100, 2, make([]float32, 3)); !errors.Is(err, ErrPartialFrame) {
		t.Errorf("WriteFloat32(partial frame) error = %v, want ErrPartialFrame", err)
	}
	if err := WritePCM16(f, 44100, 2, make([]float32, 5)); !errors.Is(err, ErrPartialFrame) {
		t.Errorf("WritePCM16(partial frame) error = %v, want ErrPartialFrame", err)
	}
}

func TestReadInfo_NotWav(t *testing.T) {
	t.Parallel()

	if _, err := ReadInfo(bytes.NewReader([]byte("not an audio file at all"))); !errors.Is(err, ErrNotWav) {
		t.Errorf("ReadInfo(garbage) error = %v, want ErrNotWav", err)
	}
}
