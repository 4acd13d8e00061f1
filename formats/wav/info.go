// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	gowav "github.com/go-audio/wav"
)

// Info holds the header fields of a WAV file.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
	// Format is the wave format tag: 1 = PCM, 3 = IEEE float.
	Format uint16
}

// ReadInfo decodes the header of a WAV stream without reading sample data.
func ReadInfo(rs io.ReadSeeker) (Info, error) {
	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if dec.Err() != nil || dec.NumChans == 0 || dec.SampleRate == 0 {
		return Info{}, ErrNotWav
	}

	return Info{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
		Format:     dec.WavAudioFormat,
	}, nil
}
