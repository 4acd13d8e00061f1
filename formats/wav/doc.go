// SPDX-License-Identifier: EPL-2.0

// Package wav writes render results to WAV files.
//
// Two sample encodings are supported:
//   - 32-bit IEEE float (format tag 3), the engine's native representation
//   - 16-bit PCM (format tag 1), for players that don't handle float WAV
//
// It uses the github.com/go-audio library for robust WAV file handling.
//
// # Writing
//
//	f, _ := os.Create("out.wav")
//	defer f.Close()
//	err := wav.WriteFloat32(f, 44100, 1, samples)
//
// Or directly from a render result:
//
//	err := wav.WriteResult(f, res, wav.Float32)
//
// # Reading back
//
// ReadInfo decodes just the header, for verifying what was written:
//
//	info, err := wav.ReadInfo(f)
//	// info.SampleRate, info.Channels, info.Format
//
// # Error Handling
//
//   - ErrNotWav: the input is not a valid WAV file
//   - ErrInvalidChannels: channel count < 1
//   - ErrPartialFrame: sample count is not a multiple of the channel count
package wav
