// SPDX-License-Identifier: EPL-2.0

// Package stream renders audio block by block instead of in one call.
//
// A Stream sits on top of any Renderer (usually *ucra.Engine) and pulls
// notes from a callback one block at a time, buffering the rendered PCM so
// callers can consume it at their own pace:
//
//	st, err := stream.Open(eng, stream.Config{
//	    SampleRate:  44100,
//	    Channels:    1,
//	    BlockFrames: 4096,
//	}, pullNotes)
//	if err != nil {
//	    // handle error
//	}
//	defer st.Close()
//
//	buf := make([]float32, 4096)
//	for {
//	    n, err := st.Read(buf)
//	    // consume buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	}
//
// The pull callback returns the notes of the next block, with times relative
// to the block start, and ErrEndOfScore when the score is finished. After
// that, Read drains the buffered samples and then reports io.EOF.
//
// A Stream serializes its own state but drives exactly one Renderer; the
// single-handle discipline of the underlying engine still applies.
package stream
