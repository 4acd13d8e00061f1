// SPDX-License-Identifier: EPL-2.0

// Package ucra provides Go bindings for the UCRA (Universal Choir Rendering
// API) C ABI.
//
// The package wraps an opaque engine handle behind the Engine type, converts
// between Go values and the C structures the ABI expects, and translates the
// ABI's integer result codes into Go errors. A portable reference engine is
// compiled into the package, so it works out of the box without an external
// engine install.
//
// # Quick Start
//
//	eng, err := ucra.New()
//	if err != nil {
//	    // handle error
//	}
//	defer eng.Close()
//
//	notes := []ucra.NoteSegment{
//	    {StartSec: 0.0, DurationSec: 0.5, MIDINote: 69, Velocity: 100},
//	}
//	res, err := eng.Render(&ucra.RenderConfig{
//	    SampleRate: 44100,
//	    Channels:   1,
//	    Notes:      notes,
//	})
//	if err != nil {
//	    // handle error
//	}
//	samples := res.Samples() // interleaved float32
//
// # Buffer Ownership
//
// The sample buffer behind RenderResult is owned by the engine. It stays
// valid until the next Render call on the same Engine or until Close,
// whichever comes first. Callers that need the data past that point must
// use CopySamples.
//
// # Thread Safety
//
// The ABI does not guarantee thread-safe handles. Engine serializes all
// calls on one handle internally, but a single Engine still renders one
// request at a time. Callers wanting parallelism should create independent
// Engine instances, one per goroutine.
//
// # Error Handling
//
// Every ABI call's result code is checked immediately. Non-zero codes map
// onto the package's sentinel errors (ErrInvalidArgument, ErrOutOfMemory,
// ErrNotSupported, ErrInternal, ErrFileNotFound, ErrInvalidJSON,
// ErrInvalidManifest); codes outside the defined set surface as
// *UnknownCodeError carrying the raw value.
//
// # Subpackages
//
//   - manifest: resampler.json engine manifest loading and validation
//   - flagmap: flag transform rules mapping caller flags to engine options
//   - stream: block-based streaming render layer
//   - formats/wav: WAV output for render results
package ucra
