// SPDX-License-Identifier: EPL-2.0

// Package manifest loads and validates UCRA engine manifests.
//
// An engine distribution describes itself in a resampler.json file: identity
// (name, version, vendor, license), how to reach the engine (entry), the
// audio formats it supports, and the flags it accepts. This package decodes
// that file and enforces the manifest schema before
// anything tries to load the engine it points at.
//
// # Loading
//
//	m, err := manifest.Load("voicebank/resampler.json")
//	if err != nil {
//	    // errors.Is(err, ucra.ErrFileNotFound), ucra.ErrInvalidJSON,
//	    // or ucra.ErrInvalidManifest
//	}
//	fmt.Println(m.Name, m.Version)
//
// # Error Handling
//
// Failures map onto the binding's error taxonomy so callers handle one error
// set for engine and manifest problems alike: a missing file reports
// ucra.ErrFileNotFound, malformed JSON reports ucra.ErrInvalidJSON, and
// schema violations report ucra.ErrInvalidManifest. Each is wrapped with
// detail about what was wrong.
package manifest
