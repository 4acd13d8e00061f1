// SPDX-License-Identifier: EPL-2.0

// Package flagmap translates caller-facing flags into engine options.
//
// Engines differ in the option names and value ranges they accept. A rule
// set, loaded from JSON, maps each source flag onto a target engine option
// through one of four transforms:
//
//   - copy: pass the value through unchanged
//   - scale: convert a normalized [0,1] value linearly into [min,max]
//   - map: translate enumerated values through a lookup table
//   - constant: always emit a fixed value
//
// Rules with a target default fill in options the caller didn't set.
// Values a transform can't handle are skipped and reported as warnings
// rather than failing the whole mapping.
//
//	rules, err := flagmap.LoadRules("world_flags.json")
//	opts, warnings := flagmap.Apply(rules, map[string]string{"g": "0.5"})
//	// opts feeds ucra.RenderConfig.Options
package flagmap
