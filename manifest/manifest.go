// SPDX-License-Identifier: EPL-2.0

package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"

	ucra "github.com/ucra/go-ucra"
)

// Entry describes how to reach the engine binary.
type Entry struct {
	// Type is the engine invocation kind: "dll", "cli", or "ipc".
	Type string `json:"type" validate:"required,oneof=dll cli ipc"`
	// Path to the engine, relative to the manifest.
	Path string `json:"path" validate:"required"`
	// Symbol is the optional entry symbol for dll engines.
	Symbol string `json:"symbol,omitempty"`
}

// Audio describes the formats the engine supports.
type Audio struct {
	// Rates lists supported sample rates in Hz.
	Rates []uint32 `json:"rates" validate:"required,min=1,dive,gt=0,lte=192000"`
	// Channels lists supported channel counts.
	Channels []uint32 `json:"channels" validate:"required,min=1,dive,gt=0,lte=8"`
	// Streaming reports whether the engine supports streaming render.
	Streaming bool `json:"streaming,omitempty"`
}

// Flag describes one engine flag.
type Flag struct {
	Key  string `json:"key" validate:"required"`
	Type string `json:"type" validate:"required,oneof=float int bool string enum"`
	Desc string `json:"desc" validate:"required"`
	// Default is the default value, coerced to a string regardless of its
	// JSON type.
	Default string `json:"default,omitempty"`
	// Range holds [min, max] for float and int flags.
	Range []float64 `json:"range,omitempty"`
	// Values lists the allowed values for enum flags.
	Values []string `json:"values,omitempty"`
}

// UnmarshalJSON accepts string, number, and bool defaults the way the
// reference parser does, coercing them all to strings.
func (f *Flag) UnmarshalJSON(data []byte) error {
	type flagAlias Flag
	aux := struct {
		*flagAlias
		Default json.RawMessage `json:"default,omitempty"`
	}{flagAlias: (*flagAlias)(f)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Default) == 0 {
		return nil
	}

	var s string
	if err := json.Unmarshal(aux.Default, &s); err == nil {
		f.Default = s
		return nil
	}
	var n float64
	if err := json.Unmarshal(aux.Default, &n); err == nil {
		f.Default = strconv.FormatFloat(n, 'g', 6, 64)
		return nil
	}
	var b bool
	if err := json.Unmarshal(aux.Default, &b); err == nil {
		f.Default = strconv.FormatBool(b)
		return nil
	}
	return fmt.Errorf("flag %q: unsupported default value %s", f.Key, aux.Default)
}

// Manifest is a parsed and validated resampler.json.
type Manifest struct {
	Name    string `json:"name" validate:"required"`
	Version string `json:"version" validate:"required"`
	Vendor  string `json:"vendor,omitempty"`
	License string `json:"license,omitempty"`
	Entry   Entry  `json:"entry" validate:"required"`
	Audio   Audio  `json:"audio" validate:"required"`
	Flags   []Flag `json:"flags,omitempty" validate:"dive"`
}

// Flag returns the flag with the given key, if declared.
func (m *Manifest) Flag(key string) (Flag, bool) {
	for _, f := range m.Flags {
		if f.Key == key {
			return f, true
		}
	}
	return Flag{}, false
}

// SupportsRate reports whether the engine declares the given sample rate.
func (m *Manifest) SupportsRate(rate uint32) bool {
	for _, r := range m.Audio.Rates {
		if r == rate {
			return true
		}
	}
	return false
}

// SupportsChannels reports whether the engine declares the given channel count.
func (m *Manifest) SupportsChannels(channels uint32) bool {
	for _, c := range m.Audio.Channels {
		if c == channels {
			return true
		}
	}
	return false
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ucra.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates manifest JSON.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ucra.ErrInvalidJSON, err)
	}

	if err := validate.Struct(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ucra.ErrInvalidManifest, err)
	}
	if err := checkFlags(m.Flags); err != nil {
		return nil, fmt.Errorf("%w: %v", ucra.ErrInvalidManifest, err)
	}
	return &m, nil
}

// checkFlags enforces the type-specific constraints struct tags can't
// express: numeric ranges must be ordered pairs, enums must list values.
func checkFlags(flags []Flag) error {
	for _, f := range flags {
		switch f.Type {
		case "float", "int":
			if f.Range == nil {
				continue
			}
			if len(f.Range) != 2 {
				return fmt.Errorf("flag %q: range must have exactly 2 elements", f.Key)
			}
			if f.Range[0] >= f.Range[1] {
				return fmt.Errorf("flag %q: range min %g must be below max %g", f.Key, f.Range[0], f.Range[1])
			}
		case "enum":
			if len(f.Values) == 0 {
				return fmt.Errorf("flag %q: enum flag needs a values list", f.Key)
			}
			for _, v := range f.Values {
				if v == "" {
					return fmt.Errorf("flag %q: enum values must be non-empty", f.Key)
				}
			}
		}
	}
	return nil
}
