// SPDX-License-Identifier: EPL-2.0

package flagmap

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	ucra "github.com/ucra/go-ucra"
)

// Transform describes how a source value becomes a target value.
type Transform struct {
	// Kind is "copy", "scale", "map", or "constant". Empty means copy.
	Kind string `json:"kind,omitempty"`
	// Scale holds [min, max] for scale transforms.
	Scale []float64 `json:"scale,omitempty"`
	// Map is the lookup table for map transforms.
	Map map[string]string `json:"map,omitempty"`
	// Value is the fixed output for constant transforms.
	Value string `json:"value,omitempty"`
}

// Rule maps one source flag onto one target engine option.
type Rule struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Target struct {
		Name    string `json:"name"`
		Default string `json:"default,omitempty"`
	} `json:"target"`
	Transform Transform `json:"transform,omitempty"`
}

// RuleSet is a parsed rule file.
type RuleSet struct {
	Engine  string `json:"engine,omitempty"`
	Version int    `json:"version,omitempty"`
	Rules   []Rule `json:"rules"`
}

// LoadRules reads and parses a rule file.
func LoadRules(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ucra.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("read rules: %w", err)
	}
	return ParseRules(data)
}

// ParseRules decodes rule JSON.
func ParseRules(data []byte) (*RuleSet, error) {
	var rs RuleSet
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("%w: %v", ucra.ErrInvalidJSON, err)
	}
	for i, r := range rs.Rules {
		if r.Source.Name == "" || r.Target.Name == "" {
			return nil, fmt.Errorf("%w: rule %d needs source and target names", ucra.ErrInvalidArgument, i)
		}
	}
	return &rs, nil
}

// Apply runs every rule against the given flags and returns the resulting
// engine options. Values a transform cannot handle are skipped and reported
// in the warnings slice; missing sources fall back to the target default
// when one is declared.
func Apply(rs *RuleSet, flags map[string]string) (map[string]string, []string) {
	out := make(map[string]string, len(rs.Rules))
	var warnings []string

	for _, r := range rs.Rules {
		val, ok := flags[r.Source.Name]
		if !ok {
			if r.Target.Default != "" {
				out[r.Target.Name] = r.Target.Default
			}
			continue
		}

		switch r.Transform.Kind {
		case "", "copy":
			out[r.Target.Name] = val
		case "scale":
			lo, hi := 0.0, 1.0
			if len(r.Transform.Scale) >= 2 {
				lo, hi = r.Transform.Scale[0], r.Transform.Scale[1]
			}
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("scale: cannot convert %q to float for %s", val, r.Source.Name))
				continue
			}
			out[r.Target.Name] = strconv.FormatFloat(lo+(hi-lo)*f, 'g', -1, 64)
		case "map":
			mapped, found := r.Transform.Map[val]
			if !found {
				warnings = append(warnings, fmt.Sprintf("map: value %q not in mapping for %s", val, r.Source.Name))
				continue
			}
			out[r.Target.Name] = mapped
		case "constant":
			out[r.Target.Name] = r.Transform.Value
		default:
			warnings = append(warnings, fmt.Sprintf("unknown transform kind: %s", r.Transform.Kind))
		}
	}
	return out, warnings
}
