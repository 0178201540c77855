package skeleton

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// variantFile is the YAML form of a skeleton variant, so new species can be
// described without code.
type variantFile struct {
	Name         string        `yaml:"name"`
	Markers      []string      `yaml:"markers"`
	FixedMarkers []string      `yaml:"fixed_markers"`
	SideRule     sideRuleFile  `yaml:"side_rule"`
	Sections     []sectionFile `yaml:"sections"`
}

type sideRuleFile struct {
	Kind          string `yaml:"kind"` // "substring" or "numeric_suffix"
	RightSuffixes []int  `yaml:"right_suffixes"`
	LeftSuffixes  []int  `yaml:"left_suffixes"`
}

type sectionFile struct {
	Name    string   `yaml:"name"`
	Markers []string `yaml:"markers"`
}

// Parse decodes a skeleton variant from YAML bytes and validates it.
func Parse(data []byte) (*Schema, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, configErrorf("variant definition is empty")
	}
	var vf variantFile
	if err := yaml.Unmarshal(data, &vf); err != nil {
		return nil, fmt.Errorf("skeleton: decode variant: %w", err)
	}

	var rule SideRule
	switch vf.SideRule.Kind {
	case "substring":
		rule = SubstringRule{}
	case "numeric_suffix":
		if len(vf.SideRule.RightSuffixes) == 0 || len(vf.SideRule.LeftSuffixes) == 0 {
			return nil, configErrorf("numeric_suffix rule needs right_suffixes and left_suffixes")
		}
		rule = NumericSuffixRule{Right: vf.SideRule.RightSuffixes, Left: vf.SideRule.LeftSuffixes}
	default:
		return nil, configErrorf("unknown side rule kind %q", vf.SideRule.Kind)
	}

	sections := make([]BodySection, 0, len(vf.Sections))
	for _, sec := range vf.Sections {
		sections = append(sections, BodySection{Name: sec.Name, Markers: sec.Markers})
	}
	return New(vf.Markers, vf.FixedMarkers, sections, rule)
}

// LoadFile loads a skeleton variant from a YAML file.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("skeleton: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("skeleton: %s: %w", path, err)
	}
	return s, nil
}

// Variant returns a built-in schema by name, or loads one from a YAML file
// when name is a path to an existing file.
func Variant(name string) (*Schema, error) {
	switch name {
	case "hawk":
		return Hawk(), nil
	case "spider":
		return Spider(), nil
	}
	if _, err := os.Stat(name); err == nil {
		return LoadFile(name)
	}
	return nil, configErrorf("unknown variant %q (want hawk, spider, or a YAML file path)", name)
}
