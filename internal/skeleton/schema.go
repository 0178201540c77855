// Package skeleton describes the marker layout of an animal: which named
// landmarks move, which are fixed reference points, and how markers group
// into drawable body sections.
package skeleton

import (
	"fmt"
	"strings"
)

// ConfigError reports an invalid skeleton definition.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "skeleton: " + e.Msg }

func configErrorf(format string, args ...any) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// BodySection is a named, ordered list of marker names whose coordinates
// form a drawable outline.
type BodySection struct {
	Name    string
	Markers []string
}

// Schema is an immutable description of one skeleton variant: moving
// markers, fixed markers, body sections, and the rule that splits moving
// markers into right and left sides.
type Schema struct {
	markerNames      []string
	fixedMarkerNames []string
	sectionNames     []string
	sections         map[string][]string
	rule             SideRule
}

// New builds a Schema and validates it eagerly: names must be non-empty and
// unique, moving and fixed names disjoint, and every body-section marker
// must exist in the union of the two name lists. A late lookup failure on a
// misspelled section marker is confusing; failing here is not.
func New(markerNames, fixedMarkerNames []string, sections []BodySection, rule SideRule) (*Schema, error) {
	if len(markerNames) == 0 {
		return nil, configErrorf("no marker names defined")
	}
	if rule == nil {
		return nil, configErrorf("no side rule defined")
	}

	known := make(map[string]bool, len(markerNames)+len(fixedMarkerNames))
	for _, name := range markerNames {
		if name == "" {
			return nil, configErrorf("empty marker name")
		}
		if known[name] {
			return nil, configErrorf("duplicate marker name %q", name)
		}
		known[name] = true
	}
	for _, name := range fixedMarkerNames {
		if name == "" {
			return nil, configErrorf("empty fixed marker name")
		}
		if known[name] {
			return nil, configErrorf("fixed marker %q duplicates a marker name", name)
		}
		known[name] = true
	}

	s := &Schema{
		markerNames:      append([]string(nil), markerNames...),
		fixedMarkerNames: append([]string(nil), fixedMarkerNames...),
		sections:         make(map[string][]string, len(sections)),
		rule:             rule,
	}
	for _, sec := range sections {
		if sec.Name == "" {
			return nil, configErrorf("body section with empty name")
		}
		if _, dup := s.sections[sec.Name]; dup {
			return nil, configErrorf("duplicate body section %q", sec.Name)
		}
		if len(sec.Markers) == 0 {
			return nil, configErrorf("body section %q has no markers", sec.Name)
		}
		for _, m := range sec.Markers {
			if !known[m] {
				return nil, configErrorf("body section %q references unknown marker %q", sec.Name, m)
			}
		}
		s.sectionNames = append(s.sectionNames, sec.Name)
		s.sections[sec.Name] = append([]string(nil), sec.Markers...)
	}
	return s, nil
}

// MarkerNames returns the moving marker names in canonical order.
func (s *Schema) MarkerNames() []string {
	return append([]string(nil), s.markerNames...)
}

// FixedMarkerNames returns the fixed marker names in canonical order.
func (s *Schema) FixedMarkerNames() []string {
	return append([]string(nil), s.fixedMarkerNames...)
}

// AllMarkerNames returns moving markers followed by fixed markers.
func (s *Schema) AllMarkerNames() []string {
	all := make([]string, 0, len(s.markerNames)+len(s.fixedMarkerNames))
	all = append(all, s.markerNames...)
	all = append(all, s.fixedMarkerNames...)
	return all
}

// RightMarkerNames returns the moving markers the side rule classifies as
// right-side, in canonical order. Computed on demand, never stored.
func (s *Schema) RightMarkerNames() []string {
	var names []string
	for _, name := range s.markerNames {
		if s.rule.IsRight(name) {
			names = append(names, name)
		}
	}
	return names
}

// LeftMarkerNames returns the moving markers the side rule classifies as
// left-side, in canonical order.
func (s *Schema) LeftMarkerNames() []string {
	var names []string
	for _, name := range s.markerNames {
		if s.rule.IsLeft(name) {
			names = append(names, name)
		}
	}
	return names
}

// SectionNames returns body section names in definition order.
func (s *Schema) SectionNames() []string {
	return append([]string(nil), s.sectionNames...)
}

// Section returns the ordered marker names of one body section.
func (s *Schema) Section(name string) ([]string, bool) {
	m, ok := s.sections[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), m...), true
}

func (s *Schema) String() string {
	return fmt.Sprintf("skeleton{%d moving, %d fixed, sections: %s}",
		len(s.markerNames), len(s.fixedMarkerNames), strings.Join(s.sectionNames, ","))
}
