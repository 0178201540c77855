package shape

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"morphshape/internal/markers"
	"morphshape/internal/skeleton"
)

// UnknownSectionError reports a request for a body section the view does
// not know, listing the sections it does.
type UnknownSectionError struct {
	Name  string
	Known []string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("shape: unknown section %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

// PolygonView maps each body section of a schema to its ordered marker
// indices within one dataset's column order. Built once per dataset,
// read-only thereafter.
type PolygonView struct {
	names    []string
	sections map[string][]int
}

// NewPolygonView resolves every body section of the schema against the
// dataset's column order.
func NewPolygonView(s *skeleton.Schema, columnOrder []string) (*PolygonView, error) {
	v := &PolygonView{
		names:    s.SectionNames(),
		sections: make(map[string][]int),
	}
	for _, name := range v.names {
		sectionMarkers, _ := s.Section(name)
		idx, err := markers.Resolve(sectionMarkers, columnOrder)
		if err != nil {
			return nil, fmt.Errorf("shape: section %q: %w", name, err)
		}
		v.sections[name] = idx
	}
	return v, nil
}

// SectionNames returns the section names in schema order.
func (v *PolygonView) SectionNames() []string {
	return append([]string(nil), v.names...)
}

// Indices returns the ordered marker indices of one section.
func (v *PolygonView) Indices(name string) ([]int, error) {
	idx, ok := v.sections[name]
	if !ok {
		return nil, v.unknown(name)
	}
	return append([]int(nil), idx...), nil
}

// Coords gathers the section's coordinates from one pose frame, in section
// order.
func (v *PolygonView) Coords(name string, frame []mgl64.Vec3) ([]mgl64.Vec3, error) {
	idx, ok := v.sections[name]
	if !ok {
		return nil, v.unknown(name)
	}
	coords := make([]mgl64.Vec3, len(idx))
	for i, j := range idx {
		coords[i] = frame[j]
	}
	return coords, nil
}

func (v *PolygonView) unknown(name string) error {
	known := append([]string(nil), v.names...)
	sort.Strings(known)
	return &UnknownSectionError{Name: name, Known: known}
}
