package markers

import "morphshape/internal/skeleton"

// Layout fixes the canonical index lists for one loaded dataset: where each
// moving, fixed, right-side and left-side marker sits within the dataset's
// column order. Built once per dataset and never mutated.
type Layout struct {
	Moving []int
	Fixed  []int
	Right  []int
	Left   []int

	// Total is the full marker count of a pose buffer.
	Total int
}

// NewLayout resolves the four canonical index lists for a schema against a
// dataset's column order. Every schema marker must appear in columnOrder.
func NewLayout(s *skeleton.Schema, columnOrder []string) (*Layout, error) {
	moving, err := Resolve(s.MarkerNames(), columnOrder)
	if err != nil {
		return nil, err
	}
	fixed, err := Resolve(s.FixedMarkerNames(), columnOrder)
	if err != nil {
		return nil, err
	}
	right, err := Resolve(s.RightMarkerNames(), columnOrder)
	if err != nil {
		return nil, err
	}
	left, err := Resolve(s.LeftMarkerNames(), columnOrder)
	if err != nil {
		return nil, err
	}
	return &Layout{
		Moving: moving,
		Fixed:  fixed,
		Right:  right,
		Left:   left,
		Total:  len(columnOrder),
	}, nil
}
