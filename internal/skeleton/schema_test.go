package skeleton

import (
	"errors"
	"testing"
)

// TestHawkVariant checks the built-in hawk definition: marker counts, the
// left/right alternation of moving markers, and side classification.
func TestHawkVariant(t *testing.T) {
	s := Hawk()

	if got := len(s.MarkerNames()); got != 8 {
		t.Fatalf("expected 8 moving markers, got %d", got)
	}
	if got := len(s.FixedMarkerNames()); got != 6 {
		t.Fatalf("expected 6 fixed markers, got %d", got)
	}
	if got := len(s.AllMarkerNames()); got != 14 {
		t.Fatalf("expected 14 markers total, got %d", got)
	}

	names := s.MarkerNames()
	for i := 0; i < len(names); i += 2 {
		if want := "left_"; names[i][:len(want)] != want {
			t.Errorf("expected left marker at index %d, got %s", i, names[i])
		}
		if i+1 < len(names) {
			if want := "right_"; names[i+1][:len(want)] != want {
				t.Errorf("expected right marker at index %d, got %s", i+1, names[i+1])
			}
		}
	}

	right := s.RightMarkerNames()
	left := s.LeftMarkerNames()
	if len(right) != len(left) {
		t.Fatalf("right/left counts differ: %d vs %d", len(right), len(left))
	}
	if len(right)+len(left) != len(names) {
		t.Fatalf("side subsets do not partition moving markers: %d + %d != %d",
			len(right), len(left), len(names))
	}

	if got := len(s.SectionNames()); got != 7 {
		t.Fatalf("expected 7 body sections, got %d", got)
	}
	body, ok := s.Section("body")
	if !ok {
		t.Fatal("missing body section")
	}
	if len(body) != 4 {
		t.Fatalf("expected 4 body markers, got %d", len(body))
	}
}

// TestSpiderVariant checks the radially numbered spider definition and its
// numeric-suffix side rule.
func TestSpiderVariant(t *testing.T) {
	s := Spider()

	if got := len(s.MarkerNames()); got != 35 {
		t.Fatalf("expected 35 moving markers, got %d", got)
	}
	if got := s.MarkerNames()[0]; got != "claw1" {
		t.Fatalf("expected claw1 first, got %s", got)
	}

	right := s.RightMarkerNames()
	left := s.LeftMarkerNames()
	if len(right) != 16 || len(left) != 16 {
		t.Fatalf("expected 16 markers per side, got %d right, %d left", len(right), len(left))
	}
	for _, name := range right {
		n, ok := trailingInt(name)
		if !ok || n < 1 || n > 4 {
			t.Errorf("marker %s classified right, suffix should be 1-4", name)
		}
	}
	// Midline body markers belong to neither side.
	rule := NumericSuffixRule{Right: []int{1, 2, 3, 4}, Left: []int{5, 6, 7, 8}}
	if rule.IsRight("clypeus") || rule.IsLeft("clypeus") {
		t.Error("clypeus should have no side")
	}

	if got := len(s.SectionNames()); got != 9 {
		t.Fatalf("expected 9 sections (8 legs + body), got %d", got)
	}
	leg, ok := s.Section("leg_3")
	if !ok {
		t.Fatal("missing leg_3 section")
	}
	if len(leg) != 7 || leg[0] != "claw3" || leg[6] != "claw3" {
		t.Fatalf("leg_3 should trace out and back from claw3, got %v", leg)
	}
}

// TestNumericSuffixRule checks trailing-integer extraction, including
// multi-digit suffixes and names without one.
func TestNumericSuffixRule(t *testing.T) {
	rule := NumericSuffixRule{Right: []int{1, 3, 11}, Left: []int{2, 4}}

	cases := []struct {
		name  string
		right bool
		left  bool
	}{
		{"claw1", true, false},
		{"claw2", false, true},
		{"claw11", true, false},
		{"spinneret", false, false},
		{"claw5", false, false},
	}
	for _, c := range cases {
		if got := rule.IsRight(c.name); got != c.right {
			t.Errorf("IsRight(%q) = %v, want %v", c.name, got, c.right)
		}
		if got := rule.IsLeft(c.name); got != c.left {
			t.Errorf("IsLeft(%q) = %v, want %v", c.name, got, c.left)
		}
	}
}

// TestNewValidatesEagerly checks that a section referencing an unknown
// marker fails at construction with a ConfigError, not later at resolve
// time.
func TestNewValidatesEagerly(t *testing.T) {
	sections := []BodySection{
		{Name: "body", Markers: []string{"left_tip", "no_such_marker"}},
	}
	_, err := New([]string{"left_tip", "right_tip"}, nil, sections, SubstringRule{})
	if err == nil {
		t.Fatal("expected error for unknown section marker")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %T: %v", err, err)
	}
}

// TestNewRejectsDuplicates checks name-list validation.
func TestNewRejectsDuplicates(t *testing.T) {
	if _, err := New([]string{"a", "a"}, nil, nil, SubstringRule{}); err == nil {
		t.Error("expected error for duplicate marker name")
	}
	if _, err := New([]string{"a"}, []string{"a"}, nil, SubstringRule{}); err == nil {
		t.Error("expected error for fixed marker duplicating a moving marker")
	}
	if _, err := New(nil, []string{"a"}, nil, SubstringRule{}); err == nil {
		t.Error("expected error for empty moving marker list")
	}
}
