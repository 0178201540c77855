package skeleton

import (
	"strings"
	"testing"
)

const crabYAML = `
name: crab
markers: [clawtip1, clawtip2, eye]
fixed_markers: [shell]
side_rule:
  kind: numeric_suffix
  right_suffixes: [1]
  left_suffixes: [2]
sections:
  - name: claws
    markers: [clawtip1, clawtip2]
  - name: head
    markers: [eye, shell]
`

// TestParseVariant decodes a YAML variant and checks the resulting schema.
func TestParseVariant(t *testing.T) {
	s, err := Parse([]byte(crabYAML))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := len(s.MarkerNames()); got != 3 {
		t.Fatalf("expected 3 moving markers, got %d", got)
	}
	if got := s.RightMarkerNames(); len(got) != 1 || got[0] != "clawtip1" {
		t.Fatalf("expected right side [clawtip1], got %v", got)
	}
	if got := s.SectionNames(); len(got) != 2 || got[0] != "claws" {
		t.Fatalf("expected sections [claws head], got %v", got)
	}
}

// TestParseVariantErrors checks the loader's failure modes.
func TestParseVariantErrors(t *testing.T) {
	if _, err := Parse([]byte("   \n")); err == nil {
		t.Error("expected error for empty definition")
	}

	bad := strings.Replace(crabYAML, "kind: numeric_suffix", "kind: astrology", 1)
	if _, err := Parse([]byte(bad)); err == nil {
		t.Error("expected error for unknown side rule kind")
	}

	bad = strings.Replace(crabYAML, "markers: [eye, shell]", "markers: [eye, ghost]", 1)
	if _, err := Parse([]byte(bad)); err == nil {
		t.Error("expected error for section referencing unknown marker")
	}
}

// TestVariantByName resolves built-in variants and rejects unknown names.
func TestVariantByName(t *testing.T) {
	for _, name := range []string{"hawk", "spider"} {
		if _, err := Variant(name); err != nil {
			t.Errorf("Variant(%q) returned error: %v", name, err)
		}
	}
	if _, err := Variant("pigeon"); err == nil {
		t.Error("expected error for unknown variant")
	}
}
