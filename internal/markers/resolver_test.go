package markers

import (
	"errors"
	"math/rand"
	"testing"

	"morphshape/internal/skeleton"
)

// TestResolveTracksSubsetOrder checks that output order follows the
// requested subset, not the columns: with columns ordered [right, left],
// resolving [left, right] yields [1, 0].
func TestResolveTracksSubsetOrder(t *testing.T) {
	idx, err := Resolve([]string{"left", "right"}, []string{"right", "left"})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(idx) != 2 || idx[0] != 1 || idx[1] != 0 {
		t.Fatalf("expected [1 0], got %v", idx)
	}
}

// TestResolvePermutationCorrect shuffles the column order many times and
// checks that gathering through the resolved indices always recovers each
// marker's own column, independent of the permutation.
func TestResolvePermutationCorrect(t *testing.T) {
	names := []string{"wingtip", "primary", "secondary", "tailtip", "hood"}
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		order := append([]string(nil), names...)
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		idx, err := Resolve(names, order)
		if err != nil {
			t.Fatalf("trial %d: Resolve returned error: %v", trial, err)
		}
		for i, name := range names {
			if order[idx[i]] != name {
				t.Fatalf("trial %d: index %d resolves to %s, want %s",
					trial, idx[i], order[idx[i]], name)
			}
		}
	}
}

// TestResolveMissingMarker checks that an absent name fails with a
// LookupError naming the marker.
func TestResolveMissingMarker(t *testing.T) {
	_, err := Resolve([]string{"wingtip", "ghost"}, []string{"wingtip"})
	if err == nil {
		t.Fatal("expected error for missing marker")
	}
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("expected LookupError, got %T: %v", err, err)
	}
	if lookupErr.Name != "ghost" {
		t.Fatalf("error should name the missing marker, got %q", lookupErr.Name)
	}
}

// TestNewLayoutHawk resolves the hawk schema against the column order of
// the reference capture file and checks the known index expectations.
func TestNewLayoutHawk(t *testing.T) {
	// Column order of the reference mean-shape capture.
	columnOrder := []string{
		"left_secondary", "left_wingtip", "left_primary", "left_shoulder",
		"left_tailbase", "left_tailtip", "right_tailtip", "right_tailbase",
		"tailpack", "hood", "right_shoulder", "right_primary",
		"right_wingtip", "right_secondary",
	}

	layout, err := NewLayout(skeleton.Hawk(), columnOrder)
	if err != nil {
		t.Fatalf("NewLayout returned error: %v", err)
	}

	if layout.Total != 14 {
		t.Fatalf("expected 14 total markers, got %d", layout.Total)
	}
	if got := len(layout.Moving) + len(layout.Fixed); got != 14 {
		t.Fatalf("moving + fixed should cover all markers, got %d", got)
	}
	if len(layout.Right) != 4 || len(layout.Left) != 4 {
		t.Fatalf("expected 4 markers per side, got %d right, %d left",
			len(layout.Right), len(layout.Left))
	}

	// marker_names order is left_wingtip, right_wingtip, left_primary, ...
	want := []int{1, 12, 2, 11, 0, 13, 5, 6}
	for i, w := range want {
		if layout.Moving[i] != w {
			t.Fatalf("moving index %d = %d, want %d", i, layout.Moving[i], w)
		}
	}
}

// TestNewLayoutMissingColumn checks that a column order missing a schema
// marker surfaces the LookupError.
func TestNewLayoutMissingColumn(t *testing.T) {
	_, err := NewLayout(skeleton.Hawk(), []string{"left_wingtip"})
	if err == nil {
		t.Fatal("expected error for incomplete column order")
	}
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("expected LookupError, got %T: %v", err, err)
	}
}
