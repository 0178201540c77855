package mocap

import (
	"math"
	"strings"
	"testing"
)

// TestMarkerNamesFromHeader checks suffix stripping and first-seen
// de-duplication, including marker names that carry their own underscores.
func TestMarkerNamesFromHeader(t *testing.T) {
	header := []string{
		"right_wingtip_x", "right_wingtip_y", "right_wingtip_z",
		"left_wingtip_x", "left_wingtip_y", "left_wingtip_z",
	}
	names := MarkerNamesFromHeader(header)
	if len(names) != 2 {
		t.Fatalf("expected 2 markers, got %v", names)
	}
	if names[0] != "right_wingtip" || names[1] != "left_wingtip" {
		t.Fatalf("expected [right_wingtip left_wingtip], got %v", names)
	}
}

// TestParse reads a two-marker, two-frame capture and checks column names
// and coordinates.
func TestParse(t *testing.T) {
	csv := "right_x,right_y,right_z,left_x,left_y,left_z\n" +
		"1,0,0,-1,0,0\n" +
		"2,0,1,-2,0,1\n"

	d, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(d.MarkerNames) != 2 || d.MarkerNames[0] != "right" || d.MarkerNames[1] != "left" {
		t.Fatalf("marker names = %v, want [right left]", d.MarkerNames)
	}
	if len(d.Frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(d.Frames))
	}
	if got := d.Frames[1][1]; got.X() != -2 || got.Y() != 0 || got.Z() != 1 {
		t.Fatalf("frame 1 left = %v, want (-2,0,1)", got)
	}
}

// TestParseErrors checks the loader's failure modes.
func TestParseErrors(t *testing.T) {
	if _, err := Parse(strings.NewReader("right_x,right_y,right_z\n")); err == nil {
		t.Error("expected error for header with no frames")
	}
	// Four columns cannot be x,y,z triples.
	bad := "a_x,a_y,a_z,b_x\n1,2,3,4\n"
	if _, err := Parse(strings.NewReader(bad)); err == nil {
		t.Error("expected error for non-triple column count")
	}
	notNum := "a_x,a_y,a_z\n1,2,wing\n"
	if _, err := Parse(strings.NewReader(notNum)); err == nil {
		t.Error("expected error for non-numeric coordinate")
	}
}

// TestMeanFrame checks the per-marker mean across frames.
func TestMeanFrame(t *testing.T) {
	csv := "a_x,a_y,a_z\n" +
		"0,2,4\n" +
		"2,4,8\n"
	d, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	mean := d.MeanFrame()
	if len(mean) != 1 {
		t.Fatalf("expected 1 marker, got %d", len(mean))
	}
	if math.Abs(mean[0].X()-1) > 1e-12 || math.Abs(mean[0].Y()-3) > 1e-12 || math.Abs(mean[0].Z()-6) > 1e-12 {
		t.Fatalf("mean = %v, want (1,3,6)", mean[0])
	}

	ref := d.ReferencePose()
	if len(ref) != 1 {
		t.Fatalf("reference pose should have 1 frame, got %d", len(ref))
	}
	if !refEquals(ref[0][0][0], 1) || !refEquals(ref[0][0][1], 3) {
		t.Fatalf("multi-frame reference should be the mean, got %v", ref[0][0])
	}
}

func refEquals(a, b float64) bool { return math.Abs(a-b) < 1e-12 }

// TestFirst checks the scalar-extraction rule for array-like parameters.
func TestFirst(t *testing.T) {
	if got := First([]float64{2.5, 9}); got != 2.5 {
		t.Fatalf("First = %v, want 2.5", got)
	}
	if got := First(nil); got != 0 {
		t.Fatalf("First(nil) = %v, want 0", got)
	}
}
