// Package mocap loads marker capture datasets: per-coordinate CSV columns
// (three consecutive columns per marker, suffixed by axis) plus rows of
// per-frame flattened coordinates.
package mocap

import "strings"

// MarkerNamesFromHeader strips the coordinate suffixes (_x, _y, _z) from
// per-axis column names and de-duplicates keeping first-seen order,
// producing the canonical column-name list marker resolution runs against.
func MarkerNamesFromHeader(header []string) []string {
	seen := make(map[string]bool, len(header)/3)
	var names []string
	for _, col := range header {
		// Markers may contain underscores of their own, so strip the axis
		// suffixes explicitly rather than splitting on "_".
		name := strings.ReplaceAll(col, "_x", "")
		name = strings.ReplaceAll(name, "_y", "")
		name = strings.ReplaceAll(name, "_z", "")
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// First returns the first element of a per-frame parameter column, or 0
// when the column is empty. Pose parameters accept a scalar or the first
// element of an array-like value; this is that extraction.
func First(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return values[0]
}
