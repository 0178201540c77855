package mocap

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/stat"

	"morphshape/internal/shape"
)

// Dataset is one loaded marker capture: the canonical marker names in
// column order, and the coordinate frames.
type Dataset struct {
	MarkerNames []string
	Frames      shape.Pose
}

// LoadCSV loads a marker capture from a CSV file.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mocap: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("mocap: %s: %w", path, err)
	}
	return d, nil
}

// Parse reads a marker capture from CSV data. The first record is the
// per-coordinate header; every following record is one frame of flattened
// coordinates.
func Parse(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("mocap: read csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("mocap: need a header and at least one frame, got %d records", len(records))
	}

	header := records[0]
	names := MarkerNamesFromHeader(header)
	if len(header) != 3*len(names) {
		return nil, fmt.Errorf("mocap: %d coordinate columns for %d markers, want %d",
			len(header), len(names), 3*len(names))
	}

	rows := make([][]float64, 0, len(records)-1)
	for i, rec := range records[1:] {
		row := make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("mocap: frame %d column %s: %w", i, header[j], err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	frames, err := shape.FramesFromRows(rows)
	if err != nil {
		return nil, err
	}
	return &Dataset{MarkerNames: names, Frames: frames}, nil
}

// MeanFrame returns the per-marker mean coordinate across all frames: the
// "average shape" a multi-frame capture restores to.
func (d *Dataset) MeanFrame() []mgl64.Vec3 {
	markers := d.Frames.Markers()
	mean := make([]mgl64.Vec3, markers)
	col := make([]float64, len(d.Frames))
	for m := 0; m < markers; m++ {
		for axis := 0; axis < 3; axis++ {
			for f, frame := range d.Frames {
				col[f] = frame[m][axis]
			}
			mean[m][axis] = stat.Mean(col, nil)
		}
	}
	return mean
}

// ReferencePose returns the pose a State should load as its reference: the
// single frame as-is for single-frame captures, the mean frame otherwise.
func (d *Dataset) ReferencePose() shape.Pose {
	if len(d.Frames) == 1 {
		return d.Frames.Clone()
	}
	return shape.Pose{d.MeanFrame()}
}
