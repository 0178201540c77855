package batch

import (
	"encoding/json"
	"os"
)

// Manifest summarizes one sweep run for downstream consumers.
type Manifest struct {
	Capture  string    `json:"capture"`
	Output   string    `json:"output"`
	Variant  string    `json:"variant"`
	Frames   int       `json:"frames"`
	Failed   []int     `json:"failed_frames,omitempty"`
	Markers  []string  `json:"markers"`
	PitchDeg []float64 `json:"pitch_deg,omitempty"`
	YawDeg   []float64 `json:"yaw_deg,omitempty"`
	HorzDist []float64 `json:"horz_dist,omitempty"`
	VertDist []float64 `json:"vert_dist,omitempty"`
}

// NewManifest builds the run summary from sweep results.
func NewManifest(capture, output, variant string, markerNames []string, params Params, results []Result) Manifest {
	m := Manifest{
		Capture:  capture,
		Output:   output,
		Variant:  variant,
		Frames:   len(results),
		Markers:  markerNames,
		PitchDeg: params.PitchDeg,
		YawDeg:   params.YawDeg,
		HorzDist: params.HorzDist,
		VertDist: params.VertDist,
	}
	for _, r := range results {
		if r.Error != "" {
			m.Failed = append(m.Failed, r.Frame)
		}
	}
	return m
}

// Write writes the manifest as indented JSON.
func (m Manifest) Write(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
