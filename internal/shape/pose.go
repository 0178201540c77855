// Package shape owns the pose buffers of a skeleton instance: the loaded
// reference pose, the per-frame working pose, and the pre-transform
// baseline, plus the homogeneous transform applied between them.
package shape

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ValidationError reports malformed pose input. Malformed biomechanical
// input is never silently accepted; it would propagate undetected into
// later reconstruction steps.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return "shape: " + e.Msg }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// Pose is a stack of frames, each holding one 3D coordinate per marker.
// All frames of a pose share one marker count.
type Pose [][]mgl64.Vec3

// Clone returns an independently owned deep copy.
func (p Pose) Clone() Pose {
	if p == nil {
		return nil
	}
	out := make(Pose, len(p))
	for f, frame := range p {
		out[f] = append([]mgl64.Vec3(nil), frame...)
	}
	return out
}

// Markers returns the marker count of the first frame, or 0 for an empty
// pose.
func (p Pose) Markers() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0])
}

// FramesFromRows converts flat per-frame coordinate rows into a Pose. Each
// row holds x,y,z triples, so its length must be a multiple of 3 and equal
// across rows.
func FramesFromRows(rows [][]float64) (Pose, error) {
	if len(rows) == 0 {
		return nil, validationErrorf("no keypoints provided")
	}
	want := len(rows[0])
	if want == 0 {
		return nil, validationErrorf("no keypoints provided")
	}
	if want%3 != 0 {
		return nil, validationErrorf("keypoints must be in 3D space, got row of %d values", want)
	}
	pose := make(Pose, len(rows))
	for f, row := range rows {
		if len(row) != want {
			return nil, validationErrorf("frame %d has %d values, want %d", f, len(row), want)
		}
		frame := make([]mgl64.Vec3, want/3)
		for i := range frame {
			frame[i] = mgl64.Vec3{row[i*3], row[i*3+1], row[i*3+2]}
		}
		pose[f] = frame
	}
	return pose, nil
}

// Mirror produces the bilateral completion of a one-sided pose: for every
// point a counterpart with the first coordinate negated, interleaved so the
// output alternates left,right,left,right matching the canonical pairing.
func Mirror(points Pose) Pose {
	out := make(Pose, len(points))
	for f, frame := range points {
		full := make([]mgl64.Vec3, 2*len(frame))
		for i, pt := range frame {
			full[2*i] = mgl64.Vec3{-pt.X(), pt.Y(), pt.Z()}
			full[2*i+1] = pt
		}
		out[f] = full
	}
	return out
}
