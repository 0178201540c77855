package shape

import (
	"gonum.org/v1/gonum/floats"

	"github.com/go-gl/mathgl/mgl64"

	"morphshape/internal/markers"
)

// State owns the three pose buffers of one skeleton instance: the loaded
// reference pose, the working pose consumers read, and the pre-transform
// baseline snapshot. Buffers are always independently owned copies; no
// transition aliases one buffer to another.
//
// A State is driven once per animation frame and is not safe for
// concurrent use. Side-by-side playback needs one State per pose.
type State struct {
	layout *markers.Layout

	// strict requires updates to carry the full moving-marker set after
	// optional mirroring. Species with fully enumerated markers set this.
	strict bool

	reference Pose
	working   Pose
	baseline  Pose

	xform Transform
}

// NewState initializes a State from a reference pose: working and baseline
// become independent copies, origin and matrix rest at zero/identity. The
// reference marker count must match the layout.
func NewState(layout *markers.Layout, reference Pose, strict bool) (*State, error) {
	if len(reference) == 0 || reference.Markers() == 0 {
		return nil, validationErrorf("no keypoints provided")
	}
	if reference.Markers() != layout.Total {
		return nil, validationErrorf("reference pose has %d markers, layout expects %d",
			reference.Markers(), layout.Total)
	}
	return &State{
		layout:    layout,
		strict:    strict,
		reference: reference.Clone(),
		working:   reference.Clone(),
		baseline:  reference.Clone(),
		xform:     NewTransform(),
	}, nil
}

// Validate normalizes user pose input. Empty input fails. Input whose
// marker count equals the right-side subset is treated as one-sided and
// mirrored into the full bilateral set. In strict mode the result must
// carry exactly the full moving-marker count.
func (s *State) Validate(points Pose) (Pose, error) {
	if len(points) == 0 || len(points[0]) == 0 {
		return nil, validationErrorf("no keypoints provided")
	}
	n := len(points[0])
	for f, frame := range points {
		if len(frame) != n {
			return nil, validationErrorf("frame %d has %d markers, frame 0 has %d", f, len(frame), n)
		}
	}

	if n == len(s.layout.Right) && len(s.layout.Right) != len(s.layout.Moving) {
		points = Mirror(points)
		n *= 2
	}

	if s.strict && n != len(s.layout.Moving) {
		return nil, validationErrorf("expected %d moving markers, got %d", len(s.layout.Moving), n)
	}
	return points, nil
}

// Update replaces the moving-marker positions of the working pose. A nil
// input restores the reference pose instead. Fixed-marker rows are left
// untouched; they are not expected to vary per frame. The validated input
// becomes the new baseline, and the currently accumulated transform
// (normally identity at this point) is applied to the working pose.
//
// Validation runs strictly before any buffer is written, so a failed call
// leaves the State unchanged.
func (s *State) Update(points Pose) error {
	if points == nil {
		s.Restore()
		return nil
	}

	normalized, err := s.Validate(points)
	if err != nil {
		return err
	}
	if len(normalized[0]) != len(s.layout.Moving) {
		return validationErrorf("expected %d moving markers, got %d",
			len(s.layout.Moving), len(normalized[0]))
	}

	switch {
	case len(normalized) == len(s.working):
		// Frame-wise scatter.
	case len(normalized) == 1:
		// One input frame broadcasts across all working frames.
		frames := make(Pose, len(s.working))
		for f := range frames {
			frames[f] = normalized[0]
		}
		normalized = frames
	case len(s.working) == 1:
		// Grow the working buffer to the input frame count from the
		// single loaded frame.
		s.working = tile(s.working[0], len(normalized))
	default:
		return validationErrorf("pose has %d frames, working pose has %d",
			len(normalized), len(s.working))
	}

	for f, frame := range normalized {
		for i, j := range s.layout.Moving {
			s.working[f][j] = frame[i]
		}
	}
	s.baseline = s.working.Clone()
	s.xform.Apply(s.working)
	return nil
}

// Reset discards the applied transform: the working pose becomes a fresh
// copy of the baseline, the matrix returns to identity and the origin to
// zero.
func (s *State) Reset() {
	s.working = s.baseline.Clone()
	s.xform.Reset()
}

// Restore returns the State to the loaded reference pose and zeroes the
// origin, regardless of prior update or transform history.
func (s *State) Restore() {
	s.working = s.reference.Clone()
	s.baseline = s.working.Clone()
	s.xform.ZeroOrigin()
}

// ComposePose applies one pose episode to the baseline: reset, translate,
// pitch about X, yaw about Z, apply. The order is fixed; rotation does not
// commute.
func (s *State) ComposePose(pitchDeg, horzDist, vertDist, yawDeg float64) {
	s.Reset()
	s.xform.Translate(horzDist, vertDist)
	s.xform.Rotate(pitchDeg, AxisX)
	s.xform.Rotate(yawDeg, AxisZ)
	s.xform.Apply(s.working)
}

// BoundingBox returns the per-axis minimum and maximum over all frames and
// markers of the working pose.
func (s *State) BoundingBox() (min, max mgl64.Vec3) {
	n := len(s.working) * s.working.Markers()
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	zs := make([]float64, 0, n)
	for _, frame := range s.working {
		for _, pt := range frame {
			xs = append(xs, pt.X())
			ys = append(ys, pt.Y())
			zs = append(zs, pt.Z())
		}
	}
	min = mgl64.Vec3{floats.Min(xs), floats.Min(ys), floats.Min(zs)}
	max = mgl64.Vec3{floats.Max(xs), floats.Max(ys), floats.Max(zs)}
	return min, max
}

// Origin returns the cumulative translation offset of the current pose.
func (s *State) Origin() mgl64.Vec3 { return s.xform.Origin() }

// Matrix returns the accumulated transform matrix.
func (s *State) Matrix() mgl64.Mat4 { return s.xform.Matrix() }

// Working returns a copy of the full working pose.
func (s *State) Working() Pose { return s.working.Clone() }

// Reference returns a copy of the loaded reference pose.
func (s *State) Reference() Pose { return s.reference.Clone() }

// CurrentFrame returns a copy of the first working frame, the frame
// section coordinates are drawn from.
func (s *State) CurrentFrame() []mgl64.Vec3 {
	return append([]mgl64.Vec3(nil), s.working[0]...)
}

// Markers returns the moving-marker subset of the working pose.
func (s *State) Markers() Pose { return gather(s.working, s.layout.Moving) }

// RightMarkers returns the right-side subset of the working pose.
func (s *State) RightMarkers() Pose { return gather(s.working, s.layout.Right) }

// LeftMarkers returns the left-side subset of the working pose.
func (s *State) LeftMarkers() Pose { return gather(s.working, s.layout.Left) }

// ReferenceMarkers returns the moving-marker subset of the reference pose.
func (s *State) ReferenceMarkers() Pose { return gather(s.reference, s.layout.Moving) }

// ReferenceRightMarkers returns the right-side subset of the reference pose.
func (s *State) ReferenceRightMarkers() Pose { return gather(s.reference, s.layout.Right) }

// ReferenceLeftMarkers returns the left-side subset of the reference pose.
func (s *State) ReferenceLeftMarkers() Pose { return gather(s.reference, s.layout.Left) }

func gather(p Pose, idx []int) Pose {
	out := make(Pose, len(p))
	for f, frame := range p {
		sel := make([]mgl64.Vec3, len(idx))
		for i, j := range idx {
			sel[i] = frame[j]
		}
		out[f] = sel
	}
	return out
}

func tile(frame []mgl64.Vec3, n int) Pose {
	out := make(Pose, n)
	for f := range out {
		out[f] = append([]mgl64.Vec3(nil), frame...)
	}
	return out
}
