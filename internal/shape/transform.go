package shape

import "github.com/go-gl/mathgl/mgl64"

// Axis selects a rotation axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Transform accumulates a 4×4 homogeneous pose transform (identity at
// rest) and the cumulative origin offset of the pose. It only has meaning
// applied to a State's working buffer.
type Transform struct {
	mat    mgl64.Mat4
	origin mgl64.Vec3
}

// NewTransform returns an identity transform.
func NewTransform() Transform {
	return Transform{mat: mgl64.Ident4()}
}

// Rotate right-multiplies a right-handed rotation about the given axis into
// the accumulated matrix. Degrees, not radians.
func (t *Transform) Rotate(degrees float64, axis Axis) {
	rad := mgl64.DegToRad(degrees)
	var r mgl64.Mat4
	switch axis {
	case AxisX:
		r = mgl64.HomogRotate3DX(rad)
	case AxisY:
		r = mgl64.HomogRotate3DY(rad)
	case AxisZ:
		r = mgl64.HomogRotate3DZ(rad)
	}
	t.mat = t.mat.Mul4(r)
}

// Translate right-multiplies a translation offsetting the 2nd and 3rd axes
// (never the 1st: the lateral axis stays centered) and accumulates the
// offset into the origin.
func (t *Transform) Translate(horz, vert float64) {
	t.mat = t.mat.Mul4(mgl64.Translate3D(0, horz, vert))
	t.origin = t.origin.Add(mgl64.Vec3{0, horz, vert})
}

// Reset restores the identity matrix and zeroes the origin.
func (t *Transform) Reset() {
	t.mat = mgl64.Ident4()
	t.origin = mgl64.Vec3{}
}

// ZeroOrigin clears the accumulated origin offset without touching the
// matrix.
func (t *Transform) ZeroOrigin() {
	t.origin = mgl64.Vec3{}
}

// Matrix returns the accumulated transform matrix.
func (t *Transform) Matrix() mgl64.Mat4 { return t.mat }

// Origin returns the cumulative translation offset.
func (t *Transform) Origin() mgl64.Vec3 { return t.origin }

// Apply transforms every point of every frame in place: homogeneous
// multiply, truncate back to 3 components. Whole-buffer; it cannot apply
// partially.
func (t *Transform) Apply(p Pose) {
	for _, frame := range p {
		for i, pt := range frame {
			frame[i] = t.mat.Mul4x1(pt.Vec4(1)).Vec3()
		}
	}
}
