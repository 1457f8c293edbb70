package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix is a 4x4 affine transform laid out as four rows: the X, Y and Z axes
// followed by the translation.
//
// Matrices follow the row-vector convention: a vector is transformed as v*M,
// so a.Mul(b) applies a first and b second. CreateRotation composes
// RotationX * RotationY * RotationZ in that fixed order (pitch, then yaw, then
// roll); callers must not assume any other order.
//
// The rows are kept as the columns of an mgl64.Mat4, which is the same
// transform written in mgl64's column-vector convention.
type Matrix struct {
	m mgl64.Mat4
}

// Identity returns the identity matrix
func Identity() Matrix {
	return Matrix{m: mgl64.Ident4()}
}

// NewMatrix builds a matrix from three axes and a translation
func NewMatrix(xAxis, yAxis, zAxis, translation Vec3) Matrix {
	return NewMatrixFromRows(xAxis.Extend(0), yAxis.Extend(0), zAxis.Extend(0), translation.Extend(1))
}

// NewMatrixFromRows builds a matrix from four homogeneous rows
func NewMatrixFromRows(r0, r1, r2, r3 Vec4) Matrix {
	return Matrix{m: mgl64.Mat4FromCols(toMgl(r0), toMgl(r1), toMgl(r2), toMgl(r3))}
}

func toMgl(v Vec4) mgl64.Vec4 {
	return mgl64.Vec4{v.X, v.Y, v.Z, v.W}
}

func fromMgl(v mgl64.Vec4) Vec4 {
	return Vec4{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// Row returns row i (0..3)
func (a Matrix) Row(i int) Vec4 {
	return fromMgl(a.m.Col(i))
}

// At returns the element at the given row and column
func (a Matrix) At(row, col int) float64 {
	return a.m.At(col, row)
}

// AxisX returns the X axis row
func (a Matrix) AxisX() Vec3 { return a.Row(0).Vec3() }

// AxisY returns the Y axis row
func (a Matrix) AxisY() Vec3 { return a.Row(1).Vec3() }

// AxisZ returns the Z axis row
func (a Matrix) AxisZ() Vec3 { return a.Row(2).Vec3() }

// Translation returns the translation row
func (a Matrix) Translation() Vec3 { return a.Row(3).Vec3() }

// Mul returns a*b: each element is the dot of a row of a with a column of b
func (a Matrix) Mul(b Matrix) Matrix {
	return Matrix{m: b.m.Mul4(a.m)}
}

// TransformVector transforms a direction, ignoring the translation row
func (a Matrix) TransformVector(v Vec3) Vec3 {
	return fromMgl(a.m.Mul4x1(toMgl(v.Extend(0)))).Vec3()
}

// TransformPoint transforms a position, applying the translation row
func (a Matrix) TransformPoint(p Vec3) Vec3 {
	return fromMgl(a.m.Mul4x1(toMgl(p.Extend(1)))).Vec3()
}

// Transpose returns the transposed copy of a
func (a Matrix) Transpose() Matrix {
	return Matrix{m: a.m.Transpose()}
}

// Equal reports exact element-wise equality
func (a Matrix) Equal(b Matrix) bool {
	return a.m == b.m
}

// ApproxEqual reports element-wise equality within tolerance
func (a Matrix) ApproxEqual(b Matrix, tolerance float64) bool {
	return a.m.ApproxEqualThreshold(b.m, tolerance)
}

// CreateTranslation returns a pure translation
func CreateTranslation(t Vec3) Matrix {
	return Matrix{m: mgl64.Translate3D(t.X, t.Y, t.Z)}
}

// CreateRotationX rotates by pitch radians around the X axis
func CreateRotationX(pitch float64) Matrix {
	return Matrix{m: mgl64.HomogRotate3DX(pitch)}
}

// CreateRotationY rotates by yaw radians around the Y axis
func CreateRotationY(yaw float64) Matrix {
	return Matrix{m: mgl64.HomogRotate3DY(yaw)}
}

// CreateRotationZ rotates by roll radians around the Z axis
func CreateRotationZ(roll float64) Matrix {
	return Matrix{m: mgl64.HomogRotate3DZ(roll)}
}

// CreateRotation composes CreateRotationX(pitch) * CreateRotationY(yaw) * CreateRotationZ(roll)
func CreateRotation(pitch, yaw, roll float64) Matrix {
	return CreateRotationX(pitch).Mul(CreateRotationY(yaw)).Mul(CreateRotationZ(roll))
}

// CreateScale returns a non-uniform scale
func CreateScale(s Vec3) Matrix {
	return Matrix{m: mgl64.Scale3D(s.X, s.Y, s.Z)}
}

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
