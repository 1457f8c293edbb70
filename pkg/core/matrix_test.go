package core

import (
	"math"
	"testing"
)

func sampleMatrix() Matrix {
	return NewMatrixFromRows(
		NewVec4(1, 2, 3, 4),
		NewVec4(5, 6, 7, 8),
		NewVec4(9, 10, 11, 12),
		NewVec4(13, 14, 15, 16),
	)
}

func TestMatrix_TransposeRoundTrip(t *testing.T) {
	m := sampleMatrix()
	if !m.Transpose().Transpose().Equal(m) {
		t.Error("Transpose(Transpose(M)) != M")
	}

	tr := m.Transpose()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if tr.At(r, c) != m.At(c, r) {
				t.Errorf("Transpose[%d][%d] = %f, expected %f", r, c, tr.At(r, c), m.At(c, r))
			}
		}
	}
}

func TestMatrix_MulRowByColumn(t *testing.T) {
	a := sampleMatrix()
	b := CreateRotation(0.3, -1.1, 0.7).Mul(CreateTranslation(NewVec3(1, 2, 3)))
	product := a.Mul(b)

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			expected := 0.0
			for k := 0; k < 4; k++ {
				expected += a.At(r, k) * b.At(k, c)
			}
			if math.Abs(product.At(r, c)-expected) > 1e-9 {
				t.Errorf("Product[%d][%d] = %f, expected %f", r, c, product.At(r, c), expected)
			}
		}
	}
}

func TestMatrix_Identity(t *testing.T) {
	m := sampleMatrix()
	if !Identity().Mul(m).Equal(m) || !m.Mul(Identity()).Equal(m) {
		t.Error("Identity should be neutral for Mul")
	}
}

func TestMatrix_Rotations(t *testing.T) {
	tests := []struct {
		name     string
		matrix   Matrix
		input    Vec3
		expected Vec3
	}{
		{"no rotation", CreateRotation(0, 0, 0), UnitX, UnitX},
		{"90 degrees around X", CreateRotationX(math.Pi / 2), UnitY, UnitZ},
		{"90 degrees around Y", CreateRotationY(math.Pi / 2), UnitZ, UnitX},
		{"90 degrees around Z", CreateRotationZ(math.Pi / 2), UnitX, UnitY},
		{"180 degrees around Y", CreateRotationY(math.Pi), UnitX, UnitX.Negate()},
		// X is applied before Y: Y -> Z under pitch, then Z -> X under yaw
		{"pitch then yaw", CreateRotation(math.Pi/2, math.Pi/2, 0), UnitY, UnitX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.matrix.TransformVector(tt.input)
			if !got.ApproxEqual(tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMatrix_RotationOrderIsFixed(t *testing.T) {
	composed := CreateRotation(0.4, 0.9, -0.2)
	manual := CreateRotationX(0.4).Mul(CreateRotationY(0.9)).Mul(CreateRotationZ(-0.2))
	if !composed.ApproxEqual(manual, 1e-12) {
		t.Error("CreateRotation must equal RotationX * RotationY * RotationZ")
	}

	reversed := CreateRotationZ(-0.2).Mul(CreateRotationY(0.9)).Mul(CreateRotationX(0.4))
	if composed.ApproxEqual(reversed, 1e-6) {
		t.Error("Reversed composition should differ for non-trivial angles")
	}
}

func TestMatrix_TranslationOnlyAffectsPoints(t *testing.T) {
	m := CreateTranslation(NewVec3(1, 2, 3))
	p := NewVec3(1, 1, 1)

	if got := m.TransformPoint(p); !got.ApproxEqual(NewVec3(2, 3, 4), 1e-12) {
		t.Errorf("TransformPoint: expected (2,3,4), got %v", got)
	}
	if got := m.TransformVector(p); !got.ApproxEqual(p, 1e-12) {
		t.Errorf("TransformVector should ignore translation, got %v", got)
	}
	if got := m.Translation(); got != NewVec3(1, 2, 3) {
		t.Errorf("Translation row: expected (1,2,3), got %v", got)
	}
}

func TestMatrix_AxesConstructor(t *testing.T) {
	m := NewMatrix(UnitY, UnitZ, UnitX, NewVec3(5, 0, 0))

	if m.AxisX() != UnitY || m.AxisY() != UnitZ || m.AxisZ() != UnitX {
		t.Errorf("Axes not preserved: %v %v %v", m.AxisX(), m.AxisY(), m.AxisZ())
	}
	// (0,0,1) selects the Z axis row
	if got := m.TransformVector(UnitZ); !got.ApproxEqual(UnitX, 1e-12) {
		t.Errorf("Expected Z axis row, got %v", got)
	}
	if got := m.TransformPoint(Zero); !got.ApproxEqual(NewVec3(5, 0, 0), 1e-12) {
		t.Errorf("Expected translation, got %v", got)
	}
}

func TestMatrix_Scale(t *testing.T) {
	m := CreateScale(NewVec3(2, 3, 4))
	if got := m.TransformPoint(NewVec3(1, 1, 1)); !got.ApproxEqual(NewVec3(2, 3, 4), 1e-12) {
		t.Errorf("Expected (2,3,4), got %v", got)
	}
}
