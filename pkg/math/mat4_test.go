package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in the fourth column (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}

	got := m.TransformPoint(Vec3{1, 2, 3})
	if got != (Vec3{6, 12, 18}) {
		t.Errorf("TransformPoint: got %v, want (6, 12, 18)", got)
	}
}

func TestRotateY90(t *testing.T) {
	m := Rotate(90, Vec3{0, 1, 0})
	result := m.TransformPoint(Vec3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result.X) > 0.001 || abs(result.Y) > 0.001 || abs(result.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestMatricesAgreeWithMathgl(t *testing.T) {
	tests := []struct {
		name string
		got  Mat4
		want mgl32.Mat4
	}{
		{
			name: "perspective",
			got:  Perspective(Radians(45), 16.0/9.0, 0.1, 1000),
			want: mgl32.Perspective(mgl32.DegToRad(45), 16.0/9.0, 0.1, 1000),
		},
		{
			name: "look at",
			got:  LookAt(Vec3{0, 0, 5}, Vec3{0, 0, 4}, Vec3{0, 1, 0}),
			want: mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 4}, mgl32.Vec3{0, 1, 0}),
		},
		{
			name: "look at off axis",
			got:  LookAt(Vec3{3, 2, 1}, Vec3{-1, 0.5, -2}, Vec3{0, 1, 0}),
			want: mgl32.LookAtV(mgl32.Vec3{3, 2, 1}, mgl32.Vec3{-1, 0.5, -2}, mgl32.Vec3{0, 1, 0}),
		},
		{
			name: "translate",
			got:  Translate(-1, 0.25, -1),
			want: mgl32.Translate3D(-1, 0.25, -1),
		},
		{
			name: "rotate about unnormalized axis",
			got:  Rotate(30, Vec3{2, 0, 0}),
			want: mgl32.HomogRotate3D(mgl32.DegToRad(30), mgl32.Vec3{1, 0, 0}),
		},
		{
			name: "rotate about y",
			got:  Rotate(-30, Vec3{0, 1, 0}),
			want: mgl32.HomogRotate3DY(mgl32.DegToRad(-30)),
		},
		{
			name: "rotate then translate",
			got:  Identity().Rotated(45, Vec3{0, 1, 0}).Translated(-1, 0.25, -1),
			want: mgl32.HomogRotate3DY(mgl32.DegToRad(45)).Mul4(mgl32.Translate3D(-1, 0.25, -1)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range tt.want {
				if abs(tt.got[i]-tt.want[i]) > eps {
					t.Errorf("element %d: got %v, want %v", i, tt.got, tt.want)
					break
				}
			}
		})
	}
}

func TestRotateZeroAxis(t *testing.T) {
	if got := Rotate(90, Vec3{}); got != Identity() {
		t.Errorf("Rotate with zero axis = %v, want identity", got)
	}
}

func TestRowVectorEqualsTransposedColumnProduct(t *testing.T) {
	m := Rotate(37, Vec3{1, 2, 3})
	v := Vec3{0.3, -1, 2}

	row := v.MulMat4(m)
	col := mgl32.Mat4(m).Transpose().Mul4x1(mgl32.Vec4{v.X, v.Y, v.Z, 1})

	if d := row.Sub(Vec3{col[0], col[1], col[2]}).Length(); d > eps {
		t.Errorf("v * M = %v, want M^T * v = %v", row, col)
	}

	// A row-vector product with R(-a) is the column product with R(a).
	neg := v.MulMat4(Rotate(-20, Vec3{0, 1, 0}))
	pos := Rotate(20, Vec3{0, 1, 0}).TransformPoint(v)
	if neg.Sub(pos).Length() > eps {
		t.Errorf("v * R(-a) = %v, want R(a) * v = %v", neg, pos)
	}
}

func TestMat3(t *testing.T) {
	m := LookAt(Vec3{0, 0, 5}, Vec3{0, 0, 0}, Vec3{0, 1, 0}).Mul(Rotate(30, Vec3{1, 0, 0}))
	m3 := m.Mat3()

	want := [9]float32{m[0], m[1], m[2], m[4], m[5], m[6], m[8], m[9], m[10]}
	if [9]float32(m3) != want {
		t.Errorf("Mat3: got %v, want %v", m3, want)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
