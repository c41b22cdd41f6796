package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// epsilon below which a determinant or length is treated as degenerate
const epsilon = 1e-6

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func finite(x float32) bool {
	return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
}

func vmin(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: min(a.X, b.X),
		Y: min(a.Y, b.Y),
		Z: min(a.Z, b.Z),
	}
}

func vmax(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: max(a.X, b.X),
		Y: max(a.Y, b.Y),
		Z: max(a.Z, b.Z),
	}
}

func vmul(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

func lengthSq(v rl.Vector3) float32 {
	return rl.Vector3DotProduct(v, v)
}

// axis returns component i (0=X, 1=Y, 2=Z).
func axis(v rl.Vector3, i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// TransformDirection applies the rotation/scale part of m, ignoring translation.
func TransformDirection(v rl.Vector3, m rl.Matrix) rl.Vector3 {
	return rl.Vector3{
		X: m.M0*v.X + m.M4*v.Y + m.M8*v.Z,
		Y: m.M1*v.X + m.M5*v.Y + m.M9*v.Z,
		Z: m.M2*v.X + m.M6*v.Y + m.M10*v.Z,
	}
}

// ComposeTransform builds scale, then rotation, then translation. The basis columns
// come from rotating the unit axes, so the matrix agrees with
// Vector3RotateByQuaternion and with how Vector3Transform reads M0..M15.
func ComposeTransform(position rl.Vector3, rotation rl.Quaternion, scale rl.Vector3) rl.Matrix {
	x := rl.Vector3Scale(rl.Vector3RotateByQuaternion(rl.Vector3{X: 1}, rotation), scale.X)
	y := rl.Vector3Scale(rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, rotation), scale.Y)
	z := rl.Vector3Scale(rl.Vector3RotateByQuaternion(rl.Vector3{Z: 1}, rotation), scale.Z)
	return rl.Matrix{
		M0: x.X, M4: y.X, M8: z.X, M12: position.X,
		M1: x.Y, M5: y.Y, M9: z.Y, M13: position.Y,
		M2: x.Z, M6: y.Z, M10: z.Z, M14: position.Z,
		M15: 1,
	}
}
