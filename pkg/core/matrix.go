package core

import "github.com/go-gl/mathgl/mgl64"

// Mat4 is a 4x4 matrix, used for the camera's cached inverse view and inverse
// projection transforms. The renderer and integrator never build matrices
// themselves — they arrive from the camera collaborator — so Mat4 is a thin alias over mathgl's
// implementation rather than a hand-rolled one.
type Mat4 = mgl64.Mat4

// Vec4 is a homogeneous 4-component vector, used only at the matrix boundary
// when unprojecting a primary ray through the camera's inverse matrices.
type Vec4 = mgl64.Vec4

// TransformPoint multiplies m by the homogeneous vector (v.X, v.Y, v.Z, w).
func TransformPoint(m Mat4, v Vec3, w float64) Vec4 {
	return m.Mul4x1(Vec4{v.X, v.Y, v.Z, w})
}

// Vec3FromVec4 drops the homogeneous component, ignoring perspective divide.
func Vec3FromVec4(v Vec4) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}
