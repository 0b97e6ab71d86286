package geometry

import (
	"math"

	"github.com/aranyx/chroma-go/pkg/core"
	"github.com/aranyx/chroma-go/pkg/scene"
)

// IntersectTriangle implements Moller-Trumbore. On acceptance it also
// returns the barycentric-interpolated normal, since the traversal has no
// other way to recover it without redoing the edge/determinant work.
func IntersectTriangle(ray core.Ray, tri scene.Triangle) (hitDistance float64, normal core.Vec3, ok bool) {
	edge1 := tri.V1.Subtract(tri.V0)
	edge2 := tri.V2.Subtract(tri.V0)

	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if math.Abs(det) < epsilon {
		return 0, core.Vec3{}, false
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Subtract(tri.V0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, core.Vec3{}, false
	}

	qvec := tvec.Cross(edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, core.Vec3{}, false
	}

	t := edge2.Dot(qvec) * invDet
	if t < epsilon {
		return 0, core.Vec3{}, false
	}

	w := 1 - u - v
	interpolated := tri.N0.Multiply(w).Add(tri.N1.Multiply(u)).Add(tri.N2.Multiply(v)).Normalize()
	return t, interpolated, true
}

func closestHitTriangle(ray core.Ray, tri scene.Triangle, t float64, normal core.Vec3) HitPayload {
	return HitPayload{
		HitDistance:   t,
		MaterialIndex: tri.MaterialIndex,
		WorldPosition: ray.At(t),
		WorldNormal:   normal,
		PrimitiveType: TriangleKind,
	}
}
