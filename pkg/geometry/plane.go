package geometry

import (
	"math"

	"github.com/aranyx/chroma-go/pkg/core"
	"github.com/aranyx/chroma-go/pkg/scene"
)

// IntersectPlane solves dot(p, Normal) + Distance = 0 for t along the ray.
func IntersectPlane(ray core.Ray, plane scene.Plane) (hitDistance float64, ok bool) {
	denom := ray.Direction.Dot(plane.Normal)
	if math.Abs(denom) < epsilon {
		return 0, false
	}

	t := -(ray.Origin.Dot(plane.Normal) + plane.Distance) / denom
	if t < epsilon {
		return 0, false
	}
	return t, true
}

func closestHitPlane(ray core.Ray, plane scene.Plane, t float64) HitPayload {
	return HitPayload{
		HitDistance:   t,
		MaterialIndex: plane.MaterialIndex,
		WorldPosition: ray.At(t),
		WorldNormal:   plane.Normal,
		PrimitiveType: PlaneKind,
	}
}
