package geometry

import (
	"math"

	"github.com/aranyx/chroma-go/pkg/core"
	"github.com/aranyx/chroma-go/pkg/scene"
)

// TraceRay linearly scans every primitive collection in s and returns the
// nearest hit. There is no acceleration structure: a scene's primitive count
// is expected to stay small enough that a flat scan beats the bookkeeping of
// a BVH, and it keeps the traversal trivially deterministic regardless of
// how the caller parallelizes across pixels.
func TraceRay(ray core.Ray, s *scene.Scene) HitPayload {
	hitDistance := math.Inf(1)
	primType := None
	index := -1
	var triNormal core.Vec3

	for i, sp := range s.Spheres {
		if t, ok := IntersectSphere(ray, sp); ok && t < hitDistance {
			hitDistance, primType, index = t, SphereKind, i
		}
	}
	for i, p := range s.Planes {
		if t, ok := IntersectPlane(ray, p); ok && t < hitDistance {
			hitDistance, primType, index = t, PlaneKind, i
		}
	}
	for i, b := range s.Boxes {
		if t, ok := IntersectBox(ray, b); ok && t < hitDistance {
			hitDistance, primType, index = t, BoxKind, i
		}
	}
	for i, tr := range s.Triangles {
		if t, n, ok := IntersectTriangle(ray, tr); ok && t < hitDistance {
			hitDistance, primType, index = t, TriangleKind, i
			triNormal = n
		}
	}

	switch primType {
	case SphereKind:
		return closestHitSphere(ray, s.Spheres[index], hitDistance)
	case PlaneKind:
		return closestHitPlane(ray, s.Planes[index], hitDistance)
	case BoxKind:
		return closestHitBox(ray, s.Boxes[index], hitDistance)
	case TriangleKind:
		return closestHitTriangle(ray, s.Triangles[index], hitDistance, triNormal)
	default:
		return Miss()
	}
}
