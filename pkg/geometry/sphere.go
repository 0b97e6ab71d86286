package geometry

import (
	"math"

	"github.com/aranyx/chroma-go/pkg/core"
	"github.com/aranyx/chroma-go/pkg/scene"
)

// IntersectSphere solves |O - C + tD|^2 = r^2 for the nearest front-face
// root and reports whether it clears epsilon.
func IntersectSphere(ray core.Ray, sphere scene.Sphere) (hitDistance float64, ok bool) {
	oc := ray.Origin.Subtract(sphere.Position)

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - sphere.Radius*sphere.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	t := (-b - math.Sqrt(discriminant)) / (2 * a)
	if t < epsilon {
		return 0, false
	}
	return t, true
}

// closestHitSphere fills in world position, normal, and material index for
// an accepted sphere hit at distance t.
func closestHitSphere(ray core.Ray, sphere scene.Sphere, t float64) HitPayload {
	worldPosition := ray.At(t)
	return HitPayload{
		HitDistance:   t,
		MaterialIndex: sphere.MaterialIndex,
		WorldPosition: worldPosition,
		WorldNormal:   worldPosition.Subtract(sphere.Position).Normalize(),
		PrimitiveType: SphereKind,
	}
}
