package geometry

import (
	"math"

	"github.com/aranyx/chroma-go/pkg/core"
	"github.com/aranyx/chroma-go/pkg/scene"
)

// IntersectBox intersects ray with an axis-aligned box using the slab
// method. Axes where the ray direction is zero use an unbounded slab rather
// than dividing by zero, or an empty one when the origin lies outside that
// axis's slab (the ray can never enter the box).
func IntersectBox(ray core.Ray, box scene.Box) (hitDistance float64, ok bool) {
	tMin, tMax := slabBounds(ray, box)

	tNear := math.Max(tMin.X, math.Max(tMin.Y, tMin.Z))
	tFar := math.Min(tMax.X, math.Min(tMax.Y, tMax.Z))

	if tNear > tFar || tFar < epsilon {
		return 0, false
	}
	if tNear > epsilon {
		return tNear, true
	}
	return tFar, true
}

func slabBounds(ray core.Ray, box scene.Box) (tMin, tMax core.Vec3) {
	axis := func(origin, dir, boxMin, boxMax float64) (lo, hi float64) {
		if dir == 0 {
			if origin < boxMin || origin > boxMax {
				return math.Inf(1), math.Inf(-1)
			}
			return math.Inf(-1), math.Inf(1)
		}
		lo = (boxMin - origin) / dir
		hi = (boxMax - origin) / dir
		if lo > hi {
			lo, hi = hi, lo
		}
		return lo, hi
	}

	tMin.X, tMax.X = axis(ray.Origin.X, ray.Direction.X, box.Min.X, box.Max.X)
	tMin.Y, tMax.Y = axis(ray.Origin.Y, ray.Direction.Y, box.Min.Y, box.Max.Y)
	tMin.Z, tMax.Z = axis(ray.Origin.Z, ray.Direction.Z, box.Min.Z, box.Max.Z)
	return tMin, tMax
}

// boxFaceNormal picks the axis-aligned face whose plane the hit point lies
// on. Priority order on a tie (an edge or corner hit) is -X, +X, -Y, +Y, -Z,
// +Z, matching the order the candidate faces are checked below.
func boxFaceNormal(box scene.Box, worldPosition core.Vec3) core.Vec3 {
	candidates := []struct {
		coord, planeValue float64
		normal            core.Vec3
	}{
		{worldPosition.X, box.Min.X, core.NewVec3(-1, 0, 0)},
		{worldPosition.X, box.Max.X, core.NewVec3(1, 0, 0)},
		{worldPosition.Y, box.Min.Y, core.NewVec3(0, -1, 0)},
		{worldPosition.Y, box.Max.Y, core.NewVec3(0, 1, 0)},
		{worldPosition.Z, box.Min.Z, core.NewVec3(0, 0, -1)},
		{worldPosition.Z, box.Max.Z, core.NewVec3(0, 0, 1)},
	}
	for _, c := range candidates {
		if math.Abs(c.coord-c.planeValue) < epsilon {
			return c.normal
		}
	}
	// Unreachable for a genuine box hit; fall back to +Y rather than a zero
	// vector so a caller normalizing it doesn't divide by zero.
	return core.NewVec3(0, 1, 0)
}

func closestHitBox(ray core.Ray, box scene.Box, t float64) HitPayload {
	worldPosition := ray.At(t)
	return HitPayload{
		HitDistance:   t,
		MaterialIndex: box.MaterialIndex,
		WorldPosition: worldPosition,
		WorldNormal:   boxFaceNormal(box, worldPosition),
		PrimitiveType: BoxKind,
	}
}
