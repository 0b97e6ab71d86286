// Package geometry implements the closed-form ray/primitive intersection
// kernels and the linear-scan traversal that finds the nearest hit across a
// scene's primitive collections.
package geometry

import "github.com/aranyx/chroma-go/pkg/core"

// epsilon is the minimum accepted hit distance. Rejecting hits below it
// avoids self-intersection on rays re-cast from a surface the integrator has
// already shifted along its normal by the same epsilon.
const epsilon = 1e-4

// PrimitiveKind tags which collection a HitPayload's hit came from. Dispatch
// on this tag, not on a shape interface's vtable — the traversal is a fixed
// set of four primitive kinds scanned linearly, not an open, extensible
// hierarchy, so a tagged enum keeps the hot path flat and cache-friendly.
type PrimitiveKind int

const (
	None PrimitiveKind = iota
	SphereKind
	PlaneKind
	BoxKind
	TriangleKind
)

// HitPayload is the result of tracing a ray through a scene.
type HitPayload struct {
	HitDistance   float64
	MaterialIndex int
	WorldPosition core.Vec3
	WorldNormal   core.Vec3
	PrimitiveType PrimitiveKind
}

// Miss reports no intersection. HitDistance < 0 iff the ray missed.
func Miss() HitPayload {
	return HitPayload{HitDistance: -1, PrimitiveType: None}
}
