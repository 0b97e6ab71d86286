// Package scene holds the data model the renderer traces against: analytic
// primitive collections, their materials, and the invariants that bind them.
package scene

import (
	"github.com/pkg/errors"

	"github.com/aranyx/chroma-go/pkg/core"
)

// Material describes how a surface scatters and emits light. It is a single
// tagged struct rather than a polymorphic interface: the integrator branches
// on its fields directly (transparency, metallic, reflection strength)
// instead of dispatching through a vtable, matching the traversal's
// tagged-variant dispatch over primitive kinds.
type Material struct {
	Albedo             core.Vec3 // base color, each component in [0,1]
	Roughness          float64   // [0,1], perturbs specular bounce direction
	Metallic           float64   // [0,1], probability weight for the mirror lobe
	EmissionColor      core.Vec3
	EmissionPower      float64
	ReflectionStrength float64   // [0,1], boosts Fresnel/metallic reflectance
	ReflectionTint     core.Vec3 // tints reflected/TIR contributions
	Transparency       float64   // [0,1], 0 = opaque, >0 = dielectric branch
	IOR                float64   // index of refraction, >= 1
}

// Emission returns the material's emitted radiance.
func (m Material) Emission() core.Vec3 {
	return m.EmissionColor.Multiply(m.EmissionPower)
}

// Sphere is a sphere primitive.
type Sphere struct {
	Position      core.Vec3
	Radius        float64
	MaterialIndex int
}

// Plane is an infinite plane given by dot(p, Normal) + Distance = 0. Normal
// must be unit length; the renderer does not normalize it.
type Plane struct {
	Normal        core.Vec3
	Distance      float64
	MaterialIndex int
}

// Box is an axis-aligned box.
type Box struct {
	Min, Max      core.Vec3
	MaterialIndex int
}

// Triangle carries its own vertex normals so smooth-shaded meshes are
// possible; NewTriangle defaults them to the flat face normal.
type Triangle struct {
	V0, V1, V2    core.Vec3
	N0, N1, N2    core.Vec3
	MaterialIndex int
}

// NewTriangle builds a Triangle with all three vertex normals defaulted to
// the face normal of (v0, v1, v2).
func NewTriangle(v0, v1, v2 core.Vec3, materialIndex int) Triangle {
	faceNormal := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	return Triangle{
		V0: v0, V1: v1, V2: v2,
		N0: faceNormal, N1: faceNormal, N2: faceNormal,
		MaterialIndex: materialIndex,
	}
}

// Scene is the set of primitive collections and materials the renderer
// borrows for the duration of a single Render call. The zero value is a
// valid empty scene — every ray misses and sees the sky.
type Scene struct {
	Spheres   []Sphere
	Planes    []Plane
	Boxes     []Box
	Triangles []Triangle
	Materials []Material
}

// Validate checks that every primitive's MaterialIndex is in range. It is a
// debugging aid, not something the renderer calls on every frame — the core
// is a pure compute kernel with no fallible I/O, and an out-of-range index is
// a programmer-error precondition whose visible failure mode is undefined
// pixel output, not a panic mid-render.
func (s *Scene) Validate() error {
	n := len(s.Materials)
	check := func(kind string, i, materialIndex int) error {
		if materialIndex < 0 || materialIndex >= n {
			return errors.Errorf("%s[%d]: materialIndex %d out of range [0,%d)", kind, i, materialIndex, n)
		}
		return nil
	}
	for i, sp := range s.Spheres {
		if err := check("sphere", i, sp.MaterialIndex); err != nil {
			return err
		}
	}
	for i, p := range s.Planes {
		if err := check("plane", i, p.MaterialIndex); err != nil {
			return err
		}
	}
	for i, b := range s.Boxes {
		if err := check("box", i, b.MaterialIndex); err != nil {
			return err
		}
	}
	for i, tr := range s.Triangles {
		if err := check("triangle", i, tr.MaterialIndex); err != nil {
			return err
		}
	}
	return nil
}
