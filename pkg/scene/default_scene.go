package scene

import "github.com/aranyx/chroma-go/pkg/core"

// NewDefaultScene builds a small showcase scene: a lambertian, a metallic, a
// dielectric, and an emissive sphere over a ground plane, plus a box and a
// triangle so every primitive kernel is exercised by the default render.
func NewDefaultScene() *Scene {
	materials := []Material{
		{Albedo: core.NewVec3(0.8, 0.3, 0.3), ReflectionStrength: 0.04}, // 0: lambertian red
		{Albedo: core.NewVec3(0.8, 0.8, 0.8), Metallic: 1.0, ReflectionStrength: 0.9, ReflectionTint: core.NewVec3(1, 1, 1)},          // 1: metal silver
		{Albedo: core.NewVec3(0.4, 0.5, 0.9), Transparency: 0.9, IOR: 1.5, ReflectionTint: core.NewVec3(1, 1, 1), ReflectionStrength: 0.02}, // 2: glass
		{Albedo: core.NewVec3(0.6, 0.6, 0.6), ReflectionStrength: 0.02}, // 3: lambertian ground
		{EmissionColor: core.NewVec3(1, 0.95, 0.85), EmissionPower: 8},  // 4: emissive light sphere
		{Albedo: core.NewVec3(0.2, 0.7, 0.3), Metallic: 0.3, ReflectionStrength: 0.3, ReflectionTint: core.NewVec3(1, 1, 1)}, // 5: box
	}

	spheres := []Sphere{
		{Position: core.NewVec3(-1, 0.5, -1), Radius: 0.5, MaterialIndex: 0},
		{Position: core.NewVec3(0, 0.5, -1), Radius: 0.5, MaterialIndex: 1},
		{Position: core.NewVec3(1, 0.5, -1), Radius: 0.5, MaterialIndex: 2},
		{Position: core.NewVec3(2.5, 2, 1), Radius: 0.4, MaterialIndex: 4},
	}

	planes := []Plane{
		{Normal: core.NewVec3(0, 1, 0), Distance: 0, MaterialIndex: 3},
	}

	boxes := []Box{
		{Min: core.NewVec3(-2.3, 0, -2), Max: core.NewVec3(-1.7, 0.6, -1.4), MaterialIndex: 5},
	}

	triangles := []Triangle{
		NewTriangle(
			core.NewVec3(1.5, 0, -2),
			core.NewVec3(2.1, 0, -2),
			core.NewVec3(1.8, 0.8, -2),
			0,
		),
	}

	return &Scene{
		Spheres:   spheres,
		Planes:    planes,
		Boxes:     boxes,
		Triangles: triangles,
		Materials: materials,
	}
}
