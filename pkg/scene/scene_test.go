package scene

import (
	"testing"

	"github.com/aranyx/chroma-go/pkg/core"
)

func TestValidate_InRangeMaterialIndices(t *testing.T) {
	s := &Scene{
		Spheres:   []Sphere{{MaterialIndex: 0}},
		Planes:    []Plane{{MaterialIndex: 1}},
		Boxes:     []Box{{MaterialIndex: 0}},
		Triangles: []Triangle{{MaterialIndex: 1}},
		Materials: []Material{{}, {}},
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidate_EmptySceneIsValid(t *testing.T) {
	s := &Scene{}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil for an empty scene", err)
	}
}

func TestValidate_OutOfRangeSphereMaterialIndex(t *testing.T) {
	s := &Scene{
		Spheres:   []Sphere{{MaterialIndex: 5}},
		Materials: []Material{{}},
	}
	if err := s.Validate(); err == nil {
		t.Error("Validate() = nil, want an error for an out-of-range material index")
	}
}

func TestValidate_OutOfRangeTriangleMaterialIndex(t *testing.T) {
	s := &Scene{
		Triangles: []Triangle{{MaterialIndex: -1}},
		Materials: []Material{{}},
	}
	if err := s.Validate(); err == nil {
		t.Error("Validate() = nil, want an error for a negative material index")
	}
}

func TestMaterial_Emission(t *testing.T) {
	m := Material{EmissionColor: core.NewVec3(1, 0.5, 0.25), EmissionPower: 4}
	got := m.Emission()
	want := core.NewVec3(4, 2, 1)
	if got.Subtract(want).Length() > 1e-9 {
		t.Errorf("Emission() = %v, want %v", got, want)
	}
}

func TestNewTriangle_DefaultsToFaceNormal(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		0,
	)
	want := core.NewVec3(0, 0, 1)
	for _, n := range []core.Vec3{tri.N0, tri.N1, tri.N2} {
		if n.Subtract(want).Length() > 1e-9 {
			t.Errorf("vertex normal = %v, want face normal %v", n, want)
		}
	}
}
