package geometry

import (
	"math"
	"testing"

	"github.com/aranyx/chroma-go/pkg/core"
	"github.com/aranyx/chroma-go/pkg/scene"
)

func TestIntersectTriangle_CenterHit(t *testing.T) {
	tri := scene.NewTriangle(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0, 1, 0),
		7,
	)
	ray := core.NewRay(core.NewVec3(0, -1.0/3.0, -5), core.NewVec3(0, 0, 1))

	hitDistance, normal, ok := IntersectTriangle(ray, tri)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(hitDistance-5) > 1e-9 {
		t.Errorf("hitDistance = %v, want 5", hitDistance)
	}
	wantNormal := core.NewVec3(0, 0, 1)
	if normal.Subtract(wantNormal).Length() > 1e-9 {
		t.Errorf("normal = %v, want %v", normal, wantNormal)
	}
}

func TestIntersectTriangle_OutsideEdgeMiss(t *testing.T) {
	tri := scene.NewTriangle(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0, 1, 0),
		0,
	)
	ray := core.NewRay(core.NewVec3(5, 5, -5), core.NewVec3(0, 0, 1))

	if _, _, ok := IntersectTriangle(ray, tri); ok {
		t.Error("ray misses the triangle's footprint, expected a miss")
	}
}

func TestIntersectTriangle_BarycentricsInRange(t *testing.T) {
	tri := scene.NewTriangle(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0, 1, 0),
		0,
	)
	// A handful of points known to land inside the triangle's footprint.
	origins := []core.Vec3{
		core.NewVec3(0, -0.5, -5),
		core.NewVec3(-0.2, 0, -5),
		core.NewVec3(0.3, -0.8, -5),
	}
	for _, o := range origins {
		ray := core.NewRay(o, core.NewVec3(0, 0, 1))
		if _, _, ok := IntersectTriangle(ray, tri); !ok {
			t.Errorf("expected a hit from origin %v", o)
		}
	}
}

func TestIntersectTriangle_InterpolatesVertexNormals(t *testing.T) {
	tri := scene.Triangle{
		V0: core.NewVec3(-1, -1, 0), V1: core.NewVec3(1, -1, 0), V2: core.NewVec3(0, 1, 0),
		N0: core.NewVec3(0, 0, -1), N1: core.NewVec3(0, 0, -1), N2: core.NewVec3(0, 1, 0),
	}
	// Hit near V2, where N2 dominates the barycentric weights.
	ray := core.NewRay(core.NewVec3(0, 0.9, -5), core.NewVec3(0, 0, 1))

	_, normal, ok := IntersectTriangle(ray, tri)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(normal.Length()-1) > 1e-9 {
		t.Errorf("interpolated normal not unit length: %v", normal)
	}
	if normal.Y <= 0 {
		t.Errorf("normal near V2 should lean toward N2 (+Y), got %v", normal)
	}
}

func TestClosestHitTriangle_MaterialIndex(t *testing.T) {
	tri := scene.NewTriangle(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0, 1, 0),
		9,
	)
	ray := core.NewRay(core.NewVec3(0, -1.0/3.0, -5), core.NewVec3(0, 0, 1))

	hitDistance, normal, ok := IntersectTriangle(ray, tri)
	if !ok {
		t.Fatal("expected a hit")
	}
	payload := closestHitTriangle(ray, tri, hitDistance, normal)
	if payload.MaterialIndex != 9 {
		t.Errorf("MaterialIndex = %d, want 9", payload.MaterialIndex)
	}
	if payload.PrimitiveType != TriangleKind {
		t.Errorf("PrimitiveType = %v, want TriangleKind", payload.PrimitiveType)
	}
}
