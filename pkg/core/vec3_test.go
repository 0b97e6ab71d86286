package core

import (
	"math"
	"testing"
)

func TestSeed_RandomFloat_Deterministic(t *testing.T) {
	var a, b Seed = 12345, 12345

	fa := a.RandomFloat()
	fb := b.RandomFloat()

	if fa != fb {
		t.Errorf("identical seeds produced different floats: %f vs %f", fa, fb)
	}
	if a != b {
		t.Errorf("identical seeds advanced to different states: %d vs %d", a, b)
	}
	if fa < 0 || fa > 1 {
		t.Errorf("RandomFloat out of [0,1] range: %f", fa)
	}
}

func TestSeed_RandomFloat_VariesWithInput(t *testing.T) {
	var a, b Seed = 1, 2
	if a.RandomFloat() == b.RandomFloat() {
		t.Errorf("different seeds produced the same float")
	}
}

func TestSeed_InUnitSphere_IsUnitLength(t *testing.T) {
	for _, s := range []Seed{0, 1, 42, 1000000, 4294967295} {
		seed := s
		v := seed.InUnitSphere()
		length := v.Length()
		if math.Abs(length-1.0) > 1e-6 {
			t.Errorf("seed %d: expected unit length, got %f", s, length)
		}
	}
}

func TestVec3_Reflect(t *testing.T) {
	incident := NewVec3(1, -1, 0).Normalize()
	normal := NewVec3(0, 1, 0)

	reflected := Reflect(incident, normal)

	if reflected.Y <= 0 {
		t.Errorf("expected reflected ray to point away from surface, got %v", reflected)
	}
	if math.Abs(reflected.Length()-1.0) > 1e-9 {
		t.Errorf("reflect should preserve length, got %f", reflected.Length())
	}
}

func TestRefract_TotalInternalReflection(t *testing.T) {
	// Grazing incidence from inside a denser medium (eta > 1) triggers TIR.
	incident := NewVec3(1, -0.1, 0).Normalize()
	normal := NewVec3(0, 1, 0)

	_, ok := Refract(incident, normal, 1.5)
	if ok {
		t.Errorf("expected total internal reflection at grazing angle with eta=1.5")
	}
}

func TestRefract_BendsTowardNormal(t *testing.T) {
	incident := NewVec3(0.3, -1, 0).Normalize()
	normal := NewVec3(0, 1, 0)

	refracted, ok := Refract(incident, normal, 1.0/1.5)
	if !ok {
		t.Fatal("expected successful refraction")
	}
	if math.Abs(refracted.Length()-1.0) > 1e-9 {
		t.Errorf("refract should return a unit vector, got length %f", refracted.Length())
	}
	if math.Abs(refracted.X) >= math.Abs(incident.X) {
		t.Errorf("expected refracted ray %v to bend toward the normal relative to %v", refracted, incident)
	}
}

func TestMix(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(1, 2, 3)

	got := Mix(a, b, 0.5)
	want := NewVec3(0.5, 1, 1.5)
	if got != want {
		t.Errorf("Mix(a,b,0.5) = %v, want %v", got, want)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-1, 0.5, 2)
	got := v.Clamp(0, 1)
	want := NewVec3(0, 0.5, 1)
	if got != want {
		t.Errorf("Clamp = %v, want %v", got, want)
	}
}
