// Package integrator implements the per-pixel path-tracing loop: primary ray
// construction, a bounded-depth bounce loop with branching BRDFs, and
// throughput-based early termination.
package integrator

import (
	"math"

	"github.com/aranyx/chroma-go/pkg/camera"
	"github.com/aranyx/chroma-go/pkg/core"
	"github.com/aranyx/chroma-go/pkg/geometry"
	"github.com/aranyx/chroma-go/pkg/scene"
)

// skyColor is returned, weighted by throughput, whenever a ray escapes the
// scene without hitting anything.
var skyColor = core.NewVec3(0.6, 0.7, 0.9)

const (
	maxBounces             = 5
	minThroughputMagnitude = 1e-3
	shadowBias             = 1e-4
)

// Settings are the mutable per-frame knobs the integrator reads. They are
// owned by the renderer and may change between Render calls.
type Settings struct {
	SlowRandom      bool
	SamplesPerPixel int // clamped to [1,16] by the renderer
}

// PerPixel computes the radiance sample for pixel (x,y) by averaging
// samplesPerPixel independent paths, each seeded deterministically from
// (x,y,frameIndex,sample,bounce): the base seed is (x + y*width)*frameIndex,
// each sample adds sample*719393, and tracePath adds the bounce index.
func PerPixel(x, y, width, height, frameIndex int, s *scene.Scene, cam camera.Camera, settings Settings) core.Vec3 {
	finalColor := core.Vec3{}

	baseSeed := core.Seed(uint32(x+y*width) * uint32(frameIndex))

	for sample := 0; sample < settings.SamplesPerPixel; sample++ {
		seed := baseSeed + core.Seed(uint32(sample)*719393)
		ray := primaryRay(x, y, width, height, settings.SamplesPerPixel, cam, &seed)
		finalColor = finalColor.Add(tracePath(ray, s, settings, &seed))
	}

	return finalColor.Multiply(1.0 / float64(settings.SamplesPerPixel))
}

// primaryRay builds the camera ray for one sample of pixel (x,y). With a
// single sample per pixel it reuses the camera's cached direction; otherwise
// it jitters within the pixel and unprojects through the camera's inverse
// matrices.
func primaryRay(x, y, width, height, samplesPerPixel int, cam camera.Camera, seed *core.Seed) core.Ray {
	origin := cam.Position()

	if samplesPerPixel == 1 {
		return core.NewRay(origin, cam.RayDirections()[x+y*width])
	}

	offsetX := seed.RandomFloat() - 0.5
	offsetY := seed.RandomFloat() - 0.5

	ndcX := ((float64(x)+offsetX)/float64(width))*2 - 1
	ndcY := ((float64(y)+offsetY)/float64(height))*2 - 1

	target := core.TransformPoint(cam.InverseProjection(), core.NewVec3(ndcX, ndcY, 1), 1)
	targetVec := core.Vec3FromVec4(target).Multiply(1 / target[3]).Normalize()
	dir4 := core.TransformPoint(cam.InverseView(), targetVec, 0)
	dir := core.Vec3FromVec4(dir4).Normalize()

	return core.NewRay(origin, dir)
}

// tracePath runs the fixed-depth bounce loop for a single ray and returns
// its accumulated radiance.
func tracePath(ray core.Ray, s *scene.Scene, settings Settings, seed *core.Seed) core.Vec3 {
	light := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	for i := 0; i < maxBounces; i++ {
		*seed += core.Seed(i)

		payload := geometry.TraceRay(ray, s)
		if payload.HitDistance < 0 {
			light = light.Add(skyColor.MultiplyVec(throughput))
			break
		}

		material := s.Materials[payload.MaterialIndex]
		light = light.Add(material.Emission().MultiplyVec(throughput))

		worldPosition := payload.WorldPosition
		worldNormal := payload.WorldNormal
		ray.Origin = worldPosition.Add(worldNormal.Multiply(shadowBias))

		if material.Transparency > 0 {
			ray.Direction, throughput = scatterDielectric(ray.Direction, worldNormal, material, throughput, seed)
		} else {
			ray.Direction, throughput = scatterOpaque(ray.Direction, worldNormal, material, throughput, settings, seed)
		}

		if throughput.Length() < minThroughputMagnitude {
			break
		}
	}

	return light
}

// fresnelSchlick returns the Schlick approximation of reflectance at
// incidence angle cosTheta for a surface with the given index of refraction.
func fresnelSchlick(cosTheta, ior float64) float64 {
	r0 := (1 - ior) / (1 + ior)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosTheta, 5)
}

// scatterDielectric implements the dielectric branch: a Fresnel-weighted
// Bernoulli choice between specular reflection and Snell's-law refraction,
// with total internal reflection falling back to a mirror bounce.
func scatterDielectric(dir, normal core.Vec3, material scene.Material, throughput core.Vec3, seed *core.Seed) (core.Vec3, core.Vec3) {
	cosTheta := math.Min(dir.Negate().Dot(normal), 1)
	reflectance := fresnelSchlick(cosTheta, material.IOR)
	reflectance += material.ReflectionStrength * (1 - reflectance)

	if seed.RandomFloat() < reflectance {
		newDir := core.Reflect(dir, normal.Add(seed.InUnitSphere().Multiply(material.Roughness)))
		return newDir, throughput.MultiplyVec(material.ReflectionTint)
	}

	eta := 1 / material.IOR
	n := normal
	if n.Dot(dir) > 0 {
		n = n.Negate()
		eta = material.IOR
	}

	if refracted, ok := core.Refract(dir, n, eta); ok {
		tint := core.Mix(core.NewVec3(1, 1, 1), material.Albedo, material.Transparency)
		return refracted, throughput.MultiplyVec(tint)
	}

	// Total internal reflection.
	newDir := core.Reflect(dir, n)
	return newDir, throughput.MultiplyVec(material.ReflectionTint)
}

// scatterOpaque implements the opaque branch: a metallic-weighted Bernoulli
// choice between a roughness-perturbed mirror bounce and diffuse scattering.
func scatterOpaque(dir, normal core.Vec3, material scene.Material, throughput core.Vec3, settings Settings, seed *core.Seed) (core.Vec3, core.Vec3) {
	if seed.RandomFloat() < material.ReflectionStrength*material.Metallic {
		newDir := core.Reflect(dir, normal.Add(seed.InUnitSphere().Multiply(material.Roughness)))
		return newDir, throughput.MultiplyVec(material.Albedo).MultiplyVec(material.ReflectionTint)
	}

	var jitter core.Vec3
	if settings.SlowRandom {
		jitter = core.InUnitSphereSlow()
	} else {
		jitter = seed.InUnitSphere()
	}
	newDir := normal.Add(jitter).Normalize()
	return newDir, throughput.MultiplyVec(material.Albedo)
}
