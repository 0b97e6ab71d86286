// Package camera defines the camera contract the renderer consumes and a
// minimal static implementation (Orbit) sufficient to drive the CLI demo. The full
// interactive pitch/yaw/mouse-look controller is out of scope; callers that
// need one can satisfy the Camera interface with their own windowing layer.
package camera

import (
	"math"

	"github.com/aranyx/chroma-go/pkg/core"
)

// Camera is the external collaborator the renderer borrows for the duration
// of a single Render call. It never mutates scene or renderer state; the
// renderer only reads from it.
type Camera interface {
	Position() core.Vec3
	InverseView() core.Mat4
	InverseProjection() core.Mat4
	// RayDirections returns the cached per-pixel primary ray direction for
	// every pixel, indexed x + y*width, valid for the camera's current
	// resolution and orientation.
	RayDirections() []core.Vec3
	// Resize recomputes RayDirections for a new resolution.
	Resize(width, height int)
	// Update advances the camera by dt seconds (input polling, movement)
	// and reports whether anything changed enough that the caller should
	// reset frameIndex.
	Update(dt float64) bool
}

// Orbit is a minimal fixed-position, fixed-orientation Camera: it looks at a
// target from a fixed eye point with a pinhole perspective projection, and
// never reports a change from Update. It exists to exercise the renderer's
// Camera contract without pulling in a windowing/input stack.
type Orbit struct {
	position          core.Vec3
	inverseView       core.Mat4
	inverseProjection core.Mat4
	rayDirections     []core.Vec3
	width, height     int

	verticalFOVDegrees float64
	nearClip, farClip  float64
}

// NewOrbit builds a camera positioned at eye, looking at target, with the
// given vertical field of view in degrees.
func NewOrbit(eye, target, up core.Vec3, verticalFOVDegrees, nearClip, farClip float64) *Orbit {
	c := &Orbit{
		position:           eye,
		verticalFOVDegrees: verticalFOVDegrees,
		nearClip:           nearClip,
		farClip:            farClip,
	}
	c.recomputeView(eye, target, up)
	return c
}

func (c *Orbit) recomputeView(eye, target, up core.Vec3) {
	forward := target.Subtract(eye).Normalize()
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward).Normalize()

	view := core.Mat4{
		right.X, trueUp.X, -forward.X, 0,
		right.Y, trueUp.Y, -forward.Y, 0,
		right.Z, trueUp.Z, -forward.Z, 0,
		-right.Dot(eye), -trueUp.Dot(eye), forward.Dot(eye), 1,
	}
	c.inverseView = view.Inv()
}

// Position implements Camera.
func (c *Orbit) Position() core.Vec3 { return c.position }

// InverseView implements Camera.
func (c *Orbit) InverseView() core.Mat4 { return c.inverseView }

// InverseProjection implements Camera.
func (c *Orbit) InverseProjection() core.Mat4 { return c.inverseProjection }

// RayDirections implements Camera.
func (c *Orbit) RayDirections() []core.Vec3 { return c.rayDirections }

// Update implements Camera. The orbit camera is static, so it never
// requests a frameIndex reset.
func (c *Orbit) Update(dt float64) bool { return false }

// Resize recomputes the projection and the cached per-pixel ray directions
// for the new resolution.
func (c *Orbit) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height

	aspect := float64(width) / float64(height)
	fovRadians := c.verticalFOVDegrees * math.Pi / 180
	projection := perspective(fovRadians, aspect, c.nearClip, c.farClip)
	c.inverseProjection = projection.Inv()

	c.rayDirections = make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ndcX := (float64(x)+0.5)/float64(width)*2 - 1
			ndcY := (float64(y)+0.5)/float64(height)*2 - 1

			target := core.TransformPoint(c.inverseProjection, core.NewVec3(ndcX, ndcY, 1), 1)
			targetVec := core.Vec3FromVec4(target).Multiply(1 / target[3]).Normalize()
			dir4 := core.TransformPoint(c.inverseView, targetVec, 0)
			c.rayDirections[x+y*width] = core.Vec3FromVec4(dir4).Normalize()
		}
	}
}

// perspective builds a right-handed perspective projection matrix matching
// the convention mgl64.Perspective uses, inlined here so this package depends
// only on core's Mat4 alias rather than importing mathgl directly.
func perspective(fovyRadians, aspect, near, far float64) core.Mat4 {
	f := 1 / math.Tan(fovyRadians/2)
	return core.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / (near - far), -1,
		0, 0, (2 * far * near) / (near - far), 0,
	}
}
