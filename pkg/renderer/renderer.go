// Package renderer owns the accumulation buffer, the packed presentation
// buffer, and the parallel per-pixel dispatch that drives the integrator
// once per Render call.
package renderer

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/aranyx/chroma-go/pkg/camera"
	"github.com/aranyx/chroma-go/pkg/core"
	"github.com/aranyx/chroma-go/pkg/integrator"
	"github.com/aranyx/chroma-go/pkg/scene"
)

// Settings are the mutable, caller-owned knobs read once per Render call.
type Settings struct {
	Accumulate      bool
	SlowRandom      bool
	SamplesPerPixel int // clamped to [1,16]
}

func (s Settings) clamped() Settings {
	if s.SamplesPerPixel < 1 {
		s.SamplesPerPixel = 1
	}
	if s.SamplesPerPixel > 16 {
		s.SamplesPerPixel = 16
	}
	return s
}

// DefaultLogger implements core.Logger by writing to stdout.
type DefaultLogger struct{}

// Printf implements core.Logger.
func (DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// Renderer owns the accumulation and presentation buffers for one
// resolution and drives the integrator across a scene and camera borrowed
// for the duration of a single Render call.
type Renderer struct {
	width, height int
	frameIndex    int

	accumulation []core.Vec3
	image        []uint32

	Settings Settings
	logger   core.Logger
}

// New creates a Renderer with no allocated buffers; call Resize before the
// first Render. A nil logger is replaced with DefaultLogger.
func New(settings Settings, logger core.Logger) *Renderer {
	if logger == nil {
		logger = DefaultLogger{}
	}
	return &Renderer{frameIndex: 1, Settings: settings.clamped(), logger: logger}
}

// Resize reallocates the accumulation and image buffers for a new
// resolution. It is a no-op if the dimensions are unchanged, and it does not
// itself reset frameIndex.
func (r *Renderer) Resize(width, height int) {
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	r.accumulation = make([]core.Vec3, width*height)
	r.image = make([]uint32, width*height)
}

// ResetFrameIndex forces frameIndex back to 1; the next Render call clears
// the accumulation buffer before use.
func (r *Renderer) ResetFrameIndex() {
	r.frameIndex = 1
}

// GetFinalImage returns the latest packed-RGBA buffer. The slice is
// borrowed; callers must not retain it past the next Render or Resize.
func (r *Renderer) GetFinalImage() []uint32 {
	return r.image
}

// Render traces one frame of scene through camera, row-parallel over the
// image. Distinct pixels touch disjoint buffer indices, so no
// synchronization is needed between goroutines beyond the errgroup barrier
// at the end of the frame.
func (r *Renderer) Render(s *scene.Scene, cam camera.Camera) error {
	if r.frameIndex == 1 {
		for i := range r.accumulation {
			r.accumulation[i] = core.Vec3{}
		}
	}

	settings := r.Settings.clamped()
	intSettings := integrator.Settings{
		SlowRandom:      settings.SlowRandom,
		SamplesPerPixel: settings.SamplesPerPixel,
	}

	var g errgroup.Group
	for y := 0; y < r.height; y++ {
		y := y
		g.Go(func() error {
			for x := 0; x < r.width; x++ {
				idx := x + y*r.width

				color := integrator.PerPixel(x, y, r.width, r.height, r.frameIndex, s, cam, intSettings)
				r.accumulation[idx] = r.accumulation[idx].Add(color)

				displayed := r.accumulation[idx].Multiply(1 / float64(r.frameIndex)).Clamp(0, 1)
				r.image[idx] = packRGBA(displayed)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	r.logger.Printf("frame %d rendered at %dx%d, %d spp\n", r.frameIndex, r.width, r.height, settings.SamplesPerPixel)

	if settings.Accumulate {
		r.frameIndex++
	} else {
		r.frameIndex = 1
	}
	return nil
}

// packRGBA truncates each channel to a byte (floor, not round) and packs
// them little-endian as R | G<<8 | B<<16 | A<<24. Alpha is always opaque.
func packRGBA(c core.Vec3) uint32 {
	toByte := func(v float64) uint32 {
		return uint32(v * 255)
	}
	r := toByte(c.X)
	g := toByte(c.Y)
	b := toByte(c.Z)
	const a = uint32(255)
	return r | g<<8 | b<<16 | a<<24
}
