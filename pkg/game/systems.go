package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/leterax/go-planets/pkg/camera"
	"github.com/leterax/go-planets/pkg/scene"
)

// CaptureSystem evaluates pointer capture transitions
type CaptureSystem struct{}

// Update runs the capture transitions for this tick
func (CaptureSystem) Update(ctx *Context) {
	if ctx.Capture == nil {
		return
	}
	ctx.Capture.Update(ctx.Input)
}

// OrientationSystem applies this tick's pointer motion to every enabled camera
type OrientationSystem struct{}

// Update turns every enabled camera by the accumulated pointer delta
func (OrientationSystem) Update(ctx *Context) {
	delta := ctx.Input.PointerDelta()
	if !camera.ValidDelta(delta) {
		return
	}
	dt := ctx.Input.DeltaTime()

	ctx.Registry.EachCamera(func(_ ecs.Entity, t *scene.Transform, s *camera.State) {
		if !s.Enabled {
			return
		}
		if rot, ok := s.Orient(delta, dt); ok {
			t.Rotation = rot
		}
	})
}

// MotionSystem integrates velocity and moves every enabled camera
type MotionSystem struct{}

// Update moves every enabled camera by its integrated velocity
func (MotionSystem) Update(ctx *Context) {
	axes := camera.AxesFrom(ctx.Input)
	dt := ctx.Input.DeltaTime()

	ctx.Registry.EachCamera(func(_ ecs.Entity, t *scene.Transform, s *camera.State) {
		if !s.Enabled {
			return
		}
		t.Position = t.Position.Add(s.Integrate(axes, t.Rotation, dt))
	})
}
