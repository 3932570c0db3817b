// Package game runs the per-tick system schedule.
//
// A tick latches input once, then runs the systems in a fixed order:
// pointer capture, orientation, motion, followed by any systems added with
// Add. Orientation always runs before motion so movement uses the rotation
// produced this tick.
package game

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/leterax/go-planets/pkg/camera"
	"github.com/leterax/go-planets/pkg/input"
	"github.com/leterax/go-planets/pkg/scene"
)

// Context is the state shared by systems during a tick
type Context struct {
	Registry *scene.Registry
	Input    *input.State
	Capture  *camera.Coordinator
	Logger   *zap.Logger

	// Tick counts completed ticks, starting at zero for the first one
	Tick uint64
}

// System is one stage of the tick
type System interface {
	Update(ctx *Context)
}

// SystemFunc adapts a function to System
type SystemFunc func(ctx *Context)

// Update calls f(ctx)
func (f SystemFunc) Update(ctx *Context) { f(ctx) }

// Platform is what the loop needs from the window
type Platform interface {
	input.Source
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	CursorPos() (x, y float64)
	Time() float64
}

// Hitbox answers whether a window point lies over the overlay
type Hitbox interface {
	Contains(x, y float64) bool
}

// Loop owns the ordered systems and the input snapshot
type Loop struct {
	ctx     Context
	systems []System
	overlay Hitbox

	// pending holds at most one deferred change, latest wins
	pending chan func()
}

// NewLoop creates a loop with the core schedule.
// coordinator may be nil, in which case capture is never evaluated.
func NewLoop(registry *scene.Registry, coordinator *camera.Coordinator, logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{
		ctx: Context{
			Registry: registry,
			Input:    input.NewState(),
			Capture:  coordinator,
			Logger:   logger,
		},
		systems: []System{
			CaptureSystem{},
			OrientationSystem{},
			MotionSystem{},
		},
		pending: make(chan func(), 1),
	}
}

// Add appends systems after the core schedule
func (l *Loop) Add(systems ...System) {
	l.systems = append(l.systems, systems...)
}

// SetOverlay sets the area that blocks pointer capture
func (l *Loop) SetOverlay(h Hitbox) {
	l.overlay = h
}

// Input returns the loop's input state so the platform can push pointer
// samples into it
func (l *Loop) Input() *input.State {
	return l.ctx.Input
}

// Context returns the shared tick context
func (l *Loop) Context() *Context {
	return &l.ctx
}

// Schedule queues fn to run on the loop goroutine before the next tick.
// Only the most recent call is kept. Safe for concurrent use.
func (l *Loop) Schedule(fn func()) {
	for {
		select {
		case l.pending <- fn:
			return
		default:
		}
		select {
		case <-l.pending:
		default:
		}
	}
}

func (l *Loop) runPending() {
	select {
	case fn := <-l.pending:
		fn()
	default:
	}
}

// Step latches input from src and runs every system once, then clears the
// pointer samples it consumed.
// A dt that is not a positive finite number skips the tick and returns false.
func (l *Loop) Step(src input.Source, dt float32, overUI bool) bool {
	if !validDelta(dt) {
		return false
	}

	l.ctx.Input.Latch(src, dt, overUI)
	for _, s := range l.systems {
		s.Update(&l.ctx)
	}
	l.ctx.Input.BeginTick()
	l.ctx.Tick++
	return true
}

// Run drives the loop until the window closes or ctx is cancelled.
// draw is called after the systems each frame and may be nil.
func (l *Loop) Run(ctx context.Context, p Platform, draw func()) error {
	last := p.Time()

	for !p.ShouldClose() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		l.runPending()

		l.ctx.Input.BeginTick()
		p.PollEvents()

		now := p.Time()
		dt := float32(now - last)
		last = now

		l.Step(p, dt, l.pointerOverUI(p))

		if draw != nil {
			draw()
		}
		p.SwapBuffers()
	}

	return nil
}

func (l *Loop) pointerOverUI(p Platform) bool {
	if l.overlay == nil {
		return false
	}
	return l.overlay.Contains(p.CursorPos())
}

func validDelta(dt float32) bool {
	f := float64(dt)
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
