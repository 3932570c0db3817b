package game

import (
	"context"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leterax/go-planets/pkg/camera"
	"github.com/leterax/go-planets/pkg/input"
	"github.com/leterax/go-planets/pkg/scene"
)

type held map[input.Action]bool

func (h held) Held(a input.Action) bool { return h[a] }

// fakePlatform closes after frames polls and pushes motion on every poll
type fakePlatform struct {
	held
	loop   *Loop
	frames int
	polls  int
	swaps  int
	now    float64
	step   float64
	motion mgl32.Vec2
	cursor [2]float64
}

func (p *fakePlatform) PollEvents() {
	p.polls++
	p.now += p.step
	if p.motion != (mgl32.Vec2{}) {
		p.loop.Input().PushPointerDelta(p.motion.X(), p.motion.Y())
	}
}
func (p *fakePlatform) SwapBuffers()                 { p.swaps++ }
func (p *fakePlatform) ShouldClose() bool            { return p.polls >= p.frames }
func (p *fakePlatform) CursorPos() (float64, float64) { return p.cursor[0], p.cursor[1] }
func (p *fakePlatform) Time() float64                { return p.now }

type box struct{ x0, y0, x1, y1 float64 }

func (b box) Contains(x, y float64) bool { return x >= b.x0 && x < b.x1 && y >= b.y0 && y < b.y1 }

func TestSystemOrder(t *testing.T) {
	l := NewLoop(scene.NewRegistry(), nil, nil)

	var order []string
	rec := func(name string) System {
		return SystemFunc(func(*Context) { order = append(order, name) })
	}
	l.systems = []System{rec("capture"), rec("orientation"), rec("motion")}
	l.Add(rec("inspector"))

	require.True(t, l.Step(nil, 0.016, false))
	assert.Equal(t, []string{"capture", "orientation", "motion", "inspector"}, order)
	assert.Equal(t, uint64(1), l.Context().Tick)
}

func TestStepSkipsInvalidDelta(t *testing.T) {
	for name, dt := range map[string]float32{
		"zero":     0,
		"negative": -0.1,
		"nan":      float32(math.NaN()),
		"inf":      float32(math.Inf(1)),
	} {
		t.Run(name, func(t *testing.T) {
			l := NewLoop(scene.NewRegistry(), nil, nil)
			ran := false
			l.Add(SystemFunc(func(*Context) { ran = true }))

			assert.False(t, l.Step(nil, dt, false))
			assert.False(t, ran)
			assert.Zero(t, l.Context().Tick)
		})
	}
}

func TestDisabledCameraDoesNotStopOthers(t *testing.T) {
	reg := scene.NewRegistry()
	first := reg.SpawnCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
	second := reg.SpawnCamera(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{})

	_, s := reg.Camera(first)
	s.Enabled = false

	l := NewLoop(reg, nil, nil)
	l.Input().PushPointerDelta(10, 0)
	require.True(t, l.Step(held{input.Forward: true}, 0.1, false))

	ft, fs := reg.Camera(first)
	assert.Equal(t, mgl32.Vec3{0, 0, 5}, ft.Position)
	assert.Zero(t, fs.Yaw)
	assert.Equal(t, mgl32.Vec3{}, fs.Velocity)

	st, ss := reg.Camera(second)
	assert.InDelta(t, -12, ss.Yaw, 1e-4)
	assert.NotEqual(t, mgl32.Vec3{0, 0, 10}, st.Position)
	assert.True(t, st.Rotation.ApproxEqual(ss.Rotation()))
}

func TestMotionUsesThisTicksRotation(t *testing.T) {
	reg := scene.NewRegistry()
	e := reg.SpawnCamera(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1})

	l := NewLoop(reg, nil, nil)
	// Yaw by +90 degrees: -x * dt * sens = 90.
	l.Input().PushPointerDelta(-7.5, 0)
	require.True(t, l.Step(held{input.Forward: true}, 1, false))

	tr, s := reg.Camera(e)
	assert.InDelta(t, 90, s.Yaw, 1e-4)
	assert.InDelta(t, -0.25, tr.Position.X(), 1e-5)
	assert.InDelta(t, 0, tr.Position.Z(), 1e-5)
}

func TestStepConsumesPointerSamplesOnce(t *testing.T) {
	reg := scene.NewRegistry()
	e := reg.SpawnCamera(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1})

	l := NewLoop(reg, nil, nil)
	l.Input().PushPointerDelta(10, 0)
	require.True(t, l.Step(nil, 0.1, false))

	_, s := reg.Camera(e)
	assert.InDelta(t, -12, s.Yaw, 1e-4)
	assert.Zero(t, l.Input().Samples())

	require.True(t, l.Step(nil, 0.1, false))
	_, s = reg.Camera(e)
	assert.InDelta(t, -12, s.Yaw, 1e-4)
}

func TestInvalidPointerDeltaIsSkipped(t *testing.T) {
	reg := scene.NewRegistry()
	e := reg.SpawnCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
	_, s := reg.Camera(e)
	yaw, pitch := s.Yaw, s.Pitch

	l := NewLoop(reg, nil, nil)
	l.Input().PushPointerDelta(float32(math.NaN()), 3)
	require.True(t, l.Step(nil, 0.1, false))

	_, s = reg.Camera(e)
	assert.Equal(t, yaw, s.Yaw)
	assert.Equal(t, pitch, s.Pitch)
}

func TestRunDrivesFrames(t *testing.T) {
	reg := scene.NewRegistry()
	e := reg.SpawnCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})

	l := NewLoop(reg, nil, nil)
	p := &fakePlatform{loop: l, frames: 5, step: 1.0 / 60, motion: mgl32.Vec2{1, 0}}

	draws := 0
	require.NoError(t, l.Run(context.Background(), p, func() { draws++ }))

	assert.Equal(t, 5, draws)
	assert.Equal(t, 5, p.swaps)
	assert.Equal(t, uint64(5), l.Context().Tick)

	// One sample per frame, cleared between frames.
	_, s := reg.Camera(e)
	assert.InDelta(t, -5*12.0/60, s.Yaw, 1e-4)
}

func TestRunStopsOnCancel(t *testing.T) {
	l := NewLoop(scene.NewRegistry(), nil, nil)
	p := &fakePlatform{loop: l, frames: 1 << 30, step: 0.01}

	ctx, cancel := context.WithCancel(context.Background())
	l.Add(SystemFunc(func(c *Context) {
		if c.Tick == 2 {
			cancel()
		}
	}))

	err := l.Run(ctx, p, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uint64(3), l.Context().Tick)
}

func TestOverlayBlocksRecapture(t *testing.T) {
	reg := scene.NewRegistry()
	reg.Seed()
	coord := camera.NewCoordinator(nil, reg, nil)

	l := NewLoop(reg, coord, nil)
	l.SetOverlay(box{0, 0, 100, 100})

	p := &fakePlatform{loop: l, frames: 1, step: 0.01, held: held{input.Exit: true}}
	require.NoError(t, l.Run(context.Background(), p, nil))
	require.Equal(t, camera.Free, coord.Mode())

	p.held, p.frames, p.cursor = held{input.Focus: true}, 2, [2]float64{50, 50}
	require.NoError(t, l.Run(context.Background(), p, nil))
	assert.Equal(t, camera.Free, coord.Mode())

	p.held, p.frames = held{}, 3
	require.NoError(t, l.Run(context.Background(), p, nil))
	p.held, p.frames, p.cursor = held{input.Focus: true}, 4, [2]float64{500, 500}
	require.NoError(t, l.Run(context.Background(), p, nil))
	assert.Equal(t, camera.Captured, coord.Mode())
}

func TestScheduleKeepsLatest(t *testing.T) {
	l := NewLoop(scene.NewRegistry(), nil, nil)

	got := 0
	l.Schedule(func() { got = 1 })
	l.Schedule(func() { got = 2 })
	l.runPending()
	assert.Equal(t, 2, got)

	got = 0
	l.runPending()
	assert.Zero(t, got)
}
