package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leterax/go-planets/pkg/input"
)

const eps = 1e-5

type held map[input.Action]bool

func (h held) Held(a input.Action) bool { return h[a] }

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "component %d of %v", i, got)
	}
}

func TestDefaultState(t *testing.T) {
	s := DefaultState()
	assert.Equal(t, float32(12), s.Sensitivity)
	assert.Equal(t, float32(1.5), s.Acceleration)
	assert.Equal(t, float32(3), s.MaxSpeed)
	assert.Equal(t, float32(1.25), s.Deceleration)
	assert.True(t, s.Enabled)
	assert.Zero(t, s.Yaw)
	assert.Zero(t, s.Pitch)
	assert.Equal(t, mgl32.Vec3{}, s.Velocity)
}

func TestOrientSingleTick(t *testing.T) {
	s := DefaultState()

	rot, ok := s.Orient(mgl32.Vec2{10, 0}, 0.1)
	require.True(t, ok)
	assert.InDelta(t, -12.0, s.Yaw, eps)
	assert.Zero(t, s.Pitch)
	assert.True(t, rot.ApproxEqual(s.Rotation()))
}

func TestOrientSkipsZeroAndNonFinite(t *testing.T) {
	deltas := map[string]mgl32.Vec2{
		"zero":    {0, 0},
		"nan_x":   {float32(math.NaN()), 1},
		"nan_y":   {1, float32(math.NaN())},
		"inf_x":   {float32(math.Inf(1)), 0},
		"neg_inf": {0, float32(math.Inf(-1))},
	}

	for name, d := range deltas {
		t.Run(name, func(t *testing.T) {
			s := DefaultState()
			s.Yaw, s.Pitch = 33, -12
			before := s

			_, ok := s.Orient(d, 0.016)
			assert.False(t, ok)
			assert.Equal(t, before, s)
			assert.False(t, ValidDelta(d))
		})
	}
}

func TestOrientDisabledIsNoop(t *testing.T) {
	s := DefaultState()
	s.Enabled = false

	_, ok := s.Orient(mgl32.Vec2{5, 5}, 0.1)
	assert.False(t, ok)
	assert.Zero(t, s.Yaw)
	assert.Zero(t, s.Pitch)
}

func TestPitchStaysClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := DefaultState()

	for i := 0; i < 2000; i++ {
		d := mgl32.Vec2{rng.Float32()*400 - 200, rng.Float32()*400 - 200}
		s.Orient(d, rng.Float32()*0.1)
		require.GreaterOrEqual(t, s.Pitch, float32(MinPitch))
		require.LessOrEqual(t, s.Pitch, float32(MaxPitch))
	}

	s.Pitch = 0
	s.Orient(mgl32.Vec2{0, 1e6}, 1)
	assert.Equal(t, float32(MaxPitch), s.Pitch)
	s.Orient(mgl32.Vec2{0, -1e6}, 1)
	assert.Equal(t, float32(MinPitch), s.Pitch)
}

func TestRotationNeverRolls(t *testing.T) {
	cases := []struct {
		yaw, pitch float32
		forward    mgl32.Vec3
	}{
		{0, 0, mgl32.Vec3{0, 0, -1}},
		{90, 0, mgl32.Vec3{-1, 0, 0}},
		{-90, 0, mgl32.Vec3{1, 0, 0}},
		{180, 0, mgl32.Vec3{0, 0, 1}},
		{0, 90, mgl32.Vec3{0, -1, 0}},
		{0, -90, mgl32.Vec3{0, 1, 0}},
	}

	for _, c := range cases {
		s := State{Yaw: c.yaw, Pitch: c.pitch}
		rot := s.Rotation()
		assertVec3(t, c.forward, rot.Rotate(mgl32.Vec3{0, 0, -1}))

		// Local right always stays in the horizontal plane.
		assert.InDelta(t, 0, rot.Rotate(mgl32.Vec3{1, 0, 0}).Y(), eps)
	}
}

func TestLookAt(t *testing.T) {
	eye := mgl32.Vec3{-2, 2.5, 5}
	s := DefaultState()
	s.LookAt(eye, mgl32.Vec3{})

	want := mgl32.Vec3{}.Sub(eye).Normalize()
	assertVec3(t, want, s.Rotation().Rotate(mgl32.Vec3{0, 0, -1}))
	assert.Greater(t, s.Pitch, float32(0), "looking down at the origin")

	before := s
	s.LookAt(eye, eye)
	assert.Equal(t, before, s)
}

func TestAccelerateThenDecelerate(t *testing.T) {
	s := DefaultState()

	s.Accelerate(Axes{Forward: 1}, 1.0)
	s.ClampVelocity()
	assertVec3(t, mgl32.Vec3{0, 0, -1.5}, s.Velocity)

	s.Decelerate(1.0)
	assertVec3(t, mgl32.Vec3{0, 0, -0.25}, s.Velocity)
	assert.Less(t, s.Velocity.Z(), float32(0), "never flips sign")
	assert.Less(t, s.Speed(), float32(1.5))
}

func TestOpposingKeysCancel(t *testing.T) {
	in := input.NewState()
	in.Latch(held{input.Forward: true, input.Backward: true, input.Left: true}, 1, false)

	axes := AxesFrom(in)
	assert.Equal(t, Axes{Side: -1}, axes)

	s := DefaultState()
	s.Accelerate(axes, 1)
	assert.Equal(t, mgl32.Vec3{-1.5, 0, 0}, s.Velocity)
}

func TestDecelerateSnapsToRest(t *testing.T) {
	cases := []struct {
		name string
		v    mgl32.Vec3
		dt   float32
		want mgl32.Vec3
	}{
		{"overshoot", mgl32.Vec3{0, 0, -0.5}, 1, mgl32.Vec3{}},
		{"exact_rest", mgl32.Vec3{1.25, 0, 0}, 1, mgl32.Vec3{}},
		{"diagonal_overshoot", mgl32.Vec3{0.1, -0.1, 0.1}, 1, mgl32.Vec3{}},
		{"partial", mgl32.Vec3{2.5, 0, 0}, 1, mgl32.Vec3{1.25, 0, 0}},
		{"at_rest", mgl32.Vec3{}, 1, mgl32.Vec3{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := DefaultState()
			s.Velocity = c.v
			s.Decelerate(c.dt)
			assertVec3(t, c.want, s.Velocity)
		})
	}
}

func TestVelocityStaysBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s := DefaultState()
	axis := func() float32 { return float32(rng.Intn(3) - 1) }

	for i := 0; i < 5000; i++ {
		s.Integrate(Axes{Side: axis(), Vertical: axis(), Forward: axis()}, mgl32.QuatIdent(), rng.Float32())
		for _, c := range s.Velocity {
			require.LessOrEqual(t, c, s.MaxSpeed)
			require.GreaterOrEqual(t, c, -s.MaxSpeed)
		}
	}
}

func TestVelocityConvergesToExactRest(t *testing.T) {
	s := DefaultState()
	for i := 0; i < 100; i++ {
		s.Integrate(Axes{Side: 1, Vertical: -1, Forward: 1}, mgl32.QuatIdent(), 0.5)
	}
	require.NotEqual(t, mgl32.Vec3{}, s.Velocity)

	for i := 0; i < 1000; i++ {
		s.Integrate(Axes{}, mgl32.QuatIdent(), 1.0/60)
	}
	assert.Equal(t, mgl32.Vec3{}, s.Velocity)

	for i := 0; i < 10; i++ {
		s.Integrate(Axes{}, mgl32.QuatIdent(), 1.0/60)
		assert.Equal(t, mgl32.Vec3{}, s.Velocity)
	}
}

func TestIntegrateRotatesIntoWorld(t *testing.T) {
	s := DefaultState()
	s.Yaw = 90

	moved := s.Integrate(Axes{Forward: 1}, s.Rotation(), 1.0)
	assertVec3(t, mgl32.Vec3{0, 0, -0.25}, s.Velocity)
	assertVec3(t, mgl32.Vec3{-0.25, 0, 0}, moved)
}

func TestIntegrateDisabled(t *testing.T) {
	s := DefaultState()
	s.Enabled = false
	s.Velocity = mgl32.Vec3{1, 0, 0}

	moved := s.Integrate(Axes{Forward: 1}, mgl32.QuatIdent(), 1)
	assert.Equal(t, mgl32.Vec3{}, moved)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, s.Velocity)
}
