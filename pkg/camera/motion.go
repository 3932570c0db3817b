package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-planets/pkg/input"
)

// Axes is the movement intent for one tick, each axis in {-1, 0, +1}
type Axes struct {
	Side     float32 // right positive
	Vertical float32 // up positive
	Forward  float32 // forward positive
}

// AxesFrom derives movement axes from latched input
func AxesFrom(in *input.State) Axes {
	return Axes{
		Side:     in.Axis(input.Right, input.Left),
		Vertical: in.Axis(input.Up, input.Down),
		Forward:  in.Axis(input.Forward, input.Backward),
	}
}

// Accelerate adds the local-frame impulse for axes. Forward maps to -Z.
func (s *State) Accelerate(a Axes, dt float32) {
	impulse := mgl32.Vec3{a.Side, a.Vertical, -a.Forward}.Mul(dt * s.Acceleration)
	s.Velocity = s.Velocity.Add(impulse)
}

// ClampVelocity bounds each velocity component to [-MaxSpeed, MaxSpeed]
func (s *State) ClampVelocity() {
	for i := range s.Velocity {
		s.Velocity[i] = mgl32.Clamp(s.Velocity[i], -s.MaxSpeed, s.MaxSpeed)
	}
}

// Decelerate slows the camera by Deceleration*dt against its direction of
// travel. If that would carry any axis to or past rest the whole velocity is
// snapped to zero instead.
func (s *State) Decelerate(dt float32) {
	if length(s.Velocity) == 0 {
		return
	}

	step := normalize(s.Velocity).Mul(-s.Deceleration * dt)
	next := s.Velocity.Add(step)
	for i := range next {
		if crossesRest(s.Velocity[i], next[i]) {
			s.Velocity = zeroVector
			return
		}
	}
	s.Velocity = next
}

// Integrate runs one movement tick and returns the world-space displacement.
// The order accelerate, clamp, decelerate, rotate is fixed.
func (s *State) Integrate(a Axes, rotation mgl32.Quat, dt float32) mgl32.Vec3 {
	if !s.Enabled {
		return zeroVector
	}

	s.Accelerate(a, dt)
	s.ClampVelocity()
	s.Decelerate(dt)

	return rotation.Rotate(s.Velocity)
}

func crossesRest(before, after float32) bool {
	return (before > 0 && after <= 0) || (before < 0 && after >= 0)
}
