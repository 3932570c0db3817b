// Package camera implements the fly camera motion model: mouse-look
// orientation, damped keyboard movement and pointer-capture arbitration.
//
// All angles are in degrees. Velocity lives in the camera's local frame and is
// rotated into world space only when it is applied to a position.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	worldUp    = mgl32.Vec3{0, 1, 0}
	pitchAxis  = mgl32.Vec3{-1, 0, 0}
	zeroVector = mgl32.Vec3{}
)

// State is the mutable per-camera record
type State struct {
	Yaw         float32
	Pitch       float32
	Sensitivity float32
	Enabled     bool

	Velocity     mgl32.Vec3
	Acceleration float32
	MaxSpeed     float32
	Deceleration float32
}

// DefaultState returns a camera at rest looking down -Z
func DefaultState() State {
	return State{
		Sensitivity:  DefaultSensitivity,
		Enabled:      true,
		Acceleration: DefaultAcceleration,
		MaxSpeed:     DefaultMaxSpeed,
		Deceleration: DefaultDeceleration,
	}
}

// Rotation composes the world rotation from yaw and pitch.
// Yaw turns about the world up axis, pitch about the camera's local right
// axis, so the camera never rolls.
func (s *State) Rotation() mgl32.Quat {
	yaw := mgl32.QuatRotate(mgl32.DegToRad(s.Yaw), worldUp)
	pitch := mgl32.QuatRotate(mgl32.DegToRad(s.Pitch), pitchAxis)
	return yaw.Mul(pitch)
}

// LookAt points the camera from eye towards target by setting yaw and pitch.
// A target equal to eye leaves the angles untouched.
func (s *State) LookAt(eye, target mgl32.Vec3) {
	dir := target.Sub(eye)
	if length(dir) == 0 {
		return
	}
	dir = normalize(dir)

	// Forward is -Z at zero yaw; positive pitch looks down.
	s.Yaw = mgl32.RadToDeg(float32(math.Atan2(float64(-dir.X()), float64(-dir.Z()))))
	s.Pitch = clampPitch(mgl32.RadToDeg(float32(-math.Asin(float64(dir.Y())))))
}

// Speed returns the magnitude of the local velocity
func (s *State) Speed() float32 {
	return length(s.Velocity)
}

func clampPitch(p float32) float32 {
	return mgl32.Clamp(p, MinPitch, MaxPitch)
}

func finite(v ...float32) bool {
	for _, f := range v {
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return false
		}
	}
	return true
}

// length is computed in float64 so tiny velocities don't underflow to zero
func length(v mgl32.Vec3) float32 {
	x, y, z := float64(v[0]), float64(v[1]), float64(v[2])
	return float32(math.Sqrt(x*x + y*y + z*z))
}

func normalize(v mgl32.Vec3) mgl32.Vec3 {
	x, y, z := float64(v[0]), float64(v[1]), float64(v[2])
	l := math.Sqrt(x*x + y*y + z*z)
	return mgl32.Vec3{float32(x / l), float32(y / l), float32(z / l)}
}
