package camera

import "github.com/go-gl/mathgl/mgl32"

// ValidDelta reports whether an accumulated pointer delta should drive
// orientation this tick. Zero and non-finite deltas are skipped.
func ValidDelta(delta mgl32.Vec2) bool {
	return delta != (mgl32.Vec2{}) && finite(delta[0], delta[1])
}

// Orient applies one tick of accumulated pointer motion.
// It returns the new world rotation and true, or false when the camera is
// disabled or the delta is skipped; in that case nothing is modified.
func (s *State) Orient(delta mgl32.Vec2, dt float32) (mgl32.Quat, bool) {
	if !s.Enabled || !ValidDelta(delta) {
		return mgl32.Quat{}, false
	}

	s.Yaw -= delta.X() * dt * s.Sensitivity
	s.Pitch += delta.Y() * dt * s.Sensitivity
	s.Pitch = clampPitch(s.Pitch)

	return s.Rotation(), true
}
