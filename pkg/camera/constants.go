package camera

// Camera defaults
const (
	DefaultSensitivity  = 12.0 // degrees per unit of pointer motion per second
	DefaultAcceleration = 1.5
	DefaultMaxSpeed     = 3.0
	DefaultDeceleration = 1.25

	// Constraints
	MaxPitch = 90.0
	MinPitch = -90.0
)
