package render

import "github.com/go-gl/mathgl/mgl32"

// Projection
const (
	DefaultFOV = 45.0
	NearPlane  = 0.1
	FarPlane   = 1000.0
)

// UV sphere tessellation for planets
const (
	SphereSectors = 10
	SphereStacks  = 10
)

// Lighting
const Ambient = 0.15

var (
	ClearColor     = mgl32.Vec4{0.1, 0.2, 0.3, 1.0}
	LightDirection = mgl32.Vec3{-0.4, -1.0, -0.3}
	LightColor     = mgl32.Vec3{1, 1, 1}
)
