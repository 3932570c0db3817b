// Package scene owns the entity registry: cameras and planets stored in an
// ark ECS world and addressed by stable entity handles.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// SeaGreen is the default planet colour
var SeaGreen = mgl32.Vec3{0.18, 0.55, 0.34}

// Transform places an entity in world space
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// NewTransform returns an unrotated transform at position
func NewTransform(position mgl32.Vec3) Transform {
	return Transform{Position: position, Rotation: mgl32.QuatIdent()}
}

// Matrix returns the model matrix for the transform
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).Mul4(t.Rotation.Mat4())
}

// ViewMatrix returns the world-to-view matrix for a camera placed at t
func (t Transform) ViewMatrix() mgl32.Mat4 {
	p := t.Position
	return t.Rotation.Conjugate().Mat4().Mul4(mgl32.Translate3D(-p.X(), -p.Y(), -p.Z()))
}

// Planet is a celestial body. Weight is carried for display only.
type Planet struct {
	Name   string
	Weight float64
	Radius float32
	Color  mgl32.Vec3
}
