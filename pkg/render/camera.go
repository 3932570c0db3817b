package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera holds the perspective projection. Position and orientation come
// from the camera entity's transform.
type Camera struct {
	fov        float32
	projection mgl32.Mat4
	width      int
	height     int
}

// NewCamera creates a projection for a framebuffer of the given size
func NewCamera(width, height int) *Camera {
	c := &Camera{fov: DefaultFOV}
	c.UpdateProjectionMatrix(width, height)
	return c
}

// UpdateProjectionMatrix rebuilds the projection after a resize.
// A zero-sized framebuffer (minimised window) keeps the old projection.
func (c *Camera) UpdateProjectionMatrix(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width, c.height = width, height
	aspect := float32(width) / float32(height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, NearPlane, FarPlane)
}

// ProjectionMatrix returns the current projection
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}
