// Package overlay holds the inspector UI: a rectangular panel that claims the
// pointer and a status readout of the scene.
package overlay

import "github.com/go-gl/mathgl/mgl32"

// Panel is a rectangle in window coordinates, origin top-left
type Panel struct {
	X, Y          float64
	Width, Height float64
	Visible       bool
	Color         mgl32.Vec4
}

// NewPanel creates a visible panel
func NewPanel(x, y, width, height float64) *Panel {
	return &Panel{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Visible: true,
		Color:   mgl32.Vec4{0.05, 0.05, 0.08, 0.85},
	}
}

// Contains reports whether the point is over the visible panel
func (p *Panel) Contains(x, y float64) bool {
	if p == nil || !p.Visible {
		return false
	}
	return x >= p.X && x < p.X+p.Width && y >= p.Y && y < p.Y+p.Height
}

// Scissor returns the panel as a GL scissor box for a window of the given
// height. GL's origin is bottom-left.
func (p *Panel) Scissor(windowHeight int) (x, y, w, h int32) {
	return int32(p.X), int32(float64(windowHeight) - p.Y - p.Height), int32(p.Width), int32(p.Height)
}
