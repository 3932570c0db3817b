package camera

import (
	"go.uber.org/zap"

	"github.com/leterax/go-planets/pkg/input"
)

// Mode is the pointer-capture state
type Mode int

const (
	// Captured: cursor hidden and locked, cameras enabled
	Captured Mode = iota
	// Free: cursor visible and unlocked, cameras disabled
	Free
)

func (m Mode) String() string {
	if m == Captured {
		return "captured"
	}
	return "free"
}

// Window is the platform cursor surface the coordinator drives
type Window interface {
	SetCursorVisible(visible bool)
	SetCursorLocked(locked bool)
	SetCursorPos(x, y float64)
	Size() (width, height int)
}

// Switch toggles input handling on every camera
type Switch interface {
	SetCamerasEnabled(enabled bool)
}

// Coordinator arbitrates pointer ownership between the 3D view and the
// overlay UI. It starts Captured.
type Coordinator struct {
	mode    Mode
	window  Window
	cameras Switch
	logger  *zap.Logger
}

// NewCoordinator creates a coordinator in the Captured state.
// Nothing is applied to the window until Sync or the first transition.
func NewCoordinator(window Window, cameras Switch, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		mode:    Captured,
		window:  window,
		cameras: cameras,
		logger:  logger,
	}
}

// Mode returns the current capture state
func (c *Coordinator) Mode() Mode {
	return c.mode
}

// Sync re-applies the side effects of the current state
func (c *Coordinator) Sync() {
	c.apply(c.mode)
}

// Update evaluates the two transitions for this tick, focus first then exit.
// It reports whether the mode changed.
func (c *Coordinator) Update(in *input.State) bool {
	start := c.mode

	if c.mode == Free && in.JustPressed(input.Focus) && !in.PointerOverUI() {
		c.apply(Captured)
	}
	if c.mode == Captured && in.JustPressed(input.Exit) {
		c.apply(Free)
	}

	return c.mode != start
}

func (c *Coordinator) apply(mode Mode) {
	captured := mode == Captured

	if c.window != nil {
		c.window.SetCursorVisible(!captured)
		c.window.SetCursorLocked(captured)
		w, h := c.window.Size()
		c.window.SetCursorPos(float64(w)/2, float64(h)/2)
	}
	if c.cameras != nil {
		c.cameras.SetCamerasEnabled(captured)
	}

	if mode != c.mode {
		c.logger.Debug("pointer capture changed", zap.Stringer("from", c.mode), zap.Stringer("to", mode))
	}
	c.mode = mode
}
