package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/leterax/go-planets/pkg/input"
)

// Window handles GLFW window creation, cursor control and input polling
type Window struct {
	glfwWindow *glfw.Window
	width      int
	height     int
	title      string
	logger     *zap.Logger

	cursorVisible bool
	cursorLocked  bool

	controls map[input.Action]control

	// pointer receives cursor motion as deltas
	pointer    *input.State
	lastX      float64
	lastY      float64
	firstMouse bool

	onResize []func(width, height int)
}

// NewWindow creates a new GLFW window with an OpenGL 4.6 core context
func NewWindow(width, height int, title string, vsync bool, logger *zap.Logger) (*Window, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	glfwWindow, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	w := &Window{
		glfwWindow:    glfwWindow,
		width:         width,
		height:        height,
		title:         title,
		logger:        logger,
		cursorVisible: true,
		controls:      make(map[input.Action]control),
		firstMouse:    true,
	}

	glfwWindow.SetCursorPosCallback(w.cursorPosCallback)
	glfwWindow.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	glfwWindow.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width, w.height = width, height
	})

	return w, nil
}

// SetBindings resolves control names for every action. On error the
// previous bindings are kept.
func (w *Window) SetBindings(b input.Bindings) error {
	resolved := make(map[input.Action]control, len(b))
	for _, a := range input.Actions {
		name, ok := b[a]
		if !ok {
			return fmt.Errorf("%w: no control for %s", ErrUnknownControl, a)
		}
		c, err := parseControl(name)
		if err != nil {
			return fmt.Errorf("binding %s: %w", a, err)
		}
		resolved[a] = c
	}
	w.controls = resolved
	return nil
}

// Held reports whether the control bound to a is down
func (w *Window) Held(a input.Action) bool {
	c, ok := w.controls[a]
	if !ok {
		return false
	}
	if c.mouse {
		return w.glfwWindow.GetMouseButton(c.button) == glfw.Press
	}
	return w.glfwWindow.GetKey(c.key) == glfw.Press
}

// AttachPointer routes cursor motion into s as per-event deltas
func (w *Window) AttachPointer(s *input.State) {
	w.pointer = s
	w.firstMouse = true
}

func (w *Window) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	if w.firstMouse {
		w.lastX, w.lastY = xpos, ypos
		w.firstMouse = false
		return
	}

	dx, dy := xpos-w.lastX, ypos-w.lastY
	w.lastX, w.lastY = xpos, ypos

	if w.pointer != nil {
		w.pointer.PushPointerDelta(float32(dx), float32(dy))
	}
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	for _, fn := range w.onResize {
		fn(width, height)
	}
}

// OnResize registers fn to be called with the new framebuffer size
func (w *Window) OnResize(fn func(width, height int)) {
	w.onResize = append(w.onResize, fn)
}

// SetCursorVisible shows or hides the cursor
func (w *Window) SetCursorVisible(visible bool) {
	w.cursorVisible = visible
	w.applyCursorMode()
}

// SetCursorLocked confines the cursor to the window
func (w *Window) SetCursorLocked(locked bool) {
	w.cursorLocked = locked
	w.applyCursorMode()
}

func (w *Window) applyCursorMode() {
	mode := glfw.CursorNormal
	switch {
	case w.cursorLocked:
		mode = glfw.CursorDisabled
	case !w.cursorVisible:
		mode = glfw.CursorHidden
	}
	w.glfwWindow.SetInputMode(glfw.CursorMode, mode)
}

// SetCursorPos moves the cursor without producing a motion delta
func (w *Window) SetCursorPos(x, y float64) {
	w.glfwWindow.SetCursorPos(x, y)
	w.lastX, w.lastY = x, y
	w.firstMouse = false
}

// CursorPos returns the cursor position in window coordinates
func (w *Window) CursorPos() (x, y float64) {
	return w.glfwWindow.GetCursorPos()
}

// Time returns seconds since GLFW was initialized
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// Clear clears colour and depth
func (w *Window) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending events
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// Close releases all resources
func (w *Window) Close() {
	w.glfwWindow.Destroy()
	glfw.Terminate()
}

// Size returns the window dimensions in screen coordinates
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// FramebufferSize returns the drawable size in pixels
func (w *Window) FramebufferSize() (width, height int) {
	return w.glfwWindow.GetFramebufferSize()
}

// SetTitle sets the window title
func (w *Window) SetTitle(title string) {
	if title == w.title {
		return
	}
	w.title = title
	w.glfwWindow.SetTitle(title)
}
