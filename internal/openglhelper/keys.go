package openglhelper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// ErrUnknownControl is returned for a binding name with no key or button
var ErrUnknownControl = errors.New("unknown control")

// control is a resolved key or mouse button
type control struct {
	key    glfw.Key
	button glfw.MouseButton
	mouse  bool
}

var namedKeys = map[string]glfw.Key{
	"space":        glfw.KeySpace,
	"escape":       glfw.KeyEscape,
	"enter":        glfw.KeyEnter,
	"tab":          glfw.KeyTab,
	"backspace":    glfw.KeyBackspace,
	"leftshift":    glfw.KeyLeftShift,
	"rightshift":   glfw.KeyRightShift,
	"leftcontrol":  glfw.KeyLeftControl,
	"rightcontrol": glfw.KeyRightControl,
	"leftalt":      glfw.KeyLeftAlt,
	"rightalt":     glfw.KeyRightAlt,
	"up":           glfw.KeyUp,
	"down":         glfw.KeyDown,
	"left":         glfw.KeyLeft,
	"right":        glfw.KeyRight,
	"pageup":       glfw.KeyPageUp,
	"pagedown":     glfw.KeyPageDown,
	"home":         glfw.KeyHome,
	"end":          glfw.KeyEnd,
}

var namedButtons = map[string]glfw.MouseButton{
	"mouseleft":   glfw.MouseButtonLeft,
	"mouseright":  glfw.MouseButtonRight,
	"mousemiddle": glfw.MouseButtonMiddle,
}

// parseControl resolves a case-insensitive control name such as "W",
// "Space", "LeftShift" or "MouseLeft"
func parseControl(name string) (control, error) {
	n := strings.ToLower(strings.TrimSpace(name))

	if b, ok := namedButtons[n]; ok {
		return control{button: b, mouse: true}, nil
	}
	if k, ok := namedKeys[n]; ok {
		return control{key: k}, nil
	}

	// GLFW key codes for letters and digits are their upper-case ASCII values.
	if len(n) == 1 {
		c := n[0]
		switch {
		case c >= 'a' && c <= 'z':
			return control{key: glfw.KeyA + glfw.Key(c-'a')}, nil
		case c >= '0' && c <= '9':
			return control{key: glfw.Key0 + glfw.Key(c-'0')}, nil
		}
	}

	return control{}, fmt.Errorf("%w: %q", ErrUnknownControl, name)
}
