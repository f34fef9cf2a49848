package engine

import (
	"fmt"
	"strconv"
	"strings"

	"RoomViewer/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var namedKeys = map[string]glfw.Key{
	"SPACE":         glfw.KeySpace,
	"ESCAPE":        glfw.KeyEscape,
	"ENTER":         glfw.KeyEnter,
	"TAB":           glfw.KeyTab,
	"BACKSPACE":     glfw.KeyBackspace,
	"UP":            glfw.KeyUp,
	"DOWN":          glfw.KeyDown,
	"LEFT":          glfw.KeyLeft,
	"RIGHT":         glfw.KeyRight,
	"PAGE_UP":       glfw.KeyPageUp,
	"PAGE_DOWN":     glfw.KeyPageDown,
	"HOME":          glfw.KeyHome,
	"END":           glfw.KeyEnd,
	"LEFT_SHIFT":    glfw.KeyLeftShift,
	"RIGHT_SHIFT":   glfw.KeyRightShift,
	"LEFT_CONTROL":  glfw.KeyLeftControl,
	"RIGHT_CONTROL": glfw.KeyRightControl,
	"LEFT_ALT":      glfw.KeyLeftAlt,
	"RIGHT_ALT":     glfw.KeyRightAlt,
}

// ParseKey maps a binding name such as "W", "7", "F5" or "ESCAPE" to a GLFW
// key. Names are case-insensitive.
func ParseKey(name string) (glfw.Key, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if key, ok := namedKeys[upper]; ok {
		return key, nil
	}

	if len(upper) == 1 {
		switch c := upper[0]; {
		case c >= 'A' && c <= 'Z':
			return glfw.KeyA + glfw.Key(c-'A'), nil
		case c >= '0' && c <= '9':
			return glfw.Key0 + glfw.Key(c-'0'), nil
		}
	}

	if rest, ok := strings.CutPrefix(upper, "F"); ok {
		if n, err := strconv.Atoi(rest); err == nil && n >= 1 && n <= 25 {
			return glfw.KeyF1 + glfw.Key(n-1), nil
		}
	}

	return glfw.KeyUnknown, fmt.Errorf("unknown key %q", name)
}

// keyReader is the part of *glfw.Window the key poller needs.
type keyReader interface {
	GetKey(key glfw.Key) glfw.Action
}

// Keymap binds each action to one physical key.
type Keymap map[input.Action]glfw.Key

// NewKeymap resolves config bindings (action name to key name). Actions
// bound to an empty key name are left out.
func NewKeymap(bindings map[string]string) (Keymap, error) {
	keymap := make(Keymap, len(bindings))
	for actionName, keyName := range bindings {
		action, err := input.ParseAction(actionName)
		if err != nil {
			return nil, err
		}
		if keyName == "" {
			continue
		}
		key, err := ParseKey(keyName)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", actionName, err)
		}
		keymap[action] = key
	}
	return keymap, nil
}

// Poll snapshots the level of every bound key.
func (k Keymap) Poll(window keyReader) input.KeyState {
	state := make(input.KeyState, len(k))
	for action, key := range k {
		state[action] = window.GetKey(key) == glfw.Press
	}
	return state
}
