package input

import (
	"fmt"

	"RoomViewer/internal/camera"
	"RoomViewer/internal/logger"

	"go.uber.org/zap"
)

// Action is a bindable input meaning, independent of the physical key.
type Action int

const (
	MoveForward Action = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	PitchUp
	PitchDown
	YawLeft
	YawRight
	RollLeft
	RollRight
	ToggleFan
	ToggleOrbit
	ToggleView
	Quit

	actionCount
)

var actionNames = [actionCount]string{
	MoveForward:  "forward",
	MoveBackward: "backward",
	MoveLeft:     "left",
	MoveRight:    "right",
	MoveUp:       "up",
	MoveDown:     "down",
	PitchUp:      "pitch_up",
	PitchDown:    "pitch_down",
	YawLeft:      "yaw_left",
	YawRight:     "yaw_right",
	RollLeft:     "roll_left",
	RollRight:    "roll_right",
	ToggleFan:    "toggle_fan",
	ToggleOrbit:  "toggle_orbit",
	ToggleView:   "toggle_view",
	Quit:         "quit",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction resolves a config binding name.
func ParseAction(name string) (Action, error) {
	for a := Action(0); a < actionCount; a++ {
		if actionNames[a] == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Actions lists every action in declaration order.
func Actions() []Action {
	all := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		all = append(all, a)
	}
	return all
}

// movement holds the continuous actions and the camera command each one
// issues. Slice order keeps the per-frame application deterministic.
var movement = []struct {
	action    Action
	direction camera.Direction
}{
	{MoveForward, camera.Forward},
	{MoveBackward, camera.Backward},
	{MoveLeft, camera.Left},
	{MoveRight, camera.Right},
	{MoveUp, camera.Up},
	{MoveDown, camera.Down},
	{PitchUp, camera.PitchUp},
	{PitchDown, camera.PitchDown},
	{YawLeft, camera.YawLeft},
	{YawRight, camera.YawRight},
	{RollLeft, camera.RollLeft},
	{RollRight, camera.RollRight},
}

// KeyState is one frame's snapshot of which actions are held down.
type KeyState map[Action]bool

// CameraControls is what the router drives on the camera.
type CameraControls interface {
	ProcessMovement(direction camera.Direction, deltaTime float32)
	ProcessCursor(xpos, ypos float32)
	ProcessScroll(yoffset float32)
	ResetMouse()
}

// Toggler is flipped once per key press.
type Toggler interface {
	Toggle()
}

// EdgeDetector remembers last frame's key levels so a held key counts as a
// single press.
type EdgeDetector struct {
	prev map[Action]bool
}

func NewEdgeDetector() *EdgeDetector {
	return &EdgeDetector{prev: make(map[Action]bool)}
}

// Pressed reports a released-to-pressed transition and records the level.
func (e *EdgeDetector) Pressed(action Action, down bool) bool {
	was := e.prev[action]
	e.prev[action] = down
	return down && !was
}

type Router struct {
	camera   CameraControls
	toggles  map[Action]Toggler
	edges    *EdgeDetector
	disabled bool
}

func NewRouter(cam CameraControls) *Router {
	return &Router{
		camera:  cam,
		toggles: make(map[Action]Toggler),
		edges:   NewEdgeDetector(),
	}
}

// SetCameraEnabled stops or resumes movement, pointer and scroll routing.
// Toggles and Quit keep working while the camera is disabled. Re-enabling
// swallows the next cursor sample.
func (r *Router) SetCameraEnabled(enabled bool) {
	if enabled && r.disabled {
		r.camera.ResetMouse()
	}
	r.disabled = !enabled
}

// Bind attaches a toggle target to one of the toggle actions.
func (r *Router) Bind(action Action, target Toggler) {
	r.toggles[action] = target
}

// Apply maps one frame of key state onto the camera and toggles. Movement
// fires every frame its key is held; toggles fire on the press edge only.
// The return value asks the caller to leave the render loop.
func (r *Router) Apply(keys KeyState, deltaTime float32) bool {
	for _, m := range movement {
		if !r.disabled && keys[m.action] {
			r.camera.ProcessMovement(m.direction, deltaTime)
		}
	}

	for _, a := range []Action{ToggleFan, ToggleOrbit, ToggleView} {
		if !r.edges.Pressed(a, keys[a]) {
			continue
		}
		target, ok := r.toggles[a]
		if !ok {
			logger.Log.Debug("No target bound for toggle", zap.Stringer("action", a))
			continue
		}
		target.Toggle()
	}

	return keys[Quit]
}

func (r *Router) CursorMoved(xpos, ypos float64) {
	if r.disabled {
		return
	}
	r.camera.ProcessCursor(float32(xpos), float32(ypos))
}

func (r *Router) Scrolled(yoffset float64) {
	if r.disabled {
		return
	}
	r.camera.ProcessScroll(float32(yoffset))
}

// Recapture is called when the pointer is captured again so the next cursor
// sample does not turn the camera.
func (r *Router) Recapture() {
	r.camera.ResetMouse()
}
