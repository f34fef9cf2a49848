// camera.go
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a single keyboard-driven camera command.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
	PitchUp
	PitchDown
	YawLeft
	YawRight
	RollLeft
	RollRight
)

var directionNames = [...]string{
	Forward:   "forward",
	Backward:  "backward",
	Left:      "left",
	Right:     "right",
	Up:        "up",
	Down:      "down",
	PitchUp:   "pitch_up",
	PitchDown: "pitch_down",
	YawLeft:   "yaw_left",
	YawRight:  "yaw_right",
	RollLeft:  "roll_left",
	RollRight: "roll_right",
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// Translational reports whether the direction moves the eye rather than
// turning it.
func (d Direction) Translational() bool {
	return d <= Down
}

// Viewpoint is anything that can produce a view matrix for the renderer.
type Viewpoint interface {
	GetViewMatrix() mgl32.Mat4
}

// pitchLimit is used only when ConstrainPitch is set.
const pitchLimit = 89.0

// Camera is a free-flying eye steered by keyboard and pointer input. The
// basis is rebuilt from Yaw, Pitch and Roll after every rotation.
type Camera struct {
	// HOT DATA - touched every frame
	Position mgl32.Vec3 // Eye position in world space
	Front    mgl32.Vec3 // Forward direction vector
	Up       mgl32.Vec3 // Up direction vector
	Right    mgl32.Vec3 // Right direction vector
	Yaw      float32    // Degrees, -90 looks down -Z
	Pitch    float32    // Degrees
	Roll     float32    // Degrees, rotates Right/Up about Front
	Zoom     float32    // Vertical field of view in degrees

	// COLD DATA - tuning
	WorldUp          mgl32.Vec3
	MovementSpeed    float32 // Units per second
	MouseSensitivity float32 // Degrees per pixel
	TurnSpeed        float32 // Degrees per second for keyboard rotation
	ZoomScale        float32 // Degrees per scroll step
	MinZoom          float32
	MaxZoom          float32
	Near             float32
	Far              float32
	ConstrainPitch   bool // Clamp pitch to (-89, 89) like an FPS camera
	InvertMouse      bool // Moving the mouse up looks down
	LastX, LastY     float32
	firstMouse       bool
}

// Options carries the tunable parameters of a camera.
type Options struct {
	Yaw, Pitch, Roll float32
	MovementSpeed    float32
	MouseSensitivity float32
	TurnSpeed        float32
	Zoom             float32
	ZoomScale        float32
	MinZoom, MaxZoom float32
	Near, Far        float32
	ConstrainPitch   bool
	InvertMouse      bool
}

// DefaultOptions looks down -Z at walking speed with a 45 degree field of view.
func DefaultOptions() Options {
	return Options{
		Yaw:              -90,
		MovementSpeed:    2.5,
		MouseSensitivity: 0.1,
		TurnSpeed:        60,
		Zoom:             45,
		ZoomScale:        1,
		MinZoom:          1,
		MaxZoom:          45,
		Near:             0.1,
		Far:              100,
	}
}

// NewCamera clamps the initial zoom (and pitch, when constrained) before
// building the basis.
func NewCamera(position mgl32.Vec3, opts Options) *Camera {
	c := &Camera{
		Position:         position,
		Right:            mgl32.Vec3{1, 0, 0},
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              opts.Yaw,
		Pitch:            opts.Pitch,
		Roll:             opts.Roll,
		MovementSpeed:    opts.MovementSpeed,
		MouseSensitivity: opts.MouseSensitivity,
		TurnSpeed:        opts.TurnSpeed,
		ZoomScale:        opts.ZoomScale,
		MinZoom:          opts.MinZoom,
		MaxZoom:          opts.MaxZoom,
		Near:             opts.Near,
		Far:              opts.Far,
		ConstrainPitch:   opts.ConstrainPitch,
		InvertMouse:      opts.InvertMouse,
		firstMouse:       true,
	}
	c.Zoom = mgl32.Clamp(opts.Zoom, c.MinZoom, c.MaxZoom)
	if c.ConstrainPitch {
		c.Pitch = mgl32.Clamp(c.Pitch, -pitchLimit, pitchLimit)
	}
	c.updateCameraVectors()
	return c
}

func NewDefaultCamera(position mgl32.Vec3) *Camera {
	return NewCamera(position, DefaultOptions())
}

// ProcessMovement applies one keyboard command scaled by deltaTime.
// Translations leave the orientation untouched.
func (c *Camera) ProcessMovement(direction Direction, deltaTime float32) {
	velocity := c.MovementSpeed * deltaTime
	angle := c.TurnSpeed * deltaTime

	switch direction {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	case Up:
		c.Position = c.Position.Add(c.Up.Mul(velocity))
	case Down:
		c.Position = c.Position.Sub(c.Up.Mul(velocity))
	case PitchUp:
		c.setPitch(c.Pitch + angle)
		c.updateCameraVectors()
	case PitchDown:
		c.setPitch(c.Pitch - angle)
		c.updateCameraVectors()
	case YawLeft:
		c.Yaw -= angle
		c.updateCameraVectors()
	case YawRight:
		c.Yaw += angle
		c.updateCameraVectors()
	case RollLeft:
		c.Roll -= angle
		c.updateCameraVectors()
	case RollRight:
		c.Roll += angle
		c.updateCameraVectors()
	}
}

// ProcessMouseLook turns the camera by pointer offsets in pixels, positive y
// looking up. The first call after construction or ResetMouse is swallowed:
// the cursor jumps when it is first captured.
func (c *Camera) ProcessMouseLook(xoffset, yoffset float32) {
	if c.firstMouse {
		c.firstMouse = false
		return
	}

	xoffset *= c.MouseSensitivity
	yoffset *= c.MouseSensitivity

	c.Yaw += xoffset
	if c.InvertMouse {
		c.setPitch(c.Pitch - yoffset)
	} else {
		c.setPitch(c.Pitch + yoffset)
	}
	c.updateCameraVectors()
}

// ProcessCursor converts an absolute cursor position into look offsets.
// Screen y grows downwards, so the y offset is reversed.
func (c *Camera) ProcessCursor(xpos, ypos float32) {
	if c.firstMouse {
		c.LastX = xpos
		c.LastY = ypos
	}

	xoffset := xpos - c.LastX
	yoffset := c.LastY - ypos
	c.LastX = xpos
	c.LastY = ypos

	c.ProcessMouseLook(xoffset, yoffset)
}

// ResetMouse re-arms the first-sample guard, e.g. after the pointer is
// captured again.
func (c *Camera) ResetMouse() {
	c.firstMouse = true
}

// ProcessScroll narrows or widens the field of view, always within
// [MinZoom, MaxZoom].
func (c *Camera) ProcessScroll(yoffset float32) {
	c.Zoom = mgl32.Clamp(c.Zoom-yoffset*c.ZoomScale, c.MinZoom, c.MaxZoom)
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProjectionFov returns the field of view in degrees.
func (c *Camera) ProjectionFov() float32 {
	return c.Zoom
}

func (c *Camera) GetProjectionMatrix(aspectRatio float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspectRatio, c.Near, c.Far)
}

func (c *Camera) setPitch(pitch float32) {
	if c.ConstrainPitch {
		pitch = mgl32.Clamp(pitch, -pitchLimit, pitchLimit)
	}
	c.Pitch = pitch
}

// updateCameraVectors rebuilds the basis. Yaw and pitch fix Front; roll only
// spins Right and Up around it.
func (c *Camera) updateCameraVectors() {
	yawRad := float64(mgl32.DegToRad(c.Yaw))
	pitchRad := float64(mgl32.DegToRad(c.Pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
	c.Front = front.Normalize()

	right := c.Front.Cross(c.WorldUp)
	if right.Len() < 1e-6 {
		// Looking straight along WorldUp: Right comes from yaw alone so the
		// basis stays a function of yaw, pitch and roll.
		right = mgl32.Vec3{float32(-math.Sin(yawRad)), 0, float32(math.Cos(yawRad))}
	}
	c.Right = right.Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()

	if c.Roll != 0 {
		roll := mgl32.QuatRotate(mgl32.DegToRad(c.Roll), c.Front)
		c.Right = roll.Rotate(c.Right).Normalize()
		c.Up = roll.Rotate(c.Up).Normalize()
	}
}

// LookAtCamera is a fixed eye looking at a fixed target.
type LookAtCamera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
}

func NewLookAtCamera(eye, target, up mgl32.Vec3) *LookAtCamera {
	return &LookAtCamera{Eye: eye, Target: target, Up: up}
}

func (l *LookAtCamera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(l.Eye, l.Target, l.Up)
}

var (
	_ Viewpoint = (*Camera)(nil)
	_ Viewpoint = (*LookAtCamera)(nil)
)
