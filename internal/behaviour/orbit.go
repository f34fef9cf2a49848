package behaviour

import (
	"RoomViewer/internal/camera"
	"RoomViewer/internal/logger"

	"go.uber.org/zap"
)

// Turner is the part of the camera AutoOrbit needs.
type Turner interface {
	ProcessMovement(direction camera.Direction, deltaTime float32)
}

// AutoOrbit keeps yawing the camera left while enabled, panning it around
// the room without input.
type AutoOrbit struct {
	target  Turner
	enabled bool
	paused  bool
}

func NewAutoOrbit(target Turner) *AutoOrbit {
	return &AutoOrbit{target: target}
}

func (o *AutoOrbit) Toggle() {
	o.enabled = !o.enabled
	logger.Log.Info("Auto orbit toggled", zap.Bool("enabled", o.enabled))
}

func (o *AutoOrbit) Enabled() bool {
	return o.enabled
}

// SetPaused holds the orbit without forgetting whether it is enabled.
func (o *AutoOrbit) SetPaused(paused bool) {
	o.paused = paused
}

func (o *AutoOrbit) Start() {}

func (o *AutoOrbit) Update(deltaTime float32) {
	if o.enabled && !o.paused {
		o.target.ProcessMovement(camera.YawLeft, deltaTime)
	}
}
