package behaviour

import (
	"RoomViewer/internal/logger"

	"go.uber.org/zap"
)

type FanState int

const (
	FanStopped FanState = iota
	FanSpinning
)

func (s FanState) String() string {
	if s == FanSpinning {
		return "spinning"
	}
	return "stopped"
}

// DefaultFanStep is the number of degrees the blade turns per frame.
const DefaultFanStep = 5

// FanAnimation drives the ceiling fan blade. The phase advances by a fixed
// step once per frame while spinning, so the visible speed follows the frame
// rate. It is never reset or wrapped.
type FanAnimation struct {
	phase int
	step  int
	state FanState
}

func NewFanAnimation(step int) *FanAnimation {
	return &FanAnimation{step: step, state: FanStopped}
}

// Toggle flips between stopped and spinning.
func (f *FanAnimation) Toggle() {
	if f.state == FanStopped {
		f.state = FanSpinning
	} else {
		f.state = FanStopped
	}
	logger.Log.Info("Fan toggled", zap.Stringer("state", f.state), zap.Int("phase", f.phase))
}

func (f *FanAnimation) State() FanState {
	return f.state
}

func (f *FanAnimation) Spinning() bool {
	return f.state == FanSpinning
}

func (f *FanAnimation) Phase() int {
	return f.phase
}

// Tick advances one frame.
func (f *FanAnimation) Tick() {
	if f.state == FanSpinning {
		f.phase += f.step
	}
}

// Angle is the blade rotation in degrees. Only the phase modulo 360 matters
// once it reaches sine and cosine; reducing here keeps float32 precise.
func (f *FanAnimation) Angle() float32 {
	return float32(f.phase % 360)
}

func (f *FanAnimation) Start() {}

// Update ticks once per frame regardless of deltaTime.
func (f *FanAnimation) Update(float32) {
	f.Tick()
}
