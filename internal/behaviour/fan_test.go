package behaviour

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFanStartsStopped(t *testing.T) {
	fan := NewFanAnimation(DefaultFanStep)

	assert.Equal(t, FanStopped, fan.State())
	assert.False(t, fan.Spinning())
	assert.Equal(t, 0, fan.Phase())

	fan.Tick()
	assert.Equal(t, 0, fan.Phase(), "stopped fan should not advance")
}

func TestFanSpinsByStepPerTick(t *testing.T) {
	fan := NewFanAnimation(5)

	fan.Toggle()
	assert.Equal(t, FanSpinning, fan.State())

	for i := 0; i < 17; i++ {
		fan.Tick()
	}
	assert.Equal(t, 17*5, fan.Phase())

	fan.Toggle()
	assert.Equal(t, FanStopped, fan.State())
	for i := 0; i < 10; i++ {
		fan.Tick()
	}
	assert.Equal(t, 17*5, fan.Phase(), "phase should freeze once stopped")

	fan.Toggle()
	fan.Tick()
	assert.Equal(t, 18*5, fan.Phase(), "phase resumes from where it stopped")
}

func TestFanUpdateIgnoresDeltaTime(t *testing.T) {
	fan := NewFanAnimation(5)
	fan.Toggle()

	fan.Update(0.001)
	fan.Update(2.5)

	assert.Equal(t, 10, fan.Phase())
}

func TestFanAngleWraps(t *testing.T) {
	fan := NewFanAnimation(5)
	fan.Toggle()
	for i := 0; i < 145; i++ {
		fan.Tick()
	}

	assert.Equal(t, 725, fan.Phase())
	assert.Equal(t, float32(5), fan.Angle())
}

func TestFanStateString(t *testing.T) {
	assert.Equal(t, "stopped", FanStopped.String())
	assert.Equal(t, "spinning", FanSpinning.String())
}
