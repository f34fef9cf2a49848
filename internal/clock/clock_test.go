package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	samples []float64
	i       int
}

func (f *fakeSource) now() float64 {
	v := f.samples[f.i]
	if f.i < len(f.samples)-1 {
		f.i++
	}
	return v
}

func TestTickReturnsDeltaSincePreviousTick(t *testing.T) {
	src := &fakeSource{samples: []float64{1.0, 1.5, 1.75, 2.75}}
	c := New(src.now)

	assert.InDelta(t, 0.5, c.Tick(), 1e-6)
	assert.InDelta(t, 0.25, c.Tick(), 1e-6)
	assert.InDelta(t, 1.0, c.Tick(), 1e-6)
	assert.InDelta(t, 1.0, c.Delta(), 1e-6)
	assert.Equal(t, 2.75, c.Elapsed())
}

func TestTickNeverNegative(t *testing.T) {
	src := &fakeSource{samples: []float64{5.0, 4.0, 6.0}}
	c := New(src.now)

	assert.Equal(t, float32(0), c.Tick(), "backwards step should be clamped")
	assert.InDelta(t, 1.0, c.Tick(), 1e-6, "delta should be measured from the clamped sample")
}

func TestElapsedStartsAtConstruction(t *testing.T) {
	src := &fakeSource{samples: []float64{3.0}}
	c := New(src.now)

	assert.Equal(t, 3.0, c.Elapsed())
	assert.Equal(t, float32(0), c.Delta())
}
