package camera

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xlab/linmath"
)

const tolerance = 1e-4

func assertVecNear(t *testing.T, want, got mgl32.Vec3, msgAndArgs ...interface{}) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], tolerance, msgAndArgs...)
	}
}

func assertOrthonormal(t *testing.T, c *Camera) {
	t.Helper()
	assert.InDelta(t, 1, c.Front.Len(), tolerance, "front length")
	assert.InDelta(t, 1, c.Right.Len(), tolerance, "right length")
	assert.InDelta(t, 1, c.Up.Len(), tolerance, "up length")
	assert.InDelta(t, 0, c.Front.Dot(c.Right), tolerance, "front.right")
	assert.InDelta(t, 0, c.Front.Dot(c.Up), tolerance, "front.up")
	assert.InDelta(t, 0, c.Right.Dot(c.Up), tolerance, "right.up")
	// Right-handed with the eye looking down -Front.
	assertVecNear(t, c.Front.Mul(-1), c.Right.Cross(c.Up), "right x up")
}

func TestNewDefaultCamera(t *testing.T) {
	cam := NewDefaultCamera(mgl32.Vec3{-1, 2.5, 3})

	require.NotNil(t, cam)
	assert.Equal(t, mgl32.Vec3{-1, 2.5, 3}, cam.Position)
	assert.Equal(t, float32(-90), cam.Yaw)
	assert.Equal(t, float32(45), cam.Zoom)
	assertVecNear(t, mgl32.Vec3{0, 0, -1}, cam.Front)
	assertVecNear(t, mgl32.Vec3{1, 0, 0}, cam.Right)
	assertVecNear(t, mgl32.Vec3{0, 1, 0}, cam.Up)
	assertOrthonormal(t, cam)
}

func TestForwardMovesAlongFront(t *testing.T) {
	cam := NewDefaultCamera(mgl32.Vec3{-1, 2.5, 3})
	front := cam.Front

	cam.ProcessMovement(Forward, 0.1)

	assertVecNear(t, mgl32.Vec3{-1, 2.5, 2.75}, cam.Position)
	assert.InDelta(t, 0.25, cam.Position.Sub(mgl32.Vec3{-1, 2.5, 3}).Len(), tolerance)
	assert.Equal(t, front, cam.Front)
}

func TestTranslationsFollowBasis(t *testing.T) {
	opts := DefaultOptions()
	opts.Yaw, opts.Pitch, opts.Roll = 30, 20, 15

	cases := []struct {
		direction Direction
		axis      func(c *Camera) mgl32.Vec3
	}{
		{Forward, func(c *Camera) mgl32.Vec3 { return c.Front }},
		{Backward, func(c *Camera) mgl32.Vec3 { return c.Front.Mul(-1) }},
		{Left, func(c *Camera) mgl32.Vec3 { return c.Right.Mul(-1) }},
		{Right, func(c *Camera) mgl32.Vec3 { return c.Right }},
		{Up, func(c *Camera) mgl32.Vec3 { return c.Up }},
		{Down, func(c *Camera) mgl32.Vec3 { return c.Up.Mul(-1) }},
	}

	for _, tc := range cases {
		t.Run(tc.direction.String(), func(t *testing.T) {
			cam := NewCamera(mgl32.Vec3{1, 2, 3}, opts)
			start := cam.Position
			front, right, up := cam.Front, cam.Right, cam.Up
			yaw, pitch, roll := cam.Yaw, cam.Pitch, cam.Roll

			cam.ProcessMovement(tc.direction, 0.2)

			moved := cam.Position.Sub(start)
			assertVecNear(t, tc.axis(cam).Mul(cam.MovementSpeed*0.2), moved)
			assert.InDelta(t, 0.5, moved.Len(), tolerance)

			assert.Equal(t, front, cam.Front)
			assert.Equal(t, right, cam.Right)
			assert.Equal(t, up, cam.Up)
			assert.Equal(t, yaw, cam.Yaw)
			assert.Equal(t, pitch, cam.Pitch)
			assert.Equal(t, roll, cam.Roll)
		})
	}
}

func TestRotationsLeavePositionAlone(t *testing.T) {
	for d := PitchUp; d <= RollRight; d++ {
		cam := NewDefaultCamera(mgl32.Vec3{-1, 2.5, 3})
		cam.ProcessMovement(d, 0.5)

		assert.Equal(t, mgl32.Vec3{-1, 2.5, 3}, cam.Position, d.String())
		assert.False(t, d.Translational(), d.String())
		assertOrthonormal(t, cam)
	}
}

func TestRotationSigns(t *testing.T) {
	cam := NewDefaultCamera(mgl32.Vec3{})
	cam.ProcessMovement(YawLeft, 0.5)
	assert.Less(t, cam.Front.X(), float32(0), "yaw left should turn towards -X")

	cam = NewDefaultCamera(mgl32.Vec3{})
	cam.ProcessMovement(PitchUp, 0.5)
	assert.Greater(t, cam.Front.Y(), float32(0), "pitch up should raise Front")

	cam = NewDefaultCamera(mgl32.Vec3{})
	cam.ProcessMovement(RollRight, 0.5)
	assert.Less(t, cam.Right.Y(), float32(0), "roll right should dip Right")
}

func TestRollNeverMovesFront(t *testing.T) {
	opts := DefaultOptions()
	opts.Yaw, opts.Pitch = 10, -35
	cam := NewCamera(mgl32.Vec3{}, opts)
	front := cam.Front

	for i := 0; i < 10; i++ {
		cam.ProcessMovement(RollLeft, 0.3)
		assertVecNear(t, front, cam.Front)
		assertOrthonormal(t, cam)
	}
}

func TestBasisStaysOrthonormal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cam := NewDefaultCamera(mgl32.Vec3{-1, 2.5, 3})

	for i := 0; i < 500; i++ {
		if rng.Intn(4) == 0 {
			cam.ProcessMouseLook(float32(rng.NormFloat64()*200), float32(rng.NormFloat64()*200))
		} else {
			d := Direction(int(PitchUp) + rng.Intn(int(RollRight-PitchUp)+1))
			cam.ProcessMovement(d, rng.Float32())
		}
		assertOrthonormal(t, cam)
	}
}

func TestStraightUpKeepsBasis(t *testing.T) {
	cam := NewDefaultCamera(mgl32.Vec3{})
	cam.TurnSpeed = 90

	cam.ProcessMovement(PitchUp, 1)

	assert.Equal(t, float32(90), cam.Pitch)
	assertVecNear(t, mgl32.Vec3{0, 1, 0}, cam.Front)
	assertOrthonormal(t, cam)
	assertVecNear(t, mgl32.Vec3{1, 0, 0}, cam.Right, "right should follow yaw")
}

func TestStraightUpRollAppliedOnce(t *testing.T) {
	for _, pitch := range []float32{90, 90.00003, -90} {
		opts := DefaultOptions()
		opts.Pitch = pitch
		opts.Roll = 30
		cam := NewCamera(mgl32.Vec3{}, opts)
		right, up := cam.Right, cam.Up

		for i := 0; i < 3; i++ {
			cam.ProcessMovement(YawLeft, 0)
			assertVecNear(t, right, cam.Right, "pitch %v update %d", pitch, i)
			assertVecNear(t, up, cam.Up, "pitch %v update %d", pitch, i)
		}
		assertOrthonormal(t, cam)
	}
}

func TestStraightUpRollMatchesQuaternion(t *testing.T) {
	opts := DefaultOptions()
	opts.Pitch = 90
	opts.Roll = 30

	cam := NewCamera(mgl32.Vec3{}, opts)

	assertVecNear(t, mgl32.Vec3{0.8660254, 0, -0.5}, cam.Right)
}

func TestStraightUpFollowsYaw(t *testing.T) {
	opts := DefaultOptions()
	opts.Pitch = 90
	cam := NewCamera(mgl32.Vec3{}, opts)
	cam.TurnSpeed = 90

	cam.ProcessMovement(YawRight, 1)

	assert.Equal(t, float32(0), cam.Yaw)
	assertVecNear(t, mgl32.Vec3{0, 0, 1}, cam.Right)
	assertOrthonormal(t, cam)
}

func TestPitchUnclampedByDefault(t *testing.T) {
	cam := NewDefaultCamera(mgl32.Vec3{})

	for i := 0; i < 4; i++ {
		cam.ProcessMovement(PitchUp, 1)
	}

	assert.Equal(t, float32(240), cam.Pitch)
	assertOrthonormal(t, cam)
}

func TestConstrainPitch(t *testing.T) {
	opts := DefaultOptions()
	opts.ConstrainPitch = true
	cam := NewCamera(mgl32.Vec3{}, opts)
	cam.ResetMouse()
	cam.ProcessMouseLook(0, 0)

	cam.ProcessMouseLook(0, 5000)
	assert.Equal(t, float32(89), cam.Pitch)

	cam.ProcessMovement(PitchDown, 100)
	assert.Equal(t, float32(-89), cam.Pitch)
}

func TestFirstMouseLookIgnored(t *testing.T) {
	cam := NewDefaultCamera(mgl32.Vec3{})
	yaw, pitch, front := cam.Yaw, cam.Pitch, cam.Front

	cam.ProcessMouseLook(800, -600)

	assert.Equal(t, yaw, cam.Yaw)
	assert.Equal(t, pitch, cam.Pitch)
	assert.Equal(t, front, cam.Front)

	cam.ProcessMouseLook(10, 20)
	assert.InDelta(t, -89, cam.Yaw, tolerance)
	assert.InDelta(t, 2, cam.Pitch, tolerance)

	cam.ResetMouse()
	cam.ProcessMouseLook(500, 500)
	assert.InDelta(t, -89, cam.Yaw, tolerance, "re-armed sample should be ignored too")
	assert.InDelta(t, 2, cam.Pitch, tolerance)
}

func TestInvertMouse(t *testing.T) {
	cam := NewDefaultCamera(mgl32.Vec3{})
	cam.InvertMouse = true
	cam.ProcessMouseLook(0, 0)

	cam.ProcessMouseLook(0, 10)

	assert.InDelta(t, -1, cam.Pitch, tolerance)
}

func TestProcessCursorSeedsFromFirstSample(t *testing.T) {
	cam := NewDefaultCamera(mgl32.Vec3{})

	cam.ProcessCursor(1000, 900)
	assert.Equal(t, float32(-90), cam.Yaw)
	assert.Equal(t, float32(1000), cam.LastX)
	assert.Equal(t, float32(900), cam.LastY)

	// Moving the cursor up the screen looks up.
	cam.ProcessCursor(1010, 880)
	assert.InDelta(t, -89, cam.Yaw, tolerance)
	assert.InDelta(t, 2, cam.Pitch, tolerance)
}

func TestProcessScrollClamps(t *testing.T) {
	cam := NewDefaultCamera(mgl32.Vec3{})

	cam.ProcessScroll(3)
	assert.Equal(t, float32(42), cam.Zoom)

	for i := 0; i < 100; i++ {
		cam.ProcessScroll(7)
		assert.GreaterOrEqual(t, cam.Zoom, cam.MinZoom)
	}
	assert.Equal(t, float32(1), cam.Zoom)

	cam.ProcessScroll(-1e6)
	assert.Equal(t, float32(45), cam.Zoom)
	assert.Equal(t, float32(45), cam.ProjectionFov())
}

func TestGetProjectionMatrixUsesZoom(t *testing.T) {
	cam := NewDefaultCamera(mgl32.Vec3{})
	cam.ProcessScroll(15)

	want := mgl32.Perspective(mgl32.DegToRad(30), 800.0/600.0, 0.1, 100)
	assert.True(t, cam.GetProjectionMatrix(800.0/600.0).ApproxEqual(want))
}

// toLinmath reorders a column-major mathgl matrix into linmath's column array.
func toLinmath(m mgl32.Mat4) linmath.Mat4x4 {
	var out linmath.Mat4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[i*4+j]
		}
	}
	return out
}

func TestViewMatrixMatchesLookAt(t *testing.T) {
	opts := DefaultOptions()
	opts.Yaw, opts.Pitch, opts.Roll = -60, 25, 30
	cam := NewCamera(mgl32.Vec3{-1, 2.5, 3}, opts)

	eye := linmath.Vec3{cam.Position[0], cam.Position[1], cam.Position[2]}
	target := cam.Position.Add(cam.Front)
	center := linmath.Vec3{target[0], target[1], target[2]}
	up := linmath.Vec3{cam.Up[0], cam.Up[1], cam.Up[2]}

	var want linmath.Mat4x4
	want.LookAt(&eye, &center, &up)

	got := toLinmath(cam.GetViewMatrix())
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, want[i][j], got[i][j], tolerance, "column %d row %d", i, j)
		}
	}
}

func TestViewMatrixMapsFrontToEyeSpace(t *testing.T) {
	opts := DefaultOptions()
	opts.Yaw, opts.Pitch = 40, -10
	cam := NewCamera(mgl32.Vec3{4, 1, -2}, opts)

	view := cam.GetViewMatrix()

	eye := view.Mul4x1(cam.Position.Vec4(1))
	assertVecNear(t, mgl32.Vec3{0, 0, 0}, eye.Vec3())

	ahead := view.Mul4x1(cam.Position.Add(cam.Front).Vec4(1))
	assertVecNear(t, mgl32.Vec3{0, 0, -1}, ahead.Vec3())
}

func TestLookAtCamera(t *testing.T) {
	var vp Viewpoint = NewLookAtCamera(mgl32.Vec3{0, 1, 3}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	view := vp.GetViewMatrix()

	assert.True(t, view.ApproxEqual(mgl32.LookAtV(mgl32.Vec3{0, 1, 3}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})))
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "roll_right", RollRight.String())
	assert.Equal(t, "unknown", Direction(99).String())
}
