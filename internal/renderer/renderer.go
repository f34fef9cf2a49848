package renderer

import (
	"RoomViewer/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Debug draws wireframes. DepthTestEnabled turns off depth testing when
// false, which shows draw order. Both are read by Init and Render.
var Debug bool = false
var DepthTestEnabled bool = true

// Frame is everything the renderer needs to draw one image.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Draws      []scene.DrawCommand
	ClearColor mgl32.Vec3
}

type Render interface {
	Init(width, height int32) error
	Upload(meshes map[scene.MeshID]scene.Mesh) error
	Render(frame *Frame)
	UpdateViewport(width, height int32)
	Cleanup()
}
