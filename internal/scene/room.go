package scene

import (
	"RoomViewer/internal/transform"

	"github.com/go-gl/mathgl/mgl32"
)

// Object is one draw: which mesh, where it goes, and whether the fan phase
// is added to its Y rotation.
type Object struct {
	Name  string
	Mesh  MeshID
	Pose  transform.Pose
	Spins bool
}

// Scene is a static list of objects plus an optional scene-wide rotation
// applied on top of every pose.
type Scene struct {
	Objects  []Object
	Rotation mgl32.Vec3
}

// DrawCommand is what the renderer consumes: a mesh and its model matrix.
type DrawCommand struct {
	Mesh  MeshID
	Model mgl32.Mat4
}

// Frame composes one model matrix per object, appending to dst so callers
// can reuse the backing array between frames.
func (s *Scene) Frame(fanAngle float32, dst []DrawCommand) []DrawCommand {
	spin := mgl32.Vec3{0, fanAngle, 0}
	for _, obj := range s.Objects {
		pose := obj.Pose.Rotated(s.Rotation)
		if obj.Spins {
			pose = pose.Rotated(spin)
		}
		dst = append(dst, DrawCommand{Mesh: obj.Mesh, Model: pose.Matrix()})
	}
	return dst
}

func place(name string, mesh MeshID, tx, ty, tz, sx, sy, sz float32) Object {
	return Object{
		Name: name,
		Mesh: mesh,
		Pose: transform.At(mgl32.Vec3{tx, ty, tz}, mgl32.Vec3{sx, sy, sz}),
	}
}

// Room returns the bedroom. Meshes are 0.5 cubes anchored at a corner, so a
// scale of 20 spans 10 units; negative scales extend from the wall inwards.
func Room() *Scene {
	return &Scene{Objects: []Object{
		place("floor", MeshFloor, 0, 0, 0, 20, 0.1, 20),
		place("ceiling", MeshCeiling, 0, 5, 0, 20, 0.1, 20),
		place("back wall", MeshWall, 0, 0, 0, 20, 10, 0.1),
		place("front wall", MeshWall, 0, 0, 10, 20, 10, 0.1),
		place("side wall", MeshSideWall, 10, 0, 0, 0.1, 10, 20),

		place("bed base", MeshBox, 10, 0, 3, -7, 1.5, 6),
		place("bed headboard", MeshBox, 10, 0, 3, -1, 3.5, 6),
		place("bed post left", MeshFanPivot, 10, 0, 2.95, -1, 3.5, 0.1),
		place("bed post right", MeshFanPivot, 10, 0, 6, -1, 3.5, 0.1),
		place("bed headboard top", MeshFanPivot, 10, 1.75, 2.95, -1, 0.1, 6.2),
		place("rug", MeshBox2, 6, 0, 3.75, -3, 0.2, 3),
		place("mattress", MeshWall, 9.5, 0.75, 3, -6, 0.5, 6),
		place("pillow left", MeshBox2, 9.5, 0.95, 3.25, -2, 0.2, 2),
		place("pillow right", MeshBox2, 9.5, 0.95, 4.75, -2, 0.2, 2),

		place("table top", MeshFanPivot, 10, 0.95, 7, -4, 0.5, 5),
		place("table leg 1", MeshBox, 8.25, 0, 7, -0.5, 2, 0.5),
		place("table leg 2", MeshBox, 10, 0, 7, -0.5, 2, 0.5),
		place("table leg 3", MeshBox, 8.25, 0, 9.25, -0.5, 2, 0.5),
		place("table leg 4", MeshBox, 10, 0, 9.25, -0.5, 2, 0.5),

		place("chair seat", MeshFanPivot, 8.75, 0.5, 7.75, -2, 0.5, 2),
		place("chair leg 1", MeshBox, 8, 0, 7.75, -0.25, 1, 0.25),
		place("chair leg 2", MeshBox, 8, 0, 8.6, -0.25, 1, 0.25),
		place("chair leg 3", MeshBox, 8.75, 0, 8.6, -0.25, 1, 0.25),
		place("chair leg 4", MeshBox, 8.75, 0, 7.78, -0.25, 1, 0.25),
		place("chair back post 1", MeshBox, 7.82, 0.75, 7.82, -0.15, 1.65, 0.15),
		place("chair back post 2", MeshBox, 7.82, 0.75, 8.6, -0.15, 1.65, 0.15),
		place("chair back", MeshFanPivot, 7.80, 1.75, 7.75, -0.15, -1.5, 2),

		place("ac", MeshAC, 10, 3, 4, -5, 2, 6),

		place("cabinet", MeshCabinet, 10, 0, 0, -6, 4, 2),
		place("cabinet shelf 1", MeshBox2, 10, 2, 0, -6.115, 0.15, 2.115),
		place("cabinet shelf 2", MeshBox2, 10, 1.5, 0, -6.115, 0.15, 2.115),
		place("cabinet shelf 3", MeshBox2, 10, 1, 0, -6.115, 0.15, 2.115),
		place("cabinet shelf 4", MeshBox2, 10, 0.5, 0, -6.115, 0.15, 2.115),
		place("cabinet shelf 5", MeshBox2, 10, 0, 0, -6.115, 0.15, 2.115),

		place("mirror frame", MeshBox, 10, 0.5, 1.45, -0.15, 5, 2.5),
		place("mirror", MeshFanHolder, 9.98, 0.62, 1.58, -0.17, 4.5, 2),

		place("window frame", MeshBox, 3, 1.5, 10, 7, 5, -0.15),
		place("window pane 1", MeshGlass, 3.15, 1.65, 10, 2, 4.5, -0.151),
		place("window pane 2", MeshGlass, 4.25, 1.65, 10, 2, 4.5, -0.151),
		place("window pane 3", MeshGlass, 5.35, 1.65, 10, 2, 4.5, -0.151),

		place("lamp shade", MeshLampShade, 6, 2, 0.5, 1, 1, 1),
		place("lamp stand", MeshFanPivot, 6, 0, 0.5, 0.15, 5, 0.15),
		place("lamp base", MeshFanPivot, 5.95, 0, 0.35, 0.6, 0.6, 0.6),

		place("fan holder", MeshFanHolder, 4.95, 3.45, 4.85, 0.6, 0.6, 0.6),
		place("fan rod", MeshFanPivot, 4.95, 3.5, 4.95, 0.15, 3, 0.15),
		{
			Name:  "fan blades",
			Mesh:  MeshFanBlade,
			Pose:  transform.At(mgl32.Vec3{5.1, 3.45, 5.0}, mgl32.Vec3{1, 1, 1}),
			Spins: true,
		},
	}}
}
