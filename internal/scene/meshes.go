package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type MeshID int

const (
	MeshFloor MeshID = iota
	MeshCeiling
	MeshWall
	MeshSideWall
	MeshBox
	MeshBox2
	MeshAC
	MeshFanHolder
	MeshFanPivot
	MeshFanBlade
	MeshGlass
	MeshCabinet
	MeshLampShade

	meshCount
)

var meshNames = [meshCount]string{
	MeshFloor:     "floor",
	MeshCeiling:   "ceiling",
	MeshWall:      "wall",
	MeshSideWall:  "side_wall",
	MeshBox:       "box",
	MeshBox2:      "box2",
	MeshAC:        "ac",
	MeshFanHolder: "fan_holder",
	MeshFanPivot:  "fan_pivot",
	MeshFanBlade:  "fan_blade",
	MeshGlass:     "glass",
	MeshCabinet:   "cabinet",
	MeshLampShade: "lamp_shade",
}

func (id MeshID) String() string {
	if id < 0 || id >= meshCount {
		return "unknown"
	}
	return meshNames[id]
}

// VertexStride is the number of floats per vertex: position then colour.
const VertexStride = 6

// Mesh is interleaved x,y,z,r,g,b vertices with triangle indices.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

func (m Mesh) VertexCount() int {
	return len(m.Vertices) / VertexStride
}

// Meshes returns freshly built geometry for every MeshID.
func Meshes() map[MeshID]Mesh {
	return map[MeshID]Mesh{
		MeshFloor:     colouredBox(mgl32.Vec3{0.69, 0.69, 0.69}),
		MeshCeiling:   colouredBox(mgl32.Vec3{0.95, 0.95, 0.95}),
		MeshWall:      colouredBox(mgl32.Vec3{0.92, 0.91, 0.83}),
		MeshSideWall:  colouredBox(mgl32.Vec3{0.99, 0.84, 0.70}),
		MeshBox:       colouredBox(mgl32.Vec3{0.647, 0.165, 0.165}),
		MeshBox2:      colouredBox(mgl32.Vec3{0.1, 0.714, 0.757}),
		MeshAC:        colouredBox(mgl32.Vec3{0.2, 0.2, 0.2}),
		MeshFanHolder: colouredBox(mgl32.Vec3{1, 1, 1}),
		MeshFanPivot:  colouredBox(mgl32.Vec3{0.44, 0.22, 0.05}),
		MeshFanBlade:  fanBlades(mgl32.Vec3{0, 0, 0.42}, 4),
		MeshGlass:     colouredBox(mgl32.Vec3{0.53, 0.8, 0.98}),
		MeshCabinet:   colouredBox(mgl32.Vec3{0.29, 0, 0.29}),
		MeshLampShade: lampShade(8),
	}
}

// boxCorners is a 0.5 cube anchored at the origin, four vertices per face so
// each face can be coloured independently.
var boxCorners = [24][3]float32{
	{0, 0, 0}, {0.5, 0, 0}, {0.5, 0.5, 0}, {0, 0.5, 0},
	{0.5, 0, 0}, {0.5, 0.5, 0}, {0.5, 0, 0.5}, {0.5, 0.5, 0.5},
	{0, 0, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0.5}, {0, 0.5, 0.5},
	{0, 0, 0.5}, {0, 0.5, 0.5}, {0, 0.5, 0}, {0, 0, 0},
	{0.5, 0.5, 0.5}, {0.5, 0.5, 0}, {0, 0.5, 0}, {0, 0.5, 0.5},
	{0, 0, 0}, {0.5, 0, 0}, {0.5, 0, 0.5}, {0, 0, 0.5},
}

var boxIndices = []uint32{
	0, 3, 2, 2, 1, 0,
	4, 5, 7, 7, 6, 4,
	8, 9, 10, 10, 11, 8,
	12, 13, 14, 14, 15, 12,
	16, 17, 18, 18, 19, 16,
	20, 21, 22, 22, 23, 20,
}

func colouredBox(colour mgl32.Vec3) Mesh {
	vertices := make([]float32, 0, len(boxCorners)*VertexStride)
	for _, c := range boxCorners {
		vertices = append(vertices, c[0], c[1], c[2], colour[0], colour[1], colour[2])
	}
	indices := make([]uint32, len(boxIndices))
	copy(indices, boxIndices)
	return Mesh{Vertices: vertices, Indices: indices}
}

// fanBlades builds n flat blades radiating from the origin in the XZ plane,
// so a rotation about Y spins them around the pivot.
func fanBlades(colour mgl32.Vec3, n int) Mesh {
	const (
		length    = 1.2
		halfWidth = 0.12
		thickness = 0.02
	)

	var mesh Mesh
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		along := mgl32.Vec3{float32(math.Cos(angle)), 0, float32(math.Sin(angle))}
		across := mgl32.Vec3{-along.Z(), 0, along.X()}

		base := uint32(mesh.VertexCount())
		for _, y := range []float32{0, -thickness} {
			for _, corner := range [][2]float32{{0.05, -halfWidth}, {length, -halfWidth}, {length, halfWidth}, {0.05, halfWidth}} {
				p := along.Mul(corner[0]).Add(across.Mul(corner[1]))
				mesh.Vertices = append(mesh.Vertices, p.X(), y, p.Z(), colour[0], colour[1], colour[2])
			}
		}
		mesh.Indices = append(mesh.Indices,
			base+0, base+1, base+2, base+2, base+3, base+0, // top
			base+4, base+7, base+6, base+6, base+5, base+4, // bottom
			base+0, base+4, base+5, base+5, base+1, base+0,
			base+1, base+5, base+6, base+6, base+2, base+1,
			base+2, base+6, base+7, base+7, base+3, base+2,
			base+3, base+7, base+4, base+4, base+0, base+3,
		)
	}
	return mesh
}

// lampShade is a truncated cone: a small ring at y=0.7 over a wider ring at
// y=-0.3, each with a centre vertex for its cap.
func lampShade(segments int) Mesh {
	var mesh Mesh
	rings := []struct {
		y, radius float32
	}{
		{0.70, 0.25},
		{-0.30, 0.5},
	}

	for _, ring := range rings {
		mesh.Vertices = append(mesh.Vertices, 0, ring.y, 0, 0, 0, 0)
		for i := 0; i < segments; i++ {
			angle := 2 * math.Pi * float64(i) / float64(segments)
			x := ring.radius * float32(math.Cos(angle))
			z := ring.radius * float32(math.Sin(angle))
			mesh.Vertices = append(mesh.Vertices, x, ring.y, z, 0, 1, 1)
		}
	}

	top, bottom := uint32(0), uint32(segments+1)
	s := uint32(segments)
	for i := uint32(0); i < s; i++ {
		next := (i + 1) % s
		mesh.Indices = append(mesh.Indices, top, top+1+i, top+1+next)
		mesh.Indices = append(mesh.Indices, bottom, bottom+1+i, bottom+1+next)
		mesh.Indices = append(mesh.Indices,
			top+1+i, bottom+1+i, top+1+next,
			bottom+1+i, bottom+1+next, top+1+next,
		)
	}
	return mesh
}
