package transform

import "github.com/go-gl/mathgl/mgl32"

// Pose is the placement of one drawable: translation, Euler rotation in
// degrees about X, Y and Z, and per-axis scale.
type Pose struct {
	Translate mgl32.Vec3
	Rotation  mgl32.Vec3
	Scale     mgl32.Vec3
}

// Identity returns a pose that leaves vertices where they are.
func Identity() Pose {
	return Pose{Scale: mgl32.Vec3{1, 1, 1}}
}

// At is a shorthand for an unrotated pose.
func At(translate, scale mgl32.Vec3) Pose {
	return Pose{Translate: translate, Scale: scale}
}

// Matrix composes the pose into a model matrix.
func (p Pose) Matrix() mgl32.Mat4 {
	return Compose(p.Translate, p.Rotation, p.Scale)
}

// Rotated returns a copy of the pose with extra degrees added to each axis.
func (p Pose) Rotated(extra mgl32.Vec3) Pose {
	p.Rotation = p.Rotation.Add(extra)
	return p
}

// Compose builds T * Rx * Ry * Rz * S. Vertices are scaled first, then
// rotated about Z, Y and X, then translated. The order is fixed: every pose
// in the scene is authored against it.
func Compose(translate, rotation, scale mgl32.Vec3) mgl32.Mat4 {
	translateMatrix := mgl32.Translate3D(translate.X(), translate.Y(), translate.Z())
	rotateXMatrix := mgl32.HomogRotate3DX(mgl32.DegToRad(rotation.X()))
	rotateYMatrix := mgl32.HomogRotate3DY(mgl32.DegToRad(rotation.Y()))
	rotateZMatrix := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotation.Z()))
	scaleMatrix := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())

	return translateMatrix.Mul4(rotateXMatrix).Mul4(rotateYMatrix).Mul4(rotateZMatrix).Mul4(scaleMatrix)
}
