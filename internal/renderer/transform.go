package renderer

import "github.com/go-gl/mathgl/mgl32"

// ModelTransform builds the model matrix for one draw call:
// translation * rotationX * rotationY * rotationZ * scale, angles in degrees.
// Vertices are therefore scaled first, then rotated about Z, Y and X, then moved.
func ModelTransform(scale mgl32.Vec3, xDegrees, yDegrees, zDegrees float32, position mgl32.Vec3) mgl32.Mat4 {
	scaleMatrix := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	rotationX := mgl32.HomogRotate3DX(mgl32.DegToRad(xDegrees))
	rotationY := mgl32.HomogRotate3DY(mgl32.DegToRad(yDegrees))
	rotationZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(zDegrees))
	translation := mgl32.Translate3D(position.X(), position.Y(), position.Z())

	return translation.Mul4(rotationX).Mul4(rotationY).Mul4(rotationZ).Mul4(scaleMatrix)
}
