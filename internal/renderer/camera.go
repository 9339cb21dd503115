// camera.go
package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a fixed viewpoint looking at a target. The scene has no input
// handling, so only the projection changes after construction (on resize).
type Camera struct {
	Position   mgl32.Vec3 // Camera position in world space
	Front      mgl32.Vec3 // Normalized direction towards Target
	Up         mgl32.Vec3 // Up direction vector
	Right      mgl32.Vec3 // Right direction vector
	Projection mgl32.Mat4 // Projection matrix

	Target      mgl32.Vec3
	WorldUp     mgl32.Vec3 // World up vector (usually (0,1,0))
	Fov         float32    // Field of view, degrees
	Near        float32    // Near clipping plane
	Far         float32    // Far clipping plane
	AspectRatio float32    // Screen aspect ratio (width / height)
}

func NewCamera(position, target mgl32.Vec3, fov, near, far float32, width, height int32) *Camera {
	camera := Camera{
		Position:    position,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Fov:         fov,
		Near:        near,
		Far:         far,
		AspectRatio: aspectRatio(width, height),
	}
	camera.LookAt(target)
	camera.UpdateProjection()
	return &camera
}

func aspectRatio(width, height int32) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

func (c *Camera) SetAspectRatio(aspectRatio float32) {
	c.AspectRatio = aspectRatio
	c.UpdateProjection()
}

// Resize updates the aspect ratio from a framebuffer size. A minimized window
// reports 0x0 and is ignored.
func (c *Camera) Resize(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	c.SetAspectRatio(aspectRatio(width, height))
}

// LookAt re-aims the camera without moving it.
func (c *Camera) LookAt(target mgl32.Vec3) {
	c.Target = target
	c.updateCameraVectors()
}

func (c *Camera) GetViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.GetViewMatrix())
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return c.Projection
}

func (c *Camera) updateCameraVectors() {
	front := c.Target.Sub(c.Position)
	if front.Len() < 1e-6 {
		front = mgl32.Vec3{0, 0, -1}
	}
	c.Front = front.Normalize()

	right := c.Front.Cross(c.WorldUp)
	if right.Len() < 1e-6 {
		// looking straight along WorldUp
		right = mgl32.Vec3{1, 0, 0}
	}
	c.Right = right.Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
