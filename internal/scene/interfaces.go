package scene

import (
	"StillLife3D/internal/meshes"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms is the subset of the shader program the scene writes to.
// *renderer.Shader satisfies it.
type Uniforms interface {
	SetMat4(name string, value mgl32.Mat4)
	SetVec4(name string, value mgl32.Vec4)
	SetVec3(name string, value mgl32.Vec3)
	SetVec2(name string, value mgl32.Vec2)
	SetFloat(name string, value float32)
	SetInt(name string, value int32)
	SetBool(name string, value bool)
	SetSampler2D(name string, unit int32)
}

// MeshLibrary draws primitive meshes. *meshes.ShapeMeshes satisfies it.
type MeshLibrary interface {
	LoadMesh(kind meshes.Kind) error
	DrawMesh(kind meshes.Kind)
	Loaded(kind meshes.Kind) bool
	Release()
}
