package scene

import (
	"StillLife3D/internal/meshes"

	"github.com/go-gl/mathgl/mgl32"
)

// Object is one draw call of the scene script. Rotation holds X, Y and Z
// angles in degrees. An empty Texture draws the object with Color instead.
type Object struct {
	Name     string
	Mesh     meshes.Kind
	Scale    mgl32.Vec3
	Rotation mgl32.Vec3
	Position mgl32.Vec3
	UVScale  mgl32.Vec2
	Texture  string
	Material string
	Color    mgl32.Vec4
}

type Group struct {
	Name    string
	Objects []Object
}

// Script is the ordered list of groups drawn every frame.
type Script struct {
	Groups []Group
}

// MeshKinds returns every mesh the script draws, once each, in order of
// first use.
func (s Script) MeshKinds() []meshes.Kind {
	seen := make(map[meshes.Kind]bool)
	var kinds []meshes.Kind
	for _, group := range s.Groups {
		for _, object := range group.Objects {
			if seen[object.Mesh] {
				continue
			}
			seen[object.Mesh] = true
			kinds = append(kinds, object.Mesh)
		}
	}
	return kinds
}

func (s Script) ObjectCount() int {
	n := 0
	for _, group := range s.Groups {
		n += len(group.Objects)
	}
	return n
}

// TextureFile maps an image under the asset directory to its lookup tag.
type TextureFile struct {
	Path string
	Tag  string
}
