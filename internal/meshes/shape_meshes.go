package meshes

import (
	"StillLife3D/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

type glMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// ShapeMeshes owns one vertex array per loaded primitive. All methods must be
// called on the goroutine that owns the GL context.
type ShapeMeshes struct {
	meshes map[Kind]*glMesh
	warned map[Kind]bool
}

func NewShapeMeshes() *ShapeMeshes {
	return &ShapeMeshes{
		meshes: make(map[Kind]*glMesh),
		warned: make(map[Kind]bool),
	}
}

// LoadMesh generates and uploads a primitive. Loading a kind twice is a no-op.
func (s *ShapeMeshes) LoadMesh(kind Kind) error {
	if _, ok := s.meshes[kind]; ok {
		return nil
	}
	geometry, err := Generate(kind)
	if err != nil {
		return err
	}

	mesh := &glMesh{indexCount: int32(len(geometry.Indices))}

	gl.GenVertexArrays(1, &mesh.vao)
	gl.BindVertexArray(mesh.vao)

	gl.GenBuffers(1, &mesh.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(geometry.Vertices)*4, gl.Ptr(geometry.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &mesh.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(geometry.Indices)*4, gl.Ptr(geometry.Indices), gl.STATIC_DRAW)

	stride := int32(FloatsPerVertex * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(5*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	s.meshes[kind] = mesh
	logger.Log.Debug("Mesh loaded",
		zap.Stringer("kind", kind),
		zap.Int("vertices", geometry.VertexCount()),
		zap.Int("indices", len(geometry.Indices)))
	return nil
}

func (s *ShapeMeshes) Loaded(kind Kind) bool {
	_, ok := s.meshes[kind]
	return ok
}

// DrawMesh issues the draw call for a loaded primitive. Unloaded kinds are
// skipped and logged once per kind.
func (s *ShapeMeshes) DrawMesh(kind Kind) {
	mesh, ok := s.meshes[kind]
	if !ok {
		if !s.warned[kind] {
			s.warned[kind] = true
			logger.Log.Warn("Draw of unloaded mesh skipped", zap.Stringer("kind", kind))
		}
		return
	}
	gl.BindVertexArray(mesh.vao)
	gl.DrawElements(gl.TRIANGLES, mesh.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (s *ShapeMeshes) Release() {
	for kind, mesh := range s.meshes {
		gl.DeleteVertexArrays(1, &mesh.vao)
		gl.DeleteBuffers(1, &mesh.vbo)
		gl.DeleteBuffers(1, &mesh.ebo)
		delete(s.meshes, kind)
	}
}
