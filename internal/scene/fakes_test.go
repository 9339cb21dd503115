package scene

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"StillLife3D/internal/meshes"
	"StillLife3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

type uniformWrite struct {
	name  string
	value any
}

// callLog is shared by the fakes of one fixture so tests can assert the order
// of uniform writes, texture uploads and mesh loads across all of them.
type callLog struct {
	entries []string
}

func (c *callLog) add(entry string) {
	if c != nil {
		c.entries = append(c.entries, entry)
	}
}

type recordingUniforms struct {
	writes  []uniformWrite
	last    map[string]any
	calls   *callLog
	onWrite func(name string)
}

func newRecordingUniforms() *recordingUniforms {
	return &recordingUniforms{last: make(map[string]any)}
}

func (u *recordingUniforms) record(name string, value any) {
	if u.onWrite != nil {
		u.onWrite(name)
	}
	u.calls.add("uniform:" + name)
	u.writes = append(u.writes, uniformWrite{name, value})
	u.last[name] = value
}

func (u *recordingUniforms) reset() {
	u.writes = nil
	u.last = make(map[string]any)
}

func (u *recordingUniforms) SetMat4(name string, value mgl32.Mat4) { u.record(name, value) }
func (u *recordingUniforms) SetVec4(name string, value mgl32.Vec4) { u.record(name, value) }
func (u *recordingUniforms) SetVec3(name string, value mgl32.Vec3) { u.record(name, value) }
func (u *recordingUniforms) SetVec2(name string, value mgl32.Vec2) { u.record(name, value) }
func (u *recordingUniforms) SetFloat(name string, value float32) { u.record(name, value) }
func (u *recordingUniforms) SetInt(name string, value int32) { u.record(name, value) }
func (u *recordingUniforms) SetBool(name string, value bool) { u.record(name, value) }
func (u *recordingUniforms) SetSampler2D(name string, unit int32) { u.record(name, unit) }

type recordingMeshes struct {
	loaded   []meshes.Kind
	drawn    []meshes.Kind
	released bool
	failKind *meshes.Kind
	calls    *callLog
}

func (m *recordingMeshes) LoadMesh(kind meshes.Kind) error {
	if m.failKind != nil && *m.failKind == kind {
		return meshes.ErrUnknownMesh
	}
	m.loaded = append(m.loaded, kind)
	m.calls.add("mesh:" + kind.String())
	return nil
}

func (m *recordingMeshes) DrawMesh(kind meshes.Kind) {
	m.drawn = append(m.drawn, kind)
}

func (m *recordingMeshes) Loaded(kind meshes.Kind) bool {
	for _, k := range m.loaded {
		if k == kind {
			return true
		}
	}
	return false
}

func (m *recordingMeshes) Release() {
	m.released = true
	m.loaded = nil
}

type fakeTextureDevice struct {
	next    uint32
	bound   map[int]uint32
	deleted []uint32
	calls   *callLog
}

func newFakeTextureDevice() *fakeTextureDevice {
	return &fakeTextureDevice{next: 10, bound: make(map[int]uint32)}
}

func (d *fakeTextureDevice) Upload(img *renderer.TextureImage) (uint32, error) {
	d.calls.add("upload")
	d.next++
	return d.next, nil
}

func (d *fakeTextureDevice) Bind(unit int, handle uint32) {
	d.calls.add(fmt.Sprintf("bind:%d", unit))
	d.bound[unit] = handle
}

func (d *fakeTextureDevice) Delete(handles []uint32) {
	d.deleted = append(d.deleted, handles...)
}

// writeSceneAssets writes a tiny opaque PNG under every scene texture name.
// Decoding sniffs the format, so the .jpg and .bmp names still load.
func writeSceneAssets(t *testing.T, skip ...string) string {
	t.Helper()
	dir := t.TempDir()

	skipped := make(map[string]bool)
	for _, s := range skip {
		skipped[s] = true
	}

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	for _, file := range StillLifeTextures() {
		if skipped[file.Path] {
			continue
		}
		f, err := os.Create(filepath.Join(dir, file.Path))
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, img))
		require.NoError(t, f.Close())
	}
	return dir
}

type fixture struct {
	calls    *callLog
	uniforms *recordingUniforms
	meshes   *recordingMeshes
	device   *fakeTextureDevice
	scene    *SceneManager
}

func newFixture(t *testing.T, skip ...string) *fixture {
	t.Helper()
	calls := &callLog{}
	f := &fixture{
		calls:    calls,
		uniforms: newRecordingUniforms(),
		meshes:   &recordingMeshes{calls: calls},
		device:   newFakeTextureDevice(),
	}
	f.uniforms.calls = calls
	f.device.calls = calls
	f.scene = NewSceneManager(f.uniforms, f.meshes, f.device, writeSceneAssets(t, skip...))
	return f
}
