package scene

import (
	"path/filepath"

	"StillLife3D/internal/logger"
	"StillLife3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// DefaultObjectColor is drawn when an object has no usable texture and no
// color of its own.
var DefaultObjectColor = mgl32.Vec4{0.8, 0.8, 0.8, 1}

// SceneManager prepares the still-life scene and plays it back each frame.
type SceneManager struct {
	uniforms  Uniforms
	meshes    MeshLibrary
	textures  *renderer.TextureRegistry
	materials *renderer.MaterialRegistry
	assetDir  string

	script        Script
	textureFiles  []TextureFile
	materialDefs  []renderer.Material
	lights        []Light
	missingLogged map[string]bool
}

func NewSceneManager(uniforms Uniforms, meshes MeshLibrary, device renderer.TextureDevice, assetDir string) *SceneManager {
	return &SceneManager{
		uniforms:      uniforms,
		meshes:        meshes,
		textures:      renderer.NewTextureRegistry(device, renderer.MaxTextureSlots),
		materials:     renderer.NewMaterialRegistry(),
		assetDir:      assetDir,
		script:        StillLifeScript(),
		textureFiles:  StillLifeTextures(),
		materialDefs:  StillLifeMaterials(),
		lights:        StillLifeLights(),
		missingLogged: make(map[string]bool),
	}
}

func (sm *SceneManager) Textures() *renderer.TextureRegistry {
	return sm.textures
}

func (sm *SceneManager) Materials() *renderer.MaterialRegistry {
	return sm.materials
}

func (sm *SceneManager) Script() Script {
	return sm.script
}

// PrepareScene defines materials, sets up lights, loads textures and loads
// every mesh the script draws, in that order. A failing step does not stop
// the ones after it; the returned error combines every failure.
func (sm *SceneManager) PrepareScene() error {
	return multierr.Combine(
		sm.DefineObjectMaterials(),
		sm.SetupSceneLights(),
		sm.LoadSceneTextures(),
		sm.LoadSceneMeshes(),
	)
}

func (sm *SceneManager) DefineObjectMaterials() error {
	var err error
	for _, material := range sm.materialDefs {
		err = multierr.Append(err, sm.materials.AddMaterial(material))
	}
	return err
}

func (sm *SceneManager) SetupSceneLights() error {
	sm.uniforms.SetBool(renderer.UniformUseLighting, true)
	return applyLights(sm.uniforms, sm.lights)
}

// LoadSceneTextures loads every scene image and binds the loaded ones to
// their texture units. Images that fail are logged and skipped.
func (sm *SceneManager) LoadSceneTextures() error {
	var err error
	for _, file := range sm.textureFiles {
		path := filepath.Join(sm.assetDir, file.Path)
		if loadErr := sm.textures.CreateGLTexture(path, file.Tag); loadErr != nil {
			logger.Log.Error("Texture failed to load",
				zap.String("tag", file.Tag),
				zap.String("path", path),
				zap.Error(loadErr))
			err = multierr.Append(err, loadErr)
		}
	}
	sm.textures.BindGLTextures()
	return err
}

func (sm *SceneManager) LoadSceneMeshes() error {
	var err error
	for _, kind := range sm.script.MeshKinds() {
		err = multierr.Append(err, sm.meshes.LoadMesh(kind))
	}
	return err
}

// RenderScene draws every object of the script, group by group.
func (sm *SceneManager) RenderScene() {
	for _, group := range sm.script.Groups {
		for _, object := range group.Objects {
			sm.renderObject(object)
		}
	}
}

func (sm *SceneManager) renderObject(object Object) {
	if !sm.meshes.Loaded(object.Mesh) {
		sm.warnMissing("mesh", object.Mesh.String())
		return
	}

	color := object.Color
	if color == (mgl32.Vec4{}) {
		color = DefaultObjectColor
	}

	sm.SetTransformations(object.Scale, object.Rotation.X(), object.Rotation.Y(), object.Rotation.Z(), object.Position)
	sm.SetTextureUVScale(object.UVScale.X(), object.UVScale.Y())
	if object.Texture != "" {
		// fallback for a texture that failed to load
		sm.uniforms.SetVec4(renderer.UniformColor, color)
		sm.SetShaderTexture(object.Texture)
	} else {
		sm.SetShaderColor(color.X(), color.Y(), color.Z(), color.W())
	}
	if object.Material != "" {
		sm.SetShaderMaterial(object.Material)
	}
	sm.meshes.DrawMesh(object.Mesh)
}

func (sm *SceneManager) SetTransformations(scale mgl32.Vec3, xDegrees, yDegrees, zDegrees float32, position mgl32.Vec3) {
	sm.uniforms.SetMat4(renderer.UniformModel, renderer.ModelTransform(scale, xDegrees, yDegrees, zDegrees, position))
}

func (sm *SceneManager) SetShaderColor(r, g, b, a float32) {
	sm.uniforms.SetBool(renderer.UniformUseTexture, false)
	sm.uniforms.SetVec4(renderer.UniformColor, mgl32.Vec4{r, g, b, a})
}

// SetShaderTexture samples the texture registered under tag. An unknown tag
// turns texturing off, so the next draw uses objectColor.
func (sm *SceneManager) SetShaderTexture(tag string) {
	slot := sm.textures.FindTextureSlot(tag)
	if slot < 0 {
		sm.warnMissing("texture", tag)
		sm.uniforms.SetBool(renderer.UniformUseTexture, false)
		return
	}
	sm.uniforms.SetBool(renderer.UniformUseTexture, true)
	sm.uniforms.SetSampler2D(renderer.UniformTexture, int32(slot))
}

func (sm *SceneManager) SetTextureUVScale(u, v float32) {
	sm.uniforms.SetVec2(renderer.UniformUVScale, mgl32.Vec2{u, v})
}

// SetShaderMaterial writes the material registered under tag. An unknown tag
// leaves the previous material in place.
func (sm *SceneManager) SetShaderMaterial(tag string) {
	var material renderer.Material
	if !sm.materials.FindMaterial(tag, &material) {
		sm.warnMissing("material", tag)
		return
	}
	sm.uniforms.SetVec3("material.ambientColor", material.AmbientColor)
	sm.uniforms.SetFloat("material.ambientStrength", material.AmbientStrength)
	sm.uniforms.SetVec3("material.diffuseColor", material.DiffuseColor)
	sm.uniforms.SetVec3("material.specularColor", material.SpecularColor)
	sm.uniforms.SetFloat("material.shininess", material.Shininess)
}

// warnMissing logs each missing tag once; RenderScene runs every frame.
func (sm *SceneManager) warnMissing(kind, tag string) {
	key := kind + ":" + tag
	if sm.missingLogged[key] {
		return
	}
	sm.missingLogged[key] = true
	logger.Log.Warn("Unknown "+kind+" tag", zap.String("tag", tag))
}

// Close releases textures and meshes and forgets the materials.
func (sm *SceneManager) Close() {
	sm.textures.DestroyGLTextures()
	sm.materials.Clear()
	sm.meshes.Release()
}
