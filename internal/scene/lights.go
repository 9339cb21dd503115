package scene

import (
	"errors"
	"fmt"

	"StillLife3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrTooManyLights = errors.New("too many light sources")

type Light struct {
	Position          mgl32.Vec3
	AmbientColor      mgl32.Vec3
	DiffuseColor      mgl32.Vec3
	SpecularColor     mgl32.Vec3
	FocalStrength     float32
	SpecularIntensity float32
}

// applyLights writes every light plus the light count. Nothing is written
// when there are more lights than the shader supports.
func applyLights(uniforms Uniforms, lights []Light) error {
	if len(lights) > renderer.MaxLights {
		return fmt.Errorf("%w: %d (max %d)", ErrTooManyLights, len(lights), renderer.MaxLights)
	}
	for i, light := range lights {
		prefix := fmt.Sprintf("lightSources[%d].", i)
		uniforms.SetVec3(prefix+"position", light.Position)
		uniforms.SetVec3(prefix+"ambientColor", light.AmbientColor)
		uniforms.SetVec3(prefix+"diffuseColor", light.DiffuseColor)
		uniforms.SetVec3(prefix+"specularColor", light.SpecularColor)
		uniforms.SetFloat(prefix+"focalStrength", light.FocalStrength)
		uniforms.SetFloat(prefix+"specularIntensity", light.SpecularIntensity)
	}
	uniforms.SetInt(renderer.UniformLightCount, int32(len(lights)))
	return nil
}
