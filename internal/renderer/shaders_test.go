package renderer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSceneShaderNotCompiled(t *testing.T) {
	shader := NewSceneShader()

	assert.Zero(t, shader.program)
	assert.NotNil(t, shader.uniforms)
}

// The scene code writes these names; they must exist in the GLSL source or
// the writes are silently dropped by the driver.
func TestSceneShaderDeclaresSceneUniforms(t *testing.T) {
	source := sceneVertexShaderSource + sceneFragmentShaderSource

	for _, name := range []string{
		"uniform mat4 model;", "uniform mat4 view;", "uniform mat4 projection;",
		"uniform bool bUseTexture;", "uniform bool bUseLighting;",
		"uniform vec4 objectColor;", "uniform sampler2D objectTexture;",
		"uniform vec2 UVscale;", "uniform vec3 viewPosition;",
		"uniform Material material;", "uniform int lightCount;",
		"float ambientStrength;", "float shininess;",
		"float focalStrength;", "float specularIntensity;",
	} {
		assert.Contains(t, source, name)
	}
	assert.True(t, strings.Contains(sceneFragmentShaderSource, fmt.Sprintf("#define MAX_LIGHTS %d", MaxLights)))
}
