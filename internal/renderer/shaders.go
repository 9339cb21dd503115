package renderer

import (
	"errors"
	"fmt"
	"strings"

	"StillLife3D/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// MaxLights must match MAX_LIGHTS in the fragment shader.
const MaxLights = 4

// Uniform names declared by the scene shader.
const (
	UniformModel        = "model"
	UniformView         = "view"
	UniformProjection   = "projection"
	UniformViewPosition = "viewPosition"
	UniformColor        = "objectColor"
	UniformTexture      = "objectTexture"
	UniformUseTexture   = "bUseTexture"
	UniformUseLighting  = "bUseLighting"
	UniformUVScale      = "UVscale"
	UniformLightCount   = "lightCount"
)

// =============================================================
//
//	Shaders
//
// =============================================================
type Shader struct {
	vertexSource   string
	fragmentSource string
	program        uint32
	uniforms       *UniformCache
}

// NewSceneShader returns the lit, textured shader used for every scene object.
// Compile must be called once a GL context is current.
func NewSceneShader() *Shader {
	return &Shader{
		vertexSource:   sceneVertexShaderSource,
		fragmentSource: sceneFragmentShaderSource,
		uniforms:       NewUniformCache(0),
	}
}

func (shader *Shader) Compile() error {
	vertexShader, err := GenShader(shader.vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return err
	}
	fragmentShader, err := GenShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return err
	}
	program, err := GenShaderProgram(vertexShader, fragmentShader)
	if err != nil {
		return err
	}

	shader.program = program
	shader.uniforms.Reset(program)
	logger.Log.Info("Shader program linked", zap.Uint32("program", program))
	return nil
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) Delete() {
	if shader.program == 0 {
		return
	}
	gl.DeleteProgram(shader.program)
	shader.program = 0
	shader.uniforms.Clear()
}

func (shader *Shader) SetMat4(name string, value mgl32.Mat4) {
	shader.uniforms.SetMat4(name, value)
}

func (shader *Shader) SetVec4(name string, value mgl32.Vec4) {
	shader.uniforms.SetVec4(name, value)
}

func (shader *Shader) SetVec3(name string, value mgl32.Vec3) {
	shader.uniforms.SetVec3(name, value)
}

func (shader *Shader) SetVec2(name string, value mgl32.Vec2) {
	shader.uniforms.SetVec2(name, value)
}

func (shader *Shader) SetFloat(name string, value float32) {
	shader.uniforms.SetFloat(name, value)
}

func (shader *Shader) SetInt(name string, value int32) {
	shader.uniforms.SetInt(name, value)
}

func (shader *Shader) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	shader.uniforms.SetInt(name, v)
}

// SetSampler2D points a sampler uniform at a texture unit.
func (shader *Shader) SetSampler2D(name string, unit int32) {
	shader.uniforms.SetInt(name, unit)
}

func GenShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("compile %s shader: %s", shaderTypeName(shaderType), strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func GenShaderProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, errors.New("link shader program: " + strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

func shaderTypeName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("type %d", shaderType)
}

var sceneVertexShaderSource = `#version 330 core

layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec2 inTexCoord;
layout(location = 2) in vec3 inNormal;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 fragmentPosition;
out vec3 fragmentNormal;
out vec2 fragmentTexCoord;

void main() {
    vec4 worldPosition = model * vec4(inPosition, 1.0);

    fragmentPosition = vec3(worldPosition);
    // objects use non-uniform scales, so normals need the inverse transpose
    fragmentNormal = mat3(transpose(inverse(model))) * inNormal;
    fragmentTexCoord = inTexCoord;

    gl_Position = projection * view * worldPosition;
}
`

var sceneFragmentShaderSource = `#version 330 core
#define MAX_LIGHTS 4

struct Material {
    vec3 ambientColor;
    float ambientStrength;
    vec3 diffuseColor;
    vec3 specularColor;
    float shininess;
};

struct LightSource {
    vec3 position;
    vec3 ambientColor;
    vec3 diffuseColor;
    vec3 specularColor;
    float focalStrength;
    float specularIntensity;
};

in vec3 fragmentPosition;
in vec3 fragmentNormal;
in vec2 fragmentTexCoord;

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec2 UVscale;
uniform vec3 viewPosition;
uniform Material material;
uniform LightSource lightSources[MAX_LIGHTS];
uniform int lightCount;

out vec4 outFragmentColor;

vec3 calcLightSource(LightSource light, vec3 normal, vec3 viewDirection) {
    vec3 ambient = light.ambientColor + material.ambientStrength * material.ambientColor;

    vec3 lightDirection = normalize(light.position - fragmentPosition);
    float impact = max(dot(normal, lightDirection), 0.0);
    vec3 diffuse = impact * light.diffuseColor * (vec3(1.0) - material.ambientStrength + material.diffuseColor) * 0.5;

    vec3 reflectDirection = reflect(-lightDirection, normal);
    float exponent = max(light.focalStrength, material.shininess);
    float specularComponent = pow(max(dot(viewDirection, reflectDirection), 0.0), exponent);
    vec3 specular = light.specularIntensity * specularComponent * light.specularColor * material.specularColor;

    return ambient + diffuse + specular;
}

void main() {
    vec4 baseColor = objectColor;
    if (bUseTexture) {
        baseColor = texture(objectTexture, fragmentTexCoord * UVscale);
    }

    if (!bUseLighting) {
        outFragmentColor = baseColor;
        return;
    }

    vec3 normal = normalize(fragmentNormal);
    vec3 viewDirection = normalize(viewPosition - fragmentPosition);

    vec3 lighting = vec3(0.0);
    for (int i = 0; i < lightCount && i < MAX_LIGHTS; i++) {
        lighting += calcLightSource(lightSources[i], normal, viewDirection);
    }

    outFragmentColor = vec4(lighting * baseColor.rgb, baseColor.a);
}
`
