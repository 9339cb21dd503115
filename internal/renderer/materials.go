package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrDuplicateMaterial = errors.New("material tag already registered")

// Material is the set of lighting values the scene shader reads from its
// material uniform struct.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// MaterialRegistry is an ordered list of materials looked up by tag.
type MaterialRegistry struct {
	materials []Material
}

func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{}
}

func (mr *MaterialRegistry) AddMaterial(material Material) error {
	if mr.index(material.Tag) != -1 {
		return fmt.Errorf("%w: %q", ErrDuplicateMaterial, material.Tag)
	}
	mr.materials = append(mr.materials, material)
	return nil
}

// FindMaterial copies the material registered under tag into out and reports
// whether it was found. out is left untouched on a miss.
func (mr *MaterialRegistry) FindMaterial(tag string, out *Material) bool {
	i := mr.index(tag)
	if i == -1 {
		return false
	}
	*out = mr.materials[i]
	return true
}

func (mr *MaterialRegistry) index(tag string) int {
	for i := range mr.materials {
		if mr.materials[i].Tag == tag {
			return i
		}
	}
	return -1
}

func (mr *MaterialRegistry) Len() int {
	return len(mr.materials)
}

func (mr *MaterialRegistry) Tags() []string {
	tags := make([]string, len(mr.materials))
	for i := range mr.materials {
		tags[i] = mr.materials[i].Tag
	}
	return tags
}

func (mr *MaterialRegistry) Clear() {
	mr.materials = nil
}
