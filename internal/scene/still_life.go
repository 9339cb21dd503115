package scene

import (
	"StillLife3D/internal/meshes"
	"StillLife3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

func gray(v float32) mgl32.Vec3 {
	return mgl32.Vec3{v, v, v}
}

func StillLifeMaterials() []renderer.Material {
	return []renderer.Material{
		{
			Tag:             "silver",
			AmbientColor:    gray(0.09225),
			AmbientStrength: 0.1,
			DiffuseColor:    gray(0.40754),
			SpecularColor:   gray(0.408273),
			Shininess:       1.0,
		},
		{
			Tag:             "metal",
			AmbientColor:    gray(0.2),
			AmbientStrength: 0.3,
			DiffuseColor:    gray(0.2),
			SpecularColor:   gray(0.5),
			Shininess:       22.0,
		},
		{
			Tag:             "blackmetal",
			AmbientColor:    gray(0.02),
			AmbientStrength: 0.01,
			DiffuseColor:    gray(0.01),
			SpecularColor:   gray(0.01),
			Shininess:       0.01,
		},
		{
			Tag:             "bluewood",
			AmbientColor:    gray(0.01),
			AmbientStrength: 0.1,
			DiffuseColor:    mgl32.Vec3{0.1, 0.1, 0.2},
			SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.3},
			Shininess:       0.1,
		},
		{
			Tag:             "cheese",
			AmbientColor:    gray(0.01),
			AmbientStrength: 0.1,
			DiffuseColor:    gray(0.6),
			SpecularColor:   gray(0.1),
			Shininess:       0.3,
		},
		{
			Tag:             "turqoise",
			AmbientColor:    mgl32.Vec3{0.1, 0.18725, 0.1745},
			AmbientStrength: 0.2,
			DiffuseColor:    mgl32.Vec3{0.396, 0.74151, 0.69102},
			SpecularColor:   mgl32.Vec3{0.297254, 0.30829, 0.306678},
			Shininess:       0.1,
		},
	}
}

// StillLifeLights is a white key light high above the table and a soft blue
// fill in front that puts a highlight on the vase handle.
func StillLifeLights() []Light {
	return []Light{
		{
			Position:          mgl32.Vec3{0, 100, 0},
			AmbientColor:      gray(0.2),
			DiffuseColor:      gray(1.0),
			SpecularColor:     gray(0.8),
			FocalStrength:     25,
			SpecularIntensity: 0.9,
		},
		{
			Position:          mgl32.Vec3{-2, 0, 10},
			AmbientColor:      mgl32.Vec3{0.01, 0.01, 0.1},
			DiffuseColor:      mgl32.Vec3{0.5, 0.5, 1.0},
			SpecularColor:     mgl32.Vec3{0.05, 0.05, 1.0},
			FocalStrength:     1.5,
			SpecularIntensity: 0.9,
		},
	}
}

func StillLifeTextures() []TextureFile {
	return []TextureFile{
		{Path: "BackgroundTile.jpg", Tag: "background"},
		{Path: "PotGold.jpg", Tag: "pot"},
		{Path: "gold-seamless-texture.jpg", Tag: "gold"},
		{Path: "BlueRusticWood2.png", Tag: "rustic"},
		{Path: "melon.bmp", Tag: "melon"},
		{Path: "leaf.bmp", Tag: "leaf"},
		{Path: "knife_handle.jpg", Tag: "knife"},
	}
}

func leaf(name string, scale mgl32.Vec3, zDegrees float32, position mgl32.Vec3) Object {
	return Object{
		Name:     name,
		Mesh:     meshes.Sphere,
		Scale:    scale,
		Rotation: mgl32.Vec3{0, 0, zDegrees},
		Position: position,
		UVScale:  mgl32.Vec2{1, 1},
		Texture:  "leaf",
		Material: "turqoise",
	}
}

// StillLifeScript is the fixed scene: a tiled backdrop, a gold vase on a
// strapped wooden chest, a melon and a scatter of leaves.
func StillLifeScript() Script {
	smallLeaf := mgl32.Vec3{1.0, 0.6, 0.01}

	return Script{Groups: []Group{
		{Name: "backdrop", Objects: []Object{{
			Name:     "backdrop",
			Mesh:     meshes.Plane,
			Scale:    mgl32.Vec3{50, 1, 50},
			Rotation: mgl32.Vec3{90, 0, 0},
			Position: mgl32.Vec3{0, 0, -10},
			UVScale:  mgl32.Vec2{1, 1},
			Texture:  "background",
			Material: "turqoise",
		}}},
		{Name: "vase", Objects: []Object{
			{
				Name:     "vase body",
				Mesh:     meshes.Torus,
				Scale:    mgl32.Vec3{2.5, 2.5, 10},
				Rotation: mgl32.Vec3{90, 0, 0},
				Position: mgl32.Vec3{4, 3, 0},
				UVScale:  mgl32.Vec2{2.5, 2.5},
				Texture:  "pot",
				Material: "silver",
			},
			{
				Name:     "vase neck",
				Mesh:     meshes.TaperedCylinder,
				Scale:    mgl32.Vec3{2.5, 1.5, 2.5},
				Position: mgl32.Vec3{4, 5, 0},
				UVScale:  mgl32.Vec2{2.5, 0.5},
				Texture:  "pot",
				Material: "silver",
			},
			{
				Name:     "vase handle",
				Mesh:     meshes.HalfTorus,
				Scale:    mgl32.Vec3{2.8, 3.5, 0.5},
				Rotation: mgl32.Vec3{130, 35, 40},
				Position: mgl32.Vec3{3.8, 5.3, 0.5},
				UVScale:  mgl32.Vec2{2.5, 0.5},
				Texture:  "gold",
				Material: "metal",
			},
		}},
		{Name: "chest", Objects: []Object{
			{
				Name:     "chest",
				Mesh:     meshes.Box,
				Scale:    mgl32.Vec3{24, 12, 8},
				Position: mgl32.Vec3{0, -5, 0},
				UVScale:  mgl32.Vec2{1, 1},
				Texture:  "rustic",
				Material: "bluewood",
			},
			{
				Name:     "left strap",
				Mesh:     meshes.Box,
				Scale:    mgl32.Vec3{0.8, 11.8, 0.5},
				Position: mgl32.Vec3{-6, -5, 4},
				UVScale:  mgl32.Vec2{1, 1},
				Texture:  "knife",
				Material: "blackmetal",
			},
			{
				Name:     "right strap",
				Mesh:     meshes.Box,
				Scale:    mgl32.Vec3{0.8, 11.8, 0.5},
				Position: mgl32.Vec3{6, -5, 4},
				UVScale:  mgl32.Vec2{1, 1},
				Texture:  "knife",
				Material: "blackmetal",
			},
		}},
		{Name: "melon", Objects: []Object{{
			Name:     "melon",
			Mesh:     meshes.Sphere,
			Scale:    mgl32.Vec3{3.5, 2.5, 2.5},
			Rotation: mgl32.Vec3{-70, 0, -40},
			Position: mgl32.Vec3{-3, 3.5, -2},
			UVScale:  mgl32.Vec2{1, 1},
			Texture:  "melon",
			Material: "cheese",
		}}},
		{Name: "leaves", Objects: []Object{
			leaf("leaf 1", mgl32.Vec3{1.3, 0.8, 0.01}, 0, mgl32.Vec3{-7.5, 2, 0.7}),
			leaf("leaf 2", smallLeaf, -5, mgl32.Vec3{-5, 2, 0.7}),
			leaf("leaf 3", smallLeaf, 75, mgl32.Vec3{-6.1, 3, 0.7}),
			leaf("leaf 4", smallLeaf, -25, mgl32.Vec3{-0.5, 1.7, 2}),
			leaf("leaf 5", smallLeaf, 75, mgl32.Vec3{1, 1.7, 2}),
			leaf("leaf 6", smallLeaf, 25, mgl32.Vec3{5.3, 5.7, 2.3}),
			leaf("leaf 7", smallLeaf, -75, mgl32.Vec3{6.3, 1.7, 2.6}),
			leaf("leaf 8", smallLeaf, 55, mgl32.Vec3{7.8, 1.7, 2.5}),
		}},
	}}
}
