package meshes

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the interleaved layout: position(3) uv(2) normal(3).
const FloatsPerVertex = 8

const (
	sphereSegments = 36
	sphereRings    = 18

	torusMajorRadius   = 1.0
	torusMinorRadius   = 0.2
	torusMajorSegments = 48
	torusMinorSegments = 24

	cylinderSegments  = 36
	cylinderTopRadius = 0.5
)

// Geometry is CPU-side mesh data ready for upload.
type Geometry struct {
	Vertices []float32
	Indices  []uint32
}

func (g *Geometry) VertexCount() int {
	return len(g.Vertices) / FloatsPerVertex
}

func (g *Geometry) addVertex(position mgl32.Vec3, uv mgl32.Vec2, normal mgl32.Vec3) uint32 {
	index := uint32(g.VertexCount())
	g.Vertices = append(g.Vertices,
		position.X(), position.Y(), position.Z(),
		uv.X(), uv.Y(),
		normal.X(), normal.Y(), normal.Z(),
	)
	return index
}

func (g *Geometry) addTriangle(a, b, c uint32) {
	g.Indices = append(g.Indices, a, b, c)
}

// Generate builds the geometry for a primitive kind.
func Generate(kind Kind) (*Geometry, error) {
	switch kind {
	case Plane:
		return GeneratePlane(), nil
	case Box:
		return GenerateBox(), nil
	case Sphere:
		return GenerateSphere(sphereSegments, sphereRings), nil
	case Torus:
		return GenerateTorus(torusMajorRadius, torusMinorRadius, torusMajorSegments, torusMinorSegments, 2*math.Pi), nil
	case HalfTorus:
		return GenerateTorus(torusMajorRadius, torusMinorRadius, torusMajorSegments/2, torusMinorSegments, math.Pi), nil
	case TaperedCylinder:
		return GenerateTaperedCylinder(cylinderTopRadius, cylinderSegments), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownMesh, int(kind))
}

// GeneratePlane returns a single quad spanning -1..1 on X and Z, facing +Y.
func GeneratePlane() *Geometry {
	g := &Geometry{}
	up := mgl32.Vec3{0, 1, 0}

	a := g.addVertex(mgl32.Vec3{-1, 0, -1}, mgl32.Vec2{0, 1}, up)
	b := g.addVertex(mgl32.Vec3{-1, 0, 1}, mgl32.Vec2{0, 0}, up)
	c := g.addVertex(mgl32.Vec3{1, 0, 1}, mgl32.Vec2{1, 0}, up)
	d := g.addVertex(mgl32.Vec3{1, 0, -1}, mgl32.Vec2{1, 1}, up)

	g.addTriangle(a, b, c)
	g.addTriangle(a, c, d)
	return g
}

// GenerateBox returns a unit cube centred on the origin with per-face normals
// so each face carries its own full texture.
func GenerateBox() *Geometry {
	g := &Geometry{}

	faces := []struct {
		normal, u, v mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	}

	for _, face := range faces {
		center := face.normal.Mul(0.5)
		u := face.u.Mul(0.5)
		v := face.v.Mul(0.5)

		a := g.addVertex(center.Sub(u).Sub(v), mgl32.Vec2{0, 0}, face.normal)
		b := g.addVertex(center.Add(u).Sub(v), mgl32.Vec2{1, 0}, face.normal)
		c := g.addVertex(center.Add(u).Add(v), mgl32.Vec2{1, 1}, face.normal)
		d := g.addVertex(center.Sub(u).Add(v), mgl32.Vec2{0, 1}, face.normal)

		g.addTriangle(a, b, c)
		g.addTriangle(a, c, d)
	}
	return g
}

// GenerateSphere returns a UV sphere of radius 1.
func GenerateSphere(segments, rings int) *Geometry {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	g := &Geometry{}
	for ring := 0; ring <= rings; ring++ {
		phi := float64(ring) * math.Pi / float64(rings)
		sinPhi := float32(math.Sin(phi))
		cosPhi := float32(math.Cos(phi))

		for seg := 0; seg <= segments; seg++ {
			theta := float64(seg) * 2.0 * math.Pi / float64(segments)
			sinTheta := float32(math.Sin(theta))
			cosTheta := float32(math.Cos(theta))

			normal := mgl32.Vec3{sinPhi * cosTheta, cosPhi, sinPhi * sinTheta}
			uv := mgl32.Vec2{float32(seg) / float32(segments), 1 - float32(ring)/float32(rings)}
			g.addVertex(normal, uv, normal)
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)

			g.addTriangle(current, next, current+1)
			g.addTriangle(current+1, next, next+1)
		}
	}
	return g
}

// GenerateTorus sweeps a tube of minorRadius around the Z axis at majorRadius,
// so the ring lies in the XY plane. sweep is the swept angle in radians: 2π
// for a closed ring, π for the upper half.
func GenerateTorus(majorRadius, minorRadius float32, majorSegments, minorSegments int, sweep float64) *Geometry {
	if majorSegments < 3 {
		majorSegments = 3
	}
	if minorSegments < 3 {
		minorSegments = 3
	}

	g := &Geometry{}
	for i := 0; i <= majorSegments; i++ {
		theta := float64(i) * sweep / float64(majorSegments)
		cosTheta := float32(math.Cos(theta))
		sinTheta := float32(math.Sin(theta))

		for j := 0; j <= minorSegments; j++ {
			phi := float64(j) * 2.0 * math.Pi / float64(minorSegments)
			cosPhi := float32(math.Cos(phi))
			sinPhi := float32(math.Sin(phi))

			ring := majorRadius + minorRadius*cosPhi
			position := mgl32.Vec3{ring * cosTheta, ring * sinTheta, minorRadius * sinPhi}
			normal := mgl32.Vec3{cosPhi * cosTheta, cosPhi * sinTheta, sinPhi}.Normalize()
			uv := mgl32.Vec2{float32(i) / float32(majorSegments), float32(j) / float32(minorSegments)}

			g.addVertex(position, uv, normal)
		}
	}

	for i := 0; i < majorSegments; i++ {
		for j := 0; j < minorSegments; j++ {
			current := uint32(i*(minorSegments+1) + j)
			next := uint32((i+1)*(minorSegments+1) + j)

			g.addTriangle(current, next, current+1)
			g.addTriangle(current+1, next, next+1)
		}
	}
	return g
}

// GenerateTaperedCylinder returns a capped cylinder standing on y=0 with a
// base radius of 1 narrowing to topRadius at y=1.
func GenerateTaperedCylinder(topRadius float32, segments int) *Geometry {
	if segments < 3 {
		segments = 3
	}

	g := &Geometry{}

	// side wall normals tilt upwards by the slope of the taper
	slope := 1 - topRadius
	for i := 0; i <= segments; i++ {
		theta := float64(i) * 2.0 * math.Pi / float64(segments)
		cosT := float32(math.Cos(theta))
		sinT := float32(math.Sin(theta))
		u := float32(i) / float32(segments)
		normal := mgl32.Vec3{cosT, slope, sinT}.Normalize()

		g.addVertex(mgl32.Vec3{cosT, 0, sinT}, mgl32.Vec2{u, 0}, normal)
		g.addVertex(mgl32.Vec3{cosT * topRadius, 1, sinT * topRadius}, mgl32.Vec2{u, 1}, normal)
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		g.addTriangle(base, base+1, base+2)
		g.addTriangle(base+2, base+1, base+3)
	}

	g.addCap(topRadius, 1, mgl32.Vec3{0, 1, 0}, segments)
	g.addCap(1, 0, mgl32.Vec3{0, -1, 0}, segments)
	return g
}

func (g *Geometry) addCap(radius, y float32, normal mgl32.Vec3, segments int) {
	center := g.addVertex(mgl32.Vec3{0, y, 0}, mgl32.Vec2{0.5, 0.5}, normal)
	for i := 0; i <= segments; i++ {
		theta := float64(i) * 2.0 * math.Pi / float64(segments)
		cosT := float32(math.Cos(theta))
		sinT := float32(math.Sin(theta))
		g.addVertex(mgl32.Vec3{cosT * radius, y, sinT * radius}, mgl32.Vec2{cosT*0.5 + 0.5, sinT*0.5 + 0.5}, normal)
	}
	for i := 0; i < segments; i++ {
		a := center + 1 + uint32(i)
		if normal.Y() > 0 {
			g.addTriangle(center, a+1, a)
		} else {
			g.addTriangle(center, a, a+1)
		}
	}
}
