package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const matrixEpsilon = 1e-5

// vec3Near and mat4Near compare component-wise with an absolute tolerance.
func vec3Near(a, b mgl32.Vec3) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > matrixEpsilon {
			return false
		}
	}
	return true
}

func mat4Near(a, b mgl32.Mat4) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > matrixEpsilon {
			return false
		}
	}
	return true
}

func TestModelTransformComposition(t *testing.T) {
	scale := mgl32.Vec3{2.5, 2.5, 10.0}
	position := mgl32.Vec3{4, 3, 0}

	got := ModelTransform(scale, 90, 0, 0, position)

	want := mgl32.Translate3D(4, 3, 0).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(90), mgl32.Vec3{1, 0, 0})).
		Mul4(mgl32.HomogRotate3D(0, mgl32.Vec3{0, 1, 0})).
		Mul4(mgl32.HomogRotate3D(0, mgl32.Vec3{0, 0, 1})).
		Mul4(mgl32.Scale3D(2.5, 2.5, 10))

	assert.True(t, mat4Near(got, want), "got %v want %v", got, want)
}

func TestModelTransformAppliesScaleRotateTranslate(t *testing.T) {
	m := ModelTransform(mgl32.Vec3{2.5, 2.5, 10.0}, 90, 0, 0, mgl32.Vec3{4, 3, 0})

	p := m.Mul4x1(mgl32.Vec4{1, 1, 1, 1}).Vec3()

	// (1,1,1) scaled -> (2.5,2.5,10), rotated 90 about X -> (2.5,-10,2.5), moved by (4,3,0)
	assert.True(t, vec3Near(p, mgl32.Vec3{6.5, -7, 2.5}), "got %v", p)
}

func TestModelTransformRotationOrder(t *testing.T) {
	// X is applied last, so rotating Z then X differs from the reverse.
	m := ModelTransform(mgl32.Vec3{1, 1, 1}, 90, 0, 90, mgl32.Vec3{})
	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()

	// Z 90: (1,0,0) -> (0,1,0); X 90: (0,1,0) -> (0,0,1)
	assert.True(t, vec3Near(p, mgl32.Vec3{0, 0, 1}), "got %v", p)
}

func TestModelTransformIdentity(t *testing.T) {
	m := ModelTransform(mgl32.Vec3{1, 1, 1}, 0, 0, 0, mgl32.Vec3{})
	assert.True(t, mat4Near(m, mgl32.Ident4()), "got %v", m)
}

func TestModelTransformNearZeroComponents(t *testing.T) {
	// cos(90°) in float32 leaves ~4e-8 where the exact result is 0
	m := ModelTransform(mgl32.Vec3{1, 1, 1}, 90, 0, 90, mgl32.Vec3{})
	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()

	assert.InDelta(t, 0, p.X(), matrixEpsilon)
	assert.InDelta(t, 0, p.Y(), matrixEpsilon)
	assert.InDelta(t, 1, p.Z(), matrixEpsilon)
	assert.True(t, vec3Near(p, mgl32.Vec3{0, 0, 1}))
	assert.False(t, vec3Near(p, mgl32.Vec3{0, 0.001, 1}))
}
