package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newSceneCamera() *Camera {
	return NewCamera(mgl32.Vec3{0, 5, 22}, mgl32.Vec3{0, 1, 0}, 45, 0.1, 100, 800, 600)
}

func TestNewCamera(t *testing.T) {
	cam := newSceneCamera()

	if cam == nil {
		t.Fatal("NewCamera returned nil")
	}

	if cam.Position == (mgl32.Vec3{0, 0, 0}) {
		t.Error("Camera position should not be at origin")
	}

	if math.Abs(float64(cam.AspectRatio)-800.0/600.0) > 1e-5 {
		t.Errorf("Expected aspect 4/3, got %f", cam.AspectRatio)
	}
}

func TestCameraFrontPointsAtTarget(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, 45, 0.1, 100, 800, 600)

	if !vec3Near(cam.Front, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Expected front (0,0,-1), got %v", cam.Front)
	}
	if !vec3Near(cam.Right, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Expected right (1,0,0), got %v", cam.Right)
	}
	if !vec3Near(cam.Up, mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Expected up (0,1,0), got %v", cam.Up)
	}
}

func TestCameraGetViewMatrix(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, 45, 0.1, 100, 800, 600)

	view := cam.GetViewMatrix()

	if view.At(3, 3) != 1.0 {
		t.Error("View matrix should be valid (w component = 1)")
	}

	// the target ends up straight ahead on the -Z axis in view space
	p := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if math.Abs(float64(p.X())) > 1e-5 || math.Abs(float64(p.Y())) > 1e-5 || math.Abs(float64(p.Z()+5)) > 1e-5 {
		t.Errorf("Expected target at (0,0,-5) in view space, got %v", p)
	}
}

func TestCameraGetProjectionMatrix(t *testing.T) {
	cam := newSceneCamera()

	proj := cam.GetProjectionMatrix()

	if proj.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}
}

func TestCameraGetViewProjection(t *testing.T) {
	cam := newSceneCamera()

	vp := cam.GetViewProjection()

	zero := mgl32.Mat4{}
	if vp == zero {
		t.Error("ViewProjection should not be zero matrix")
	}
}

func TestCameraProjectionFromSettings(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, 60, 1, 50, 800, 400)

	want := mgl32.Perspective(mgl32.DegToRad(60), 2, 1, 50)
	if !mat4Near(cam.Projection, want) {
		t.Error("Projection does not match fov/near/far")
	}

	cam.SetAspectRatio(1)
	want = mgl32.Perspective(mgl32.DegToRad(60), 1, 1, 50)
	if !mat4Near(cam.Projection, want) {
		t.Error("SetAspectRatio should rebuild the projection")
	}
}

func TestCameraResize(t *testing.T) {
	cam := newSceneCamera()

	cam.Resize(1000, 500)
	if cam.AspectRatio != 2 {
		t.Errorf("Expected aspect 2, got %f", cam.AspectRatio)
	}

	cam.Resize(0, 0)
	if cam.AspectRatio != 2 {
		t.Error("Zero-size resize should be ignored")
	}
}

func TestCameraLookAtStraightDown(t *testing.T) {
	cam := newSceneCamera()
	cam.Position = mgl32.Vec3{0, 10, 0}

	cam.LookAt(mgl32.Vec3{0, 0, 0})

	for i, v := range []mgl32.Vec3{cam.Front, cam.Right, cam.Up} {
		for _, c := range v {
			if math.IsNaN(float64(c)) {
				t.Fatalf("vector %d contains NaN: %v", i, v)
			}
		}
	}
	if !vec3Near(cam.Front, mgl32.Vec3{0, -1, 0}) {
		t.Errorf("Expected front (0,-1,0), got %v", cam.Front)
	}
}
