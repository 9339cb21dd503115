package engine

import (
	"fmt"
	"runtime"

	"StillLife3D/internal/config"
	"StillLife3D/internal/logger"
	"StillLife3D/internal/meshes"
	"StillLife3D/internal/renderer"
	"StillLife3D/internal/scene"

	mgl "github.com/go-gl/mathgl/mgl32"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Engine owns the window, the GL context and the scene. Everything runs on
// the goroutine that calls Run.
type Engine struct {
	cfg    config.Config
	window *glfw.Window
	shader *renderer.Shader
	scene  *scene.SceneManager
	Camera *renderer.Camera

	width, height int32
	teardown      Unwind
}

func New(cfg config.Config) *Engine {
	return &Engine{
		cfg:    cfg,
		width:  int32(cfg.Window.Width),
		height: int32(cfg.Window.Height),
	}
}

// Run opens the window, prepares the scene and renders until the window is
// closed. Resources are released in reverse order on return.
func (e *Engine) Run() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer e.teardown.Unwind()

	if err := e.openWindow(); err != nil {
		return err
	}
	if err := e.initScene(); err != nil {
		return err
	}

	e.renderLoop()
	logger.Log.Info("Window closed, shutting down")
	return nil
}

func (e *Engine) openWindow() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}
	e.teardown.Add(glfw.Terminate)

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(e.width), int(e.height), e.cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	e.window = window
	e.teardown.Add(window.Destroy)

	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialize OpenGL: %w", err)
	}

	if e.cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	clearColor := mgl.Vec3(e.cfg.Render.ClearColor)
	if e.cfg.Window.DarkTitleBar {
		applyDarkTitleBar(window, clearColor)
	}

	logger.Log.Info("OpenGL context ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.Int32("width", e.width),
		zap.Int32("height", e.height))

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(clearColor.X(), clearColor.Y(), clearColor.Z(), 1.0)
	return nil
}

func (e *Engine) initScene() error {
	e.shader = renderer.NewSceneShader()
	if err := e.shader.Compile(); err != nil {
		return err
	}
	e.teardown.Add(e.shader.Delete)
	e.shader.Use()

	cam := e.cfg.Camera
	e.Camera = renderer.NewCamera(mgl.Vec3(cam.Position), mgl.Vec3(cam.Target), cam.Fov, cam.Near, cam.Far, e.width, e.height)
	e.updateViewport()

	e.scene = scene.NewSceneManager(e.shader, meshes.NewShapeMeshes(), renderer.GLTextureDevice{}, e.cfg.Assets.Dir)
	e.teardown.Add(e.scene.Close)

	// a partly prepared scene still renders; missing textures fall back to flat color
	if err := e.scene.PrepareScene(); err != nil {
		logger.Log.Warn("Scene prepared with errors", zap.Error(err))
	}
	e.scene.Textures().LogStats()
	logger.Log.Info("Scene ready",
		zap.Int("objects", e.scene.Script().ObjectCount()),
		zap.Int("materials", e.scene.Materials().Len()))
	return nil
}

// updateViewport matches the viewport and camera aspect to the framebuffer,
// which differs from the window size on high-DPI displays.
func (e *Engine) updateViewport() {
	fbWidth, fbHeight := e.window.GetFramebufferSize()
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	e.Camera.Resize(int32(fbWidth), int32(fbHeight))
}

func (e *Engine) renderLoop() {
	lastWidth, lastHeight := e.window.GetFramebufferSize()

	for !e.window.ShouldClose() {
		// Update viewport and camera aspect ratio if the framebuffer size changed
		if width, height := e.window.GetFramebufferSize(); width != lastWidth || height != lastHeight {
			e.updateViewport()
			lastWidth, lastHeight = width, height
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		e.shader.Use()
		e.shader.SetMat4(renderer.UniformView, e.Camera.GetViewMatrix())
		e.shader.SetMat4(renderer.UniformProjection, e.Camera.GetProjectionMatrix())
		e.shader.SetVec3(renderer.UniformViewPosition, e.Camera.Position)

		e.scene.RenderScene()

		e.window.SwapBuffers()
		glfw.PollEvents()
	}
}
