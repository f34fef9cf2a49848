package engine

import (
	"fmt"
	"runtime"

	"RoomViewer/internal/behaviour"
	"RoomViewer/internal/camera"
	"RoomViewer/internal/clock"
	"RoomViewer/internal/config"
	"RoomViewer/internal/input"
	"RoomViewer/internal/logger"
	"RoomViewer/internal/renderer"
	"RoomViewer/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

func init() {
	// GLFW event handling and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

type Viewer struct {
	Width  int32
	Height int32

	cfg         config.Config
	window      *glfw.Window
	rendererAPI renderer.Render
	clock       *clock.Clock
	keymap      Keymap
	router      *input.Router
	behaviours  *behaviour.BehaviourManager
	fan         *behaviour.FanAnimation
	views       *ViewSwitch
	scene       *scene.Scene
	draws       []scene.DrawCommand
	teardown    renderer.Unwind
}

// NewViewer opens the window, builds the GL resources and wires input to the
// camera and animations. Nothing is left allocated when it returns an error.
func NewViewer(cfg config.Config) (*Viewer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	keymap, err := NewKeymap(cfg.Bindings)
	if err != nil {
		return nil, fmt.Errorf("resolving key bindings: %w", err)
	}

	v := &Viewer{
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		cfg:         cfg,
		rendererAPI: renderer.NewOpenGLRenderer(),
		keymap:      keymap,
		behaviours:  behaviour.NewBehaviourManager(),
	}
	renderer.Debug = cfg.Debug
	renderer.DepthTestEnabled = cfg.DepthTest

	var setup renderer.Unwind
	defer setup.Unwind()

	if err := glfw.Init(); err != nil {
		logger.Log.Error("Could not initialize glfw", zap.Error(err))
		return nil, fmt.Errorf("initializing glfw: %w", err)
	}
	setup.Add(glfw.Terminate)

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	v.window, err = glfw.CreateWindow(int(v.Width), int(v.Height), cfg.Window.Title, nil, nil)
	if err != nil {
		logger.Log.Error("Could not create glfw window", zap.Error(err))
		return nil, fmt.Errorf("creating window: %w", err)
	}
	setup.Add(v.window.Destroy)
	v.window.MakeContextCurrent()
	styleTitleBar(v.window, cfg.ClearColor)

	// The framebuffer can differ from the window size on high-DPI displays.
	fbWidth, fbHeight := v.window.GetFramebufferSize()
	v.Width, v.Height = int32(fbWidth), int32(fbHeight)

	if err := v.rendererAPI.Init(v.Width, v.Height); err != nil {
		return nil, err
	}
	setup.Add(v.rendererAPI.Cleanup)
	if err := v.rendererAPI.Upload(scene.Meshes()); err != nil {
		return nil, fmt.Errorf("uploading meshes: %w", err)
	}

	v.scene = scene.Room()
	v.scene.Rotation = cfg.SceneRotation
	v.draws = make([]scene.DrawCommand, 0, len(v.scene.Objects))

	free := camera.NewCamera(cfg.Camera.Position, cfg.CameraOptions())
	overview := camera.NewLookAtCamera(cfg.Overview.Eye, cfg.Overview.Target, cfg.Overview.Up)
	v.views = NewViewSwitch(free, overview)

	v.fan = behaviour.NewFanAnimation(cfg.Fan.Step)
	orbit := behaviour.NewAutoOrbit(free)
	v.behaviours.Add(v.fan)
	v.behaviours.Add(orbit)

	v.router = input.NewRouter(free)
	v.router.Bind(input.ToggleFan, v.fan)
	v.router.Bind(input.ToggleOrbit, orbit)
	v.router.Bind(input.ToggleView, v.views)

	// The free camera is frozen while the overview is on screen.
	v.views.OnChange(func(overview bool) {
		v.router.SetCameraEnabled(!overview)
		orbit.SetPaused(overview)
	})

	v.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	v.window.SetCursorPosCallback(v.cursorCallback)
	v.window.SetScrollCallback(v.scrollCallback)
	v.window.SetFramebufferSizeCallback(v.framebufferSizeCallback)
	v.window.SetFocusCallback(v.focusCallback)

	v.clock = clock.New(glfw.GetTime)

	v.teardown = append(v.teardown, setup...)
	setup.Discard()

	logger.Log.Info("Viewer ready",
		zap.Int32("width", v.Width),
		zap.Int32("height", v.Height),
		zap.Int("objects", len(v.scene.Objects)))
	return v, nil
}

// Run drives the render loop until the window is closed or Quit is pressed,
// then releases every resource NewViewer acquired.
func (v *Viewer) Run() error {
	defer v.Close()

	for !v.window.ShouldClose() {
		deltaTime := v.clock.Tick()

		keys := v.keymap.Poll(v.window)
		if v.router.Apply(keys, deltaTime) {
			logger.Log.Info("Quit requested")
			v.window.SetShouldClose(true)
		}

		v.behaviours.UpdateAll(deltaTime)

		v.draws = v.scene.Frame(v.fan.Angle(), v.draws[:0])
		frame := renderer.Frame{
			View:       v.views.Current().GetViewMatrix(),
			Projection: v.views.Projection(v.aspectRatio()),
			Draws:      v.draws,
			ClearColor: v.cfg.ClearColor,
		}
		v.rendererAPI.Render(&frame)

		v.window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// Close is safe to call more than once.
func (v *Viewer) Close() {
	if len(v.teardown) == 0 {
		return
	}
	v.teardown.Unwind()
	logger.Log.Info("Viewer shut down")
}

func (v *Viewer) aspectRatio() float32 {
	return aspectRatio(v.Width, v.Height)
}

// aspectRatio falls back to 1 while the window is minimised.
func aspectRatio(width, height int32) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

func (v *Viewer) cursorCallback(_ *glfw.Window, xpos, ypos float64) {
	v.router.CursorMoved(xpos, ypos)
}

func (v *Viewer) scrollCallback(_ *glfw.Window, _, yoff float64) {
	v.router.Scrolled(yoff)
}

func (v *Viewer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	v.Width, v.Height = int32(width), int32(height)
	v.rendererAPI.UpdateViewport(v.Width, v.Height)
	logger.Log.Debug("Viewport resized", zap.Int("width", width), zap.Int("height", height))
}

func (v *Viewer) focusCallback(_ *glfw.Window, focused bool) {
	if focused {
		v.router.Recapture()
	}
}

