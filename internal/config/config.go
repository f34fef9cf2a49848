package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"RoomViewer/internal/camera"
	"RoomViewer/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type WindowConfig struct {
	Width  int32  `json:"width"`
	Height int32  `json:"height"`
	Title  string `json:"title"`
}

type CameraConfig struct {
	Position         mgl32.Vec3 `json:"position"`
	Yaw              float32    `json:"yaw"`
	Pitch            float32    `json:"pitch"`
	Roll             float32    `json:"roll"`
	MovementSpeed    float32    `json:"movement_speed"`
	MouseSensitivity float32    `json:"mouse_sensitivity"`
	TurnSpeed        float32    `json:"turn_speed"`
	Zoom             float32    `json:"zoom"`
	ZoomScale        float32    `json:"zoom_scale"`
	MinZoom          float32    `json:"min_zoom"`
	MaxZoom          float32    `json:"max_zoom"`
	Near             float32    `json:"near"`
	Far              float32    `json:"far"`
	ConstrainPitch   bool       `json:"constrain_pitch"`
	InvertMouse      bool       `json:"invert_mouse"`
}

type OverviewConfig struct {
	Eye    mgl32.Vec3 `json:"eye"`
	Target mgl32.Vec3 `json:"target"`
	Up     mgl32.Vec3 `json:"up"`
}

type FanConfig struct {
	Step int `json:"step"`
}

type Config struct {
	Window        WindowConfig      `json:"window"`
	Camera        CameraConfig      `json:"camera"`
	Overview      OverviewConfig    `json:"overview"`
	Fan           FanConfig         `json:"fan"`
	SceneRotation mgl32.Vec3        `json:"scene_rotation"`
	ClearColor    mgl32.Vec3        `json:"clear_color"`
	Bindings      map[string]string `json:"bindings"`
	Debug         bool              `json:"debug"`
	DepthTest     bool              `json:"depth_test"`
}

// DefaultBindings maps action names to key names.
func DefaultBindings() map[string]string {
	return map[string]string{
		"forward":      "W",
		"backward":     "S",
		"left":         "A",
		"right":        "D",
		"up":           "E",
		"down":         "R",
		"pitch_up":     "X",
		"pitch_down":   "C",
		"yaw_left":     "Y",
		"yaw_right":    "V",
		"roll_left":    "Z",
		"roll_right":   "Q",
		"toggle_fan":   "G",
		"toggle_orbit": "F",
		"toggle_view":  "B",
		"quit":         "ESCAPE",
	}
}

func Default() Config {
	opts := camera.DefaultOptions()
	return Config{
		Window: WindowConfig{Width: 800, Height: 600, Title: "Room Viewer"},
		Camera: CameraConfig{
			Position:         mgl32.Vec3{-1, 2.5, 3},
			Yaw:              opts.Yaw,
			Pitch:            opts.Pitch,
			Roll:             opts.Roll,
			MovementSpeed:    opts.MovementSpeed,
			MouseSensitivity: opts.MouseSensitivity,
			TurnSpeed:        opts.TurnSpeed,
			Zoom:             opts.Zoom,
			ZoomScale:        opts.ZoomScale,
			MinZoom:          opts.MinZoom,
			MaxZoom:          opts.MaxZoom,
			Near:             opts.Near,
			Far:              opts.Far,
		},
		Overview: OverviewConfig{
			Eye:    mgl32.Vec3{0, 1, 3},
			Target: mgl32.Vec3{0, 0, 0},
			Up:     mgl32.Vec3{0, 1, 0},
		},
		Fan:        FanConfig{Step: 5},
		ClearColor: mgl32.Vec3{0.2, 0.3, 0.3},
		Bindings:   DefaultBindings(),
		DepthTest:  true,
	}
}

// Load reads a JSON file over the defaults. An empty path returns the
// defaults unchanged. Bindings in the file are merged into the default set;
// an empty key name unbinds the action.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	bindings := cfg.Bindings
	cfg.Bindings = nil
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	for action, key := range cfg.Bindings {
		bindings[action] = key
	}
	cfg.Bindings = bindings

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	cam := c.Camera
	if cam.MinZoom <= 0 || cam.MinZoom > cam.MaxZoom || cam.MaxZoom >= 180 {
		return fmt.Errorf("%w: zoom bounds [%g, %g]", ErrInvalid, cam.MinZoom, cam.MaxZoom)
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		return fmt.Errorf("%w: clip planes near=%g far=%g", ErrInvalid, cam.Near, cam.Far)
	}
	if cam.MovementSpeed < 0 || cam.TurnSpeed < 0 || cam.MouseSensitivity < 0 {
		return fmt.Errorf("%w: camera speeds must not be negative", ErrInvalid)
	}
	if c.Fan.Step < 0 {
		return fmt.Errorf("%w: fan step %d", ErrInvalid, c.Fan.Step)
	}
	if c.Overview.Eye.ApproxEqual(c.Overview.Target) {
		return fmt.Errorf("%w: overview eye and target coincide", ErrInvalid)
	}
	for name, key := range c.Bindings {
		if _, err := input.ParseAction(name); err != nil {
			return fmt.Errorf("%w: binding: %v", ErrInvalid, err)
		}
		if key != strings.TrimSpace(key) {
			return fmt.Errorf("%w: binding %q has surrounding spaces in %q", ErrInvalid, name, key)
		}
	}
	return nil
}

// CameraOptions converts the camera section for camera.NewCamera.
func (c Config) CameraOptions() camera.Options {
	cam := c.Camera
	return camera.Options{
		Yaw:              cam.Yaw,
		Pitch:            cam.Pitch,
		Roll:             cam.Roll,
		MovementSpeed:    cam.MovementSpeed,
		MouseSensitivity: cam.MouseSensitivity,
		TurnSpeed:        cam.TurnSpeed,
		Zoom:             cam.Zoom,
		ZoomScale:        cam.ZoomScale,
		MinZoom:          cam.MinZoom,
		MaxZoom:          cam.MaxZoom,
		Near:             cam.Near,
		Far:              cam.Far,
		ConstrainPitch:   cam.ConstrainPitch,
		InvertMouse:      cam.InvertMouse,
	}
}
