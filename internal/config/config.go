package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is read when no other path is given. A missing file is not an
// error; the defaults below are used instead.
const DefaultPath = "stilllife.toml"

type Config struct {
	Window WindowConfig `toml:"window"`
	Assets AssetsConfig `toml:"assets"`
	Camera CameraConfig `toml:"camera"`
	Render RenderConfig `toml:"render"`
	Log    LogConfig    `toml:"log"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
	// DarkTitleBar tints the title bar with the clear color. Windows only.
	DarkTitleBar bool `toml:"dark_title_bar"`
}

type AssetsConfig struct {
	// Dir is joined with every texture file name of the scene.
	Dir string `toml:"dir"`
}

type CameraConfig struct {
	Position [3]float32 `toml:"position"`
	Target   [3]float32 `toml:"target"`
	Fov      float32    `toml:"fov"`
	Near     float32    `toml:"near"`
	Far      float32    `toml:"far"`
}

type RenderConfig struct {
	ClearColor [3]float32 `toml:"clear_color"`
}

type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1000,
			Height: 800,
			Title:  "Still Life",
			VSync:  true,
		},
		Assets: AssetsConfig{Dir: "textures"},
		Camera: CameraConfig{
			Position: [3]float32{0, 5, 22},
			Target:   [3]float32{0, 1, 0},
			Fov:      45,
			Near:     0.1,
			Far:      100,
		},
		Render: RenderConfig{ClearColor: [3]float32{0, 0, 0}},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads path on top of Default. Keys that are absent keep their default
// value; unknown keys are rejected so typos do not go unnoticed.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		return fmt.Errorf("camera fov must be in (0, 180), got %v", c.Camera.Fov)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera clip planes must satisfy 0 < near < far, got near=%v far=%v", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.Position == c.Camera.Target {
		return errors.New("camera position and target must differ")
	}
	return nil
}
