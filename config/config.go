package config

import (
	"os"
	"path/filepath"

	"github.com/gorustyt/asr/common"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window *WindowConfig `yaml:"window"`
	Camera *CameraConfig `yaml:"camera"`
	Render *RenderConfig `yaml:"render"`
	Log    *LogConfig    `yaml:"log"`
	Assets *AssetsConfig `yaml:"assets"`
}

func NewConfig() *Config {
	c := &Config{
		Window: &WindowConfig{},
		Camera: &CameraConfig{},
		Render: &RenderConfig{},
		Log:    &LogConfig{},
		Assets: &AssetsConfig{},
	}
	c.Reset()
	return c
}

// restoreSections puts back the defaults of every section the YAML set to
// null, as an empty "window:" key does.
func (cfg *Config) restoreSections() {
	if cfg.Window == nil {
		cfg.Window = &WindowConfig{}
		cfg.Window.Reset()
	}
	if cfg.Camera == nil {
		cfg.Camera = &CameraConfig{}
		cfg.Camera.Reset()
	}
	if cfg.Render == nil {
		cfg.Render = &RenderConfig{}
		cfg.Render.Reset()
	}
	if cfg.Log == nil {
		cfg.Log = &LogConfig{}
		cfg.Log.Reset()
	}
	if cfg.Assets == nil {
		cfg.Assets = &AssetsConfig{}
		cfg.Assets.Reset()
	}
}

func (cfg *Config) Reset() {
	cfg.Window.Reset()
	cfg.Camera.Reset()
	cfg.Render.Reset()
	cfg.Log.Reset()
	cfg.Assets.Reset()
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value and a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	cfg.restoreSections()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating the parent directory if needed.
func (cfg *Config) Save(path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create config dir for %s", path)
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "write config %s", path)
}

func (cfg *Config) Validate() error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return errors.Errorf("window size %dx%d must be positive", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Camera.Near <= 0 || cfg.Camera.Far <= cfg.Camera.Near {
		return errors.Errorf("camera clip planes near=%v far=%v", cfg.Camera.Near, cfg.Camera.Far)
	}
	if cfg.Camera.FieldOfView <= 0 || cfg.Camera.FieldOfView >= 180 {
		return errors.Errorf("camera field of view %v out of (0, 180)", cfg.Camera.FieldOfView)
	}
	if !common.IsTexturingMode(cfg.Render.TexturingMode) {
		return errors.Errorf("unknown texturing mode %q", cfg.Render.TexturingMode)
	}
	return nil
}

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	VSync     bool   `yaml:"vsync"`
	Samples   int    `yaml:"samples"`
}

func (cfg *WindowConfig) Reset() {
	cfg.Title = "asr"
	cfg.Width = 500
	cfg.Height = 500
	cfg.Resizable = true
	cfg.VSync = true
	cfg.Samples = 4
}

// CameraConfig drives the fly camera of the 3D demos. Angles are in degrees,
// speeds in units (or degrees) per second.
type CameraConfig struct {
	FieldOfView float32    `yaml:"fov"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	Position    [3]float32 `yaml:"position"`
	MoveSpeed   float32    `yaml:"move_speed"`
	TurnSpeed   float32    `yaml:"turn_speed"`
}

func (cfg *CameraConfig) Reset() {
	cfg.FieldOfView = 65
	cfg.Near = 0.1
	cfg.Far = 100
	cfg.Position = [3]float32{0, 0, 1.5}
	cfg.MoveSpeed = 6
	cfg.TurnSpeed = 86
}

type RenderConfig struct {
	ClearColor    [4]float32 `yaml:"clear_color"`
	LineWidth     float32    `yaml:"line_width"`
	PointSize     float32    `yaml:"point_size"`
	DepthTest     bool       `yaml:"depth_test"`
	CullFaces     bool       `yaml:"cull_faces"`
	ShowEdges     bool       `yaml:"show_edges"`
	ShowPoints    bool       `yaml:"show_points"`
	TexturingMode string     `yaml:"texturing_mode"`
	// Depth bias applied to edge and point overlays.
	OverlayBias float32 `yaml:"overlay_bias"`
}

func (cfg *RenderConfig) Reset() {
	cfg.ClearColor = [4]float32{0, 0, 0, 1}
	cfg.LineWidth = 3
	cfg.PointSize = 10
	cfg.DepthTest = true
	cfg.CullFaces = true
	cfg.ShowEdges = true
	cfg.ShowPoints = true
	cfg.TexturingMode = common.TexturingModulation
	cfg.OverlayBias = 0.001
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

func (cfg *LogConfig) Reset() {
	cfg.Level = "info"
	cfg.File = ""
	cfg.MaxSizeMB = 10
	cfg.MaxBackups = 3
	cfg.MaxAgeDays = 7
	cfg.Compress = false
}

type AssetsConfig struct {
	Dir     string `yaml:"dir"`
	UVTest  string `yaml:"uv_test"`
	CubeMap string `yaml:"cube_map"`
}

func (cfg *AssetsConfig) Reset() {
	cfg.Dir = filepath.Join("data", "images")
	cfg.UVTest = "uv_test.png"
	cfg.CubeMap = "cubemap_test.png"
}

// Path resolves an asset name against Dir. Absolute names are returned as is.
func (cfg *AssetsConfig) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(cfg.Dir, name)
}
