// Package app bootstraps the demo programs: flags, configuration, logging,
// the window with its render context and the fly camera.
package app

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/asr/asr"
	"github.com/gorustyt/asr/asr/raster"
	"github.com/gorustyt/asr/config"
	"github.com/gorustyt/asr/geometry"
	"github.com/gorustyt/asr/logger"
	"github.com/gorustyt/asr/transform"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "asr.yaml", "YAML configuration file, defaults are used when it does not exist")
	logLevel   = flag.String("log-level", "", "override log.level of the configuration")
)

type App struct {
	Name    string
	Config  *config.Config
	Log     *zap.Logger
	Window  *asr.Window
	Context *asr.Context
	Camera  *transform.Camera

	root      *zap.Logger
	textures  []*asr.Texture
	geometry  []*asr.Geometry
	materials []*asr.Material
}

// Main runs a demo: it builds the App, lets setup create the scene and
// drives it until the window closes.
func Main(name string, setup func(a *App) (asr.Scene, error)) {
	a, err := New(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, name+":", err)
		os.Exit(1)
	}
	defer a.Close()

	scene, err := setup(a)
	if err != nil {
		a.Log.Fatal("setup failed", zap.Error(err))
	}
	a.Context.Run(scene)
}

func New(name string) (*App, error) {
	if !flag.Parsed() {
		flag.Parse()
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	root, err := logger.New(cfg.Log, nil)
	if err != nil {
		return nil, err
	}

	a := &App{
		Name:   name,
		Config: cfg,
		Log:    root.Named("demo." + name),
		root:   root,
		Camera: &transform.Camera{Position: mgl32.Vec3(cfg.Camera.Position)},
	}
	a.Window, err = asr.CreateWindow(
		asr.Title(fmt.Sprintf("%s - %s", cfg.Window.Title, name)),
		asr.Size(cfg.Window.Width, cfg.Window.Height),
		asr.Resizable(cfg.Window.Resizable),
		asr.VSync(cfg.Window.VSync),
		asr.Samples(cfg.Window.Samples),
		asr.Logger(root.Named("asr")),
	)
	if err != nil {
		_ = root.Sync()
		return nil, err
	}
	a.Context = asr.NewContext(a.Window, root.Named("asr"))
	a.Context.SetClearColor(mgl32.Vec4(cfg.Render.ClearColor))

	mat, err := a.Material(asr.DefaultVertexShader, asr.DefaultFragmentShader)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Context.SetMaterial(mat)
	return a, nil
}

// Material compiles a program that draws with the configured render state.
func (a *App) Material(vertexShaderSource, fragmentShaderSource string) (*asr.Material, error) {
	mat, err := asr.NewMaterial(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	r := a.Config.Render
	mat.State = asr.RenderState{
		DepthTest: r.DepthTest,
		CullFaces: r.CullFaces,
		LineWidth: r.LineWidth,
		PointSize: r.PointSize,
	}
	a.materials = append(a.materials, mat)
	return mat, nil
}

// Upload sends m to the GPU with the current material. The geometry is
// released by Close.
func (a *App) Upload(m *geometry.Mesh) (*asr.Geometry, error) {
	g, err := asr.UploadMesh(m, a.Context.Material())
	if err != nil {
		return nil, err
	}
	a.Log.Debug("mesh uploaded", zap.Stringer("mesh", m))
	a.geometry = append(a.geometry, g)
	return g, nil
}

// Texture loads an image asset with the configured texturing mode. A missing
// file is replaced by a checkerboard so the demo still runs.
func (a *App) Texture(name string) (*asr.Texture, error) {
	mode, err := asr.ParseTexturingMode(a.Config.Render.TexturingMode)
	if err != nil {
		return nil, err
	}
	path := a.Config.Assets.Path(name)
	img, err := asr.LoadImage(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		a.Log.Warn("image asset missing, using a checkerboard", zap.String("path", path))
		img = raster.Checkerboard(512, 8, color.White, color.RGBA{R: 64, G: 64, B: 64, A: 255})
	}
	tex, err := asr.NewTexture(img, asr.WithTexturingMode(mode))
	if err != nil {
		return nil, errors.Wrapf(err, "texture %s", path)
	}
	a.textures = append(a.textures, tex)
	return tex, nil
}

// Track registers a texture created elsewhere for release by Close.
func (a *App) Track(tex *asr.Texture) {
	a.textures = append(a.textures, tex)
}

// EnableFlyCamera steers Camera with W/S (pitch), A/D (yaw) and Up/Down
// (along the view direction).
func (a *App) EnableFlyCamera() {
	move := a.Config.Camera.MoveSpeed
	turn := mgl32.DegToRad(a.Config.Camera.TurnSpeed)
	a.Window.SetKeysHandler(func(w *asr.Window) {
		in := transform.FlyInput{
			Pitch: axis(w, glfw.KeyS, glfw.KeyW),
			Yaw:   axis(w, glfw.KeyA, glfw.KeyD),
			Move:  axis(w, glfw.KeyUp, glfw.KeyDown),
		}
		a.Camera.Fly(in, a.Context.DeltaTime(), move, turn)
	})
}

func axis(w *asr.Window, positive, negative glfw.Key) float32 {
	var v float32
	if w.KeyDown(positive) {
		v++
	}
	if w.KeyDown(negative) {
		v--
	}
	return v
}

// LoadCamera loads the perspective projection and the camera view, and leaves
// the stack in Model mode with an identity top.
func (a *App) LoadCamera() {
	s := a.Context.Stack
	c := a.Config.Camera
	s.SetMode(transform.Projection)
	s.LoadPerspective(mgl32.DegToRad(c.FieldOfView), c.Near, c.Far)
	s.SetMode(transform.View)
	s.Load(a.Camera.View())
	s.SetMode(transform.Model)
	s.LoadIdentity()
}

func (a *App) Close() {
	for _, g := range a.geometry {
		g.Delete()
	}
	for _, t := range a.textures {
		t.Delete()
	}
	for _, m := range a.materials {
		m.Delete()
	}
	if a.Window != nil {
		a.Window.Destroy()
	}
	_ = a.root.Sync()
}
