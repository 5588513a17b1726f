// Package asr is a small frame driver over GLFW and OpenGL 4.1 core: one
// window, shader materials, static indexed geometry, textures and a render loop.
package asr

import (
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func init() {
	// GLFW event handling must run on the main thread.
	runtime.LockOSThread()
}

type WindowOption interface {
	set(*windowConfig)
}

type windowConfig struct {
	title     string
	w, h      int
	resizable bool
	vsync     bool
	samples   int
	log       *zap.Logger
}

type windowOption func(*windowConfig)

func (f windowOption) set(cfg *windowConfig) {
	f(cfg)
}

func Title(title string) WindowOption {
	return windowOption(func(cfg *windowConfig) {
		cfg.title = title
	})
}

func Size(w, h int) WindowOption {
	return windowOption(func(cfg *windowConfig) {
		cfg.w, cfg.h = w, h
	})
}

func Resizable(b bool) WindowOption {
	return windowOption(func(cfg *windowConfig) {
		cfg.resizable = b
	})
}

func VSync(b bool) WindowOption {
	return windowOption(func(cfg *windowConfig) {
		cfg.vsync = b
	})
}

// Samples requests a multisampled framebuffer. 0 disables multisampling.
func Samples(n int) WindowOption {
	return windowOption(func(cfg *windowConfig) {
		cfg.samples = n
	})
}

func Logger(l *zap.Logger) WindowOption {
	return windowOption(func(cfg *windowConfig) {
		cfg.log = l
	})
}

// Window is a GLFW window with a current OpenGL 4.1 core context.
type Window struct {
	win  *glfw.Window
	log  *zap.Logger
	keys func(w *Window)
}

func CreateWindow(opts ...WindowOption) (*Window, error) {
	cfg := windowConfig{title: "asr", w: 500, h: 500, resizable: true, vsync: true, log: zap.NewNop()}
	for _, o := range opts {
		o.set(&cfg)
	}

	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "init glfw")
	}
	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, cfg.samples)

	win, err := glfw.CreateWindow(cfg.w, cfg.h, cfg.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "create window")
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, errors.Wrap(err, "init gl")
	}
	if cfg.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{win: win, log: cfg.log}
	fw, fh := w.Size()
	w.log.Info("window created",
		zap.String("title", cfg.title),
		zap.Int("width", fw),
		zap.Int("height", fh),
		zap.String("gl_version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.log.Debug("framebuffer resized", zap.Int("width", width), zap.Int("height", height))
	})
	return w, nil
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// ProcessEvents polls pending events, runs the held keys handler and reports
// whether the window should close. Escape requests a close.
func (w *Window) ProcessEvents() (quit bool) {
	glfw.PollEvents()
	if w.KeyDown(glfw.KeyEscape) {
		w.win.SetShouldClose(true)
	}
	if w.keys != nil && !w.win.ShouldClose() {
		w.keys(w)
	}
	return w.win.ShouldClose()
}

// Size returns the framebuffer size in pixels.
func (w *Window) Size() (width, height int) {
	return w.win.GetFramebufferSize()
}

func (w *Window) KeyDown(key glfw.Key) bool {
	return w.win.GetKey(key) == glfw.Press
}

// SetKeysHandler installs a function called once per ProcessEvents to react to
// held keys.
func (w *Window) SetKeysHandler(h func(w *Window)) {
	w.keys = h
}

func (w *Window) Close() {
	w.win.SetShouldClose(true)
}

func (w *Window) swap() {
	w.win.SwapBuffers()
}

func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}
