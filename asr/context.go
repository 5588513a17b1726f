package asr

import (
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/asr/common"
	"github.com/gorustyt/asr/transform"
	"go.uber.org/zap"
)

const statsInterval = 5 * time.Second

// Context owns everything one window renders with: the transform stack, the
// current material and the frame clock.
type Context struct {
	Window *Window
	Stack  *transform.Stack

	log        *zap.Logger
	material   *Material
	clearColor mgl32.Vec4

	start, last time.Time
	dt          float32
	stats       frameStats
}

type frameStats struct {
	since      time.Time
	frames     int
	draws      int
	primitives int
}

func NewContext(w *Window, log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	return &Context{
		Window:     w,
		Stack:      transform.NewStack(w),
		log:        log,
		clearColor: mgl32.Vec4{0, 0, 0, 1},
	}
}

func (c *Context) SetClearColor(color mgl32.Vec4) {
	c.clearColor = color
}

// SetMaterial selects the program used by the following draws.
func (c *Context) SetMaterial(m *Material) {
	c.material = m
}

func (c *Context) Material() *Material {
	return c.material
}

// PrepareForRendering resets the transform stacks and starts the frame clock.
func (c *Context) PrepareForRendering() {
	c.Stack.Reset()
	w, h := c.Window.Size()
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ClearColor(c.clearColor[0], c.clearColor[1], c.clearColor[2], c.clearColor[3])
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.DepthFunc(gl.LEQUAL)

	c.start = time.Now()
	c.last = c.start
	c.dt = 0
	c.stats = frameStats{since: c.start}
}

// BeginFrame measures the time since the previous frame, follows framebuffer
// resizes and clears color and depth.
func (c *Context) BeginFrame() {
	now := time.Now()
	c.dt = float32(now.Sub(c.last).Seconds())
	c.last = now

	w, h := c.Window.Size()
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ClearColor(c.clearColor[0], c.clearColor[1], c.clearColor[2], c.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders g with the combined matrix of the transform stack. A nil tex
// draws vertex colors only.
func (c *Context) Draw(g *Geometry, tex *Texture) {
	c.DrawWith(g, tex, c.Stack.Combined())
}

// DrawWith renders g with an explicit model-view-projection matrix.
func (c *Context) DrawWith(g *Geometry, tex *Texture, mvp mgl32.Mat4) {
	common.AssertTrue(c.material != nil, "asr: draw without a material")
	common.AssertTrue(g != nil, "asr: draw of a nil geometry")

	m := c.material
	m.use()
	m.setMat4(ModelViewProjectionUniform, mvp)
	m.setFloat(TimeUniform, c.Time())
	if tex != nil {
		tex.bind(m)
	} else {
		m.setInt(TextureEnabledUniform, 0)
	}
	g.draw()
	if tex != nil {
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}

	c.stats.draws++
	c.stats.primitives += g.Primitives()
}

// EndFrame presents the frame.
func (c *Context) EndFrame() {
	c.Window.swap()

	c.stats.frames++
	if elapsed := c.last.Sub(c.stats.since); elapsed >= statsInterval {
		c.log.Debug("frame stats",
			zap.Int("frames", c.stats.frames),
			zap.Duration("avg_frame_time", elapsed/time.Duration(c.stats.frames)),
			zap.Int("draws_per_frame", c.stats.draws/c.stats.frames),
			zap.Int("primitives_per_frame", c.stats.primitives/c.stats.frames),
		)
		c.stats = frameStats{since: c.last}
	}
}

// DeltaTime returns the seconds elapsed between the two last BeginFrame calls.
func (c *Context) DeltaTime() float32 {
	return c.dt
}

// Time returns the seconds elapsed since PrepareForRendering.
func (c *Context) Time() float32 {
	return float32(time.Since(c.start).Seconds())
}
