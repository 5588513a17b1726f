package asr

import (
	"time"

	"go.uber.org/zap"
)

// Scene is driven by Context.Run once per frame.
type Scene interface {
	Update(c *Context, dt float32)
	Draw(c *Context)
}

// Run prepares the context and loops over events, update, draw and present
// until the window is asked to close.
func (c *Context) Run(scene Scene) {
	c.PrepareForRendering()
	for !c.Window.ProcessEvents() {
		c.BeginFrame()
		scene.Update(c, c.DeltaTime())
		scene.Draw(c)
		c.EndFrame()
	}
	c.log.Info("render loop stopped", zap.Duration("uptime", time.Since(c.start)))
}
