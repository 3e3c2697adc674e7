package graphics

import "github.com/richinsley/glproject/control"

// Context defines the interface for a window owning an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	SetShouldClose(bool)
	// EndFrame presents the back buffer and processes window events.
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
	// Keys polls the current state of the demo's keys.
	Keys() control.Keys
	// SetResizeCallback registers f to run with the new framebuffer size.
	SetResizeCallback(f func(width, height int))
}
