package glfwcontext

import (
	"fmt"
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/glproject/control"
	options "github.com/richinsley/glproject/options"
)

// Context wraps the demo window and the GL context it owns.
type Context struct {
	window   *glfw.Window
	onResize func(width, height int)
}

// New creates the window described by opts and returns a Context for it.
func New(opts *options.WindowOptions) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if opts.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfw: %w", err)
	}

	c := &Context{window: win}
	win.SetFramebufferSizeCallback(c.glfwFramebufferSizeCallback)

	// The swap interval applies to the current context.
	win.MakeContextCurrent()
	glfw.SwapInterval(opts.SwapInterval)

	return c, nil
}

// SetResizeCallback registers the function run when the framebuffer changes size.
func (c *Context) SetResizeCallback(f func(width, height int)) {
	c.onResize = f
}

func (c *Context) glfwFramebufferSizeCallback(w *glfw.Window, width, height int) {
	if c.onResize != nil {
		c.onResize(width, height)
	}
}

// Keys polls every key the demo reads. W and S are polled even though the
// control state ignores them.
func (c *Context) Keys() control.Keys {
	pressed := func(k glfw.Key) bool {
		return c.window.GetKey(k) == glfw.Press
	}
	return control.Keys{
		Escape: pressed(glfw.KeyEscape),
		Up:     pressed(glfw.KeyUp),
		Down:   pressed(glfw.KeyDown),
		Left:   pressed(glfw.KeyLeft),
		Right:  pressed(glfw.KeyRight),
		Z:      pressed(glfw.KeyZ),
		X:      pressed(glfw.KeyX),
		W:      pressed(glfw.KeyW),
		S:      pressed(glfw.KeyS),
	}
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) SetShouldClose(v bool) {
	c.window.SetShouldClose(v)
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down GLFW. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
