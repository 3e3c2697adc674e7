package app

import (
	"errors"
	"fmt"
	"log"

	"github.com/richinsley/glproject/control"
	"github.com/richinsley/glproject/graphics"
	"github.com/richinsley/glproject/options"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = -1
)

var (
	ErrWindow  = errors.New("failed to create window")
	ErrContext = errors.New("failed to initialize graphics context")
)

// Drawer submits one frame's draws to the GPU.
type Drawer interface {
	RenderFrame(draws []control.Draw)
	// Resize matches the viewport to a framebuffer size.
	Resize(width, height int)
	Shutdown()
}

// Deps are the constructors Run sequences. The GLFW and GL implementations
// live in cmd; tests substitute fakes.
type Deps struct {
	Options     *options.WindowOptions
	Init        func() error
	Terminate   func()
	NewWindow   func(*options.WindowOptions) (graphics.Context, error)
	NewRenderer func(graphics.Context) (Drawer, error)
}

// Loop renders frames until the window's close flag is set and returns the
// final control state with the number of frames presented. A frame that sets
// the close flag is still rendered and presented.
func Loop(ctx graphics.Context, d Drawer, s control.State) (control.State, int) {
	frames := 0
	for !ctx.ShouldClose() {
		var closing bool
		s, closing = control.Apply(s, ctx.Keys())
		if closing {
			ctx.SetShouldClose(true)
		}

		d.RenderFrame(control.Draws(s))

		ctx.EndFrame()
		frames++
	}
	return s, frames
}

// Run brings up the window and renderer, runs the loop, tears everything down
// in reverse order and returns the process exit code.
func Run(deps Deps) int {
	if err := run(deps); err != nil {
		log.Println(err)
		return ExitFailure
	}
	return ExitOK
}

func run(deps Deps) error {
	opts := deps.Options
	if opts == nil {
		opts = options.Default()
	}

	if err := deps.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrWindow, err)
	}
	defer deps.Terminate()

	ctx, err := deps.NewWindow(opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWindow, err)
	}
	defer ctx.Shutdown()

	r, err := deps.NewRenderer(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrContext, err)
	}
	defer r.Shutdown()

	width, height := ctx.GetFramebufferSize()
	r.Resize(width, height)
	ctx.SetResizeCallback(r.Resize)

	log.Printf("Starting render loop (%dx%d %q)", opts.Width, opts.Height, opts.Title)
	start := ctx.Time()
	_, frames := Loop(ctx, r, control.NewState())
	log.Printf("Render loop finished after %d frames in %.2fs", frames, ctx.Time()-start)
	return nil
}
