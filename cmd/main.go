package main

import (
	"log"
	"os"
	"runtime"

	app "github.com/richinsley/glproject/app"
	"github.com/richinsley/glproject/glfwcontext"
	"github.com/richinsley/glproject/graphics"
	options "github.com/richinsley/glproject/options"
	renderer "github.com/richinsley/glproject/renderer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	log.SetOutput(os.Stdout)

	os.Exit(app.Run(app.Deps{
		Options:   options.Default(),
		Init:      glfwcontext.InitGraphics,
		Terminate: glfwcontext.TerminateGraphics,
		NewWindow: func(opts *options.WindowOptions) (graphics.Context, error) {
			c, err := glfwcontext.New(opts)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
		NewRenderer: func(ctx graphics.Context) (app.Drawer, error) {
			r, err := renderer.NewRenderer(ctx)
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	}))
}
