package options

// WindowOptions configures the window and the GL context requested for it.
type WindowOptions struct {
	Width        int
	Height       int
	Title        string
	GLMajor      int
	GLMinor      int
	Resizable    bool
	SwapInterval int // 1 waits for vsync on each swap
}

// Default returns the fixed 800x600 "OpenGL Project" window on a 3.3 core context.
func Default() *WindowOptions {
	return &WindowOptions{
		Width:        800,
		Height:       600,
		Title:        "OpenGL Project",
		GLMajor:      3,
		GLMinor:      3,
		Resizable:    true,
		SwapInterval: 1,
	}
}
