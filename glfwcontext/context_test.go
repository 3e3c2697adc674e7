package glfwcontext

import "testing"

// The framebuffer-size callback only forwards to the registered function, so
// it can run without a window.
func TestFramebufferSizeCallback(t *testing.T) {
	c := &Context{}

	var gotW, gotH, calls int
	c.SetResizeCallback(func(width, height int) {
		gotW, gotH = width, height
		calls++
	})
	c.glfwFramebufferSizeCallback(nil, 640, 480)

	if calls != 1 || gotW != 640 || gotH != 480 {
		t.Fatalf("resize callback got (%d, %d) in %d calls; want (640, 480) once", gotW, gotH, calls)
	}
}

func TestFramebufferSizeCallback_Unregistered(t *testing.T) {
	c := &Context{}
	c.glfwFramebufferSizeCallback(nil, 640, 480)
}
