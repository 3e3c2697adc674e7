package options

import "testing"

func TestDefault(t *testing.T) {
	o := Default()
	if o.Width != 800 || o.Height != 600 {
		t.Fatalf("Default size = %dx%d; want 800x600", o.Width, o.Height)
	}
	if o.Title != "OpenGL Project" {
		t.Fatalf("Default title = %q; want %q", o.Title, "OpenGL Project")
	}
	if o.GLMajor != 3 || o.GLMinor != 3 {
		t.Fatalf("Default GL version = %d.%d; want 3.3", o.GLMajor, o.GLMinor)
	}
	if Default() == o {
		t.Fatalf("Default returned a shared pointer")
	}
}
