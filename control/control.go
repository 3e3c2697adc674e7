package control

import (
	mgl "github.com/go-gl/mathgl/mgl32"
)

const (
	// Step is how far an offset moves per frame while an arrow key is held.
	Step float32 = 0.001

	// DefaultAlpha is the opacity of both triangles while Z is up.
	DefaultAlpha float32 = 0.6
	// DimAlpha replaces DefaultAlpha for as long as Z is held.
	DimAlpha float32 = 0.3

	// FrontDepth and BackDepth are the z offsets of the first and second draw.
	FrontDepth float32 = -0.3
	BackDepth  float32 = -0.7

	// TriangleVertices is the vertex count of every draw.
	TriangleVertices int32 = 3
)

var (
	InitialColor   = mgl.Vec3{1.0, 0.5, 0.2}
	AlternateColor = mgl.Vec3{0.2, 0.8, 0.4}
	SecondColor    = mgl.Vec3{0.8, 0.2, 0.4}
	Background     = mgl.Vec4{0.1, 0.1, 0.15, 1.0}
)

// Keys is the held/released state of every key the demo polls in one frame.
type Keys struct {
	Escape bool
	Up     bool
	Down   bool
	Left   bool
	Right  bool
	Z      bool
	X      bool
	// W and S are polled but have no effect.
	W bool
	S bool
}

// State holds the values the keyboard drives between frames.
type State struct {
	OffsetX float32
	OffsetY float32
	Alpha   float32
	Color   mgl.Vec3
}

// Draw describes one triangle submission.
type Draw struct {
	Offset   mgl.Vec3
	Color    mgl.Vec4
	Vertices int32
}

// NewState returns the state at program start: centered, default alpha and
// the initial color.
func NewState() State {
	return State{
		Alpha: DefaultAlpha,
		Color: InitialColor,
	}
}

// Apply advances s by one frame of input and reports whether the window
// should close. Offsets are not clamped, and releasing X keeps the last color.
func Apply(s State, k Keys) (State, bool) {
	if k.Up {
		s.OffsetY += Step
	}
	if k.Down {
		s.OffsetY -= Step
	}
	if k.Left {
		s.OffsetX -= Step
	}
	if k.Right {
		s.OffsetX += Step
	}

	if k.Z {
		s.Alpha = DimAlpha
	} else {
		s.Alpha = DefaultAlpha
	}

	if k.X {
		s.Color = AlternateColor
	}

	return s, k.Escape
}

// Draws returns the ordered draw list for a frame. The second triangle mirrors
// the first in X and Y and sits further back.
func Draws(s State) []Draw {
	return []Draw{
		{
			Offset:   mgl.Vec3{s.OffsetX, s.OffsetY, FrontDepth},
			Color:    s.Color.Vec4(s.Alpha),
			Vertices: TriangleVertices,
		},
		{
			Offset:   mgl.Vec3{-s.OffsetX, -s.OffsetY, BackDepth},
			Color:    SecondColor.Vec4(s.Alpha),
			Vertices: TriangleVertices,
		},
	}
}
