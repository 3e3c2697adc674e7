package renderer

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/glproject/control"
	"github.com/richinsley/glproject/graphics"
	shader "github.com/richinsley/glproject/shader"
)

// ErrInit reports that the OpenGL function pointers could not be loaded.
var ErrInit = errors.New("failed to initialize OpenGL")

// gl.Init must run only once per process.
var glInitOnce sync.Once
var glInitErr error

// Renderer owns the single shader program and triangle buffer of the demo.
type Renderer struct {
	context     graphics.Context
	program     uint32
	vao         uint32
	vbo         uint32
	offsetLoc   int32
	colorLoc    int32
	vertexCount int32
}

// One triangle in normalized device coordinates, 3 floats per vertex.
var triangleVertices = []float32{
	-0.3, -0.3, 0.0,
	0.3, -0.3, 0.0,
	0.0, 0.3, 0.0,
}

func NewRenderer(ctx graphics.Context) (*Renderer, error) {
	r := &Renderer{context: ctx}

	// Make the context current BEFORE initializing OpenGL.
	r.context.MakeCurrent()

	glInitOnce.Do(func() {
		glInitErr = gl.Init()
	})
	if glInitErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInit, glInitErr)
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.DEPTH_TEST)

	var err error
	r.program, err = newProgram(shader.GenerateVertexShader(), shader.GetFragmentShader())
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.offsetLoc = gl.GetUniformLocation(r.program, gl.Str(shader.OffsetUniform+"\x00"))
	r.colorLoc = gl.GetUniformLocation(r.program, gl.Str(shader.ColorUniform+"\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(triangleVertices)*4, gl.Ptr(triangleVertices), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	r.vertexCount = int32(len(triangleVertices) / 3)

	return r, nil
}

// Resize matches the viewport to a new framebuffer size.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// RenderFrame clears the framebuffer and submits draws in order, all against
// the same program and vertex array.
func (r *Renderer) RenderFrame(draws []control.Draw) {
	bg := control.Background
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)

	for i := range draws {
		d := &draws[i]
		if r.offsetLoc != -1 {
			gl.Uniform3fv(r.offsetLoc, 1, &d.Offset[0])
		}
		if r.colorLoc != -1 {
			gl.Uniform4fv(r.colorLoc, 1, &d.Color[0])
		}
		count := d.Vertices
		if count > r.vertexCount {
			count = r.vertexCount
		}
		gl.DrawArrays(gl.TRIANGLES, 0, count)
	}
}

func (r *Renderer) Shutdown() {
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteProgram(r.program)
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", strings.TrimRight(logText, "\x00"))
	}
	return shader, nil
}
