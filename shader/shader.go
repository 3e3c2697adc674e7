package shader

// Uniform names shared by the vertex and fragment stages.
const (
	OffsetUniform = "offset"
	ColorUniform  = "ourColor"
)

// ────────────────────────────────── Desktop GL ──────────────────────────────────

// Adds the per-draw offset to every vertex.
const vertexShaderSourceGL = `#version 330 core
layout (location = 0) in vec3 aPos;
uniform vec3 offset;
void main()
{
    gl_Position = vec4(aPos + offset, 1.0);
}
`

const fragmentShaderSourceGL = `#version 330 core
out vec4 FragColor;
uniform vec4 ourColor;
void main()
{
    FragColor = ourColor;
}
`

// ────────────────────────────────── Public API ─────────────────────────────────

func GenerateVertexShader() string {
	return vertexShaderSourceGL
}

func GetFragmentShader() string {
	return fragmentShaderSourceGL
}
