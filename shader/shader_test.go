package shader

import (
	"strings"
	"testing"
)

func TestSourcesDeclareUniforms(t *testing.T) {
	tcs := []struct {
		name string
		src  string
		decl string
	}{
		{name: "vertex", src: GenerateVertexShader(), decl: "uniform vec3 " + OffsetUniform + ";"},
		{name: "fragment", src: GetFragmentShader(), decl: "uniform vec4 " + ColorUniform + ";"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if !strings.HasPrefix(tc.src, "#version 330 core\n") {
				t.Fatalf("%s shader does not start with a GLSL 330 core directive", tc.name)
			}
			if !strings.Contains(tc.src, tc.decl) {
				t.Fatalf("%s shader missing %q", tc.name, tc.decl)
			}
			if strings.Contains(tc.src, "\x00") {
				t.Fatalf("%s shader contains a NUL; termination is added at upload", tc.name)
			}
		})
	}
}
