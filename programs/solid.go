package programs

import _ "embed"

//go:embed shaders/solid.frag
var solidFragment string

func init() {
	NewProgram(Program{
		Name:           "solid",
		VertexShader:   defaultVertexShader,
		FragmentShader: solidFragment,
	})
}
