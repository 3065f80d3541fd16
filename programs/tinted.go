package programs

import _ "embed"

//go:embed shaders/tinted.frag
var tintedFragment string

func init() {
	NewProgram(Program{
		Name:           "tinted",
		VertexShader:   defaultVertexShader,
		FragmentShader: tintedFragment,
	})
}
