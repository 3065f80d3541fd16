package shader

import (
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// GL is the Driver backed by the current OpenGL context.
// gl.Init must have been called on the calling thread.
type GL struct{}

var _ Driver = GL{}

func glStage(stage Stage) uint32 {
	if stage == Fragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func (GL) CreateShader(stage Stage) uint32 {
	return gl.CreateShader(glStage(stage))
}

func (GL) CompileShader(shader uint32, source string) {
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)
}

func (GL) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (GL) ShaderInfoLog(shader uint32) string {
	var l int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &l)
	if l <= 0 {
		return ""
	}

	log := make([]byte, l+1)
	gl.GetShaderInfoLog(shader, l, nil, &log[0])
	return string(log)
}

func (GL) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (GL) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (GL) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (GL) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (GL) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (GL) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (GL) ProgramInfoLog(program uint32) string {
	var l int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &l)
	if l <= 0 {
		return ""
	}

	log := make([]byte, l+1)
	gl.GetProgramInfoLog(program, l, nil, &log[0])
	return string(log)
}

func (GL) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (GL) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (GL) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}
