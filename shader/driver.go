package shader

// Driver is the subset of the graphics API the builder needs. All
// methods must be called on the thread that owns the current context.
type Driver interface {
	CreateShader(stage Stage) uint32
	// CompileShader sets the shader's source and compiles it.
	CompileShader(shader uint32, source string)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	UniformLocation(program uint32, name string) int32
	DeleteProgram(program uint32)
}
