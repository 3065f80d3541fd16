package shader

import (
	"fmt"
	"log/slog"
	"strings"
)

// Builder compiles vertex and fragment sources into linked programs.
type Builder struct {
	driver Driver
	logger *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger build failures are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder returns a Builder issuing its calls through driver.
// Failures are logged to slog.Default unless WithLogger is given.
func NewBuilder(driver Driver, opts ...Option) *Builder {
	b := &Builder{
		driver: driver,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build is shorthand for NewBuilder(driver).Build on untagged sources.
func Build(driver Driver, vertexSource, fragmentSource string) (*Program, error) {
	return NewBuilder(driver).Build(VertexSource(vertexSource), FragmentSource(fragmentSource))
}

// Build compiles both stages and links them into a program.
//
// On success the returned program is linked and owns no shader objects.
// On failure it returns nil and a *CompileError, *LinkError or
// *StageError; nothing created during the call is left alive.
func (b *Builder) Build(vertex, fragment Source) (*Program, error) {
	if vertex.Stage != Vertex {
		return nil, &StageError{Want: Vertex, Got: vertex.Stage}
	}
	if fragment.Stage != Fragment {
		return nil, &StageError{Want: Fragment, Got: fragment.Stage}
	}

	vertexShader, err := b.compile(vertex)
	if err != nil {
		return nil, err
	}

	fragmentShader, err := b.compile(fragment)
	if err != nil {
		b.driver.DeleteShader(vertexShader)
		return nil, err
	}

	program := b.driver.CreateProgram()
	if program == 0 {
		b.driver.DeleteShader(vertexShader)
		b.driver.DeleteShader(fragmentShader)
		return nil, fmt.Errorf("create program: %w", ErrNoObject)
	}

	b.driver.AttachShader(program, vertexShader)
	b.driver.AttachShader(program, fragmentShader)
	b.driver.LinkProgram(program)

	// Linked or not, the shader objects are never needed again. Detaching
	// first lets the driver free them now rather than with the program.
	b.driver.DetachShader(program, vertexShader)
	b.driver.DetachShader(program, fragmentShader)
	b.driver.DeleteShader(vertexShader)
	b.driver.DeleteShader(fragmentShader)

	if !b.driver.ProgramLinked(program) {
		log := cleanLog(b.driver.ProgramInfoLog(program))
		b.driver.DeleteProgram(program)
		b.logger.Error("shader program linking failed", "log", log)
		return nil, &LinkError{Log: log}
	}

	b.logger.Debug("shader program linked", "program", program)
	return &Program{handle: program, driver: b.driver}, nil
}

func (b *Builder) compile(source Source) (uint32, error) {
	shader := b.driver.CreateShader(source.Stage)
	if shader == 0 {
		return 0, fmt.Errorf("create %v shader: %w", source.Stage, ErrNoObject)
	}

	b.driver.CompileShader(shader, source.Text)
	if !b.driver.ShaderCompiled(shader) {
		log := cleanLog(b.driver.ShaderInfoLog(shader))
		b.driver.DeleteShader(shader)
		b.logger.Error("shader compilation failed", "stage", source.Stage, "log", log)
		return 0, &CompileError{Stage: source.Stage, Log: log}
	}

	return shader, nil
}

func cleanLog(log string) string {
	return strings.TrimRight(log, "\x00 \t\r\n")
}
