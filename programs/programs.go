package programs

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/stewi1014/glgrid/shader"
)

var ErrUnknownProgram = errors.New("unknown program")

//go:embed default.vert
var defaultVertexShader string

// Program is a named vertex and fragment shader pair.
type Program struct {
	Name           string
	VertexShader   string
	FragmentShader string
}

// Build compiles and links the program.
func (p Program) Build(b *shader.Builder) (*shader.Program, error) {
	program, err := b.Build(
		shader.VertexSource(p.VertexShader),
		shader.FragmentSource(p.FragmentShader),
	)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", p.Name, err)
	}
	return program, nil
}

var programs []Program

// NewProgram registers p, replacing any program with the same name.
func NewProgram(p Program) {
	for i := range programs {
		if programs[i].Name == p.Name {
			programs[i] = p
			return
		}
	}
	programs = append(programs, p)
}

// GetProgram returns the registered program called name.
func GetProgram(name string) (Program, error) {
	for _, p := range programs {
		if p.Name == name {
			return p, nil
		}
	}
	return Program{}, fmt.Errorf("%w %q", ErrUnknownProgram, name)
}

// Names returns registered program names in registration order.
func Names() []string {
	names := make([]string, len(programs))
	for i, p := range programs {
		names[i] = p.Name
	}
	return names
}
