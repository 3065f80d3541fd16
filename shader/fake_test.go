package shader_test

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/stewi1014/glgrid/shader"
)

// fakeDriver compiles a small GLSL subset and tracks every live object,
// so tests can check the builder without a graphics context.
type fakeDriver struct {
	next     uint32
	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram
	bound    uint32
	calls    int

	// failCreate makes CreateShader / CreateProgram return 0.
	failCreate bool
}

// A deleted shader that is still attached to a program stays alive until
// it is detached or the program is deleted, as in GL.
type fakeShader struct {
	id       uint32
	stage    shader.Stage
	source   string
	compiled bool
	log      string

	attachments   int
	deletePending bool
}

type fakeProgram struct {
	attached []fakeShader
	linked   bool
	log      string
	uniforms map[string]int32
}

var (
	interfaceDecl = regexp.MustCompile(`^\s*(?:layout\s*\([^)]*\)\s*)?(in|out)\s+\w+\s+(\w+)\s*;`)
	uniformDecl   = regexp.MustCompile(`^\s*uniform\s+\w+\s+(\w+)\s*;`)
)

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]*fakeProgram),
	}
}

var _ shader.Driver = (*fakeDriver)(nil)

func (d *fakeDriver) alloc() uint32 {
	d.next++
	return d.next
}

func (d *fakeDriver) CreateShader(stage shader.Stage) uint32 {
	d.calls++
	if d.failCreate {
		return 0
	}
	id := d.alloc()
	d.shaders[id] = &fakeShader{id: id, stage: stage}
	return id
}

func (d *fakeDriver) CompileShader(id uint32, source string) {
	d.calls++
	s, ok := d.shaders[id]
	if !ok {
		panic(fmt.Sprintf("compile of unknown shader %d", id))
	}
	s.source = source
	s.log = compileGLSL(source)
	s.compiled = s.log == ""
}

func (d *fakeDriver) ShaderCompiled(id uint32) bool {
	d.calls++
	return d.shaders[id].compiled
}

func (d *fakeDriver) ShaderInfoLog(id uint32) string {
	d.calls++
	return d.shaders[id].log + "\x00"
}

func (d *fakeDriver) DeleteShader(id uint32) {
	d.calls++
	s, ok := d.shaders[id]
	if !ok || s.deletePending {
		panic(fmt.Sprintf("delete of unknown shader %d", id))
	}
	if s.attachments > 0 {
		s.deletePending = true
		return
	}
	delete(d.shaders, id)
}

func (d *fakeDriver) release(id uint32) {
	s := d.shaders[id]
	s.attachments--
	if s.deletePending && s.attachments == 0 {
		delete(d.shaders, id)
	}
}

func (d *fakeDriver) CreateProgram() uint32 {
	d.calls++
	if d.failCreate {
		return 0
	}
	id := d.alloc()
	d.programs[id] = &fakeProgram{}
	return id
}

func (d *fakeDriver) AttachShader(program, id uint32) {
	d.calls++
	s := d.shaders[id]
	s.attachments++
	d.programs[program].attached = append(d.programs[program].attached, *s)
}

func (d *fakeDriver) DetachShader(program, id uint32) {
	d.calls++
	p := d.programs[program]
	for i, s := range p.attached {
		if s.id == id {
			p.attached = append(p.attached[:i], p.attached[i+1:]...)
			d.release(id)
			return
		}
	}
	panic(fmt.Sprintf("detach of shader %d not attached to program %d", id, program))
}

func (d *fakeDriver) LinkProgram(id uint32) {
	d.calls++
	p := d.programs[id]
	p.log = linkGLSL(p.attached)
	p.linked = p.log == ""
	if p.linked {
		p.uniforms = make(map[string]int32)
		for _, s := range p.attached {
			for _, line := range strings.Split(s.source, "\n") {
				if m := uniformDecl.FindStringSubmatch(line); m != nil {
					p.uniforms[m[1]] = int32(len(p.uniforms))
				}
			}
		}
	}
}

func (d *fakeDriver) ProgramLinked(id uint32) bool {
	d.calls++
	return d.programs[id].linked
}

func (d *fakeDriver) ProgramInfoLog(id uint32) string {
	d.calls++
	return d.programs[id].log
}

func (d *fakeDriver) UseProgram(id uint32) {
	d.calls++
	if id != 0 {
		if p, ok := d.programs[id]; !ok || !p.linked {
			panic(fmt.Sprintf("use of unusable program %d", id))
		}
	}
	d.bound = id
}

func (d *fakeDriver) UniformLocation(program uint32, name string) int32 {
	d.calls++
	if loc, ok := d.programs[program].uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *fakeDriver) DeleteProgram(id uint32) {
	d.calls++
	p, ok := d.programs[id]
	if !ok {
		panic(fmt.Sprintf("delete of unknown program %d", id))
	}
	for _, s := range p.attached {
		d.release(s.id)
	}
	delete(d.programs, id)
	if d.bound == id {
		d.bound = 0
	}
}

func compileGLSL(source string) string {
	if !strings.HasPrefix(strings.TrimSpace(source), "#version ") {
		return "0:1(1): error: missing #version directive"
	}

	depth := 0
	for i, line := range strings.Split(source, "\n") {
		for _, r := range line {
			switch r {
			case '{':
				depth++
			case '}':
				depth--
			}
			if depth < 0 {
				return fmt.Sprintf("0:%d(1): error: syntax error, unexpected '}'", i+1)
			}
		}
	}
	if depth != 0 {
		return "0:1(1): error: syntax error, unexpected end of file"
	}

	if !strings.Contains(source, "void main") {
		return "0:1(1): error: entry point 'main' not defined"
	}
	return ""
}

func linkGLSL(attached []fakeShader) string {
	var vertex, fragment *fakeShader
	for i := range attached {
		s := &attached[i]
		if !s.compiled {
			return fmt.Sprintf("error: %v shader not compiled", s.stage)
		}
		switch s.stage {
		case shader.Vertex:
			vertex = s
		case shader.Fragment:
			fragment = s
		}
	}
	if vertex == nil || fragment == nil {
		return "error: program needs a vertex and a fragment shader"
	}

	outputs := make(map[string]bool)
	for _, line := range strings.Split(vertex.source, "\n") {
		if m := interfaceDecl.FindStringSubmatch(line); m != nil && m[1] == "out" {
			outputs[m[2]] = true
		}
	}
	for _, line := range strings.Split(fragment.source, "\n") {
		if m := interfaceDecl.FindStringSubmatch(line); m != nil && m[1] == "in" && !outputs[m[2]] {
			return fmt.Sprintf("error: fragment shader input '%s' has no matching output in the previous stage", m[2])
		}
	}
	return ""
}
