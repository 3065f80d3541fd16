package main

import (
	"log/slog"
	"reflect"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stewi1014/glgrid/config"
	"github.com/stewi1014/glgrid/geometry"
	"github.com/stewi1014/glgrid/programs"
	"github.com/stewi1014/glgrid/shader"
)

// Scene is the shader program and the grid meshes it draws.
// Every method must run on the thread owning the GL context.
type Scene struct {
	clear   mgl32.Vec4
	program *shader.Program
	meshes  []*geometry.Mesh
	logger  *slog.Logger

	uniforms         programs.Uniforms
	uniformLocations map[string]int32
}

func NewScene(cfg config.Config, logger *slog.Logger) (*Scene, error) {
	if cfg.Debug {
		enableDebugOutput(logger)
	}
	logger.Info("OpenGL context", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	p, err := programs.GetProgram(cfg.Program)
	if err != nil {
		return nil, err
	}

	program, err := p.Build(shader.NewBuilder(shader.GL{}, shader.WithLogger(logger)))
	if err != nil {
		return nil, err
	}

	meshes, err := geometry.UploadAll(geometry.Grid())
	if err != nil {
		program.Delete()
		return nil, err
	}

	s := &Scene{
		clear:   cfg.Colours.Clear,
		program: program,
		meshes:  meshes,
		logger:  logger,
	}

	s.uniforms.DefaultValues()
	s.uniforms.Colour = cfg.Colours.Lines

	s.uniformLocations = make(map[string]int32)
	t := reflect.TypeOf(s.uniforms)
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("uniform")
		s.uniformLocations[name] = program.UniformLocation(name)
	}

	if linesIgnored(cfg, s.uniformLocations) {
		logger.Warn("program draws in a fixed colour, lines colour ignored",
			"program", p.Name, "lines", cfg.Colours.Lines)
	}

	logger.Debug("scene ready", "program", p.Name, "meshes", len(meshes))
	return s, nil
}

func (s *Scene) Draw() {
	gl.ClearColor(s.clear[0], s.clear[1], s.clear[2], s.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	s.program.Use()
	s.loadUniforms()

	for _, m := range s.meshes {
		m.Draw()
	}
	gl.BindVertexArray(0)
}

func (s *Scene) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Delete releases the meshes and the program.
func (s *Scene) Delete() {
	for _, m := range s.meshes {
		m.Delete()
	}
	s.meshes = nil
	s.program.Delete()
}

func (s *Scene) loadUniforms() {
	v := reflect.ValueOf(&s.uniforms).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		loc := s.uniformLocations[v.Type().Field(i).Tag.Get("uniform")]
		if loc < 0 {
			continue
		}

		switch value := f.Addr().Interface().(type) {
		case *mgl32.Vec2:
			gl.Uniform2fv(loc, 1, &value[0])
		case *mgl32.Vec3:
			gl.Uniform3fv(loc, 1, &value[0])
		case *mgl32.Vec4:
			gl.Uniform4fv(loc, 1, &value[0])
		case *mgl32.Mat4:
			gl.UniformMatrix4fv(loc, 1, false, &value[0])
		case *float32:
			gl.Uniform1f(loc, *value)
		case *int32:
			gl.Uniform1i(loc, *value)
		default:
			s.logger.Warn("unsupported uniform type", "type", f.Type())
		}
	}
}

// linesIgnored reports whether a lines colour other than the default was
// configured for a program that has no colour uniform to receive it.
func linesIgnored(cfg config.Config, uniformLocations map[string]int32) bool {
	if cfg.Colours.Lines == config.Default().Colours.Lines {
		return false
	}
	loc, ok := uniformLocations["colour"]
	return !ok || loc < 0
}
