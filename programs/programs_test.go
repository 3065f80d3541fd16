package programs_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewi1014/glgrid/programs"
	"github.com/stewi1014/glgrid/shader"
)

func TestBuiltinPrograms(t *testing.T) {
	assert.Subset(t, programs.Names(), []string{"solid", "tinted"})

	solid, err := programs.GetProgram("solid")
	require.NoError(t, err)
	assert.Contains(t, solid.VertexShader, "#version 330 core")
	assert.Contains(t, solid.VertexShader, "layout (location = 0) in vec3 aPos;")
	assert.Contains(t, solid.FragmentShader, "vec4(0.0f, 0.0f, 0.0f, 1.0f)")

	tinted, err := programs.GetProgram("tinted")
	require.NoError(t, err)
	assert.Equal(t, solid.VertexShader, tinted.VertexShader)
	assert.Contains(t, tinted.FragmentShader, "uniform vec4 colour;")
}

func TestGetProgramUnknown(t *testing.T) {
	_, err := programs.GetProgram("wireframe")
	assert.ErrorIs(t, err, programs.ErrUnknownProgram)
}

func TestNewProgramReplaces(t *testing.T) {
	before := len(programs.Names())

	programs.NewProgram(programs.Program{Name: "test-replace", FragmentShader: "a"})
	programs.NewProgram(programs.Program{Name: "test-replace", FragmentShader: "b"})
	assert.Len(t, programs.Names(), before+1)

	p, err := programs.GetProgram("test-replace")
	require.NoError(t, err)
	assert.Equal(t, "b", p.FragmentShader)
}

func TestUniformsDefaultValues(t *testing.T) {
	var u programs.Uniforms
	u.DefaultValues()
	assert.Equal(t, float32(1), u.Colour.W())
	assert.Equal(t, float32(0), u.Colour.X())
}

// recordingDriver fails every compile, which is enough to see that
// Build routes both sources to the right stages.
type recordingDriver struct {
	shader.GL
	stages []shader.Stage
}

func (d *recordingDriver) CreateShader(stage shader.Stage) uint32 {
	d.stages = append(d.stages, stage)
	return uint32(len(d.stages))
}

func (d *recordingDriver) CompileShader(uint32, string) {}
func (d *recordingDriver) ShaderCompiled(uint32) bool { return false }
func (d *recordingDriver) ShaderInfoLog(uint32) string { return "error: no compiler" }
func (d *recordingDriver) DeleteShader(uint32) {}

func TestProgramBuildWrapsError(t *testing.T) {
	d := &recordingDriver{}
	b := shader.NewBuilder(d, shader.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))

	p, err := programs.GetProgram("solid")
	require.NoError(t, err)

	_, err = p.Build(b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `program "solid"`)

	var compileErr *shader.CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, shader.Vertex, compileErr.Stage)
	assert.Equal(t, []shader.Stage{shader.Vertex}, d.stages)
}
