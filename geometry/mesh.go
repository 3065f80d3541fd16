package geometry

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
)

var ErrNoBuffer = errors.New("failed to generate buffer")

// Mesh is a quad uploaded to the GPU.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// Upload copies q into a new vertex array with its own vertex and
// element buffers. Position is attribute 0.
func Upload(q Quad) (*Mesh, error) {
	vertices := q.Vertices()
	m := &Mesh{count: int32(len(QuadIndices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)
	if m.vao == 0 || m.vbo == 0 || m.ebo == 0 {
		m.Delete()
		return nil, fmt.Errorf("upload quad: %w", ErrNoBuffer)
	}

	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(QuadIndices)*4, gl.Ptr(&QuadIndices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	return m, nil
}

// UploadAll uploads every quad, releasing the ones already uploaded if
// any of them fails.
func UploadAll(quads []Quad) ([]*Mesh, error) {
	meshes := make([]*Mesh, 0, len(quads))
	for _, q := range quads {
		m, err := Upload(q)
		if err != nil {
			for _, m := range meshes {
				m.Delete()
			}
			return nil, err
		}
		meshes = append(meshes, m)
	}
	return meshes, nil
}

func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
}

// Delete releases the vertex array and both buffers.
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
