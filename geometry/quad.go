// Package geometry builds and uploads the static rectangles drawn by the scene.
package geometry

import "github.com/go-gl/mathgl/mgl32"

// QuadIndices splits a quad's four corners into two triangles.
var QuadIndices = [6]uint32{
	0, 1, 2,
	1, 2, 3,
}

// Quad is a rectangle given by its corners in normalized device coordinates.
type Quad struct {
	TopLeft     mgl32.Vec3
	TopRight    mgl32.Vec3
	BottomLeft  mgl32.Vec3
	BottomRight mgl32.Vec3
}

// Rect returns the axis-aligned quad spanning x0..x1, y0..y1 at z = 0,
// where (x0, y0) is the bottom left corner.
func Rect(x0, y0, x1, y1 float32) Quad {
	return Quad{
		TopLeft:     mgl32.Vec3{x0, y1, 0},
		TopRight:    mgl32.Vec3{x1, y1, 0},
		BottomLeft:  mgl32.Vec3{x0, y0, 0},
		BottomRight: mgl32.Vec3{x1, y0, 0},
	}
}

// Vertices returns the corners as packed xyz triples in the order
// top left, top right, bottom left, bottom right.
func (q Quad) Vertices() []float32 {
	vertices := make([]float32, 0, 4*3)
	for _, v := range [4]mgl32.Vec3{q.TopLeft, q.TopRight, q.BottomLeft, q.BottomRight} {
		vertices = append(vertices, v[:]...)
	}
	return vertices
}

// Grid returns the two vertical and two horizontal bars of a # shape.
func Grid() []Quad {
	return []Quad{
		Rect(-0.4, -1.0, -0.3, 1.0),
		Rect(0.3, -1.0, 0.4, 1.0),
		Rect(-1.0, 0.3, 1.0, 0.4),
		Rect(-1.0, -0.4, 1.0, -0.3),
	}
}
