// Package shader compiles and links OpenGL shader programs.
//
// Building is fail-fast: the first stage that fails to compile, or a
// failed link, returns a typed error and releases every object created
// on the way. Intermediate shader objects never outlive Build.
package shader

import "fmt"

// Stage identifies a shader compilation unit.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Source is shader source text tagged with the stage it is written for.
type Source struct {
	Stage Stage
	Text  string
}

// VertexSource tags text as vertex shader source.
func VertexSource(text string) Source {
	return Source{Stage: Vertex, Text: text}
}

// FragmentSource tags text as fragment shader source.
func FragmentSource(text string) Source {
	return Source{Stage: Fragment, Text: text}
}
