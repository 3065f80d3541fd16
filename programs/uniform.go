package programs

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms holds the values uploaded to a program each frame. The
// uniform tag names the GLSL variable; programs that don't declare it
// simply ignore the field.
type Uniforms struct {
	Colour mgl32.Vec4 `uniform:"colour"`
}

// DefaultValues draws in opaque black.
func (u *Uniforms) DefaultValues() {
	u.Colour = mgl32.Vec4{0, 0, 0, 1}
}
