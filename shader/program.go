package shader

// Program is a linked shader program.
type Program struct {
	handle uint32
	driver Driver
}

// Handle returns the driver's name for the program, or 0 once deleted.
func (p *Program) Handle() uint32 {
	return p.handle
}

// Use binds the program for subsequent draw calls.
func (p *Program) Use() {
	p.driver.UseProgram(p.handle)
}

func (p *Program) UniformLocation(name string) int32 {
	if p.handle == 0 {
		return -1
	}
	return p.driver.UniformLocation(p.handle, name)
}

// Delete releases the program. It is safe to call more than once.
func (p *Program) Delete() {
	if p.handle != 0 {
		p.driver.DeleteProgram(p.handle)
		p.handle = 0
	}
}
