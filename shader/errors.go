package shader

import (
	"errors"
	"fmt"
)

var (
	ErrCompile = errors.New("shader compilation failed")
	ErrLink    = errors.New("shader program linking failed")

	// ErrNoObject is returned when the driver hands back a zero handle,
	// which usually means no context is current on this thread.
	ErrNoObject = errors.New("driver returned no object")
)

// CompileError reports a stage that failed to compile, with the
// compiler's diagnostic log.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%v shader compilation failed: %s", e.Stage, e.Log)
}

func (e *CompileError) Is(target error) bool {
	return target == ErrCompile
}

// LinkError reports a program that failed to link, with the linker's
// diagnostic log.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}

func (e *LinkError) Is(target error) bool {
	return target == ErrLink
}

// StageError is returned when a Source is passed in the slot of another stage.
type StageError struct {
	Want Stage
	Got  Stage
}

func (e *StageError) Error() string {
	return fmt.Sprintf("expected %v shader source, got %v", e.Want, e.Got)
}
