package shader

import (
	"errors"
	"fmt"
	"strings"
)

// Program is an opaque handle to a linked GPU program. Zero means no
// program. The handle is only valid on the thread owning the context
// that built it, and must be released with Backend.DeleteProgram.
type Program uint32

// Backend is the slice of the graphics API the builder needs. The GL
// implementation lives in engine/gfx/gl; tests substitute a stub.
// Every call targets the context the backend was created against.
type Backend interface {
	CreateShader(stage Stage) uint32
	ShaderSource(sh uint32, src string)
	CompileShader(sh uint32)
	CompileStatus(sh uint32) bool
	ShaderInfoLog(sh uint32) string
	DeleteShader(sh uint32)

	CreateProgram() uint32
	AttachShader(prog, sh uint32)
	LinkProgram(prog uint32)
	ValidateProgram(prog uint32)
	LinkStatus(prog uint32) bool
	ProgramInfoLog(prog uint32) string
	DeleteProgram(prog uint32)
}

// CompileError reports a failed compile of one stage, with the
// backend's diagnostic log verbatim.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s shader: %s", e.Stage, trimLog(e.Log))
}

// LinkError reports a failed program link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "link program: " + trimLog(e.Log)
}

func trimLog(log string) string {
	return strings.TrimRight(log, "\x00\n")
}

// Build compiles both stages of src and links them into one program.
//
// Both stages are always attempted: a failed stage is recorded as a
// *CompileError and replaced by a zero handle, which is still attached
// so the failure also surfaces at link time as a *LinkError. All
// failures are aggregated with errors.Join. Stage objects are deleted
// on every path; on error the program object is deleted too and the
// zero Program is returned.
func Build(b Backend, src Source) (Program, error) {
	var errs []error

	compile := func(stage Stage, text string) uint32 {
		sh := b.CreateShader(stage)
		b.ShaderSource(sh, text)
		b.CompileShader(sh)
		if !b.CompileStatus(sh) {
			errs = append(errs, &CompileError{Stage: stage, Log: b.ShaderInfoLog(sh)})
			b.DeleteShader(sh)
			return 0
		}
		return sh
	}

	vs := compile(StageVertex, src.Vertex)
	fs := compile(StageFragment, src.Fragment)

	// Stage objects are only needed while linking; the linked program
	// keeps its own reference.
	defer func() {
		if vs != 0 {
			b.DeleteShader(vs)
		}
		if fs != 0 {
			b.DeleteShader(fs)
		}
	}()

	prog := b.CreateProgram()
	b.AttachShader(prog, vs)
	b.AttachShader(prog, fs)
	b.LinkProgram(prog)
	b.ValidateProgram(prog)
	if !b.LinkStatus(prog) {
		errs = append(errs, &LinkError{Log: b.ProgramInfoLog(prog)})
	}

	if len(errs) > 0 {
		b.DeleteProgram(prog)
		return 0, errors.Join(errs...)
	}
	return Program(prog), nil
}
