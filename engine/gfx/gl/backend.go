package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hollyoak/sprig/engine/shader"
)

// GL implements shader.Backend against the OpenGL context current on
// the calling thread. The zero value is ready to use once gl.Init has
// run.
type GL struct{}

func stageToGL(s shader.Stage) uint32 {
	switch s {
	case shader.StageVertex:
		return gl.VERTEX_SHADER
	case shader.StageFragment:
		return gl.FRAGMENT_SHADER
	default:
		return 0
	}
}

func (GL) CreateShader(stage shader.Stage) uint32 {
	return gl.CreateShader(stageToGL(stage))
}

func (GL) ShaderSource(sh uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(sh, 1, csrc, nil)
	free()
}

func (GL) CompileShader(sh uint32) { gl.CompileShader(sh) }

func (GL) CompileStatus(sh uint32) bool {
	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (GL) ShaderInfoLog(sh uint32) string {
	var logLen int32
	gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := make([]byte, logLen)
	gl.GetShaderInfoLog(sh, logLen, nil, &log[0])
	return string(log)
}

func (GL) DeleteShader(sh uint32) { gl.DeleteShader(sh) }

func (GL) CreateProgram() uint32 { return gl.CreateProgram() }

func (GL) AttachShader(prog, sh uint32) { gl.AttachShader(prog, sh) }

func (GL) LinkProgram(prog uint32) { gl.LinkProgram(prog) }

func (GL) ValidateProgram(prog uint32) { gl.ValidateProgram(prog) }

func (GL) LinkStatus(prog uint32) bool {
	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (GL) ProgramInfoLog(prog uint32) string {
	var logLen int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := make([]byte, logLen)
	gl.GetProgramInfoLog(prog, logLen, nil, &log[0])
	return string(log)
}

func (GL) DeleteProgram(prog uint32) { gl.DeleteProgram(prog) }
