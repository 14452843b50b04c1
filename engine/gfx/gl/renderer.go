package glbackend

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"golang.org/x/image/math/f32"

	"github.com/hollyoak/sprig/engine/assets"
	"github.com/hollyoak/sprig/engine/core"
	"github.com/hollyoak/sprig/engine/shader"
)

type RendererGL struct {
	win        core.Window
	src        shader.Source
	program    shader.Program
	vao        uint32
	vbo        uint32
	ibo        uint32
	indexCount int32
}

func NewRendererGL(win core.Window, cfg core.Config) (*RendererGL, error) {
	src, err := assets.LoadShader(cfg.Shader)
	if err != nil {
		return nil, err
	}
	r := &RendererGL{win: win, src: src}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	prog, err := shader.Build(GL{}, r.src)
	if err != nil {
		return err
	}
	r.program = prog

	// Unit quad centered on the origin, one vec2 position per corner.
	verts := []f32.Vec2{
		{-0.5, -0.5},
		{0.5, -0.5},
		{0.5, 0.5},
		{-0.5, 0.5},
	}
	indices := []uint32{
		0, 1, 2,
		2, 3, 0,
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*2*4, gl.Ptr(verts), gl.STATIC_DRAW)

	// layout(location = 0) in vec2 aPos;
	const stride = 2 * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))

	// The index binding is recorded in the VAO, so it must be made
	// while the VAO is still bound.
	gl.GenBuffers(1, &r.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	r.indexCount = int32(len(indices))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return nil
}

func (r *RendererGL) Shutdown() {
	if r.ibo != 0 {
		gl.DeleteBuffers(1, &r.ibo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		GL{}.DeleteProgram(uint32(r.program))
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *RendererGL) DrawQuad() {
	gl.UseProgram(uint32(r.program))
	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, unsafe.Pointer(uintptr(0)))
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}
