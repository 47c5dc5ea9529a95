package engine

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"gldemos/pkg/mesh"
	"gldemos/pkg/render"
)

type glMesh struct {
	vao, vbo uint32
	count    int32
}

// GLRenderer implements render.Renderer on an OpenGL 4.1 core context.
// All methods must run on the thread that owns the context.
type GLRenderer struct {
	programs []uint32
	meshes   map[render.MeshID]glMesh
	textures []uint32
	nextMesh render.MeshID

	current  uint32
	uniforms map[uint32]map[string]int32
}

// NewGLRenderer loads GL function pointers for the current context and sets
// the fixed pipeline state every demo expects.
func NewGLRenderer() (*GLRenderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return &GLRenderer{
		meshes:   make(map[render.MeshID]glMesh),
		uniforms: make(map[uint32]map[string]int32),
	}, nil
}

// Version returns the GL version string of the context
func (r *GLRenderer) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (r *GLRenderer) CompileProgram(vertexSource, fragmentSource string) (render.ProgramID, error) {
	program, err := createShaderProgram(vertexSource, fragmentSource)
	if err != nil {
		return 0, err
	}
	r.programs = append(r.programs, program)
	r.uniforms[program] = make(map[string]int32)
	return render.ProgramID(program), nil
}

func (r *GLRenderer) UseProgram(p render.ProgramID) {
	r.current = uint32(p)
	gl.UseProgram(r.current)
}

// location looks up a uniform of the current program, caching the result.
// Missing uniforms resolve to -1, which GL ignores.
func (r *GLRenderer) location(name string) int32 {
	cache := r.uniforms[r.current]
	if cache == nil {
		return -1
	}
	if loc, ok := cache[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(r.current, gl.Str(name+"\x00"))
	cache[name] = loc
	return loc
}

func (r *GLRenderer) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(r.location(name), 1, false, &m[0])
}

func (r *GLRenderer) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(r.location(name), v[0], v[1], v[2])
}

func (r *GLRenderer) SetFloat(name string, f float32) {
	gl.Uniform1f(r.location(name), f)
}

func (r *GLRenderer) SetInt(name string, i int32) {
	gl.Uniform1i(r.location(name), i)
}

func (r *GLRenderer) UploadMesh(vertices []float32, layout mesh.Layout) (render.MeshID, error) {
	if layout.Stride <= 0 {
		return 0, errors.New("mesh layout has no stride")
	}
	count := layout.VertexCount(len(vertices))
	if count == 0 {
		return 0, errors.New("mesh has no vertices")
	}

	var m glMesh
	m.count = int32(count)
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	for _, a := range layout.Attributes {
		gl.VertexAttribPointer(a.Location, a.Size, gl.FLOAT, false, layout.Stride*4, gl.PtrOffset(int(a.Offset)*4))
		gl.EnableVertexAttribArray(a.Location)
	}
	gl.BindVertexArray(0)

	r.nextMesh++
	r.meshes[r.nextMesh] = m
	return r.nextMesh, nil
}

// UploadTexture expects row 0 to be the top of the image
func (r *GLRenderer) UploadTexture(img *image.RGBA) (render.TextureID, error) {
	b := img.Bounds()
	if b.Empty() {
		return 0, errors.New("texture image is empty")
	}

	// GL puts the first row at the bottom
	flipped := transform.FlipV(img)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(b.Dx()),
		int32(b.Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(flipped.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	r.textures = append(r.textures, tex)
	return render.TextureID(tex), nil
}

func (r *GLRenderer) BindTexture(unit uint32, t render.TextureID) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, uint32(t))
}

func (r *GLRenderer) DrawMesh(id render.MeshID) {
	m, ok := r.meshes[id]
	if !ok {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

func (r *GLRenderer) Clear(c mgl32.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *GLRenderer) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Close releases all OpenGL resources
func (r *GLRenderer) Close() {
	for id, m := range r.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		delete(r.meshes, id)
	}
	for i := range r.textures {
		gl.DeleteTextures(1, &r.textures[i])
	}
	for _, p := range r.programs {
		gl.DeleteProgram(p)
	}
	r.textures = nil
	r.programs = nil
	r.uniforms = make(map[uint32]map[string]int32)
	r.current = 0
}

// createShaderProgram compiles and links a shader program from source
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		gl.DeleteProgram(program)
		gl.DeleteShader(vertexShader)
		gl.DeleteShader(fragmentShader)

		return 0, fmt.Errorf("shader program linking failed: %v", strings.TrimRight(log, "\x00"))
	}

	// Shaders are owned by the program once linked
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// compileShader compiles a shader from source
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		gl.DeleteShader(shader)

		return 0, fmt.Errorf("%s compilation failed: %v", shaderKind(shaderType), strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

func shaderKind(t uint32) string {
	if t == gl.VERTEX_SHADER {
		return "vertex shader"
	}
	return "fragment shader"
}

var _ render.Renderer = (*GLRenderer)(nil)
