package demos

import (
	"errors"
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"gldemos/pkg/mesh"
	"gldemos/pkg/render"
)

type uploadedMesh struct {
	floats int
	layout mesh.Layout
}

type drawCall struct {
	program render.ProgramID
	mesh    render.MeshID
	model   mgl32.Mat4
}

// fakeRenderer records what demos ask of the GPU
type fakeRenderer struct {
	failCompile bool

	programs []string
	meshes   []uploadedMesh
	textures []*image.RGBA
	draws    []drawCall
	clears   []mgl32.Vec4

	current  render.ProgramID
	mats     map[string]mgl32.Mat4
	floats   map[string]float32
	ints     map[string]int32
	bound    map[uint32]render.TextureID
	viewport [2]int
	closed   bool
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{
		mats:   make(map[string]mgl32.Mat4),
		floats: make(map[string]float32),
		ints:   make(map[string]int32),
		bound:  make(map[uint32]render.TextureID),
	}
}

func (f *fakeRenderer) CompileProgram(vs, fs string) (render.ProgramID, error) {
	if f.failCompile {
		return 0, errors.New("0:1(1): error: syntax error")
	}
	f.programs = append(f.programs, vs)
	return render.ProgramID(len(f.programs)), nil
}

func (f *fakeRenderer) UseProgram(p render.ProgramID)            { f.current = p }
func (f *fakeRenderer) SetMat4(name string, m mgl32.Mat4)        { f.mats[name] = m }
func (f *fakeRenderer) SetVec3(name string, v mgl32.Vec3)        {}
func (f *fakeRenderer) SetFloat(name string, v float32)          { f.floats[name] = v }
func (f *fakeRenderer) SetInt(name string, v int32)              { f.ints[name] = v }
func (f *fakeRenderer) Viewport(w, h int)                        { f.viewport = [2]int{w, h} }
func (f *fakeRenderer) Clear(c mgl32.Vec4)                       { f.clears = append(f.clears, c) }
func (f *fakeRenderer) BindTexture(u uint32, t render.TextureID) { f.bound[u] = t }
func (f *fakeRenderer) Close()                                   { f.closed = true }

func (f *fakeRenderer) UploadMesh(vertices []float32, layout mesh.Layout) (render.MeshID, error) {
	f.meshes = append(f.meshes, uploadedMesh{floats: len(vertices), layout: layout})
	return render.MeshID(len(f.meshes)), nil
}

func (f *fakeRenderer) UploadTexture(img *image.RGBA) (render.TextureID, error) {
	f.textures = append(f.textures, img)
	return render.TextureID(len(f.textures)), nil
}

func (f *fakeRenderer) DrawMesh(m render.MeshID) {
	f.draws = append(f.draws, drawCall{program: f.current, mesh: m, model: f.mats["model"]})
}

func (f *fakeRenderer) vertexCount(m render.MeshID) int {
	up := f.meshes[m-1]
	return up.layout.VertexCount(up.floats)
}

var _ render.Renderer = (*fakeRenderer)(nil)
