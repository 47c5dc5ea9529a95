package demos

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"gldemos/internal/logger"
	"gldemos/pkg/mesh"
	"gldemos/pkg/render"
)

// Triangle draws one RGB triangle whose brightness pulses over time
type Triangle struct {
	log        *logger.Logger
	program    render.ProgramID
	mesh       render.MeshID
	brightness float32
}

func NewTriangle(log *logger.Logger) *Triangle {
	return &Triangle{log: log, brightness: 1}
}

func (t *Triangle) Name() string { return "triangle" }

func (t *Triangle) Setup(r render.Renderer) error {
	var err error
	if t.program, err = colorProgram(r); err != nil {
		return err
	}

	vertices := []mesh.ColoredVertex{
		{Position: mgl32.Vec3{-0.5, -0.5, 0}, Color: mgl32.Vec3{1, 0, 0}},
		{Position: mgl32.Vec3{0.5, -0.5, 0}, Color: mgl32.Vec3{0, 1, 0}},
		{Position: mgl32.Vec3{0, 0.5, 0}, Color: mgl32.Vec3{0, 0, 1}},
	}
	if t.mesh, err = uploadColored(r, vertices); err != nil {
		return err
	}

	t.log.Debug("triangle ready")
	return nil
}

// Update keeps brightness in [0.25, 1]
func (t *Triangle) Update(f render.Frame) {
	t.brightness = 0.25 + 0.75*(math32.Sin(f.Time)/2+0.5)
}

func (t *Triangle) Draw(r render.Renderer, f render.Frame) {
	r.Clear(mgl32.Vec4{0.2, 0.3, 0.3, 1})
	r.UseProgram(t.program)
	setCamera(r, mgl32.Ident4(), mgl32.Ident4(), mgl32.Ident4())
	r.SetFloat("brightness", t.brightness)
	r.DrawMesh(t.mesh)
}
