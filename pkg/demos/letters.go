package demos

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"gldemos/internal/logger"
	"gldemos/internal/util"
	"gldemos/pkg/config"
	"gldemos/pkg/mesh"
	"gldemos/pkg/render"
)

type letter struct {
	r      rune
	x      float32
	reveal float32 // seconds before the letter starts sliding in
	mesh   render.MeshID
	empty  bool
}

// Letters extrudes a word into depth-shaded block letters that fly in from
// far behind the camera target one after another.
type Letters struct {
	cfg     config.LettersConfig
	log     *logger.Logger
	program render.ProgramID
	letters []letter
}

func NewLetters(cfg config.LettersConfig, log *logger.Logger) *Letters {
	runes := []rune(cfg.Text)
	center := float32(len(runes)-1) / 2

	l := &Letters{cfg: cfg, log: log, letters: make([]letter, len(runes))}
	for i, r := range runes {
		l.letters[i] = letter{
			r:      r,
			x:      (float32(i) - center) * cfg.Advance,
			reveal: float32(i) * cfg.RevealInterval,
		}
	}
	return l
}

func (l *Letters) Name() string { return "letters" }

func (l *Letters) Setup(r render.Renderer) error {
	var err error
	if l.program, err = colorProgram(r); err != nil {
		return err
	}

	shade := mesh.DepthGradient(vec3(l.cfg.FrontColor), vec3(l.cfg.BackColor))
	for i := range l.letters {
		lt := &l.letters[i]
		vs, err := mesh.BuildGlyph(lt.r, l.cfg.Depth, shade)
		if err != nil {
			return fmt.Errorf("letter %d: %w", i, err)
		}
		if len(vs) == 0 {
			lt.empty = true
			continue
		}
		if lt.mesh, err = uploadColored(r, vs); err != nil {
			return err
		}
	}

	l.log.Infof("extruded %q", l.cfg.Text)
	return nil
}

// Offset returns whether letter i is shown at time t and its z position.
// A letter appears at its reveal time and slides forward until it reaches
// z=0.
func (l *Letters) Offset(i int, t float32) (bool, float32) {
	lt := l.letters[i]
	if t < lt.reveal {
		return false, l.cfg.StartZ
	}
	z := l.cfg.StartZ + l.cfg.SlideSpeed*(t-lt.reveal)
	if z > 0 {
		z = 0
	}
	return true, z
}

// Model places letter i at time t. The tumble angle shrinks with the
// remaining distance so letters arrive facing the camera.
func (l *Letters) Model(i int, t float32) mgl32.Mat4 {
	_, z := l.Offset(i, t)
	angle := t * util.Radians(z)
	return mgl32.Translate3D(l.letters[i].x, 0, z).Mul4(mgl32.HomogRotate3D(angle, spinAxis))
}

// Update has nothing to do; letter motion is a pure function of time
func (l *Letters) Update(f render.Frame) {}

func (l *Letters) Draw(r render.Renderer, f render.Frame) {
	bg := l.cfg.Background
	r.Clear(mgl32.Vec4{bg[0], bg[1], bg[2], 1})
	r.UseProgram(l.program)
	r.SetFloat("brightness", 1)

	projection := mgl32.Perspective(util.Radians(45), f.Aspect(), 0.1, 100)
	view := mgl32.Translate3D(0, 0, -5)

	for i, lt := range l.letters {
		if lt.empty {
			continue
		}
		if shown, _ := l.Offset(i, f.Time); !shown {
			continue
		}
		setCamera(r, projection, view, l.Model(i, f.Time))
		r.DrawMesh(lt.mesh)
	}
}
