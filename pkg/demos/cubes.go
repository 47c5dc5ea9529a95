package demos

import (
	"github.com/go-gl/mathgl/mgl32"

	"gldemos/internal/logger"
	"gldemos/internal/util"
	"gldemos/pkg/camera"
	"gldemos/pkg/config"
	"gldemos/pkg/input"
	"gldemos/pkg/mesh"
	"gldemos/pkg/render"
)

// autoMoveFov is the fixed field of view while the camera flies its path
const autoMoveFov = 60

// Cubes is a field of spinning boxes explored with a free-look camera.
// Q switches to a scripted fly-around that looks at the origin, E switches
// back to manual control.
type Cubes struct {
	cfg  config.CubesConfig
	log  *logger.Logger
	cam  *camera.Camera
	look *input.FreeLook
	path camera.Path

	autoMove bool
	program  render.ProgramID
	meshes   []render.MeshID
}

func NewCubes(cfg *config.Config, log *logger.Logger) *Cubes {
	cam := camera.New(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0}, -90, 0, cfg.Camera.Settings())
	return &Cubes{
		cfg:      cfg.Cubes,
		log:      log,
		cam:      cam,
		look:     input.NewFreeLook(cam),
		path:     camera.DefaultLissajous(),
		autoMove: cfg.Cubes.AutoMove,
	}
}

func (c *Cubes) Name() string         { return "cubes" }
func (c *Cubes) CapturesCursor() bool { return true }

// Camera exposes the free-look camera
func (c *Cubes) Camera() *camera.Camera { return c.cam }

// AutoMove reports whether the scripted path drives the camera
func (c *Cubes) AutoMove() bool { return c.autoMove }

func (c *Cubes) Setup(r render.Renderer) error {
	var err error
	if c.program, err = colorProgram(r); err != nil {
		return err
	}

	half := c.cfg.Size / 2
	min, max := mgl32.Vec3{-half, -half, -half}, mgl32.Vec3{half, half, half}

	c.meshes = make([]render.MeshID, len(c.cfg.Positions))
	for i := range c.cfg.Positions {
		color := vec3(c.cfg.Colors[i%len(c.cfg.Colors)])
		if c.meshes[i], err = uploadColored(r, mesh.BuildBox(min, max, mesh.Solid(color))); err != nil {
			return err
		}
	}

	c.log.Infof("%d cubes ready, WASD/mouse/scroll to look around, Q/E toggles auto-move", len(c.meshes))
	return nil
}

func (c *Cubes) Update(f render.Frame) {
	if c.autoMove {
		c.look.State.Apply(f.Events)
	} else {
		c.look.Handle(f.Events, f.Delta)
	}

	switch {
	case !c.autoMove && c.look.State.Pressed(input.KeyQ):
		c.autoMove = true
		c.log.Info("auto-move on")
	case c.autoMove && c.look.State.Pressed(input.KeyE):
		c.autoMove = false
		c.cam.ResetPointer()
		c.log.Info("auto-move off")
	}

	if c.autoMove {
		c.cam.SetPosition(c.path.PositionAt(f.Time))
	}
}

// View returns the current view matrix
func (c *Cubes) View() mgl32.Mat4 {
	if c.autoMove {
		return c.cam.TargetViewMatrix(mgl32.Vec3{})
	}
	return c.cam.ViewMatrix()
}

// Projection returns the current projection matrix
func (c *Cubes) Projection(aspect float32) mgl32.Mat4 {
	if c.autoMove {
		return mgl32.Perspective(util.Radians(autoMoveFov), aspect, 0.1, 100)
	}
	return c.cam.Projection(aspect, 0.1, 100)
}

// Model places cube i at time t
func (c *Cubes) Model(i int, t float32) mgl32.Mat4 {
	p := c.cfg.Positions[i]
	angle := t * util.Radians(c.cfg.SpinRate*float32(i+1))
	return mgl32.Translate3D(p[0], p[1], p[2]).Mul4(mgl32.HomogRotate3D(angle, spinAxis))
}

func (c *Cubes) Draw(r render.Renderer, f render.Frame) {
	r.Clear(mgl32.Vec4{0.1, 0.1, 0.12, 1})
	r.UseProgram(c.program)
	r.SetFloat("brightness", 1)

	projection := c.Projection(f.Aspect())
	view := c.View()
	for i, m := range c.meshes {
		setCamera(r, projection, view, c.Model(i, f.Time))
		r.DrawMesh(m)
	}
}
