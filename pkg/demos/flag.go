package demos

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"gldemos/internal/logger"
	"gldemos/pkg/camera"
	"gldemos/pkg/config"
	"gldemos/pkg/mesh"
	"gldemos/pkg/render"
)

// flagAnchor is where the pole stands; the camera orbits around it
var flagAnchor = mgl32.Vec3{-0.7, 0, 0}

// Pole and base, in flag space. The top of the pole lines up with the top
// edge of a unit-height flag.
var (
	poleBox   = mesh.Box{Min: mgl32.Vec3{-0.05, -5.5, -0.05}, Max: mgl32.Vec3{0.05, 0.5, 0.05}}
	baseBox   = mesh.Box{Min: mgl32.Vec3{-0.5, -5.5, -0.5}, Max: mgl32.Vec3{0.5, -5.3, 0.5}}
	poleColor = mgl32.Vec3{0.7, 0.7, 0.7}
	baseColor = mgl32.Vec3{0, 0, 0}
)

// Flag waves a procedurally painted flag on a pole while the camera rises
// from below and then circles it.
type Flag struct {
	cfg   config.FlagConfig
	log   *logger.Logger
	cam   *camera.Camera
	orbit camera.RisingOrbit

	flagProgram render.ProgramID
	poleProgram render.ProgramID
	flagMesh    render.MeshID
	poleMesh    render.MeshID
	texture     render.TextureID
}

func NewFlag(cfg config.FlagConfig, log *logger.Logger) *Flag {
	orbit := cfg.Orbit()
	settings := camera.DefaultSettings()
	settings.Zoom = 30

	return &Flag{
		cfg:   cfg,
		log:   log,
		cam:   camera.New(orbit.PositionAt(0), mgl32.Vec3{0, 1, 0}, -90, 0, settings),
		orbit: orbit,
	}
}

func (fl *Flag) Name() string { return "flag" }

// Camera exposes the orbiting camera
func (fl *Flag) Camera() *camera.Camera { return fl.cam }

func (fl *Flag) Setup(r render.Renderer) error {
	var err error
	if fl.flagProgram, err = r.CompileProgram(flagVertexShader, textureFragmentShader); err != nil {
		return fmt.Errorf("failed to build flag program: %w", err)
	}
	if fl.poleProgram, err = colorProgram(r); err != nil {
		return err
	}

	strip := mesh.BuildFlagStrip(fl.cfg.Strip())
	if fl.flagMesh, err = r.UploadMesh(mesh.InterleaveTextured(strip), mesh.TexturedLayout); err != nil {
		return fmt.Errorf("failed to upload flag: %w", err)
	}

	pole := mesh.BuildBox(poleBox.Min, poleBox.Max, mesh.Solid(poleColor))
	pole = mesh.AppendBox(pole, baseBox.Min, baseBox.Max, mesh.Solid(baseColor))
	if fl.poleMesh, err = uploadColored(r, pole); err != nil {
		return err
	}

	img := PaintFlag(fl.cfg.Stripes, fl.cfg.Emblem, fl.cfg.TextureSize)
	if fl.texture, err = r.UploadTexture(img); err != nil {
		return fmt.Errorf("failed to upload flag texture: %w", err)
	}

	fl.log.Infof("flag ready: %d strips, %dx%d texture, camera reaches orbit after %.0fs",
		fl.cfg.Strip().StripCount(), img.Bounds().Dx(), img.Bounds().Dy(), fl.orbit.RiseDuration())
	return nil
}

func (fl *Flag) Update(f render.Frame) {
	fl.cam.SetPosition(fl.orbit.PositionAt(f.Time))
}

func (fl *Flag) Draw(r render.Renderer, f render.Frame) {
	r.Clear(mgl32.Vec4{1, 1, 1, 1})

	projection := fl.cam.Projection(f.Aspect(), 0.1, 100)
	view := fl.cam.TargetViewMatrix(flagAnchor)
	model := mgl32.Translate3D(flagAnchor[0], flagAnchor[1], flagAnchor[2])

	r.UseProgram(fl.flagProgram)
	r.SetFloat("time", f.Time)
	r.BindTexture(0, fl.texture)
	r.SetInt("flagTexture", 0)
	setCamera(r, projection, view, model)
	r.DrawMesh(fl.flagMesh)

	r.UseProgram(fl.poleProgram)
	r.SetFloat("brightness", 1)
	setCamera(r, projection, view, model)
	r.DrawMesh(fl.poleMesh)
}
