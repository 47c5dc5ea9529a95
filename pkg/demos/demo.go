// Package demos contains the scenes the engine can run. Scenes only talk to
// the GPU through render.Renderer.
package demos

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"gldemos/internal/logger"
	"gldemos/pkg/config"
	"gldemos/pkg/mesh"
	"gldemos/pkg/render"
)

// Demo is a self-contained scene. Setup runs once with a current GL context,
// then Update and Draw run every frame.
type Demo interface {
	Name() string
	Setup(r render.Renderer) error
	Update(f render.Frame)
	Draw(r render.Renderer, f render.Frame)
}

// CursorCapturer is implemented by demos that want a hidden, locked pointer
type CursorCapturer interface {
	CapturesCursor() bool
}

// ErrUnknownDemo is returned by New for names not in the registry
var ErrUnknownDemo = errors.New("unknown demo")

type factory func(cfg *config.Config, log *logger.Logger) Demo

var registry = map[string]factory{
	"triangle": func(cfg *config.Config, log *logger.Logger) Demo { return NewTriangle(log) },
	"cubes":    func(cfg *config.Config, log *logger.Logger) Demo { return NewCubes(cfg, log) },
	"letters":  func(cfg *config.Config, log *logger.Logger) Demo { return NewLetters(cfg.Letters, log) },
	"flag":     func(cfg *config.Config, log *logger.Logger) Demo { return NewFlag(cfg.Flag, log) },
}

// Names lists the registered demos in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named demo. The demo logs under its own name.
func New(name string, cfg *config.Config, log *logger.Logger) (Demo, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownDemo, name, Names())
	}
	return f(cfg, log.Named(name)), nil
}

// WantsCursor reports whether d asks for pointer capture
func WantsCursor(d Demo) bool {
	c, ok := d.(CursorCapturer)
	return ok && c.CapturesCursor()
}

// colorProgram compiles the shared per-vertex color shader
func colorProgram(r render.Renderer) (render.ProgramID, error) {
	p, err := r.CompileProgram(colorVertexShader, colorFragmentShader)
	if err != nil {
		return 0, fmt.Errorf("failed to build color program: %w", err)
	}
	return p, nil
}

func uploadColored(r render.Renderer, vs []mesh.ColoredVertex) (render.MeshID, error) {
	id, err := r.UploadMesh(mesh.InterleaveColored(vs), mesh.ColoredLayout)
	if err != nil {
		return 0, fmt.Errorf("failed to upload mesh: %w", err)
	}
	return id, nil
}

// setCamera uploads the three transform uniforms of the current program
func setCamera(r render.Renderer, projection, view, model mgl32.Mat4) {
	r.SetMat4("projection", projection)
	r.SetMat4("view", view)
	r.SetMat4("model", model)
}

// spinAxis is the tumbling axis shared by the rotating demos
var spinAxis = mgl32.Vec3{1, 0.3, 0.5}.Normalize()

func vec3(c [3]float32) mgl32.Vec3 {
	return mgl32.Vec3(c)
}
