// Package engine owns the window, the GL context and the frame loop that
// drives one demo at a time.
package engine

import (
	"fmt"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"gldemos/internal/logger"
	"gldemos/pkg/config"
	"gldemos/pkg/demos"
	"gldemos/pkg/render"
)

// Engine runs a demo inside a GLFW window
type Engine struct {
	window   *glfw.Window
	config   *config.Config
	logger   *logger.Logger
	renderer *GLRenderer
	input    *InputHandler
	watcher  *config.Watcher
	pinned   string

	demo      demos.Demo
	isRunning bool
	start     time.Time
	lastFrame time.Time
	fbWidth   int
	fbHeight  int
}

// NewEngine opens the window, creates the GL context and sets up the demo
// named by cfg.Demo
func NewEngine(cfg *config.Config, log *logger.Logger) (*Engine, error) {
	demo, err := demos.New(cfg.Demo, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	width, height := cfg.Window.Width, cfg.Window.Height
	var monitor *glfw.Monitor
	if cfg.Window.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if mode := monitor.GetVideoMode(); mode != nil {
			width, height = mode.Width, mode.Height
		}
	}

	window, err := glfw.CreateWindow(width, height, cfg.Window.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(swapInterval(cfg.Window.VSync))

	renderer, err := NewGLRenderer()
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}
	log.Infof("OpenGL %s", renderer.Version())

	e := &Engine{
		window:   window,
		config:   cfg,
		logger:   log,
		renderer: renderer,
		input:    NewInputHandler(window),
	}
	e.fbWidth, e.fbHeight = window.GetFramebufferSize()
	window.SetFramebufferSizeCallback(e.resizeCallback)

	if err := e.setDemo(demo); err != nil {
		e.cleanup()
		return nil, err
	}
	return e, nil
}

// WatchConfig reloads the demo whenever the file at path changes. A
// non-empty pinnedDemo overrides the demo named in reloaded files.
func (e *Engine) WatchConfig(path, pinnedDemo string) error {
	w, err := config.Watch(path, e.logger.Named("config"))
	if err != nil {
		return err
	}
	e.watcher = w
	e.pinned = pinnedDemo
	e.logger.Infof("watching %s for changes", path)
	return nil
}

// setDemo uploads d and restarts the clock
func (e *Engine) setDemo(d demos.Demo) error {
	if err := d.Setup(e.renderer); err != nil {
		return fmt.Errorf("failed to set up demo %s: %w", d.Name(), err)
	}
	e.demo = d
	e.input.CaptureCursor(demos.WantsCursor(d))
	e.start = time.Now()
	e.lastFrame = e.start
	e.logger.Infof("running demo %s", d.Name())
	return nil
}

// applyConfig swaps in a reloaded config. The running demo survives if the
// new one fails to build.
func (e *Engine) applyConfig(cfg *config.Config) {
	if e.pinned != "" {
		cfg.Demo = e.pinned
	}
	e.logger.SetLevel(cfg.LogLevel)

	next, err := demos.New(cfg.Demo, cfg, e.logger)
	if err != nil {
		e.logger.Errorf("keeping %s: %v", e.demo.Name(), err)
		return
	}

	prev := e.demo
	e.renderer.Close()
	if err := e.setDemo(next); err != nil {
		e.logger.Errorf("reload failed, restoring %s: %v", prev.Name(), err)
		e.renderer.Close()
		if err := e.setDemo(prev); err != nil {
			e.logger.Errorf("failed to restore %s: %v", prev.Name(), err)
			e.isRunning = false
			return
		}
	} else {
		e.config = cfg
	}

	glfw.SwapInterval(swapInterval(e.config.Window.VSync))
}

// Run starts the main loop and returns once the window closes
func (e *Engine) Run() {
	e.isRunning = true
	defer e.cleanup()

	for e.isRunning && !e.window.ShouldClose() {
		frameStart := time.Now()

		if e.watcher != nil {
			select {
			case cfg := <-e.watcher.Updates():
				e.applyConfig(cfg)
			default:
			}
		}

		events := e.input.Drain()
		if quitRequested(events) {
			e.window.SetShouldClose(true)
		}

		f := render.Frame{
			Time:   float32(frameStart.Sub(e.start).Seconds()),
			Delta:  float32(frameStart.Sub(e.lastFrame).Seconds()),
			Width:  e.fbWidth,
			Height: e.fbHeight,
			Events: events,
		}
		e.lastFrame = frameStart

		e.renderer.Viewport(e.fbWidth, e.fbHeight)
		e.demo.Update(f)
		e.demo.Draw(e.renderer, f)

		e.window.SwapBuffers()
		glfw.PollEvents()

		if wait := frameWait(time.Since(frameStart), e.config.Window.FrameRate); wait > 0 {
			time.Sleep(wait)
		}
	}
}

func (e *Engine) resizeCallback(_ *glfw.Window, width int, height int) {
	e.logger.Debugf("framebuffer resized to %dx%d", width, height)
	e.fbWidth = width
	e.fbHeight = height
}

// cleanup performs necessary cleanup before exiting
func (e *Engine) cleanup() {
	e.logger.Info("Shutting down engine...")
	if e.watcher != nil {
		e.watcher.Close()
		e.watcher = nil
	}
	e.renderer.Close()
	e.window.Destroy()
	glfw.Terminate()
}

// frameWait is how long to sleep after a frame that took elapsed to hit
// frameRate frames per second. Zero or negative rates mean uncapped.
func frameWait(elapsed time.Duration, frameRate int) time.Duration {
	if frameRate <= 0 {
		return 0
	}
	target := time.Second / time.Duration(frameRate)
	if elapsed >= target {
		return 0
	}
	return target - elapsed
}

func swapInterval(vsync bool) int {
	if vsync {
		return 1
	}
	return 0
}
