package core

import (
	"runtime"
	"time"

	"github.com/charmbracelet/log"
)

// Run wires the platform window and renderer and executes the main loop
// until the window asks to close.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	// The window owns the context; the renderer is shut down first.
	if d, ok := win.(interface{ Destroy() }); ok {
		defer d.Destroy()
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)
	logger.Info("engine started", "title", cfg.Title, "framebuffer", [2]int{w, h})

	eng := &Engine{
		Window:   win,
		Renderer: rend,
		Input:    NewInput(),
		Layers:   &LayerStack{},
		Log:      logger,
		start:    time.Now(),
	}
	win.SetEventCallback(func(ev Event) { dispatch(eng, app, ev) })

	app.OnStart(eng)

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		// Platform emits through the event callback.
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			accum -= tick
			steps++
		}
		if steps == maxStep {
			accum = 0
		}
		alpha := float64(accum) / float64(tick)

		rend.Clear(cfg.ClearColor)
		app.OnRender(eng, alpha)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })

		win.SwapBuffers()
	}

	for {
		if _, ok := eng.PopLayer(); !ok {
			break
		}
	}
	app.OnShutdown(eng)
	logger.Info("engine exit", "uptime", eng.Uptime().Round(time.Millisecond))
	return nil
}

// dispatch updates input state, lets the app observe ev, then offers it to
// the layers top down.
func dispatch(eng *Engine, app App, ev Event) {
	eng.Input.Handle(ev)
	if r, ok := ev.(EventResize); ok {
		if r.W < 1 || r.H < 1 {
			return
		}
		eng.Renderer.Resize(r.W, r.H)
	}
	app.OnEvent(eng, ev)
	eng.Layers.ForEachReverse(func(l Layer) bool { return l.OnEvent(eng, ev) })
}
