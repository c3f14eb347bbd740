package main

import (
	"time"

	"github.com/hubastard/grove-ui/engine/colors"
	"github.com/hubastard/grove-ui/engine/core"
	"github.com/hubastard/grove-ui/engine/profiler"
	"github.com/hubastard/grove-ui/engine/scratch"
	"github.com/hubastard/grove-ui/engine/ui"
)

var (
	contentOutline = colors.Magenta.WithAlpha(0.6)
	hoverOutline   = colors.Yellow
)

// titleEvery is how many updates pass between window title refreshes.
const titleEvery = 30

// LayerDebug outlines the content rect of every container and the widget
// under the cursor, and keeps frame timing and the hovered id in the window
// title. F1 toggles the outlines; Ctrl+P writes a speedscope profile.
type LayerDebug struct {
	scene   *LayerScene
	title   string
	hidden  bool
	hovered ui.UIElement
	frames  int
	ticks   int
	start   time.Time
	text    *scratch.Buffer
}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	l.text = scratch.New(128)
	l.start = time.Now()
}

func (l *LayerDebug) OnDetach(e *core.Engine) { e.Window.SetTitle(l.title) }

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {
	l.ticks++
	if l.ticks%titleEvery == 0 {
		l.refreshTitle(e)
	}

	root := l.scene.Root()
	if root == nil {
		return
	}
	mx, my := e.Input.Mouse()
	x, y := l.scene.Camera().Unproject(float32(mx), float32(my))
	if hit := ui.HitTest(root, x, y); hit != l.hovered {
		l.hovered = hit
		if hit != nil {
			n := hit.Node()
			e.Log.Debug("hover", "id", n.ID(), "type", ui.Kind(hit), "rect", n.Rect())
		}
	}
}

func (l *LayerDebug) refreshTitle(e *core.Engine) {
	elapsed := time.Since(l.start)
	l.start = time.Now()
	ms := float64(elapsed.Microseconds()) / 1000 / float64(max(l.frames, 1))
	l.frames = 0

	t := l.text.Reset().S(l.title).S(" | ").F(ms, 2).S(" ms")
	if l.hovered != nil {
		t.S(" | ").S(ui.Kind(l.hovered)).R(' ').S(l.hovered.Node().ID())
	}
	e.Window.SetTitle(t.View())
}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	l.frames++
	root := l.scene.Root()
	if l.hidden || root == nil {
		return
	}
	end := profiler.Start("LayerDebug.OnRender")
	e.Renderer.BeginScene(l.scene.Camera().VP())
	ui.Walk(root, func(el ui.UIElement, _ int) bool {
		if _, ok := el.(ui.Layouter); ok {
			ui.Stroke(e.Renderer, el.Node().ContentRect(), 1, contentOutline)
		}
		return true
	})
	if l.hovered != nil {
		ui.Stroke(e.Renderer, l.hovered.Node().Rect(), 2, hoverOutline)
	}
	e.Renderer.EndScene()
	end()
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down {
		return false
	}
	switch {
	case k.Key == core.KeyF1:
		l.hidden = !l.hidden
		stats := e.Renderer.Stats()
		e.Log.Info("debug overlay",
			"visible", !l.hidden,
			"draw_calls", stats.DrawCalls,
			"quads", stats.QuadCount,
			"heap_mb", float32(profiler.MemoryUsage())/(1<<20),
			"allocs", profiler.MemoryAllocs(),
			"goroutines", profiler.NumGoroutine(),
		)
		return true
	case k.Key == core.KeyP && k.Mods&core.ModCtrl != 0:
		if !profiler.Enabled() {
			e.Log.Warn("profiling is off; start with --profile")
			return true
		}
		const path = "grove.speedscope.json"
		if err := profiler.WriteSpeedscope(path); err != nil {
			e.Log.Error("profiler dump", "err", err)
		} else {
			for _, s := range profiler.Summary() {
				e.Log.Debug("span", "name", s.Name, "count", s.Count, "total", s.Total)
			}
			e.Log.Info("speedscope dump", "path", path)
		}
		return true
	}
	return false
}
