package main

import (
	"github.com/hubastard/grove-ui/engine/core"
	"github.com/hubastard/grove-ui/engine/profiler"
	"github.com/hubastard/grove-ui/engine/scene"
	"github.com/hubastard/grove-ui/engine/ui"
)

// sceneSource is a scene file on disk, or embedded bytes when path is empty.
type sceneSource struct {
	name string
	path string
	data []byte
}

func (s sceneSource) load(e *core.Engine, w, h int) (*scene.Scene, error) {
	opts := []scene.Option{
		scene.WithLogger(e.Log),
		scene.WithViewport(float32(w), float32(h)),
	}
	if s.path != "" {
		return scene.Load(s.path, opts...)
	}
	return scene.Parse(s.data, opts...)
}

// LayerScene keeps the scene root stretched over the framebuffer and draws
// the widget tree. R reloads the scene file, Escape quits.
type LayerScene struct {
	source sceneSource
	scene  *scene.Scene
	cam    *scene.OrthoCamera2D
	ctrl   *scene.OrthoController2D
	dirty  bool
}

func (l *LayerScene) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewOrtho2D(w, h)
	l.ctrl = scene.NewOrthoController2D(l.cam)
	l.reload(e)
}

func (l *LayerScene) OnDetach(e *core.Engine) {}

func (l *LayerScene) reload(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	s, err := l.source.load(e, w, h)
	if err != nil {
		// keep showing the previous scene
		e.Log.Error("load scene", "scene", l.source.name, "err", err)
		return
	}
	l.scene = s
	l.dirty = true
	e.Log.Info("scene loaded", "scene", l.source.name, "widgets", s.Len())
}

func (l *LayerScene) OnUpdate(e *core.Engine, dt float64) {
	if !l.dirty || l.scene == nil {
		return
	}
	end := profiler.Start("LayerScene.Layout")
	err := l.scene.Layout()
	end()
	if err != nil {
		e.Log.Error("layout", "err", err)
	}
	l.dirty = false
}

func (l *LayerScene) OnRender(e *core.Engine, alpha float64) {
	if l.scene == nil {
		return
	}
	end := profiler.Start("LayerScene.OnRender")
	e.Renderer.BeginScene(l.cam.VP())
	ui.Draw(l.scene.Root, e.Renderer)
	e.Renderer.EndScene()
	end()
}

func (l *LayerScene) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventResize:
		l.cam.SetViewportPixels(v.W, v.H)
		if l.scene != nil {
			l.scene.Resize(float32(v.W), float32(v.H))
			l.dirty = true
		}
	case core.EventKey:
		if !v.Down {
			break
		}
		switch v.Key {
		case core.KeyEscape:
			e.Window.RequestClose()
			return true
		case core.KeyR:
			if v.Mods == core.ModNone {
				l.reload(e)
				return true
			}
		}
	}
	return l.ctrl.HandleEvent(ev)
}

// Root returns the current widget tree, or nil before the first load.
func (l *LayerScene) Root() ui.UIElement {
	if l.scene == nil {
		return nil
	}
	return l.scene.Root
}

// Camera is the camera the scene is drawn with.
func (l *LayerScene) Camera() *scene.OrthoCamera2D { return l.cam }
