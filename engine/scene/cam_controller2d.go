package scene

import "github.com/hubastard/grove-ui/engine/core"

// OrthoController2D pans the preview camera with WASD and zooms with Z/X.
// Space resets the view.
type OrthoController2D struct {
	PanStep   float32 // layout units per key press, before zoom
	ZoomSpeed float32
	Camera    *OrthoCamera2D
}

func NewOrthoController2D(cam *OrthoCamera2D) *OrthoController2D {
	return &OrthoController2D{
		PanStep:   20,
		ZoomSpeed: 1.25,
		Camera:    cam,
	}
}

// HandleEvent reports whether ev moved the camera. Scrolling zooms too.
func (cc *OrthoController2D) HandleEvent(ev core.Event) bool {
	if sc, ok := ev.(core.EventScroll); ok {
		switch {
		case sc.Yoff > 0:
			cc.Camera.SetZoom(cc.Camera.Zoom * cc.ZoomSpeed)
		case sc.Yoff < 0:
			cc.Camera.SetZoom(cc.Camera.Zoom / cc.ZoomSpeed)
		default:
			return false
		}
		return true
	}
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down || k.Mods != core.ModNone {
		return false
	}
	step := cc.PanStep / cc.Camera.Zoom
	switch k.Key {
	case core.KeyW:
		cc.Camera.Move(0, step)
	case core.KeyS:
		cc.Camera.Move(0, -step)
	case core.KeyA:
		cc.Camera.Move(-step, 0)
	case core.KeyD:
		cc.Camera.Move(step, 0)
	case core.KeyZ:
		cc.Camera.SetZoom(cc.Camera.Zoom * cc.ZoomSpeed)
	case core.KeyX:
		cc.Camera.SetZoom(cc.Camera.Zoom / cc.ZoomSpeed)
	case core.KeySpace:
		cc.Camera.Reset()
	default:
		return false
	}
	return true
}
