package ui

import (
	"github.com/hubastard/grove-ui/engine/colors"
)

// Renderer draws solid quads centered at (cx, cy) with size w x h and
// colour RGBA [0..1].
type Renderer interface {
	DrawQuad(cx, cy, w, h float32, color colors.Color, rotation float32)
}

// Draw paints root and its descendants, parents before children. A widget
// with a transparent background draws nothing for itself but its children
// still draw.
func Draw(root UIElement, r Renderer) {
	Walk(root, func(el UIElement, _ int) bool {
		drawNode(el.Node(), r)
		return true
	})
}

func drawNode(b *Base, r Renderer) {
	rect := b.Rect()
	if b.color.Visible() {
		cx, cy := rect.Center()
		r.DrawQuad(cx, cy, rect.Width, rect.Height, b.color, 0)
	}
	if b.borderWidth > 0 && b.borderColor.Visible() {
		Stroke(r, rect, b.borderWidth, b.borderColor)
	}
}

// Stroke draws the inside edge of rect as four strips of the given width:
// left, right, bottom, top.
func Stroke(r Renderer, rect Rect, width float32, c colors.Color) {
	r.DrawQuad(rect.Left()+width/2, rect.CenterY(), width, rect.Height, c, 0)
	r.DrawQuad(rect.Right()-width/2, rect.CenterY(), width, rect.Height, c, 0)
	r.DrawQuad(rect.CenterX(), rect.Bottom()+width/2, rect.Width, width, c, 0)
	r.DrawQuad(rect.CenterX(), rect.Top()-width/2, rect.Width, width, c, 0)
}
