package ui

// Rect is an immutable rectangle. X/Y is the bottom-left corner and Y grows
// upward. Every transform returns a new value.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// LBWH builds a rect from its left, bottom, width and height.
func LBWH(left, bottom, width, height float32) Rect {
	return Rect{X: left, Y: bottom, Width: width, Height: height}
}

// LRBT builds a rect from its four edges.
func LRBT(left, right, bottom, top float32) Rect {
	return Rect{X: left, Y: bottom, Width: right - left, Height: top - bottom}
}

func (r Rect) Left() float32    { return r.X }
func (r Rect) Right() float32   { return r.X + r.Width }
func (r Rect) Bottom() float32  { return r.Y }
func (r Rect) Top() float32     { return r.Y + r.Height }
func (r Rect) CenterX() float32 { return r.X + r.Width/2 }
func (r Rect) CenterY() float32 { return r.Y + r.Height/2 }

func (r Rect) Center() (x, y float32) { return r.CenterX(), r.CenterY() }
func (r Rect) Size() Size             { return Size{W: r.Width, H: r.Height} }

func (r Rect) Move(dx, dy float32) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Resize keeps the bottom-left corner.
func (r Rect) Resize(width, height float32) Rect {
	r.Width = width
	r.Height = height
	return r
}

// MinSize grows each axis to at least the given value, keeping the
// bottom-left corner. Axes already large enough are unchanged.
func (r Rect) MinSize(width, height float32) Rect {
	return r.Resize(maxf(r.Width, width), maxf(r.Height, height))
}

// The Align helpers set the corner from v and the size alone, so the result
// never depends on where the rect was before.
func (r Rect) AlignLeft(v float32) Rect    { r.X = v; return r }
func (r Rect) AlignRight(v float32) Rect   { r.X = v - r.Width; return r }
func (r Rect) AlignBottom(v float32) Rect  { r.Y = v; return r }
func (r Rect) AlignTop(v float32) Rect     { r.Y = v - r.Height; return r }
func (r Rect) AlignCenterX(v float32) Rect { r.X = v - r.Width/2; return r }
func (r Rect) AlignCenterY(v float32) Rect { r.Y = v - r.Height/2; return r }

func (r Rect) AlignCenter(x, y float32) Rect {
	return r.AlignCenterX(x).AlignCenterY(y)
}

// Shrink insets every edge; width and height never go below zero.
func (r Rect) Shrink(left, top, right, bottom float32) Rect {
	return Rect{
		X:      r.X + left,
		Y:      r.Y + bottom,
		Width:  maxf(0, r.Width-left-right),
		Height: maxf(0, r.Height-top-bottom),
	}
}

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.Left() && x <= r.Right() && y >= r.Bottom() && y <= r.Top()
}

// Size is a width/height pair.
type Size struct {
	W, H float32
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
