package scene

// OrthoCamera2D maps layout coordinates (origin bottom-left, y up, one unit
// per framebuffer pixel) to clip space, with pan and zoom.
type OrthoCamera2D struct {
	Width, Height float32
	Near, Far     float32
	X, Y          float32
	Zoom          float32 // 1 = no zoom
	vp            [16]float32
	dirty         bool
}

func NewOrtho2D(width, height int) *OrthoCamera2D {
	c := &OrthoCamera2D{
		Width:  float32(width),
		Height: float32(height),
		Near:   -1,
		Far:    1,
		Zoom:   1,
	}
	c.Recalculate()
	return c
}

func (c *OrthoCamera2D) SetViewportPixels(w, h int) {
	c.Width, c.Height = float32(w), float32(h)
	c.dirty = true
}

func (c *OrthoCamera2D) Move(dx, dy float32) { c.X += dx; c.Y += dy; c.dirty = true }

func (c *OrthoCamera2D) SetZoom(z float32) {
	if z < 0.05 {
		z = 0.05
	}
	c.Zoom = z
	c.dirty = true
}

// Reset clears pan and zoom.
func (c *OrthoCamera2D) Reset() {
	c.X, c.Y, c.Zoom = 0, 0, 1
	c.dirty = true
}

func (c *OrthoCamera2D) VP() [16]float32 {
	if c.dirty {
		c.Recalculate()
	}
	return c.vp
}

func (c *OrthoCamera2D) Recalculate() {
	z := c.Zoom
	proj := ortho(0, c.Width/z, 0, c.Height/z, c.Near, c.Far)
	c.vp = mul(proj, translate(-c.X, -c.Y, 0))
	c.dirty = false
}

// Project returns the clip-space position of a layout point.
func (c *OrthoCamera2D) Project(x, y float32) (float32, float32) {
	m := c.VP()
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}

// Unproject maps a window position (origin top-left, y down, framebuffer
// pixels) back to layout coordinates.
func (c *OrthoCamera2D) Unproject(px, py float32) (float32, float32) {
	return c.X + px/c.Zoom, c.Y + (c.Height-py)/c.Zoom
}

// ---- tiny mat helpers (column-major, GLSL-style) ----

func translate(x, y, z float32) [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}

// mul returns a*b with m[col*4+row] indexing.
func mul(a, b [16]float32) [16]float32 {
	var out [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += a[k*4+row] * b[col*4+k]
			}
			out[col*4+row] = s
		}
	}
	return out
}
