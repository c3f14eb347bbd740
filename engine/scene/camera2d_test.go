package scene

import (
	"math"
	"testing"
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-5 }

func TestOrthoCamera2D_Project(t *testing.T) {
	type tc struct {
		setup        func(c *OrthoCamera2D)
		x, y         float32
		wantX, wantY float32
	}

	tests := map[string]tc{
		"origin is bottom-left": {
			x: 0, y: 0,
			wantX: -1, wantY: -1,
		},
		"far corner is top-right": {
			x: 200, y: 100,
			wantX: 1, wantY: 1,
		},
		"centre": {
			x: 100, y: 50,
		},
		"zoomed in": {
			setup: func(c *OrthoCamera2D) { c.SetZoom(2) },
			x:     100, y: 50,
			wantX: 1, wantY: 1,
		},
		"panned": {
			setup: func(c *OrthoCamera2D) { c.Move(100, 50) },
			x:     100, y: 50,
			wantX: -1, wantY: -1,
		},
		"reset": {
			setup: func(c *OrthoCamera2D) {
				c.Move(7, 7)
				c.SetZoom(3)
				c.Reset()
			},
			x: 200, y: 100,
			wantX: 1, wantY: 1,
		},
		"viewport resize": {
			setup: func(c *OrthoCamera2D) { c.SetViewportPixels(400, 200) },
			x:     200, y: 100,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewOrtho2D(200, 100)
			if tt.setup != nil {
				tt.setup(c)
			}
			x, y := c.Project(tt.x, tt.y)
			if !near(x, tt.wantX) || !near(y, tt.wantY) {
				t.Errorf("Project(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestOrthoCamera2D_ZoomFloor(t *testing.T) {
	c := NewOrtho2D(10, 10)
	c.SetZoom(0)
	if c.Zoom != 0.05 {
		t.Errorf("Zoom = %v, want 0.05", c.Zoom)
	}
}

func TestOrthoCamera2D_Unproject(t *testing.T) {
	c := NewOrtho2D(200, 100)
	c.Move(10, 20)
	c.SetZoom(2)

	x, y := c.Unproject(0, 100)
	if !near(x, 10) || !near(y, 20) {
		t.Errorf("Unproject(bottom-left) = (%v, %v), want (10, 20)", x, y)
	}
	x, y = c.Unproject(200, 0)
	if !near(x, 110) || !near(y, 70) {
		t.Errorf("Unproject(top-right) = (%v, %v), want (110, 70)", x, y)
	}

	// round trip through clip space
	px, py := c.Project(x, y)
	if !near(px, 1) || !near(py, 1) {
		t.Errorf("Project(Unproject(top-right)) = (%v, %v), want (1, 1)", px, py)
	}
}
