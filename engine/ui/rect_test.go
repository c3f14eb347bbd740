package ui

import "testing"

func TestRect_Edges(t *testing.T) {
	r := LBWH(10, 20, 30, 40)

	if r.Left() != 10 || r.Right() != 40 {
		t.Errorf("Left/Right = %v/%v, want 10/40", r.Left(), r.Right())
	}
	if r.Bottom() != 20 || r.Top() != 60 {
		t.Errorf("Bottom/Top = %v/%v, want 20/60", r.Bottom(), r.Top())
	}
	if x, y := r.Center(); x != 25 || y != 40 {
		t.Errorf("Center() = (%v, %v), want (25, 40)", x, y)
	}
	if got := LRBT(10, 40, 20, 60); got != r {
		t.Errorf("LRBT() = %+v, want %+v", got, r)
	}
}

func TestRect_Transforms(t *testing.T) {
	type tc struct {
		got  Rect
		want Rect
	}

	r := LBWH(10, 20, 30, 40)
	tests := map[string]tc{
		"move":                       {got: r.Move(5, -5), want: LBWH(15, 15, 30, 40)},
		"resize keeps corner":        {got: r.Resize(1, 2), want: LBWH(10, 20, 1, 2)},
		"min size grows":             {got: r.MinSize(50, 50), want: LBWH(10, 20, 50, 50)},
		"min size keeps larger axis": {got: r.MinSize(5, 60), want: LBWH(10, 20, 30, 60)},
		"min size no-op":             {got: r.MinSize(0, 0), want: r},
		"align left":                 {got: r.AlignLeft(0), want: LBWH(0, 20, 30, 40)},
		"align right":                {got: r.AlignRight(100), want: LBWH(70, 20, 30, 40)},
		"align bottom":               {got: r.AlignBottom(0), want: LBWH(10, 0, 30, 40)},
		"align top":                  {got: r.AlignTop(100), want: LBWH(10, 60, 30, 40)},
		"align center x":             {got: r.AlignCenterX(0), want: LBWH(-15, 20, 30, 40)},
		"align center y":             {got: r.AlignCenterY(0), want: LBWH(10, -20, 30, 40)},
		"align center":               {got: r.AlignCenter(50, 50), want: LBWH(35, 30, 30, 40)},
		"shrink":                     {got: r.Shrink(1, 2, 3, 4), want: LBWH(11, 24, 26, 34)},
		"shrink clamps":              {got: r.Shrink(20, 30, 20, 30), want: LBWH(30, 50, 0, 0)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestRect_TransformsDoNotMutate(t *testing.T) {
	r := LBWH(1, 2, 3, 4)
	_ = r.Move(10, 10)
	_ = r.Resize(10, 10)
	_ = r.AlignTop(100)
	if r != LBWH(1, 2, 3, 4) {
		t.Errorf("receiver changed to %+v", r)
	}
}

func TestRect_Contains(t *testing.T) {
	r := LBWH(0, 0, 10, 10)
	type tc struct {
		x, y float32
		want bool
	}

	tests := map[string]tc{
		"inside":       {x: 5, y: 5, want: true},
		"bottom-left":  {x: 0, y: 0, want: true},
		"top-right":    {x: 10, y: 10, want: true},
		"left outside": {x: -1, y: 5, want: false},
		"above":        {x: 5, y: 11, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
