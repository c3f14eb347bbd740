package ui

import (
	"testing"

	"github.com/hubastard/grove-ui/engine/colors"
)

type quad struct {
	cx, cy, w, h float32
	color        colors.Color
}

type recordingRenderer struct {
	quads []quad
}

func (r *recordingRenderer) DrawQuad(cx, cy, w, h float32, c colors.Color, _ float32) {
	r.quads = append(r.quads, quad{cx, cy, w, h, c})
}

func buildTree(t *testing.T) (*UIAnchorLayout, *UIBoxLayout, *UIWidget, *UIWidget) {
	t.Helper()
	a := Widget().ID("a").Size(20, 10)
	b := Widget().ID("b").Size(40, 20)
	box := mustBox(t, BoxProps{Vertical: true, Align: AnchorLeft, SpaceBetween: 5}, a, b).ID("box")
	box.FitContent()

	root := AnchorLayout().ID("root").Rect(LBWH(0, 0, 200, 100))
	mustAdd(t, root, box, AnchorX(AnchorLeft), AlignX(10), AnchorY(AnchorTop), AlignY(-10))
	return root, box, a, b
}

func TestLayoutTree_Cascades(t *testing.T) {
	root, box, a, b := buildTree(t)

	if err := LayoutTree(root); err != nil {
		t.Fatalf("LayoutTree() unexpected error: %v", err)
	}

	if got, want := box.Node().Rect(), LBWH(10, 55, 40, 35); got != want {
		t.Errorf("box = %+v, want %+v", got, want)
	}
	if got, want := a.Node().Rect(), LBWH(10, 80, 20, 10); got != want {
		t.Errorf("a = %+v, want %+v", got, want)
	}
	if got, want := b.Node().Rect(), LBWH(10, 55, 40, 20); got != want {
		t.Errorf("b = %+v, want %+v", got, want)
	}
}

func TestWalk(t *testing.T) {
	root, _, _, _ := buildTree(t)

	var ids []string
	var depths []int
	Walk(root, func(el UIElement, depth int) bool {
		ids = append(ids, el.Node().ID())
		depths = append(depths, depth)
		return true
	})
	wantIDs := []string{"root", "box", "a", "b"}
	wantDepths := []int{0, 1, 2, 2}
	for i := range wantIDs {
		if ids[i] != wantIDs[i] || depths[i] != wantDepths[i] {
			t.Fatalf("walk = %v %v, want %v %v", ids, depths, wantIDs, wantDepths)
		}
	}

	n := 0
	Walk(root, func(el UIElement, _ int) bool {
		n++
		return el.Node().ID() != "box"
	})
	if n != 2 {
		t.Errorf("pruned walk visited %d elements, want 2", n)
	}
}

func TestKind(t *testing.T) {
	root, box, a, _ := buildTree(t)
	type tc struct {
		el   UIElement
		want string
	}

	tests := map[string]tc{
		"anchor": {el: root, want: "anchor"},
		"box":    {el: box, want: "box"},
		"widget": {el: a, want: "widget"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Kind(tt.el); got != tt.want {
				t.Errorf("Kind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDraw(t *testing.T) {
	root := AnchorLayout().Rect(LBWH(0, 0, 100, 50)).Color(colors.Black)
	child := Widget().Size(10, 10).Color(colors.Red).Border(2, colors.White)
	hidden := Widget().Size(10, 10)
	mustAdd(t, root, child, AnchorX(AnchorLeft), AnchorY(AnchorBottom))
	mustAdd(t, root, hidden)
	if err := LayoutTree(root); err != nil {
		t.Fatal(err)
	}

	r := &recordingRenderer{}
	Draw(root, r)

	if len(r.quads) != 6 {
		t.Fatalf("drew %d quads, want 6 (root, child, 4 border strips)", len(r.quads))
	}
	if q := r.quads[0]; q != (quad{50, 25, 100, 50, colors.Black}) {
		t.Errorf("root quad = %+v", q)
	}
	if q := r.quads[1]; q != (quad{5, 5, 10, 10, colors.Red}) {
		t.Errorf("child quad = %+v", q)
	}
	borders := []quad{
		{1, 5, 2, 10, colors.White},
		{9, 5, 2, 10, colors.White},
		{5, 1, 10, 2, colors.White},
		{5, 9, 10, 2, colors.White},
	}
	for i, want := range borders {
		if got := r.quads[2+i]; got != want {
			t.Errorf("border %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestHitTest(t *testing.T) {
	root, box, a, b := buildTree(t)
	if err := LayoutTree(root); err != nil {
		t.Fatal(err)
	}
	type tc struct {
		x, y float32
		want UIElement
	}

	tests := map[string]tc{
		"first box child":       {x: 15, y: 85, want: a},
		"second box child":      {x: 45, y: 60, want: b},
		"box gap beside child":  {x: 45, y: 85, want: box},
		"root background":       {x: 150, y: 20, want: root},
		"outside everything":    {x: -1, y: 0, want: nil},
		"shared edge goes deep": {x: 10, y: 55, want: b},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := HitTest(root, tt.x, tt.y); got != tt.want {
				t.Errorf("HitTest(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
