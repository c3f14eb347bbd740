package ui

import (
	"testing"

	"github.com/hubastard/grove-ui/engine/colors"
)

func TestBase_SetRectCountsChanges(t *testing.T) {
	w := Widget()
	var seen []Rect
	w.Node().ObserveRect(func(_, r Rect) { seen = append(seen, r) })

	w.Rect(LBWH(0, 0, 10, 10))
	w.Rect(LBWH(0, 0, 10, 10))
	w.Position(5, 5)

	if got := w.Node().Changes(); got != 2 {
		t.Errorf("Changes() = %d, want 2", got)
	}
	if len(seen) != 2 || seen[1] != LBWH(5, 5, 10, 10) {
		t.Errorf("rect observer saw %v", seen)
	}
}

func TestBase_ContentRect(t *testing.T) {
	type tc struct {
		rect    Rect
		padding [4]float32
		border  float32
		want    Rect
	}

	tests := map[string]tc{
		"no decoration": {
			rect: LBWH(1, 2, 30, 40),
			want: LBWH(1, 2, 30, 40),
		},
		"padding": {
			rect:    LBWH(0, 0, 100, 50),
			padding: [4]float32{1, 2, 3, 4},
			want:    LBWH(1, 4, 96, 44),
		},
		"padding and border": {
			rect:    LBWH(0, 0, 100, 50),
			padding: [4]float32{1, 2, 3, 4},
			border:  5,
			want:    LBWH(6, 9, 86, 34),
		},
		"collapses to zero": {
			rect:   LBWH(0, 0, 4, 4),
			border: 3,
			want:   LBWH(3, 3, 0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := Widget().Rect(tt.rect).Padding4(tt.padding[0], tt.padding[1], tt.padding[2], tt.padding[3])
			w.Border(tt.border, colors.White)
			if got := w.Node().ContentRect(); got != tt.want {
				t.Errorf("ContentRect() = %+v, want %+v", got, tt.want)
			}
			if w.Node().ContentWidth() != tt.want.Width || w.Node().ContentHeight() != tt.want.Height {
				t.Error("ContentWidth/ContentHeight disagree with ContentRect")
			}
		})
	}
}

func TestBase_ChildrenNotifySynchronously(t *testing.T) {
	parent := Widget()
	var kinds []ChildChangeKind
	parent.Node().ObserveChildren(func(c ChildChange) { kinds = append(kinds, c.Kind) })

	a, b, c := Widget(), Widget(), Widget()
	if !parent.Node().AddChild(parent, a) {
		t.Fatal("AddChild(a) = false")
	}
	if parent.Node().AddChild(parent, a) {
		t.Error("duplicate AddChild should report false")
	}
	parent.Node().AddChild(parent, b)
	if len(kinds) != 2 {
		t.Fatalf("observer ran %d times after two adds", len(kinds))
	}

	if !parent.Node().ReplaceChild(a, c) {
		t.Fatal("ReplaceChild() = false")
	}
	if parent.Node().ReplaceChild(a, c) {
		t.Error("replacing a missing child should fail")
	}
	if got := parent.Node().Children(); got[0] != UIElement(c) || got[1] != UIElement(b) {
		t.Errorf("children = %v", got)
	}
	if a.Node().Parent() != nil || c.Node().Parent() != UIElement(parent) {
		t.Error("ReplaceChild did not move parent links")
	}

	if parent.Node().RemoveChild(a) {
		t.Error("removing a missing child should fail")
	}
	parent.Node().RemoveChild(b)
	parent.Node().ClearChildren()
	parent.Node().ClearChildren()

	want := []ChildChangeKind{ChildAdded, ChildAdded, ChildReplaced, ChildRemoved, ChildrenCleared}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
	if c.Node().Parent() != nil {
		t.Error("ClearChildren kept parent link")
	}
}

func TestBase_BoxChangesNotify(t *testing.T) {
	w := Widget()
	n := 0
	w.Node().ObserveChildren(func(c ChildChange) {
		if c.Kind == BoxChanged {
			n++
		}
	})

	w.Padding(2)
	w.Padding(2)
	w.Padding2(1, 3)
	w.Border(1, colors.Red)
	w.Border(1, colors.Blue)

	if n != 3 {
		t.Errorf("BoxChanged fired %d times, want 3", n)
	}
	if got := w.Node().Padding(); got != [4]float32{1, 3, 1, 3} {
		t.Errorf("Padding() = %v", got)
	}
	if w.Node().BorderColor() != colors.Blue {
		t.Error("border colour should update even when width is unchanged")
	}
	if got := w.Node().BoxSize(); got != (Size{4, 8}) {
		t.Errorf("BoxSize() = %+v", got)
	}
}

func TestCommon_Fluent(t *testing.T) {
	w := Widget().ID("w").Position(3, 4).Size(10, 20).SizeHint(0.5, 1).SizeHintMax(100, 200).Color(colors.Green)

	n := w.Node()
	if n.ID() != "w" {
		t.Errorf("ID() = %q", n.ID())
	}
	if n.Rect() != LBWH(3, 4, 10, 20) {
		t.Errorf("Rect() = %+v", n.Rect())
	}
	if n.Width() != 10 || n.Height() != 20 {
		t.Errorf("Width/Height = %v/%v", n.Width(), n.Height())
	}
	if h := n.SizeHint(); h != HintOf(0.5, 1) {
		t.Errorf("SizeHint() = %+v", h)
	}
	if h := n.SizeHintMax(); h != HintOf(100, 200) {
		t.Errorf("SizeHintMax() = %+v", h)
	}
	if n.SizeHintMin().Set {
		t.Error("SizeHintMin should be absent by default")
	}
	if n.Color() != colors.Green {
		t.Errorf("Color() = %v", n.Color())
	}
}

func TestBase_ChildrenReturnsCopy(t *testing.T) {
	a, b := Widget().Size(10, 10), Widget().Size(20, 20)
	l := mustBox(t, BoxProps{Vertical: true}, a, b)

	got := l.Node().Children()
	got[0], got[1] = got[1], got[0]
	_ = append(got[:1], Widget().Size(99, 99))

	if kids := l.Node().Children(); len(kids) != 2 || kids[0] != UIElement(a) || kids[1] != UIElement(b) {
		t.Errorf("editing the returned slice changed the children: %v", kids)
	}
	assertHint(t, l, 20, 30)
}
