package ui

import (
	"github.com/hubastard/grove-ui/engine/errors"
)

// Placement holds the per-child parameters of an anchor layout. Unset
// anchors fall back to the layout defaults at layout time.
type Placement struct {
	AnchorX Anchor
	AnchorY Anchor
	AlignX  float32
	AlignY  float32
}

type AnchorOption func(*Placement)

func AnchorX(a Anchor) AnchorOption { return func(p *Placement) { p.AnchorX = a } }
func AnchorY(a Anchor) AnchorOption { return func(p *Placement) { p.AnchorY = a } }
func AlignX(v float32) AnchorOption { return func(p *Placement) { p.AlignX = v } }
func AlignY(v float32) AnchorOption { return func(p *Placement) { p.AlignY = v } }
func WithPlacement(pl Placement) AnchorOption { return func(p *Placement) { *p = pl } }

func (p Placement) validate() error {
	if p.AnchorX != AnchorUnset && !p.AnchorX.ValidOn(Horizontal) {
		return errors.New(errors.ErrCodeInvalidAnchor, "anchor_x %q is not a horizontal anchor", p.AnchorX)
	}
	if p.AnchorY != AnchorUnset && !p.AnchorY.ValidOn(Vertical) {
		return errors.New(errors.ErrCodeInvalidAnchor, "anchor_y %q is not a vertical anchor", p.AnchorY)
	}
	return nil
}

// UIAnchorLayout places every child independently against an anchor point
// of its content rect. Its own size hint asks for all available space.
type UIAnchorLayout struct {
	Common[*UIAnchorLayout]
	defaultAnchorX Anchor
	defaultAnchorY Anchor
	placements     map[*Base]Placement
}

func AnchorLayout(children ...UIElement) *UIAnchorLayout {
	l := &UIAnchorLayout{
		defaultAnchorX: AnchorCenter,
		defaultAnchorY: AnchorCenter,
		placements:     make(map[*Base]Placement),
	}
	l.Common = NewCommon(l)
	l.base.SetSizeHint(HintOf(1, 1))
	l.base.ObserveChildren(l.onChildrenChanged)
	for _, c := range children {
		l.base.AddChild(l, c)
	}
	return l
}

func (l *UIAnchorLayout) DefaultAnchors() (x, y Anchor) {
	return l.defaultAnchorX, l.defaultAnchorY
}

// SetDefaultAnchors changes the anchors used by children that leave theirs
// unset.
func (l *UIAnchorLayout) SetDefaultAnchors(x, y Anchor) error {
	if !x.ValidOn(Horizontal) {
		return errors.New(errors.ErrCodeInvalidAnchor, "default_anchor_x %q is not a horizontal anchor", x)
	}
	if !y.ValidOn(Vertical) {
		return errors.New(errors.ErrCodeInvalidAnchor, "default_anchor_y %q is not a vertical anchor", y)
	}
	l.defaultAnchorX, l.defaultAnchorY = x, y
	return nil
}

// Add registers child with its placement and returns it. Adding a child
// that is already present replaces its placement and keeps its position in
// the children list. Invalid anchors leave the layout untouched.
func (l *UIAnchorLayout) Add(child UIElement, opts ...AnchorOption) (UIElement, error) {
	var p Placement
	for _, opt := range opts {
		opt(&p)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	l.placements[child.Node()] = p
	l.base.AddChild(l, child)
	return child, nil
}

func (l *UIAnchorLayout) Remove(child UIElement) bool {
	return l.base.RemoveChild(child)
}

// Placement returns the parameters registered for child.
func (l *UIAnchorLayout) Placement(child UIElement) (Placement, bool) {
	if l.base.IndexOf(child) < 0 {
		return Placement{}, false
	}
	return l.placements[child.Node()], true
}

func (l *UIAnchorLayout) onChildrenChanged(c ChildChange) {
	switch c.Kind {
	case ChildAdded:
		if _, ok := l.placements[c.Child.Node()]; !ok {
			l.placements[c.Child.Node()] = Placement{}
		}
	case ChildRemoved:
		delete(l.placements, c.Child.Node())
	case ChildReplaced:
		delete(l.placements, c.Old.Node())
		if _, ok := l.placements[c.Child.Node()]; !ok {
			l.placements[c.Child.Node()] = Placement{}
		}
	case ChildrenCleared:
		clear(l.placements)
	}
}

// DoLayout moves every child so its anchor sits on the matching anchor of
// the content rect plus the child's align offset. Children declaring a
// minimum size are grown to it first. A child whose rect would not change
// is left alone.
func (l *UIAnchorLayout) DoLayout() error {
	content := l.base.ContentRect()
	for _, child := range l.base.children {
		node := child.Node()
		p := l.placements[node]

		ax := p.AnchorX
		if ax == AnchorUnset {
			ax = l.defaultAnchorX
		}
		ay := p.AnchorY
		if ay == AnchorUnset {
			ay = l.defaultAnchorY
		}
		xOps, err := ax.resolve(Horizontal)
		if err != nil {
			return err
		}
		yOps, err := ay.resolve(Vertical)
		if err != nil {
			return err
		}

		current := node.Rect()
		candidate := current
		if m := node.SizeHintMin(); m.Set {
			candidate = candidate.MinSize(m.X, m.Y)
		}

		target := xOps.align(candidate, xOps.get(content)+p.AlignX)
		target = yOps.align(target, yOps.get(content)+p.AlignY)
		if target != current {
			node.SetRect(target)
		}
	}
	return nil
}
