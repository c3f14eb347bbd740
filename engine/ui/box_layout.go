package ui

import (
	"github.com/hubastard/grove-ui/engine/errors"
)

// BoxProps configures a box layout.
type BoxProps struct {
	// Vertical stacks top to bottom; otherwise left to right.
	Vertical bool
	// Align positions children on the cross axis: left, center or right
	// for vertical boxes, top, center or bottom for horizontal ones.
	// AnchorUnset means center.
	Align        Anchor
	SpaceBetween float32
}

func (p BoxProps) crossAxis() Axis {
	if p.Vertical {
		return Horizontal
	}
	return Vertical
}

func (p BoxProps) validate() error {
	if p.Align != AnchorUnset && !p.Align.ValidOn(p.crossAxis()) {
		return errors.New(errors.ErrCodeInvalidAlign, "align %q is not valid on the %s cross axis", p.Align, p.crossAxis())
	}
	if p.SpaceBetween < 0 {
		return errors.New(errors.ErrCodeInvalidSpacing, "space_between must not be negative, got %v", p.SpaceBetween)
	}
	return nil
}

// UIBoxLayout stacks its children along one axis with a fixed gap and
// keeps its minimum size hint equal to the space they need.
type UIBoxLayout struct {
	Common[*UIBoxLayout]
	props BoxProps
}

func BoxLayout(props BoxProps, children ...UIElement) (*UIBoxLayout, error) {
	if err := props.validate(); err != nil {
		return nil, err
	}
	l := &UIBoxLayout{props: props}
	l.Common = NewCommon(l)
	l.base.ObserveChildren(func(ChildChange) { l.UpdateSizeHints() })
	for _, c := range children {
		l.base.AddChild(l, c)
	}
	l.UpdateSizeHints()
	return l, nil
}

func (l *UIBoxLayout) Props() BoxProps { return l.props }

// SetSpaceBetween changes the gap and refreshes the size hint.
func (l *UIBoxLayout) SetSpaceBetween(space float32) error {
	p := l.props
	p.SpaceBetween = space
	if err := p.validate(); err != nil {
		return err
	}
	l.props = p
	l.UpdateSizeHints()
	return nil
}

// Add appends child and returns it.
func (l *UIBoxLayout) Add(child UIElement) UIElement {
	l.base.AddChild(l, child)
	return child
}

func (l *UIBoxLayout) Remove(child UIElement) bool {
	return l.base.RemoveChild(child)
}

// UpdateSizeHints recomputes size_hint_min from the current children. It
// runs on every change to the children list, padding or border; call it
// directly after resizing a child in place.
func (l *UIBoxLayout) UpdateSizeHints() {
	children := l.base.children
	var w, h float32
	if n := len(children); n > 0 {
		gaps := float32(n-1) * l.props.SpaceBetween
		for _, c := range children {
			r := c.Node().Rect()
			if l.props.Vertical {
				w = maxf(w, r.Width)
				h += r.Height
			} else {
				w += r.Width
				h = maxf(h, r.Height)
			}
		}
		if l.props.Vertical {
			h += gaps
		} else {
			w += gaps
		}
	}
	box := l.base.BoxSize()
	l.base.SetSizeHintMin(HintOf(w+box.W, h+box.H))
}

// FitContent resizes the box to its minimum size hint, keeping the
// bottom-left corner.
func (l *UIBoxLayout) FitContent() {
	m := l.base.SizeHintMin()
	l.base.SetRect(l.base.Rect().Resize(m.X, m.Y))
}

// DoLayout places the children one after the other starting at the top-left
// of the content rect. Children larger than the content rect overflow.
func (l *UIBoxLayout) DoLayout() error {
	if len(l.base.children) == 0 {
		return nil
	}
	if l.props.Vertical {
		l.layoutVertical()
	} else {
		l.layoutHorizontal()
	}
	return nil
}

func (l *UIBoxLayout) layoutVertical() {
	content := l.base.ContentRect()
	startY := content.Top()
	for _, child := range l.base.children {
		node := child.Node()
		r := node.Rect()
		switch l.props.Align {
		case AnchorLeft:
			r = r.AlignLeft(content.Left())
		case AnchorRight:
			r = r.AlignRight(content.Right())
		default:
			r = r.AlignCenterX(content.CenterX())
		}
		r = r.AlignTop(startY)
		node.SetRect(r)
		startY -= r.Height + l.props.SpaceBetween
	}
}

func (l *UIBoxLayout) layoutHorizontal() {
	content := l.base.ContentRect()
	startX := content.Left()
	centerY := content.Top() - content.Height/2
	for _, child := range l.base.children {
		node := child.Node()
		r := node.Rect()
		switch l.props.Align {
		case AnchorTop:
			r = r.AlignTop(content.Top())
		case AnchorBottom:
			r = r.AlignBottom(content.Bottom())
		default:
			r = r.AlignCenterY(centerY)
		}
		r = r.AlignLeft(startX)
		node.SetRect(r)
		startX += r.Width + l.props.SpaceBetween
	}
}
