package ui

import (
	"slices"

	"github.com/hubastard/grove-ui/engine/colors"
)

// UIElement is anything that lives in the widget tree.
type UIElement interface {
	Node() *Base
}

// Layouter is a container that positions its immediate children.
type Layouter interface {
	UIElement
	DoLayout() error
}

// Hint is an optional pair. The zero value is absent.
type Hint struct {
	X, Y float32
	Set  bool
}

func HintOf(x, y float32) Hint { return Hint{X: x, Y: y, Set: true} }

// ChildChangeKind tells observers what happened to the children list.
type ChildChangeKind int

const (
	ChildAdded ChildChangeKind = iota
	ChildRemoved
	ChildReplaced
	ChildrenCleared
	// BoxChanged is emitted when padding or border width change, since
	// they alter the size a container needs around its children.
	BoxChanged
)

type ChildChange struct {
	Kind  ChildChangeKind
	Child UIElement // added, removed or replacement child
	Old   UIElement // replaced child
}

// Base is the node shared by every widget: geometry, size hints, box
// decoration and the ordered list of children. Children are referenced,
// never destroyed by their parent.
type Base struct {
	id       string
	parent   UIElement
	children []UIElement

	rect        Rect
	changes     int
	sizeHint    Hint
	sizeHintMin Hint
	sizeHintMax Hint

	padding     [4]float32 // left, top, right, bottom
	borderWidth float32
	color       colors.Color
	borderColor colors.Color

	childObservers []func(ChildChange)
	rectObservers  []func(old, new Rect)
}

func (b *Base) ID() string                { return b.id }
func (b *Base) SetID(id string)           { b.id = id }
func (b *Base) Parent() UIElement         { return b.parent }
func (b *Base) Children() []UIElement     { return slices.Clone(b.children) }
func (b *Base) Rect() Rect                { return b.rect }
func (b *Base) Width() float32            { return b.rect.Width }
func (b *Base) Height() float32           { return b.rect.Height }
func (b *Base) Changes() int              { return b.changes }
func (b *Base) SizeHint() Hint            { return b.sizeHint }
func (b *Base) SizeHintMin() Hint         { return b.sizeHintMin }
func (b *Base) SizeHintMax() Hint         { return b.sizeHintMax }
func (b *Base) SetSizeHint(h Hint)        { b.sizeHint = h }
func (b *Base) SetSizeHintMin(h Hint)     { b.sizeHintMin = h }
func (b *Base) SetSizeHintMax(h Hint)     { b.sizeHintMax = h }
func (b *Base) Padding() [4]float32       { return b.padding }
func (b *Base) BorderWidth() float32      { return b.borderWidth }
func (b *Base) Color() colors.Color       { return b.color }
func (b *Base) BorderColor() colors.Color { return b.borderColor }
func (b *Base) SetColor(c colors.Color)   { b.color = c }

func (b *Base) SetBorder(width float32, c colors.Color) {
	b.borderColor = c
	if width != b.borderWidth {
		b.borderWidth = width
		b.notifyChildren(ChildChange{Kind: BoxChanged})
	}
}

func (b *Base) SetPadding(l, t, r, btm float32) {
	p := [4]float32{l, t, r, btm}
	if p != b.padding {
		b.padding = p
		b.notifyChildren(ChildChange{Kind: BoxChanged})
	}
}

// SetRect replaces the widget rect. Setting an equal rect is a no-op and
// does not count as a change.
func (b *Base) SetRect(r Rect) {
	if r == b.rect {
		return
	}
	old := b.rect
	b.rect = r
	b.changes++
	for _, fn := range b.rectObservers {
		fn(old, r)
	}
}

// ContentRect is the rect minus padding and border on every side.
func (b *Base) ContentRect() Rect {
	bw := b.borderWidth
	return b.rect.Shrink(b.padding[0]+bw, b.padding[1]+bw, b.padding[2]+bw, b.padding[3]+bw)
}

func (b *Base) ContentWidth() float32  { return b.ContentRect().Width }
func (b *Base) ContentHeight() float32 { return b.ContentRect().Height }

// BoxSize is the horizontal and vertical space taken by padding and border.
func (b *Base) BoxSize() Size {
	return Size{
		W: b.padding[0] + b.padding[2] + 2*b.borderWidth,
		H: b.padding[1] + b.padding[3] + 2*b.borderWidth,
	}
}

// ObserveChildren registers fn to run synchronously after every change to
// the children list.
func (b *Base) ObserveChildren(fn func(ChildChange)) {
	b.childObservers = append(b.childObservers, fn)
}

// ObserveRect registers fn to run after every effective SetRect.
func (b *Base) ObserveRect(fn func(old, new Rect)) {
	b.rectObservers = append(b.rectObservers, fn)
}

func (b *Base) notifyChildren(c ChildChange) {
	for _, fn := range b.childObservers {
		fn(c)
	}
}

// IndexOf returns the position of child, or -1.
func (b *Base) IndexOf(child UIElement) int {
	n := child.Node()
	for i, c := range b.children {
		if c.Node() == n {
			return i
		}
	}
	return -1
}

// AddChild appends child, taking it away from any previous parent first.
// It reports false if child is already present.
func (b *Base) AddChild(owner UIElement, child UIElement) bool {
	if b.IndexOf(child) >= 0 {
		return false
	}
	detach(child)
	b.children = append(b.children, child)
	child.Node().parent = owner
	b.notifyChildren(ChildChange{Kind: ChildAdded, Child: child})
	return true
}

func (b *Base) RemoveChild(child UIElement) bool {
	i := b.IndexOf(child)
	if i < 0 {
		return false
	}
	b.children = append(b.children[:i], b.children[i+1:]...)
	child.Node().parent = nil
	b.notifyChildren(ChildChange{Kind: ChildRemoved, Child: child})
	return true
}

// ReplaceChild swaps old for repl at the same position.
func (b *Base) ReplaceChild(old, repl UIElement) bool {
	i := b.IndexOf(old)
	if i < 0 || b.IndexOf(repl) >= 0 {
		return false
	}
	detach(repl)
	owner := old.Node().parent
	b.children[i] = repl
	old.Node().parent = nil
	repl.Node().parent = owner
	b.notifyChildren(ChildChange{Kind: ChildReplaced, Child: repl, Old: old})
	return true
}

// detach removes child from its current parent, which notifies that
// parent's observers.
func detach(child UIElement) {
	if p := child.Node().parent; p != nil {
		p.Node().RemoveChild(child)
	}
}

func (b *Base) ClearChildren() {
	if len(b.children) == 0 {
		return
	}
	for _, c := range b.children {
		c.Node().parent = nil
	}
	b.children = nil
	b.notifyChildren(ChildChange{Kind: ChildrenCleared})
}

// ------ Helper ------

// Common embeds a Base and returns the concrete owner from every setter so
// widgets can be configured fluently.
type Common[T any] struct {
	owner T
	base  Base
}

func NewCommon[T any](owner T) Common[T] {
	return Common[T]{owner: owner}
}

func (c *Common[T]) Node() *Base { return &c.base }

func (c *Common[T]) ID(id string) T           { c.base.SetID(id); return c.owner }
func (c *Common[T]) Rect(r Rect) T            { c.base.SetRect(r); return c.owner }
func (c *Common[T]) Color(col colors.Color) T { c.base.SetColor(col); return c.owner }

// Position moves the bottom-left corner, keeping the size.
func (c *Common[T]) Position(x, y float32) T {
	r := c.base.rect
	c.base.SetRect(LBWH(x, y, r.Width, r.Height))
	return c.owner
}

// Size resizes the widget, keeping the bottom-left corner.
func (c *Common[T]) Size(w, h float32) T {
	c.base.SetRect(c.base.rect.Resize(w, h))
	return c.owner
}

func (c *Common[T]) SizeHint(x, y float32) T {
	c.base.SetSizeHint(HintOf(x, y))
	return c.owner
}

func (c *Common[T]) SizeHintMin(w, h float32) T {
	c.base.SetSizeHintMin(HintOf(w, h))
	return c.owner
}

func (c *Common[T]) SizeHintMax(w, h float32) T {
	c.base.SetSizeHintMax(HintOf(w, h))
	return c.owner
}

func (c *Common[T]) Border(width float32, col colors.Color) T {
	c.base.SetBorder(width, col)
	return c.owner
}

func (c *Common[T]) Padding(all float32) T {
	c.base.SetPadding(all, all, all, all)
	return c.owner
}

func (c *Common[T]) Padding2(horizontal, vertical float32) T {
	c.base.SetPadding(horizontal, vertical, horizontal, vertical)
	return c.owner
}

func (c *Common[T]) Padding4(left, top, right, bottom float32) T {
	c.base.SetPadding(left, top, right, bottom)
	return c.owner
}
