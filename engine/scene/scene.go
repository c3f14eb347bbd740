// Package scene builds widget trees from TOML scene documents and provides
// the camera used to preview them.
//
// A scene document looks like:
//
//	[viewport]
//	width = 800
//	height = 600
//
//	[root]
//	type = "anchor"
//	padding = [10]
//
//	[[root.children]]
//	type = "box"
//	vertical = true
//	align = "left"
//	space_between = 4
//	anchor_x = "left"
//	anchor_y = "top"
//
//	[[root.children.children]]
//	size = [120, 24]
//	color = "#3a7bd5"
package scene

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/hubastard/grove-ui/engine/colors"
	"github.com/hubastard/grove-ui/engine/errors"
	"github.com/hubastard/grove-ui/engine/ui"
)

// Document is the decoded form of a scene file.
type Document struct {
	Viewport Viewport `toml:"viewport"`
	Root     Node     `toml:"root"`
}

type Viewport struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// Node describes one widget. Layout-specific keys are ignored by widgets of
// other types; placement keys are read by an anchor-layout parent.
type Node struct {
	Type        string    `toml:"type"`
	ID          string    `toml:"id"`
	Rect        []float32 `toml:"rect"`
	Size        []float32 `toml:"size"`
	SizeHint    []float32 `toml:"size_hint"`
	SizeHintMin []float32 `toml:"size_hint_min"`
	SizeHintMax []float32 `toml:"size_hint_max"`
	Padding     []float32 `toml:"padding"`
	BorderWidth float32   `toml:"border_width"`
	Color       string    `toml:"color"`
	BorderColor string    `toml:"border_color"`

	// anchor layout
	DefaultAnchorX string `toml:"default_anchor_x"`
	DefaultAnchorY string `toml:"default_anchor_y"`

	// box layout
	Vertical     bool    `toml:"vertical"`
	Align        string  `toml:"align"`
	SpaceBetween float32 `toml:"space_between"`

	// placement inside an anchor layout
	AnchorX string  `toml:"anchor_x"`
	AnchorY string  `toml:"anchor_y"`
	AlignX  float32 `toml:"align_x"`
	AlignY  float32 `toml:"align_y"`

	Children []Node `toml:"children"`
}

func (n Node) hasPlacement() bool {
	return n.AnchorX != "" || n.AnchorY != "" || n.AlignX != 0 || n.AlignY != 0
}

// Scene is a built widget tree.
type Scene struct {
	Doc  Document
	Root ui.UIElement
	byID map[string]ui.UIElement
}

type Option func(*builder)

// WithLogger reports build progress and ignored keys to l.
func WithLogger(l *log.Logger) Option {
	return func(b *builder) { b.logger = l }
}

// WithViewport overrides the document viewport.
func WithViewport(w, h float32) Option {
	return func(b *builder) { b.viewport = &Viewport{Width: w, Height: h} }
}

// Load reads and builds the scene file at path.
func Load(path string, opts ...Option) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "read scene %s", path)
	}
	return Parse(data, opts...)
}

// Parse decodes and builds a scene document.
func Parse(data []byte, opts ...Option) (*Scene, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode scene")
	}
	b := &builder{
		logger: log.NewWithOptions(io.Discard, log.Options{}),
		byID:   make(map[string]ui.UIElement),
	}
	for _, opt := range opts {
		opt(b)
	}
	for _, key := range md.Undecoded() {
		b.logger.Warn("ignoring unknown scene key", "key", key.String())
	}
	if b.viewport != nil {
		doc.Viewport = *b.viewport
	}
	return b.build(doc)
}

type builder struct {
	logger   *log.Logger
	viewport *Viewport
	byID     map[string]ui.UIElement
}

func (b *builder) build(doc Document) (*Scene, error) {
	if doc.Viewport.Width < 0 || doc.Viewport.Height < 0 {
		return nil, errors.New(errors.ErrCodeInvalidScene, "viewport must not be negative, got %vx%v", doc.Viewport.Width, doc.Viewport.Height)
	}
	if doc.Root.Type == "" && len(doc.Root.Children) > 0 {
		doc.Root.Type = "anchor"
	}
	root, err := b.node(doc.Root, "root")
	if err != nil {
		return nil, err
	}
	if doc.Root.Rect == nil && doc.Root.Size == nil {
		root.Node().SetRect(ui.LBWH(0, 0, doc.Viewport.Width, doc.Viewport.Height))
	}
	b.logger.Debug("scene built", "widgets", len(b.byID), "viewport", fmt.Sprintf("%vx%v", doc.Viewport.Width, doc.Viewport.Height))
	return &Scene{Doc: doc, Root: root, byID: b.byID}, nil
}

func (b *builder) node(n Node, path string) (ui.UIElement, error) {
	id := n.ID
	if id == "" {
		id = uuid.NewString()
	}
	if _, dup := b.byID[id]; dup {
		return nil, errors.New(errors.ErrCodeInvalidScene, "%s: duplicate id %q", path, id)
	}

	var el ui.UIElement
	switch n.Type {
	case "", "widget":
		if len(n.Children) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidScene, "%s: widget %q cannot have children", path, id)
		}
		el = ui.Widget()
	case "anchor":
		l := ui.AnchorLayout()
		dx, err := ui.ParseAnchor(orDefault(n.DefaultAnchorX, "center"))
		if err != nil {
			return nil, fmt.Errorf("%s: default_anchor_x: %w", path, err)
		}
		dy, err := ui.ParseAnchor(orDefault(n.DefaultAnchorY, "center"))
		if err != nil {
			return nil, fmt.Errorf("%s: default_anchor_y: %w", path, err)
		}
		if err := l.SetDefaultAnchors(dx, dy); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		el = l
	case "box":
		align, err := ui.ParseAnchor(n.Align)
		if err != nil {
			return nil, fmt.Errorf("%s: align: %w", path, err)
		}
		l, err := ui.BoxLayout(ui.BoxProps{Vertical: n.Vertical, Align: align, SpaceBetween: n.SpaceBetween})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		el = l
	default:
		return nil, errors.New(errors.ErrCodeInvalidScene, "%s: unknown widget type %q", path, n.Type)
	}

	node := el.Node()
	node.SetID(id)
	b.byID[id] = el
	if err := applyBox(node, n, path); err != nil {
		return nil, err
	}

	for i, cn := range n.Children {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		child, err := b.node(cn, childPath)
		if err != nil {
			return nil, err
		}
		if err := b.attach(el, child, cn, childPath); err != nil {
			return nil, err
		}
	}

	// Children were added after the box padding, so a box hint is current;
	// fit boxes that did not ask for an explicit size.
	if box, ok := el.(*ui.UIBoxLayout); ok && n.Rect == nil && n.Size == nil {
		box.FitContent()
	}
	b.logger.Debug("built widget", "path", path, "id", id, "type", ui.Kind(el))
	return el, nil
}

func (b *builder) attach(parent, child ui.UIElement, n Node, path string) error {
	switch p := parent.(type) {
	case *ui.UIAnchorLayout:
		ax, err := ui.ParseAnchor(n.AnchorX)
		if err != nil {
			return fmt.Errorf("%s: anchor_x: %w", path, err)
		}
		ay, err := ui.ParseAnchor(n.AnchorY)
		if err != nil {
			return fmt.Errorf("%s: anchor_y: %w", path, err)
		}
		if _, err := p.Add(child, ui.WithPlacement(ui.Placement{AnchorX: ax, AnchorY: ay, AlignX: n.AlignX, AlignY: n.AlignY})); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	case *ui.UIBoxLayout:
		if n.hasPlacement() {
			b.logger.Warn("placement keys ignored inside a box", "path", path)
		}
		p.Add(child)
	default:
		return errors.New(errors.ErrCodeInternal, "%s: parent %s cannot hold children", path, ui.Kind(parent))
	}
	return nil
}

func applyBox(node *ui.Base, n Node, path string) error {
	switch {
	case n.Rect != nil:
		if len(n.Rect) != 4 {
			return errors.New(errors.ErrCodeInvalidScene, "%s: rect needs 4 values, got %d", path, len(n.Rect))
		}
		node.SetRect(ui.LBWH(n.Rect[0], n.Rect[1], n.Rect[2], n.Rect[3]))
	case n.Size != nil:
		w, h, err := pair(n.Size, "size", path)
		if err != nil {
			return err
		}
		node.SetRect(ui.LBWH(0, 0, w, h))
	}

	for _, h := range []struct {
		vals []float32
		name string
		set  func(ui.Hint)
	}{
		{n.SizeHint, "size_hint", node.SetSizeHint},
		{n.SizeHintMin, "size_hint_min", node.SetSizeHintMin},
		{n.SizeHintMax, "size_hint_max", node.SetSizeHintMax},
	} {
		if h.vals == nil {
			continue
		}
		x, y, err := pair(h.vals, h.name, path)
		if err != nil {
			return err
		}
		h.set(ui.HintOf(x, y))
	}

	if n.Padding != nil {
		p, err := padding(n.Padding, path)
		if err != nil {
			return err
		}
		node.SetPadding(p[0], p[1], p[2], p[3])
	}

	if n.Color != "" {
		c, err := colors.Parse(n.Color)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "%s: color", path)
		}
		node.SetColor(c)
	}
	bc := colors.Transparent
	if n.BorderColor != "" {
		c, err := colors.Parse(n.BorderColor)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "%s: border_color", path)
		}
		bc = c
	}
	if n.BorderWidth < 0 {
		return errors.New(errors.ErrCodeInvalidScene, "%s: border_width must not be negative", path)
	}
	node.SetBorder(n.BorderWidth, bc)
	return nil
}

func pair(vals []float32, name, path string) (float32, float32, error) {
	if len(vals) != 2 {
		return 0, 0, errors.New(errors.ErrCodeInvalidScene, "%s: %s needs 2 values, got %d", path, name, len(vals))
	}
	return vals[0], vals[1], nil
}

// padding expands CSS-like shorthands: [all], [horizontal, vertical] or
// [left, top, right, bottom].
func padding(vals []float32, path string) ([4]float32, error) {
	switch len(vals) {
	case 1:
		return [4]float32{vals[0], vals[0], vals[0], vals[0]}, nil
	case 2:
		return [4]float32{vals[0], vals[1], vals[0], vals[1]}, nil
	case 4:
		return [4]float32{vals[0], vals[1], vals[2], vals[3]}, nil
	}
	return [4]float32{}, errors.New(errors.ErrCodeInvalidScene, "%s: padding needs 1, 2 or 4 values, got %d", path, len(vals))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Find returns the widget with the given id.
func (s *Scene) Find(id string) (ui.UIElement, bool) {
	el, ok := s.byID[id]
	return el, ok
}

// Len is the number of widgets in the scene.
func (s *Scene) Len() int { return len(s.byID) }

// Resize sets the viewport and stretches the root rect over it, keeping the
// root's bottom-left corner.
func (s *Scene) Resize(w, h float32) {
	s.Doc.Viewport = Viewport{Width: w, Height: h}
	node := s.Root.Node()
	node.SetRect(node.Rect().Resize(w, h))
}

// Layout runs a full layout pass over the tree.
func (s *Scene) Layout() error {
	return ui.LayoutTree(s.Root)
}
