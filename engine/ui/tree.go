package ui

import (
	"fmt"
)

// LayoutTree runs DoLayout on root if it is a container, then descends into
// its children in order. Each container sees its final rect before laying
// out its own children.
func LayoutTree(root UIElement) error {
	if l, ok := root.(Layouter); ok {
		if err := l.DoLayout(); err != nil {
			return fmt.Errorf("layout %s: %w", describe(root), err)
		}
	}
	for _, c := range root.Node().children {
		if err := LayoutTree(c); err != nil {
			return err
		}
	}
	return nil
}

// Walk visits root and its descendants depth first. Returning false from fn
// skips the children of that element.
func Walk(root UIElement, fn func(el UIElement, depth int) bool) {
	walk(root, 0, fn)
}

func walk(el UIElement, depth int, fn func(UIElement, int) bool) {
	if !fn(el, depth) {
		return
	}
	for _, c := range el.Node().children {
		walk(c, depth+1, fn)
	}
}

// HitTest returns the deepest element whose rect contains (x, y), preferring
// later siblings, which draw on top. It returns nil when root itself misses.
func HitTest(root UIElement, x, y float32) UIElement {
	if !root.Node().Rect().Contains(x, y) {
		return nil
	}
	children := root.Node().children
	for i := len(children) - 1; i >= 0; i-- {
		if hit := HitTest(children[i], x, y); hit != nil {
			return hit
		}
	}
	return root
}

// Kind names the element type for logs and tables.
func Kind(el UIElement) string {
	switch el.(type) {
	case *UIAnchorLayout:
		return "anchor"
	case *UIBoxLayout:
		return "box"
	case *UIWidget:
		return "widget"
	default:
		return fmt.Sprintf("%T", el)
	}
}

func describe(el UIElement) string {
	if id := el.Node().ID(); id != "" {
		return fmt.Sprintf("%s %q", Kind(el), id)
	}
	return Kind(el)
}
