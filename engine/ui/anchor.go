package ui

import (
	"strconv"

	"github.com/hubastard/grove-ui/engine/errors"
)

type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "y"
	}
	return "x"
}

// Anchor names a reference point on a rect. AnchorCenter resolves to the
// horizontal or vertical center depending on the axis it is used on.
type Anchor int

const (
	AnchorUnset Anchor = iota
	AnchorLeft
	AnchorRight
	AnchorTop
	AnchorBottom
	AnchorCenterX
	AnchorCenterY
	AnchorCenter
)

var anchorNames = map[Anchor]string{
	AnchorUnset:   "",
	AnchorLeft:    "left",
	AnchorRight:   "right",
	AnchorTop:     "top",
	AnchorBottom:  "bottom",
	AnchorCenterX: "center_x",
	AnchorCenterY: "center_y",
	AnchorCenter:  "center",
}

func (a Anchor) String() string {
	if name, ok := anchorNames[a]; ok {
		return name
	}
	return "anchor(" + strconv.Itoa(int(a)) + ")"
}

// ParseAnchor maps a textual anchor identifier to its Anchor. The empty
// string parses to AnchorUnset.
func ParseAnchor(name string) (Anchor, error) {
	for a, n := range anchorNames {
		if n == name {
			return a, nil
		}
	}
	return AnchorUnset, errors.New(errors.ErrCodeInvalidAnchor, "unknown anchor %q", name)
}

// accessor reads one coordinate of a rect.
type accessor func(Rect) float32

// aligner moves a rect so one coordinate equals v.
type aligner func(Rect, float32) Rect

type anchorOps struct {
	get   accessor
	align aligner
}

var (
	xAnchors = map[Anchor]anchorOps{
		AnchorLeft:    {Rect.Left, Rect.AlignLeft},
		AnchorRight:   {Rect.Right, Rect.AlignRight},
		AnchorCenterX: {Rect.CenterX, Rect.AlignCenterX},
		AnchorCenter:  {Rect.CenterX, Rect.AlignCenterX},
	}
	yAnchors = map[Anchor]anchorOps{
		AnchorTop:     {Rect.Top, Rect.AlignTop},
		AnchorBottom:  {Rect.Bottom, Rect.AlignBottom},
		AnchorCenterY: {Rect.CenterY, Rect.AlignCenterY},
		AnchorCenter:  {Rect.CenterY, Rect.AlignCenterY},
	}
)

// resolve returns the rect operations for a on the given axis. Unset
// anchors and anchors belonging to the other axis are rejected.
func (a Anchor) resolve(axis Axis) (anchorOps, error) {
	table := xAnchors
	if axis == Vertical {
		table = yAnchors
	}
	ops, ok := table[a]
	if !ok {
		return anchorOps{}, errors.New(errors.ErrCodeInvalidAnchor, "anchor %q is not valid on the %s axis", a, axis)
	}
	return ops, nil
}

// Value returns the coordinate of anchor a on r along axis.
func (a Anchor) Value(r Rect, axis Axis) (float32, error) {
	ops, err := a.resolve(axis)
	if err != nil {
		return 0, err
	}
	return ops.get(r), nil
}

// ValidOn reports whether a can be resolved on axis.
func (a Anchor) ValidOn(axis Axis) bool {
	_, err := a.resolve(axis)
	return err == nil
}
