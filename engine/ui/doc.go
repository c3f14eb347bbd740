// Package ui holds the retained widget tree and its two layout strategies.
//
// [UIAnchorLayout] places each child against an anchor point of its content
// rect. [UIBoxLayout] stacks children along one axis and keeps its own
// minimum size hint equal to what its children need. Both position only
// their immediate children; [LayoutTree] cascades a pass down a tree.
//
// Coordinates grow right and up; a [Rect] stores its bottom-left corner.
package ui
