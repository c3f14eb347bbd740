package ui

// UIWidget is a plain leaf: a rect with optional background and border.
// It reports its size through its rect and size hints only.
type UIWidget struct {
	Common[*UIWidget]
}

func Widget() *UIWidget {
	w := &UIWidget{}
	w.Common = NewCommon(w)
	return w
}
