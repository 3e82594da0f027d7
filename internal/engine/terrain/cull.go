package terrain

// IsVisible reports whether the span [x1, x2] overlaps the viewport
// [viewX1, viewX2). The span is visible when its left edge or right edge
// is inside the viewport, or when it starts left of the viewport and
// reaches its right end.
func IsVisible(x1, x2, viewX1, viewX2 float64) bool {
	leftInside := x1 >= viewX1 && x1 < viewX2
	rightInside := x2 >= viewX1 && x2 < viewX2
	spans := x1 < viewX1 && x2 >= viewX2
	return leftInside || rightInside || spans
}

// UpdateView shows decorations overlapping [viewX1, viewX2) and hides
// the rest. Visibility is only written when it changes. Returns the
// number of visible decorations.
func (t *Terrain) UpdateView(viewX1, viewX2 float64) int {
	visible := 0
	for _, d := range t.decorations {
		want := IsVisible(d.X1, d.X2, viewX1, viewX2)
		if want != d.Node.Visible() {
			d.Node.SetVisible(want)
		}
		if want {
			visible++
		}
	}
	return visible
}

// Update culls against the camera given with WithCamera. Without one it
// does nothing and returns -1.
func (t *Terrain) Update() int {
	if t.camera == nil {
		return -1
	}
	v := t.camera.WorldView()
	return t.UpdateView(v.X, v.Right())
}
