package ui

// Base holds the dimensions of a panel. Embed it in panel models.
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// ListHeight returns available height for list content after subtracting overhead.
func (b Base) ListHeight(overhead int) int {
	return max(b.height-overhead, 0)
}

// InnerWidth returns the width inside a panel border.
func (b Base) InnerWidth() int {
	return max(b.width-BorderHeight, 0)
}
