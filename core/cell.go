package core

// Cell is a board coordinate in board units
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy)
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbouring cell in direction d
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// InBounds reports whether the cell lies within [0,w) x [0,h)
func (c Cell) InBounds(w, h int) bool {
	return c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h
}
