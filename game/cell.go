package game

// Cell is the smallest unit of board and piece state: a colored unit square.
// Hue is in [0, 1); hosts map it to a display color. Cells carry no behavior
// and are copied freely.
type Cell struct {
	Hue float32
}
