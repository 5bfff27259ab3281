package game

// Row is one horizontal line of the board: a fixed-width run of optional
// cells plus a cached emptiness flag. The flag holds exactly when every slot
// is nil and is maintained on every mutation, letting full-board scans skip
// untouched rows.
type Row struct {
	cells []*Cell
	empty bool
}

func newRow(width int) *Row {
	return &Row{
		cells: make([]*Cell, width),
		empty: true,
	}
}

// Width returns the fixed number of slots in the row.
func (r *Row) Width() int {
	return len(r.cells)
}

// Cell returns the cell at column x, or nil when the slot is empty.
func (r *Row) Cell(x int) *Cell {
	return r.cells[x]
}

// IsEmpty reports whether every slot in the row is empty.
func (r *Row) IsEmpty() bool {
	return r.empty
}

func (r *Row) full() bool {
	for _, c := range r.cells {
		if c == nil {
			return false
		}
	}
	return true
}

func (r *Row) set(x int, c Cell) {
	r.cells[x] = &c
	r.empty = false
}

func (r *Row) clearAll() {
	for i := range r.cells {
		r.cells[i] = nil
	}
	r.empty = true
}
