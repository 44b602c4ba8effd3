package mines

// neighborRange clips the Chebyshev-1 square around a cell to the board.
func (b *Board) neighborRange(row, col int) (fromRow, toRow, fromCol, toCol int) {
	fromRow, toRow = max(0, row-1), min(row+1, b.Height-1)
	fromCol, toCol = max(0, col-1), min(col+1, b.Width-1)
	return
}

// Neighbors returns the indices of the up to 8 cells touching index.
//
// panics [AssertionError]
func (b *Board) Neighbors(index int) []int {
	var (
		row, col                       = b.Coords(index)
		fromRow, toRow, fromCol, toCol = b.neighborRange(row, col)
		indices                        = make([]int, 0, 8)
	)
	for r := fromRow; r <= toRow; r++ {
		for c := fromCol; c <= toCol; c++ {
			if i := r*b.Width + c; i != index {
				indices = append(indices, i)
			}
		}
	}
	return indices
}

// Hint counts the mines around index, open or not.
//
// panics [AssertionError]
func (b *Board) Hint(index int) (count int) {
	for _, i := range b.Neighbors(index) {
		if mined(b.cells[i]) {
			count++
		}
	}
	return
}
