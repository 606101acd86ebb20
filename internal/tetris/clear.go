package tetris

// ClearResult reports the outcome of a line-clear pass.
type ClearResult struct {
	// RowIndices holds the cleared row indices in top-to-bottom order,
	// as they were before removal.
	RowIndices []int
	// RowsCleared is len(RowIndices), kept separate for callers that
	// only need the count.
	RowsCleared int
}

// ClearCompletedRows scans rows top-to-bottom, removes every full row and
// shifts the rows above down. Removal runs bottom-most-first over the
// collected set so earlier removals cannot shift a not-yet-removed full
// row. A board with no full rows is returned untouched.
func ClearCompletedRows(board *Board) ClearResult {
	var full []int
	for y := 0; y < board.Height(); y++ {
		if board.RowIsFull(y) {
			full = append(full, y)
		}
	}

	// Each removal shifts the rows above it down by one, so when going
	// bottom-most-first every remaining index must be adjusted by the
	// number of rows already removed below it.
	for i := len(full) - 1; i >= 0; i-- {
		removed := len(full) - 1 - i
		board.RemoveRow(full[i] + removed)
	}

	return ClearResult{
		RowIndices:  full,
		RowsCleared: len(full),
	}
}
