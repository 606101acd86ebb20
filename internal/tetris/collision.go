package tetris

// Rotation directions accepted by TryRotate.
const (
	RotateCW  = 1
	RotateCCW = -1
)

// CanPlace reports whether every cell of the piece maps to an in-bounds,
// unoccupied board cell.
func CanPlace(board *Board, piece ActivePiece) bool {
	for _, c := range piece.Cells() {
		x, y := c[0], c[1]
		if !board.InBounds(x, y) {
			return false
		}
		if board.cells[y][x].Filled {
			return false
		}
	}
	return true
}

// TryMove returns the piece translated by (dx, dy) if the translated
// position is placeable. There is no partial move: a blocked translation
// returns the zero piece and false.
func TryMove(board *Board, piece ActivePiece, dx, dy int) (ActivePiece, bool) {
	moved := piece.Translated(dx, dy)
	if !CanPlace(board, moved) {
		return ActivePiece{}, false
	}
	return moved, true
}

// kickTable holds SRS wall-kick offsets for the J, L, S, T and Z pieces,
// keyed by [from][to] rotation state. Values are in grid coordinates
// (y grows downward), so the published guideline y values are negated.
var kickTable = [4][4][5]Offset{
	0: {
		1: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		3: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	},
	1: {
		0: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		2: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	},
	2: {
		1: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		3: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	},
	3: {
		2: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		0: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	},
}

// kickTableI holds the I piece's wall-kick offsets, which differ from the
// common table because of its 4x4 bounding box.
var kickTableI = [4][4][5]Offset{
	0: {
		1: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
		3: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	},
	1: {
		0: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
		2: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	},
	2: {
		1: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
		3: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	},
	3: {
		2: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
		0: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	},
}

// Kicks returns the positional offsets tried, in priority order, for a
// rotation of the given kind from one rotation state to another.
func Kicks(kind Kind, from, to int) [5]Offset {
	from = ((from % 4) + 4) % 4
	to = ((to % 4) + 4) % 4
	if kind == KindI {
		return kickTableI[from][to]
	}
	return kickTable[from][to]
}

// TryRotate attempts to rotate the piece in the given direction
// (RotateCW or RotateCCW). When the naive rotation collides, the wall
// kick offsets are tried in priority order; the first placeable offset
// wins. Exhausting all offsets returns false and the piece keeps its
// prior rotation and position. The O piece never rotates.
func TryRotate(board *Board, piece ActivePiece, direction int) (ActivePiece, bool) {
	if piece.Kind == KindO {
		return ActivePiece{}, false
	}

	rotated := piece.Rotated(direction)
	for _, kick := range Kicks(piece.Kind, piece.Rotation, rotated.Rotation) {
		candidate := rotated.Translated(kick.DX, kick.DY)
		if CanPlace(board, candidate) {
			return candidate, true
		}
	}
	return ActivePiece{}, false
}

// DropDistance returns how many rows the piece can fall before it would
// collide. Zero means the piece is resting.
func DropDistance(board *Board, piece ActivePiece) int {
	distance := 0
	for {
		if _, ok := TryMove(board, piece, 0, distance+1); !ok {
			return distance
		}
		distance++
	}
}
