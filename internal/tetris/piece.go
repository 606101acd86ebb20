package tetris

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
	kindCount = 7
)

// String returns the conventional one-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Color returns the color for locked cells of this kind.
// Zero is reserved for empty cells, so IDs start at 1.
func (k Kind) Color() ColorID {
	return ColorID(k) + 1
}

// Offset is a cell offset relative to a piece anchor.
type Offset struct {
	DX, DY int
}

// rotationTable maps (kind, rotation) to the four cell offsets of that
// orientation. Offsets follow the SRS bounding-box layout: a 4x4 box for
// I, 2x2 for O, 3x3 for the rest, with the anchor at the top-left corner
// of the box and y growing downward. Static shared data: never mutated.
var rotationTable = [kindCount][4][4]Offset{
	KindI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	KindO: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	KindT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	KindJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	KindL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// Offsets returns the four cell offsets for the given rotation state.
// The rotation index is taken modulo 4.
func (k Kind) Offsets(rotation int) [4]Offset {
	return rotationTable[k][((rotation%4)+4)%4]
}

// ActivePiece is the piece currently controlled by the state machine.
// X, Y anchor the rotation bounding box on the board. ActivePiece is a
// value type: moves and rotations produce new values, never mutation.
type ActivePiece struct {
	Kind     Kind
	Rotation int // 0..3
	X, Y     int
}

// Cells returns the absolute board coordinates of the piece's four cells.
func (p ActivePiece) Cells() [4][2]int {
	offsets := p.Kind.Offsets(p.Rotation)
	var cells [4][2]int
	for i, o := range offsets {
		cells[i] = [2]int{p.X + o.DX, p.Y + o.DY}
	}
	return cells
}

// Translated returns a copy of the piece moved by (dx, dy).
func (p ActivePiece) Translated(dx, dy int) ActivePiece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece rotated by the given direction
// (+1 clockwise, -1 counter-clockwise). No collision check is performed.
func (p ActivePiece) Rotated(direction int) ActivePiece {
	p.Rotation = ((p.Rotation+direction)%4 + 4) % 4
	return p
}

// SpawnPiece creates a piece of the given kind at its top-center spawn
// anchor for a board of the given width.
func SpawnPiece(kind Kind, boardWidth int) ActivePiece {
	boxW := 3
	switch kind {
	case KindI:
		boxW = 4
	case KindO:
		boxW = 2
	}
	return ActivePiece{
		Kind:     kind,
		Rotation: 0,
		X:        (boardWidth - boxW) / 2,
		Y:        0,
	}
}

// AllKinds returns every tetromino kind in canonical order.
func AllKinds() []Kind {
	return []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}
}
