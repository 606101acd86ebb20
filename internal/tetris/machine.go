package tetris

import (
	"fmt"
	"time"
)

// State is the in-game state of the falling-piece machine.
type State int

const (
	StateSpawning State = iota // A new tetromino is being dealt
	StateFalling               // The active piece is falling
	StateLocking               // The piece rests; the grace window runs
	StateClearing              // Completed rows are being removed
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateSpawning:
		return "spawning"
	case StateFalling:
		return "falling"
	case StateLocking:
		return "locking"
	case StateClearing:
		return "clearing"
	default:
		return "unknown"
	}
}

// Input is a discrete player intent applied within a single tick.
// Unrecognized inputs are no-ops.
type Input int

const (
	InputMoveLeft Input = iota
	InputMoveRight
	InputRotateCW
	InputRotateCCW
	InputSoftDrop
	InputHardDrop
)

// Config holds the tunable parameters of the machine.
type Config struct {
	BoardWidth  int
	BoardHeight int
	// FallInterval is the gravity period; the piece falls one row each
	// time this much simulated time accumulates. The shell lowers it as
	// the level rises.
	FallInterval time.Duration
	// LockDelay is the grace window in the Locking state during which
	// last-moment input can still move the piece or resume its fall.
	// Zero locks immediately.
	LockDelay time.Duration
}

// DefaultMachineConfig returns the standard 10x20 setup with a one second
// gravity period and a half second lock delay.
func DefaultMachineConfig() Config {
	return Config{
		BoardWidth:   DefaultWidth,
		BoardHeight:  DefaultHeight,
		FallInterval: time.Second,
		LockDelay:    500 * time.Millisecond,
	}
}

// TickOutcome reports what happened during one Tick call. The shell feeds
// it to the scoring collaborator and uses SpawnBlocked to end the game.
type TickOutcome struct {
	State State
	// Locked is true when the active piece merged into the board this
	// tick; LockedPiece holds its final position.
	Locked      bool
	LockedPiece ActivePiece
	// Clear holds the line-clear result when State passed through
	// Clearing this tick.
	Clear ClearResult
	// SoftDropCells and HardDropCells count rows descended by player
	// drop input this tick, for drop scoring.
	SoftDropCells int
	HardDropCells int
	// SpawnBlocked signals that a fresh piece could not be placed at its
	// spawn anchor. The machine takes no further action until Reset.
	SpawnBlocked bool
}

// Machine drives Spawning -> Falling -> Locking -> Clearing -> Spawning,
// consuming elapsed time and input each tick. It owns the board and the
// active piece exclusively; callers interact only through Tick, Reset and
// the read-only accessors. The machine holds no notion of game over:
// SpawnBlocked is surfaced as an event and the surrounding shell decides.
type Machine struct {
	cfg    Config
	board  *Board
	bag    *BagRandomizer
	state  State
	active ActivePiece
	// hasActive is true only in Falling/Locking; the piece is destroyed
	// on lock-merge.
	hasActive bool
	// blocked parks the machine after SpawnBlocked until Reset.
	blocked   bool
	fallAccum time.Duration
	lockAccum time.Duration
}

// NewMachine creates a machine with the given config and RNG seed.
func NewMachine(cfg Config, seed int64) *Machine {
	m := &Machine{cfg: cfg}
	m.Reset(seed)
	return m
}

// Reset returns the machine to an empty board and the Spawning state,
// reseeding the piece randomizer.
func (m *Machine) Reset(seed int64) {
	m.board = NewBoard(m.cfg.BoardWidth, m.cfg.BoardHeight)
	m.bag = NewBagRandomizer(seed)
	m.state = StateSpawning
	m.hasActive = false
	m.blocked = false
	m.fallAccum = 0
	m.lockAccum = 0
}

// SetFallInterval adjusts the gravity period, typically on level change.
func (m *Machine) SetFallInterval(d time.Duration) {
	if d > 0 {
		m.cfg.FallInterval = d
	}
}

// Board returns the board of locked cells. Callers must treat it as
// read-only.
func (m *Machine) Board() *Board {
	return m.board
}

// Active returns the current piece and whether one exists.
func (m *Machine) Active() (ActivePiece, bool) {
	return m.active, m.hasActive
}

// State returns the current machine state.
func (m *Machine) State() State {
	return m.state
}

// Blocked reports whether the machine is parked after SpawnBlocked.
func (m *Machine) Blocked() bool {
	return m.blocked
}

// NextKinds returns the upcoming n kinds from the bag without consuming
// them, for preview rendering.
func (m *Machine) NextKinds(n int) []Kind {
	return m.bag.Peek(n)
}

// Tick advances the machine by one frame. Input events are applied in
// arrival order before gravity. Rejected moves and rotations are silent
// no-ops; the only terminal condition is SpawnBlocked.
func (m *Machine) Tick(elapsed time.Duration, inputs []Input) TickOutcome {
	var out TickOutcome
	if m.blocked {
		out.State = m.state
		return out
	}

	switch m.state {
	case StateSpawning:
		m.tickSpawning(&out)
	case StateFalling:
		m.tickFalling(elapsed, inputs, &out)
	case StateLocking:
		m.tickLocking(elapsed, inputs, &out)
	case StateClearing:
		m.tickClearing(&out)
	}

	out.State = m.state
	return out
}

func (m *Machine) tickSpawning(out *TickOutcome) {
	piece := SpawnPiece(m.bag.Next(), m.board.Width())
	if !CanPlace(m.board, piece) {
		out.SpawnBlocked = true
		m.blocked = true
		return
	}
	m.active = piece
	m.hasActive = true
	m.fallAccum = 0
	m.lockAccum = 0
	m.state = StateFalling
}

func (m *Machine) tickFalling(elapsed time.Duration, inputs []Input, out *TickOutcome) {
	if m.applyInputs(inputs, out) {
		// Hard drop locked the piece; gravity is moot.
		return
	}

	m.fallAccum += elapsed
	for m.fallAccum >= m.cfg.FallInterval {
		m.fallAccum -= m.cfg.FallInterval
		moved, ok := TryMove(m.board, m.active, 0, 1)
		if !ok {
			m.state = StateLocking
			m.lockAccum = 0
			return
		}
		m.active = moved
	}
}

func (m *Machine) tickLocking(elapsed time.Duration, inputs []Input, out *TickOutcome) {
	if m.applyInputs(inputs, out) {
		return
	}

	// Last-moment input may have opened space below; resume falling.
	if _, ok := TryMove(m.board, m.active, 0, 1); ok {
		m.state = StateFalling
		m.fallAccum = 0
		return
	}

	m.lockAccum += elapsed
	if m.lockAccum >= m.cfg.LockDelay {
		m.lockPiece(out)
	}
}

func (m *Machine) tickClearing(out *TickOutcome) {
	out.Clear = ClearCompletedRows(m.board)
	m.state = StateSpawning
}

// applyInputs handles one tick's input events in arrival order. Returns
// true when a hard drop merged the piece.
func (m *Machine) applyInputs(inputs []Input, out *TickOutcome) bool {
	for _, in := range inputs {
		switch in {
		case InputMoveLeft:
			if moved, ok := TryMove(m.board, m.active, -1, 0); ok {
				m.active = moved
			}
		case InputMoveRight:
			if moved, ok := TryMove(m.board, m.active, 1, 0); ok {
				m.active = moved
			}
		case InputRotateCW:
			if rotated, ok := TryRotate(m.board, m.active, RotateCW); ok {
				m.active = rotated
			}
		case InputRotateCCW:
			if rotated, ok := TryRotate(m.board, m.active, RotateCCW); ok {
				m.active = rotated
			}
		case InputSoftDrop:
			if moved, ok := TryMove(m.board, m.active, 0, 1); ok {
				m.active = moved
				m.fallAccum = 0
				out.SoftDropCells++
			}
		case InputHardDrop:
			distance := DropDistance(m.board, m.active)
			m.active = m.active.Translated(0, distance)
			out.HardDropCells += distance
			m.lockPiece(out)
			return true
		}
	}
	return false
}

// lockPiece merges the active piece's cells into the board, destroys the
// piece and enters Clearing.
func (m *Machine) lockPiece(out *TickOutcome) {
	color := m.active.Kind.Color()
	for _, c := range m.active.Cells() {
		if err := m.board.SetCell(c[0], c[1], color); err != nil {
			// Unreachable through the public API: the piece position was
			// validated by CanPlace before it became active.
			panic(fmt.Sprintf("tetris: lock-merge outside board: %v", err))
		}
	}
	out.Locked = true
	out.LockedPiece = m.active
	m.hasActive = false
	m.state = StateClearing
}
