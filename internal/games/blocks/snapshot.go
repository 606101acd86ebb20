package blocks

import "github.com/blockfall-game/blockfall/internal/tetris"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateWon         GameStateType = "won"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Mode        string
	Score       int
	Lines       int
	Level       int
	Pieces      int
	State       GameStateType
	Machine     tetris.State
	HasActive   bool
	ActiveKind  tetris.Kind
	ActiveX     int
	ActiveY     int
	ActiveRot   int
	FilledCells int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWon
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:    g.tick,
		Mode:    string(g.mode),
		Score:   g.score,
		Lines:   g.lines,
		Level:   g.level,
		Pieces:  g.pieces,
		State:   state,
		Machine: g.machine.State(),
	}

	if piece, ok := g.machine.Active(); ok {
		snap.HasActive = true
		snap.ActiveKind = piece.Kind
		snap.ActiveX = piece.X
		snap.ActiveY = piece.Y
		snap.ActiveRot = piece.Rotation
	}

	board := g.machine.Board()
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			if occupied, err := board.IsOccupied(x, y); err == nil && occupied {
				snap.FilledCells++
			}
		}
	}

	return snap
}
