// Package blocks implements the falling-blocks game on top of the
// tetris engine. It adapts platform input frames to engine inputs and
// layers scoring, levels and modes over the raw simulation.
package blocks

import (
	"time"

	"github.com/blockfall-game/blockfall/internal/config"
	"github.com/blockfall-game/blockfall/internal/core"
	"github.com/blockfall-game/blockfall/internal/registry"
	"github.com/blockfall-game/blockfall/internal/tetris"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeMarathon is the endless mode: play until the stack tops out.
	ModeMarathon Mode = "marathon"
	// ModeSprint ends in a win once the line target is reached.
	ModeSprint Mode = "sprint"
)

// Game implements the falling-blocks game.
type Game struct {
	mode       Mode
	cfg        config.BlocksConfig
	difficulty *config.DifficultyManager
	machine    *tetris.Machine

	tick      uint64
	playTicks uint64
	tickDur   time.Duration
	seed      int64

	score  int
	lines  int
	level  int
	pieces int

	screenW int
	screenH int

	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// Package-level variables for config/difficulty selection from the CLI.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new marathon mode game.
func New() *Game {
	return &Game{
		mode: ModeMarathon,
	}
}

// NewSprint creates a new sprint mode game.
func NewSprint() *Game {
	return &Game{
		mode: ModeSprint,
	}
}

func init() {
	registry.Register("blocks", func() registry.Game {
		return New()
	})
	registry.Register("blocks_sprint", func() registry.Game {
		return NewSprint()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSprint {
		return "blocks_sprint"
	}
	return "blocks"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSprint {
		return "Blockfall (Sprint)"
	}
	return "Blockfall"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadBlocks(configPath)
	if err != nil {
		loaded = config.DefaultBlocksConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlocksPreset(&loaded, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = loaded
	g.difficulty = config.NewDifficultyManager(loaded)

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.tickDur = time.Second / time.Duration(tickRate)

	g.tick = 0
	g.playTicks = 0
	g.seed = cfg.Seed
	g.score = 0
	g.lines = 0
	g.level = g.difficulty.Level(0)
	g.pieces = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()

	g.machine = tetris.NewMachine(tetris.Config{
		BoardWidth:   g.cfg.Board.Width,
		BoardHeight:  g.cfg.Board.Height,
		FallInterval: g.difficulty.FallInterval(g.level),
		LockDelay:    g.difficulty.LockDelay(),
	}, cfg.Seed)
}

// checkScreenSize verifies the playfield and side panel fit the screen.
func (g *Game) checkScreenSize() {
	requiredW := g.cfg.Board.Width*2 + 2 + sidePanelWidth
	requiredH := g.cfg.Board.Height + 2 + hudHeight
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.seed + int64(g.tick),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(time.Second / g.tickDur),
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.playTicks++
	outcome := g.machine.Tick(g.tickDur, engineInputs(input))
	g.applyOutcome(outcome)

	return core.StepResult{State: g.State()}
}

// engineInputs translates the platform input frame to engine inputs,
// preserving arrival order.
func engineInputs(input core.InputFrame) []tetris.Input {
	var inputs []tetris.Input
	for _, a := range input.Ordered() {
		switch a {
		case core.ActionLeft:
			inputs = append(inputs, tetris.InputMoveLeft)
		case core.ActionRight:
			inputs = append(inputs, tetris.InputMoveRight)
		case core.ActionRotateCW:
			inputs = append(inputs, tetris.InputRotateCW)
		case core.ActionRotateCCW:
			inputs = append(inputs, tetris.InputRotateCCW)
		case core.ActionSoftDrop:
			inputs = append(inputs, tetris.InputSoftDrop)
		case core.ActionHardDrop:
			inputs = append(inputs, tetris.InputHardDrop)
		}
	}
	return inputs
}

// applyOutcome updates score, lines and level from one engine tick.
func (g *Game) applyOutcome(out tetris.TickOutcome) {
	g.score += out.SoftDropCells * g.cfg.Scoring.SoftDropPerCell
	g.score += out.HardDropCells * g.cfg.Scoring.HardDropPerCell

	if out.Locked {
		g.pieces++
	}

	if n := out.Clear.RowsCleared; n > 0 {
		g.score += g.lineClearPoints(n)
		g.lines += n

		if newLevel := g.difficulty.Level(g.lines); newLevel != g.level {
			g.level = newLevel
			g.machine.SetFallInterval(g.difficulty.FallInterval(g.level))
		}

		if g.mode == ModeSprint && g.lines >= g.cfg.Gameplay.SprintLines {
			g.won = true
		}
	}

	if out.SpawnBlocked {
		g.gameOver = true
	}
}

// lineClearPoints returns the award for clearing n rows at once.
func (g *Game) lineClearPoints(n int) int {
	table := g.cfg.Scoring.LineClear
	if len(table) == 0 {
		return 0
	}
	idx := n - 1
	if idx >= len(table) {
		idx = len(table) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return table[idx] * g.level
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}

// Elapsed returns how much simulated play time has passed, excluding
// ticks spent paused or after the game ended.
func (g *Game) Elapsed() time.Duration {
	return time.Duration(g.playTicks) * g.tickDur
}

// Lines returns the total number of cleared rows.
func (g *Game) Lines() int {
	return g.lines
}

// Level returns the current level.
func (g *Game) Level() int {
	return g.level
}
