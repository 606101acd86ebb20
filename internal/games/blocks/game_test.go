package blocks

import (
	"strings"
	"testing"

	"github.com/blockfall-game/blockfall/internal/core"
	"github.com/blockfall-game/blockfall/internal/tetris"
)

func testRuntimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// seedWithFirstI finds a seed whose first dealt piece is the I tetromino.
func seedWithFirstI(t *testing.T) int64 {
	t.Helper()
	for seed := int64(0); seed < 10000; seed++ {
		if tetris.NewBagRandomizer(seed).Next() == tetris.KindI {
			return seed
		}
	}
	t.Fatal("no seed found with a leading I piece")
	return 0
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := testRuntimeConfig(12345)

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		if i%23 == 0 {
			input.Set(core.ActionLeft)
		}
		if i%31 == 0 {
			input.Set(core.ActionRotateCW)
		}
		if i%97 == 0 {
			input.Set(core.ActionHardDrop)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1 != snap2 {
		t.Errorf("snapshots diverge:\n  %+v\n  %+v", snap1, snap2)
	}
}

func TestHardDropScoring(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(seedWithFirstI(t)))

	g.Step(core.NewInputFrame()) // spawn tick

	drop := core.NewInputFrame()
	drop.Set(core.ActionHardDrop)
	g.Step(drop)

	// The I falls 18 rows, two points per cell.
	if g.score != 18*g.cfg.Scoring.HardDropPerCell {
		t.Errorf("score after hard drop = %d, want %d", g.score, 18*g.cfg.Scoring.HardDropPerCell)
	}
	if g.pieces != 1 {
		t.Errorf("pieces = %d, want 1", g.pieces)
	}

	g.Step(core.NewInputFrame()) // clearing tick, nothing to clear
	if g.lines != 0 {
		t.Errorf("lines = %d, want 0", g.lines)
	}
}

func TestLineClearScoring(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(seedWithFirstI(t)))

	g.Step(core.NewInputFrame()) // spawn tick

	// Fill the bottom row except where the I will land.
	board := g.machine.Board()
	for _, x := range []int{0, 1, 2, 7, 8, 9} {
		if err := board.SetCell(x, 19, 2); err != nil {
			t.Fatalf("SetCell failed: %v", err)
		}
	}

	drop := core.NewInputFrame()
	drop.Set(core.ActionHardDrop)
	g.Step(drop)
	g.Step(core.NewInputFrame()) // clearing tick

	want := 18*g.cfg.Scoring.HardDropPerCell + g.cfg.Scoring.LineClear[0]*g.level
	if g.score != want {
		t.Errorf("score = %d, want %d", g.score, want)
	}
	if g.lines != 1 {
		t.Errorf("lines = %d, want 1", g.lines)
	}
}

func TestLevelAdvancesWithLines(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(seedWithFirstI(t)))
	g.Step(core.NewInputFrame())

	if g.level != 1 {
		t.Fatalf("starting level = %d, want 1", g.level)
	}

	// Credit enough lines that the next clear crosses the threshold.
	g.lines = 9

	board := g.machine.Board()
	for _, x := range []int{0, 1, 2, 7, 8, 9} {
		if err := board.SetCell(x, 19, 2); err != nil {
			t.Fatalf("SetCell failed: %v", err)
		}
	}

	drop := core.NewInputFrame()
	drop.Set(core.ActionHardDrop)
	g.Step(drop)
	g.Step(core.NewInputFrame())

	if g.lines != 10 {
		t.Fatalf("lines = %d, want 10", g.lines)
	}
	if g.level != 2 {
		t.Errorf("level = %d, want 2 after ten lines", g.level)
	}
}

func TestSprintWin(t *testing.T) {
	g := NewSprint()
	g.Reset(testRuntimeConfig(seedWithFirstI(t)))
	g.Step(core.NewInputFrame())

	// One line away from the sprint target.
	g.lines = g.cfg.Gameplay.SprintLines - 1

	board := g.machine.Board()
	for _, x := range []int{0, 1, 2, 7, 8, 9} {
		if err := board.SetCell(x, 19, 2); err != nil {
			t.Fatalf("SetCell failed: %v", err)
		}
	}

	drop := core.NewInputFrame()
	drop.Set(core.ActionHardDrop)
	g.Step(drop)
	g.Step(core.NewInputFrame())

	if !g.won {
		t.Error("sprint target reached but game not won")
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should report the finished sprint")
	}
}

func TestTopOutEndsGame(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(1))

	// Fill the spawn rows before the first piece is dealt.
	board := g.machine.Board()
	for y := 0; y <= 1; y++ {
		for x := 0; x < board.Width(); x++ {
			if err := board.SetCell(x, y, 1); err != nil {
				t.Fatalf("SetCell failed: %v", err)
			}
		}
	}

	g.Step(core.NewInputFrame())

	if !g.gameOver {
		t.Error("blocked spawn should end the game")
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should be true after top-out")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(7))

	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.paused {
		t.Fatal("game should be paused")
	}

	before := g.Snapshot()
	elapsedBefore := g.Elapsed()
	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}
	after := g.Snapshot()

	before.Tick = after.Tick // only the tick counter may move while paused
	if before != after {
		t.Errorf("simulation advanced while paused:\n  %+v\n  %+v", before, after)
	}
	if g.Elapsed() != elapsedBefore {
		t.Errorf("play clock advanced while paused: %v -> %v", elapsedBefore, g.Elapsed())
	}

	g.Step(pause.Clone())
	if g.paused {
		t.Error("second pause press should resume")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(1))

	board := g.machine.Board()
	for y := 0; y <= 1; y++ {
		for x := 0; x < board.Width(); x++ {
			board.SetCell(x, y, 1)
		}
	}
	g.score = 500
	g.Step(core.NewInputFrame())
	if !g.gameOver {
		t.Fatal("expected game over")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.gameOver {
		t.Error("restart should clear the game over flag")
	}
	if g.score != 0 || g.lines != 0 {
		t.Errorf("restart should reset score and lines, got %d/%d", g.score, g.lines)
	}
}

func TestGameIDsAndTitles(t *testing.T) {
	marathon := New()
	if marathon.ID() != "blocks" {
		t.Errorf("marathon ID = %q, want blocks", marathon.ID())
	}
	if marathon.Title() != "Blockfall" {
		t.Errorf("marathon title = %q", marathon.Title())
	}

	sprint := NewSprint()
	if sprint.ID() != "blocks_sprint" {
		t.Errorf("sprint ID = %q, want blocks_sprint", sprint.ID())
	}
	if sprint.Title() != "Blockfall (Sprint)" {
		t.Errorf("sprint title = %q", sprint.Title())
	}
}

func TestRender(t *testing.T) {
	cfg := testRuntimeConfig(444)

	g := New()
	g.Reset(cfg)
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	content := screen.String()
	if len(content) == 0 {
		t.Fatal("rendered screen should not be empty")
	}
	if !strings.Contains(content, "Blockfall") {
		t.Error("HUD should contain the game title")
	}
	if !strings.Contains(content, "Next") {
		t.Error("side panel should show the piece preview")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:     333,
		ScreenW:  10,
		ScreenH:  5,
		TickRate: 60,
	})

	if !g.tooSmall {
		t.Error("game should detect window is too small")
	}
	if snap := g.Snapshot(); snap.State != StatePausedSmall {
		t.Errorf("snapshot state = %s, want %s", snap.State, StatePausedSmall)
	}
}
