package tetris

import (
	"testing"
	"time"
)

const testTick = 10 * time.Millisecond

func testConfig() Config {
	return Config{
		BoardWidth:   10,
		BoardHeight:  20,
		FallInterval: testTick,
		LockDelay:    2 * testTick,
	}
}

// seedWithFirst finds a seed whose first bag draw is the given kind, so
// scenario tests can rely on a known piece.
func seedWithFirst(t *testing.T, kind Kind) int64 {
	t.Helper()
	for seed := int64(0); seed < 10000; seed++ {
		if NewBagRandomizer(seed).Next() == kind {
			return seed
		}
	}
	t.Fatalf("no seed found with first piece %s", kind)
	return 0
}

func TestSpawnTransitionsToFalling(t *testing.T) {
	m := NewMachine(testConfig(), 1)

	out := m.Tick(testTick, nil)
	if out.State != StateFalling {
		t.Fatalf("state after spawn tick = %s, want falling", out.State)
	}
	if _, ok := m.Active(); !ok {
		t.Fatal("an active piece should exist after spawning")
	}
	if out.SpawnBlocked {
		t.Error("spawn on an empty board should not be blocked")
	}
}

func TestHardDropLocksIPieceOnBottomRow(t *testing.T) {
	seed := seedWithFirst(t, KindI)
	m := NewMachine(testConfig(), seed)

	m.Tick(testTick, nil) // spawn
	out := m.Tick(0, []Input{InputHardDrop})

	if !out.Locked {
		t.Fatal("hard drop should lock the piece this tick")
	}
	if out.HardDropCells != 18 {
		t.Errorf("HardDropCells = %d, want 18", out.HardDropCells)
	}
	if out.State != StateClearing {
		t.Errorf("state after hard drop = %s, want clearing", out.State)
	}
	if _, ok := m.Active(); ok {
		t.Error("active piece should be destroyed on lock-merge")
	}
	for _, c := range out.LockedPiece.Cells() {
		if c[1] != 19 {
			t.Errorf("locked cell %v not on bottom row", c)
		}
		occupied, err := m.Board().IsOccupied(c[0], c[1])
		if err != nil {
			t.Fatalf("IsOccupied failed: %v", err)
		}
		if !occupied {
			t.Errorf("locked cell %v not merged into board", c)
		}
	}

	// Four cells do not fill a ten-wide row.
	clearOut := m.Tick(testTick, nil)
	if clearOut.Clear.RowsCleared != 0 {
		t.Errorf("RowsCleared = %d, want 0", clearOut.Clear.RowsCleared)
	}
	if clearOut.State != StateSpawning {
		t.Errorf("state after clearing = %s, want spawning", clearOut.State)
	}
}

func TestLockCompletingRowClearsIt(t *testing.T) {
	seed := seedWithFirst(t, KindI)
	m := NewMachine(testConfig(), seed)
	m.Tick(testTick, nil) // spawn the I

	// Row 19 is full except where the I will land; a marker on row 18
	// must shift down with the clear.
	board := m.Board()
	for _, x := range []int{0, 1, 2, 7, 8, 9} {
		if err := board.SetCell(x, 19, 2); err != nil {
			t.Fatalf("SetCell failed: %v", err)
		}
	}
	if err := board.SetCell(0, 18, 5); err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}

	dropOut := m.Tick(0, []Input{InputHardDrop})
	if !dropOut.Locked {
		t.Fatal("hard drop should lock")
	}

	clearOut := m.Tick(testTick, nil)
	if clearOut.Clear.RowsCleared != 1 {
		t.Fatalf("RowsCleared = %d, want 1", clearOut.Clear.RowsCleared)
	}
	if len(clearOut.Clear.RowIndices) != 1 || clearOut.Clear.RowIndices[0] != 19 {
		t.Errorf("RowIndices = %v, want [19]", clearOut.Clear.RowIndices)
	}

	cell, err := m.Board().Cell(0, 19)
	if err != nil {
		t.Fatalf("Cell failed: %v", err)
	}
	if !cell.Filled || cell.Color != 5 {
		t.Errorf("row 18 marker did not shift to row 19, got %+v", cell)
	}
}

func TestSpawnBlockedParksMachine(t *testing.T) {
	m := NewMachine(testConfig(), 1)

	// Fill the two rows every spawn anchor occupies.
	for y := 0; y <= 1; y++ {
		for x := 0; x < 10; x++ {
			if err := m.Board().SetCell(x, y, 1); err != nil {
				t.Fatalf("SetCell failed: %v", err)
			}
		}
	}

	out := m.Tick(testTick, nil)
	if !out.SpawnBlocked {
		t.Fatal("spawn into occupied cells should report SpawnBlocked")
	}
	if _, ok := m.Active(); ok {
		t.Error("no active piece should be created on a blocked spawn")
	}
	if !m.Blocked() {
		t.Error("machine should park after SpawnBlocked")
	}

	// Further ticks are inert until Reset.
	next := m.Tick(testTick, []Input{InputHardDrop})
	if next.SpawnBlocked || next.Locked {
		t.Error("parked machine should ignore ticks")
	}

	m.Reset(1)
	if m.Blocked() {
		t.Error("Reset should unpark the machine")
	}
	if m.State() != StateSpawning {
		t.Errorf("state after Reset = %s, want spawning", m.State())
	}
}

func TestLockDelayGraceWindow(t *testing.T) {
	seed := seedWithFirst(t, KindT)
	m := NewMachine(testConfig(), seed)
	m.Tick(testTick, nil) // spawn the T at (3, 0)

	// A single obstacle the piece will rest on high above the floor.
	if err := m.Board().SetCell(4, 10, 1); err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}

	// Let gravity walk it down until it rests.
	deadline := 50
	for m.State() != StateLocking && deadline > 0 {
		m.Tick(testTick, nil)
		deadline--
	}
	if m.State() != StateLocking {
		t.Fatal("piece should reach the Locking state on the obstacle")
	}
	piece, ok := m.Active()
	if !ok {
		t.Fatal("piece should still exist during the grace window")
	}
	if piece.Y != 8 {
		t.Fatalf("resting anchor Y = %d, want 8", piece.Y)
	}

	// One sideways step keeps it over the obstacle: still locking.
	m.Tick(0, []Input{InputMoveLeft})
	if m.State() != StateLocking {
		t.Errorf("state after first grace move = %s, want locking", m.State())
	}
	piece, _ = m.Active()
	if piece.X != 2 {
		t.Errorf("anchor X after grace move = %d, want 2", piece.X)
	}

	// A second step clears the obstacle: the piece can fall again.
	m.Tick(0, []Input{InputMoveLeft})
	if m.State() != StateFalling {
		t.Errorf("state after escaping the ledge = %s, want falling", m.State())
	}
}

func TestLockDelayExpiryMerges(t *testing.T) {
	seed := seedWithFirst(t, KindO)
	m := NewMachine(testConfig(), seed)
	m.Tick(testTick, nil) // spawn

	deadline := 50
	for m.State() != StateLocking && deadline > 0 {
		m.Tick(testTick, nil)
		deadline--
	}
	if m.State() != StateLocking {
		t.Fatal("piece should reach Locking on the floor")
	}

	// The configured delay is two ticks; the first leaves it locking.
	out := m.Tick(testTick, nil)
	if out.Locked {
		t.Fatal("piece locked before the grace window elapsed")
	}
	out = m.Tick(testTick, nil)
	if !out.Locked {
		t.Fatal("piece should lock once the grace window elapses")
	}
	if out.State != StateClearing {
		t.Errorf("state after lock = %s, want clearing", out.State)
	}
}

func TestSoftDropCountsCells(t *testing.T) {
	m := NewMachine(testConfig(), 1)
	m.Tick(testTick, nil) // spawn

	before, _ := m.Active()
	out := m.Tick(0, []Input{InputSoftDrop, InputSoftDrop})
	if out.SoftDropCells != 2 {
		t.Errorf("SoftDropCells = %d, want 2", out.SoftDropCells)
	}
	after, _ := m.Active()
	if after.Y != before.Y+2 {
		t.Errorf("anchor Y advanced %d rows, want 2", after.Y-before.Y)
	}
}

func TestRejectedMovesAreSilentNoOps(t *testing.T) {
	seed := seedWithFirst(t, KindT)
	m := NewMachine(testConfig(), seed)
	m.Tick(testTick, nil) // spawn

	// Hammer the left wall; the piece stops at X=0 and stays in Falling.
	for i := 0; i < 10; i++ {
		out := m.Tick(0, []Input{InputMoveLeft})
		if out.State != StateFalling {
			t.Fatalf("state = %s after rejected move, want falling", out.State)
		}
	}
	piece, _ := m.Active()
	if piece.X != 0 {
		t.Errorf("anchor X = %d, want 0 at the wall", piece.X)
	}
}

func TestMachineDeterminism(t *testing.T) {
	script := func(tick int) []Input {
		switch {
		case tick%17 == 0:
			return []Input{InputMoveLeft}
		case tick%13 == 0:
			return []Input{InputRotateCW}
		case tick%29 == 0:
			return []Input{InputHardDrop}
		case tick%7 == 0:
			return []Input{InputSoftDrop}
		default:
			return nil
		}
	}

	run := func() *Machine {
		m := NewMachine(testConfig(), 424242)
		for i := 0; i < 500; i++ {
			m.Tick(testTick, script(i))
			if m.Blocked() {
				break
			}
		}
		return m
	}

	m1 := run()
	m2 := run()

	if !m1.Board().Equal(m2.Board()) {
		t.Error("same seed and script should produce identical boards")
	}
	if m1.State() != m2.State() {
		t.Errorf("states diverge: %s vs %s", m1.State(), m2.State())
	}
	p1, ok1 := m1.Active()
	p2, ok2 := m2.Active()
	if ok1 != ok2 || p1 != p2 {
		t.Error("active pieces diverge between identical runs")
	}
}
