package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionLeft) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Has(ActionLeft) should be true after Set")
	}
	if f.Has(ActionRight) {
		t.Error("Has(ActionRight) should be false")
	}
}

func TestInputFrameOrdered(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionSoftDrop)
	f.Set(ActionLeft)
	f.Set(ActionRotateCW)

	got := f.Ordered()
	want := []Action{ActionSoftDrop, ActionLeft, ActionRotateCW}

	if len(got) != len(want) {
		t.Fatalf("Ordered() has %d actions, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Ordered()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestInputFrameDuplicateSet(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionLeft)
	f.Set(ActionLeft)

	if len(f.Ordered()) != 1 {
		t.Errorf("Duplicate Set should record once, got %d entries", len(f.Ordered()))
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionHardDrop)

	f.Clear()

	if f.Has(ActionLeft) || f.Has(ActionHardDrop) {
		t.Error("Clear should remove all actions")
	}
	if len(f.Ordered()) != 0 {
		t.Errorf("Ordered() should be empty after Clear, got %d entries", len(f.Ordered()))
	}

	// Frame remains usable after Clear
	f.Set(ActionRight)
	if !f.Has(ActionRight) {
		t.Error("Set after Clear should work")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionRotateCCW)

	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionLeft) || !clone.Has(ActionRotateCCW) {
		t.Error("Clone should be independent of the original")
	}

	got := clone.Ordered()
	if len(got) != 2 || got[0] != ActionLeft || got[1] != ActionRotateCCW {
		t.Errorf("Clone should preserve arrival order, got %v", got)
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionLeft) {
		t.Error("Zero value frame should have no actions")
	}

	// Set on a zero value frame must not panic
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set on zero value frame should work")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionHardDrop, "HardDrop"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
