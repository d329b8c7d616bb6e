package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame

	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionHint)
	if !f.Has(ActionLeft) || !f.Has(ActionHint) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("Has(Right) = true, never set")
	}

	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should drop all actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionToggleAuto.String() != "ToggleAuto" {
		t.Errorf("String() = %q", ActionToggleAuto.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("String() for out of range = %q", Action(99).String())
	}
}
