package actson

import "testing"

func TestModeStackPushPop(t *testing.T) {
	s := newModeStack(4)
	if !s.atTopLevel() {
		t.Fatal("expected fresh stack to be at top level")
	}

	if !s.push(modeArray) {
		t.Fatal("push should succeed under limit")
	}
	if s.atTopLevel() {
		t.Error("expected not at top level after push")
	}
	if s.peek() != modeArray {
		t.Errorf("peek = %v, want modeArray", s.peek())
	}

	if s.pop(modeObject) {
		t.Error("pop with wrong mode should fail")
	}
	if !s.pop(modeArray) {
		t.Error("pop with correct mode should succeed")
	}
	if !s.atTopLevel() {
		t.Error("expected top level after matching pop")
	}
}

func TestModeStackDepthLimit(t *testing.T) {
	s := newModeStack(2)
	if !s.push(modeArray) {
		t.Fatal("first push should succeed")
	}
	if s.push(modeObject) {
		t.Fatal("second push should fail at limit 2 (1 for modeDone + 1 more)")
	}
}

func TestModeStackPopUnderflow(t *testing.T) {
	s := newModeStack(4)
	if !s.pop(modeDone) {
		t.Fatal("popping the initial modeDone sentinel should succeed exactly once")
	}
	if s.pop(modeDone) {
		t.Fatal("a second pop on an empty stack should fail, not panic")
	}
}
