package core

import "testing"

func TestActionQueueFIFO(t *testing.T) {
	q := NewActionQueue(4)

	q.Push(ActionLeft)
	q.Push(ActionRotate)
	q.Push(ActionHardDrop)

	want := []Action{ActionLeft, ActionRotate, ActionHardDrop, ActionNone}
	for i, w := range want {
		if got := q.Poll(); got != w {
			t.Errorf("Poll() #%d = %v, expected %v", i, got, w)
		}
	}
}

func TestActionQueueBounded(t *testing.T) {
	q := NewActionQueue(2)

	if !q.Push(ActionLeft) || !q.Push(ActionRight) {
		t.Fatal("Push should accept actions while below capacity")
	}
	if q.Push(ActionRotate) {
		t.Error("Push should drop actions when full")
	}
	if q.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", q.Len())
	}

	q.Poll()
	if !q.Push(ActionRotate) {
		t.Error("Push should accept after a Poll frees a slot")
	}
}

func TestActionQueueIgnoresNone(t *testing.T) {
	q := NewActionQueue(2)
	q.Push(ActionNone)
	if q.Len() != 0 {
		t.Errorf("ActionNone should not be queued, Len() = %d", q.Len())
	}
}

func TestActionQueueClear(t *testing.T) {
	q := NewActionQueue(0) // falls back to default size
	for range DefaultQueueSize {
		q.Push(ActionSoftDrop)
	}
	q.Clear()
	if q.Poll() != ActionNone {
		t.Error("Poll after Clear should return ActionNone")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionRotate, "Rotate"},
		{ActionHardDrop, "HardDrop"},
		{ActionToggleEasy, "ToggleEasy"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}
