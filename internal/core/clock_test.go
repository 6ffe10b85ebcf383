package core

import (
	"testing"
	"time"
)

func TestManualClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	if !c.Now().Equal(start) {
		t.Fatalf("Now() = %v, expected %v", c.Now(), start)
	}

	c.Advance(1500 * time.Millisecond)
	if got := c.Now().Sub(start); got != 1500*time.Millisecond {
		t.Errorf("after Advance, elapsed = %v, expected 1.5s", got)
	}

	c.Set(start)
	if !c.Now().Equal(start) {
		t.Error("Set should move the clock back to start")
	}
}

func TestKeyEventHelpers(t *testing.T) {
	if ev := Press(KeyLeft); ev.Key != KeyLeft || !ev.Down {
		t.Errorf("Press(KeyLeft) = %+v", ev)
	}
	if ev := Release(KeyRight); ev.Key != KeyRight || ev.Down {
		t.Errorf("Release(KeyRight) = %+v", ev)
	}
	if KeyRight.String() != "Right" || Key(99).String() != "Unknown" {
		t.Error("Key.String returned wrong name")
	}
}
