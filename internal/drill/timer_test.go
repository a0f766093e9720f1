package drill

import "testing"

func TestCountdown_QuizLifecycle(t *testing.T) {
	c := NewCountdown(QuizItemUnits)

	// Units 1-9: plain ticks.
	for i := 1; i < QuizItemUnits; i++ {
		if ev := c.Tick(); ev != TimerTick {
			t.Fatalf("tick %d: event = %v, want TimerTick", i, ev)
		}
		if c.Remaining() != QuizItemUnits-i {
			t.Fatalf("tick %d: remaining = %d, want %d", i, c.Remaining(), QuizItemUnits-i)
		}
	}

	// Unit 10: expiry, grace display begins.
	if ev := c.Tick(); ev != TimerExpired {
		t.Fatalf("expected TimerExpired at unit %d, got %v", QuizItemUnits, ev)
	}
	if !c.InGrace() {
		t.Error("expected InGrace after expiry")
	}
	if c.Remaining() != 0 {
		t.Errorf("remaining = %d during grace, want 0", c.Remaining())
	}

	// Unit 11: auto-advance after exactly one grace unit.
	if ev := c.Tick(); ev != TimerAutoAdvance {
		t.Fatalf("expected TimerAutoAdvance after grace, got %v", ev)
	}

	// Inert afterwards.
	for i := 0; i < 3; i++ {
		if ev := c.Tick(); ev != TimerDone {
			t.Fatalf("expected TimerDone on post-advance tick, got %v", ev)
		}
	}
}

func TestCountdown_ExpiredFiresExactlyOnce(t *testing.T) {
	c := NewCountdown(FlashItemUnits)
	expired := 0
	advanced := 0
	for i := 0; i < 20; i++ {
		switch c.Tick() {
		case TimerExpired:
			expired++
		case TimerAutoAdvance:
			advanced++
		}
	}
	if expired != 1 {
		t.Errorf("expired fired %d times, want 1", expired)
	}
	if advanced != 1 {
		t.Errorf("autoAdvance fired %d times, want 1", advanced)
	}
}

func TestCountdown_FreshPerItem(t *testing.T) {
	a := NewCountdown(FlashItemUnits)
	a.Tick()
	a.Tick()

	b := NewCountdown(FlashItemUnits)
	if b.Remaining() != FlashItemUnits {
		t.Errorf("fresh countdown remaining = %d, want %d", b.Remaining(), FlashItemUnits)
	}
}
