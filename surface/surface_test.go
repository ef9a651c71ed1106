package surface

import (
	"errors"
	"testing"
)

func TestBehaviour(t *testing.T) {
	cases := []struct {
		name         string
		behaviour    Behaviour
		canGrapple   bool
		hasTimeLimit bool
	}{
		{"can", CanGrapple, true, false},
		{"timed", TimedGrapple, true, true},
		{"cannot", CannotGrapple, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := New(c.behaviour, 3)
			if s.CanGrapple() != c.canGrapple {
				t.Fatalf("CanGrapple = %v, want %v", s.CanGrapple(), c.canGrapple)
			}
			if s.HasTimeLimit() != c.hasTimeLimit {
				t.Fatalf("HasTimeLimit = %v, want %v", s.HasTimeLimit(), c.hasTimeLimit)
			}
			if s.TimeLimit() != 3 {
				t.Fatalf("TimeLimit = %v, want 3", s.TimeLimit())
			}
			parsed, err := ParseBehaviour(c.behaviour.String())
			if err != nil || parsed != c.behaviour {
				t.Fatalf("round trip %q = %v, %v", c.behaviour.String(), parsed, err)
			}
		})
	}
}

func TestDefaultsAndRemoval(t *testing.T) {
	s := New(TimedGrapple, 0)
	if s.TimeLimit() != DefaultTimeLimit {
		t.Fatalf("TimeLimit = %v, want %v", s.TimeLimit(), DefaultTimeLimit)
	}
	if !s.Alive() {
		t.Fatalf("new surface should be alive")
	}
	s.Remove()
	if s.Alive() {
		t.Fatalf("removed surface should not be alive")
	}

	var missing *Surface
	if missing.CanGrapple() || missing.HasTimeLimit() || missing.Alive() {
		t.Fatalf("nil surface should report nothing")
	}

	if _, err := ParseBehaviour("sticky"); !errors.Is(err, ErrUnknownBehaviour) {
		t.Fatalf("err = %v, want ErrUnknownBehaviour", err)
	}
}
