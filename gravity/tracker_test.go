package gravity

import (
	"testing"

	"github.com/jakecoffman/cp"
)

type fakeBody struct {
	pos     cp.Vector
	applied []cp.Vector
}

func (b *fakeBody) Position() cp.Vector            { return b.pos }
func (b *fakeBody) ApplyAcceleration(a cp.Vector) { b.applied = append(b.applied, a) }

func nearVec(a, b cp.Vector) bool {
	return a.Sub(b).Length() < 1e-9
}

func TestTrackerSumsSources(t *testing.T) {
	m := NewManager(
		&Directional{Acceleration: cp.Vector{Y: 10}},
		&Directional{Acceleration: cp.Vector{X: 10}},
	)
	body := &fakeBody{}
	tr := NewTracker(m, body, FixedUpdate, true)
	tr.Tick(FixedUpdate)

	if !nearVec(tr.Gravity(), cp.Vector{X: 10, Y: 10}) {
		t.Fatalf("gravity = %v, want (10, 10)", tr.Gravity())
	}
	s := 1 / cp.Vector{X: 1, Y: 1}.Length()
	if !nearVec(tr.Down(), cp.Vector{X: s, Y: s}) || !nearVec(tr.Up(), cp.Vector{X: -s, Y: -s}) {
		t.Fatalf("down=%v up=%v", tr.Down(), tr.Up())
	}
	if len(body.applied) != 1 || !nearVec(body.applied[0], tr.Gravity()) {
		t.Fatalf("applied = %v", body.applied)
	}
}

func TestTrackerPhases(t *testing.T) {
	cases := []struct {
		name        string
		mode        UpdateMode
		phase       UpdateMode
		apply       bool
		wantUpdated bool
		wantApplied int
	}{
		{"update_in_update", Update, Update, true, true, 0},
		{"update_in_fixed_applies_stale", Update, FixedUpdate, true, false, 1},
		{"late_in_late", LateUpdate, LateUpdate, true, true, 0},
		{"fixed_in_late", FixedUpdate, LateUpdate, true, false, 0},
		{"fixed_no_apply", FixedUpdate, FixedUpdate, false, true, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := NewManager(&Directional{Acceleration: cp.Vector{X: -3}})
			body := &fakeBody{}
			tr := NewTracker(m, body, c.mode, c.apply)
			tr.Tick(c.phase)

			updated := nearVec(tr.Gravity(), cp.Vector{X: -3})
			if updated != c.wantUpdated {
				t.Fatalf("updated = %v, want %v (gravity %v)", updated, c.wantUpdated, tr.Gravity())
			}
			if len(body.applied) != c.wantApplied {
				t.Fatalf("applied %d times, want %d", len(body.applied), c.wantApplied)
			}
		})
	}
}

func TestTrackerDefaultsAndZeroPull(t *testing.T) {
	tr := NewTracker(nil, &fakeBody{}, FixedUpdate, false)
	tr.Tick(FixedUpdate)
	if tr.Down() != (cp.Vector{Y: 1}) || tr.Up() != (cp.Vector{Y: -1}) {
		t.Fatalf("defaults down=%v up=%v", tr.Down(), tr.Up())
	}

	left := &Directional{Acceleration: cp.Vector{X: -1}}
	m := NewManager(left)
	tr = NewTracker(m, &fakeBody{}, FixedUpdate, false)
	tr.Tick(FixedUpdate)
	if !m.Remove(left) {
		t.Fatalf("Remove should find the source")
	}
	tr.Tick(FixedUpdate)
	if tr.Gravity() != (cp.Vector{}) {
		t.Fatalf("gravity = %v, want zero", tr.Gravity())
	}
	if !nearVec(tr.Down(), cp.Vector{X: -1}) {
		t.Fatalf("zero pull should keep last down, got %v", tr.Down())
	}
}

func TestPointSource(t *testing.T) {
	p := &Point{Center: cp.Vector{X: 10}, Strength: 5, Radius: 20}
	cases := []struct {
		name string
		pos  cp.Vector
		want cp.Vector
	}{
		{"inside", cp.Vector{}, cp.Vector{X: 5}},
		{"other_side", cp.Vector{X: 10, Y: 4}, cp.Vector{Y: -5}},
		{"outside", cp.Vector{X: -30}, cp.Vector{}},
		{"center", cp.Vector{X: 10}, cp.Vector{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := p.GravityFor(c.pos); !nearVec(got, c.want) {
				t.Fatalf("gravity = %v, want %v", got, c.want)
			}
		})
	}
}

func TestParseUpdateMode(t *testing.T) {
	for _, m := range []UpdateMode{Update, FixedUpdate, LateUpdate} {
		got, err := ParseUpdateMode(m.String())
		if err != nil || got != m {
			t.Fatalf("round trip %q = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseUpdateMode("sometimes"); err == nil {
		t.Fatalf("expected error")
	}
}
