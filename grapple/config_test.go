package grapple

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestParseMovementMode(t *testing.T) {
	cases := []struct {
		in      string
		want    MovementMode
		wantErr bool
	}{
		{"", ConstantTime, false},
		{"constant_time", ConstantTime, false},
		{"constant_speed", ConstantSpeed, false},
		{"teleport", ConstantTime, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseMovementMode(c.in)
			if (err != nil) != c.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, c.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownMovementMode) {
				t.Fatalf("err = %v, want ErrUnknownMovementMode", err)
			}
			if got != c.want {
				t.Fatalf("mode = %v, want %v", got, c.want)
			}
		})
	}
	if ConstantSpeed.String() != "constant_speed" {
		t.Fatalf("String() = %q", ConstantSpeed.String())
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"default", func(c *Config) {}, nil},
		{"zero_time_to_reach", func(c *Config) { c.TimeToReach = 0 }, nil},
		{"bad_mode", func(c *Config) { c.MovementMode = 7 }, ErrUnknownMovementMode},
		{"negative_range", func(c *Config) { c.MaxRange = -1 }, ErrInvalidConfig},
		{"negative_halt", func(c *Config) { c.HaltDistance = -1 }, ErrInvalidConfig},
		{"negative_speed", func(c *Config) { c.Speed = -1 }, ErrInvalidConfig},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mutate(&cfg)
			err := cfg.Validate()
			if c.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.wantErr != nil && !errors.Is(err, c.wantErr) {
				t.Fatalf("err = %v, want %v", err, c.wantErr)
			}
		})
	}
}

func TestUpAxis(t *testing.T) {
	if got := DefaultConfig().UpAxis(); got != DefaultUp {
		t.Fatalf("default up = %v", got)
	}
	cfg := Config{Up: cp.Vector{X: 4}}
	if got := cfg.UpAxis(); !near(got, cp.Vector{X: 1}) {
		t.Fatalf("up = %v, want (1, 0)", got)
	}
}
