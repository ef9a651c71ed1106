package grapple

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

var (
	ErrUnknownMovementMode = errors.New("grapple: unknown movement mode")
	ErrInvalidConfig       = errors.New("grapple: invalid config")
)

// MovementMode selects how the body is pulled toward the target.
type MovementMode int

const (
	// ConstantTime reaches the target after TimeToReach regardless of distance.
	ConstantTime MovementMode = iota
	// ConstantSpeed closes at Speed; arrival time depends on distance.
	ConstantSpeed
)

func (m MovementMode) String() string {
	switch m {
	case ConstantTime:
		return "constant_time"
	case ConstantSpeed:
		return "constant_speed"
	default:
		return fmt.Sprintf("movement_mode(%d)", int(m))
	}
}

func ParseMovementMode(s string) (MovementMode, error) {
	switch s {
	case "", "constant_time":
		return ConstantTime, nil
	case "constant_speed":
		return ConstantSpeed, nil
	}
	return ConstantTime, fmt.Errorf("%w: %q", ErrUnknownMovementMode, s)
}

// Config is fixed once a Controller is built.
type Config struct {
	MovementMode    MovementMode
	PermitByDefault bool
	MaxRange        float64
	// LayerMask filters raycast hits by collision category. Zero means all.
	LayerMask    uint32
	HaltDistance float64

	EnableArcing bool
	ArcHeight    float64

	// ConstantTime
	TimeToReach float64

	// ConstantSpeed
	Speed              float64
	VerticalErrorScale float64

	// Up is the arc axis. Zero means screen-up.
	Up cp.Vector
}

// DefaultUp points toward the top of the screen (y grows downward).
var DefaultUp = cp.Vector{X: 0, Y: -1}

func DefaultConfig() Config {
	return Config{
		MovementMode:       ConstantTime,
		MaxRange:           50,
		HaltDistance:       1,
		ArcHeight:          2,
		TimeToReach:        1.5,
		Speed:              5,
		VerticalErrorScale: 0.2,
	}
}

// Validate rejects values no tuning could mean. A zero TimeToReach is
// allowed: the grapple then lands in one tick.
func (c Config) Validate() error {
	switch {
	case c.MovementMode != ConstantTime && c.MovementMode != ConstantSpeed:
		return fmt.Errorf("%w: %v", ErrUnknownMovementMode, c.MovementMode)
	case c.MaxRange < 0:
		return fmt.Errorf("%w: max range %v < 0", ErrInvalidConfig, c.MaxRange)
	case c.HaltDistance < 0:
		return fmt.Errorf("%w: halt distance %v < 0", ErrInvalidConfig, c.HaltDistance)
	case c.TimeToReach < 0:
		return fmt.Errorf("%w: time to reach %v < 0", ErrInvalidConfig, c.TimeToReach)
	case c.Speed < 0:
		return fmt.Errorf("%w: speed %v < 0", ErrInvalidConfig, c.Speed)
	}
	return nil
}

// UpAxis returns the normalized configured up axis.
func (c Config) UpAxis() cp.Vector {
	if c.Up.LengthSq() == 0 {
		return DefaultUp
	}
	return c.Up.Normalize()
}
