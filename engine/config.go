package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/word-traffic/constants"
)

// ErrInvalidConfig is returned by Config.Validate
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the tunables of one game session
// Read-only after the session is created
type Config struct {
	// Play field geometry in distance units
	FieldWidth    float64
	FieldHeight   float64
	CarHeight     float64
	ExitThreshold float64

	// Spawn rules
	MaxEntities       int
	PlacementAttempts int

	// Progression
	CarsPerLevel         int
	InitialSpawnInterval time.Duration
	MinSpawnInterval     time.Duration
	SpawnIntervalStep    time.Duration
	InitialSpeed         float64
	SpeedStep            float64

	// Timing
	MotionInterval time.Duration
	ErrorShake     time.Duration
}

// DefaultConfig returns the classic game tuning
func DefaultConfig() Config {
	return Config{
		FieldWidth:           constants.FieldWidth,
		FieldHeight:          constants.FieldHeight,
		CarHeight:            constants.CarHeight,
		ExitThreshold:        constants.ExitThreshold,
		MaxEntities:          constants.MaxCarsOnScreen,
		PlacementAttempts:    constants.PlacementAttempts,
		CarsPerLevel:         constants.CarsPerLevel,
		InitialSpawnInterval: constants.InitialSpawnInterval,
		MinSpawnInterval:     constants.MinSpawnInterval,
		SpawnIntervalStep:    constants.SpawnIntervalStep,
		InitialSpeed:         constants.InitialCarSpeed,
		SpeedStep:            constants.CarSpeedStep,
		MotionInterval:       constants.MotionTickInterval,
		ErrorShake:           constants.ErrorShakeDuration,
	}
}

// Validate rejects configurations the game cannot run with
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.FieldWidth > 0, "field width must be positive, got %v", c.FieldWidth)
	check(c.CarHeight > 0, "car height must be positive, got %v", c.CarHeight)
	check(c.FieldHeight > c.CarHeight, "field height %v must exceed car height %v", c.FieldHeight, c.CarHeight)
	check(c.ExitThreshold <= 0, "exit threshold must not be positive, got %v", c.ExitThreshold)
	check(c.MaxEntities > 0, "max entities must be positive, got %d", c.MaxEntities)
	check(c.PlacementAttempts > 0, "placement attempts must be positive, got %d", c.PlacementAttempts)
	check(c.CarsPerLevel > 0, "cars per level must be positive, got %d", c.CarsPerLevel)
	check(c.MinSpawnInterval > 0, "min spawn interval must be positive, got %v", c.MinSpawnInterval)
	check(c.InitialSpawnInterval >= c.MinSpawnInterval, "initial spawn interval %v below floor %v", c.InitialSpawnInterval, c.MinSpawnInterval)
	check(c.SpawnIntervalStep >= 0, "spawn interval step must not be negative, got %v", c.SpawnIntervalStep)
	check(c.InitialSpeed > 0, "initial speed must be positive, got %v", c.InitialSpeed)
	check(c.SpeedStep >= 0, "speed step must not be negative, got %v", c.SpeedStep)
	check(c.MotionInterval > 0, "motion interval must be positive, got %v", c.MotionInterval)
	check(c.ErrorShake >= 0, "error shake must not be negative, got %v", c.ErrorShake)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// SlotRange returns the exclusive upper bound of the cross-axis slot
func (c Config) SlotRange() float64 {
	return c.FieldHeight - c.CarHeight
}
