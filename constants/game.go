package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MotionTickInterval is the car motion update interval (fixed cadence, never rescheduled)
	MotionTickInterval = 50 * time.Millisecond

	// InitialSpawnInterval is the spawn trigger period at level 1
	InitialSpawnInterval = 4000 * time.Millisecond

	// MinSpawnInterval is the floor the spawn interval never drops below
	MinSpawnInterval = 1500 * time.Millisecond

	// SpawnIntervalStep is subtracted from the spawn interval on each level up
	SpawnIntervalStep = 500 * time.Millisecond
)

// Progression Constants
const (
	// CarsPerLevel is the number of destroyed cars between level ups
	CarsPerLevel = 10

	// MaxCarsOnScreen caps simultaneously present cars
	MaxCarsOnScreen = 3

	// InitialCarSpeed is the distance units travelled per motion tick at level 1
	InitialCarSpeed = 2.0

	// CarSpeedStep is added to the car speed on each level up
	CarSpeedStep = 1.0
)

// Play Field Geometry (distance units, independent of terminal cells)
const (
	// FieldWidth is the travel axis length; cars spawn at this position
	FieldWidth = 800.0

	// FieldHeight is the cross axis length
	FieldHeight = 600.0

	// CarHeight is the minimum slot separation between two cars
	CarHeight = 120.0

	// ExitThreshold is the position below which a car has left the road
	ExitThreshold = -150.0

	// PlacementAttempts bounds the slot search before accepting an overlap
	PlacementAttempts = 50
)

// EventQueueSize is the capacity of the game event ring, must be power of 2
const (
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
