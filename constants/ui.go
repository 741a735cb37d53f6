package constants

import "time"

// UI Layout Constants
const (
	// StatusBarHeight is the number of rows reserved below the road
	StatusBarHeight = 1

	// InputLineHeight is the number of rows reserved for the typing line
	InputLineHeight = 1

	// CarSpriteWidth is the number of cells of the car body drawn before the word
	CarSpriteWidth = 4

	// InputPrompt precedes the typed buffer
	InputPrompt = "> "

	// AudioStr is the audio indicator shown at the left of the status bar
	AudioStr = " ♫ "
)

// UI Text
const (
	TitleText    = "WORD TRAFFIC"
	StartHint    = "press Enter to start"
	ControlsHint = "type the highlighted word · Ctrl+R restart · Ctrl+S sound · Esc quit"
	ScoreLabel   = "Score: "
	LevelLabel   = "Level: "
)

// UI Timing Constants
const (
	// ErrorShakeDuration is how long the input line shakes after a mistype
	ErrorShakeDuration = 300 * time.Millisecond

	// ShakeStepDuration is the interval between shake offset flips
	ShakeStepDuration = 50 * time.Millisecond
)

// Sprites
const (
	// CarSprite is drawn facing the exit, its width is CarSpriteWidth
	CarSprite = "<o=]"

	// LaneMark is the dashed divider between car rows
	LaneMark = '-'
)
