package render

import (
	"github.com/gdamore/tcell/v2"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbRoad       = tcell.NewRGBColor(36, 40, 59)    // Asphalt
	RgbLaneMark   = tcell.NewRGBColor(86, 95, 137)   // Dashed lane divider
	RgbExitZone   = tcell.NewRGBColor(60, 30, 30)    // Leftmost columns past the origin
	RgbCarBody    = tcell.NewRGBColor(122, 162, 247) // Idle car
	RgbCarWord    = tcell.NewRGBColor(192, 202, 245) // Idle word text
	RgbLeadBody   = tcell.NewRGBColor(255, 158, 100) // Leading car
	RgbLeadWord   = tcell.NewRGBColor(255, 255, 255) // Leading word text
	RgbLeadBg     = tcell.NewRGBColor(80, 50, 20)    // Leading word highlight
	RgbTypedMatch = tcell.NewRGBColor(158, 206, 106) // Already-typed prefix on the leading word

	RgbInputText  = tcell.NewRGBColor(255, 255, 255)
	RgbInputError = tcell.NewRGBColor(255, 0, 0)
	RgbPrompt     = tcell.NewRGBColor(180, 180, 180)

	RgbStatusText   = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbScoreBg      = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbLevelBg      = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbSpeedBg      = tcell.NewRGBColor(255, 192, 203) // Pink
	RgbAudioMuted   = tcell.NewRGBColor(255, 0, 0)     // Bright red when muted
	RgbAudioUnmuted = tcell.NewRGBColor(0, 255, 0)     // Bright green when unmuted

	RgbOverlayBg    = tcell.NewRGBColor(20, 20, 30)
	RgbOverlayTitle = tcell.NewRGBColor(255, 200, 0)
	RgbOverlayText  = tcell.NewRGBColor(200, 200, 200)
)

// DefaultStyle is the base style every frame is cleared to
var DefaultStyle = tcell.StyleDefault.Background(RgbBackground)

// WordStyle returns the style for a car word
func WordStyle(leading bool) tcell.Style {
	if leading {
		return tcell.StyleDefault.Foreground(RgbLeadWord).Background(RgbLeadBg).Bold(true)
	}
	return tcell.StyleDefault.Foreground(RgbCarWord).Background(RgbRoad)
}

// BodyStyle returns the style for a car sprite
func BodyStyle(leading bool) tcell.Style {
	if leading {
		return tcell.StyleDefault.Foreground(RgbLeadBody).Background(RgbRoad)
	}
	return tcell.StyleDefault.Foreground(RgbCarBody).Background(RgbRoad)
}
