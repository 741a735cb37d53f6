package render

import (
	"math"
	"time"

	"github.com/lixenwraith/word-traffic/constants"
	"github.com/lixenwraith/word-traffic/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Now      time.Time
	Snapshot *engine.Snapshot
	Muted    bool

	// Screen dimensions (terminal size)
	Width  int
	Height int

	// Road area, the rows above the input line and status bar
	RoadWidth  int
	RoadHeight int

	// Row of the input line and status bar
	InputY  int
	StatusY int
}

// NewRenderContext lays out a frame of width x height cells for snap
func NewRenderContext(snap *engine.Snapshot, width, height int, now time.Time, muted bool) RenderContext {
	roadHeight := height - constants.InputLineHeight - constants.StatusBarHeight
	if roadHeight < 0 {
		roadHeight = 0
	}
	return RenderContext{
		Now:        now,
		Snapshot:   snap,
		Muted:      muted,
		Width:      width,
		Height:     height,
		RoadWidth:  width,
		RoadHeight: roadHeight,
		InputY:     roadHeight,
		StatusY:    roadHeight + constants.InputLineHeight,
	}
}

// FieldToScreen maps a field position and slot to a road cell
// Positions past the origin map to negative columns and are clipped by the buffer
func (rc RenderContext) FieldToScreen(position, slot float64) (int, int) {
	f := rc.Snapshot.Field
	if f.Width <= 0 || f.Height <= 0 {
		return 0, 0
	}
	x := int(math.Floor(position * float64(rc.RoadWidth) / f.Width))
	y := int(math.Floor(slot * float64(rc.RoadHeight) / f.Height))
	return x, y
}

// CarRows returns the number of road rows one car occupies, at least one
func (rc RenderContext) CarRows() int {
	f := rc.Snapshot.Field
	if f.Height <= 0 {
		return 1
	}
	rows := int(f.CarHeight * float64(rc.RoadHeight) / f.Height)
	return max(rows, 1)
}
