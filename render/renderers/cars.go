package renderers

import (
	"strings"

	"github.com/lixenwraith/word-traffic/constants"
	"github.com/lixenwraith/word-traffic/render"
)

// CarsRenderer draws every car with its word; exactly the leading car is highlighted
type CarsRenderer struct{}

// NewCarsRenderer creates a cars renderer
func NewCarsRenderer() *CarsRenderer {
	return &CarsRenderer{}
}

// Render implements SystemRenderer
func (r *CarsRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := ctx.Snapshot
	rowOffset := ctx.CarRows() / 2

	for _, e := range snap.Entities {
		x, y := ctx.FieldToScreen(e.Position, e.Slot)
		y += rowOffset
		if y >= ctx.RoadHeight {
			y = ctx.RoadHeight - 1
		}

		x = buf.SetString(x, y, constants.CarSprite, render.BodyStyle(e.Leading))
		x++

		if !e.Leading {
			buf.SetString(x, y, e.Word, render.WordStyle(false))
			continue
		}

		// Leading word shows the typed prefix in a separate color
		typed := ""
		if snap.InputBuffer != "" && strings.HasPrefix(e.Word, snap.InputBuffer) {
			typed = snap.InputBuffer
		}
		style := render.WordStyle(true)
		x = buf.SetString(x, y, typed, style.Foreground(render.RgbTypedMatch))
		buf.SetString(x, y, e.Word[len(typed):], style)
	}
}
