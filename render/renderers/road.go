package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/word-traffic/constants"
	"github.com/lixenwraith/word-traffic/render"
)

// RoadRenderer paints the asphalt and dashed lane dividers
type RoadRenderer struct{}

// NewRoadRenderer creates a road renderer
func NewRoadRenderer() *RoadRenderer {
	return &RoadRenderer{}
}

// Render implements SystemRenderer
func (r *RoadRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	road := tcell.StyleDefault.Background(render.RgbRoad)
	buf.Fill(0, 0, ctx.RoadWidth, ctx.RoadHeight, ' ', road)

	lanes := ctx.CarRows()
	mark := road.Foreground(render.RgbLaneMark)
	for y := lanes; y < ctx.RoadHeight; y += lanes {
		for x := 0; x < ctx.RoadWidth; x += 4 {
			buf.Set(x, y, constants.LaneMark, mark)
			buf.Set(x+1, y, constants.LaneMark, mark)
		}
	}
}
