package renderers

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/word-traffic/constants"
	"github.com/lixenwraith/word-traffic/render"
	"github.com/mattn/go-runewidth"
)

// OverlayRenderer shows the title box while no game is running
type OverlayRenderer struct {
	lastScore int
}

// NewOverlayRenderer creates an overlay renderer
func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

// Render implements SystemRenderer
func (o *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := ctx.Snapshot
	if snap.Running {
		o.lastScore = snap.Score
		return
	}

	lines := []string{constants.TitleText, "", constants.StartHint, constants.ControlsHint}
	if o.lastScore > 0 {
		lines = append(lines, "", "Last score: "+strconv.Itoa(o.lastScore))
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, runewidth.StringWidth(l))
	}
	boxW += 4
	boxH := len(lines) + 2

	left := max((ctx.Width-boxW)/2, 0)
	top := max((ctx.RoadHeight-boxH)/2, 0)

	bg := tcell.StyleDefault.Background(render.RgbOverlayBg)
	buf.Fill(left, top, boxW, boxH, ' ', bg)

	for i, l := range lines {
		style := bg.Foreground(render.RgbOverlayText)
		if i == 0 {
			style = bg.Foreground(render.RgbOverlayTitle).Bold(true)
		}
		x := left + (boxW-runewidth.StringWidth(l))/2
		buf.SetString(x, top+1+i, l, style)
	}
}
