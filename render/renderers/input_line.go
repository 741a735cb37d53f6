package renderers

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/word-traffic/constants"
	"github.com/lixenwraith/word-traffic/render"
)

// InputLineRenderer shows the typed buffer, shaking it red after a mistype
type InputLineRenderer struct{}

// NewInputLineRenderer creates an input line renderer
func NewInputLineRenderer() *InputLineRenderer {
	return &InputLineRenderer{}
}

// Render implements SystemRenderer
func (r *InputLineRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := ctx.Snapshot
	base := tcell.StyleDefault.Background(render.RgbBackground)
	buf.Fill(0, ctx.InputY, ctx.Width, constants.InputLineHeight, ' ', base)

	x := 1
	textStyle := base.Foreground(render.RgbInputText)
	if snap.Shaking(ctx.Now) {
		x += ShakeOffset(snap.ShakeUntil.Sub(ctx.Now))
		textStyle = base.Foreground(render.RgbInputError).Bold(true)
	}

	x = buf.SetString(x, ctx.InputY, constants.InputPrompt, base.Foreground(render.RgbPrompt))
	x = buf.SetString(x, ctx.InputY, snap.InputBuffer, textStyle)
	if snap.Running {
		buf.Set(x, ctx.InputY, '_', textStyle.Blink(true))
	}
}

// ShakeOffset returns the horizontal displacement for the remaining shake time
// Alternates between -1 and +1 every ShakeStepDuration
func ShakeOffset(remaining time.Duration) int {
	if remaining <= 0 {
		return 0
	}
	if (remaining/constants.ShakeStepDuration)%2 == 0 {
		return 1
	}
	return -1
}
