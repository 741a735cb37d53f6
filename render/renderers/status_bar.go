package renderers

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/word-traffic/constants"
	"github.com/lixenwraith/word-traffic/render"
)

// StatusBarRenderer draws the status bar at the bottom
type StatusBarRenderer struct{}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := ctx.Snapshot
	defaultStyle := tcell.StyleDefault.Background(render.RgbBackground)
	y := ctx.StatusY
	buf.Fill(0, y, ctx.Width, constants.StatusBarHeight, ' ', defaultStyle)

	x := 0

	// Audio mute indicator - always visible
	audioBg := render.RgbAudioUnmuted
	if ctx.Muted {
		audioBg = render.RgbAudioMuted
	}
	x = buf.SetString(x, y, constants.AudioStr, defaultStyle.Foreground(tcell.ColorBlack).Background(audioBg))
	x++

	// Counters are shown verbatim
	scoreText := " " + constants.ScoreLabel + strconv.Itoa(snap.Score) + " "
	x = buf.SetString(x, y, scoreText, defaultStyle.Foreground(render.RgbStatusText).Background(render.RgbScoreBg))
	x++

	levelText := " " + constants.LevelLabel + strconv.Itoa(snap.Level) + " "
	x = buf.SetString(x, y, levelText, defaultStyle.Foreground(render.RgbStatusText).Background(render.RgbLevelBg))
	x++

	speedText := fmt.Sprintf(" Speed: %g | Spawn: %.1fs ", snap.Speed, snap.SpawnInterval.Seconds())
	buf.SetString(x, y, speedText, defaultStyle.Foreground(render.RgbStatusText).Background(render.RgbSpeedBg))
}
