package renderers

import (
	"github.com/lixenwraith/word-traffic/render"
)

// RegisterAll installs the standard layers in draw order
func RegisterAll(o *render.RenderOrchestrator) {
	o.Register(NewRoadRenderer(), render.PriorityRoad)
	o.Register(NewCarsRenderer(), render.PriorityEntities)
	o.Register(NewInputLineRenderer(), render.PriorityUI)
	o.Register(NewStatusBarRenderer(), render.PriorityUI)
	o.Register(NewOverlayRenderer(), render.PriorityOverlay)
}
