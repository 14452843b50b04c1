package main

import (
	"github.com/hollyoak/sprig/engine/core"
)

// LayerQuad draws the static quad every frame.
type LayerQuad struct{}

func (l *LayerQuad) OnAttach(e *core.Engine) {}
func (l *LayerQuad) OnDetach(e *core.Engine) {}

func (l *LayerQuad) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerQuad) OnRender(e *core.Engine, alpha float64) {
	e.Renderer.DrawQuad()
}

func (l *LayerQuad) OnEvent(e *core.Engine, ev core.Event) bool { return false }
