package main

import (
	"log"

	"github.com/hollyoak/sprig/engine/colors"
	"github.com/hollyoak/sprig/engine/core"
	glbackend "github.com/hollyoak/sprig/engine/gfx/gl"
	"github.com/hollyoak/sprig/engine/platform"
)

type App struct {
	quad *LayerQuad
}

func (a *App) OnStart(e *core.Engine) {
	a.quad = &LayerQuad{}
	e.Layers.Push(e, a.quad)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {}

func (a *App) OnRender(e *core.Engine, alpha float64) {}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if k, ok := ev.(core.EventKey); ok && k.Key == core.KeyEscape && k.Down {
		e.Window.RequestClose()
	}
}

func (a *App) OnShutdown(e *core.Engine) {}

func main() {
	cfg := core.Config{
		Title:      "Quad",
		Width:      640,
		Height:     480,
		VSync:      true,
		ClearColor: colors.DarkGray,
		Shader:     "basic.shader",
	}
	app := &App{}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(app, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
