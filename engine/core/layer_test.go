package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hollyoak/sprig/engine/core"
)

type recordLayer struct {
	name     string
	events   *[]string
	attached bool
	handle   bool
}

func (l *recordLayer) OnAttach(e *core.Engine) { l.attached = true }
func (l *recordLayer) OnDetach(e *core.Engine) { l.attached = false }

func (l *recordLayer) OnUpdate(e *core.Engine, dt float64)    {}
func (l *recordLayer) OnRender(e *core.Engine, alpha float64) {}

func (l *recordLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	*l.events = append(*l.events, l.name)
	return l.handle
}

func TestLayerStackPushPop(t *testing.T) {
	eng := &core.Engine{}
	var ls core.LayerStack
	var seen []string

	a := &recordLayer{name: "a", events: &seen}
	b := &recordLayer{name: "b", events: &seen}
	ls.Push(eng, a)
	ls.Push(eng, b)
	assert.True(t, a.attached)
	assert.Equal(t, 2, ls.Len())

	got, ok := ls.Pop(eng)
	assert.True(t, ok)
	assert.Same(t, b, got)
	assert.False(t, b.attached)
	assert.Equal(t, 1, ls.Len())
}

func TestLayerStackEventOrder(t *testing.T) {
	eng := &core.Engine{}
	var ls core.LayerStack
	var seen []string

	bottom := &recordLayer{name: "bottom", events: &seen}
	top := &recordLayer{name: "top", events: &seen, handle: true}
	ls.Push(eng, bottom)
	ls.Push(eng, top)

	// Events travel top-down and stop at the first handler.
	ls.ForEachReverse(func(l core.Layer) bool {
		return l.OnEvent(eng, core.EventCloseRequested{})
	})
	assert.Equal(t, []string{"top"}, seen)

	seen = nil
	top.handle = false
	ls.ForEachReverse(func(l core.Layer) bool {
		return l.OnEvent(eng, core.EventCloseRequested{})
	})
	assert.Equal(t, []string{"top", "bottom"}, seen)
}

func TestInputTracksState(t *testing.T) {
	in := core.NewInput()
	assert.False(t, in.IsKeyDown(core.KeyEscape))

	in.Handle(core.EventKey{Key: core.KeyEscape, Down: true})
	assert.True(t, in.IsKeyDown(core.KeyEscape))

	in.Handle(core.EventKey{Key: core.KeyEscape, Down: false})
	assert.False(t, in.IsKeyDown(core.KeyEscape))

	in.Handle(core.EventMouseMove{X: 12, Y: 34})
	x, y := in.Mouse()
	assert.Equal(t, 12.0, x)
	assert.Equal(t, 34.0, y)
}
