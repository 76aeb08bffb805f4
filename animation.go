package emblem

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// tweenGroup animates up to 2 float64 fields simultaneously. Call Update(dt)
// each tick; values are written back to the fields as they advance.
type tweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *tweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// tweenPosition creates a tweenGroup that moves *x and *y to the given
// target over duration seconds using the easing function.
func tweenPosition(x, y *float64, toX, toY float64, duration float32, fn ease.TweenFunc) *tweenGroup {
	g := &tweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(*x), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(*y), float32(toY), duration, fn)
	g.fields[0] = x
	g.fields[1] = y
	return g
}
