package emblem

import (
	"github.com/phanxgames/emblem/direction"
	"github.com/phanxgames/emblem/input"
	"github.com/tanema/gween/ease"
)

// cursorSlideDuration is how long the cursor takes to slide one step, in
// seconds.
const cursorSlideDuration = 0.1

var moveActions = [...]string{ActionMoveLeft, ActionMoveRight, ActionMoveUp, ActionMoveDown}

// Cursor is the map selection cursor. Col and Row are the tile it occupies;
// X and Y are its drawn position in pixels, which trails Col and Row while
// the cursor slides.
//
// The cursor steps once each time a move action goes from not pressed to
// pressed. A step pressed while the cursor is sliding is held and taken when
// the slide ends; only the most recent one is kept.
type Cursor struct {
	Col, Row int
	X, Y     float64

	cols, rows int
	tileSize   float64
	slide      *tweenGroup

	held    [len(moveActions)]bool
	pending direction.Ordinal
	queued  bool
}

// NewCursor creates a cursor at the top-left tile of a cols×rows grid.
func NewCursor(cols, rows int, tileSize float64) *Cursor {
	return &Cursor{cols: cols, rows: rows, tileSize: tileSize}
}

// Moving reports whether the cursor is sliding between tiles.
func (c *Cursor) Moving() bool {
	return c.slide != nil
}

// Update reads the move actions, advances an in-progress slide by dt seconds
// and starts the next step once the cursor is at rest. Horizontal and
// vertical presses in the same tick combine into a diagonal step.
func (c *Cursor) Update(m *input.Map, dt float32) {
	if dir, ok := c.heading(m); ok {
		c.pending, c.queued = dir, true
	}

	if c.slide != nil {
		c.slide.Update(dt)
		if !c.slide.Done {
			return
		}
		c.slide = nil
	}
	if !c.queued {
		return
	}
	c.queued = false

	dir, ok := c.fit(c.pending)
	if !ok {
		return
	}
	dx, dy := dir.Step()
	c.Col += dx
	c.Row += dy
	c.slide = tweenPosition(&c.X, &c.Y, float64(c.Col)*c.tileSize, float64(c.Row)*c.tileSize,
		cursorSlideDuration, ease.OutQuad)
}

// heading returns the direction of the move actions pressed since the last
// Update. Left wins over Right and Up over Down.
func (c *Cursor) heading(m *input.Map) (direction.Ordinal, bool) {
	var fresh [len(moveActions)]bool
	for i, a := range moveActions {
		pressed := m.Get(a).Pressed()
		fresh[i] = pressed && !c.held[i]
		c.held[i] = pressed
	}
	left, right, up, down := fresh[0], fresh[1], fresh[2], fresh[3]

	var (
		dir direction.Ordinal
		ok  bool
	)
	switch {
	case left:
		dir, ok = direction.FromCardinal(direction.West), true
	case right:
		dir, ok = direction.FromCardinal(direction.East), true
	}

	var vertical direction.Cardinal
	switch {
	case up:
		vertical = direction.North
	case down:
		vertical = direction.South
	default:
		return dir, ok
	}
	if !ok {
		return direction.FromCardinal(vertical), true
	}
	return dir.Introduce(direction.FromCardinal(vertical)), true
}

// fit drops each component of dir that would leave the grid. It reports
// false when nothing is left.
func (c *Cursor) fit(dir direction.Ordinal) (direction.Ordinal, bool) {
	dx, dy := dir.Step()
	ok := true
	if col := c.Col + dx; col < 0 || col >= c.cols {
		h := direction.East
		if dx < 0 {
			h = direction.West
		}
		if dir, ok = dir.Reduce(direction.FromCardinal(h)); !ok {
			return dir, false
		}
	}
	if row := c.Row + dy; row < 0 || row >= c.rows {
		v := direction.South
		if dy < 0 {
			v = direction.North
		}
		dir, ok = dir.Reduce(direction.FromCardinal(v))
	}
	return dir, ok
}
