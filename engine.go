package emblem

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/emblem/config"
	"github.com/phanxgames/emblem/ecs"
	"github.com/phanxgames/emblem/input"

	"github.com/yohamta/donburi"
)

var (
	defaultClearColor = color.RGBA{0x1e, 0x1e, 0x28, 0xff}
	cursorColor       = color.RGBA{0xf0, 0xd0, 0x40, 0xff}
)

// EngineConfig configures NewEngine.
type EngineConfig struct {
	// Bindings define the control scheme. Nil uses KeyboardBindings.
	Bindings []input.Binding
	// Backend delivers raw input. Nil uses an input.EbitenBackend.
	Backend input.Backend
	Logger  *slog.Logger
	ShowFPS bool
	// OnSelect, if set, is called when Select is pressed with the cursor's
	// tile.
	OnSelect func(col, row int)
}

// Engine owns the input map, the cursor and the ECS world, and drives them
// from ebiten's game loop.
type Engine struct {
	input   *input.Map
	backend input.Backend
	cursor  *Cursor
	world   donburi.World
	bridge  *ecs.Bridge
	log     *slog.Logger

	tps        int
	showFPS    bool
	onSelect   func(col, row int)
	ClearColor color.Color
}

// NewEngine creates an engine for cfg.
func NewEngine(cfg EngineConfig) *Engine {
	bindings := cfg.Bindings
	if bindings == nil {
		bindings = KeyboardBindings()
	}
	backend := cfg.Backend
	if backend == nil {
		backend = input.NewEbitenBackend()
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	m := input.NewMap(bindings...)
	m.SetLogger(log)
	world := donburi.NewWorld()

	e := &Engine{
		input:      m,
		backend:    backend,
		cursor:     NewCursor(config.GridCols, config.GridRows, config.TileSize),
		world:      world,
		bridge:     ecs.NewBridge(world, m),
		log:        log,
		tps:        config.DefaultTPS,
		showFPS:    cfg.ShowFPS,
		onSelect:   cfg.OnSelect,
		ClearColor: defaultClearColor,
	}
	ecs.ActionEventType.Subscribe(world, e.onAction)
	return e
}

// Input returns the engine's input map.
func (e *Engine) Input() *input.Map { return e.input }

// Backend returns the input backend.
func (e *Engine) Backend() input.Backend { return e.backend }

// Cursor returns the map cursor.
func (e *Engine) Cursor() *Cursor { return e.cursor }

// World returns the ECS world that receives action events.
func (e *Engine) World() donburi.World { return e.world }

// Update implements ebiten.Game.
func (e *Engine) Update() error {
	input.Tick(e.backend, e.input)
	e.cursor.Update(e.input, 1/float32(e.tps))
	e.bridge.Update()
	ecs.ActionEventType.ProcessEvents(e.world)
	return nil
}

func (e *Engine) onAction(_ donburi.World, ev ecs.ActionEvent) {
	e.log.Debug("action", "action", ev.Action, "state", ev.State.String())
	if !ev.JustPressed() {
		return
	}
	switch ev.Action {
	case ActionSelect:
		e.log.Info("cursor select", "col", e.cursor.Col, "row", e.cursor.Row)
		if e.onSelect != nil {
			e.onSelect(e.cursor.Col, e.cursor.Row)
		}
	case ActionBack:
		e.log.Info("cursor back", "col", e.cursor.Col, "row", e.cursor.Row)
	}
}

// Draw implements ebiten.Game.
func (e *Engine) Draw(screen *ebiten.Image) {
	screen.Fill(e.ClearColor)
	ts := float32(config.TileSize)
	vector.StrokeRect(screen, float32(e.cursor.X)+1, float32(e.cursor.Y)+1, ts-2, ts-2, 1, cursorColor, false)
	if e.showFPS {
		drawFPS(screen)
	}
}

// Layout implements ebiten.Game. The logical screen is fixed; ebiten scales
// it to the window.
func (e *Engine) Layout(_, _ int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
