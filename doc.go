// Package emblem is the runtime of a tile-based tactics engine built on
// [Ebitengine].
//
// [Engine] implements [ebiten.Game]. Each tick it polls the input backend,
// acknowledges the [input.Map], moves the map [Cursor] and forwards action
// state changes into a [Donburi] world through [ecs.Bridge]:
//
//	engine := emblem.NewEngine(emblem.EngineConfig{
//		Bindings: emblem.KeyboardBindings(),
//	})
//	if err := emblem.Run(engine, emblem.RunConfig{Title: "My Game"}); err != nil {
//		log.Fatal(err)
//	}
//
// The cursor steps one tile each time a "Ui:Move *" action goes from not
// pressed to pressed, and slides between tiles with a [gween] tween. A step
// pressed during a slide is taken when the slide ends.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package emblem
