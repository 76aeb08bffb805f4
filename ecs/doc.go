// Package ecs bridges input action states into a [Donburi] world.
//
// A [Bridge] watches a set of actions on an [input.Map] and publishes an
// [ActionEvent] on [ActionEventType] each time one of them changes state.
// Systems that act once per press should test [ActionEvent.JustPressed]:
// it fires once per press even though a press can stay New for two ticks,
// or skip New entirely when it follows an unsettled release.
//
// Usage:
//
//	bridge := ecs.NewBridge(world, inputMap)
//	ecs.ActionEventType.Subscribe(world, onAction)
//
//	// each tick, after input.Tick:
//	bridge.Update()
//	ecs.ActionEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
