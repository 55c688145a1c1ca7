// Package ecs runs tempo actions on [Donburi] entities.
//
// [NewActor] creates an entity carrying a [Transform] and an [Actor]
// component. Templates attached with [Attach] animate the Transform, and a
// [System] steps every actor once per frame. Finished instances are
// published as [ActionDone] events.
//
// Usage:
//
//	sys := ecs.NewSystem()
//	e := ecs.NewActor(world, tempo.Vec3{})
//	ecs.Attach(world, e, tempo.Must(tempo.Goto(tempo.Vec3{X: 100}, 1)))
//
//	// each frame
//	sys.Update(world, dt)
//	ecs.ActionDoneEventType.ProcessEvents(world)
//
// Removing an entity discards its runner along with the actions still
// attached to it.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
