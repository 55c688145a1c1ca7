// Package ecs provides a Donburi adapter for tempo runners.
package ecs

import (
	"fmt"

	"github.com/phanxgames/tempo"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// TransformData is the spatial state tempo actions read and write.
type TransformData struct {
	Position tempo.Vec3
	Angle    float64
	Scale    float64
}

// ActorData owns the runner driving an entity's actions.
type ActorData struct {
	Runner *tempo.Runner
}

// ActionDone is published when an entity's action instance is reaped.
type ActionDone struct {
	Entity donburi.Entity
	Handle *tempo.Handle
}

var (
	Transform = donburi.NewComponentType[TransformData]()
	Actor     = donburi.NewComponentType[ActorData]()
)

// ActionDoneEventType is the Donburi event type for finished actions.
// Subscribe to it and call ProcessEvents once per frame.
var ActionDoneEventType = events.NewEventType[ActionDone]()

// entryTarget adapts an entity's Transform to tempo.Animatable. It reports
// itself disposed once the entity is removed from the world, so the runner
// drops whatever is still attached.
type entryTarget struct {
	world  donburi.World
	entity donburi.Entity
	orphan TransformData
}

// transform falls back to a detached copy when a callback removes the
// entity partway through a step.
func (t *entryTarget) transform() *TransformData {
	if !t.world.Valid(t.entity) {
		return &t.orphan
	}
	return Transform.Get(t.world.Entry(t.entity))
}

func (t *entryTarget) Position() tempo.Vec3     { return t.transform().Position }
func (t *entryTarget) SetPosition(p tempo.Vec3) { t.transform().Position = p }
func (t *entryTarget) Angle() float64           { return t.transform().Angle }
func (t *entryTarget) SetAngle(deg float64)     { t.transform().Angle = deg }
func (t *entryTarget) Scale() float64           { return t.transform().Scale }
func (t *entryTarget) SetScale(s float64)       { t.transform().Scale = s }

func (t *entryTarget) IsDisposed() bool {
	return !t.world.Valid(t.entity)
}

// NewActor creates an entity with Transform and Actor components placed at
// position. Reaped actions are published to ActionDoneEventType.
func NewActor(world donburi.World, position tempo.Vec3) donburi.Entity {
	return NewActorWithConfig(world, position, tempo.RunnerConfig{})
}

// NewActorWithConfig is NewActor with explicit runner settings. A non-nil
// cfg.OnReap still runs, after the event is published.
func NewActorWithConfig(world donburi.World, position tempo.Vec3, cfg tempo.RunnerConfig) donburi.Entity {
	entity := world.Create(Transform, Actor)
	entry := world.Entry(entity)
	Transform.SetValue(entry, TransformData{Position: position, Scale: 1})

	onReap := cfg.OnReap
	cfg.OnReap = func(h *tempo.Handle) {
		ActionDoneEventType.Publish(world, ActionDone{Entity: entity, Handle: h})
		if onReap != nil {
			onReap(h)
		}
	}
	r := tempo.NewRunnerWithConfig(&entryTarget{world: world, entity: entity}, cfg)
	Actor.SetValue(entry, ActorData{Runner: r})
	return entity
}

// Attach instantiates tpl on the entity's runner.
func Attach(world donburi.World, entity donburi.Entity, tpl tempo.Template) (*tempo.Handle, error) {
	if !world.Valid(entity) {
		return nil, fmt.Errorf("tempo/ecs: attach to entity %v: %w", entity, tempo.ErrNotFound)
	}
	entry := world.Entry(entity)
	if !entry.HasComponent(Actor) {
		return nil, fmt.Errorf("tempo/ecs: entity %v has no Actor component: %w", entity, tempo.ErrNotFound)
	}
	return Actor.Get(entry).Runner.Do(tpl)
}

// System steps every actor in a world.
type System struct {
	query   *donburi.Query
	runners []*tempo.Runner
	ids     []donburi.Entity
}

// NewSystem creates a System matching entities with an Actor component.
func NewSystem() *System {
	return &System{query: donburi.NewQuery(filter.Contains(Transform, Actor))}
}

// Update advances every actor by dt. Runners are collected before any of
// them is stepped, so callbacks may create or remove entities. The first
// failing runner aborts the frame.
func (s *System) Update(world donburi.World, dt float64) error {
	s.query.Each(world, func(entry *donburi.Entry) {
		s.runners = append(s.runners, Actor.Get(entry).Runner)
		s.ids = append(s.ids, entry.Entity())
	})
	defer func() {
		clear(s.runners)
		s.runners = s.runners[:0]
		s.ids = s.ids[:0]
	}()

	for i, r := range s.runners {
		if err := r.Step(dt); err != nil {
			return fmt.Errorf("tempo/ecs: entity %v: %w", s.ids[i], err)
		}
	}
	return nil
}
