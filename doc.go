// Package tempo is a cooperative timed-action scheduler for 2D games built on
// [Ebitengine] or any other frame loop.
//
// Actions move, rotate, scale and delay an object frame by frame, call
// functions at the right moment, and compose into sequences, parallel
// launches and loops. Nothing runs on its own: the owner of the object calls
// [Runner.Step] once per frame.
//
// # Quick start
//
// Build templates, attach them to a runner, step it from your update loop:
//
//	hero := tempo.NewNode("hero")
//	runner := tempo.NewRunner(hero)
//
//	walk := tempo.Must(tempo.Move(tempo.Vec3{X: 120}, 2))
//	wave := tempo.Must(tempo.CallFunc(func() error { fmt.Println("hi"); return nil }))
//	runner.Do(tempo.Must(tempo.Sequence(walk, wave)))
//
//	func (g *Game) Update() error { return g.runner.Step(1.0 / 60) }
//
// For many objects use a [Director], whose [Director.Update] derives dt from
// ebiten.TPS so it can be called straight from ebiten.Game.Update.
//
// # Templates and instances
//
// Constructors such as [Goto], [Rotate] and [Sequence] return a [Template]:
// an immutable description that owns no target. [Runner.Do] clones it into
// a fresh [Action] bound to that runner, starts it and appends it to the
// active list. One template can therefore drive any number of objects.
//
// Constructors validate their parameters and return an error wrapping
// [ErrConfiguration]; use [Must] for literal parameters.
//
// # Targets
//
// Leaf actions read and write their target only through [Animatable]
// (position, angle in degrees, uniform scale). [Node] is a ready-made
// implementation with a dirty flag; any game type can implement the
// interface instead. [Tween] drives any other float field through gween.
//
// # Direction and mode
//
// Interval actions and sequences take [WithDirection], [WithMode] and
// (interval actions only) [WithEase]. A backward action plays its time
// function in reverse. When a [Sequence] or [RepeatN] restarts a child,
// the child's mode decides what happens: [OneShot] replays the same segment,
// [PingPong] reverses it, [Repeat] continues from where the target is now.
//
// # Stepping
//
// [Runner.Step] advances every action that was active when the call began,
// in attach order, and only then removes the ones that finished. Actions
// attached during the pass (by [Spawn] or a callback) wait for the next
// frame; detached ones are skipped. The [ErrorPolicy] in [RunnerConfig]
// decides whether a failing callback stops the pass ([FailFast], default) or
// is logged and collected ([Isolate]).
//
// # Scripts
//
// [LoadScript] builds a template tree from YAML, resolving callbacks by name.
//
// [Ebitengine]: https://ebitengine.org
package tempo
