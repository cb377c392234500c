// Package blaze is a 2D game-engine core for [Ebitengine].
//
// Blaze supplies the parts of a game that are easy to get subtly wrong:
// a fixed-timestep frame scheduler, broad-phase collision detection with
// trigger enter/stay/exit tracking, a matrix camera with follow, bounds,
// and shake, and a minimal entity/component/system registry. Rendering is
// left to the host — blaze hands you a camera transform and per-frame
// callbacks and stays out of your draw code.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and
// drives the engine loop for you:
//
//	world := blaze.NewWorld(blaze.WorldConfig{TargetFPS: 60})
//	// ... add entities, systems, colliders ...
//	blaze.Run(world, blaze.RunConfig{
//		Title: "My Game", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Loop.Tick] with the current host time each Update.
//
// # Scheduling
//
// The [Loop] separates a fixed simulation cadence from the variable host
// frame rate. Fixed-update callbacks always receive a constant delta of
// 1/targetFPS; leftover time is carried in an accumulator that is capped
// so a stall can never queue an unbounded number of catch-up steps. The
// variable frame callback runs once per host tick after the fixed steps
// drain, and drives cameras and game logic.
//
// # Collision
//
// A [Space] holds [Collider] values (axis-aligned boxes or circles) and
// runs an all-pairs pass each fixed step. Layer/mask bitmasks gate pairs
// symmetrically before any geometry runs. Solid pairs fire OnCollision
// every overlapping frame with the minimum translation vector; trigger
// pairs fire OnTriggerEnter once on first contact, OnTriggerStay while
// contact persists, and OnTriggerExit once on separation.
//
// # Key features
//
// Blaze includes a camera with follow/scroll-to/zoom/shake (scrolling via
// [gween] tweens), an explicit [World] context so multiple engine
// instances never share state, Euler velocity integration, a debug
// overlay for colliders and FPS, and ECS event integration (via the
// [Donburi] adapter in blaze/ecs).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package blaze
