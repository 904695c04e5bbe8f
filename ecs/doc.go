// Package ecs provides entity-component store adapters for rowan.
//
// The primary adapter is [NewDonburiStore], which backs a [rowan.Store] with
// a [Donburi] world. Nodes are stored as real donburi components
// ([NodeComponent]), so ECS systems can query them, and entity removal tears
// the node down before the entity id is reused. Attach notifications are also
// published to [AttachEventType] as typed donburi events for queued
// consumption by systems.
//
// Create the store before creating entities — it tracks entity handles via
// the world's OnCreate callback. Entity ids cross the rowan boundary as
// rowan.EntityID(e.Id()).
//
// Usage:
//
//	world := donburi.NewWorld()
//	store := ecs.NewDonburiStore(world)
//
//	e := world.Create(ecs.NodeComponent)
//	node := rowan.CreateNode(store, rowan.EntityID(e.Id()), "ship")
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
