// Package ecs provides ECS adapters for unitrates models.
//
// The primary adapter is [BridgeNumberLine], which republishes a double
// number line's marker additions and removals into a [Donburi] world as
// typed events. Subscribe to [MarkerEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	unbind := ecs.BridgeNumberLine(world, scene.Line)
//	defer unbind()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
