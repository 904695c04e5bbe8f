// Package rowan is a hierarchical spatial-transform scene graph for
// entity-component systems.
//
// Rowan maintains a tree of [Node] values, each carrying a local
// [Transform]. A node's global transform is the composition of its
// ancestors' transforms with its own, computed lazily and cached on the
// parent side so that structural edits and local-transform writes only
// invalidate the subtree they affect.
//
// # Nodes
//
// Create nodes with [NewNode] and link them with [Node.AddChild] and
// [Node.RemoveChild]. Both enforce the tree invariants and return
// [ErrInvariantViolation] instead of mutating on a bad call:
//
//	ship := rowan.NewNode("ship")
//	captain := rowan.NewNode("captain")
//	if err := ship.AddChild(captain); err != nil {
//		// captain already had a parent
//	}
//
//	ship.SetTransform(rowan.Transform{Position: rowan.Vec3{42, 42, 42}})
//	captain.GlobalTransform() // Position (42, 42, 42)
//
// A node with no parent is a root; its global transform equals its local
// transform.
//
// # Entity binding
//
// Node lifetimes are driven by an external entity-component store, not by
// direct ownership calls. The [Store] interface is the minimal contract
// rowan needs from that collaborator; [CreateNode] and [LookupNode] are the
// convenience entry points. A Donburi-backed implementation lives in
// rowan/ecs:
//
//	world := donburi.NewWorld()
//	store := ecs.NewDonburiStore(world)
//	node := rowan.CreateNode(store, rowan.EntityID(e), "ship")
//
// When the store destroys an entity's node component, the node is torn down
// with [Node.Dispose]: it unlinks from its parent and its children become
// roots, keeping their local transforms.
//
// # Tweens
//
// [TweenPosition] animates a node's local position with [gween] easing,
// applying each step through [Node.SetTransform] so descendants follow
// immediately.
//
// Rowan is single-threaded by design. Embedders that share a tree across
// goroutines must serialize all access themselves; invalidation cascades
// across node boundaries, so per-node locking is not sufficient.
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package rowan
