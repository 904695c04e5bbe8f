package ecs

import (
	"github.com/phanxgames/rowan"
	"github.com/pkg/errors"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// NodeData wraps a rowan node for storage as a donburi component.
type NodeData struct {
	Node *rowan.Node
}

// NodeComponent is the donburi component type holding an entity's scene node.
// Query it from ECS systems to reach the transform hierarchy.
var NodeComponent = donburi.NewComponentType[NodeData]()

// AttachEvent is published to AttachEventType whenever a node component is
// attached or replaced.
type AttachEvent struct {
	Entity rowan.EntityID
	Node   *rowan.Node
}

// AttachEventType is the donburi event type for node attachments. Events are
// queued — call ProcessEvents to deliver them. The synchronous binding
// contract is carried by the store's hook table, not by these events.
var AttachEventType = events.NewEventType[AttachEvent]()

type attachHook struct {
	id int
	fn rowan.AttachFunc
}

type donburiStore struct {
	world donburi.World
	// entities maps 32-bit entity ids back to full donburi handles. A
	// donburi.Entity packs version bits alongside the id, so the handle
	// cannot be reconstructed from a rowan.EntityID alone.
	entities   map[rowan.EntityID]donburi.Entity
	nodes      map[rowan.EntityID]*rowan.Node
	hooks      []attachHook
	nextHookID int
}

// NewDonburiStore creates a rowan.Store backed by a Donburi world. The
// binding hook is registered first, so every later observer sees a node
// already bound to its entity, and entity removal disposes the entity's node
// before the id can be reused.
//
// Create the store before creating entities: it tracks entity handles through
// the world's OnCreate callback. Pass ids as rowan.EntityID(e.Id()).
func NewDonburiStore(world donburi.World) rowan.Store {
	s := &donburiStore{
		world:    world,
		entities: make(map[rowan.EntityID]donburi.Entity),
		nodes:    make(map[rowan.EntityID]*rowan.Node),
	}
	s.OnAttach(func(_ rowan.Store, entity rowan.EntityID, node *rowan.Node) {
		rowan.BindNode(node, entity)
	})
	world.OnCreate(func(_ donburi.World, e donburi.Entity) {
		s.entities[rowan.EntityID(e.Id())] = e
	})
	world.OnRemove(func(_ donburi.World, e donburi.Entity) {
		id := rowan.EntityID(e.Id())
		delete(s.entities, id)
		if node, ok := s.nodes[id]; ok {
			delete(s.nodes, id)
			node.Dispose()
		}
	})
	return s
}

func (s *donburiStore) AttachNode(entity rowan.EntityID, node *rowan.Node) {
	if prev, ok := s.nodes[entity]; ok && prev != node {
		// The slot owns its node exclusively; a replaced node is torn down.
		prev.Dispose()
	}
	if e, ok := s.entities[entity]; ok && s.world.Valid(e) {
		entry := s.world.Entry(e)
		if !entry.HasComponent(NodeComponent) {
			entry.AddComponent(NodeComponent)
		}
		NodeComponent.SetValue(entry, NodeData{Node: node})
	}
	s.nodes[entity] = node

	// Snapshot the hook table: a hook may cancel itself or others while
	// dispatch is in flight.
	hooks := make([]attachHook, len(s.hooks))
	copy(hooks, s.hooks)
	for _, h := range hooks {
		h.fn(s, entity, node)
	}
	AttachEventType.Publish(s.world, AttachEvent{Entity: entity, Node: node})
}

func (s *donburiStore) NodeFor(entity rowan.EntityID) (*rowan.Node, error) {
	node, ok := s.nodes[entity]
	if !ok {
		return nil, errors.Wrapf(rowan.ErrNotFound, "entity %d", entity)
	}
	return node, nil
}

func (s *donburiStore) DetachNode(entity rowan.EntityID) error {
	node, ok := s.nodes[entity]
	if !ok {
		return errors.Wrapf(rowan.ErrNotFound, "entity %d", entity)
	}
	delete(s.nodes, entity)
	if e, ok := s.entities[entity]; ok && s.world.Valid(e) {
		entry := s.world.Entry(e)
		if entry.HasComponent(NodeComponent) {
			entry.RemoveComponent(NodeComponent)
		}
	}
	node.Dispose()
	return nil
}

func (s *donburiStore) OnAttach(fn rowan.AttachFunc) (cancel func()) {
	id := s.nextHookID
	s.nextHookID++
	s.hooks = append(s.hooks, attachHook{id: id, fn: fn})
	return func() {
		for i, h := range s.hooks {
			if h.id == id {
				s.hooks = append(s.hooks[:i], s.hooks[i+1:]...)
				return
			}
		}
	}
}
