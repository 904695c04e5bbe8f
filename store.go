package rowan

// AttachFunc observes a node component being attached or replaced for an
// entity. Hooks run synchronously inside AttachNode, in registration order.
type AttachFunc func(store Store, entity EntityID, node *Node)

// Store is the minimal contract rowan needs from an external entity-component
// store. Implementations must fire attach hooks before AttachNode returns, so
// no other code can observe an unbound node, and must Dispose an entity's
// node component before the entity id becomes reusable.
type Store interface {
	// AttachNode installs node as the scene-node component for entity,
	// replacing (and disposing) any node previously in that slot.
	AttachNode(entity EntityID, node *Node)

	// NodeFor returns the node component for entity. Fails with ErrNotFound
	// if the entity has no node component.
	NodeFor(entity EntityID) (*Node, error)

	// DetachNode removes the node component for entity, disposing the node.
	// Fails with ErrNotFound if the entity has no node component.
	DetachNode(entity EntityID) error

	// OnAttach registers fn to run on every subsequent attach or replace.
	// The returned func cancels the registration. Registration is
	// independent of any node instance and lives as long as the store.
	OnAttach(fn AttachFunc) (cancel func())
}

// BindNode associates node with its owning entity. Stores call this from
// their attach hook, before any other observer runs; it is idempotent and has
// no side effect beyond the field write.
func BindNode(node *Node, entity EntityID) {
	node.entity = entity
}

// CreateNode constructs a new root node and installs it as entity's node
// component. The entity association happens inside AttachNode via the store's
// binding hook, so the returned node is already bound for stores that honor
// the synchronous hook contract.
func CreateNode(store Store, entity EntityID, name string) *Node {
	node := NewNode(name)
	store.AttachNode(entity, node)
	return node
}

// LookupNode fetches the existing node for entity. Fails with ErrNotFound if
// no node component exists.
func LookupNode(store Store, entity EntityID) (*Node, error) {
	return store.NodeFor(entity)
}
