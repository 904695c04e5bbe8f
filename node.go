package rowan

import "github.com/pkg/errors"

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic — rowan is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the scene graph element. A single flat struct holds identity,
// hierarchy links, and the local transform; parent/child references are
// non-owning, the component-store slot of the owning entity holds the node
// exclusively.
type Node struct {
	// Identity
	ID     uint32
	Name   string
	entity EntityID

	// Hierarchy (non-owning observational links)
	parent   *Node
	children []*Node

	// Transform (local)
	local Transform

	// cachedParent memoizes the parent's global transform as of the last
	// read. parentStale marks it for recomputation on the next access; it is
	// set whenever this node's parent link changes or an ancestor's local
	// transform changes, never by this node's own SetTransform.
	cachedParent Transform
	parentStale  bool

	// Internal
	disposed bool
}

// NewNode creates a root node with an identity local transform. The node is
// not bound to an entity until a Store attaches it.
func NewNode(name string) *Node {
	return &Node{
		ID:          nextNodeID(),
		Name:        name,
		parentStale: true,
	}
}

// Entity returns the id of the entity that owns this node, or 0 before the
// store's binding hook has run.
func (n *Node) Entity() EntityID {
	return n.entity
}

// --- Transform access ---

// Transform returns the node's current local transform.
func (n *Node) Transform() Transform {
	return n.local
}

// SetTransform replaces the node's local transform. Every descendant's cached
// parent transform is marked stale; this node's own cache is independent of
// its own local value and stays warm.
func (n *Node) SetTransform(t Transform) {
	n.local = t
	for _, child := range n.children {
		markSubtreeStale(child)
	}
}

// ParentTransform returns the parent's global transform, memoized until the
// parent link or an ancestor's local transform changes. Roots get Identity.
func (n *Node) ParentTransform() Transform {
	if n.parentStale {
		if n.parent != nil {
			n.cachedParent = n.parent.GlobalTransform()
		} else {
			n.cachedParent = Identity
		}
		n.parentStale = false
	}
	return n.cachedParent
}

// GlobalTransform returns the composition of all ancestor transforms with
// this node's local transform. Only the parent side is memoized; the final
// combine runs on every call, so SetTransform never has to invalidate the
// node's own slot.
func (n *Node) GlobalTransform() Transform {
	return Combine(n.ParentTransform(), n.local)
}

// --- Tree manipulation ---

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child list in insertion order. The returned slice MUST
// NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// AddChild attaches child under this node. The child must be a root; detach
// it from its current parent first to reparent. Attaching a nil child, a
// non-orphan, or an ancestor of this node fails with ErrInvariantViolation
// and leaves both trees unchanged.
func (n *Node) AddChild(child *Node) error {
	if child == nil {
		return errors.Wrap(ErrInvariantViolation, "cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if child.parent != nil {
		return errors.Wrapf(ErrInvariantViolation, "node %q already has parent %q", child.Name, child.parent.Name)
	}
	if isAncestor(child, n) {
		return errors.Wrapf(ErrInvariantViolation, "adding %q under %q would create a cycle", child.Name, n.Name)
	}
	child.parent = n
	n.children = append(n.children, child)
	markSubtreeStale(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
	return nil
}

// RemoveChild detaches child from this node, leaving it a root. Fails with
// ErrInvariantViolation if child's parent is not this node.
func (n *Node) RemoveChild(child *Node) error {
	if child == nil || child.parent != n {
		return errors.Wrapf(ErrInvariantViolation, "node is not a child of %q", n.Name)
	}
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	n.removeChildByPtr(child)
	child.parent = nil
	markSubtreeStale(child)
	return nil
}

// Walk calls fn for this node and every descendant, depth first in insertion
// order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.children {
		child.Walk(fn)
	}
}

// --- Disposal ---

// Dispose tears the node down: it is unlinked from its parent and all of its
// children become roots, keeping their local transforms. Invoked by the
// component store when the owning component is removed or its entity is
// destroyed. Calling Dispose twice is a no-op.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	if n.parent != nil {
		n.parent.removeChildByPtr(n)
		n.parent = nil
	}
	for _, child := range n.children {
		child.parent = nil
		markSubtreeStale(child)
	}
	n.children = nil
	n.parentStale = true
	n.disposed = true
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing
// child.parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeStale marks the cached parent transform of node and all its
// descendants for recomputation. The recursion visits exactly the subtree
// whose ancestor-composed transform may have changed.
func markSubtreeStale(node *Node) {
	node.parentStale = true
	for _, child := range node.children {
		markSubtreeStale(child)
	}
}
