package rowan

import "github.com/pkg/errors"

// ErrInvariantViolation reports a tree mutation that would break the
// parent/child invariants: attaching a child that already has a parent,
// attaching a node under its own descendant, or removing a node that is not a
// child of the receiver. The operation leaves both trees unmodified.
var ErrInvariantViolation = errors.New("rowan: invariant violation")

// ErrNotFound reports a node lookup for an entity that has no node component.
var ErrNotFound = errors.New("rowan: node not found")
