package rowan

import (
	"fmt"
	"os"
)

// globalDebug enables extra validation in tree mutation paths.
var globalDebug bool

// SetDebug toggles debug validation: using a disposed node in a tree
// operation panics with a descriptive message, and suspicious tree shapes are
// reported on stderr. Off by default. Mutation preconditions are enforced
// through returned errors regardless of this flag.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugCheckDisposed panics when a disposed node is used in a tree operation.
// Only called when debug mode is on.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("rowan debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[rowan] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node accumulates an implausible
// number of children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[rowan] warning: node %q has %d children (> %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
