package rowan

import "fmt"

// Transform is a node's spatial offset. It currently carries only a position;
// rotation and scale are extension points for a later phase and must not be
// assumed absent by Combine callers.
type Transform struct {
	Position Vec3
}

// Identity is the transform that leaves positions unchanged under Combine.
var Identity = Transform{}

// Combine composes a parent and a local transform into a new transform whose
// position is the component-wise sum. The parent is always the left operand:
// composition is associative but callers must not swap the arguments.
func Combine(parent, local Transform) Transform {
	return Transform{Position: parent.Position.Add(local.Position)}
}

// String formats the transform for diagnostics.
func (t Transform) String() string {
	return fmt.Sprintf("Transform(%g, %g, %g)", t.Position.X(), t.Position.Y(), t.Position.Z())
}
