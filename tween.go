package rowan

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates a node's local transform over time. Create one via
// TweenPosition and call Update(dt) each frame. Values are applied through
// SetTransform, so descendants see the movement on their next read. If the
// target node is disposed, the group stops immediately.
//
// There is no global animation manager — users call Update themselves.
type TweenGroup struct {
	tweens [3]*gween.Tween
	target *Node
	Done   bool
}

// TweenPosition creates a TweenGroup that animates node's local position to
// the given point over the specified duration using the easing function.
func TweenPosition(node *Node, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := node.Transform().Position
	g := &TweenGroup{target: node}
	for i := range g.tweens {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
	}
	return g
}

// Update advances the tween by dt seconds and writes the interpolated
// position to the target's local transform. If the target node has been
// disposed, Done is set to true and no write occurs.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target == nil || g.target.IsDisposed() {
		g.Done = true
		return
	}

	var pos Vec3
	allDone := true
	for i, tween := range g.tweens {
		val, finished := tween.Update(dt)
		pos[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.target.SetTransform(Transform{Position: pos})
	g.Done = allDone
}
