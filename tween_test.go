package rowan

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

// Tween values run through float32, so compare loosely.
const tweenEpsilon = 1e-4

func assertVecNear(t *testing.T, name string, got, want Vec3) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > tweenEpsilon {
			t.Errorf("%s[%d] = %v, want %v", name, i, got[i], want[i])
		}
	}
}

func TestTweenPositionReachesTarget(t *testing.T) {
	n := NewNode("n")
	g := TweenPosition(n, Vec3{10, 20, 30}, 1, ease.Linear)

	for i := 0; i < 10; i++ {
		g.Update(0.1)
	}

	if !g.Done {
		t.Error("tween should be done after full duration")
	}
	assertVecNear(t, "final", n.Transform().Position, Vec3{10, 20, 30})
}

func TestTweenPositionMidpoint(t *testing.T) {
	n := NewNode("n")
	g := TweenPosition(n, Vec3{10, 0, 0}, 1, ease.Linear)

	g.Update(0.5)

	if g.Done {
		t.Error("tween should not be done at midpoint")
	}
	assertVecNear(t, "midpoint", n.Transform().Position, Vec3{5, 0, 0})
}

func TestTweenAppliesThroughSetTransform(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	if err := parent.AddChild(child); err != nil {
		t.Fatal(err)
	}
	_ = child.GlobalTransform() // warm cache

	g := TweenPosition(parent, Vec3{8, 0, 0}, 1, ease.Linear)
	g.Update(0.25)

	// Each step must flow through the invalidation protocol so the child's
	// next read reflects it.
	assertVecNear(t, "child global", child.GlobalTransform().Position, Vec3{2, 0, 0})
}

func TestTweenStopsOnDisposedTarget(t *testing.T) {
	n := NewNode("n")
	g := TweenPosition(n, Vec3{10, 0, 0}, 1, ease.Linear)
	g.Update(0.1)

	n.Dispose()
	before := n.Transform().Position
	g.Update(0.5)

	if !g.Done {
		t.Error("tween should stop when target is disposed")
	}
	assertVecNear(t, "no write after dispose", n.Transform().Position, before)
}

func TestTweenUpdateAfterDoneIsNoop(t *testing.T) {
	n := NewNode("n")
	g := TweenPosition(n, Vec3{1, 1, 1}, 0.1, ease.Linear)
	g.Update(1)
	if !g.Done {
		t.Fatal("tween should be done")
	}
	g.Update(1)
	assertVecNear(t, "held", n.Transform().Position, Vec3{1, 1, 1})
}
