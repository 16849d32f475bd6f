package graph

import "testing"

func TestDetectCycleTypeTree(t *testing.T) {
	// A simple star: 0 is root, 1/2/3 point back at 0.
	g := New(true, 0, 4, Random)
	g.AddEdge(1, 0)
	g.AddEdge(2, 0)
	g.AddEdge(3, 0)
	if got := DetectCycleType(g); got != Tree {
		t.Fatalf("DetectCycleType() = %v, want Tree", got)
	}
	if !IsTree(g) {
		t.Fatal("IsTree() = false, want true")
	}
}

func TestDetectCycleTypeDisconnected(t *testing.T) {
	g := New(true, 0, 4, Random)
	g.AddEdge(1, 0)
	// Vertices 2, 3 are never reached from the root.
	if got := DetectCycleType(g); got != Disconnected {
		t.Fatalf("DetectCycleType() = %v, want Disconnected", got)
	}
	if IsTree(g) {
		t.Fatal("IsTree() = true, want false")
	}
}

func TestDetectCycleTypeCycle(t *testing.T) {
	g := New(false, 0, 3, Random)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	if got := DetectCycleType(g); got != Cycle {
		t.Fatalf("DetectCycleType() = %v, want Cycle", got)
	}
	if !HasCycle(g) {
		t.Fatal("HasCycle() = false, want true")
	}
}

func TestBuildFromParentsIsATree(t *testing.T) {
	parents := []int32{-1, 0, 0, 1, 1}
	g := BuildFromParents(parents, 0, true)
	if !IsTree(g) {
		t.Fatal("BuildFromParents produced a non-tree result for a valid parent array")
	}
}
