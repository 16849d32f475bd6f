package graph

import "testing"

func TestTorus2DEveryVertexHasFourNeighbours(t *testing.T) {
	shape := 4
	g := NewTorus2D(shape)
	if g.NumVertices() != shape*shape {
		t.Fatalf("NumVertices() = %d, want %d", g.NumVertices(), shape*shape)
	}
	for v := 0; v < g.NumVertices(); v++ {
		if got := len(g.Neighbours(v)); got != 4 {
			t.Fatalf("vertex %d has %d neighbours, want 4", v, got)
		}
	}
}

func TestTorus2DWrapsAround(t *testing.T) {
	g := NewTorus2D(3)
	// Vertex 0 (row 0, col 0) should neighbour row 2 (wrapped north) and
	// column 2 (wrapped west), among its four edges.
	neighbours := g.Neighbours(0)
	want := map[int]bool{6: true, 1: true, 3: true, 2: true}
	for _, n := range neighbours {
		if !want[n] {
			t.Fatalf("vertex 0 has unexpected neighbour %d", n)
		}
	}
}

func TestBuildDirectedDispatchesToDirectedBuilder(t *testing.T) {
	shape := 4
	undirected := BuildDirected(Torus2D, shape, false)
	directed := BuildDirected(Torus2D, shape, true)
	if !directed.Directed() {
		t.Fatal("BuildDirected(..., true) produced a graph with Directed() == false")
	}
	if directed.NumEdges()*2 != undirected.NumEdges() {
		t.Fatalf("directed NumEdges() = %d, undirected = %d, want directed*2 == undirected", directed.NumEdges(), undirected.NumEdges())
	}
}

func TestDirectedTorus2DHalvesEdges(t *testing.T) {
	shape := 4
	undirected := NewTorus2D(shape)
	directed := NewDirectedTorus2D(shape)
	if directed.NumEdges()*2 != undirected.NumEdges() {
		t.Fatalf("directed NumEdges() = %d, undirected = %d, want directed*2 == undirected", directed.NumEdges(), undirected.NumEdges())
	}
}

func TestTorus3DEveryVertexHasSixNeighbours(t *testing.T) {
	shape := 3
	g := NewTorus3D(shape)
	if g.NumVertices() != shape*shape*shape {
		t.Fatalf("NumVertices() = %d, want %d", g.NumVertices(), shape*shape*shape)
	}
	for v := 0; v < g.NumVertices(); v++ {
		if got := len(g.Neighbours(v)); got != 6 {
			t.Fatalf("vertex %d has %d neighbours, want 6", v, got)
		}
	}
}

func TestTorus2D60AlwaysKeepsTheNorthEdge(t *testing.T) {
	// The "north" edge is unconditional; only the other three are
	// coin-flipped. So every vertex must have at least one neighbour, even
	// in a maximally unlucky draw.
	g := NewTorus2D60(5)
	for v := 0; v < g.NumVertices(); v++ {
		if len(g.Neighbours(v)) == 0 {
			t.Fatalf("vertex %d has no neighbours; the unconditional north edge should always be present", v)
		}
	}
}

func TestTorus3D40AlwaysKeepsOneEdge(t *testing.T) {
	g := NewTorus3D40(4)
	for v := 0; v < g.NumVertices(); v++ {
		if len(g.Neighbours(v)) == 0 {
			t.Fatalf("vertex %d has no neighbours; the unconditional k-1 edge should always be present", v)
		}
	}
}

func TestModWrapsNegative(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{-1, 5, 4},
		{5, 5, 0},
		{7, 5, 2},
		{-7, 5, 3},
	}
	for _, c := range cases {
		if got := mod(c.a, c.b); got != c.want {
			t.Fatalf("mod(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
