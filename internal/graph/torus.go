package graph

import "math/rand"

// mod is the floor-mod helper the torus coordinate math relies on so that
// wrapping a negative row/column lands in [0, b) instead of Go's
// truncating-toward-zero %.
func mod(a, b int) int {
	return ((a % b) + b) % b
}

// addEdgeOnce adds the undirected edge current-neighbor unless it is already
// present. The undirected builders visit every edge twice, once from each
// endpoint, and AddEdge already mirrors the edge, so the second visit is
// skipped.
func addEdgeOnce(g *Graph, current, neighbor int) {
	if !g.HasEdge(current, neighbor) {
		g.AddEdge(current, neighbor)
	}
}

// NewTorus2D builds the full (unpruned) 2-D torus: shape*shape vertices, each
// connected to its four grid neighbours with wraparound.
func NewTorus2D(shape int) *Graph {
	numVertices := shape * shape
	numEdges := numVertices * 4
	g := New(false, 0, numVertices, Torus2D)
	for k := 0; k < numEdges; k++ {
		j := mod(k/4, shape)
		i := k / (shape * 4)
		current := i*shape + j
		var neighbor int
		switch mod(k, 4) {
		case 0:
			neighbor = mod(i-1, shape)*shape + j
		case 1:
			neighbor = i*shape + mod(j+1, shape)
		case 2:
			neighbor = mod(i+1, shape)*shape + j
		case 3:
			neighbor = i*shape + mod(j-1, shape)
		}
		addEdgeOnce(g, current, neighbor)
	}
	return g
}

// NewDirectedTorus2D builds the directed 2-D torus: each vertex only points at
// its east and south neighbours, halving the edge count of NewTorus2D.
func NewDirectedTorus2D(shape int) *Graph {
	numVertices := shape * shape
	numEdges := numVertices * 2
	g := New(true, 0, numVertices, Torus2D)
	for k := 0; k < numEdges; k++ {
		j := mod(k/2, shape)
		i := k / (shape * 2)
		current := i*shape + j
		var neighbor int
		switch mod(k, 2) {
		case 0:
			neighbor = i*shape + mod(j+1, shape)
		case 1:
			neighbor = mod(i+1, shape)*shape + j
		}
		g.AddEdge(current, neighbor)
	}
	return g
}

// NewTorus2D60 is NewTorus2D with each non-"north" candidate edge kept only
// with 60% probability, independently per candidate edge. A vertex's north
// edge is also its north neighbour's south edge, so every vertical edge is
// present.
func NewTorus2D60(shape int) *Graph {
	numVertices := shape * shape
	numEdges := numVertices * 4
	g := New(false, 0, numVertices, Torus2D60)
	rng := rand.New(rand.NewSource(seed()))
	for k := 0; k < numEdges; k++ {
		j := mod(k/4, shape)
		i := k / (shape * 4)
		current := i*shape + j
		roll := rng.Intn(100)
		switch mod(k, 4) {
		case 0:
			addEdgeOnce(g, current, mod(i-1, shape)*shape+j)
		case 1:
			if roll < 60 {
				addEdgeOnce(g, current, i*shape+mod(j+1, shape))
			}
		case 2:
			if roll < 60 {
				addEdgeOnce(g, current, mod(i+1, shape)*shape+j)
			}
		case 3:
			if roll < 60 {
				addEdgeOnce(g, current, i*shape+mod(j-1, shape))
			}
		}
	}
	return g
}

// NewDirectedTorus2D60 is NewDirectedTorus2D with the south edge kept only
// with 60% probability; the east edge is always kept, so every row is a
// directed cycle. Links between rows come only from the kept south edges.
func NewDirectedTorus2D60(shape int) *Graph {
	numVertices := shape * shape
	numEdges := numVertices * 2
	g := New(true, 0, numVertices, Torus2D60)
	rng := rand.New(rand.NewSource(seed()))
	for k := 0; k < numEdges; k++ {
		j := mod(k/2, shape)
		i := k / (shape * 2)
		current := i*shape + j
		roll := rng.Intn(100)
		switch mod(k, 2) {
		case 0:
			g.AddEdge(current, i*shape+mod(j+1, shape))
		case 1:
			if roll < 60 {
				g.AddEdge(current, mod(i+1, shape)*shape+j)
			}
		}
	}
	return g
}

// NewTorus3D builds the full (unpruned) 3-D torus: shape^3 vertices, each
// connected to its six grid neighbours with wraparound.
func NewTorus3D(shape int) *Graph {
	numVertices := shape * shape * shape
	numEdges := numVertices * 6
	g := New(false, 0, numVertices, Torus3D)
	for m := 0; m < numEdges; m++ {
		k := mod(m/6, shape)
		j := mod(m/(shape*6), shape)
		i := mod(m/(shape*shape*6), shape)
		current := i*shape*shape + j*shape + k
		var neighbor int
		switch mod(m, 6) {
		case 0:
			neighbor = i*shape*shape + j*shape + mod(k-1, shape)
		case 1:
			neighbor = i*shape*shape + j*shape + mod(k+1, shape)
		case 2:
			neighbor = i*shape*shape + mod(j-1, shape)*shape + k
		case 3:
			neighbor = i*shape*shape + mod(j+1, shape)*shape + k
		case 4:
			neighbor = mod(i-1, shape)*shape*shape + j*shape + k
		case 5:
			neighbor = mod(i+1, shape)*shape*shape + j*shape + k
		}
		addEdgeOnce(g, current, neighbor)
	}
	return g
}

// NewDirectedTorus3D builds the directed 3-D torus: each vertex only points at
// its +k, +j, +i neighbours, halving the edge count of NewTorus3D.
func NewDirectedTorus3D(shape int) *Graph {
	numVertices := shape * shape * shape
	numEdges := numVertices * 3
	g := New(true, 0, numVertices, Torus3D)
	for m := 0; m < numEdges; m++ {
		k := mod(m/3, shape)
		j := mod(m/(shape*3), shape)
		i := mod(m/(shape*shape*3), shape)
		current := i*shape*shape + j*shape + k
		var neighbor int
		switch mod(m, 3) {
		case 0:
			neighbor = i*shape*shape + j*shape + mod(k+1, shape)
		case 1:
			neighbor = i*shape*shape + mod(j+1, shape)*shape + k
		case 2:
			neighbor = mod(i+1, shape)*shape*shape + j*shape + k
		}
		g.AddEdge(current, neighbor)
	}
	return g
}

// NewTorus3D40 is NewTorus3D with each non-"k-1" candidate edge kept only
// with 40% probability, independently per candidate edge. A vertex's k-1 edge
// is also its k-1 neighbour's k+1 edge, so every edge along k is present.
func NewTorus3D40(shape int) *Graph {
	numVertices := shape * shape * shape
	numEdges := numVertices * 6
	g := New(false, 0, numVertices, Torus3D40)
	rng := rand.New(rand.NewSource(seed()))
	for m := 0; m < numEdges; m++ {
		k := mod(m/6, shape)
		j := mod(m/(shape*6), shape)
		i := mod(m/(shape*shape*6), shape)
		current := i*shape*shape + j*shape + k
		roll := rng.Intn(100)
		switch mod(m, 6) {
		case 0:
			addEdgeOnce(g, current, i*shape*shape+j*shape+mod(k-1, shape))
		case 1:
			if roll < 40 {
				addEdgeOnce(g, current, i*shape*shape+j*shape+mod(k+1, shape))
			}
		case 2:
			if roll < 40 {
				addEdgeOnce(g, current, i*shape*shape+mod(j-1, shape)*shape+k)
			}
		case 3:
			if roll < 40 {
				addEdgeOnce(g, current, i*shape*shape+mod(j+1, shape)*shape+k)
			}
		case 4:
			if roll < 40 {
				addEdgeOnce(g, current, mod(i-1, shape)*shape*shape+j*shape+k)
			}
		case 5:
			if roll < 40 {
				addEdgeOnce(g, current, mod(i+1, shape)*shape*shape+j*shape+k)
			}
		}
	}
	return g
}

// NewDirectedTorus3D40 is NewDirectedTorus3D with two of its three outbound
// edges kept only with 40% probability; the +k edge is always kept, so every
// line along k is a directed cycle. Links between those lines come only from
// the kept +j and +i edges.
func NewDirectedTorus3D40(shape int) *Graph {
	numVertices := shape * shape * shape
	numEdges := numVertices * 3
	g := New(true, 0, numVertices, Torus3D40)
	rng := rand.New(rand.NewSource(seed()))
	for m := 0; m < numEdges; m++ {
		k := mod(m/3, shape)
		j := mod(m/(shape*3), shape)
		i := mod(m/(shape*shape*3), shape)
		current := i*shape*shape + j*shape + k
		roll := rng.Intn(100)
		switch mod(m, 3) {
		case 0:
			g.AddEdge(current, i*shape*shape+j*shape+mod(k+1, shape))
		case 1:
			if roll < 40 {
				g.AddEdge(current, i*shape*shape+mod(j+1, shape)*shape+k)
			}
		case 2:
			if roll < 40 {
				g.AddEdge(current, mod(i+1, shape)*shape*shape+j*shape+k)
			}
		}
	}
	return g
}

// Build dispatches on typ, mirroring the graph factory's fallback of
// RANDOM/KGRAPH onto the plain 2-D torus: there is no standalone random or
// k-graph generator in scope here, so those two tags borrow Torus2D's shape.
func Build(typ Type, shape int) *Graph {
	return BuildDirected(typ, shape, false)
}

// BuildDirected is Build with the directed/undirected choice exposed:
// directed selects the builder that only emits each torus edge once, in one
// canonical direction, instead of the mirrored undirected pair.
func BuildDirected(typ Type, shape int, directed bool) *Graph {
	switch typ {
	case Torus2D:
		if directed {
			return NewDirectedTorus2D(shape)
		}
		return NewTorus2D(shape)
	case Torus2D60:
		if directed {
			return NewDirectedTorus2D60(shape)
		}
		return NewTorus2D60(shape)
	case Torus3D:
		if directed {
			return NewDirectedTorus3D(shape)
		}
		return NewTorus3D(shape)
	case Torus3D40:
		if directed {
			return NewDirectedTorus3D40(shape)
		}
		return NewTorus3D40(shape)
	default:
		if directed {
			return NewDirectedTorus2D(shape)
		}
		return NewTorus2D(shape)
	}
}
