package experiment

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/miguelpinia/work-stealing/internal/deque"
	"github.com/miguelpinia/work-stealing/internal/graph"
)

// Run builds the graph params describes, seeds a spanning stub with one
// root per worker, executes SpanningTree, and verifies the result is
// actually a tree before reporting it: a non-tree result means a deque or
// driver bug, not a degenerate input.
func Run(params Params) (Result, error) {
	if err := params.Validate(); err != nil {
		return Result{}, err
	}
	g := graph.BuildDirected(params.GraphType, params.Shape, params.Directed)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	roots := graph.StubSpanning(g, params.NumThreads, rng)

	tree, report, err := SpanningTree(g, roots, params)
	if err != nil {
		return Result{}, err
	}
	if !graph.IsTree(tree) {
		return Result{}, fmt.Errorf("experiment: spanning tree construction produced a non-tree result for %v", params.AlgType)
	}
	return report.ToResult(params), nil
}

// Sweep runs every algorithm in deque.Algorithms against a 1..maxThreads
// worker count sweep: one flat list of per-run results, suitable for
// feeding straight into a report file.
func Sweep(typ graph.Type, shape, maxThreads int) ([]Result, error) {
	results := make([]Result, 0, maxThreads*len(deque.Algorithms))
	structSize := CalculateStructSize(typ, shape)
	for threads := 1; threads <= maxThreads; threads++ {
		for _, alg := range deque.Algorithms {
			p := Params{
				GraphType:        typ,
				Shape:            shape,
				NumThreads:       threads,
				AlgType:          alg,
				StructSize:       structSize,
				NumIterExps:      10,
				StepSpanningType: Counter,
				SpecialExecution: IsSpecial(alg),
			}
			r, err := Run(p)
			if err != nil {
				return nil, err
			}
			results = append(results, r)
		}
	}
	return results, nil
}
