package experiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miguelpinia/work-stealing/internal/deque"
	"github.com/miguelpinia/work-stealing/internal/graph"
)

func runParams(alg deque.Algorithm, threads int) Params {
	shape := 4
	return Params{
		GraphType:        graph.Torus2D,
		Shape:            shape,
		NumThreads:       threads,
		AlgType:          alg,
		StructSize:       CalculateStructSize(graph.Torus2D, shape),
		NumIterExps:      1,
		StepSpanningType: Counter,
		SpecialExecution: IsSpecial(alg),
	}
}

func TestSpanningTreeCoversEveryVertexForEveryAlgorithm(t *testing.T) {
	for _, alg := range deque.Algorithms {
		alg := alg
		t.Run(alg.String(), func(t *testing.T) {
			t.Parallel()
			p := runParams(alg, 3)
			result, err := Run(p)
			require.NoError(t, err)
			assert.Equal(t, 3, result.NumThreads)
			assert.Equal(t, alg.String(), result.Algorithm)
			assert.GreaterOrEqual(t, result.Puts, int32(p.Shape*p.Shape))
		})
	}
}

func TestSpanningTreeSingleThreadIsDeterministicShape(t *testing.T) {
	p := runParams(deque.ChaseLevAlgorithm, 1)
	g := graph.Build(p.GraphType, p.Shape)
	roots := []int{0}
	tree, report, err := SpanningTree(g, roots, p)
	require.NoError(t, err)
	assert.True(t, graph.IsTree(tree))
	assert.Equal(t, int32(g.NumVertices()), report.Puts.Load())
	assert.Equal(t, int32(g.NumVertices()), report.Takes.Load())
}

func TestParamsValidateRejectsDoubleCollect(t *testing.T) {
	p := runParams(deque.ChaseLevAlgorithm, 2)
	p.StepSpanningType = DoubleCollect
	assert.Error(t, p.Validate())
}

func TestParamsValidateRejectsNonPositiveThreads(t *testing.T) {
	p := runParams(deque.ChaseLevAlgorithm, 0)
	assert.Error(t, p.Validate())
}
