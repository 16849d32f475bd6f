package experiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miguelpinia/work-stealing/internal/deque"
	"github.com/miguelpinia/work-stealing/internal/graph"
)

func TestSweepCoversEveryAlgorithmAndThreadCount(t *testing.T) {
	results, err := Sweep(graph.Torus2D, 2, 2)
	require.NoError(t, err)
	assert.Len(t, results, 2*len(deque.Algorithms))

	seenThreads := map[int]int{}
	for _, r := range results {
		seenThreads[r.NumThreads]++
	}
	assert.Equal(t, len(deque.Algorithms), seenThreads[1])
	assert.Equal(t, len(deque.Algorithms), seenThreads[2])
}

func TestCalculateStructSizeByTopology(t *testing.T) {
	assert.Equal(t, 16, CalculateStructSize(graph.Torus2D, 4))
	assert.Equal(t, 64, CalculateStructSize(graph.Torus3D, 4))
	assert.Equal(t, 4, CalculateStructSize(graph.Random, 4))
}
