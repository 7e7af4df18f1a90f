package ranking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

func starGraph(leaves int) *simple.WeightedUndirectedGraph {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	g.AddNode(simple.Node(0))
	for i := 1; i <= leaves; i++ {
		g.AddNode(simple.Node(i))
		g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(int64(i)), W: 1})
	}
	return g
}

func TestPageRankScoresSumToOne(t *testing.T) {
	res, err := PageRank(starGraph(3), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res, 4)

	total := 0.0
	for _, s := range res {
		total += s.Value
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestPageRankCenterOutranksLeaves(t *testing.T) {
	res, err := PageRank(starGraph(3), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, int64(0), res[0].Node, "hub should be most central")
	for _, s := range res[1:] {
		assert.Less(t, s.Value, res[0].Value)
	}
}

func TestPageRankIsolatedNodeTeleportationFloor(t *testing.T) {
	g := starGraph(2)
	g.AddNode(simple.Node(3)) // no edges

	opts := DefaultOptions()
	res, err := PageRank(g, opts)
	require.NoError(t, err)

	floor := TeleportationFloor(4, 1, opts.Damping)
	for _, s := range res {
		if s.Node == 3 {
			assert.InDelta(t, floor, s.Value, 1e-4)
		} else {
			assert.Greater(t, s.Value, floor)
		}
	}
}

func TestPageRankDisconnectedGraphConverges(t *testing.T) {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for i := 0; i < 4; i++ {
		g.AddNode(simple.Node(i))
	}
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: 0.5})
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(2), T: simple.Node(3), W: 2})

	res, err := PageRank(g, DefaultOptions())
	require.NoError(t, err)

	total := 0.0
	for _, s := range res {
		total += s.Value
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestPageRankNonConvergenceIsAnError(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxIterations = 1
	opts.Tolerance = 1e-12

	res, err := PageRank(starGraph(5), opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotConverged))
	assert.Nil(t, res, "no best-effort scores on non-convergence")
}

func TestPageRankEmptyGraph(t *testing.T) {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	res, err := PageRank(g, DefaultOptions())
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestBuildGraphSkipsNonPositiveWeights(t *testing.T) {
	m := mat.NewSymDense(3, nil)
	m.SetSym(0, 1, 0.7)
	// 0-2 and 1-2 stay zero.

	g := BuildGraph(m)
	assert.Equal(t, 3, g.Nodes().Len())
	assert.Equal(t, 1, g.WeightedEdges().Len())
	assert.NotNil(t, g.WeightedEdge(0, 1))
	assert.InDelta(t, 0.7, g.WeightedEdge(0, 1).Weight(), 1e-12)
}
