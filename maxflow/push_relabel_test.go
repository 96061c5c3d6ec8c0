package maxflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlflow/core"
	"github.com/katalvlaran/lvlflow/maxflow"
)

// PushRelabelSuite exercises the FIFO preflow implementation.
type PushRelabelSuite struct {
	suite.Suite
}

// TestSimplePath verifies a single-edge network saturates that edge.
func (s *PushRelabelSuite) TestSimplePath() {
	n, err := core.NewNetwork(2)
	require.NoError(s.T(), err)
	require.NoError(s.T(), n.AddEdge(0, 1, 10))

	mf, err := maxflow.PushRelabel(n, 0, 1, maxflow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(10), mf)
}

// TestBenchmarkScenario runs the six-node reference network (min cut 15) and
// checks that discharge left no excess behind: the final assignment is a
// flow, not a preflow.
func (s *PushRelabelSuite) TestBenchmarkScenario() {
	n := buildSixNodeNetwork(s.T())

	mf, err := maxflow.PushRelabel(n, 0, 5, maxflow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(15), mf)

	assertFlowInvariants(s.T(), n, 0, 5, mf)
}

// TestExcessReturnsToSource exercises a dead-end branch: capacity pushed into
// node 2 has nowhere to go and must flow back, never sticking as excess.
func (s *PushRelabelSuite) TestExcessReturnsToSource() {
	n, err := core.NewNetwork(4)
	require.NoError(s.T(), err)
	require.NoError(s.T(), n.AddEdge(0, 1, 8))
	require.NoError(s.T(), n.AddEdge(0, 2, 7)) // dead end
	require.NoError(s.T(), n.AddEdge(1, 3, 3))

	mf, err := maxflow.PushRelabel(n, 0, 3, maxflow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(3), mf)

	assertFlowInvariants(s.T(), n, 0, 3, mf)
	require.Equal(s.T(), int64(0), n.Flow(0, 2), "dead-end flow must be fully returned")
}

// TestDisconnected verifies flow 0 and no stranded preflow on a cut network.
func (s *PushRelabelSuite) TestDisconnected() {
	n, err := core.NewNetwork(4)
	require.NoError(s.T(), err)
	require.NoError(s.T(), n.AddEdge(0, 1, 5))
	require.NoError(s.T(), n.AddEdge(2, 3, 5))

	mf, err := maxflow.PushRelabel(n, 0, 3, maxflow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), mf)
	assertFlowInvariants(s.T(), n, 0, 3, mf)
}

// TestSourceEqualsSink is defined as zero flow, immediate termination.
func (s *PushRelabelSuite) TestSourceEqualsSink() {
	n, err := core.NewNetwork(2)
	require.NoError(s.T(), err)
	require.NoError(s.T(), n.AddEdge(0, 1, 5))

	mf, err := maxflow.PushRelabel(n, 0, 0, maxflow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), mf)
}

// TestResolveIdempotence verifies a second run adds zero flow: re-saturating
// the source finds every arc already full.
func (s *PushRelabelSuite) TestResolveIdempotence() {
	n := buildSixNodeNetwork(s.T())

	_, err := maxflow.PushRelabel(n, 0, 5, maxflow.DefaultOptions())
	require.NoError(s.T(), err)

	second, err := maxflow.PushRelabel(n, 0, 5, maxflow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), second)
}

// TestValidation covers nil network and out-of-range endpoints.
func (s *PushRelabelSuite) TestValidation() {
	_, err := maxflow.PushRelabel(nil, 0, 1, maxflow.DefaultOptions())
	require.ErrorIs(s.T(), err, maxflow.ErrNilNetwork)

	n, err := core.NewNetwork(3)
	require.NoError(s.T(), err)

	_, err = maxflow.PushRelabel(n, 3, 1, maxflow.DefaultOptions())
	require.ErrorIs(s.T(), err, maxflow.ErrSourceNotFound)

	_, err = maxflow.PushRelabel(n, 0, 7, maxflow.DefaultOptions())
	require.ErrorIs(s.T(), err, maxflow.ErrSinkNotFound)
}

// Entry point for running the suite.
func TestPushRelabelSuite(t *testing.T) {
	suite.Run(t, new(PushRelabelSuite))
}
