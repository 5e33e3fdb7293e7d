package graph

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOrUpdateLinkWeightDomain(t *testing.T) {
	tests := []struct {
		name    string
		weight  float64
		wantErr error
	}{
		{"zero weight", 0.0, nil},
		{"mid weight", 0.5, nil},
		{"full weight", 1.0, nil},
		{"too high", 1.5, ErrInvalidWeight},
		{"negative", -0.1, ErrInvalidWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			err := g.AddOrUpdateLink("a", "b", tt.weight)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, g.Outgoing("a"), "rejected link must not be created")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []Link{{To: "b", Weight: tt.weight}}, g.Outgoing("a"))
		})
	}
}

func TestAddOrUpdateLinkRejectionLeavesExistingLinkIntact(t *testing.T) {
	g := New()
	require.NoError(t, g.AddOrUpdateLink("a", "b", 0.3))

	require.ErrorIs(t, g.AddOrUpdateLink("a", "b", 1.5), ErrInvalidWeight)

	assert.Equal(t, []Link{{To: "b", Weight: 0.3}}, g.Outgoing("a"))
}

func TestAddOrUpdateLinkIsIdempotentPerPair(t *testing.T) {
	g := New()
	require.NoError(t, g.AddOrUpdateLink("a", "b", 0.3))
	require.NoError(t, g.AddOrUpdateLink("a", "b", 0.9))

	links := g.Outgoing("a")
	require.Len(t, links, 1, "re-adding the same pair must replace, not duplicate")
	assert.Equal(t, Link{To: "b", Weight: 0.9}, links[0])
	assert.Equal(t, 1, g.LinkCount())
}

func TestAddOrUpdateLinkRejectsSelfLoop(t *testing.T) {
	g := New()
	err := g.AddOrUpdateLink("x", "x", 0.5)
	require.ErrorIs(t, err, ErrSelfLoop)
	assert.Empty(t, g.Outgoing("x"))
}

func TestOutgoingUnknownNode(t *testing.T) {
	g := New()
	links := g.Outgoing("never-seen")
	assert.NotNil(t, links)
	assert.Empty(t, links)
}

func TestOutgoingPreservesInsertionOrder(t *testing.T) {
	g := New()
	require.NoError(t, g.AddOrUpdateLink("a", "b", 0.1))
	require.NoError(t, g.AddOrUpdateLink("a", "c", 0.2))
	require.NoError(t, g.AddOrUpdateLink("a", "d", 0.3))

	assert.Equal(t, []Link{
		{To: "b", Weight: 0.1},
		{To: "c", Weight: 0.2},
		{To: "d", Weight: 0.3},
	}, g.Outgoing("a"))
}

func TestOutgoingReturnsCopy(t *testing.T) {
	g := New()
	require.NoError(t, g.AddOrUpdateLink("a", "b", 0.5))

	links := g.Outgoing("a")
	links[0].Weight = 0.99

	assert.Equal(t, 0.5, g.Outgoing("a")[0].Weight)
}

func TestSnapshotIsIsolatedCopy(t *testing.T) {
	g := New()
	require.NoError(t, g.AddOrUpdateLink("a", "b", 0.5))
	require.NoError(t, g.AddOrUpdateLink("b", "c", 0.7))

	snap := g.Snapshot()
	require.Len(t, snap, 2)

	// Mutating the snapshot must not leak into the graph.
	snap["a"][0].Weight = 0.01
	delete(snap, "b")

	assert.Equal(t, 0.5, g.Outgoing("a")[0].Weight)
	assert.Len(t, g.Outgoing("b"), 1)
}

func TestGraphConcurrentUpserts(t *testing.T) {
	const workers = 8
	g := New()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				from := fmt.Sprintf("node-%d", i%10)
				to := fmt.Sprintf("node-%d", (i+1)%10+10)
				_ = g.AddOrUpdateLink(from, to, float64(w)/float64(workers))
				g.Outgoing(from)
			}
		}(w)
	}
	wg.Wait()

	// Every (from, to) pair was written by all workers; each must appear once.
	for from, links := range g.Snapshot() {
		seen := make(map[string]bool)
		for _, l := range links {
			assert.False(t, seen[l.To], "duplicate link %s->%s", from, l.To)
			seen[l.To] = true
			assert.GreaterOrEqual(t, l.Weight, 0.0)
			assert.LessOrEqual(t, l.Weight, 1.0)
		}
	}
}
