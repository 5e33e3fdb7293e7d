// Package graph provides a thread-safe weighted directed graph over opaque
// string identifiers. Nodes are implicit: they exist only as endpoints of
// links, so there is no separate node lifecycle to manage.
package graph

import (
	"errors"
	"sync"
)

var (
	// ErrInvalidWeight reports a link weight outside the [0.0, 1.0] range.
	ErrInvalidWeight = errors.New("graph: link weight must be between 0.0 and 1.0")

	// ErrSelfLoop reports an attempt to link an identifier to itself.
	ErrSelfLoop = errors.New("graph: cannot link an identifier to itself")
)

// Link is a directed edge to a target identifier with a normalized weight.
type Link struct {
	To     string  `json:"to_id"`
	Weight float64 `json:"weight"`
}

// Graph is an adjacency-list graph keyed by source identifier. For a given
// ordered (from, to) pair there is at most one link; re-adding replaces the
// weight in place.
type Graph struct {
	mu    sync.RWMutex
	links map[string][]Link
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{links: make(map[string][]Link)}
}

// AddOrUpdateLink inserts a directed link from one identifier to another,
// or replaces the weight of the existing link between the same pair.
// Weights outside [0.0, 1.0] and self-loops are rejected.
func (g *Graph) AddOrUpdateLink(from, to string, weight float64) error {
	if weight < 0.0 || weight > 1.0 {
		return ErrInvalidWeight
	}
	if from == to {
		return ErrSelfLoop
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Per-node fan-out is small in this domain, so a linear scan beats the
	// bookkeeping of a secondary (from, to) index.
	for i, l := range g.links[from] {
		if l.To == to {
			g.links[from][i].Weight = weight
			return nil
		}
	}
	g.links[from] = append(g.links[from], Link{To: to, Weight: weight})
	return nil
}

// Outgoing returns a copy of the links whose source is from, in insertion
// order. An identifier that never appeared as a source yields an empty slice.
func (g *Graph) Outgoing(from string) []Link {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Link, len(g.links[from]))
	copy(out, g.links[from])
	return out
}

// Snapshot returns a point-in-time copy of the whole graph. Mutating the
// returned map never affects the graph itself.
func (g *Graph) Snapshot() map[string][]Link {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snap := make(map[string][]Link, len(g.links))
	for from, links := range g.links {
		out := make([]Link, len(links))
		copy(out, links)
		snap[from] = out
	}
	return snap
}

// LinkCount reports the total number of links in the graph.
func (g *Graph) LinkCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, links := range g.links {
		n += len(links)
	}
	return n
}
