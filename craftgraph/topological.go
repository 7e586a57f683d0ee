// Package craftgraph - topological ordering of the recipe graph.
//
// TopologicalSort computes a linear ordering of nodes such that for every
// directed edge u→v, u appears before v in the ordering: every potion node
// precedes each of its requirement nodes. If the graph contains a cycle,
// ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each node and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
package craftgraph

import "context"

// Node visitation states for the DFS-based sort.
const (
	white = iota // not visited yet
	gray         // in the recursion stack
	black        // fully explored
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *Graph         // the graph being sorted
	opts  topoOptions    // traversal options (cancellation)
	state map[NodeID]int // visitation state: white/gray/black
	order []NodeID       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all nodes in g.
// Ties among independent nodes resolve by ascending node ID, so the result
// is deterministic for a fixed graph. If g is nil, returns ErrGraphNil.
// If a cycle is detected, returns ErrCycleDetected.
// You may pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort(g *Graph, options ...TopoOption) ([]NodeID, error) {
	// 1. Validate graph pointer.
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings.
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state.
	all := g.Nodes() // sorted node IDs: deterministic roots
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[NodeID]int, len(all)), // all nodes start white
		order: make([]NodeID, 0, len(all)),    // capacity hint for post-order
	}
	// 4. Drive DFS from every unvisited node.
	for _, id := range all {
		if sorter.state[id] == white {
			if err := sorter.visit(id); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order.
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
// It respects cancellation and recurses over sorted successors.
func (t *topoSorter) visit(id NodeID) error {
	// 1. Cancellation check at entry.
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Cycle detection: a gray node means a back-edge.
	if t.state[id] == gray {
		return ErrCycleDetected
	}
	// 3. Already fully processed? Skip.
	if t.state[id] == black {
		return nil
	}
	// 4. Mark as in-progress.
	t.state[id] = gray

	// 5. Recurse into each successor in sorted order.
	next, err := t.graph.Successors(id)
	if err != nil {
		return err
	}
	for _, to := range next {
		if visitErr := t.visit(to); visitErr != nil {
			return visitErr
		}
	}

	// 6. Mark as fully explored and record in post-order list.
	t.state[id] = black
	t.order = append(t.order, id)

	return nil
}
