// Package craftgraph - node lifecycle, edge lifecycle and queries.
//
// Determinism:
//   - Every enumeration surface returns IDs sorted lexicographically
//     ascending; rely on it for reproducible traversals and stable tests.
package craftgraph

import (
	"sort"

	"github.com/katalvlaran/potioncraft/alchemy"
)

// AddPotion inserts the node of a potion kind if missing (idempotent).
// Returns the node ID, or alchemy.ErrUnknownPotion for kinds outside the
// closed variant set.
//
// Complexity: O(1) amortized.
func (g *Graph) AddPotion(kind alchemy.PotionKind) (NodeID, error) {
	if g == nil {
		return "", ErrGraphNil
	}
	if !kind.Valid() {
		return "", alchemy.ErrUnknownPotion
	}

	id := PotionNodeID(kind)
	if _, exists := g.nodes[id]; exists {
		return id, nil // no-op for existing node
	}
	g.nodes[id] = &Node{ID: id, Kind: PotionNode, Potion: kind}
	g.ensureAdjacency(id)

	return id, nil
}

// AddRequirement inserts the node of a requirement triple if missing
// (idempotent). Identical triples from different recipes collapse into
// the same node. Malformed triples return alchemy.ErrUnknownIngredient.
//
// Complexity: O(1) amortized.
func (g *Graph) AddRequirement(ing alchemy.Ingredient) (NodeID, error) {
	if g == nil {
		return "", ErrGraphNil
	}
	if !ing.Kind.Valid() || !ing.Quality.Valid() || ing.Quantity < 1 {
		return "", alchemy.ErrUnknownIngredient
	}

	id := RequirementNodeID(ing)
	if _, exists := g.nodes[id]; exists {
		return id, nil // no-op for existing node
	}
	g.nodes[id] = &Node{ID: id, Kind: RequirementNode, Requirement: ing}
	g.ensureAdjacency(id)

	return id, nil
}

// AddEdge wires a directed edge from→to. Both endpoints must exist.
// Re-adding an existing edge returns ErrDuplicateEdge; the recipe graph is
// a simple graph by contract.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to NodeID) error {
	if g == nil {
		return ErrGraphNil
	}
	if _, ok := g.nodes[from]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.nodes[to]; !ok {
		return ErrNodeNotFound
	}
	if _, dup := g.succ[from][to]; dup {
		return ErrDuplicateEdge
	}

	g.succ[from][to] = struct{}{}
	g.pred[to][from] = struct{}{}
	g.edgeCount++

	return nil
}

// ensureAdjacency bootstraps the adjacency buckets of a node so edge
// methods can rely on non-nil nested maps.
func (g *Graph) ensureAdjacency(id NodeID) {
	if _, ok := g.succ[id]; !ok {
		g.succ[id] = make(map[NodeID]struct{})
	}
	if _, ok := g.pred[id]; !ok {
		g.pred[id] = make(map[NodeID]struct{})
	}
}

// HasNode reports whether the node ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	if g == nil {
		return false
	}
	_, ok := g.nodes[id]

	return ok
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to NodeID) bool {
	if g == nil {
		return false
	}
	_, ok := g.succ[from][to]

	return ok
}

// Node returns a value copy of the node record.
// Complexity: O(1).
func (g *Graph) Node(id NodeID) (Node, error) {
	if g == nil {
		return Node{}, ErrGraphNil
	}
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return *n, nil
}

// Nodes returns all node IDs sorted lexicographically ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []NodeID {
	if g == nil {
		return nil
	}

	return sortedIDs(g.nodes)
}

// PotionNodes returns the IDs of all potion nodes, sorted ascending.
// Complexity: O(V log V).
func (g *Graph) PotionNodes() []NodeID {
	return g.nodesOfKind(PotionNode)
}

// RequirementNodes returns the IDs of all requirement nodes, sorted ascending.
// Complexity: O(V log V).
func (g *Graph) RequirementNodes() []NodeID {
	return g.nodesOfKind(RequirementNode)
}

// nodesOfKind filters the node catalog by role and sorts the result.
func (g *Graph) nodesOfKind(kind NodeKind) []NodeID {
	if g == nil {
		return nil
	}

	ids := make([]NodeID, 0, len(g.nodes))
	for id, n := range g.nodes {
		if n.Kind == kind {
			ids = append(ids, id)
		}
	}
	sortIDs(ids)

	return ids
}

// Successors returns the IDs reachable by one outgoing edge from id,
// sorted ascending. For a potion node these are its requirement nodes.
// Complexity: O(deg log deg).
func (g *Graph) Successors(id NodeID) ([]NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}

	return sortedIDs(g.succ[id]), nil
}

// Predecessors returns the IDs with one edge into id, sorted ascending.
// For a requirement node these are its owning potion nodes.
// Complexity: O(deg log deg).
func (g *Graph) Predecessors(id NodeID) ([]NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}

	return sortedIDs(g.pred[id]), nil
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int {
	if g == nil {
		return 0
	}

	return len(g.nodes)
}

// EdgeCount returns the number of directed edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}

	return g.edgeCount
}

// sortedIDs copies the keys of a set-like map into a sorted slice.
func sortedIDs[V any](m map[NodeID]V) []NodeID {
	ids := make([]NodeID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sortIDs(ids)

	return ids
}

// sortIDs orders IDs lexicographically ascending in place.
func sortIDs(ids []NodeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
