// Package craftgraph - node and graph type declarations.
//
// This file declares NodeID, NodeKind, Node, Graph, the sentinel errors,
// and the NewGraph constructor. Mutators and queries live in graph.go;
// recipe-driven construction lives in build.go.
package craftgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/potioncraft/alchemy"
)

// Sentinel errors for craftgraph operations.
var (
	// ErrGraphNil is returned when a nil *Graph is passed to a query,
	// TopologicalSort, or ToDOT.
	ErrGraphNil = errors.New("craftgraph: graph is nil")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("craftgraph: node not found")

	// ErrDuplicateEdge indicates the same potion→requirement edge was added twice.
	ErrDuplicateEdge = errors.New("craftgraph: duplicate edge")

	// ErrNoPotions indicates Build was invoked over an empty potion-kind list.
	ErrNoPotions = errors.New("craftgraph: no potion kinds to build from")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort. Graphs built by Build are always acyclic.
	ErrCycleDetected = errors.New("craftgraph: cycle detected")
)

// NodeID uniquely identifies a node within its Graph.
// IDs are human-readable and stable: "potion:Healing", "need:Herb x3 (normal)".
type NodeID string

// NodeKind discriminates the two node roles of the recipe graph.
type NodeKind uint8

const (
	// PotionNode represents one potion kind.
	PotionNode NodeKind = iota
	// RequirementNode represents one distinct ingredient requirement triple.
	RequirementNode
)

// String returns "potion" or "requirement".
func (k NodeKind) String() string {
	if k == PotionNode {
		return "potion"
	}

	return "requirement"
}

// Node is one vertex of the recipe graph. Exactly one of Potion or
// Requirement is meaningful, selected by Kind. Nodes are returned by value;
// callers cannot mutate graph internals through them.
type Node struct {
	// ID is the unique identifier of this node.
	ID NodeID

	// Kind selects which payload field below is meaningful.
	Kind NodeKind

	// Potion is the potion kind (valid when Kind == PotionNode).
	Potion alchemy.PotionKind

	// Requirement is the ingredient requirement triple
	// (valid when Kind == RequirementNode).
	Requirement alchemy.Ingredient
}

// PotionNodeID returns the canonical node ID of a potion kind.
func PotionNodeID(kind alchemy.PotionKind) NodeID {
	return NodeID("potion:" + kind.String())
}

// RequirementNodeID returns the canonical node ID of a requirement triple.
// Identical triples map to identical IDs regardless of the owning potion.
func RequirementNodeID(ing alchemy.Ingredient) NodeID {
	return NodeID(fmt.Sprintf("need:%s x%d (%s)", ing.Kind, ing.Quantity, ing.Quality))
}

// Graph is the in-memory directed recipe graph.
//
// Storage mirrors an adjacency-set layout: succ[from][to] and pred[to][from]
// are kept in lockstep so both traversal directions are O(deg) without a
// full edge scan.
type Graph struct {
	nodes map[NodeID]*Node
	succ  map[NodeID]map[NodeID]struct{}
	pred  map[NodeID]map[NodeID]struct{}

	edgeCount int
}

// NewGraph creates an empty recipe graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[NodeID]*Node),
		succ:  make(map[NodeID]map[NodeID]struct{}),
		pred:  make(map[NodeID]map[NodeID]struct{}),
	}
}
