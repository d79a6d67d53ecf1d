// Package dag provides a small directed acyclic graph used to order skills
// by their requirements. Edges point from a skill to the skills it requires:
// if A requires B, there is an edge from A to B. Adding an edge that would
// close a cycle is rejected, which is how requirement cycles are detected.
package dag

import (
	"errors"
	"fmt"
	"sort"
)

// ErrCycle is returned when an edge would introduce a cycle.
var ErrCycle = errors.New("cycle detected")

// ErrNodeNotFound is returned when an operation references a non-existent node.
var ErrNodeNotFound = errors.New("node not found")

// ErrDuplicateNode is returned when adding a node that already exists.
var ErrDuplicateNode = errors.New("duplicate node")

// ErrSelfEdge is returned when an edge would create a self-loop.
var ErrSelfEdge = errors.New("self-referencing edge")

// Node is a vertex in the graph.
type Node struct {
	ID    string
	Order int // lower value sorts first among otherwise unordered nodes
}

// DAG is a directed acyclic graph keyed by string IDs.
type DAG struct {
	nodes map[string]*Node
	// adjacency maps nodeID → set of dependency IDs (forward edges).
	adjacency map[string]map[string]bool
	// reverse maps nodeID → set of dependent IDs (backward edges).
	reverse map[string]map[string]bool
}

// New creates an empty DAG.
func New() *DAG {
	return &DAG{
		nodes:     make(map[string]*Node),
		adjacency: make(map[string]map[string]bool),
		reverse:   make(map[string]map[string]bool),
	}
}

// AddNode adds a node with the given ID and tie-break order. Returns
// ErrDuplicateNode if a node with that ID already exists.
func (d *DAG) AddNode(id string, order int) error {
	if _, exists := d.nodes[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateNode, id)
	}
	d.nodes[id] = &Node{ID: id, Order: order}
	d.adjacency[id] = make(map[string]bool)
	d.reverse[id] = make(map[string]bool)
	return nil
}

// Has reports whether a node with the given ID exists.
func (d *DAG) Has(id string) bool {
	_, ok := d.nodes[id]
	return ok
}

// AddEdge adds a dependency edge: from depends on to. Both nodes must
// already exist. Returns an error if either node is missing, the edge
// would create a self-loop, or the edge would introduce a cycle.
func (d *DAG) AddEdge(from, to string) error {
	if from == to {
		return fmt.Errorf("%w: %s", ErrSelfEdge, from)
	}
	if _, ok := d.nodes[from]; !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, from)
	}
	if _, ok := d.nodes[to]; !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, to)
	}
	if d.adjacency[from][to] {
		return nil
	}
	// A path to → ... → from plus the new edge from → to would be a cycle.
	if path := d.Path(to, from); path != nil {
		return &CycleError{Path: append(path, to)}
	}
	d.adjacency[from][to] = true
	d.reverse[to][from] = true
	return nil
}

// CycleError describes the cycle an edge would have closed. Path starts
// and ends with the same node.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	s := ""
	for i, id := range e.Path {
		if i > 0 {
			s += " → "
		}
		s += id
	}
	return ErrCycle.Error() + ": " + s
}

// Unwrap lets errors.Is match ErrCycle.
func (e *CycleError) Unwrap() error {
	return ErrCycle
}

// Path returns the node IDs along a directed path from src to dst,
// inclusive, or nil when none exists. Neighbours are explored in ID
// order so the result is deterministic.
func (d *DAG) Path(src, dst string) []string {
	if src == dst {
		return nil
	}
	parent := map[string]string{src: ""}
	queue := []string{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, dep := range sortedKeys(d.adjacency[cur]) {
			if _, seen := parent[dep]; seen {
				continue
			}
			parent[dep] = cur
			if dep == dst {
				var path []string
				for n := dst; n != ""; n = parent[n] {
					path = append([]string{n}, path...)
				}
				return path
			}
			queue = append(queue, dep)
		}
	}
	return nil
}

// Dependencies returns the direct dependencies of id, sorted by ID.
func (d *DAG) Dependencies(id string) []string {
	return sortedKeys(d.adjacency[id])
}

// Len returns the number of nodes in the DAG.
func (d *DAG) Len() int {
	return len(d.nodes)
}

// TopologicalSort returns node IDs in a valid topological order
// (dependencies come before dependents). Among nodes that are ready at
// the same time, lower Order comes first, then ID.
func (d *DAG) TopologicalSort() ([]string, error) {
	outDegree := make(map[string]int, len(d.nodes))
	var ready []string
	for id := range d.nodes {
		outDegree[id] = len(d.adjacency[id])
		if outDegree[id] == 0 {
			ready = append(ready, id)
		}
	}

	sorted := make([]string, 0, len(d.nodes))
	for len(ready) > 0 {
		d.orderSort(ready)
		id := ready[0]
		ready = ready[1:]
		sorted = append(sorted, id)

		for dependent := range d.reverse[id] {
			outDegree[dependent]--
			if outDegree[dependent] == 0 {
				ready = append(ready, dependent)
			}
		}
	}

	if len(sorted) != len(d.nodes) {
		return nil, fmt.Errorf("%w: not all nodes could be ordered (%d of %d)",
			ErrCycle, len(sorted), len(d.nodes))
	}
	return sorted, nil
}

// orderSort sorts ids in place by node Order ascending, then ID.
func (d *DAG) orderSort(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		oi, oj := d.nodes[ids[i]].Order, d.nodes[ids[j]].Order
		if oi != oj {
			return oi < oj
		}
		return ids[i] < ids[j]
	})
}

func sortedKeys(m map[string]bool) []string {
	if len(m) == 0 {
		return nil
	}
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
