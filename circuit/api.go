package circuit

import (
	"fmt"
	"sort"
)

// Build constructs a validated, immutable Graph from parallel vertex/delay
// arrays and an edge list with weights.
//
// Contract:
//   - len(vertices) must equal len(delays).
//   - every delay and weight must be >= 0.
//   - at least one edge must have weight > 0.
//   - every edge endpoint must name a vertex present in vertices.
//   - (default on, see WithCheckZeroCycles) no directed cycle may have total
//     weight 0.
//
// Complexity: O(V log V + E log E) for sorting, O(V+E) for the zero-cycle
// check when enabled.
func Build(vertices []string, delays []int64, edges []EdgeSpec, opts ...Option) (*Graph, error) {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(vertices) != len(delays) {
		return nil, fmt.Errorf("%w: %d vertices but %d delays", ErrLengthMismatch, len(vertices), len(delays))
	}
	if len(vertices) == 0 {
		return nil, ErrNoVertices
	}

	delay := make(map[string]int64, len(vertices))
	for i, v := range vertices {
		if delays[i] < 0 {
			return nil, fmt.Errorf("%w: vertex %q has delay %d", ErrNegativeDelay, v, delays[i])
		}
		delay[v] = delays[i]
	}

	sortedVertices := append([]string(nil), vertices...)
	sort.Strings(sortedVertices)

	if cfg.removeClockwiseEdges {
		edges = removeClockwiseEdges(vertices, edges)
	}

	edgeList, hasPositive, err := buildEdges(delay, edges)
	if err != nil {
		return nil, err
	}
	if !hasPositive {
		return nil, ErrNoRegisters
	}

	sort.SliceStable(edgeList, func(i, j int) bool {
		if edgeList[i].From != edgeList[j].From {
			return edgeList[i].From < edgeList[j].From
		}
		if edgeList[i].To != edgeList[j].To {
			return edgeList[i].To < edgeList[j].To
		}
		return edgeList[i].ID < edgeList[j].ID
	})

	outIdx := make(map[string][]int, len(sortedVertices))
	inIdx := make(map[string][]int, len(sortedVertices))
	for i, e := range edgeList {
		outIdx[e.From] = append(outIdx[e.From], i)
		inIdx[e.To] = append(inIdx[e.To], i)
	}

	g := &Graph{
		vertices: sortedVertices,
		delay:    delay,
		edges:    edgeList,
		outIdx:   outIdx,
		inIdx:    inIdx,
	}

	if cfg.checkZeroCycles {
		if err := checkNoZeroWeightCycle(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// buildEdges validates and ID-tags raw edge specs.
func buildEdges(delay map[string]int64, edges []EdgeSpec) ([]Edge, bool, error) {
	edgeList := make([]Edge, 0, len(edges))
	hasPositive := false
	for i, e := range edges {
		if _, ok := delay[e.From]; !ok {
			return nil, false, fmt.Errorf("%w: %q", ErrUnknownVertex, e.From)
		}
		if _, ok := delay[e.To]; !ok {
			return nil, false, fmt.Errorf("%w: %q", ErrUnknownVertex, e.To)
		}
		if e.Weight < 0 {
			return nil, false, fmt.Errorf("%w: edge %s->%s has weight %d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		if e.Weight > 0 {
			hasPositive = true
		}
		edgeList = append(edgeList, Edge{
			ID:     fmt.Sprintf("e%d", i),
			From:   e.From,
			To:     e.To,
			Weight: e.Weight,
		})
	}
	return edgeList, hasPositive, nil
}

// removeClockwiseEdges drops edges (u,v) where u follows v in order, except
// the wraparound edge (last,first). Generator-only; see WithRemoveClockwiseEdges.
func removeClockwiseEdges(order []string, edges []EdgeSpec) []EdgeSpec {
	pos := make(map[string]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	first, last := order[0], order[len(order)-1]

	kept := make([]EdgeSpec, 0, len(edges))
	for _, e := range edges {
		// Drop backward edges (from comes after to in the ring), except the
		// wraparound edge that actually closes the ring (last -> first).
		if pos[e.From] > pos[e.To] && !(e.From == last && e.To == first) {
			continue
		}
		// Drop the redundant forward bypass (first -> last): it would shortcut
		// the entire ring instead of flowing around it.
		if e.From == first && e.To == last {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}
