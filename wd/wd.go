package wd

import (
	"container/heap"
	"errors"

	"github.com/leiserson/retime/circuit"
)

// ErrNilGraph indicates a nil *circuit.Graph was passed to Compute.
var ErrNilGraph = errors.New("wd: graph is nil")

// ErrInternalCycle indicates the zero-weight subgraph of g contains a cycle,
// which should be impossible for any g satisfying W2. Indicates a caller
// bypassed circuit.Build's validation (e.g. via WithCheckZeroCycles(false))
// with an actually-invalid graph.
var ErrInternalCycle = errors.New("wd: internal: zero-weight subgraph has a cycle")

// Compute returns the W and D matrices of g.
//
// W(u,v) is the minimum register count over any u->v path; D(u,v) is the
// maximum accumulated delay over any u->v path that achieves W(u,v).
// W(u,u) = 0 and D(u,u) = d(u). Unreachable pairs hold wd.Unreachable in
// both matrices.
//
// Rather than two independent shortest-path sweeps combined after the fact
// (which silently assumes the w-minimal tree also maximizes tail delay),
// this runs one Dijkstra per source over a composite key
// (regs, zeroRank[v]) where zeroRank is a single global topological rank of
// g's zero-weight subgraph (that subgraph is acyclic by W2). zeroRank[v] is
// strictly increasing along every zero-weight edge, so the composite key is
// non-decreasing along every edge in g, which is exactly what Dijkstra's
// greedy finalization requires — unlike using the running tail-delay sum
// itself as the tie-break key, which can decrease along a zero-weight edge
// and would make greedy finalization unsound.
func Compute(g *circuit.Graph) (W, D *Matrix, err error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	zeroRank, err := zeroSubgraphTopoRank(g)
	if err != nil {
		return nil, nil, err
	}

	vertices := g.Vertices()
	W = newMatrix(vertices, Unreachable)
	D = newMatrix(vertices, Unreachable)

	for _, src := range vertices {
		regs, tailDelay := singleSourceLex(g, src, zeroRank)
		for _, v := range vertices {
			r, ok := regs[v]
			if !ok {
				continue
			}
			W.set(src, v, r)
			D.set(src, v, g.Delay(v)+tailDelay[v])
		}
	}

	return W, D, nil
}

// zeroSubgraphTopoRank returns a topological rank (0 = first) for every
// vertex of g, derived from g's zero-weight-edge subgraph via Kahn's
// algorithm. Vertices with no zero-weight in/out edges still receive a rank,
// consistent with an arbitrary linearization extending the partial order.
func zeroSubgraphTopoRank(g *circuit.Graph) (map[string]int, error) {
	vertices := g.Vertices()
	indeg := make(map[string]int, len(vertices))
	zeroOut := make(map[string][]string, len(vertices))
	for _, v := range vertices {
		indeg[v] = 0
	}
	for _, e := range g.Edges() {
		if e.Weight == 0 {
			zeroOut[e.From] = append(zeroOut[e.From], e.To)
			indeg[e.To]++
		}
	}

	queue := make([]string, 0, len(vertices))
	for _, v := range vertices {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}

	rank := make(map[string]int, len(vertices))
	next := 0
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		rank[v] = next
		next++
		for _, w := range zeroOut[v] {
			indeg[w]--
			if indeg[w] == 0 {
				queue = append(queue, w)
			}
		}
	}

	if next != len(vertices) {
		return nil, ErrInternalCycle
	}
	return rank, nil
}

// lexItem is a priority-queue entry for the composite (regs, zeroRank) key.
type lexItem struct {
	v    string
	regs int64
	rank int
}

type lexHeap []lexItem

func (h lexHeap) Len() int { return len(h) }
func (h lexHeap) Less(i, j int) bool {
	if h[i].regs != h[j].regs {
		return h[i].regs < h[j].regs
	}
	return h[i].rank < h[j].rank
}
func (h lexHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *lexHeap) Push(x interface{}) { *h = append(*h, x.(lexItem)) }
func (h *lexHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// singleSourceLex runs Dijkstra from src keyed by (regs, zeroRank), and
// returns, per reachable vertex, the winning path's total register count and
// total tail delay (sum of d(tail) along the path).
func singleSourceLex(g *circuit.Graph, src string, zeroRank map[string]int) (regs, tailDelay map[string]int64) {
	regs = map[string]int64{src: 0}
	tailDelay = map[string]int64{src: 0}
	finalized := make(map[string]bool)

	pq := &lexHeap{{v: src, regs: 0, rank: zeroRank[src]}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(lexItem)
		u := item.v
		if finalized[u] {
			continue
		}
		if item.regs != regs[u] {
			continue // stale entry superseded by a strictly smaller regs
		}
		finalized[u] = true

		for _, e := range g.OutEdges(u) {
			v := e.To
			if finalized[v] {
				continue
			}
			newRegs := regs[u] + e.Weight
			newTailDelay := tailDelay[u] + g.Delay(u)

			curRegs, seen := regs[v]
			better := !seen || newRegs < curRegs || (newRegs == curRegs && newTailDelay > tailDelay[v])
			if !better {
				continue
			}

			regs[v] = newRegs
			tailDelay[v] = newTailDelay
			heap.Push(pq, lexItem{v: v, regs: newRegs, rank: zeroRank[v]})
		}
	}

	return regs, tailDelay
}
