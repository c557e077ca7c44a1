package circuit

// EdgeSpec is a single (From, To, Weight) triple as supplied to Build. From
// and To are vertex keys; Weight is the edge's register count w(e).
type EdgeSpec struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int64  `json:"weight"`
}

// Edge is a validated, ID-tagged edge inside a Graph. IDs are assigned in
// input order ("e0", "e1", ...) and are stable for the lifetime of the Graph.
type Edge struct {
	ID     string
	From   string
	To     string
	Weight int64
}

// Option configures Build. Options are applied in the order given.
type Option func(*buildConfig)

type buildConfig struct {
	checkZeroCycles      bool
	removeClockwiseEdges bool
}

// defaultBuildConfig mirrors the spec's defaults: the zero-weight-cycle
// check runs unless explicitly disabled.
func defaultBuildConfig() buildConfig {
	return buildConfig{
		checkZeroCycles:      true,
		removeClockwiseEdges: false,
	}
}

// WithCheckZeroCycles toggles the W2 (no zero-weight cycle) construction-time
// check. Default true. Callers that already know their input satisfies W2 —
// e.g. a generator that only emits by-construction-valid graphs — may pass
// false to skip the O(V+E) scan.
func WithCheckZeroCycles(check bool) Option {
	return func(c *buildConfig) { c.checkZeroCycles = check }
}

// WithRemoveClockwiseEdges is a generator-facing knob, not a core invariant:
// when true, Build drops every edge (u,v) where u follows v in the supplied
// vertex ordering, except the wraparound edge (last,first). This encodes the
// anti-clockwise topology of a correlator-style circuit; gen.Random is the
// only caller that sets it. Default false.
func WithRemoveClockwiseEdges(remove bool) Option {
	return func(c *buildConfig) { c.removeClockwiseEdges = remove }
}

// Graph is the immutable input (or retimed) circuit graph G = (V, E, d, w).
//
// All slices/maps below are fixed at construction and never mutated by any
// exported method; Vertices(), Edges(), OutEdges(), InEdges() all return
// data in ascending-key order so analyses are reproducible across runs.
type Graph struct {
	vertices []string         // ascending, unique
	delay    map[string]int64 // vertex -> d(v)
	edges    []Edge           // ascending (From, To, ID)
	outIdx   map[string][]int // vertex -> indices into edges, ascending
	inIdx    map[string][]int // vertex -> indices into edges, ascending
}

// NumVertices returns |V|.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// NumEdges returns |E|.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Vertices returns the vertex keys in ascending order. The returned slice
// must not be mutated by the caller.
func (g *Graph) Vertices() []string { return g.vertices }

// Edges returns every edge in ascending (From, To, ID) order. The returned
// slice must not be mutated by the caller.
func (g *Graph) Edges() []Edge { return g.edges }

// Delay returns d(v). Panics if v is not a vertex of g — callers are
// expected to only query vertices obtained from Vertices() or edge
// endpoints, both of which are validated at Build time.
func (g *Graph) Delay(v string) int64 {
	d, ok := g.delay[v]
	if !ok {
		panic("circuit: Delay called with unknown vertex " + v)
	}
	return d
}

// HasVertex reports whether v is a vertex of g.
func (g *Graph) HasVertex(v string) bool {
	_, ok := g.delay[v]
	return ok
}

// OutEdges returns the edges leaving v, in ascending (To, ID) order.
func (g *Graph) OutEdges(v string) []Edge {
	idx := g.outIdx[v]
	out := make([]Edge, len(idx))
	for i, j := range idx {
		out[i] = g.edges[j]
	}
	return out
}

// InEdges returns the edges entering v, in ascending (From, ID) order.
func (g *Graph) InEdges(v string) []Edge {
	idx := g.inIdx[v]
	in := make([]Edge, len(idx))
	for i, j := range idx {
		in[i] = g.edges[j]
	}
	return in
}
