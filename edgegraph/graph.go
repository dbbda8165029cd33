package edgegraph

// Graph is the dense arc-list store. Zero value is unusable; construct
// with New. Append edges with AddEdge during a single-goroutine build
// phase; afterwards the store is immutable and safe for unsynchronized
// concurrent reads.
type Graph struct {
	vertices   int32
	src        []int32
	dst        []int32
	weights    []float64
	directed   bool
	allowLoops bool
}

// New creates a store over the fixed vertex range [0, vertices).
// By default the graph is undirected (reciprocal arc pairs) and rejects
// self-loops. Complexity: O(1); arc storage grows on append.
func New(vertices int, opts ...Option) (*Graph, error) {
	if vertices < 0 {
		return nil, ErrVertexCount
	}

	g := &Graph{vertices: int32(vertices)}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// AddEdge appends the edge u—v with the given weight, as one arc when the
// graph is directed and as the reciprocal pair u→v, v→u otherwise.
// It returns the id of the first arc added.
// Complexity: amortized O(1).
func (g *Graph) AddEdge(u, v int32, weight float64) (int32, error) {
	if u < 0 || u >= g.vertices || v < 0 || v >= g.vertices {
		return 0, ErrVertexRange
	}
	if u == v && !g.allowLoops {
		return 0, ErrLoopNotAllowed
	}

	id := int32(len(g.src))
	g.src = append(g.src, u)
	g.dst = append(g.dst, v)
	g.weights = append(g.weights, weight)
	if !g.directed {
		g.src = append(g.src, v)
		g.dst = append(g.dst, u)
		g.weights = append(g.weights, weight)
	}

	return id, nil
}

// VertexCount reports the size of the vertex range.
func (g *Graph) VertexCount() int32 { return g.vertices }

// EdgeCount reports the number of stored arcs (an undirected edge
// contributes two).
func (g *Graph) EdgeCount() int32 { return int32(len(g.src)) }

// SourceVertex returns the source endpoint of arc e.
func (g *Graph) SourceVertex(e int32) int32 { return g.src[e] }

// DestinationVertex returns the destination endpoint of arc e.
func (g *Graph) DestinationVertex(e int32) int32 { return g.dst[e] }

// EdgeWeight returns the weight of arc e.
func (g *Graph) EdgeWeight(e int32) float64 { return g.weights[e] }

// Directed reports whether edges were stored as single arcs.
func (g *Graph) Directed() bool { return g.directed }
