// Package edgegraph provides the dense, slice-backed weighted graph store
// horde algorithms read through their Graph interface: contiguous int32
// vertex ids and an arc list addressed by int32 edge id.
//
// What
//
//   - Graph: a fixed vertex range [0, V) plus parallel src/dst/weight
//     arrays, one slot per arc. Undirected graphs (the default) store each
//     edge as a reciprocal arc pair u→v and v→u, which is exactly the shape
//     the minimum-spanning-forest duplicate-removal pass expects.
//   - Accessors: VertexCount, EdgeCount, SourceVertex, DestinationVertex,
//     EdgeWeight. That is the complete read surface an algorithm may
//     depend on.
//
// Why dense indices
//
//	Parallel kernels address per-vertex state arrays directly by vertex id;
//	map-backed stores with string ids would put a hash lookup and a lock
//	inside every kernel thread. The store is therefore append-only during
//	construction and immutable once handed to an algorithm: lock-free
//	concurrent reads are the entire synchronization story.
//
// Accessors do not range-check their edge id: they sit on the hottest path
// of every kernel, and an out-of-range id is a caller defect surfacing as
// a panic, per the framework's failure model.
package edgegraph
