// Engine selection for the three competing Dijkstra implementations.
// All variants share one contract and must return identical distances for the
// same graph and source; they differ only in time/memory characteristics,
// which is what the benchmark compares.

package sim

import "fmt"

// Variant tags one of the shortest-path implementations.
type Variant string

const (
	// VariantListScan is O(V^2) Dijkstra over the adjacency list with a
	// linear frontier scan.
	VariantListScan Variant = "list-scan"
	// VariantListHeap is O((V+E) log V) Dijkstra over the adjacency list
	// with a lazy-deletion min-heap.
	VariantListHeap Variant = "list-heap"
	// VariantMatrix is O(V^2) Dijkstra reading weights from the adjacency
	// matrix.
	VariantMatrix Variant = "matrix"
)

// Variants lists every implementation in benchmark order.
func Variants() []Variant {
	return []Variant{VariantListScan, VariantListHeap, VariantMatrix}
}

// Engine computes single-source shortest distances over a scenario graph.
// The returned slice is indexed by node id; unreachable nodes hold the
// Unreachable sentinel, never a partial distance.
type Engine interface {
	Variant() Variant
	ShortestPaths(g *Graph, source int) ([]float64, error)
}

// NewEngine returns the implementation for the given variant tag.
func NewEngine(v Variant) (Engine, error) {
	switch v {
	case VariantListScan:
		return listScanEngine{}, nil
	case VariantListHeap:
		return listHeapEngine{}, nil
	case VariantMatrix:
		return matrixEngine{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
}

// validateSource enforces the shared preconditions of all engines.
func validateSource(g *Graph, source int) error {
	if g == nil || g.NumNodes() == 0 {
		return ErrEmptyGraph
	}
	if source < 0 || source >= g.NumNodes() {
		return fmt.Errorf("%w: %d", ErrUnknownSource, source)
	}
	return nil
}

// newDistanceTable allocates a distance slice initialised to Unreachable
// except for the source.
func newDistanceTable(n, source int) []float64 {
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[source] = 0
	return dist
}
