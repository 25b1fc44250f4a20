package sim

// listScanEngine is classic O(V^2) Dijkstra: every iteration linearly scans
// the unvisited nodes for the minimum tentative distance, then relaxes its
// adjacency-list entries. The ascending scan with a strict < comparison
// breaks distance ties toward the lowest node id.
type listScanEngine struct{}

func (listScanEngine) Variant() Variant { return VariantListScan }

func (listScanEngine) ShortestPaths(g *Graph, source int) ([]float64, error) {
	if err := validateSource(g, source); err != nil {
		return nil, err
	}

	n := g.NumNodes()
	dist := newDistanceTable(n, source)
	visited := make([]bool, n)

	for {
		u := -1
		best := Unreachable
		for v := 0; v < n; v++ {
			if !visited[v] && dist[v] < best {
				best = dist[v]
				u = v
			}
		}
		// Remaining nodes are all unreachable.
		if u < 0 {
			break
		}
		visited[u] = true

		for _, nb := range g.Neighbors(u) {
			if next := dist[u] + nb.Weight; next < dist[nb.To] {
				dist[nb.To] = next
			}
		}
	}
	return dist, nil
}
