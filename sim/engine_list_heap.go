package sim

import "container/heap"

// listHeapEngine is heap-based Dijkstra over the adjacency list. It uses the
// lazy-deletion discipline: relaxations push duplicate (distance, node)
// entries instead of decreasing keys in place, and stale entries are skipped
// on pop once the node is finalised. Heap ordering ties on distance are
// broken by the lower node id.
type listHeapEngine struct{}

func (listHeapEngine) Variant() Variant { return VariantListHeap }

func (listHeapEngine) ShortestPaths(g *Graph, source int) ([]float64, error) {
	if err := validateSource(g, source); err != nil {
		return nil, err
	}

	n := g.NumNodes()
	dist := newDistanceTable(n, source)
	visited := make([]bool, n)

	pq := make(frontierQueue, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, frontierItem{node: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(frontierItem)
		u := item.node
		// Stale entry: a shorter path to u was finalised after this push.
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, nb := range g.Neighbors(u) {
			if next := item.dist + nb.Weight; next < dist[nb.To] {
				dist[nb.To] = next
				heap.Push(&pq, frontierItem{node: nb.To, dist: next})
			}
		}
	}
	return dist, nil
}

// frontierItem is one (distance, node) entry in the priority queue.
type frontierItem struct {
	node int
	dist float64
}

// frontierQueue implements heap.Interface ordered by ascending distance,
// then ascending node id.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type frontierQueue []frontierItem

func (fq frontierQueue) Len() int { return len(fq) }

func (fq frontierQueue) Less(i, j int) bool {
	if fq[i].dist != fq[j].dist {
		return fq[i].dist < fq[j].dist
	}
	return fq[i].node < fq[j].node
}

func (fq frontierQueue) Swap(i, j int) { fq[i], fq[j] = fq[j], fq[i] }

func (fq *frontierQueue) Push(x any) {
	*fq = append(*fq, x.(frontierItem))
}

func (fq *frontierQueue) Pop() any {
	old := *fq
	n := len(old)
	item := old[n-1]
	*fq = old[0 : n-1]
	return item
}
