package graph

// pqItem is a tentative distance pushed on the queue. Stale items are skipped
// when popped instead of being updated in place.
type pqItem[W Weight] struct {
	vertex VertexID
	dist   W
	seq    int // push order, breaks ties between equal distances
}

// priorityQueue implements heap.Interface as a min-heap on (dist, seq)
type priorityQueue[W Weight] []pqItem[W]

func (pq priorityQueue[W]) Len() int { return len(pq) }

func (pq priorityQueue[W]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq priorityQueue[W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue[W]) Push(x any) {
	*pq = append(*pq, x.(pqItem[W]))
}

func (pq *priorityQueue[W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
