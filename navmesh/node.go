package navmesh

import "container/heap"

const (
	navNodeOpen   = 0x01
	navNodeClosed = 0x02
)

// navNode is per-triangle search state. Pidx is the parent node index plus
// one; zero means no parent.
type navNode struct {
	Pos    NavVec3
	Cost   float64 // cost from the start to this node
	Total  float64 // Cost plus heuristic
	Pidx   int32
	Flags  uint8
	Tri    int32
	_index int // heap bookkeeping
}

// navNodePool hands out one node per triangle per search.
type navNodePool struct {
	nodes []*navNode
	byTri map[int32]int32 // triangle -> node index + 1
}

func newNavNodePool() *navNodePool {
	return &navNodePool{byTri: make(map[int32]int32)}
}

// GetNode returns the node for the triangle, allocating it on first use.
func (p *navNodePool) GetNode(tri int32) *navNode {
	if idx := p.byTri[tri]; idx != 0 {
		return p.nodes[idx-1]
	}
	node := &navNode{Tri: tri}
	p.nodes = append(p.nodes, node)
	p.byTri[tri] = int32(len(p.nodes))
	return node
}

func (p *navNodePool) GetNodeAtIdx(idx int32) *navNode {
	if idx == 0 {
		return nil
	}
	return p.nodes[idx-1]
}

func (p *navNodePool) GetNodeIdx(node *navNode) int32 {
	return p.byTri[node.Tri]
}

// navNodeQueue is a binary min-heap over node Total cost.
type navNodeQueue struct {
	h nodeHeap
}

func newNavNodeQueue() *navNodeQueue {
	return &navNodeQueue{}
}

func (q *navNodeQueue) Empty() bool {
	return len(q.h) == 0
}

func (q *navNodeQueue) Offer(node *navNode) {
	heap.Push(&q.h, node)
}

func (q *navNodeQueue) Poll() *navNode {
	return heap.Pop(&q.h).(*navNode)
}

// Update restores heap order after the node's Total changed.
func (q *navNodeQueue) Update(node *navNode) {
	heap.Fix(&q.h, node._index)
}

type nodeHeap []*navNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool { return h[i].Total < h[j].Total }

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i]._index = i
	h[j]._index = j
}

func (h *nodeHeap) Push(x any) {
	node := x.(*navNode)
	node._index = len(*h)
	*h = append(*h, node)
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return node
}
