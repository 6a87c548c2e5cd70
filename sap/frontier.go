package sap

// frontier is the per-side scratch state of the lockstep search.
//
// marked and dist are indexed by vertex; queue is a FIFO consumed through
// head so its backing array survives between queries; touched lists every
// vertex marked during the current query so reset is proportional to the
// explored subgraph.
type frontier struct {
	marked  []bool
	dist    []int
	queue   []int
	head    int
	touched []int
}

func newFrontier(v int) frontier {
	return frontier{
		marked: make([]bool, v),
		dist:   make([]int, v),
	}
}

// mark records v at distance d. The caller guarantees !marked[v].
func (f *frontier) mark(v, d int) {
	f.marked[v] = true
	f.dist[v] = d
	f.touched = append(f.touched, v)
}

// seed marks and enqueues every source at distance 0; duplicates are ignored.
func (f *frontier) seed(sources []int) {
	for _, v := range sources {
		if f.marked[v] {
			continue
		}
		f.mark(v, 0)
		f.push(v)
	}
}

func (f *frontier) push(v int) { f.queue = append(f.queue, v) }

func (f *frontier) empty() bool { return f.head == len(f.queue) }

func (f *frontier) pop() int {
	v := f.queue[f.head]
	f.head++

	return v
}

// reset restores the clean baseline: nothing marked, all distances 0,
// empty queue.
func (f *frontier) reset() {
	for _, v := range f.touched {
		f.marked[v] = false
		f.dist[v] = 0
	}
	f.touched = f.touched[:0]
	f.queue = f.queue[:0]
	f.head = 0
}
