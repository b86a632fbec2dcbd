package traverse

// frontierItem pairs a node with its distance from the start.
type frontierItem[T any] struct {
	node  T
	depth int
}

// walker encapsulates the mutable state of one BFS or DFS run.
// The same walker (and visited set) is reused across runs by Components.
type walker[T comparable] struct {
	next     NeighborFunc[T]
	opts     Options[T]
	seen     Set[T]
	lifo     bool
	frontier []frontierItem[T]
	head     int // first live FIFO slot; unused in LIFO mode
}

func newWalker[T comparable](next NeighborFunc[T], opts Options[T], lifo bool) *walker[T] {
	return &walker[T]{
		next: next,
		opts: opts,
		seen: opts.NewSet(0),
		lifo: lifo,
	}
}

// push marks n visited and adds it to the frontier.
// It reports false, leaving the frontier untouched, if n was already seen.
func (w *walker[T]) push(n T, depth int) bool {
	if !w.seen.Add(n) {
		return false
	}
	w.opts.OnEnqueue(n, depth)
	w.frontier = append(w.frontier, frontierItem[T]{node: n, depth: depth})

	return true
}

// pop removes the next item: oldest for BFS, newest for DFS.
func (w *walker[T]) pop() frontierItem[T] {
	if w.lifo {
		last := len(w.frontier) - 1
		item := w.frontier[last]
		w.frontier = w.frontier[:last]

		return item
	}
	item := w.frontier[w.head]
	w.head++
	if w.head == len(w.frontier) {
		// queue drained, reuse the backing array
		w.frontier = w.frontier[:0]
		w.head = 0
	}

	return item
}

func (w *walker[T]) empty() bool {
	return w.head >= len(w.frontier)
}

// run walks everything reachable from start that is not yet in w.seen,
// handing each node to yield exactly once. It returns false if yield asked
// to stop or the context was cancelled.
func (w *walker[T]) run(start T, yield func(T, int) bool) bool {
	w.push(start, 0)
	for !w.empty() {
		select {
		case <-w.opts.Ctx.Done():
			return false
		default:
		}

		item := w.pop()
		if !yield(item.node, item.depth) {
			return false
		}
		if w.opts.MaxDepth >= 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		for nbr := range w.next(item.node) {
			w.push(nbr, item.depth+1)
		}
	}

	return true
}
