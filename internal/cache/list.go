package cache

// nilIdx marks the absence of a node. The arena hands out non-negative
// indices only.
const nilIdx = -1

// node is one resident key/value pair plus its intrusive list links.
//
// Nodes never move once allocated: an index handed out by alloc stays
// valid until release. That stability is what lets the index map hold
// plain ints instead of pointers.
type node[K comparable, V any] struct {
	key  K
	val  V
	prev int
	next int
}

// recencyList keeps every resident entry in a doubly linked list ordered
// from most recently used (head) to least recently used (tail), with the
// nodes themselves living in a flat arena slice.
//
// The arena design is deliberate:
//   - indices are stable, so the lookup map never dangles
//   - released slots go on a free list and get reused, so a cache that
//     has reached capacity stops allocating entirely
//   - splice/promote is still O(1): just rewrite a handful of int links
type recencyList[K comparable, V any] struct {
	nodes []node[K, V]
	free  []int
	head  int
	tail  int
	size  int

	// linkWrites counts structural link updates (prev/next/head/tail
	// assignments). Tests use deltas of this counter to check that a
	// single operation touches a bounded number of links no matter how
	// large the list is.
	linkWrites int
}

func newRecencyList[K comparable, V any](capacityHint int) recencyList[K, V] {
	return recencyList[K, V]{
		nodes: make([]node[K, V], 0, capacityHint),
		head:  nilIdx,
		tail:  nilIdx,
	}
}

// alloc returns the index of a fresh node holding (key, val), preferring
// a previously released slot over growing the arena.
func (l *recencyList[K, V]) alloc(key K, val V) int {
	if n := len(l.free); n > 0 {
		i := l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[i] = node[K, V]{key: key, val: val, prev: nilIdx, next: nilIdx}
		return i
	}
	l.nodes = append(l.nodes, node[K, V]{key: key, val: val, prev: nilIdx, next: nilIdx})
	return len(l.nodes) - 1
}

// release returns a detached node's slot to the free list.
//
// The slot is zeroed first so the arena doesn't pin the old key/value
// for the garbage collector.
func (l *recencyList[K, V]) release(i int) {
	l.nodes[i] = node[K, V]{prev: nilIdx, next: nilIdx}
	l.free = append(l.free, i)
}

// pushFront links a detached node in at the head (MRU position).
func (l *recencyList[K, V]) pushFront(i int) {
	n := &l.nodes[i]
	n.prev = nilIdx
	n.next = l.head
	l.linkWrites += 2

	if l.head != nilIdx {
		l.nodes[l.head].prev = i
		l.linkWrites++
	}
	l.head = i
	l.linkWrites++

	if l.tail == nilIdx {
		l.tail = i
		l.linkWrites++
	}
	l.size++
}

// unlink detaches node i from the list. The slot stays allocated; the
// caller either re-links it (promotion) or releases it (eviction).
func (l *recencyList[K, V]) unlink(i int) {
	n := &l.nodes[i]

	if n.prev != nilIdx {
		l.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nilIdx {
		l.nodes[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}
	l.linkWrites += 2

	n.prev = nilIdx
	n.next = nilIdx
	l.linkWrites += 2
	l.size--
}

// moveToFront promotes node i to the MRU position.
func (l *recencyList[K, V]) moveToFront(i int) {
	if l.head == i {
		return
	}
	l.unlink(i)
	l.pushFront(i)
}

// keysInOrder returns resident keys from MRU to LRU.
func (l *recencyList[K, V]) keysInOrder() []K {
	out := make([]K, 0, l.size)
	for i := l.head; i != nilIdx; i = l.nodes[i].next {
		out = append(out, l.nodes[i].key)
	}
	return out
}

// reset detaches and releases every node.
func (l *recencyList[K, V]) reset() {
	l.nodes = l.nodes[:0]
	l.free = l.free[:0]
	l.head = nilIdx
	l.tail = nilIdx
	l.size = 0
}
