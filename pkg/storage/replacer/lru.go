package replacer

import "sync"

// listEnd marks the absence of a link in next/prev.
const listEnd = -1

// LRU is the canonical replacer: frame ids move through an ordered set
// keyed by recency of becoming eligible, not recency of access. Victim
// returns the oldest entry; Unpin appends to the youngest end only if
// the frame isn't already eligible (repeated Unpin calls on a frame
// that never got re-pinned do not refresh its position). Unpin, Pin and
// Victim are each O(1): a direct-addressed doubly linked list over
// frame ids, no heap allocation per operation.
type LRU struct {
	mu       sync.Mutex
	capacity int
	next     []int
	prev     []int
	present  []bool
	head     int // oldest, returned by Victim
	tail     int // youngest, where Unpin appends
	size     int
}

// NewLRU constructs a replacer over frame ids [0, capacity).
func NewLRU(capacity int) *LRU {
	l := &LRU{
		capacity: capacity,
		next:     make([]int, capacity),
		prev:     make([]int, capacity),
		present:  make([]bool, capacity),
		head:     listEnd,
		tail:     listEnd,
	}
	return l
}

func (l *LRU) inRange(frameID int) bool {
	return frameID >= 0 && frameID < l.capacity
}

// unlink removes frameID from wherever it sits in the list. Caller must
// hold l.mu and have already checked l.present[frameID].
func (l *LRU) unlink(frameID int) {
	p, n := l.prev[frameID], l.next[frameID]
	if p != listEnd {
		l.next[p] = n
	} else {
		l.head = n
	}
	if n != listEnd {
		l.prev[n] = p
	} else {
		l.tail = p
	}
	l.present[frameID] = false
	l.prev[frameID] = listEnd
	l.next[frameID] = listEnd
	l.size--
}

// Victim returns and removes the oldest eligible frame id.
func (l *LRU) Victim() (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.head == listEnd {
		return 0, false
	}
	frameID := l.head
	l.unlink(frameID)
	return frameID, true
}

// Pin removes frameID from the eligible set. Idempotent.
func (l *LRU) Pin(frameID int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.inRange(frameID) || !l.present[frameID] {
		return
	}
	l.unlink(frameID)
}

// Unpin inserts frameID at the youngest end of the eligible set, unless
// it is already eligible — a repeated Unpin on a frame that was never
// re-pinned must not move it (required-safe no-op, §4.1).
func (l *LRU) Unpin(frameID int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.inRange(frameID) || l.present[frameID] {
		return
	}

	l.present[frameID] = true
	l.prev[frameID] = l.tail
	l.next[frameID] = listEnd
	if l.tail != listEnd {
		l.next[l.tail] = frameID
	} else {
		l.head = frameID
	}
	l.tail = frameID
	l.size++
}

// Size reports the current eligible-set cardinality.
func (l *LRU) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.size
}

var _ Replacer = (*LRU)(nil)
