package stack

import (
	"sync"
	"sync/atomic"
)

// Export for testing.

// AllocStats counts node traffic through a counting allocator.
type AllocStats struct {
	allocs      atomic.Int64
	frees       atomic.Int64
	doubleFrees atomic.Int64

	mu    sync.Mutex
	freed map[any]bool
}

func (st *AllocStats) Allocs() int64      { return st.allocs.Load() }
func (st *AllocStats) Frees() int64       { return st.frees.Load() }
func (st *AllocStats) DoubleFrees() int64 { return st.doubleFrees.Load() }

// countingAllocator never reuses nodes, so pointer identity is enough
// to catch a node released twice.
type countingAllocator[T any] struct {
	stats *AllocStats
}

func (a *countingAllocator[T]) alloc() *node[T] {
	a.stats.allocs.Add(1)
	return new(node[T])
}

func (a *countingAllocator[T]) free(n *node[T]) {
	var zero T
	n.val = zero
	n.next.Store(nil)

	a.stats.mu.Lock()
	if a.stats.freed[n] {
		a.stats.doubleFrees.Add(1)
	} else {
		a.stats.freed[n] = true
	}
	a.stats.mu.Unlock()
	a.stats.frees.Add(1)
}

// NewCounted returns a stack backed by a counting allocator, for
// verifying that every node is released exactly once.
func NewCounted[T any]() (*Stack[T], *AllocStats) {
	stats := &AllocStats{freed: make(map[any]bool)}
	s := &Stack[T]{alloc: &countingAllocator[T]{stats: stats}}
	return s, stats
}

// PendingValues returns the element values still reachable from the
// pending-deletion list.
func PendingValues[T any](s *Stack[T]) []T {
	var vals []T
	for n := s.pending.Load(); n != nil; n = n.next.Load() {
		vals = append(vals, n.val)
	}
	return vals
}

// LiveLen walks the live list and returns its length.
func LiveLen[T any](s *Stack[T]) int {
	count := 0
	for n := s.head.Load(); n != nil; n = n.next.Load() {
		count++
	}
	return count
}
