// Package stack provides a non-blocking LIFO stack safe for any number
// of concurrent pushers and poppers.
//
// Popped nodes are recycled through a sync.Pool. A node may only be
// recycled once no pop that started before its unlinking is still in
// flight, otherwise a concurrent pop could read the next pointer of a
// node that has already been rewired for a new push. The stack tracks a
// count of in-flight pops and a pending-deletion list of unlinked nodes;
// nodes are handed back to the pool only by a pop that observes itself
// to be the sole popper. All pointers and the counter use the typed
// sync/atomic operations, which are sequentially consistent.
package stack

import (
	"sync"
	"sync/atomic"

	"github.com/Tankmaster48/conq/types/optional"
)

// Stack is a lock-free LIFO. The zero value is not usable; construct
// with New or NewWith.
type Stack[T any] struct {
	head    atomic.Pointer[node[T]]
	inPop   atomic.Int64
	pending atomic.Pointer[node[T]]
	alloc   allocator[T]
}

type node[T any] struct {
	val  T
	next atomic.Pointer[node[T]]
}

// allocator is the node memory source. The pool-backed default is used
// outside of tests.
type allocator[T any] interface {
	alloc() *node[T]
	free(*node[T])
}

type poolAllocator[T any] struct {
	pool sync.Pool
}

func newPoolAllocator[T any]() *poolAllocator[T] {
	return &poolAllocator[T]{
		pool: sync.Pool{New: func() any { return new(node[T]) }},
	}
}

func (a *poolAllocator[T]) alloc() *node[T] {
	return a.pool.Get().(*node[T])
}

func (a *poolAllocator[T]) free(n *node[T]) {
	var zero T
	n.val = zero
	n.next.Store(nil)
	a.pool.Put(n)
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{alloc: newPoolAllocator[T]()}
}

// NewWith returns a stack seeded with a single element.
func NewWith[T any](seed T) *Stack[T] {
	s := New[T]()
	s.Push(seed)
	return s
}

// Push places a value on top of the stack. It never blocks; contention
// costs only CAS retries.
func (s *Stack[T]) Push(v T) {
	n := s.alloc.alloc()
	n.val = v
	for {
		old := s.head.Load()
		n.next.Store(old)
		if s.head.CompareAndSwap(old, n) {
			return
		}
	}
}

// Pop removes and returns the value on top of the stack, or None if the
// stack is empty. It never blocks.
func (s *Stack[T]) Pop() optional.Optional[T] {
	s.inPop.Add(1)
	for {
		old := s.head.Load()
		if old == nil {
			// An empty pop owes nothing to reclamation beyond
			// restoring its counter contribution.
			s.inPop.Add(-1)
			return optional.None[T]()
		}
		if s.head.CompareAndSwap(old, old.next.Load()) {
			v := old.val
			var zero T
			old.val = zero
			s.reclaim(old)
			return optional.Some(v)
		}
	}
}

// IsEmpty reports whether the head pointer is currently nil.
func (s *Stack[T]) IsEmpty() bool {
	return s.head.Load() == nil
}

// reclaim decides the fate of a node this pop has just unlinked, then
// drops the caller's in-flight count. Only the sole in-flight popper may
// hand nodes back to the allocator.
func (s *Stack[T]) reclaim(old *node[T]) {
	if s.inPop.Load() == 1 {
		// Sole popper right now: claim the whole pending list.
		claimed := s.pending.Swap(nil)
		if s.inPop.Add(-1) == 0 {
			// Still sole at the decrement, so nobody can hold a
			// stale pointer into the claimed list.
			s.freeList(claimed)
		} else if claimed != nil {
			// A pop started in the interim; park the claimed list
			// again rather than leak it.
			s.chainPending(claimed)
		}
		// The unlinked node itself was private to this pop the
		// moment the counter read 1, so it is free either way.
		s.alloc.free(old)
		return
	}
	// Another pop may still dereference old; park it instead.
	old.next.Store(nil)
	s.chainPending(old)
	s.inPop.Add(-1)
}

// chainPending prepends a nil-terminated chain onto the pending list
// with a retrying CAS, so concurrent parkers cannot lose each other's
// chains.
func (s *Stack[T]) chainPending(chain *node[T]) {
	last := chain
	for next := last.next.Load(); next != nil; next = last.next.Load() {
		last = next
	}
	for {
		old := s.pending.Load()
		last.next.Store(old)
		if s.pending.CompareAndSwap(old, chain) {
			return
		}
	}
}

func (s *Stack[T]) freeList(n *node[T]) {
	for n != nil {
		next := n.next.Load()
		s.alloc.free(n)
		n = next
	}
}

// Drain releases every node still held by the stack, both live and
// pending, bypassing the reclamation protocol. The caller must ensure
// no operation is concurrently in flight; Drain is the teardown path.
func (s *Stack[T]) Drain() {
	s.freeList(s.head.Swap(nil))
	s.freeList(s.pending.Swap(nil))
}
