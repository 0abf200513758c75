// Package queue provides a blocking FIFO queue safe for multiple
// producers and multiple consumers.
//
// The queue is a singly linked list split into a head region and a tail
// region, each guarded by its own lock. Push touches only the tail lock,
// so producers never contend with consumers that are served from the
// head region. A consumer that drains the head region migrates the whole
// tail chain into it with a single pointer hand-off under both locks.
package queue

import (
	"sync"

	"github.com/Tankmaster48/conq/types/optional"
)

// Queue is a two-lock blocking FIFO. The zero value is not usable;
// construct with New or NewWith.
type Queue[T any] struct {
	headMu sync.Mutex
	head   *node[T]

	tailMu   sync.Mutex
	cond     *sync.Cond
	tailHead *node[T]
	tailLast *node[T]
}

type node[T any] struct {
	val  T
	next *node[T]
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	q := &Queue[T]{}
	q.cond = sync.NewCond(&q.tailMu)
	return q
}

// NewWith returns a queue seeded with a single element.
func NewWith[T any](seed T) *Queue[T] {
	q := New[T]()
	q.head = &node[T]{val: seed}
	return q
}

// Push appends a value to the back of the queue and wakes one waiting
// consumer. It only takes the tail lock, so it cannot block on consumers
// working the head region.
func (q *Queue[T]) Push(v T) {
	n := &node[T]{val: v}

	q.tailMu.Lock()
	if q.tailHead == nil {
		q.tailHead = n
	} else {
		q.tailLast.next = n
	}
	q.tailLast = n
	q.tailMu.Unlock()

	q.cond.Signal()
}

// Pop removes and returns the oldest element, or None if the queue is
// empty. It never blocks.
func (q *Queue[T]) Pop() optional.Optional[T] {
	q.headMu.Lock()
	defer q.headMu.Unlock()

	if q.head != nil {
		v := q.head.val
		q.advanceHead()
		return optional.Some(v)
	}

	// Head region empty, go look in the tail region.
	q.tailMu.Lock()
	defer q.tailMu.Unlock()
	if q.tailHead == nil {
		return optional.None[T]()
	}
	v := q.tailHead.val
	q.head = q.tailHead.next
	q.tailHead, q.tailLast = nil, nil
	return optional.Some(v)
}

// WaitPop removes and returns the oldest element, blocking until a Push
// provides one if the queue is empty.
func (q *Queue[T]) WaitPop() T {
	q.headMu.Lock()
	defer q.headMu.Unlock()

	if q.head != nil {
		v := q.head.val
		q.advanceHead()
		return v
	}

	q.tailMu.Lock()
	defer q.tailMu.Unlock()
	for q.tailHead == nil {
		// Waiting releases only the tail lock. Push never takes the
		// head lock, so holding it here cannot deadlock.
		q.cond.Wait()
	}
	v := q.tailHead.val
	q.head = q.tailHead.next
	q.tailHead, q.tailLast = nil, nil
	return v
}

// IsEmpty reports whether the queue holds no elements at the instant
// both locks are held.
func (q *Queue[T]) IsEmpty() bool {
	q.headMu.Lock()
	defer q.headMu.Unlock()
	q.tailMu.Lock()
	defer q.tailMu.Unlock()
	return q.head == nil && q.tailHead == nil
}

// advanceHead moves the head pointer to its successor, refilling the
// head region from the tail region when the successor chain runs out.
// Caller holds the head lock.
func (q *Queue[T]) advanceHead() {
	if q.head.next != nil {
		q.head = q.head.next
		return
	}
	q.tailMu.Lock()
	q.head = q.tailHead
	q.tailHead, q.tailLast = nil, nil
	q.tailMu.Unlock()
}
