package linkedlist

import (
	"iter"

	"github.com/npillmayer/containers/maybe"
)

// node is a link of the chain. Sentinels carry no payload and are marked by a
// nil link on their outer side: head.prev == nil, tail.next == nil.
type node[T any] struct {
	data T
	prev *node[T] // structural back-reference, not owning
	next *node[T]
}

func (n *node[T]) isSentinel() bool {
	return n.prev == nil || n.next == nil
}

// List is a doubly-linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	size int
	head *node[T]
	tail *node[T]
}

// New creates an empty list.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.init()
	return l
}

func (l *List[T]) init() {
	l.size = 0
	l.head = &node[T]{}
	l.tail = &node[T]{}
	l.head.next = l.tail
	l.tail.prev = l.head
}

func (l *List[T]) lazyInit() {
	if l.head == nil {
		l.init()
	}
}

// --- Positions -------------------------------------------------------------

// Begin returns an iterator to the first element, or End() for an empty list.
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{ConstIterator[T]{current: l.head.next}}
}

// End returns an iterator to the position one past the last element.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{ConstIterator[T]{current: l.tail}}
}

// CBegin is the read-only variant of Begin.
func (l *List[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

// CEnd is the read-only variant of End.
func (l *List[T]) CEnd() ConstIterator[T] {
	return l.End().Const()
}

// --- Queries ---------------------------------------------------------------

// Size returns the number of elements in the list.
func (l *List[T]) Size() int {
	return l.size
}

func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Front returns the first element. Calling Front on an empty list panics.
func (l *List[T]) Front() T {
	return l.Begin().Value()
}

// Back returns the last element. Calling Back on an empty list panics.
func (l *List[T]) Back() T {
	assertThat(!l.IsEmpty(), "back of empty list")
	return l.End().Prev().Value()
}

// First returns the first element, if any.
func (l *List[T]) First() maybe.Maybe[T] {
	if l.IsEmpty() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.next.data)
}

// Last returns the last element, if any.
func (l *List[T]) Last() maybe.Maybe[T] {
	if l.IsEmpty() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.tail.prev.data)
}

// --- Modification ----------------------------------------------------------

// Insert inserts value before position pos and returns an iterator to the new element.
func (l *List[T]) Insert(pos Iterator[T], value T) Iterator[T] {
	current := pos.current
	assertThat(current != nil && current.prev != nil, "cannot insert at list boundary")
	n := &node[T]{data: value, prev: current.prev, next: current}
	current.prev.next = n
	current.prev = n
	l.size++
	return Iterator[T]{ConstIterator[T]{current: n}}
}

// Erase removes the element at position pos and returns an iterator to its
// predecessor. If the first element is erased, the returned iterator denotes the
// position before Begin(); it must not be dereferenced, but Next() will
// return the new Begin().
//
// Erasing End() panics.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	current := pos.current
	assertThat(current != nil && !current.isSentinel(), "cannot erase list boundary")
	pred := current.prev
	pred.next = current.next
	current.next.prev = pred
	current.prev, current.next = nil, nil // turns stale iterators into boundary iterators
	l.size--
	return Iterator[T]{ConstIterator[T]{current: pred}}
}

// PushFront inserts value as the new first element.
func (l *List[T]) PushFront(value T) {
	l.Insert(l.Begin(), value)
}

// PushBack inserts value as the new last element.
func (l *List[T]) PushBack(value T) {
	l.Insert(l.End(), value)
}

// PopFront removes the first element. Calling PopFront on an empty list panics.
func (l *List[T]) PopFront() {
	l.Erase(l.Begin())
}

// PopBack removes the last element. Calling PopBack on an empty list panics.
func (l *List[T]) PopBack() {
	assertThat(!l.IsEmpty(), "pop from empty list")
	l.Erase(l.End().Prev())
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	tracer().Debugf("linkedlist: clearing %d elements", l.size)
	for !l.IsEmpty() {
		l.PopFront()
	}
}

// --- Iteration -------------------------------------------------------------

// All iterates over the elements front to back.
// The list must not be modified during iteration.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := l.CBegin(); !it.Equal(l.CEnd()); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward iterates over the elements back to front.
// The list must not be modified during iteration.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.IsEmpty() {
			return
		}
		for n := l.tail.prev; n != l.head; n = n.prev {
			if !yield(n.data) {
				return
			}
		}
	}
}

// --- Copy and move ---------------------------------------------------------

// Clone returns a copy of l. Elements are copied by assignment.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	for v := range l.All() {
		c.PushBack(v)
	}
	return c
}

// CopyFrom replaces the contents of l by a copy of rhs.
func (l *List[T]) CopyFrom(rhs *List[T]) {
	if l == rhs {
		return
	}
	*l = *rhs.Clone()
}

// Move transfers all elements of l to a new list, which is returned.
// l is left empty and remains usable. Iterators into l now refer to the returned list.
func (l *List[T]) Move() *List[T] {
	l.lazyInit()
	m := &List[T]{size: l.size, head: l.head, tail: l.tail}
	l.init()
	tracer().Debugf("linkedlist: moved %d elements", m.size)
	return m
}
