package linkedlist

// ConstIterator denotes a position in a list and allows read-only access to the
// element at that position.
//
// Next and Prev return a moved copy and leave the receiver unchanged, thus
//
//     it = it.Next()         // pre-increment
//     old, it := it, it.Next() // post-increment
//
type ConstIterator[T any] struct {
	current *node[T]
}

// Value returns the element at the iterator's position.
// Calling Value for the end position panics.
func (it ConstIterator[T]) Value() T {
	return it.retrieve().data
}

// Next returns an iterator to the following position.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{current: it.next()}
}

// Prev returns an iterator to the preceding position.
// Moving before the first element panics.
func (it ConstIterator[T]) Prev() ConstIterator[T] {
	return ConstIterator[T]{current: it.prev()}
}

// Equal is true if both iterators denote the same position (of the same list).
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.current == other.current
}

// Valid is false for the zero value of an iterator. A valid iterator may still
// be stale.
func (it ConstIterator[T]) Valid() bool {
	return it.current != nil
}

func (it ConstIterator[T]) retrieve() *node[T] {
	assertThat(it.current != nil, "use of uninitialized iterator")
	assertThat(!it.current.isSentinel(), "dereferencing iterator at list boundary")
	return it.current
}

func (it ConstIterator[T]) next() *node[T] {
	assertThat(it.current != nil, "use of uninitialized iterator")
	assertThat(it.current.next != nil, "cannot move iterator past end of list")
	return it.current.next
}

func (it ConstIterator[T]) prev() *node[T] {
	assertThat(it.current != nil, "use of uninitialized iterator")
	assertThat(it.current.prev != nil && it.current.prev.prev != nil,
		"cannot move iterator before first element of list")
	return it.current.prev
}

// --- Mutable iterator ------------------------------------------------------

// Iterator is a ConstIterator which additionally allows to modify the element
// at its position.
type Iterator[T any] struct {
	ConstIterator[T]
}

// Next returns an iterator to the following position.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{ConstIterator[T]{current: it.next()}}
}

// Prev returns an iterator to the preceding position.
// Moving before the first element panics.
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{ConstIterator[T]{current: it.prev()}}
}

// Equal is true if both iterators denote the same position (of the same list).
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.current == other.current
}

// Set replaces the element at the iterator's position.
func (it Iterator[T]) Set(value T) {
	it.retrieve().data = value
}

// Ptr returns a pointer to the element at the iterator's position.
// The pointer is valid as long as the element is not erased.
func (it Iterator[T]) Ptr() *T {
	return &it.retrieve().data
}

// Const returns a read-only iterator for the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return it.ConstIterator
}
