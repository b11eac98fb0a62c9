package bstree

// Iterator denotes a position in the in-order sequence of a tree's elements.
// There is no mutable variant: changing an element in place could break the
// ordering of the tree.
//
// Iterators are invalidated when the element they point to is removed, and when
// the element is the in-order successor of a removed element with two children.
type Iterator[T any] struct {
	tree    *Tree[T]
	current *node[T] // nil denotes the end position
}

// Begin returns an iterator to the smallest element, or End() for an empty tree.
func (t *Tree[T]) Begin() Iterator[T] {
	return Iterator[T]{tree: t, current: findMin(t.root)}
}

// End returns an iterator to the position after the greatest element.
func (t *Tree[T]) End() Iterator[T] {
	return Iterator[T]{tree: t}
}

// Value returns the element at the iterator's position. Calling Value for the
// end position panics.
func (it Iterator[T]) Value() T {
	assertThat(it.current != nil, "dereferencing end iterator")
	return it.current.element
}

// Next returns an iterator to the in-order successor. Moving past End() panics.
func (it Iterator[T]) Next() Iterator[T] {
	assertThat(it.current != nil, "cannot move iterator past end of tree")
	return Iterator[T]{tree: it.tree, current: successor(it.current)}
}

// Prev returns an iterator to the in-order predecessor. For End() this is the
// greatest element. Moving before the smallest element panics.
func (it Iterator[T]) Prev() Iterator[T] {
	var p *node[T]
	if it.current == nil {
		assertThat(it.tree != nil, "use of uninitialized iterator")
		p = findMax(it.tree.root)
	} else {
		p = predecessor(it.current)
	}
	assertThat(p != nil, "cannot move iterator before first element of tree")
	return Iterator[T]{tree: it.tree, current: p}
}

// Equal is true if both iterators denote the same position of the same tree.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.tree == other.tree && it.current == other.current
}

// AtEnd is true for End().
func (it Iterator[T]) AtEnd() bool {
	return it.current == nil
}
