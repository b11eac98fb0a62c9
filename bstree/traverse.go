package bstree

import (
	"fmt"
	"io"
	"iter"
	"os"
)

// EmptyTreeMarker is the single line printed for a tree without elements.
const EmptyTreeMarker = "Empty Tree"

// Print writes the elements in pre-order (node, left, right), one per line.
// If w is nil, output goes to os.Stdout.
func (t *Tree[T]) Print(w io.Writer) error {
	return t.print(w, t.PreOrder())
}

// PrintInOrder writes the elements in ascending order, one per line.
// If w is nil, output goes to os.Stdout.
func (t *Tree[T]) PrintInOrder(w io.Writer) error {
	return t.print(w, t.InOrder())
}

// PrintPostOrder writes the elements in post-order (left, right, node), one per line.
// If w is nil, output goes to os.Stdout.
func (t *Tree[T]) PrintPostOrder(w io.Writer) error {
	return t.print(w, t.PostOrder())
}

func (t *Tree[T]) print(w io.Writer, elements iter.Seq[T]) error {
	if w == nil {
		w = os.Stdout
	}
	if t.IsEmpty() {
		_, err := fmt.Fprintln(w, EmptyTreeMarker)
		return err
	}
	for e := range elements {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return err
		}
	}
	return nil
}

// PreOrder iterates over the elements node first, then left subtree, then right subtree.
// The tree must not be modified during iteration.
func (t *Tree[T]) PreOrder() iter.Seq[T] {
	return elementsOf(t.root, walkPreOrder[T])
}

// InOrder iterates over the elements in ascending order.
// The tree must not be modified during iteration.
func (t *Tree[T]) InOrder() iter.Seq[T] {
	return elementsOf(t.root, walkInOrder[T])
}

// PostOrder iterates over the elements left subtree first, then right subtree, then node.
// The tree must not be modified during iteration.
func (t *Tree[T]) PostOrder() iter.Seq[T] {
	return elementsOf(t.root, walkPostOrder[T])
}

type walker[T any] func(*node[T], func(*node[T]) bool)

func elementsOf[T any](root *node[T], walk walker[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(root, func(n *node[T]) bool {
			return yield(n.element)
		})
	}
}

// The walkers below use an explicit stack instead of recursion, as the height of
// an unbalanced tree is not bounded. A visitor returning false stops the walk.

func walkPreOrder[T any](root *node[T], visit func(*node[T]) bool) {
	if root == nil {
		return
	}
	stack := []*node[T]{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(n) {
			return
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
}

func walkInOrder[T any](root *node[T], visit func(*node[T]) bool) {
	var stack []*node[T]
	current := root
	for current != nil || len(stack) > 0 {
		for current != nil {
			stack = append(stack, current)
			current = current.left
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(n) {
			return
		}
		current = n.right
	}
}

func walkPostOrder[T any](root *node[T], visit func(*node[T]) bool) {
	var stack []*node[T]
	var last *node[T] // most recently visited node
	current := root
	for current != nil || len(stack) > 0 {
		if current != nil {
			stack = append(stack, current)
			current = current.left
			continue
		}
		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			current = top.right
			continue
		}
		stack = stack[:len(stack)-1]
		last = top
		if !visit(top) {
			return
		}
	}
}
