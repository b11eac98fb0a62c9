package bstree

import (
	"fmt"

	"github.com/npillmayer/containers/maybe"
	"github.com/xlab/treeprint"
	"golang.org/x/exp/constraints"
)

// node is the building block of a tree. A node owns its children; the parent
// link is a structural back-reference for navigation only.
type node[T any] struct {
	element T
	left    *node[T]
	right   *node[T]
	parent  *node[T]
}

// Tree is an unbalanced binary search tree.
//
// Trees have to be created by New or NewFunc; the zero value has no ordering
// and cannot hold elements.
type Tree[T any] struct {
	root *node[T]
	less func(a, b T) bool
	size int
}

// New creates an empty tree for elements ordered by `<`.
func New[T constraints.Ordered]() *Tree[T] {
	return NewFunc(func(a, b T) bool {
		return a < b
	})
}

// NewFunc creates an empty tree for elements ordered by less, which has to be
// a strict weak ordering. Elements a and b are considered equal if neither
// less(a, b) nor less(b, a) holds.
func NewFunc[T any](less func(a, b T) bool) *Tree[T] {
	assertThat(less != nil, "ordering function may not be nil")
	return &Tree[T]{less: less}
}

func (t *Tree[T]) ordering() func(a, b T) bool {
	assertThat(t.less != nil, "tree has no ordering; create trees with New or NewFunc")
	return t.less
}

// --- Queries ---------------------------------------------------------------

// Size returns the number of elements in the tree.
func (t *Tree[T]) Size() int {
	return t.size
}

func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Contains is true if an element equal to value is present.
func (t *Tree[T]) Contains(value T) bool {
	return t.find(value) != nil
}

// Find returns an iterator to the element equal to value, or End() if no such
// element is present.
func (t *Tree[T]) Find(value T) Iterator[T] {
	return Iterator[T]{tree: t, current: t.find(value)}
}

func (t *Tree[T]) find(value T) *node[T] {
	less := t.ordering()
	current := t.root
	for current != nil {
		switch {
		case less(value, current.element):
			current = current.left
		case less(current.element, value):
			current = current.right
		default:
			return current
		}
	}
	return nil
}

// Min returns the smallest element, if any.
func (t *Tree[T]) Min() maybe.Maybe[T] {
	if n := findMin(t.root); n != nil {
		return maybe.Just(n.element)
	}
	return maybe.Nothing[T]()
}

// Max returns the greatest element, if any.
func (t *Tree[T]) Max() maybe.Maybe[T] {
	if n := findMax(t.root); n != nil {
		return maybe.Just(n.element)
	}
	return maybe.Nothing[T]()
}

// Height returns the number of nodes on the longest path from the root to a leaf.
// The empty tree has height 0.
func (t *Tree[T]) Height() int {
	type entry struct {
		n     *node[T]
		depth int
	}
	h := 0
	stack := []entry{{t.root, 1}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.n == nil {
			continue
		}
		h = max(h, e.depth)
		stack = append(stack, entry{e.n.left, e.depth + 1}, entry{e.n.right, e.depth + 1})
	}
	return h
}

// --- Modification ----------------------------------------------------------

// Insert adds value to the tree. If an equal element is already present, the
// tree is left unchanged and Insert returns false.
func (t *Tree[T]) Insert(value T) bool {
	less := t.ordering()
	link, parent := &t.root, (*node[T])(nil)
	for *link != nil {
		current := *link
		switch {
		case less(value, current.element):
			link = &current.left
		case less(current.element, value):
			link = &current.right
		default:
			return false // duplicate
		}
		parent = current
	}
	*link = &node[T]{element: value, parent: parent}
	t.size++
	if parent == nil {
		tracer().Debugf("bstree: inserted %v as root", value)
	} else {
		tracer().Debugf("bstree: inserted %v below %v", value, parent.element)
	}
	return true
}

// Remove deletes the element equal to value. If no such element is present,
// the tree is left unchanged and Remove returns false.
//
// A node with two children is not unlinked itself: it receives the element of
// its in-order successor, and the successor's node is removed instead.
// Iterators pointing to either of these nodes are invalidated.
func (t *Tree[T]) Remove(value T) bool {
	less := t.ordering()
	link := &t.root
	for *link != nil {
		current := *link
		switch {
		case less(value, current.element):
			link = &current.left
		case less(current.element, value):
			link = &current.right
		case current.left != nil && current.right != nil:
			succ := findMin(current.right)
			tracer().Debugf("bstree: removing %v, replaced by successor %v", current.element, succ.element)
			current.element = succ.element
			value = succ.element // continue by removing the successor from the right subtree
			link = &current.right
		default:
			t.splice(link)
			return true
		}
	}
	return false
}

// splice unlinks the node at *link, which has at most one child. The child takes
// over the node's position.
func (t *Tree[T]) splice(link **node[T]) {
	old := *link
	assertThat(old.left == nil || old.right == nil, "splice of node with two children")
	child := old.left
	if child == nil {
		child = old.right
	}
	if child != nil {
		child.parent = old.parent
	}
	*link = child
	old.left, old.right, old.parent = nil, nil, nil
	t.size--
	tracer().Debugf("bstree: removed node %v", old.element)
}

// Clear removes all elements. Nodes are detached bottom-up, so iterators still
// referring to them will not reach elements of the tree.
func (t *Tree[T]) Clear() {
	walkPostOrder(t.root, func(n *node[T]) bool {
		n.left, n.right, n.parent = nil, nil, nil
		return true
	})
	t.root = nil
	t.size = 0
}

// --- Copy and move ---------------------------------------------------------

// Clone returns a deep copy of t with the same shape. Elements are copied by
// assignment.
func (t *Tree[T]) Clone() *Tree[T] {
	c := &Tree[T]{less: t.less, size: t.size}
	if t.root == nil {
		return c
	}
	type pair struct{ src, dst *node[T] }
	c.root = &node[T]{element: t.root.element}
	stack := []pair{{t.root, c.root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.src.left != nil {
			p.dst.left = &node[T]{element: p.src.left.element, parent: p.dst}
			stack = append(stack, pair{p.src.left, p.dst.left})
		}
		if p.src.right != nil {
			p.dst.right = &node[T]{element: p.src.right.element, parent: p.dst}
			stack = append(stack, pair{p.src.right, p.dst.right})
		}
	}
	tracer().Debugf("bstree: cloned tree of %d nodes", c.size)
	return c
}

// CopyFrom replaces the contents and the ordering of t by those of rhs.
func (t *Tree[T]) CopyFrom(rhs *Tree[T]) {
	if t == rhs {
		return
	}
	*t = *rhs.Clone()
}

// Move transfers all elements of t to a new tree, which is returned.
// t is left empty, keeps its ordering and remains usable.
func (t *Tree[T]) Move() *Tree[T] {
	m := &Tree[T]{root: t.root, less: t.less, size: t.size}
	t.root, t.size = nil, 0
	return m
}

// --- Navigation helpers ----------------------------------------------------

// findMin returns the leftmost node of a subtree, or nil for an empty subtree.
func findMin[T any](current *node[T]) *node[T] {
	if current == nil {
		return nil
	}
	for current.left != nil {
		current = current.left
	}
	return current
}

func findMax[T any](current *node[T]) *node[T] {
	if current == nil {
		return nil
	}
	for current.right != nil {
		current = current.right
	}
	return current
}

// successor returns the in-order successor of a node, or nil for the maximum.
func successor[T any](current *node[T]) *node[T] {
	if current.right != nil {
		return findMin(current.right)
	}
	for current.parent != nil && current == current.parent.right {
		current = current.parent
	}
	return current.parent
}

// predecessor returns the in-order predecessor of a node, or nil for the minimum.
func predecessor[T any](current *node[T]) *node[T] {
	if current.left != nil {
		return findMax(current.left)
	}
	for current.parent != nil && current == current.parent.left {
		current = current.parent
	}
	return current.parent
}

// --- Debugging -------------------------------------------------------------

// String renders the shape of the tree, marking children as L(eft) or R(ight).
func (t *Tree[T]) String() string {
	if t.root == nil {
		return EmptyTreeMarker
	}
	printer := treeprint.NewWithRoot(fmt.Sprintf("%v", t.root.element))
	addChildren(printer, t.root)
	return printer.String()
}

func addChildren[T any](branch treeprint.Tree, n *node[T]) {
	if n.left != nil {
		addChildren(branch.AddMetaBranch("L", fmt.Sprintf("%v", n.left.element)), n.left)
	}
	if n.right != nil {
		addChildren(branch.AddMetaBranch("R", fmt.Sprintf("%v", n.right.element)), n.right)
	}
}
