package arraylist

import (
	"fmt"
	"iter"

	"github.com/npillmayer/containers/maybe"
)

// DefaultCapacity is the minimum capacity of a newly created list.
const DefaultCapacity = 16

// ArrayList is a dynamic array. Elements at positions [0, Size()) are valid,
// positions [Size(), Capacity()) hold no meaningful data.
//
// The zero value is an empty list without storage. It is ready to use and will
// allocate storage on the first PushBack.
type ArrayList[T any] struct {
	props
	size int
	data []T // len(data) is the capacity
}

type props struct {
	capacity int
}

// New creates an empty array list, with storage allocated for DefaultCapacity
// elements, if not overridden by option Capacity.
//
//     list := arraylist.New[string](arraylist.Capacity(100))
//
func New[T any](opts ...Option) *ArrayList[T] {
	p := props{capacity: DefaultCapacity}
	for _, option := range opts {
		p = option.config(p)
	}
	return &ArrayList[T]{
		props: p,
		data:  make([]T, p.capacity),
	}
}

// Option is a type to help initializing array lists at creation time.
type Option struct {
	config func(props) props
}

// Capacity is an option to pre-allocate storage for n elements. Values smaller than
// DefaultCapacity will be raised to DefaultCapacity.
func Capacity(n int) Option {
	conf := func(p props) props {
		if n < DefaultCapacity {
			n = DefaultCapacity
		}
		p.capacity = n
		return p
	}
	return Option{config: conf}
}

// --- API -------------------------------------------------------------------

// Size returns the number of elements in the list.
func (l *ArrayList[T]) Size() int {
	return l.size
}

// Capacity returns the number of elements the list can hold without reallocating.
func (l *ArrayList[T]) Capacity() int {
	return l.capacity
}

func (l *ArrayList[T]) IsEmpty() bool {
	return l.size == 0
}

// PushBack appends value at the end of the list, growing storage if necessary.
func (l *ArrayList[T]) PushBack(value T) {
	if l.size == l.capacity {
		l.reserve()
	}
	l.data[l.size] = value
	l.size++
}

// PopBack removes the last element. It returns ErrOutOfRange for an empty list.
// Storage is never released by PopBack.
func (l *ArrayList[T]) PopBack() error {
	if l.IsEmpty() {
		return fmt.Errorf("%w: pop from empty list", ErrOutOfRange)
	}
	l.size--
	var zero T
	l.data[l.size] = zero // do not keep references to dropped elements
	return nil
}

// Back returns the last element. It returns ErrOutOfRange for an empty list.
func (l *ArrayList[T]) Back() (T, error) {
	if l.IsEmpty() {
		var none T
		return none, fmt.Errorf("%w: no elements in list", ErrOutOfRange)
	}
	return l.data[l.size-1], nil
}

// Last returns the last element, if any.
func (l *ArrayList[T]) Last() maybe.Maybe[T] {
	if l.IsEmpty() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.data[l.size-1])
}

// At returns the element at position i.
func (l *ArrayList[T]) At(i int) (T, error) {
	if i < 0 || i >= l.size {
		var none T
		return none, fmt.Errorf("%w: index %d with size %d", ErrOutOfRange, i, l.size)
	}
	return l.data[i], nil
}

// Set replaces the element at position i.
func (l *ArrayList[T]) Set(i int, value T) error {
	if i < 0 || i >= l.size {
		return fmt.Errorf("%w: index %d with size %d", ErrOutOfRange, i, l.size)
	}
	l.data[i] = value
	return nil
}

// All iterates over positions and elements, front to back.
// The list must not be modified during iteration.
func (l *ArrayList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < l.size; i++ {
			if !yield(i, l.data[i]) {
				return
			}
		}
	}
}

// --- Copy and move ---------------------------------------------------------

// Clone returns a deep copy of l, with storage of the same capacity.
// Elements are copied by assignment.
func (l *ArrayList[T]) Clone() *ArrayList[T] {
	c := &ArrayList[T]{
		props: l.props,
		size:  l.size,
		data:  make([]T, l.capacity),
	}
	copy(c.data, l.data[:l.size])
	return c
}

// CopyFrom replaces the contents of l by a deep copy of rhs.
func (l *ArrayList[T]) CopyFrom(rhs *ArrayList[T]) {
	if l == rhs {
		return
	}
	*l = *rhs.Clone()
}

// Move transfers the storage of l to a new list, which is returned.
// l is left empty, without any storage, but remains usable.
func (l *ArrayList[T]) Move() *ArrayList[T] {
	m := &ArrayList[T]{props: l.props, size: l.size, data: l.data}
	*l = ArrayList[T]{}
	return m
}

// --- Internals -------------------------------------------------------------

// reserve grows storage to capacity*3/2 + 1, moving existing elements in order.
func (l *ArrayList[T]) reserve() {
	if l.size < l.capacity {
		return
	}
	newCapacity := l.capacity*3/2 + 1
	tracer().Debugf("arraylist: growing capacity %d -> %d", l.capacity, newCapacity)
	data := make([]T, newCapacity)
	copy(data, l.data[:l.size])
	l.data = data
	l.capacity = newCapacity
}
