/*
Package linkedlist implements a doubly-linked list bounded by two sentinel nodes.

Positions in a list are denoted by iterators. An iterator may point to any element
or to the end position (one past the last element), but never before the first
element. Insertion and erasure at an iterator position are O(1).

Iterators come in two flavours: ConstIterator allows reading and navigation,
Iterator additionally allows writing to the element it points to. Iterators are
plain values and stay valid until the node they point to is erased.
Using an invalidated iterator is a programming error; some of these errors are
caught and result in a panic, others are not detected.

	for it := list.Begin(); !it.Equal(list.End()); it = it.Next() {
		fmt.Println(it.Value())
	}

Lists are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package linkedlist

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'containers.linkedlist'.
func tracer() tracing.Trace {
	return tracing.Select("containers.linkedlist")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("linkedlist: "+msg, msgargs...)
		panic(msg)
	}
}
