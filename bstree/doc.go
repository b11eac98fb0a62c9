/*
Package bstree implements an unbalanced binary search tree.

A tree holds a set of distinct elements, ordered either by Go's `<` operator
(New) or by a client supplied ordering (NewFunc). Inserting an element already
present and removing an element not present are silent no-ops.

No balancing is performed: inserting elements in sorted order will degrade the tree
to a linear chain, making operations O(n). Traversal, modification and cloning do not
use recursion, so deep trees will not exhaust the goroutine stack.

Trees are not safe for concurrent use.

	tree := bstree.New[int]()
	for _, n := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(n)
	}
	tree.PrintInOrder(os.Stdout) // 1 3 4 5 7 8 9, one per line

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bstree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'containers.bstree'.
func tracer() tracing.Trace {
	return tracing.Select("containers.bstree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("bstree: "+msg, msgargs...)
		panic(msg)
	}
}
