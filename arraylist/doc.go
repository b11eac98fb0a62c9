/*
Package arraylist implements a dynamic array, designed for use-cases similar to
appending to Go slices, but with explicit control over growth.

An ArrayList owns contiguous storage of a fixed capacity. Appending to a full
list reallocates storage to 1.5 times the old capacity (plus one) and moves all
elements over, which yields amortized constant time for PushBack. Removing
elements never shrinks the storage.

ArrayLists are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package arraylist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'containers.arraylist'.
func tracer() tracing.Trace {
	return tracing.Select("containers.arraylist")
}
