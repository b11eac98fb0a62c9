/*
Package containers is the root of a small collection of generic container types.

	arraylist    dynamic array with amortized constant-time append
	linkedlist   doubly-linked list with sentinel nodes and bidirectional iterators
	bstree       unbalanced binary search tree with pre-, in- and post-order traversal
	maybe        optional values, returned by queries on possibly empty containers

All containers are plain, single-threaded data structures. Each container owns its
elements exclusively; Clone creates an independent deep copy, Move transfers
ownership and leaves the source empty.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package containers
