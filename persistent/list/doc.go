/*
Package list implements an immutable persistent singly-linked list.

A list is a value wrapping a pointer to its first cell. Cells are never modified once they
are created. Prepending a value to a list creates one new cell which links to the first cell of
the original list, so both lists share all of the original's cells:

    l1 := list.New[int]().Prepend(1)   // (1)
    l2 := l1.Prepend(2)                // (2 1)
    l3 := l2.Prepend(3)                // (3 2 1)
    l4 := l2.Prepend(4)                // (4 2 1), sharing (2 1) with l3

Tail drops the first cell in the same manner, without copying. Cells which are no longer
reachable from any list are reclaimed by the garbage collector.

As no operation ever modifies a cell, lists may be shared between goroutines without any
locking.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fpds.list'.
func tracer() tracing.Trace {
	return tracing.Select("fpds.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
