package basic

import (
	"github.com/emirpasic/gods/v2/containers"
)

var (
	_ containers.ReverseIteratorWithIndex[int] = (*ArrayListIterator[int])(nil)
	_ containers.ReverseIteratorWithIndex[int] = (*LinkedListIterator[int])(nil)
)

// ArrayListIterator is a stateful cursor over an ArrayList. Index -1 is
// before the first element and Size() is past the last one.
type ArrayListIterator[E any] struct {
	list  *ArrayList[E]
	index int
}

func (it *ArrayListIterator[E]) Next() bool {
	if it.index < it.list.size {
		it.index++
	}
	return it.index < it.list.size
}

func (it *ArrayListIterator[E]) Prev() bool {
	if it.index >= 0 {
		it.index--
	}
	return it.index >= 0
}

// Value returns the element under the cursor, or the zero value when the
// cursor is outside the list.
func (it *ArrayListIterator[E]) Value() E {
	if it.index < 0 || it.index >= it.list.size {
		var zero E
		return zero
	}
	return it.list.data[it.index]
}

func (it *ArrayListIterator[E]) Index() int {
	return it.index
}

func (it *ArrayListIterator[E]) Begin() {
	it.index = -1
}

func (it *ArrayListIterator[E]) End() {
	it.index = it.list.size
}

func (it *ArrayListIterator[E]) First() bool {
	it.Begin()
	return it.Next()
}

func (it *ArrayListIterator[E]) Last() bool {
	it.End()
	return it.Prev()
}

// NextTo advances to the next element accepted by f.
func (it *ArrayListIterator[E]) NextTo(f func(index int, value E) bool) bool {
	for it.Next() {
		if f(it.index, it.Value()) {
			return true
		}
	}
	return false
}

// PrevTo moves back to the previous element accepted by f.
func (it *ArrayListIterator[E]) PrevTo(f func(index int, value E) bool) bool {
	for it.Prev() {
		if f(it.index, it.Value()) {
			return true
		}
	}
	return false
}

// LinkedListIterator walks a LinkedList while tracking the current node and
// its logical index, so stepping is O(1) and nodes never leave the package.
type LinkedListIterator[T any] struct {
	list  *LinkedList[T]
	node  *node[T]
	index int
}

func (it *LinkedListIterator[T]) Next() bool {
	if it.index >= it.list.size {
		return false
	}
	it.index++
	switch {
	case it.index == it.list.size:
		it.node = nil
		return false
	case it.index == 0 || it.node == nil:
		it.node = it.list.getNode(it.index)
	default:
		it.node = it.node.next
	}
	return true
}

func (it *LinkedListIterator[T]) Prev() bool {
	if it.index < 0 {
		return false
	}
	it.index--
	switch {
	case it.index < 0:
		it.node = nil
		return false
	case it.index == it.list.size-1 || it.node == nil:
		it.node = it.list.getNode(it.index)
	default:
		it.node = it.node.prev
	}
	return true
}

func (it *LinkedListIterator[T]) Value() T {
	if it.node == nil {
		var zero T
		return zero
	}
	return it.node.data
}

func (it *LinkedListIterator[T]) Index() int {
	return it.index
}

func (it *LinkedListIterator[T]) Begin() {
	it.node = nil
	it.index = -1
}

func (it *LinkedListIterator[T]) End() {
	it.node = nil
	it.index = it.list.size
}

func (it *LinkedListIterator[T]) First() bool {
	it.Begin()
	return it.Next()
}

func (it *LinkedListIterator[T]) Last() bool {
	it.End()
	return it.Prev()
}

func (it *LinkedListIterator[T]) NextTo(f func(index int, value T) bool) bool {
	for it.Next() {
		if f(it.index, it.node.data) {
			return true
		}
	}
	return false
}

func (it *LinkedListIterator[T]) PrevTo(f func(index int, value T) bool) bool {
	for it.Prev() {
		if f(it.index, it.node.data) {
			return true
		}
	}
	return false
}
