package linkedlist

import (
	"errors"
	"iter"
)

var ErrUnsupportedOperation = errors.New("list: invalid operation for sorted list")

// SortedList keeps its elements in ascending order under the CompareFunc
// given to NewSortedList. Elements can only be inserted through Add.
//
// The comparator doubles as the equality test for Remove and Contains: two
// elements are equal exactly when compare returns 0, so it must be a total
// order consistent with the equality callers expect.
type SortedList[T any] struct {
	c       chain[T]
	compare CompareFunc[T]
}

func NewSortedList[T any](compare CompareFunc[T]) *SortedList[T] {
	if compare == nil {
		panic("linkedlist: nil CompareFunc")
	}
	return &SortedList[T]{compare: compare}
}

func (this *SortedList[T]) Len() int {
	return this.c.size
}

func (this *SortedList[T]) IsEmpty() bool {
	return this.c.size == 0
}

func (this *SortedList[T]) GetFirst() (T, bool) {
	return this.c.first()
}

func (this *SortedList[T]) GetLast() (T, bool) {
	return this.c.last()
}

func (this *SortedList[T]) RetrieveFirstElement() (T, bool) {
	return this.c.popFront()
}

func (this *SortedList[T]) RetrieveLastElement() (T, bool) {
	return this.c.popBack()
}

func (this *SortedList[T]) Clear() {
	this.c.clear()
}

// Add inserts item before the first element that is not less than it, so a
// new item lands ahead of any equal elements already present.
func (this *SortedList[T]) Add(item T) *SortedList[T] {
	if this.c.tail == nil || this.compare(item, this.c.tail.value) > 0 {
		this.c.pushBack(item)
		return this
	}
	var prev *node[T]
	for n := this.c.head; n != nil; n = n.next {
		if this.compare(item, n.value) <= 0 {
			this.c.insertAfter(prev, item)
			return this
		}
		prev = n
	}
	this.c.pushBack(item)
	return this
}

// Remove deletes every element x with compare(target, x) == 0.
func (this *SortedList[T]) Remove(target T) *SortedList[T] {
	this.c.removeIf(equalTo(target, this.compare))
	return this
}

// Contains reports whether an element equal to item is present. The scan
// stops at the first element greater than item.
func (this *SortedList[T]) Contains(item T) bool {
	for n := this.c.head; n != nil; n = n.next {
		switch c := this.compare(item, n.value); {
		case c == 0:
			return true
		case c < 0:
			return false
		}
	}
	return false
}

// AddToEnd always fails: appending without comparing could break the order.
// Use Add.
func (this *SortedList[T]) AddToEnd(T) error {
	return ErrUnsupportedOperation
}

// AddToFront always fails for the same reason as AddToEnd.
func (this *SortedList[T]) AddToFront(T) error {
	return ErrUnsupportedOperation
}

func (this *SortedList[T]) All() iter.Seq[T] {
	return this.c.all()
}

func (this *SortedList[T]) Iterator() *Iterator[T] {
	return this.c.iterator()
}

func (this *SortedList[T]) Values() []T {
	return this.c.values()
}

func (this *SortedList[T]) String() string {
	return this.c.string()
}
