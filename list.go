package linkedlist

import "iter"

// List is an unordered singly linked list that keeps references to both
// ends, so insertion at either end and removal at the front are O(1).
//
// The zero value is an empty list ready to use. A List is not safe for
// concurrent use.
type List[T any] struct {
	c chain[T]
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements in O(1).
func (l *List[T]) Len() int {
	return l.c.size
}

func (l *List[T]) IsEmpty() bool {
	return l.c.size == 0
}

// AddToEnd appends v and returns l.
func (l *List[T]) AddToEnd(v T) *List[T] {
	l.c.pushBack(v)
	return l
}

// AddToFront prepends v and returns l.
func (l *List[T]) AddToFront(v T) *List[T] {
	l.c.pushFront(v)
	return l
}

// GetFirst returns the head element without removing it. The boolean is
// false when the list is empty.
func (l *List[T]) GetFirst() (T, bool) {
	return l.c.first()
}

// GetLast returns the tail element without removing it.
func (l *List[T]) GetLast() (T, bool) {
	return l.c.last()
}

// RetrieveFirstElement removes and returns the head element.
func (l *List[T]) RetrieveFirstElement() (T, bool) {
	return l.c.popFront()
}

// RetrieveLastElement removes and returns the tail element. The list has no
// back links, so finding the new tail costs a full traversal.
func (l *List[T]) RetrieveLastElement() (T, bool) {
	return l.c.popBack()
}

// Remove deletes every element x for which cmp(target, x) == 0 and returns l.
// Passing a nil cmp panics.
func (l *List[T]) Remove(target T, cmp CompareFunc[T]) *List[T] {
	l.c.removeIf(equalTo(target, cmp))
	return l
}

func (l *List[T]) Clear() {
	l.c.clear()
}

// All returns an iterator over the elements from head to tail. Each call
// starts again at the head.
func (l *List[T]) All() iter.Seq[T] {
	return l.c.all()
}

func (l *List[T]) Iterator() *Iterator[T] {
	return l.c.iterator()
}

// Values copies the elements into a new slice in traversal order.
func (l *List[T]) Values() []T {
	return l.c.values()
}

func (l *List[T]) String() string {
	return l.c.string()
}
