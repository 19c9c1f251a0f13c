package linkedlist

import "iter"

// Iterator is a forward-only cursor over a list. It does not own the nodes
// it visits; adding or removing elements while an Iterator is in use leaves
// it in an undefined state.
type Iterator[T any] struct {
	cursor *node[T]
}

func (it *Iterator[T]) HasNext() bool {
	return it.cursor != nil
}

// Next returns the element under the cursor and advances. It returns false
// once the end of the list has been reached.
func (it *Iterator[T]) Next() (T, bool) {
	if it.cursor == nil {
		var zero T
		return zero, false
	}
	n := it.cursor
	it.cursor = n.next
	return n.value, true
}

func (c *chain[T]) iterator() *Iterator[T] {
	return &Iterator[T]{cursor: c.head}
}

func (c *chain[T]) all() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := c.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}
