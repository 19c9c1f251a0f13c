package linkedlist

import (
	"errors"
)

var (
	ErrEmpty       = errors.New("queue: queue is empty")
	ErrOutOfBounds = errors.New("queue: ID is outside range of queue")
)

type Item[T any] struct {
	ID    uint64
	Value T
}

// Standard FIFO (fist in, first out) queue
type Queue[T any] struct {
	items *List[*Item[T]]
	head  uint64
	tail  uint64
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{items: New[*Item[T]]()}
}

func (q *Queue[T]) Length() uint64 {
	return q.tail - q.head
}

// IDs are handed out in enqueue order, so the live range is (head, tail].
func (q *Queue[T]) getItemByID(id uint64) (*Item[T], error) {
	if q.Length() == 0 {
		return nil, ErrEmpty
	} else if id <= q.head || id > q.tail {
		return nil, ErrOutOfBounds
	}
	for item := range q.items.All() {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, ErrOutOfBounds
}

func (q *Queue[T]) Enqueue(value T) *Item[T] {
	item := &Item[T]{ID: q.tail + 1, Value: value}
	q.items.AddToEnd(item)
	q.tail++
	return item
}

func (q *Queue[T]) Dequeue() (*Item[T], error) {
	item, ok := q.items.RetrieveFirstElement()
	if !ok {
		return nil, ErrEmpty
	}
	q.head++
	return item, nil
}

func (q *Queue[T]) Peek() (*Item[T], error) {
	return q.getItemByID(q.head + 1)
}

// Get returns a queued item without removing it.
func (q *Queue[T]) Get(id uint64) (*Item[T], error) {
	return q.getItemByID(id)
}

// Clear drops every queued item. IDs keep increasing afterwards.
func (q *Queue[T]) Clear() {
	q.items.Clear()
	q.head = q.tail
}
