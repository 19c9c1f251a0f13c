package linkedlist

// PriorityItem extends Item with a priority field
type PriorityItem[T any] struct {
	Item[T]
	Priority uint8
}

// comparePriority orders by priority, then by id so that items of equal
// priority leave in the order they arrived
func comparePriority[T any](a, b *PriorityItem[T]) int {
	switch {
	case a.Priority < b.Priority:
		return -1
	case a.Priority > b.Priority:
		return 1
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	}
	return 0
}

// PriorityQueue implements a priority queue on top of a SortedList.
// Lower Priority values are dequeued first.
type PriorityQueue[T any] struct {
	items *SortedList[*PriorityItem[T]]
	seq   uint64
}

func NewPriorityQueue[T any]() *PriorityQueue[T] {
	return &PriorityQueue[T]{items: NewSortedList(comparePriority[T])}
}

func (pq *PriorityQueue[T]) Length() uint64 {
	return uint64(pq.items.Len())
}

// EnqueueWithPriority adds an item to the queue with specified priority
func (pq *PriorityQueue[T]) EnqueueWithPriority(value T, priority uint8) *PriorityItem[T] {
	pq.seq++
	item := &PriorityItem[T]{
		Item:     Item[T]{ID: pq.seq, Value: value},
		Priority: priority,
	}
	pq.items.Add(item)
	return item
}

// Dequeue removes and returns the highest priority item
func (pq *PriorityQueue[T]) Dequeue() (*PriorityItem[T], error) {
	item, ok := pq.items.RetrieveFirstElement()
	if !ok {
		return nil, ErrEmpty
	}
	return item, nil
}

// Peek returns the highest priority item without removing it
func (pq *PriorityQueue[T]) Peek() (*PriorityItem[T], error) {
	item, ok := pq.items.GetFirst()
	if !ok {
		return nil, ErrEmpty
	}
	return item, nil
}

// Remove drops a queued item and reports whether it was present.
func (pq *PriorityQueue[T]) Remove(item *PriorityItem[T]) bool {
	if !pq.items.Contains(item) {
		return false
	}
	pq.items.Remove(item)
	return true
}
