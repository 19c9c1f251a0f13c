package linkedlist

import (
	"fmt"
	"strings"
)

// CompareFunc orders two elements: negative when a < b, zero when equal,
// positive when a > b.
type CompareFunc[T any] func(a, b T) int

type node[T any] struct {
	next  *node[T]
	value T
}

// chain owns the nodes of a singly linked list. A node is reachable only
// from its predecessor or from head.
type chain[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

func (c *chain[T]) pushBack(v T) {
	n := &node[T]{value: v}
	if c.tail == nil {
		c.head = n
	} else {
		c.tail.next = n
	}
	c.tail = n
	c.size++
}

func (c *chain[T]) pushFront(v T) {
	n := &node[T]{value: v, next: c.head}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
	c.size++
}

// insertAfter links v after prev, or at the front when prev is nil.
func (c *chain[T]) insertAfter(prev *node[T], v T) {
	if prev == nil {
		c.pushFront(v)
		return
	}
	if prev == c.tail {
		c.pushBack(v)
		return
	}
	prev.next = &node[T]{value: v, next: prev.next}
	c.size++
}

func (c *chain[T]) first() (T, bool) {
	if c.head == nil {
		var zero T
		return zero, false
	}
	return c.head.value, true
}

func (c *chain[T]) last() (T, bool) {
	if c.tail == nil {
		var zero T
		return zero, false
	}
	return c.tail.value, true
}

func (c *chain[T]) popFront() (T, bool) {
	if c.head == nil {
		var zero T
		return zero, false
	}
	n := c.head
	c.head = n.next
	if c.head == nil {
		c.tail = nil
	}
	n.next = nil
	c.size--
	return n.value, true
}

// popBack walks to the node preceding tail, so it is O(n).
func (c *chain[T]) popBack() (T, bool) {
	if c.tail == nil {
		var zero T
		return zero, false
	}
	n := c.tail
	if c.head == n {
		c.head, c.tail = nil, nil
		c.size--
		return n.value, true
	}
	prev := c.head
	for prev.next != n {
		prev = prev.next
	}
	prev.next = nil
	c.tail = prev
	c.size--
	return n.value, true
}

// removeIf unlinks every node whose value satisfies match in a single pass
// and returns how many were removed.
func (c *chain[T]) removeIf(match func(T) bool) int {
	var prev *node[T]
	removed := 0
	for cur := c.head; cur != nil; {
		next := cur.next
		if !match(cur.value) {
			prev = cur
			cur = next
			continue
		}
		if prev == nil {
			c.head = next
		} else {
			prev.next = next
		}
		if cur == c.tail {
			c.tail = prev
		}
		cur.next = nil
		removed++
		cur = next
	}
	c.size -= removed
	return removed
}

func (c *chain[T]) clear() {
	for c.head != nil {
		n := c.head
		c.head = n.next
		n.next = nil
	}
	c.tail = nil
	c.size = 0
}

func (c *chain[T]) values() []T {
	out := make([]T, 0, c.size)
	for n := c.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

func (c *chain[T]) string() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := c.head; n != nil; n = n.next {
		if n != c.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.value)
	}
	sb.WriteByte(']')
	return sb.String()
}

func equalTo[T any](target T, cmp CompareFunc[T]) func(T) bool {
	if cmp == nil {
		panic("linkedlist: nil CompareFunc")
	}
	return func(x T) bool {
		return cmp(target, x) == 0
	}
}
