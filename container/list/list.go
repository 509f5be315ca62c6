// Package list contains the implementation of a type-safe, generic,
// singly-ended queue backed by a doubly-linked list.
//
// Values are pushed at the back of the list and popped from the front:
//
//	var q list.List[int]
//	q.PushBack(1)
//	q.PushBack(2)
//
//	for q.Len() > 0 {
//		v, _ := q.PopFront()
//		...
//	}
//
// The zero-value is a valid, empty list. Lists are not safe to use
// concurrently from multiple goroutines.
package list

type element[T any] struct {
	value T
	prev  *element[T]
	next  *element[T]
}

// List values are FIFO containers supporting insertion at the back and
// removal at the front in O(1).
type List[T any] struct {
	head *element[T]
	tail *element[T]
	size int
}

// Len returns the number of values in the list.
func (list *List[T]) Len() int { return list.size }

// PushBack inserts value at the back of the list.
func (list *List[T]) PushBack(value T) {
	e := &element[T]{value: value}
	if list.tail == nil {
		list.head = e
	} else {
		e.prev = list.tail
		list.tail.next = e
	}
	list.tail = e
	list.size++
}

// PopFront removes the value at the front of the list and returns it. The
// boolean is false if the list was empty.
func (list *List[T]) PopFront() (value T, ok bool) {
	if e := list.head; e != nil {
		list.remove(e)
		value, ok = e.value, true
	}
	return value, ok
}

func (list *List[T]) remove(e *element[T]) {
	prev := e.prev
	next := e.next

	e.prev = nil
	e.next = nil

	if prev != nil {
		prev.next = next
	}

	if next != nil {
		next.prev = prev
	}

	if e == list.head {
		list.head = next
	}

	if e == list.tail {
		list.tail = prev
	}

	list.size--
}
