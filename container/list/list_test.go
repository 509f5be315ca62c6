package list

import (
	"testing"
)

func TestPushBack(t *testing.T) {
	list := new(List[int])

	for i := 0; i < 10; i++ {
		list.PushBack(i)
	}

	assertList(t, list, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
}

func TestPopFront(t *testing.T) {
	list := new(List[int])
	values := [10]int{}

	for i := range values {
		values[i] = i
		list.PushBack(i)
	}

	for i, v := range values {
		got, ok := list.PopFront()
		if !ok {
			t.Fatalf("list was empty after %d pops", i)
		}
		if got != v {
			t.Errorf("wrong value popped from the front: got=%d want=%d", got, v)
		}
		if n := list.Len(); n != len(values)-(i+1) {
			t.Errorf("wrong list length: got=%d want=%d", n, len(values)-(i+1))
		}
	}

	if _, ok := list.PopFront(); ok {
		t.Error("popped a value from an empty list")
	}
	if list.head != nil || list.tail != nil {
		t.Error("list still references elements after popping all values")
	}
}

func TestInterleavedPushAndPop(t *testing.T) {
	list := new(List[int])

	list.PushBack(1)
	list.PushBack(2)
	if v, _ := list.PopFront(); v != 1 {
		t.Errorf("wrong value popped from the front: got=%d want=1", v)
	}
	list.PushBack(3)
	if v, _ := list.PopFront(); v != 2 {
		t.Errorf("wrong value popped from the front: got=%d want=2", v)
	}
	if v, _ := list.PopFront(); v != 3 {
		t.Errorf("wrong value popped from the front: got=%d want=3", v)
	}

	// The list is reusable once drained.
	list.PushBack(4)
	assertList(t, list, 4)
}

func assertList(t *testing.T, list *List[int], values ...int) {
	t.Helper()

	if n := list.Len(); n != len(values) {
		t.Errorf("wrong list length: got=%d want=%d", n, len(values))
	}

	i := 0
	for e := list.head; e != nil; e = e.next {
		if i >= len(values) {
			t.Fatalf("too many values in the list: got=%d want=%d", i+1, len(values))
		}
		if e.value != values[i] {
			t.Errorf("wrong value at index %d: got=%d want=%d", i, e.value, values[i])
		}
		i++
	}

	if i != len(values) {
		t.Errorf("not enough values in the list: got=%d want=%d", i, len(values))
	}

	i = len(values)
	for e := list.tail; e != nil; e = e.prev {
		i--
		if i < 0 {
			t.Fatal("too many values when iterating backward")
		}
		if e.value != values[i] {
			t.Errorf("wrong value at index %d when iterating backward: got=%d want=%d", i, e.value, values[i])
		}
	}
}
