// Package arenalist implements a singly linked list whose nodes live in a slot arena.
//
// Links are slot references instead of pointers.
// Removed slots are zeroed and go to a free list, so later insertions reuse them.
// The list tracks its tail, which makes appending a constant time operation.
package arenalist

import (
	"iter"

	"go.llib.dev/singly/port/chainlist"
)

// ref is a 1-based slot reference, the zero ref means no node.
type ref int

const none ref = 0

type slot[T any] struct {
	value T
	next  ref
}

// List is a singly linked list backed by a slot arena.
// The zero value is an empty list ready to use.
type List[T any] struct {
	slots  []slot[T]
	free   ref
	head   ref
	tail   ref
	length int
}

var _ chainlist.List[any] = (*List[any])(nil)

func New[T any]() *List[T] {
	return &List[T]{}
}

func From[T any](vs ...T) *List[T] {
	l := New[T]()
	l.Grow(len(vs))
	for _, v := range vs {
		l.PushBack(v)
	}
	return l
}

func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	for v := range seq {
		l.PushBack(v)
	}
	return l
}

// Grow reserves room for n more nodes without further allocation.
func (l *List[T]) Grow(n int) {
	if n <= 0 {
		return
	}
	var freed int
	for r := l.free; r != none; r = l.at(r).next {
		freed++
	}
	if need := n - freed; cap(l.slots)-len(l.slots) < need {
		slots := make([]slot[T], len(l.slots), len(l.slots)+need)
		copy(slots, l.slots)
		l.slots = slots
	}
}

func (l *List[T]) Len() int {
	return l.length
}

func (l *List[T]) IsEmpty() bool {
	return l.length == 0
}

func (l *List[T]) PushHead(v T) {
	r := l.alloc(v, l.head)
	l.head = r
	if l.tail == none {
		l.tail = r
	}
	l.length++
}

func (l *List[T]) PushBack(v T) {
	if l.tail == none {
		l.PushHead(v)
		return
	}
	l.tail = l.insertAfter(l.tail, v)
	l.length++
}

func (l *List[T]) PopHead() (T, error) {
	if l.head == none {
		var zero T
		return zero, chainlist.ErrEmptyList
	}
	r := l.head
	l.head = l.at(r).next
	if l.head == none {
		l.tail = none
	}
	l.length--
	return l.release(r), nil
}

// PopBack walks to the slot before the tail, since a singly linked slot cannot reach its predecessor.
func (l *List[T]) PopBack() (T, error) {
	if l.length <= 1 {
		return l.PopHead()
	}
	return l.removeAfterCounted(l.refAt(l.length - 2))
}

func (l *List[T]) Insert(at int, v T) error {
	if at < 0 || l.length < at {
		return chainlist.ErrIndexOutOfRange.F("insert at %d, length is %d", at, l.length)
	}
	switch at {
	case 0:
		l.PushHead(v)
	case l.length:
		l.PushBack(v)
	default:
		l.insertAfter(l.refAt(at-1), v)
		l.length++
	}
	return nil
}

func (l *List[T]) Remove(at int) (T, error) {
	var zero T
	if l.length == 0 {
		return zero, chainlist.ErrEmptyList.F("remove at %d", at)
	}
	if at < 0 || l.length <= at {
		return zero, chainlist.ErrIndexOutOfRange.F("remove at %d, length is %d", at, l.length)
	}
	if at == 0 {
		return l.PopHead()
	}
	return l.removeAfterCounted(l.refAt(at - 1))
}

func (l *List[T]) removeAfterCounted(prev ref) (T, error) {
	wasTail := l.at(prev).next == l.tail
	v, err := l.removeAfter(prev)
	if err != nil {
		return v, err
	}
	if wasTail {
		l.tail = prev
	}
	l.length--
	return v, nil
}

func (l *List[T]) Get(index int) (T, bool) {
	if index < 0 || l.length <= index {
		var zero T
		return zero, false
	}
	return l.at(l.refAt(index)).value, true
}

func (l *List[T]) IndicesFunc(match func(T) bool) []int {
	var out []int
	var index int
	for r := l.head; r != none; r = l.at(r).next {
		if match(l.at(r).value) {
			out = append(out, index)
		}
		index++
	}
	return out
}

// Clear drops the whole arena.
func (l *List[T]) Clear() {
	*l = List[T]{}
}

func (l *List[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for r := l.head; r != none; r = l.at(r).next {
			if !yield(l.at(r).value) {
				return
			}
		}
	}
}

func (l *List[T]) IterMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if l == nil {
			return
		}
		for r := l.head; r != none; r = l.at(r).next {
			if !yield(&l.at(r).value) {
				return
			}
		}
	}
}

// Drain moves the arena out of the list.
// Each slot is zeroed once its value is yielded.
func (l *List[T]) Drain() iter.Seq[T] {
	detached := *l
	*l = List[T]{}
	return func(yield func(T) bool) {
		for detached.head != none {
			r := detached.head
			detached.head = detached.at(r).next
			if !yield(detached.release(r)) {
				return
			}
		}
	}
}

func (l *List[T]) ToSlice() []T {
	if l.length == 0 {
		return nil
	}
	vs := make([]T, 0, l.length)
	for v := range l.Iter() {
		vs = append(vs, v)
	}
	return vs
}

func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	c.Grow(l.length)
	for v := range l.Iter() {
		c.PushBack(v)
	}
	return c
}

func (l *List[T]) String() string {
	return chainlist.Format(l.Iter())
}

func (l *List[T]) at(r ref) *slot[T] {
	return &l.slots[r-1]
}

// refAt walks index hops from the head.
// The caller guarantees that 0 <= index < l.length.
func (l *List[T]) refAt(index int) ref {
	r := l.head
	for i := 0; i < index; i++ {
		r = l.at(r).next
	}
	return r
}
