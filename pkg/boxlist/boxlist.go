// Package boxlist implements a singly linked list where every node exclusively owns its successor.
//
// Only the list handle points at the head node, and only the previous node points at any other node.
// The tail is not tracked, so operations on the back of the list walk the whole chain.
package boxlist

import (
	"iter"
	"slices"

	"go.llib.dev/singly/port/chainlist"
)

// List is a singly linked list with an exclusively owned chain.
// The zero value is an empty list ready to use.
type List[T any] struct {
	head   *node[T]
	length int
}

var _ chainlist.List[any] = (*List[any])(nil)

func New[T any]() *List[T] {
	return &List[T]{}
}

// From creates a list that holds the given values in the same order.
func From[T any](vs ...T) *List[T] {
	return FromSeq(slices.Values(vs))
}

// FromSeq creates a list by appending the values of the sequence in order.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	var (
		l    = New[T]()
		last *node[T]
	)
	for v := range seq {
		n := &node[T]{value: v}
		if last == nil {
			l.head = n
		} else {
			last.next = n
		}
		last = n
		l.length++
	}
	return l
}

// Len returns the number of elements in the list
func (l *List[T]) Len() int {
	return l.length
}

func (l *List[T]) IsEmpty() bool {
	return l.length == 0
}

func (l *List[T]) PushHead(v T) {
	l.head = &node[T]{value: v, next: l.head}
	l.length++
}

// PushBack walks to the last node, since the tail is not tracked.
func (l *List[T]) PushBack(v T) {
	if l.head == nil {
		l.PushHead(v)
		return
	}
	l.nodeAt(l.length - 1).insertAfter(v)
	l.length++
}

func (l *List[T]) PopHead() (T, error) {
	if l.head == nil {
		var zero T
		return zero, chainlist.ErrEmptyList
	}
	first := l.head
	l.head = first.next
	first.next = nil
	l.length--
	return first.value, nil
}

func (l *List[T]) PopBack() (T, error) {
	if l.length <= 1 {
		return l.PopHead()
	}
	v, err := l.nodeAt(l.length - 2).removeAfter()
	if err != nil {
		return v, err
	}
	l.length--
	return v, nil
}

func (l *List[T]) Insert(at int, v T) error {
	if at < 0 || l.length < at {
		return chainlist.ErrIndexOutOfRange.F("insert at %d, length is %d", at, l.length)
	}
	if at == 0 {
		l.PushHead(v)
		return nil
	}
	l.nodeAt(at - 1).insertAfter(v)
	l.length++
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
	v, err := l.nodeAt(at - 1).removeAfter()
	if err != nil {
		return zero, err
	}
	l.length--
	return v, nil
}

func (l *List[T]) Get(index int) (T, bool) {
	if index < 0 || l.length <= index {
		var zero T
		return zero, false
	}
	return l.nodeAt(index).value, true
}

func (l *List[T]) IndicesFunc(match func(T) bool) []int {
	var (
		out   []int
		index int
	)
	for n := l.head; n != nil; n = n.next {
		if match(n.value) {
			out = append(out, index)
		}
		index++
	}
	return out
}

// Clear unlinks every node of the chain.
func (l *List[T]) Clear() {
	for l.head != nil {
		n := l.head
		l.head = n.next
		n.next = nil
	}
	l.length = 0
}

func (l *List[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
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
		for n := l.head; n != nil; n = n.next {
			if !yield(&n.value) {
				return
			}
		}
	}
}

func (l *List[T]) Drain() iter.Seq[T] {
	head := l.head
	l.head = nil
	l.length = 0
	return func(yield func(T) bool) {
		for head != nil {
			n := head
			head = n.next
			n.next = nil
			if !yield(n.value) {
				return
			}
		}
	}
}

func (l *List[T]) ToSlice() []T {
	var vs []T
	for v := range l.Iter() {
		vs = append(vs, v)
	}
	return vs
}

// Clone returns an independent list holding the same values.
func (l *List[T]) Clone() *List[T] {
	return FromSeq(l.Iter())
}

func (l *List[T]) String() string {
	return chainlist.Format(l.Iter())
}

// nodeAt walks index hops from the head.
// The caller guarantees that 0 <= index < l.length.
func (l *List[T]) nodeAt(index int) *node[T] {
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}
