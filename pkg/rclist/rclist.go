// Package rclist implements a singly linked list with a shared chain and interior mutability.
//
// The last node is referenced both by its predecessor and by the tail of the list,
// so appending is a constant time operation.
// Every access is checked at runtime against the borrow discipline of the list:
// readers may overlap each other, while a writer needs exclusive access.
// Structural changes and IterMut borrow the whole list exclusively,
// and each yielded node is also borrowed exclusively for the time of the yield.
// A conflicting access panics with ErrAlreadyBorrowed or ErrAlreadyMutablyBorrowed.
package rclist

import (
	"iter"
	"slices"

	"go.llib.dev/singly/port/chainlist"
)

// List is a singly linked list with head and tail tracking.
// The zero value is an empty list ready to use.
type List[T any] struct {
	flag   borrowFlag
	head   *node[T]
	tail   *node[T]
	length int
}

var _ chainlist.List[any] = (*List[any])(nil)

func New[T any]() *List[T] {
	return &List[T]{}
}

func From[T any](vs ...T) *List[T] {
	return FromSeq(slices.Values(vs))
}

func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	for v := range seq {
		l.PushBack(v)
	}
	return l
}

func (l *List[T]) Len() int {
	return l.length
}

func (l *List[T]) IsEmpty() bool {
	return l.length == 0
}

func (l *List[T]) PushHead(v T) {
	defer l.flag.borrowMut()()
	l.pushHead(v)
}

func (l *List[T]) pushHead(v T) {
	l.head = &node[T]{value: v, next: l.head}
	if l.tail == nil {
		l.tail = l.head
	}
	l.length++
}

func (l *List[T]) PushBack(v T) {
	defer l.flag.borrowMut()()
	l.pushBack(v)
}

func (l *List[T]) pushBack(v T) {
	if l.tail == nil {
		n := &node[T]{value: v}
		l.head, l.tail = n, n
	} else {
		l.tail = l.tail.insertAfter(v)
	}
	l.length++
}

func (l *List[T]) PopHead() (T, error) {
	defer l.flag.borrowMut()()
	return l.popHead()
}

func (l *List[T]) popHead() (T, error) {
	if l.head == nil {
		var zero T
		return zero, chainlist.ErrEmptyList
	}
	v, next := l.head.take()
	l.head = next
	if l.head == nil {
		l.tail = nil
	}
	l.length--
	return v, nil
}

// PopBack walks to the node before the tail, since a singly linked node cannot reach its predecessor.
func (l *List[T]) PopBack() (T, error) {
	defer l.flag.borrowMut()()
	if l.length <= 1 {
		return l.popHead()
	}
	return l.removeAfter(l.nodeAt(l.length - 2))
}

func (l *List[T]) Insert(at int, v T) error {
	defer l.flag.borrowMut()()
	if at < 0 || l.length < at {
		return chainlist.ErrIndexOutOfRange.F("insert at %d, length is %d", at, l.length)
	}
	switch at {
	case 0:
		l.pushHead(v)
	case l.length:
		l.pushBack(v)
	default:
		l.nodeAt(at - 1).insertAfter(v)
		l.length++
	}
	return nil
}

func (l *List[T]) Remove(at int) (T, error) {
	defer l.flag.borrowMut()()
	var zero T
	if l.length == 0 {
		return zero, chainlist.ErrEmptyList.F("remove at %d", at)
	}
	if at < 0 || l.length <= at {
		return zero, chainlist.ErrIndexOutOfRange.F("remove at %d, length is %d", at, l.length)
	}
	if at == 0 {
		return l.popHead()
	}
	return l.removeAfter(l.nodeAt(at - 1))
}

// removeAfter removes the successor of prev and moves the tail back to prev when the successor was the tail.
func (l *List[T]) removeAfter(prev *node[T]) (T, error) {
	wasTail := prev.successor() == l.tail
	v, err := prev.removeAfter()
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
	defer l.flag.borrow()()
	if index < 0 || l.length <= index {
		var zero T
		return zero, false
	}
	return l.nodeAt(index).load(), true
}

func (l *List[T]) IndicesFunc(match func(T) bool) []int {
	var (
		out   []int
		index int
	)
	for v := range l.Iter() {
		if match(v) {
			out = append(out, index)
		}
		index++
	}
	return out
}

func (l *List[T]) Clear() {
	defer l.flag.borrowMut()()
	for n := l.head; n != nil; {
		_, n = n.take()
	}
	l.head, l.tail, l.length = nil, nil, 0
}

// Iter holds a shared borrow on the list until the iteration ends.
func (l *List[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		defer l.flag.borrow()()
		for n := l.head; n != nil; {
			next, ok := n.visit(yield)
			if !ok {
				return
			}
			n = next
		}
	}
}

// IterMut holds an exclusive borrow on the list for the whole iteration,
// so no other access to the list is possible until it ends.
// The yielded pointer must not be retained after the iteration step.
func (l *List[T]) IterMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if l == nil {
			return
		}
		defer l.flag.borrowMut()()
		for n := l.head; n != nil; {
			next, ok := n.visitMut(yield)
			if !ok {
				return
			}
			n = next
		}
	}
}

func (l *List[T]) Drain() iter.Seq[T] {
	defer l.flag.borrowMut()()
	head := l.head
	l.head, l.tail, l.length = nil, nil, 0
	return func(yield func(T) bool) {
		for head != nil {
			var v T
			v, head = head.take()
			if !yield(v) {
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

func (l *List[T]) Clone() *List[T] {
	return FromSeq(l.Iter())
}

func (l *List[T]) String() string {
	return chainlist.Format(l.Iter())
}

// nodeAt moves a transient cursor index hops from the head.
// The caller guarantees that 0 <= index < l.length.
func (l *List[T]) nodeAt(index int) *node[T] {
	n := l.head
	for i := 0; i < index; i++ {
		n = n.successor()
	}
	return n
}
