// Package chainstack is a LIFO stack composed over any chainlist.List.
package chainstack

import (
	"iter"

	"go.llib.dev/singly/port/chainlist"
)

// List is the subset of chainlist.List a Stack needs.
type List[T any] interface {
	chainlist.Sizer
	chainlist.Iterable[T]
	PushHead(v T)
	PopHead() (T, error)
	IsEmpty() bool
}

var _ List[any] = (chainlist.List[any])(nil)

type Stack[T any] struct {
	list List[T]
}

// New makes a Stack that keeps its values in the head end of list.
func New[T any](list List[T]) *Stack[T] {
	return &Stack[T]{list: list}
}

func (s *Stack[T]) Push(v T) {
	s.list.PushHead(v)
}

// Pop returns chainlist.ErrEmptyList when the stack has no values.
func (s *Stack[T]) Pop() (T, error) {
	return s.list.PopHead()
}

func (s *Stack[T]) Peek() (T, bool) {
	for v := range s.list.Iter() {
		return v, true
	}
	var zero T
	return zero, false
}

func (s *Stack[T]) Len() int {
	return s.list.Len()
}

func (s *Stack[T]) IsEmpty() bool {
	return s.list.IsEmpty()
}

// Values yields from the top of the stack to the bottom.
func (s *Stack[T]) Values() iter.Seq[T] {
	return s.list.Iter()
}
