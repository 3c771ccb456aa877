// Package chainlist defines the contract shared by the singly linked list implementations.
//
// Every implementation keeps the same invariants:
//   - Len() == 0 if and only if there is no head (and no tail where it is tracked)
//   - following the links from the head exactly Len()-1 times reaches the tail
//   - the chain is acyclic and every node has exactly one predecessor
//
// The implementations differ only in how the chain is owned:
// boxlist keeps an exclusive chain, rclist a shared chain with runtime checked borrows,
// and arenalist keeps its nodes in a slot arena referenced by index.
package chainlist

import (
	"fmt"
	"iter"
	"strings"

	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	// ErrEmptyList is returned when a pop or remove like operation is made on a list without elements.
	ErrEmptyList errorkit.Error = "list is empty"
	// ErrIndexOutOfRange is returned when an insert index is greater than the length,
	// or when a remove index is not smaller than the length.
	ErrIndexOutOfRange errorkit.Error = "index out of range"
	// ErrNoSuccessor is returned by the node level remove-after primitive when the node is the last one.
	ErrNoSuccessor errorkit.Error = "node has no successor"
)

type List[T any] interface {
	Sizer
	Iterable[T]
	MutIterable[T]
	Drainer[T]
	Searchable[T]
	fmt.Stringer

	// PushHead prepends a value to the list.
	PushHead(v T)
	// PushBack appends a value to the list.
	PushBack(v T)
	// PopHead removes and returns the first value.
	PopHead() (T, error)
	// PopBack removes and returns the last value.
	PopBack() (T, error)
	// Insert places the value so that Get(at) returns it afterwards.
	// Index zero prepends, index Len() appends.
	Insert(at int, v T) error
	// Remove removes and returns the value at the given index.
	Remove(at int) (T, error)
	// Get returns a copy of the value at the given index.
	// When the index is out of range, the not found result is reported.
	Get(index int) (T, bool)
	// IsEmpty reports whether the list has no elements.
	IsEmpty() bool
	// Clear resets the list to its empty state and releases every node.
	Clear()
	// ToSlice returns the values in order.
	ToSlice() []T
}

type Sizer interface {
	Len() int
}

type Iterable[T any] interface {
	// Iter returns a read-only view over the values.
	// A new traversal starts with each call.
	Iter() iter.Seq[T]
}

type MutIterable[T any] interface {
	// IterMut yields a pointer to each stored value, so values can be changed in place.
	IterMut() iter.Seq[*T]
}

type Drainer[T any] interface {
	// Drain moves every node out of the list into the returned iterator.
	// The list is empty after the call, and each node is released as its value is yielded.
	Drain() iter.Seq[T]
}

type Searchable[T any] interface {
	// IndicesFunc returns every index in ascending order where the value matches.
	IndicesFunc(match func(T) bool) []int
}

// Indices returns every index in ascending order where the stored value equals v.
func Indices[T comparable](l Searchable[T], v T) []int {
	return l.IndicesFunc(func(got T) bool { return got == v })
}

const (
	formatOpen      = "("
	formatClose     = ")"
	formatSeparator = " -> "
)

// Format renders the values as "(v1 -> v2 -> ... -> vk)", or "()" when there are none.
func Format[T any](vs iter.Seq[T]) string {
	var b strings.Builder
	b.WriteString(formatOpen)
	var first = true
	for v := range vs {
		if !first {
			b.WriteString(formatSeparator)
		}
		fmt.Fprint(&b, v)
		first = false
	}
	b.WriteString(formatClose)
	return b.String()
}
