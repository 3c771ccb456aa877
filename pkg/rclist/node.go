package rclist

import "go.llib.dev/singly/port/chainlist"

// node is shared between its predecessor and, for the last node, the tail reference of the list.
// Every access to its fields goes through its borrow flag.
type node[T any] struct {
	flag  borrowFlag
	value T
	next  *node[T]
}

func (n *node[T]) load() T {
	defer n.flag.borrow()()
	return n.value
}

func (n *node[T]) successor() *node[T] {
	defer n.flag.borrow()()
	return n.next
}

// visit lends the value to fn under a shared borrow and returns the successor.
func (n *node[T]) visit(fn func(T) bool) (*node[T], bool) {
	defer n.flag.borrow()()
	next := n.next
	return next, fn(n.value)
}

// visitMut lends the value to fn under an exclusive borrow and returns the successor.
func (n *node[T]) visitMut(fn func(*T) bool) (*node[T], bool) {
	defer n.flag.borrowMut()()
	next := n.next
	return next, fn(&n.value)
}

// take unlinks n from its successor and hands out its value.
func (n *node[T]) take() (T, *node[T]) {
	defer n.flag.borrowMut()()
	next := n.next
	n.next = nil
	return n.value, next
}

// insertAfter splices a new node between n and its successor, and returns the new node.
func (n *node[T]) insertAfter(v T) *node[T] {
	defer n.flag.borrowMut()()
	n.next = &node[T]{value: v, next: n.next}
	return n.next
}

// removeAfter detaches the successor of n and returns its value.
func (n *node[T]) removeAfter() (T, error) {
	defer n.flag.borrowMut()()
	succ := n.next
	if succ == nil {
		var zero T
		return zero, chainlist.ErrNoSuccessor
	}
	v, next := succ.take()
	n.next = next
	return v, nil
}
