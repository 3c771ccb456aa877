package boxlist

import "go.llib.dev/singly/port/chainlist"

type node[T any] struct {
	value T
	next  *node[T]
}

// insertAfter splices a new node between n and its current successor.
func (n *node[T]) insertAfter(v T) {
	n.next = &node[T]{value: v, next: n.next}
}

// removeAfter detaches the successor of n and returns its value.
func (n *node[T]) removeAfter() (T, error) {
	succ := n.next
	if succ == nil {
		var zero T
		return zero, chainlist.ErrNoSuccessor
	}
	n.next = succ.next
	succ.next = nil
	return succ.value, nil
}
