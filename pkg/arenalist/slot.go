package arenalist

import "go.llib.dev/singly/port/chainlist"

// alloc stores v in a free slot, or in a new one when the free list is empty.
func (l *List[T]) alloc(v T, next ref) ref {
	if l.free != none {
		r := l.free
		s := l.at(r)
		l.free = s.next
		*s = slot[T]{value: v, next: next}
		return r
	}
	l.slots = append(l.slots, slot[T]{value: v, next: next})
	return ref(len(l.slots))
}

// release hands out the value of the slot and puts the slot on the free list.
func (l *List[T]) release(r ref) T {
	s := l.at(r)
	v := s.value
	*s = slot[T]{next: l.free}
	l.free = r
	return v
}

// insertAfter links a new slot after r and returns its reference.
// The length and tail bookkeeping belongs to the caller.
func (l *List[T]) insertAfter(r ref, v T) ref {
	n := l.alloc(v, l.at(r).next)
	l.at(r).next = n
	return n
}

// removeAfter unlinks the successor of r and releases its slot.
func (l *List[T]) removeAfter(r ref) (T, error) {
	succ := l.at(r).next
	if succ == none {
		var zero T
		return zero, chainlist.ErrNoSuccessor
	}
	l.at(r).next = l.at(succ).next
	return l.release(succ), nil
}
