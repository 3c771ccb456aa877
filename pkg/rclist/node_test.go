package rclist

import (
	"testing"

	"go.llib.dev/singly/port/chainlist"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestNode(t *testing.T) {
	s := testcase.NewSpec(t)

	n := let.Var(s, func(t *testcase.T) *node[int] {
		return &node[int]{value: 1}
	})

	s.Describe("#insertAfter", func(s *testcase.Spec) {
		act := let.Act(func(t *testcase.T) *node[int] {
			return n.Get(t).insertAfter(2)
		})

		s.Then("the returned node is the new successor", func(t *testcase.T) {
			got := act(t)

			assert.Equal(t, got, n.Get(t).next)
			assert.Equal(t, 2, got.value)
		})

		s.Then("the old successor follows the new node", func(t *testcase.T) {
			last := n.Get(t).insertAfter(3)
			got := act(t)

			assert.True(t, got.next == last)
		})

		s.Then("a node lent out exclusively cannot be spliced", func(t *testcase.T) {
			release := n.Get(t).flag.borrowMut()
			defer release()

			assert.Equal[any](t, ErrAlreadyMutablyBorrowed, assert.Panic(t, func() { act(t) }))
		})
	})

	s.Describe("#removeAfter", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (int, error) {
			return n.Get(t).removeAfter()
		})

		s.Then("without a successor it reports the missing successor", func(t *testcase.T) {
			_, err := act(t)

			assert.ErrorIs(t, chainlist.ErrNoSuccessor, err)
		})

		s.When("node has successors", func(s *testcase.Spec) {
			n.Let(s, func(t *testcase.T) *node[int] {
				n := n.Super(t)
				n.insertAfter(3)
				n.insertAfter(2)
				return n
			})

			s.Then("the successor is detached and the chain is relinked", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)

				assert.Equal(t, 2, got)
				assert.Equal(t, 3, n.Get(t).next.value)
			})

			s.Then("a successor lent out for reading cannot be detached", func(t *testcase.T) {
				release := n.Get(t).next.flag.borrow()
				defer release()

				assert.Equal[any](t, ErrAlreadyBorrowed, assert.Panic(t, func() { _, _ = act(t) }))
			})
		})
	})
}

func TestBorrowFlag(t *testing.T) {
	var f borrowFlag

	r1 := f.borrow()
	r2 := f.borrow()
	assert.Equal(t, borrowFlag(2), f)
	assert.Equal[any](t, ErrAlreadyBorrowed, assert.Panic(t, func() { f.borrowMut() }))
	r1()
	r2()

	release := f.borrowMut()
	assert.Equal[any](t, ErrAlreadyMutablyBorrowed, assert.Panic(t, func() { f.borrow() }))
	assert.Equal[any](t, ErrAlreadyMutablyBorrowed, assert.Panic(t, func() { f.borrowMut() }))
	release()

	assert.Equal(t, borrowFlag(0), f)
}
