package boxlist

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
		return &node[int]{value: t.Random.Int()}
	})

	s.Describe("#insertAfter", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) int {
			return t.Random.Int()
		})
		act := let.Act0(func(t *testcase.T) {
			n.Get(t).insertAfter(value.Get(t))
		})

		s.Then("the value becomes the successor", func(t *testcase.T) {
			act(t)

			assert.NotNil(t, n.Get(t).next)
			assert.Equal(t, value.Get(t), n.Get(t).next.value)
			assert.Nil(t, n.Get(t).next.next)
		})

		s.When("node has a successor", func(s *testcase.Spec) {
			succ := let.Var(s, func(t *testcase.T) *node[int] {
				return &node[int]{value: t.Random.Int()}
			})
			n.Let(s, func(t *testcase.T) *node[int] {
				n := n.Super(t)
				n.next = succ.Get(t)
				return n
			})

			s.Then("the new node takes over the old successor", func(t *testcase.T) {
				act(t)

				assert.Equal(t, value.Get(t), n.Get(t).next.value)
				assert.Equal(t, succ.Get(t), n.Get(t).next.next)
			})
		})
	})

	s.Describe("#removeAfter", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (int, error) {
			return n.Get(t).removeAfter()
		})

		s.When("node has no successor", func(s *testcase.Spec) {
			s.Then("it reports the missing successor", func(t *testcase.T) {
				_, err := act(t)

				assert.ErrorIs(t, chainlist.ErrNoSuccessor, err)
			})
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
				assert.Nil(t, n.Get(t).next.next)
			})
		})
	})
}
