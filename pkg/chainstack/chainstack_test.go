package chainstack_test

import (
	"testing"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/singly/pkg/arenalist"
	"go.llib.dev/singly/pkg/boxlist"
	"go.llib.dev/singly/pkg/chainstack"
	"go.llib.dev/singly/pkg/rclist"
	"go.llib.dev/singly/port/chainlist"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func TestStack(t *testing.T) {
	s := testcase.NewSpec(t)

	variants := map[string]func() chainlist.List[int]{
		"box":   func() chainlist.List[int] { return boxlist.New[int]() },
		"rc":    func() chainlist.List[int] { return rclist.New[int]() },
		"arena": func() chainlist.List[int] { return arenalist.New[int]() },
	}
	for name, mk := range variants {
		s.Describe(name, func(s *testcase.Spec) {
			specStack(s, mk)
		})
	}
}

func specStack(s *testcase.Spec, mk func() chainlist.List[int]) {
	stack := let.Var(s, func(t *testcase.T) *chainstack.Stack[int] {
		return chainstack.New[int](mk())
	})

	s.Describe("#Pop", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (int, error) {
			return stack.Get(t).Pop()
		})

		s.When("stack is empty", func(s *testcase.Spec) {
			s.Then("it reports an empty list error", func(t *testcase.T) {
				_, err := act(t)

				assert.ErrorIs(t, chainlist.ErrEmptyList, err)
			})
		})

		s.When("values were pushed", func(s *testcase.Spec) {
			values := let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(3, 7), t.Random.Int)
			})
			stack.Let(s, func(t *testcase.T) *chainstack.Stack[int] {
				st := stack.Super(t)
				for _, v := range values.Get(t) {
					st.Push(v)
				}
				return st
			})

			s.Then("values come back in reverse order", func(t *testcase.T) {
				vs := values.Get(t)
				for i := len(vs) - 1; 0 <= i; i-- {
					got, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, vs[i], got)
				}
				assert.True(t, stack.Get(t).IsEmpty())
			})
		})
	})

	s.Describe("#Peek", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (int, bool) {
			return stack.Get(t).Peek()
		})

		s.Then("an empty stack has nothing on top", func(t *testcase.T) {
			_, ok := act(t)
			assert.False(t, ok)
		})

		s.When("values were pushed", func(s *testcase.Spec) {
			stack.Let(s, func(t *testcase.T) *chainstack.Stack[int] {
				st := stack.Super(t)
				st.Push(1)
				st.Push(2)
				return st
			})

			s.Then("the last pushed value is on top and stays there", func(t *testcase.T) {
				got, ok := act(t)
				assert.True(t, ok)
				assert.Equal(t, 2, got)
				assert.Equal(t, 2, stack.Get(t).Len())
				assert.Equal(t, []int{2, 1}, iterkit.Collect(stack.Get(t).Values()))
			})
		})
	})
}
