package boxlist_test

import (
	"testing"

	"github.com/Pallinder/go-randomdata"
	"go.llib.dev/singly/pkg/boxlist"
	"go.llib.dev/singly/port/chainlist"
	"go.llib.dev/singly/port/chainlist/chainlistcontract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestList(t *testing.T) {
	chainlistcontract.List(func(tb testing.TB) chainlist.List[int] {
		return boxlist.New[int]()
	}).Test(t)

	chainlistcontract.List(func(tb testing.TB) chainlist.List[string] {
		return &boxlist.List[string]{}
	}, chainlistcontract.Config[string]{
		MakeElem: func(tb testing.TB) string { return randomdata.SillyName() },
	}).Test(t)

	chainlistcontract.Scenarios(func(tb testing.TB) chainlist.List[int] {
		return boxlist.New[int]()
	}).Test(t)
}

func BenchmarkList(b *testing.B) {
	chainlistcontract.List(func(tb testing.TB) chainlist.List[int] {
		return boxlist.New[int]()
	}).Benchmark(b)
}

func TestFrom(t *testing.T) {
	s := testcase.NewSpec(t)

	values := let.Var(s, func(t *testcase.T) []int {
		return []int{t.Random.Int(), t.Random.Int(), t.Random.Int()}
	})
	act := let.Act(func(t *testcase.T) *boxlist.List[int] {
		return boxlist.From(values.Get(t)...)
	})

	s.Then("values keep their order", func(t *testcase.T) {
		l := act(t)

		assert.Equal(t, len(values.Get(t)), l.Len())
		for i, exp := range values.Get(t) {
			got, ok := l.Get(i)
			assert.True(t, ok)
			assert.Equal(t, exp, got)
		}
	})

	s.When("no value is given", func(s *testcase.Spec) {
		values.Let(s, func(t *testcase.T) []int {
			return nil
		})

		s.Then("the list is empty", func(t *testcase.T) {
			assert.True(t, act(t).IsEmpty())
			assert.Equal(t, "()", act(t).String())
		})
	})

	s.Test("FromSeq consumes the sequence in order", func(t *testcase.T) {
		l := boxlist.FromSeq(boxlist.From(values.Get(t)...).Iter())

		assert.Equal(t, values.Get(t), l.ToSlice())
	})
}

func TestList_Clone(t *testing.T) {
	s := testcase.NewSpec(t)

	original := let.Var(s, func(t *testcase.T) *boxlist.List[int] {
		return boxlist.From(1, 2, 3)
	})
	act := let.Act(func(t *testcase.T) *boxlist.List[int] {
		return original.Get(t).Clone()
	})

	s.Then("the clone has the same values", func(t *testcase.T) {
		assert.Equal(t, original.Get(t).String(), act(t).String())
	})

	s.Then("the clone is independent from the original", func(t *testcase.T) {
		clone := act(t)
		clone.PushBack(4)
		for p := range clone.IterMut() {
			*p = -*p
		}

		assert.Equal(t, "(1 -> 2 -> 3)", original.Get(t).String())
		assert.Equal(t, "(-1 -> -2 -> -3 -> -4)", clone.String())
	})
}

func TestList_zeroValue(t *testing.T) {
	var l boxlist.List[string]
	l.PushBack("b")
	l.PushHead("a")

	assert.Equal(t, "(a -> b)", l.String())
	assert.Equal(t, 2, l.Len())
}
