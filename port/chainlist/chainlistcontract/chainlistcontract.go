package chainlistcontract

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/singly/port/chainlist"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

type Option[T any] interface {
	option.Option[Config[T]]
}

type Config[T any] struct {
	MakeElem func(testing.TB) T
	// BenchSize is the length of the populated list in the benchmarks.
	BenchSize int
}

var _ Option[any] = Config[any]{}

func (c Config[T]) Configure(o *Config[T]) {
	o.MakeElem = zerokit.Coalesce(c.MakeElem, o.MakeElem)
	o.BenchSize = zerokit.Coalesce(c.BenchSize, o.BenchSize)
}

func (c Config[T]) makeElem(tb testing.TB) T {
	if c.MakeElem != nil {
		return c.MakeElem(tb)
	}
	return testcase.ToT(&tb).Random.Make(*new(T)).(T)
}

func (c Config[T]) makeValues(t *testcase.T, n int) []T {
	return random.Slice(n, func() T { return c.makeElem(t) }, random.UniqueValues)
}

func List[T comparable](make contract.Make[chainlist.List[T]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	var (
		list = let.Var(s, func(t *testcase.T) chainlist.List[T] {
			return make(t)
		})
		values = let.Var(s, func(t *testcase.T) []T {
			return nil
		})
	)
	populated := func(s *testcase.Spec) {
		values.Let(s, func(t *testcase.T) []T {
			return c.makeValues(t, t.Random.IntBetween(3, 7))
		})
		list.Let(s, func(t *testcase.T) chainlist.List[T] {
			l := list.Super(t)
			for _, v := range values.Get(t) {
				l.PushBack(v)
			}
			return l
		})
	}

	s.Test("made list is empty", func(t *testcase.T) {
		assertValues[T](t, list.Get(t), nil)
	})

	s.Describe("#PushHead", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) T {
			return c.makeElem(t)
		})
		act := let.Act0(func(t *testcase.T) {
			list.Get(t).PushHead(value.Get(t))
		})

		s.Then("the value becomes the only element", func(t *testcase.T) {
			act(t)

			assertValues(t, list.Get(t), []T{value.Get(t)})
		})

		s.When("list has values", func(s *testcase.Spec) {
			populated(s)

			s.Then("the value is prepended", func(t *testcase.T) {
				act(t)

				assertValues(t, list.Get(t), append([]T{value.Get(t)}, values.Get(t)...))
			})

			s.Then("pop head right after returns the pushed value and restores the list", func(t *testcase.T) {
				act(t)

				got, err := list.Get(t).PopHead()
				assert.NoError(t, err)
				assert.Equal(t, value.Get(t), got)
				assertValues(t, list.Get(t), values.Get(t))
			})
		})
	})

	s.Describe("#PushBack", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) T {
			return c.makeElem(t)
		})
		act := let.Act0(func(t *testcase.T) {
			list.Get(t).PushBack(value.Get(t))
		})

		s.Then("the value becomes the only element", func(t *testcase.T) {
			act(t)

			assertValues(t, list.Get(t), []T{value.Get(t)})
		})

		s.When("list has values", func(s *testcase.Spec) {
			populated(s)

			s.Then("the value is appended", func(t *testcase.T) {
				act(t)

				assertValues(t, list.Get(t), append(slices.Clone(values.Get(t)), value.Get(t)))
			})
		})

		s.Test("values pushed back are retrievable by their position", func(t *testcase.T) {
			vs := c.makeValues(t, t.Random.IntBetween(3, 7))
			l := list.Get(t)
			for _, v := range vs {
				l.PushBack(v)
			}
			for i, exp := range vs {
				got, ok := l.Get(i)
				assert.True(t, ok)
				assert.Equal(t, exp, got)
			}
		})
	})

	s.Describe("#PopHead", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (T, error) {
			return list.Get(t).PopHead()
		})

		s.When("list is empty", func(s *testcase.Spec) {
			s.Then("it reports an empty list error", func(t *testcase.T) {
				_, err := act(t)

				assert.ErrorIs(t, chainlist.ErrEmptyList, err)
				assertValues[T](t, list.Get(t), nil)
			})
		})

		s.When("list has values", func(s *testcase.Spec) {
			populated(s)

			s.Then("the first value is removed and returned", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)

				assert.Equal(t, values.Get(t)[0], got)
				assertValues(t, list.Get(t), values.Get(t)[1:])
			})

			s.Then("popping every value empties the list in order", func(t *testcase.T) {
				for _, exp := range values.Get(t) {
					got, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, exp, got)
				}
				assertValues[T](t, list.Get(t), nil)

				_, err := act(t)
				assert.ErrorIs(t, chainlist.ErrEmptyList, err)
			})
		})
	})

	s.Describe("#PopBack", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (T, error) {
			return list.Get(t).PopBack()
		})

		s.When("list is empty", func(s *testcase.Spec) {
			s.Then("it reports an empty list error", func(t *testcase.T) {
				_, err := act(t)

				assert.ErrorIs(t, chainlist.ErrEmptyList, err)
				assertValues[T](t, list.Get(t), nil)
			})
		})

		s.When("list has values", func(s *testcase.Spec) {
			populated(s)

			s.Then("the last value is removed and returned", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)

				vs := values.Get(t)
				assert.Equal(t, vs[len(vs)-1], got)
				assertValues(t, list.Get(t), vs[:len(vs)-1])
			})

			s.Then("push back afterwards appends after the new last value", func(t *testcase.T) {
				_, err := act(t)
				assert.NoError(t, err)

				v := c.makeElem(t)
				list.Get(t).PushBack(v)

				vs := values.Get(t)
				assertValues(t, list.Get(t), append(slices.Clone(vs[:len(vs)-1]), v))
			})

			s.Then("popping every value empties the list in reverse order", func(t *testcase.T) {
				vs := values.Get(t)
				for i := len(vs) - 1; 0 <= i; i-- {
					got, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, vs[i], got)
				}
				assertValues[T](t, list.Get(t), nil)

				v := c.makeElem(t)
				list.Get(t).PushBack(v)
				assertValues(t, list.Get(t), []T{v})
			})
		})
	})

	s.Describe("#Insert", func(s *testcase.Spec) {
		var (
			at    = let.Var[int](s, nil)
			value = let.Var(s, func(t *testcase.T) T {
				return c.makeElem(t)
			})
		)
		act := let.Act(func(t *testcase.T) error {
			return list.Get(t).Insert(at.Get(t), value.Get(t))
		})

		s.When("list is empty", func(s *testcase.Spec) {
			s.And("index is zero", func(s *testcase.Spec) {
				at.LetValue(s, 0)

				s.Then("the value becomes the only element", func(t *testcase.T) {
					assert.NoError(t, act(t))

					assertValues(t, list.Get(t), []T{value.Get(t)})
				})
			})

			s.And("index is beyond the length", func(s *testcase.Spec) {
				at.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(1, 42)
				})

				s.Then("it reports index out of range and leaves the list unchanged", func(t *testcase.T) {
					assert.ErrorIs(t, chainlist.ErrIndexOutOfRange, act(t))

					assertValues[T](t, list.Get(t), nil)
				})
			})
		})

		s.When("list has values", func(s *testcase.Spec) {
			populated(s)

			s.And("index is within the range of the list", func(s *testcase.Spec) {
				at.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(0, len(values.Get(t)))
				})

				s.Then("the value is found at the index afterwards", func(t *testcase.T) {
					assert.NoError(t, act(t))

					got, ok := list.Get(t).Get(at.Get(t))
					assert.True(t, ok)
					assert.Equal(t, value.Get(t), got)
					assertValues(t, list.Get(t), slices.Insert(slices.Clone(values.Get(t)), at.Get(t), value.Get(t)))
				})
			})

			s.And("index equals the length", func(s *testcase.Spec) {
				at.Let(s, func(t *testcase.T) int {
					return len(values.Get(t))
				})

				s.Then("the value is appended", func(t *testcase.T) {
					assert.NoError(t, act(t))

					assertValues(t, list.Get(t), append(slices.Clone(values.Get(t)), value.Get(t)))
				})

				s.Then("push back afterwards appends after the inserted value", func(t *testcase.T) {
					assert.NoError(t, act(t))

					v := c.makeElem(t)
					list.Get(t).PushBack(v)
					assertValues(t, list.Get(t), append(slices.Clone(values.Get(t)), value.Get(t), v))
				})
			})

			s.And("index is beyond the length", func(s *testcase.Spec) {
				at.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(1, 42)
				})

				s.Then("it reports index out of range and leaves the list unchanged", func(t *testcase.T) {
					assert.ErrorIs(t, chainlist.ErrIndexOutOfRange, act(t))

					assertValues(t, list.Get(t), values.Get(t))
				})
			})

			s.And("index is negative", func(s *testcase.Spec) {
				at.Let(s, func(t *testcase.T) int {
					return -1 * t.Random.IntBetween(1, 42)
				})

				s.Then("it reports index out of range and leaves the list unchanged", func(t *testcase.T) {
					assert.ErrorIs(t, chainlist.ErrIndexOutOfRange, act(t))

					assertValues(t, list.Get(t), values.Get(t))
				})
			})
		})
	})

	s.Describe("#Remove", func(s *testcase.Spec) {
		at := let.Var[int](s, nil)
		act := let.Act2(func(t *testcase.T) (T, error) {
			return list.Get(t).Remove(at.Get(t))
		})

		s.When("list is empty", func(s *testcase.Spec) {
			at.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("it reports an empty list error", func(t *testcase.T) {
				_, err := act(t)

				assert.ErrorIs(t, chainlist.ErrEmptyList, err)
				assertValues[T](t, list.Get(t), nil)
			})

			s.And("index is zero", func(s *testcase.Spec) {
				at.LetValue(s, 0)

				s.Then("it reports an empty list error", func(t *testcase.T) {
					_, err := act(t)

					assert.ErrorIs(t, chainlist.ErrEmptyList, err)
				})
			})
		})

		s.When("list has values", func(s *testcase.Spec) {
			populated(s)

			s.And("index points to an existing value", func(s *testcase.Spec) {
				at.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the value is removed and returned", func(t *testcase.T) {
					got, err := act(t)
					assert.NoError(t, err)

					assert.Equal(t, values.Get(t)[at.Get(t)], got)
					assertValues(t, list.Get(t), slices.Delete(slices.Clone(values.Get(t)), at.Get(t), at.Get(t)+1))
				})
			})

			s.And("index points to the last value", func(s *testcase.Spec) {
				at.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) - 1
				})

				s.Then("pushing the removed value back restores the display string", func(t *testcase.T) {
					before := list.Get(t).String()

					got, err := act(t)
					assert.NoError(t, err)
					assert.NotEqual(t, before, list.Get(t).String())

					list.Get(t).PushBack(got)
					assert.Equal(t, before, list.Get(t).String())
				})

				s.Then("inserting the removed value at the length restores the list", func(t *testcase.T) {
					got, err := act(t)
					assert.NoError(t, err)

					assert.NoError(t, list.Get(t).Insert(list.Get(t).Len(), got))
					assertValues(t, list.Get(t), values.Get(t))
				})
			})

			s.And("index equals the length", func(s *testcase.Spec) {
				at.Let(s, func(t *testcase.T) int {
					return len(values.Get(t))
				})

				s.Then("it reports index out of range and leaves the list unchanged", func(t *testcase.T) {
					_, err := act(t)

					assert.ErrorIs(t, chainlist.ErrIndexOutOfRange, err)
					assertValues(t, list.Get(t), values.Get(t))
				})
			})

			s.And("index is negative", func(s *testcase.Spec) {
				at.Let(s, func(t *testcase.T) int {
					return -1 * t.Random.IntBetween(1, 42)
				})

				s.Then("it reports index out of range and leaves the list unchanged", func(t *testcase.T) {
					_, err := act(t)

					assert.ErrorIs(t, chainlist.ErrIndexOutOfRange, err)
					assertValues(t, list.Get(t), values.Get(t))
				})
			})
		})
	})

	s.Describe("#Get", func(s *testcase.Spec) {
		index := let.Var[int](s, nil)
		act := let.Act2(func(t *testcase.T) (T, bool) {
			return list.Get(t).Get(index.Get(t))
		})

		s.When("list is empty", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("the value is reported to be missing", func(t *testcase.T) {
				_, ok := act(t)
				assert.False(t, ok)
			})
		})

		s.When("list has values", func(s *testcase.Spec) {
			populated(s)

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("a copy of the value is returned", func(t *testcase.T) {
					got, ok := act(t)
					assert.True(t, ok)
					assert.Equal(t, values.Get(t)[index.Get(t)], got)
					assertValues(t, list.Get(t), values.Get(t))
				})
			})

			s.And("index equals the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t))
				})

				s.Then("the value is reported to be missing", func(t *testcase.T) {
					got, ok := act(t)
					assert.False(t, ok)
					assert.Equal(t, *new(T), got)
				})
			})

			s.And("index is negative", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return -1 * t.Random.IntBetween(1, 42)
				})

				s.Then("the value is reported to be missing", func(t *testcase.T) {
					_, ok := act(t)
					assert.False(t, ok)
				})
			})
		})
	})

	s.Describe("#IndicesFunc", func(s *testcase.Spec) {
		s.Test("every index of a repeated value is returned in ascending order", func(t *testcase.T) {
			var (
				vs      = c.makeValues(t, 4)
				a, b, x = vs[0], vs[1], vs[2]
				absent  = vs[3]
				l       = list.Get(t)
			)
			for _, v := range []T{a, b, a, x, a} {
				l.PushBack(v)
			}

			assert.Equal(t, []int{0, 2, 4}, chainlist.Indices[T](l, a))
			assert.Equal(t, []int{1}, chainlist.Indices[T](l, b))
			assert.Equal(t, []int{3}, l.IndicesFunc(func(v T) bool { return v == x }))
			assert.Empty(t, chainlist.Indices[T](l, absent))
			assert.Equal(t, []int{0, 1, 2, 3, 4}, l.IndicesFunc(func(T) bool { return true }))
		})

		s.Test("an empty list has no indices", func(t *testcase.T) {
			assert.Empty(t, chainlist.Indices[T](list.Get(t), c.makeElem(t)))
		})
	})

	s.Describe("#Clear", func(s *testcase.Spec) {
		act := let.Act0(func(t *testcase.T) {
			list.Get(t).Clear()
		})

		s.Then("clearing an empty list keeps it empty", func(t *testcase.T) {
			act(t)

			assertValues[T](t, list.Get(t), nil)
		})

		s.When("list has values", func(s *testcase.Spec) {
			populated(s)

			s.Then("every value is removed", func(t *testcase.T) {
				act(t)

				assertValues[T](t, list.Get(t), nil)
			})

			s.Then("clearing twice leaves the list empty both times", func(t *testcase.T) {
				act(t)
				assert.Equal(t, "()", list.Get(t).String())
				assert.Equal(t, 0, list.Get(t).Len())

				act(t)
				assert.Equal(t, "()", list.Get(t).String())
				assert.Equal(t, 0, list.Get(t).Len())
			})

			s.Then("the list remains usable", func(t *testcase.T) {
				act(t)

				v := c.makeElem(t)
				list.Get(t).PushBack(v)
				assertValues(t, list.Get(t), []T{v})
			})
		})
	})

	s.Describe("#Iter", func(s *testcase.Spec) {
		populated(s)

		s.Then("values are yielded in order without changing the list", func(t *testcase.T) {
			assert.Equal(t, values.Get(t), iterkit.Collect(list.Get(t).Iter()))
			assertValues(t, list.Get(t), values.Get(t))
		})

		s.Then("the iteration can be restarted", func(t *testcase.T) {
			seq := list.Get(t).Iter()

			assert.Equal(t, values.Get(t), iterkit.Collect(seq))
			assert.Equal(t, values.Get(t), iterkit.Collect(seq))
		})

		s.Then("breaking early stops the iteration", func(t *testcase.T) {
			var got []T
			for v := range list.Get(t).Iter() {
				got = append(got, v)
				break
			}
			assert.Equal(t, values.Get(t)[:1], got)
			assertValues(t, list.Get(t), values.Get(t))
		})

		s.Then("read only iterations may overlap", func(t *testcase.T) {
			var pairs int
			for range list.Get(t).Iter() {
				for range list.Get(t).Iter() {
					pairs++
				}
			}
			assert.Equal(t, len(values.Get(t))*len(values.Get(t)), pairs)
		})
	})

	s.Describe("#IterMut", func(s *testcase.Spec) {
		populated(s)

		s.Then("values can be updated in place", func(t *testcase.T) {
			replacements := c.makeValues(t, len(values.Get(t)))

			var i int
			for p := range list.Get(t).IterMut() {
				*p = replacements[i]
				i++
			}

			assert.Equal(t, len(values.Get(t)), i)
			assertValues(t, list.Get(t), replacements)
		})

		s.Then("breaking early leaves the rest untouched", func(t *testcase.T) {
			replacement := c.makeElem(t)
			for p := range list.Get(t).IterMut() {
				*p = replacement
				break
			}

			exp := slices.Clone(values.Get(t))
			exp[0] = replacement
			assertValues(t, list.Get(t), exp)
		})
	})

	s.Describe("#Drain", func(s *testcase.Spec) {
		populated(s)

		s.Then("the list is empty as soon as the drain is made", func(t *testcase.T) {
			_ = list.Get(t).Drain()

			assertValues[T](t, list.Get(t), nil)
		})

		s.Then("every value is yielded once in order", func(t *testcase.T) {
			seq := list.Get(t).Drain()

			assert.Equal(t, values.Get(t), iterkit.Collect(seq))
			assert.Empty(t, iterkit.Collect(seq))
		})

		s.Then("a broken drain resumes with the values not yet yielded", func(t *testcase.T) {
			seq := list.Get(t).Drain()
			for range seq {
				break
			}

			assert.Equal(t, values.Get(t)[1:], iterkit.Collect(seq))
			assertValues[T](t, list.Get(t), nil)
		})

		s.Then("rebuilding a list from the drained values renders the same display string", func(t *testcase.T) {
			exp := list.Get(t).String()

			rebuilt := make(t)
			for v := range list.Get(t).Drain() {
				rebuilt.PushBack(v)
			}

			assert.Equal(t, exp, rebuilt.String())
		})

		s.Then("the drained list remains usable", func(t *testcase.T) {
			seq := list.Get(t).Drain()

			v := c.makeElem(t)
			list.Get(t).PushBack(v)

			assert.Equal(t, values.Get(t), iterkit.Collect(seq))
			assertValues(t, list.Get(t), []T{v})
		})
	})

	s.Describe("#String", func(s *testcase.Spec) {
		s.Then("empty list renders as empty parentheses", func(t *testcase.T) {
			assert.Equal(t, "()", list.Get(t).String())
		})

		s.When("list has values", func(s *testcase.Spec) {
			populated(s)

			s.Then("values are joined by arrows within parentheses", func(t *testcase.T) {
				assert.Equal(t, display(values.Get(t)), list.Get(t).String())
			})
		})
	})

	s.Test("length matches the reachable values for any sequence of operations", func(t *testcase.T) {
		var (
			l     = list.Get(t)
			model []T
		)
		t.Random.Repeat(32, 128, func() {
			switch t.Random.IntN(6) {
			case 0:
				v := c.makeElem(t)
				l.PushHead(v)
				model = slices.Insert(model, 0, v)
			case 1:
				v := c.makeElem(t)
				l.PushBack(v)
				model = append(model, v)
			case 2:
				got, err := l.PopHead()
				if len(model) == 0 {
					assert.ErrorIs(t, chainlist.ErrEmptyList, err)
					return
				}
				assert.NoError(t, err)
				assert.Equal(t, model[0], got)
				model = slices.Delete(model, 0, 1)
			case 3:
				got, err := l.PopBack()
				if len(model) == 0 {
					assert.ErrorIs(t, chainlist.ErrEmptyList, err)
					return
				}
				assert.NoError(t, err)
				assert.Equal(t, model[len(model)-1], got)
				model = slices.Delete(model, len(model)-1, len(model))
			case 4:
				at, v := t.Random.IntBetween(0, len(model)), c.makeElem(t)
				assert.NoError(t, l.Insert(at, v))
				model = slices.Insert(model, at, v)
			case 5:
				if len(model) == 0 {
					_, err := l.Remove(0)
					assert.ErrorIs(t, chainlist.ErrEmptyList, err)
					return
				}
				at := t.Random.IntN(len(model))
				got, err := l.Remove(at)
				assert.NoError(t, err)
				assert.Equal(t, model[at], got)
				model = slices.Delete(model, at, at+1)
			}
			assertValues(t, l, model)
		})
	})

	s.Describe("benchmark", func(s *testcase.Spec) {
		size := zerokit.Coalesce(c.BenchSize, 1024)
		full := let.Var(s, func(t *testcase.T) chainlist.List[T] {
			l := make(t)
			for i := 0; i < size; i++ {
				l.PushHead(c.makeElem(t))
			}
			return l
		})
		value := let.Var(s, func(t *testcase.T) T {
			return c.makeElem(t)
		})

		s.Benchmark("PushHead", func(t *testcase.T) {
			full.Get(t).PushHead(value.Get(t))
		})
		s.Benchmark("PushBack", func(t *testcase.T) {
			full.Get(t).PushBack(value.Get(t))
		})
		s.Benchmark("PopHead", func(t *testcase.T) {
			_, _ = full.Get(t).PopHead()
		})
		s.Benchmark("PopBack", func(t *testcase.T) {
			_, _ = full.Get(t).PopBack()
		})
		s.Benchmark("Insert in the middle", func(t *testcase.T) {
			_ = full.Get(t).Insert(size/2, value.Get(t))
		})
		s.Benchmark("Remove from the middle", func(t *testcase.T) {
			_, _ = full.Get(t).Remove(size / 2)
		})
	})

	return s.AsSuite(fmt.Sprintf("List[%s]", reflectkit.TypeOf[T]().String()))
}

// Scenarios are the worked examples of the list behaviour with integer values.
func Scenarios(make contract.Make[chainlist.List[int]]) contract.Contract {
	s := testcase.NewSpec(nil)

	list := let.Var(s, func(t *testcase.T) chainlist.List[int] {
		return make(t)
	})
	from := func(t *testcase.T, vs ...int) chainlist.List[int] {
		l := list.Get(t)
		for _, v := range vs {
			l.PushBack(v)
		}
		return l
	}

	s.Test("pushing to the head renders the values in reverse order", func(t *testcase.T) {
		l := list.Get(t)
		l.PushHead(1)
		l.PushHead(2)
		l.PushHead(3)

		assert.Equal(t, "(3 -> 2 -> 1)", l.String())
	})

	s.Test("inserting into the middle splices after the previous value", func(t *testcase.T) {
		l := list.Get(t)
		l.PushHead(1)
		l.PushHead(2)
		l.PushHead(3)

		assert.NoError(t, l.Insert(2, 4))
		assert.Equal(t, "(3 -> 2 -> 4 -> 1)", l.String())
		assert.Equal(t, 4, l.Len())
	})

	s.Test("indices of a repeated value", func(t *testcase.T) {
		l := from(t, 1, 2, 3, 2)

		assert.Equal(t, []int{1, 3}, chainlist.Indices[int](l, 2))
	})

	s.Test("removing from an empty list", func(t *testcase.T) {
		_, err := list.Get(t).Remove(0)

		assert.ErrorIs(t, chainlist.ErrEmptyList, err)
	})

	s.Test("popping the back", func(t *testcase.T) {
		l := from(t, 1, 2, 3)

		got, err := l.PopBack()
		assert.NoError(t, err)
		assert.Equal(t, 3, got)
		assert.Equal(t, "(1 -> 2)", l.String())
	})

	s.Test("squaring every value in place", func(t *testcase.T) {
		l := from(t, 1, 2, 3, 4, 5)

		for p := range l.IterMut() {
			*p = *p * *p
		}

		assert.Equal(t, "(1 -> 4 -> 9 -> 16 -> 25)", l.String())
	})

	s.Test("getting the values of a built list", func(t *testcase.T) {
		l := from(t, 1, 2, 3)

		for i, exp := range []int{1, 2, 3} {
			got, ok := l.Get(i)
			assert.True(t, ok)
			assert.Equal(t, exp, got)
		}
		_, ok := l.Get(3)
		assert.False(t, ok)
	})

	return s.AsSuite("Scenarios")
}

func assertValues[T any](tb testing.TB, list chainlist.List[T], exp []T) {
	tb.Helper()
	assert.Equal(tb, len(exp), list.Len())
	if len(exp) == 0 {
		assert.True(tb, list.IsEmpty())
		assert.Empty(tb, list.ToSlice())
		assert.Empty(tb, iterkit.Collect(list.Iter()))
		assert.Equal(tb, "()", list.String())
		return
	}
	assert.False(tb, list.IsEmpty())
	assert.Equal(tb, exp, list.ToSlice())
	assert.Equal(tb, exp, iterkit.Collect(list.Iter()))
	assert.Equal(tb, display(exp), list.String())
}

func display[T any](vs []T) string {
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, fmt.Sprint(v))
	}
	return "(" + strings.Join(parts, " -> ") + ")"
}
