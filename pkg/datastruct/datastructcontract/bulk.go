package datastructcontract

import (
	"fmt"
	"slices"
	"testing"

	"go.llib.dev/arraylist/pkg/datastruct"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func BulkSequence[T any](make contract.Make[datastruct.BulkSequence[T]], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[ListConfig[T]](opts)

	Sequence[T](func(tb testing.TB) datastruct.Sequence[T] {
		return make(tb)
	}, c).Spec(s)

	var (
		values = let.Var(s, func(t *testcase.T) []T {
			return c.makeElems(t, 3, 7)
		})
		others = let.Var(s, func(t *testcase.T) []T {
			return c.makeElems(t, 1, 3)
		})
	)
	seq := let.Var(s, func(t *testcase.T) datastruct.BulkSequence[T] {
		seq := make(t)
		seq.Append(values.Get(t)...)
		return seq
	})

	s.Describe("#AddAll", func(s *testcase.Spec) {
		act := let.Act(func(t *testcase.T) bool {
			return seq.Get(t).AddAll(others.Get(t)...)
		})

		s.Then("values are appended in order", func(t *testcase.T) {
			assert.True(t, act(t))

			exp := slices.Concat(values.Get(t), others.Get(t))
			assert.Equal(t, exp, seq.Get(t).ToSlice())
		})

		s.When("no value is given", func(s *testcase.Spec) {
			others.LetValue(s, nil)

			s.Then("it reports that nothing changed", func(t *testcase.T) {
				assert.False(t, act(t))
				assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
			})
		})
	})

	s.Describe("#InsertAll", func(s *testcase.Spec) {
		index := let.Var(s, func(t *testcase.T) int {
			return t.Random.IntBetween(0, len(values.Get(t)))
		})
		act := let.Act2(func(t *testcase.T) (bool, error) {
			return seq.Get(t).InsertAll(index.Get(t), others.Get(t)...)
		})

		s.Then("values are inserted from the index, and the rest is shifted to the right", func(t *testcase.T) {
			ok, err := act(t)
			assert.NoError(t, err)
			assert.True(t, ok)

			exp := slices.Insert(slices.Clone(values.Get(t)), index.Get(t), others.Get(t)...)
			assert.Equal(t, exp, seq.Get(t).ToSlice())
		})

		s.When("no value is given", func(s *testcase.Spec) {
			others.LetValue(s, nil)

			s.Then("it reports that nothing changed", func(t *testcase.T) {
				ok, err := act(t)
				assert.NoError(t, err)
				assert.False(t, ok)
				assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
			})
		})

		s.When("index is out of bound", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return len(values.Get(t)) + t.Random.IntBetween(1, 42)
			})

			s.Then("index out of bounds error is returned and nothing changes", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
				assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
			})
		})
	})

	s.Describe("#RemoveAll", func(s *testcase.Spec) {
		act := let.Act(func(t *testcase.T) bool {
			return seq.Get(t).RemoveAll(others.Get(t)...)
		})

		s.When("none of the values are present", func(s *testcase.Spec) {
			s.Then("it reports that nothing changed", func(t *testcase.T) {
				assert.False(t, act(t))
				assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
			})
		})

		s.When("the values are present, even multiple times", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				seq.Get(t).Append(others.Get(t)...)
				_, err := seq.Get(t).InsertAll(0, others.Get(t)...)
				assert.NoError(t, err)
			})

			s.Then("every occurrence is removed, and the remaining order is kept", func(t *testcase.T) {
				assert.True(t, act(t))
				assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
			})

			s.Then("afterwards the sequence contains none of the values", func(t *testcase.T) {
				assert.True(t, seq.Get(t).ContainsAll(others.Get(t)...))
				act(t)
				assert.False(t, seq.Get(t).ContainsAll(others.Get(t)...))
				for _, v := range others.Get(t) {
					assert.False(t, seq.Get(t).Contains(v))
				}
			})
		})
	})

	s.Describe("#RetainAll", func(s *testcase.Spec) {
		act := let.Act(func(t *testcase.T) bool {
			return seq.Get(t).RetainAll(others.Get(t)...)
		})

		s.When("the sequence only has retained values", func(s *testcase.Spec) {
			seq.Let(s, func(t *testcase.T) datastruct.BulkSequence[T] {
				seq := make(t)
				seq.Append(others.Get(t)...)
				return seq
			})

			s.Then("it reports that nothing changed", func(t *testcase.T) {
				assert.False(t, act(t))
				assert.Equal(t, others.Get(t), seq.Get(t).ToSlice())
			})
		})

		s.When("the retained values are mixed with other values", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				seq.Get(t).Append(others.Get(t)...)
			})

			s.Then("only the retained values remain, in their order", func(t *testcase.T) {
				assert.True(t, act(t))
				assert.Equal(t, others.Get(t), seq.Get(t).ToSlice())
			})
		})

		s.When("no value is given", func(s *testcase.Spec) {
			others.LetValue(s, nil)

			s.Then("everything is removed", func(t *testcase.T) {
				assert.True(t, act(t))
				assert.Equal(t, 0, seq.Get(t).Len())
			})
		})
	})

	s.Describe("#ContainsAll", func(s *testcase.Spec) {
		act := let.Act(func(t *testcase.T) bool {
			return seq.Get(t).ContainsAll(others.Get(t)...)
		})

		s.Then("missing values are reported", func(t *testcase.T) {
			assert.False(t, act(t))
		})

		s.When("every value is present", func(s *testcase.Spec) {
			others.Let(s, func(t *testcase.T) []T {
				vs := slices.Clone(values.Get(t))
				slices.Reverse(vs)
				return vs[:t.Random.IntBetween(1, len(vs))]
			})

			s.Then("it reports true", func(t *testcase.T) {
				assert.True(t, act(t))
			})

			s.Then("the sequence is not modified", func(t *testcase.T) {
				act(t)
				assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
			})
		})

		s.When("no value is given", func(s *testcase.Spec) {
			others.LetValue(s, nil)

			s.Then("it reports true", func(t *testcase.T) {
				assert.True(t, act(t))
			})
		})
	})

	return s.AsSuite(fmt.Sprintf("BulkSequence[%s]", reflectkit.TypeOf[T]().String()))
}
