package datastructcontract

import (
	"fmt"
	"slices"
	"testing"

	"go.llib.dev/arraylist/pkg/datastruct"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func Sequence[T any](make contract.Make[datastruct.Sequence[T]], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[ListConfig[T]](opts)

	seq := let.Var(s, func(t *testcase.T) datastruct.Sequence[T] {
		return make(t)
	})

	OrderedList[T](func(tb testing.TB) datastruct.Sequence[T] {
		return make(tb)
	}, c).Spec(s)

	Containable[T](func(tb testing.TB) datastruct.Sequence[T] {
		return make(tb)
	}, c).Spec(s)

	// values is the content of the sequence in the "sequence contains values" contexts
	values := let.Var(s, func(t *testcase.T) []T {
		return c.makeElems(t, 3, 7)
	})

	withValues := func(s *testcase.Spec) {
		seq.Let(s, func(t *testcase.T) datastruct.Sequence[T] {
			seq := seq.Super(t)
			seq.Append(values.Get(t)...)
			return seq
		})
	}

	assertEmptySetup := func(t *testcase.T) {
		t.Helper()
		assert.Equal(t, 0, seq.Get(t).Len(), `The "Make" sequence should be empty but it is not, please check the setup.`)
	}

	s.Describe("#Get", func(s *testcase.Spec) {
		index := let.Var[int](s, nil)
		act := let.Act2(func(t *testcase.T) (T, error) {
			return seq.Get(t).Get(index.Get(t))
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			s.Before(assertEmptySetup)

			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("index out of bounds error is returned", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			withValues(s)

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the expected value is returned", func(t *testcase.T) {
					got, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, values.Get(t)[index.Get(t)], got)
				})

				s.Then("Lookup returns the same value", func(t *testcase.T) {
					got, ok := seq.Get(t).Lookup(index.Get(t))
					assert.True(t, ok)
					assert.Equal(t, values.Get(t)[index.Get(t)], got)
				})
			})

			s.And("index is the length of the sequence", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t))
				})

				s.Then("index out of bounds error is returned", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
				})

				s.Then("Lookup reports the value as missing", func(t *testcase.T) {
					_, ok := seq.Get(t).Lookup(index.Get(t))
					assert.False(t, ok)
				})
			})

			s.And("index is negative", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(-42, -1)
				})

				s.Then("index out of bounds error is returned", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
				})
			})
		})
	})

	s.Describe("#Set", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
			value = let.Var(s, func(t *testcase.T) T {
				return c.makeElem(t)
			})
		)
		act := let.Act2(func(t *testcase.T) (T, error) {
			return seq.Get(t).Set(index.Get(t), value.Get(t))
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			s.Before(assertEmptySetup)

			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("index out of bounds error is returned", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
				assert.Equal(t, 0, seq.Get(t).Len())
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			withValues(s)

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the previous value is returned", func(t *testcase.T) {
					prev, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, values.Get(t)[index.Get(t)], prev)
				})

				s.Then("the new value is set for the given index", func(t *testcase.T) {
					_, err := act(t)
					assert.NoError(t, err)

					got, err := seq.Get(t).Get(index.Get(t))
					assert.NoError(t, err)
					assert.Equal(t, value.Get(t), got)
				})

				s.Then("apart from the changed value, everything else remains the original one", func(t *testcase.T) {
					_, err := act(t)
					assert.NoError(t, err)

					exp := slices.Clone(values.Get(t))
					exp[index.Get(t)] = value.Get(t)
					assert.Equal(t, exp, seq.Get(t).ToSlice())
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})

				s.Then("index out of bounds error is returned and nothing changes", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
					assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
				})
			})
		})
	})

	s.Describe("#Insert", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
			value = let.Var(s, func(t *testcase.T) T {
				return c.makeElem(t)
			})
		)
		act := let.Act(func(t *testcase.T) error {
			return seq.Get(t).Insert(index.Get(t), value.Get(t))
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			s.Before(assertEmptySetup)

			s.And("index is zero", func(s *testcase.Spec) {
				index.LetValue(s, 0)

				s.Then("the value is inserted", func(t *testcase.T) {
					assert.NoError(t, act(t))
					assert.Equal(t, []T{value.Get(t)}, seq.Get(t).ToSlice())
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(1, 42)
				})

				s.Then("index out of bounds error is returned", func(t *testcase.T) {
					assert.ErrorIs(t, act(t), datastruct.ErrIndexOutOfBounds)
					assert.Equal(t, 0, seq.Get(t).Len())
				})
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			withValues(s)

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the value is placed at the index, and the rest is shifted to the right", func(t *testcase.T) {
					assert.NoError(t, act(t))

					exp := slices.Insert(slices.Clone(values.Get(t)), index.Get(t), value.Get(t))
					assert.Equal(t, exp, seq.Get(t).ToSlice())
				})

				s.Then("removing the same index restores the original sequence", func(t *testcase.T) {
					assert.NoError(t, act(t))

					got, err := seq.Get(t).Remove(index.Get(t))
					assert.NoError(t, err)
					assert.Equal(t, value.Get(t), got)
					assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
				})
			})

			s.And("index is the length of the sequence", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t))
				})

				s.Then("the value is appended at the end", func(t *testcase.T) {
					assert.NoError(t, act(t))

					exp := append(slices.Clone(values.Get(t)), value.Get(t))
					assert.Equal(t, exp, seq.Get(t).ToSlice())
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(1, 42)
				})

				s.Then("index out of bounds error is returned and nothing changes", func(t *testcase.T) {
					assert.ErrorIs(t, act(t), datastruct.ErrIndexOutOfBounds)
					assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
				})
			})

			s.And("index is negative", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(-42, -1)
				})

				s.Then("index out of bounds error is returned and nothing changes", func(t *testcase.T) {
					assert.ErrorIs(t, act(t), datastruct.ErrIndexOutOfBounds)
					assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
				})
			})
		})
	})

	s.Describe("#Remove", func(s *testcase.Spec) {
		index := let.Var[int](s, nil)
		act := let.Act2(func(t *testcase.T) (T, error) {
			return seq.Get(t).Remove(index.Get(t))
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			s.Before(assertEmptySetup)

			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("index out of bounds error is returned", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			withValues(s)

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the removed value is returned", func(t *testcase.T) {
					got, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, values.Get(t)[index.Get(t)], got)
				})

				s.Then("the total length shrinks by one", func(t *testcase.T) {
					_, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, len(values.Get(t))-1, seq.Get(t).Len())
				})

				s.Then("the subsequent values are shifted to the left", func(t *testcase.T) {
					_, err := act(t)
					assert.NoError(t, err)

					exp := slices.Delete(slices.Clone(values.Get(t)), index.Get(t), index.Get(t)+1)
					assert.Equal(t, exp, seq.Get(t).ToSlice())
					assert.Equal(t, exp, iterkit.Collect(seq.Get(t).Values()))
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})

				s.Then("index out of bounds error is returned and nothing changes", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, err, datastruct.ErrIndexOutOfBounds)
					assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
				})
			})
		})
	})

	s.Describe("#RemoveValue", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) T {
			return c.makeElem(t)
		})
		act := let.Act(func(t *testcase.T) bool {
			return seq.Get(t).RemoveValue(value.Get(t))
		})

		s.When("the value is absent", func(s *testcase.Spec) {
			withValues(s)

			s.Then("it reports false and nothing changes", func(t *testcase.T) {
				assert.False(t, act(t))
				assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
			})
		})

		s.When("the value is present more than once", func(s *testcase.Spec) {
			withValues(s)

			s.Before(func(t *testcase.T) {
				seq.Get(t).Append(value.Get(t))
				assert.NoError(t, seq.Get(t).Insert(0, value.Get(t)))
			})

			s.Then("only the first occurrence is removed", func(t *testcase.T) {
				assert.True(t, act(t))

				exp := append(slices.Clone(values.Get(t)), value.Get(t))
				assert.Equal(t, exp, seq.Get(t).ToSlice())
			})
		})
	})

	s.Describe("#IndexOf and #LastIndexOf", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) T {
			return c.makeElem(t)
		})

		s.When("the value is absent", func(s *testcase.Spec) {
			withValues(s)

			s.Then("both report -1", func(t *testcase.T) {
				assert.Equal(t, -1, seq.Get(t).IndexOf(value.Get(t)))
				assert.Equal(t, -1, seq.Get(t).LastIndexOf(value.Get(t)))
			})
		})

		s.When("the value is present at multiple positions", func(s *testcase.Spec) {
			withValues(s)

			first := let.Var(s, func(t *testcase.T) int {
				return t.Random.IntN(len(values.Get(t)))
			})

			s.Before(func(t *testcase.T) {
				assert.NoError(t, seq.Get(t).Insert(first.Get(t), value.Get(t)))
				seq.Get(t).Append(value.Get(t))
			})

			s.Then("IndexOf returns the first position", func(t *testcase.T) {
				assert.Equal(t, first.Get(t), seq.Get(t).IndexOf(value.Get(t)))
			})

			s.Then("LastIndexOf returns the last position", func(t *testcase.T) {
				assert.Equal(t, seq.Get(t).Len()-1, seq.Get(t).LastIndexOf(value.Get(t)))
			})
		})
	})

	s.Describe("#Clear", func(s *testcase.Spec) {
		act := let.Act0(func(t *testcase.T) {
			seq.Get(t).Clear()
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			withValues(s)

			s.Then("sequence becomes empty", func(t *testcase.T) {
				act(t)

				assert.Equal(t, 0, seq.Get(t).Len())
				assert.Empty(t, seq.Get(t).ToSlice())
				for _, v := range values.Get(t) {
					assert.False(t, seq.Get(t).Contains(v))
				}
			})

			s.Then("sequence can be used again", func(t *testcase.T) {
				act(t)

				seq.Get(t).Append(values.Get(t)...)
				assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
			})
		})
	})

	s.Describe("#ToSlice", func(s *testcase.Spec) {
		withValues(s)

		s.Then("changing the returned slice doesn't affect the sequence", func(t *testcase.T) {
			out := seq.Get(t).ToSlice()
			out[0] = c.makeElem(t)

			got, err := seq.Get(t).Get(0)
			assert.NoError(t, err)
			assert.Equal(t, values.Get(t)[0], got)
		})

		s.Then("returned slice has exactly the length of the sequence", func(t *testcase.T) {
			out := seq.Get(t).ToSlice()
			assert.Equal(t, seq.Get(t).Len(), len(out))
			assert.Equal(t, len(out), cap(out))
		})
	})

	return s.AsSuite(fmt.Sprintf("Sequence[%s]", reflectkit.TypeOf[T]().String()))
}
