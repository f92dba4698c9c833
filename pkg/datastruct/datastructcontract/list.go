package datastructcontract

import (
	"fmt"
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

func List[T any, Subject datastruct.List[T]](mk func(tb testing.TB) Subject, opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[ListConfig[T]](opts)

	s.Test("smoke", func(t *testcase.T) {
		var (
			list     = mk(t)
			expected = c.makeElems(t, 3, 7)
		)

		list.Append()
		assert.Equal(t, 0, list.Len())

		var expLen int
		for _, v := range expected {
			assert.Equal(t, expLen, list.Len())
			list.Append(v)
			expLen++
		}

		assert.ContainsExactly(t, expected, iterkit.Collect(list.Values()))
	})

	s.Test("Append many", func(t *testcase.T) {
		var (
			list     = mk(t)
			expected = c.makeElems(t, 3, 7)
		)
		list.Append(expected...)
		assert.Equal(t, len(expected), list.Len())
		assert.ContainsExactly(t, expected, iterkit.Collect(list.Values()))

		if cts, ok := any(list).(datastruct.SliceConvertable[T]); ok {
			assert.ContainsExactly(t, expected, cts.ToSlice())
		}
	})

	s.Describe("#Values", func(s *testcase.Spec) {
		list := let.Var(s, func(t *testcase.T) Subject {
			list := mk(t)
			list.Append(c.makeElems(t, 3, 7)...)
			return list
		})

		s.Then("it can be iterated more than once", func(t *testcase.T) {
			first := iterkit.Collect(list.Get(t).Values())
			second := iterkit.Collect(list.Get(t).Values())
			assert.Equal(t, first, second)
			assert.Equal(t, list.Get(t).Len(), len(first))
		})

		s.Then("breaking out of the iteration stops it", func(t *testcase.T) {
			var n int
			for range list.Get(t).Values() {
				n++
				break
			}
			assert.Equal(t, 1, n)
		})
	})

	s.Context("implements Appendable", Appendable[T](mk, c).Spec)

	return s.AsSuite(fmt.Sprintf("List[%s]", reflectkit.TypeOf[T]().String()))
}

func OrderedList[T any, Subject datastruct.List[T]](mk func(tb testing.TB) Subject, opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[ListConfig[T]](opts)

	List[T](mk, c).Spec(s)

	s.Test("ordered", func(t *testcase.T) {
		var (
			list     = mk(t)
			expected = c.makeElems(t, 3, 7)
		)
		list.Append(expected...)
		if ts, ok := any(list).(datastruct.SliceConvertable[T]); ok {
			assert.Equal(t, expected, ts.ToSlice())
		}
		assert.Equal(t, expected, iterkit.Collect(list.Values()))
	})

	return s.AsSuite(fmt.Sprintf("ordered List[%s]", reflectkit.TypeOf[T]().String()))
}

type SubjectLenAppendable[T any] interface {
	datastruct.Appendable[T]
	datastruct.Len
}

func Appendable[T any, Subject SubjectLenAppendable[T]](mk func(tb testing.TB) Subject, opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[ListConfig[T]](opts)

	subject := let.Var(s, func(t *testcase.T) Subject {
		return mk(t)
	})

	s.Describe("#Append", func(s *testcase.Spec) {
		vs := let.Var(s, func(t *testcase.T) []T {
			return c.makeElems(t, 1, 7)
		})
		act := let.Act0(func(t *testcase.T) {
			subject.Get(t).Append(vs.Get(t)...)
		})

		s.Then("appending values will affect the length of the container", func(t *testcase.T) {
			assert.Empty(t, subject.Get(t).Len())

			act(t)

			assert.Equal(t, len(vs.Get(t)), subject.Get(t).Len())
		})

		s.Then("appended values are present during iteration", func(t *testcase.T) {
			sub, ok := any(subject.Get(t)).(datastruct.Values[T])
			if !ok {
				t.Skip("subject is not iterable")
			}

			act(t)

			assert.ContainsExactly(t, vs.Get(t), iterkit.Collect(sub.Values()))
		})

		s.When("values were already present", func(s *testcase.Spec) {
			existing := let.Var(s, func(t *testcase.T) []T {
				return c.makeElems(t, 1, 5)
			})

			s.Before(func(t *testcase.T) {
				subject.Get(t).Append(existing.Get(t)...)
			})

			s.Then("length is the sum of the existing and the new values", func(t *testcase.T) {
				act(t)

				assert.Equal(t, len(existing.Get(t))+len(vs.Get(t)), subject.Get(t).Len())
			})
		})
	})

	return s.AsSuite("Appendable")
}
