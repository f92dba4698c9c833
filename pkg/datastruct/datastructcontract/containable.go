package datastructcontract

import (
	"testing"

	"go.llib.dev/arraylist/pkg/datastruct"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

type SubjectContainable[T any] interface {
	datastruct.Containable[T]
	datastruct.Appendable[T]
}

// Containable checks that membership reflects what was appended, regardless of position.
func Containable[T any, Subject SubjectContainable[T]](mk func(testing.TB) Subject, opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[ListConfig[T]](opts)

	var (
		subject = let.Var(s, func(t *testcase.T) Subject {
			return mk(t)
		})
		needle = let.Var(s, func(t *testcase.T) T {
			return c.makeElem(t)
		})
		haystack = let.Var(s, func(t *testcase.T) []T {
			return c.makeElems(t, 1, 5)
		})
	)
	act := let.Act(func(t *testcase.T) bool {
		return subject.Get(t).Contains(needle.Get(t))
	})

	s.Describe("#Contains", func(s *testcase.Spec) {
		s.When("nothing was appended", func(s *testcase.Spec) {
			s.Then("no value is contained", func(t *testcase.T) {
				assert.False(t, act(t))
			})
		})

		s.When("only other values were appended", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				subject.Get(t).Append(haystack.Get(t)...)
			})

			s.Then("the missing value is reported as absent", func(t *testcase.T) {
				assert.False(t, act(t))
			})

			s.Then("each appended value is reported as present", func(t *testcase.T) {
				for _, v := range haystack.Get(t) {
					assert.True(t, subject.Get(t).Contains(v))
				}
			})
		})

		s.When("the value was appended", func(s *testcase.Spec) {
			position := let.Var(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, len(haystack.Get(t)))
			})

			s.Before(func(t *testcase.T) {
				vs := haystack.Get(t)
				subject.Get(t).Append(vs[:position.Get(t)]...)
				subject.Get(t).Append(needle.Get(t))
				subject.Get(t).Append(vs[position.Get(t):]...)
			})

			s.Then("it is reported as present wherever it sits", func(t *testcase.T) {
				assert.True(t, act(t))
			})

			s.Then("asking about membership leaves the length untouched", func(t *testcase.T) {
				sub, ok := any(subject.Get(t)).(datastruct.Len)
				if !ok {
					t.Skip("subject has no length")
				}
				before := sub.Len()
				act(t)
				act(t)
				assert.Equal(t, before, sub.Len())
			})
		})
	})

	return s.AsSuite("Containable")
}
