package datastructcontract

import (
	"sync"
	"testing"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/random"
)

type ListOption[T any] interface {
	option.Option[ListConfig[T]]
}

type ListConfig[T any] struct {
	// MakeElem creates the element values used during the contract.
	// Contracts that look up values by equality expect MakeElem to return distinct values.
	MakeElem func(testing.TB) T
}

var _ ListOption[any] = ListConfig[any]{}

func (c ListConfig[T]) Configure(o *ListConfig[T]) {
	o.MakeElem = zerokit.Coalesce(c.MakeElem, o.MakeElem)
}

func (c ListConfig[T]) makeElem(tb testing.TB) T {
	return zerokit.Coalesce(c.MakeElem, makeValue[T])(tb)
}

func (c ListConfig[T]) makeElems(t *testcase.T, min, max int) []T {
	return random.Slice(t.Random.IntBetween(min, max), func() T {
		return c.makeElem(t)
	}, random.UniqueValues)
}

func makeValue[T any](tb testing.TB) T {
	t := testcase.ToT(&tb)
	return t.Random.Make(reflectkit.TypeOf[T]()).(T)
}

// MakeUniqElem returns a MakeElem function that never returns the same value twice within a test.
func MakeUniqElem[T any]() func(testing.TB) T {
	var (
		m    sync.Mutex
		used = make(map[testing.TB][]T)
	)
	return func(tb testing.TB) T {
		key := tb
		m.Lock()
		defer m.Unlock()
		vs, ok := used[key]
		if !ok {
			key.Cleanup(func() {
				m.Lock()
				defer m.Unlock()
				delete(used, key)
			})
		}
		t := testcase.ToT(&tb)
		v := random.Unique(func() T { return makeValue[T](t) }, vs...)
		used[key] = append(vs, v)
		return v
	}
}
