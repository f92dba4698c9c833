package datastructcontract_test

import (
	"testing"

	"go.llib.dev/arraylist/pkg/datastruct/datastructcontract"
	"go.llib.dev/testcase/assert"
)

func TestMakeUniqElem(t *testing.T) {
	mk := datastructcontract.MakeUniqElem[string]()

	t.Run("values are unique within a test", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 64; i++ {
			v := mk(t)
			_, ok := seen[v]
			assert.False(t, ok)
			seen[v] = struct{}{}
		}
	})

	t.Run("a long run of tests doesn't exhaust the value pool", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			t.Run("", func(t *testing.T) {
				for j := 0; j < 16; j++ {
					assert.NotPanic(t, func() { mk(t) })
				}
			})
		}
	})
}
