package datastruct

import (
	"testing"

	"go.llib.dev/testcase/assert"
)

func TestArrayList_storageState(t *testing.T) {
	t.Run("zero value is lazy", func(t *testing.T) {
		var l ArrayList[int]
		assert.Equal(t, storageLazy, l.state)
		assert.Empty(t, l.elements)
		l.Add(1)
		assert.Equal(t, storageAllocated, l.state)
		assert.Equal(t, DefaultCapacity, len(l.elements))
	})
	t.Run("explicit zero capacity is allocated", func(t *testing.T) {
		l, err := MakeArrayList[int](0)
		assert.NoError(t, err)
		assert.Equal(t, storageAllocated, l.state)
		l.Add(1)
		assert.Equal(t, 1, len(l.elements))
		l.Add(2)
		assert.Equal(t, 2, len(l.elements))
		l.Add(3)
		assert.Equal(t, 3, len(l.elements))
		l.Add(4)
		assert.Equal(t, 4, len(l.elements))
		l.Add(5)
		assert.Equal(t, 6, len(l.elements))
	})
}

func TestArrayList_growth(t *testing.T) {
	l := NewArrayList[int]()
	var capacities []int
	for i := 0; i < 60; i++ {
		l.Add(i)
		if n := len(capacities); n == 0 || capacities[n-1] != l.Cap() {
			capacities = append(capacities, l.Cap())
		}
	}
	assert.Equal(t, []int{10, 15, 22, 33, 49, 73}, capacities)
}

func TestArrayList_releasesSlots(t *testing.T) {
	t.Run("Remove", func(t *testing.T) {
		l := NewArrayList[*int]()
		a, b, c := 1, 2, 3
		l.AddAll(&a, &b, &c)
		_, err := l.Remove(0)
		assert.NoError(t, err)
		assert.Nil(t, l.elements[2])
	})
	t.Run("RemoveValue", func(t *testing.T) {
		l := NewArrayList[*int]()
		a, b := 1, 2
		l.AddAll(&a, &b)
		assert.True(t, l.RemoveValue(&b))
		assert.Nil(t, l.elements[1])
	})
	t.Run("Clear", func(t *testing.T) {
		l := NewArrayList[*int]()
		a, b := 1, 2
		l.AddAll(&a, &b)
		l.Clear()
		for _, ptr := range l.elements {
			assert.Nil(t, ptr)
		}
	})
	t.Run("RemoveAll", func(t *testing.T) {
		l := NewArrayList[string]()
		l.AddAll("a", "b", "a", "c")
		assert.True(t, l.RemoveAll("a"))
		assert.Equal(t, []string{"b", "c", "", ""}, l.elements[:4])
	})
}

func TestArrayList_modCount(t *testing.T) {
	l := NewArrayList[int]()
	count := func() int { return l.modCount }

	last := count()
	changed := func(t *testing.T) {
		t.Helper()
		assert.True(t, last < count())
		last = count()
	}
	unchanged := func(t *testing.T) {
		t.Helper()
		assert.Equal(t, last, count())
	}

	l.Add(1)
	changed(t)
	assert.NoError(t, l.Insert(0, 2))
	changed(t)
	_, _ = l.Set(0, 3)
	unchanged(t)
	l.AddAll(4, 5)
	changed(t)
	l.AddAll()
	unchanged(t)
	_, _ = l.InsertAll(1, 6)
	changed(t)
	l.RemoveAll(42)
	unchanged(t)
	l.RemoveAll(6)
	changed(t)
	l.RetainAll(3, 1, 4, 5)
	unchanged(t)
	l.RetainAll(3)
	changed(t)
	_, _ = l.Remove(0)
	changed(t)
	l.Clear()
	changed(t)
}
