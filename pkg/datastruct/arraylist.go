package datastruct

import (
	"fmt"
	"iter"
	"strings"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/port/option"
)

// DefaultCapacity is the number of slots allocated by the first growth of a lazily initialised ArrayList.
const DefaultCapacity = 10

// ArrayList is an ordered, randomly indexable list over a contiguous backing store,
// which it allocates, grows and compacts on its own.
//
// The zero value is an empty list that allocates DefaultCapacity slots on its first write.
// ArrayList is not safe for concurrent use.
type ArrayList[T any] struct {
	elements []T // len(elements) is the capacity
	length   int
	state    storageState
	modCount int
	config   Config[T]
}

type storageState int

const (
	// storageLazy means no backing store is allocated yet,
	// and the first growth should allocate DefaultCapacity slots.
	storageLazy storageState = iota
	// storageAllocated means the capacity was realised, even if it is zero.
	storageAllocated
)

var _ BulkSequence[any] = (*ArrayList[any])(nil)

// NewArrayList returns an empty list with lazily allocated default capacity.
func NewArrayList[T any](opts ...Option[T]) *ArrayList[T] {
	return &ArrayList[T]{config: option.ToConfig[Config[T]](opts)}
}

// MakeArrayList returns an empty list with exactly the requested capacity.
// A zero capacity is an explicit request, and will not fall back to DefaultCapacity on the first growth.
func MakeArrayList[T any](capacity int, opts ...Option[T]) (*ArrayList[T], error) {
	if capacity < 0 {
		return nil, ErrInvalidArgument.F("illegal capacity: %d", capacity)
	}
	return &ArrayList[T]{
		elements: make([]T, capacity),
		state:    storageAllocated,
		config:   option.ToConfig[Config[T]](opts),
	}, nil
}

// Len returns the number of elements in the list.
func (l *ArrayList[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Cap returns the number of slots in the backing store.
func (l *ArrayList[T]) Cap() int {
	if l == nil {
		return 0
	}
	return len(l.elements)
}

func (l *ArrayList[T]) IsEmpty() bool {
	return l.Len() == 0
}

// Add appends an element to the end of the list.
// It always reports true, as the length of the list changes.
func (l *ArrayList[T]) Add(v T) bool {
	l.ensureCapacity(l.length + 1)
	l.elements[l.length] = v
	l.length++
	l.modCount++
	return true
}

// Append adds the values to the end of the list.
func (l *ArrayList[T]) Append(vs ...T) {
	l.AddAll(vs...)
}

// Insert adds an element to the given index, and shifts every subsequent element to the right.
// Index must be within [0, Len()].
func (l *ArrayList[T]) Insert(index int, v T) error {
	if err := l.rangeCheckForAdd(index); err != nil {
		return err
	}
	l.ensureCapacity(l.length + 1)
	copy(l.elements[index+1:l.length+1], l.elements[index:l.length])
	l.elements[index] = v
	l.length++
	l.modCount++
	return nil
}

// Get returns the element at the given index.
func (l *ArrayList[T]) Get(index int) (T, error) {
	if err := l.rangeCheck(index); err != nil {
		var zero T
		return zero, err
	}
	return l.elements[index], nil
}

// Lookup returns the element at the given index, and reports whether the index was valid.
func (l *ArrayList[T]) Lookup(index int) (T, bool) {
	v, err := l.Get(index)
	return v, err == nil
}

// Set replaces the element at the given index and returns the previous one.
func (l *ArrayList[T]) Set(index int, v T) (T, error) {
	if err := l.rangeCheck(index); err != nil {
		var zero T
		return zero, err
	}
	prev := l.elements[index]
	l.elements[index] = v
	return prev, nil
}

// Remove deletes the element at the given index, shifts every subsequent element to the left
// and returns the removed element.
func (l *ArrayList[T]) Remove(index int) (T, error) {
	if err := l.rangeCheck(index); err != nil {
		var zero T
		return zero, err
	}
	v := l.elements[index]
	l.fastRemove(index)
	return v, nil
}

// RemoveValue deletes the first occurrence of the value.
// It reports false and leaves the list unchanged when the value is absent.
func (l *ArrayList[T]) RemoveValue(v T) bool {
	index := l.IndexOf(v)
	if index < 0 {
		return false
	}
	l.fastRemove(index)
	return true
}

func (l *ArrayList[T]) fastRemove(index int) {
	copy(l.elements[index:l.length-1], l.elements[index+1:l.length])
	l.length--
	var zero T
	l.elements[l.length] = zero
	l.modCount++
}

// IndexOf returns the index of the first element equal to v, or -1 if there is none.
func (l *ArrayList[T]) IndexOf(v T) int {
	for i := 0; i < l.Len(); i++ {
		if l.config.equal(v, l.elements[i]) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last element equal to v, or -1 if there is none.
func (l *ArrayList[T]) LastIndexOf(v T) int {
	for i := l.Len() - 1; 0 <= i; i-- {
		if l.config.equal(v, l.elements[i]) {
			return i
		}
	}
	return -1
}

func (l *ArrayList[T]) Contains(v T) bool {
	return l.IndexOf(v) != -1
}

// Clear removes every element from the list, but keeps its capacity.
func (l *ArrayList[T]) Clear() {
	clear(l.elements[:l.length])
	l.length = 0
	l.modCount++
}

// ToSlice returns a copy of the list's elements.
// Changing the returned slice has no effect on the list.
func (l *ArrayList[T]) ToSlice() []T {
	out := make([]T, l.Len())
	if l != nil {
		copy(out, l.elements[:l.length])
	}
	return out
}

func (l *ArrayList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < l.Len(); i++ {
		if 0 < i {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, l.elements[i])
	}
	sb.WriteString("]")
	return sb.String()
}

// AddSeq appends every value of the sequence to the end of the list.
// The sequence is fully collected before the list is modified,
// so it is safe to pass the list's own iterator.
func (l *ArrayList[T]) AddSeq(seq iter.Seq[T]) bool {
	return l.AddAll(iterkit.Collect(seq)...)
}

// ensureCapacity makes sure the backing store can hold at least minCapacity elements.
func (l *ArrayList[T]) ensureCapacity(minCapacity int) {
	if l.state == storageLazy {
		l.elements = make([]T, max(DefaultCapacity, minCapacity))
		l.state = storageAllocated
		return
	}
	if minCapacity <= len(l.elements) {
		return
	}
	oldCapacity := len(l.elements)
	newCapacity := oldCapacity + oldCapacity/2
	if newCapacity < minCapacity {
		newCapacity = minCapacity
	}
	elements := make([]T, newCapacity)
	copy(elements, l.elements[:l.length])
	l.elements = elements
}

func (l *ArrayList[T]) rangeCheck(index int) error {
	if index < 0 || l.Len() <= index {
		return ErrIndexOutOfBounds.F("index:%d length:%d", index, l.Len())
	}
	return nil
}

func (l *ArrayList[T]) rangeCheckForAdd(index int) error {
	if index < 0 || l.Len() < index {
		return ErrIndexOutOfBounds.F("index:%d length:%d", index, l.Len())
	}
	return nil
}
