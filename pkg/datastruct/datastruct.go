// Package datastruct contains ordered containers and the common interfaces that express their behaviour.
package datastruct

import "iter"

type ReadOnlyList[T any] interface {
	Values[T]
	Len
}

type List[T any] interface {
	ReadOnlyList[T]
	Appendable[T]
}

type ReadOnlySequence[T any] interface {
	ReadOnlyList[T]
	Get(index int) (T, error)
	Lookup(index int) (T, bool)
	IndexOf(element T) int
	LastIndexOf(element T) int
	Containable[T]
}

// Sequence is an ordered, index addressable List.
// Positional operations report an out of range index with ErrIndexOutOfBounds.
type Sequence[T any] interface {
	ReadOnlySequence[T]
	List[T]
	SliceConvertable[T]
	Set(index int, val T) (T, error)
	Insert(index int, val T) error
	Remove(index int) (T, error)
	RemoveValue(val T) bool
	Clear()
}

// BulkSequence is a Sequence that can operate with many values at once.
type BulkSequence[T any] interface {
	Sequence[T]
	AddAll(vs ...T) bool
	InsertAll(index int, vs ...T) (bool, error)
	RemoveAll(vs ...T) bool
	RetainAll(vs ...T) bool
	ContainsAll(vs ...T) bool
}

type Len interface {
	Len() int
}

type Appendable[T any] interface {
	Append(vs ...T)
}

type Containable[T any] interface {
	Contains(element T) bool
}

type Values[T any] interface {
	Values() iter.Seq[T]
}

type All[K, V any] interface {
	All() iter.Seq2[K, V]
}

type SliceConvertable[T any] interface {
	ToSlice() []T
}
