package datastruct

import "iter"

// Values iterates over the elements of the list in order.
//
// The iteration is fail-fast: if the list is structurally modified while iterating,
// the iterator panics with ErrConcurrentModification.
// Replacing an element with Set is not a structural modification.
func (l *ArrayList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// All iterates over the index and element pairs of the list in order.
// Just like Values, it panics with ErrConcurrentModification on structural modification.
func (l *ArrayList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		expectedModCount := l.modCount
		for i := 0; i < l.length; i++ {
			if !yield(i, l.elements[i]) {
				return
			}
			if l.modCount != expectedModCount {
				panic(ErrConcurrentModification.F("list was modified during iteration at index %d", i))
			}
		}
	}
}
