package datastruct

// AddAll appends the values to the end of the list, in their original order.
// It reports whether the list changed.
func (l *ArrayList[T]) AddAll(vs ...T) bool {
	if len(vs) == 0 {
		return false
	}
	l.ensureCapacity(l.length + len(vs))
	copy(l.elements[l.length:], vs)
	l.length += len(vs)
	l.modCount++
	return true
}

// InsertAll inserts the values starting from the given index,
// and shifts the elements that were at and after index to the right.
// Index must be within [0, Len()].
func (l *ArrayList[T]) InsertAll(index int, vs ...T) (bool, error) {
	if err := l.rangeCheckForAdd(index); err != nil {
		return false, err
	}
	if len(vs) == 0 {
		return false, nil
	}
	l.ensureCapacity(l.length + len(vs))
	copy(l.elements[index+len(vs):l.length+len(vs)], l.elements[index:l.length])
	copy(l.elements[index:index+len(vs)], vs)
	l.length += len(vs)
	l.modCount++
	return true, nil
}

// RemoveAll removes every element that is equal to any of the values.
// It reports whether anything was removed.
func (l *ArrayList[T]) RemoveAll(vs ...T) bool {
	return l.batchRemove(vs, false)
}

// RetainAll removes every element that is not equal to any of the values.
// It reports whether anything was removed.
func (l *ArrayList[T]) RetainAll(vs ...T) bool {
	return l.batchRemove(vs, true)
}

// ContainsAll reports whether every value is present in the list.
func (l *ArrayList[T]) ContainsAll(vs ...T) bool {
	for _, v := range vs {
		if !l.Contains(v) {
			return false
		}
	}
	return true
}

// batchRemove compacts the list in a single pass.
// The read cursor visits every element, while the write cursor points to the next free slot of the kept elements.
// An element is kept when its membership in vs equals keep.
func (l *ArrayList[T]) batchRemove(vs []T, keep bool) bool {
	var w int
	for r := 0; r < l.length; r++ {
		if l.isMember(vs, l.elements[r]) == keep {
			l.elements[w] = l.elements[r]
			w++
		}
	}
	if w == l.length {
		return false
	}
	clear(l.elements[w:l.length])
	l.length = w
	l.modCount++
	return true
}

func (l *ArrayList[T]) isMember(vs []T, v T) bool {
	for _, oth := range vs {
		if l.config.equal(oth, v) {
			return true
		}
	}
	return false
}
