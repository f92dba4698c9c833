package datastruct

// Stack is a LIFO container on top of an ArrayList.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	list ArrayList[T]
}

// IsEmpty check if stack is empty
func (s *Stack[T]) IsEmpty() bool {
	return s.list.IsEmpty()
}

func (s *Stack[T]) Len() int {
	return s.list.Len()
}

// Push a new value onto the stack
func (s *Stack[T]) Push(v T) {
	s.list.Add(v)
}

// Pop remove and return top element of stack. Return false if stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.IsEmpty() {
		return *new(T), false
	}
	v, err := s.list.Remove(s.list.Len() - 1)
	return v, err == nil
}

// Last returns the last stack element
func (s *Stack[T]) Last() (T, bool) {
	return s.list.Lookup(s.list.Len() - 1)
}
