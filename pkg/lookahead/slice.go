package lookahead

var _ SizedSource[int] = (*sliceSource[int])(nil)

type sliceSource[T any] struct {
	items []T
	next  int
}

// FromSlice returns a SizedSource over items.
// The slice is not copied, so it shouldn't be modified while the source is in use.
func FromSlice[T any](items []T) SizedSource[T] {
	return &sliceSource[T]{items: items}
}

func (s *sliceSource[T]) Next() (T, error) {
	if s.next < len(s.items) {
		cur := s.next
		s.next++
		return s.items[cur], nil
	}
	return End[T]()
}

func (s *sliceSource[T]) Remaining() int {
	return len(s.items) - s.next
}
