package lookahead

var _ Source[int] = (*chanSource[int])(nil)

type chanSource[T any] struct {
	ch <-chan T
}

// FromChannel returns a Source that receives values from ch until it's closed.
func FromChannel[T any](ch <-chan T) Source[T] {
	return &chanSource[T]{ch: ch}
}

func (s *chanSource[T]) Next() (T, error) {
	item, ok := <-s.ch
	if !ok {
		return End[T]()
	}
	return item, nil
}

// AsChannel exposes src as a channel, pumping values in a new goroutine.
// The channel is closed when src is exhausted or fails.
// It's advised not to read from a Source that has been passed to AsChannel.
func AsChannel[T any](src Source[T]) <-chan T {
	if chs, ok := src.(*chanSource[T]); ok {
		return chs.ch
	}
	ch := make(chan T)
	go func() {
		defer close(ch)
		_ = Each(src, func(item T, _ int) error {
			ch <- item
			return nil
		})
	}()
	return ch
}
