package lookahead

import (
	"errors"
)

var (
	// ErrAtEnd is returned by Source.Next when the sequence is exhausted.
	ErrAtEnd = errors.New("end of sequence")
)

// Source is a single-pass, forward-only producer of values.
// Next returns the next value in the sequence.
// It returns ErrAtEnd once the sequence is exhausted; any other error means the producer itself failed.
type Source[T any] interface {
	Next() (T, error)
}

// SizedSource is a Source that knows exactly how many values it can still produce.
type SizedSource[T any] interface {
	Source[T]
	// Remaining returns the exact number of values left in the sequence.
	Remaining() int
}

// SourceFunc adapts a plain function to a Source.
type SourceFunc[T any] func() (T, error)

func (f SourceFunc[T]) Next() (T, error) {
	return f()
}

// FromFunc returns a Source that calls f for each value.
func FromFunc[T any](f func() (T, error)) Source[T] {
	return SourceFunc[T](f)
}

// End is a shortcut for returning an end-of-sequence result from a Source.
func End[T any]() (T, error) {
	var zero T
	return zero, ErrAtEnd
}

// Err is a shortcut for returning an error result from a Source.
func Err[T any](err error) (T, error) {
	var zero T
	return zero, err
}

// IsEnd reports whether err signals normal exhaustion of a Source.
func IsEnd(err error) bool {
	return errors.Is(err, ErrAtEnd)
}

// Each calls fn for each remaining value in src along with its offset from the current position.
// Iteration stops cleanly when src is exhausted or when fn returns ErrAtEnd, returning nil.
// Any other error - from src or fn - stops iteration and is returned.
func Each[T any](src Source[T], fn func(item T, i int) error) error {
	for i := 0; ; i++ {
		item, err := src.Next()
		if err != nil {
			if IsEnd(err) {
				return nil
			}
			return err
		}
		if err := fn(item, i); err != nil {
			if IsEnd(err) {
				return nil
			}
			return err
		}
	}
}

// Collect consumes src and returns all of its remaining values.
func Collect[T any](src Source[T]) ([]T, error) {
	var items []T
	if sized, ok := src.(SizedSource[T]); ok {
		items = make([]T, 0, sized.Remaining())
	}
	err := Each(src, func(item T, _ int) error {
		items = append(items, item)
		return nil
	})
	if err != nil {
		return items, err
	}
	return items, nil
}

// CollectN consumes up to n values from src.
// The result is shorter than n only if src ran out first.
func CollectN[T any](src Source[T], n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	items := make([]T, 0, n)
	for len(items) < n {
		item, err := src.Next()
		if err != nil {
			if IsEnd(err) {
				return items, nil
			}
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}
