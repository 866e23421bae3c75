package lookahead

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Map returns a Source that applies fn to each value from src.
func Map[T, U any](src Source[T], fn func(item T) U) Source[U] {
	return FromFunc(func() (U, error) {
		item, err := src.Next()
		if err != nil {
			return Err[U](err)
		}
		return fn(item), nil
	})
}

// Filter returns a Source producing only the values from src for which keep returns true.
func Filter[T any](src Source[T], keep func(item T) bool) Source[T] {
	return FromFunc(func() (T, error) {
		for {
			item, err := src.Next()
			if err != nil {
				return item, err
			}
			if keep(item) {
				return item, nil
			}
		}
	})
}

// Concat returns values from next after base has been exhausted.
// A real error from base ends the combined sequence early.
func Concat[T any](base, next Source[T]) Source[T] {
	return FromFunc(func() (T, error) {
		item, err := base.Next()
		if err != nil {
			if IsEnd(err) {
				return next.Next()
			}
			return item, err
		}
		return item, nil
	})
}

// Merge will take over the passed in sources and forward all of their values to the new Source in no guaranteed order.
// It's advised not to read from a Source that has been passed to Merge.
func Merge[T any](a, b Source[T]) Source[T] {
	aCh := AsChannel(a)
	bCh := AsChannel(b)

	outCh := make(chan T)
	go func() {
		defer close(outCh)
		for aCh != nil || bCh != nil {
			select {
			case av, ok := <-aCh:
				if !ok {
					aCh = nil
					continue
				}
				outCh <- av
			case bv, ok := <-bCh:
				if !ok {
					bCh = nil
					continue
				}
				outCh <- bv
			}
		}
	}()
	return FromChannel(outCh)
}

// Dupe will take control of and branch the duplicated Source into two identical sources.
// Any value produced by src will be sent to both of the returned sources.
// This is useful in a case similar to when you want to print values as well as write them to a file.
// It's not advised to read from a Source that has been passed to Dupe, use one of the returned sources instead.
func Dupe[T any](src Source[T]) (Source[T], Source[T]) {
	a := make(chan T)
	b := make(chan T)
	asrc := FromChannel(a)
	bsrc := FromChannel(b)

	go func() {
		sem := semaphore.NewWeighted(2)
		ctx := context.Background()

		defer func() {
			_ = sem.Acquire(ctx, 2)
			close(a)
			close(b)
		}()
		_ = Each(src, func(item T, _ int) error {
			_ = sem.Acquire(ctx, 1)
			go func() {
				defer sem.Release(1)
				a <- item
			}()
			_ = sem.Acquire(ctx, 1)
			go func() {
				defer sem.Release(1)
				b <- item
			}()
			return nil
		})
	}()
	return asrc, bsrc
}

// Drain discards all remaining values of src in a new goroutine.
// This can be useful as an error fallback to prevent upstream blocking.
func Drain[T any](src Source[T]) {
	ch := AsChannel(src)
	go func() {
		for range ch {
		}
	}()
}
