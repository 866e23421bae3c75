package lookahead

import (
	"golang.org/x/exp/slices"
)

var _ Source[int] = (*Buffer[int])(nil)

// Buffer is a lookahead adapter over a Source.
// It lets a consumer peek arbitrarily far ahead into the sequence, mutate
// peeked values in place, and push values back onto the front, pulling from
// the wrapped source only as far as an operation requires.
//
// The logical sequence is always the buffered values (front to back)
// followed by whatever the source hasn't produced yet. A Buffer owns its
// source, is single-pass, and is not safe for concurrent use.
type Buffer[T any] struct {
	src Source[T]
	buf deque[T]
	err error
}

// New wraps src in an empty Buffer. Nothing is pulled eagerly.
func New[T any](src Source[T]) *Buffer[T] {
	return &Buffer[T]{src: src}
}

// Push inserts item at the front of the sequence, ahead of everything
// buffered and everything not yet pulled. Pushes are LIFO: the most
// recently pushed value is the next one popped.
func (b *Buffer[T]) Push(item T) {
	b.buf.pushFront(item)
}

// Pop removes and returns the next value of the sequence.
// A buffered value is returned without touching the source; otherwise a
// single value is pulled from the source directly. Pop returns false only
// when the buffer is empty and the source has nothing left.
func (b *Buffer[T]) Pop() (T, bool) {
	if b.buf.len() == 0 {
		return b.pull()
	}
	return b.buf.popFront()
}

// Peek returns the value that would be returned by the (n+1)-th Pop,
// without consuming anything. It pulls exactly enough values to reach
// position n, and returns false if the source ends before that.
func (b *Buffer[T]) Peek(n int) (T, bool) {
	if b.fill(n+1) > 0 {
		var zero T
		return zero, false
	}
	return *b.buf.at(n), true
}

// PeekMut returns a pointer to the value at position n so it can be
// modified in place; the change is observed by later pops and peeks.
// It returns nil if the source ends before position n.
// The pointer is only valid until the next call that mutates the Buffer.
func (b *Buffer[T]) PeekMut(n int) *T {
	if b.fill(n+1) > 0 {
		return nil
	}
	return b.buf.at(n)
}

// PeekSlice returns a copy of the values at the positions selected by r,
// pulling exactly enough extra values to cover its upper bound.
// If the source ends before the upper bound, the result holds only what was
// available; if it ends before the lower bound, PeekSlice returns false.
func (b *Buffer[T]) PeekSlice(r Range) ([]T, bool) {
	view, ok := b.peekView(r)
	if !ok {
		return nil, false
	}
	return slices.Clone(view), true
}

// PeekSliceMut behaves like PeekSlice but returns the live view over the
// buffered values, so modifications are observed by later pops and peeks.
// The view is only valid until the next call that mutates the Buffer.
func (b *Buffer[T]) PeekSliceMut(r Range) ([]T, bool) {
	return b.peekView(r)
}

func (b *Buffer[T]) peekView(r Range) ([]T, bool) {
	b.fillRange(r)
	start := r.startIndex()
	end := r.endIndex(b.buf.len())
	if start > b.buf.len() || end < start {
		return nil, false
	}
	return b.buf.contiguous()[start:end], true
}

// Next makes the Buffer a Source itself, equivalent to Pop.
// If the wrapped source failed mid-sequence, Next surfaces that error
// instead of ErrAtEnd.
func (b *Buffer[T]) Next() (T, error) {
	item, ok := b.Pop()
	if !ok {
		if b.err != nil {
			return Err[T](b.err)
		}
		return End[T]()
	}
	return item, nil
}

// Buffered returns the number of values currently held in the buffer.
func (b *Buffer[T]) Buffered() int {
	return b.buf.len()
}

// Remaining returns the exact number of values left in the sequence,
// computed as the buffered length plus the source's own remaining count.
// Values added with Push count exactly once, like any other.
// The count is only exact when the wrapped source is a SizedSource;
// otherwise Remaining returns false.
func (b *Buffer[T]) Remaining() (int, bool) {
	sized, ok := b.src.(SizedSource[T])
	if !ok {
		return 0, false
	}
	return b.buf.len() + sized.Remaining(), true
}

// Err returns the first non-end error returned by the wrapped source, if any.
// Once the source fails, the Buffer treats the sequence as ended past the
// values already buffered.
func (b *Buffer[T]) Err() error {
	return b.err
}

// pull takes a single value directly from the source.
func (b *Buffer[T]) pull() (T, bool) {
	var zero T
	if b.err != nil {
		return zero, false
	}
	item, err := b.src.Next()
	if err != nil {
		if !IsEnd(err) {
			b.err = err
		}
		return zero, false
	}
	return item, true
}

// fill pulls from the source until the buffer holds at least n values,
// stopping early if the source ends. The result is the deficit: zero when
// the target was reached, otherwise how many values the source came up short.
func (b *Buffer[T]) fill(n int) int {
	for b.buf.len() < n {
		item, ok := b.pull()
		if !ok {
			return n - b.buf.len()
		}
		b.buf.pushBack(item)
	}
	return 0
}

// fillRange pulls the minimal number of extra values needed to cover the
// upper bound of r, draining the source entirely for an unbounded end.
func (b *Buffer[T]) fillRange(r Range) {
	extra, all := r.endExtra(b.buf.len())
	if all {
		b.fillAll()
		return
	}
	for i := 0; i < extra; i++ {
		item, ok := b.pull()
		if !ok {
			return
		}
		b.buf.pushBack(item)
	}
}

// fillAll pulls the source to exhaustion.
func (b *Buffer[T]) fillAll() {
	for {
		item, ok := b.pull()
		if !ok {
			return
		}
		b.buf.pushBack(item)
	}
}
