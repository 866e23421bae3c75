package lookahead

const minDequeSize = 8

// deque is a growable double-ended queue backed by a circular slice.
// The front holds the next value to be consumed, the back the most recently buffered one.
type deque[T any] struct {
	buf  []T
	head int
	size int
}

func (d *deque[T]) len() int {
	return d.size
}

func (d *deque[T]) decrement(i int) int {
	return (i - 1 + len(d.buf)) % len(d.buf)
}

func (d *deque[T]) increment(i int) int {
	return (i + 1) % len(d.buf)
}

// grow makes room for at least one more value.
func (d *deque[T]) grow() {
	if d.size < len(d.buf) {
		return
	}
	size := len(d.buf) * 2
	if size < minDequeSize {
		size = minDequeSize
	}
	buf := make([]T, size)
	d.copyInto(buf)
	d.buf = buf
	d.head = 0
}

func (d *deque[T]) copyInto(buf []T) {
	if d.size == 0 {
		return
	}
	if wrapped := d.head + d.size - len(d.buf); wrapped > 0 {
		n := copy(buf, d.buf[d.head:])
		copy(buf[n:], d.buf[:wrapped])
		return
	}
	copy(buf, d.buf[d.head:d.head+d.size])
}

func (d *deque[T]) pushBack(item T) {
	d.grow()
	d.buf[(d.head+d.size)%len(d.buf)] = item
	d.size++
}

func (d *deque[T]) pushFront(item T) {
	d.grow()
	d.head = d.decrement(d.head)
	d.buf[d.head] = item
	d.size++
}

func (d *deque[T]) popFront() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	item := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = d.increment(d.head)
	d.size--
	return item, true
}

// at returns a pointer to the value at logical position i from the front.
// The caller is responsible for keeping i within bounds.
func (d *deque[T]) at(i int) *T {
	return &d.buf[(d.head+i)%len(d.buf)]
}

// contiguous linearizes the queue so its values occupy one run of the
// backing slice, and returns that run front to back.
func (d *deque[T]) contiguous() []T {
	if d.head+d.size > len(d.buf) {
		buf := make([]T, len(d.buf))
		d.copyInto(buf)
		d.buf = buf
		d.head = 0
	}
	return d.buf[d.head : d.head+d.size]
}
