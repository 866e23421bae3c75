package lookahead

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeque_PushPopOrder(t *testing.T) {
	var d deque[int]
	assert.Equal(t, 0, d.len())

	for i := 1; i <= 20; i++ {
		d.pushBack(i)
	}
	require.Equal(t, 20, d.len(), "Pushing past the initial capacity should grow the queue")

	for i := 1; i <= 20; i++ {
		item, ok := d.popFront()
		require.True(t, ok)
		assert.Equal(t, i, item)
	}
	_, ok := d.popFront()
	assert.False(t, ok)
}

func TestDeque_PushFront(t *testing.T) {
	var d deque[int]
	d.pushBack(2)
	d.pushBack(3)
	d.pushFront(1)

	assert.Equal(t, 1, *d.at(0))
	assert.Equal(t, 2, *d.at(1))
	assert.Equal(t, 3, *d.at(2))
}

func TestDeque_ContiguousWrapped(t *testing.T) {
	var d deque[int]
	// Force the head away from the start of the backing slice, then wrap.
	for i := 0; i < minDequeSize; i++ {
		d.pushBack(i)
	}
	for i := 0; i < 3; i++ {
		_, ok := d.popFront()
		require.True(t, ok)
	}
	d.pushBack(100)
	d.pushBack(101)

	run := d.contiguous()
	assert.Equal(t, []int{3, 4, 5, 6, 7, 100, 101}, run)

	// The linearized view stays valid for positional access.
	for i := range run {
		assert.Equal(t, run[i], *d.at(i))
	}
}

func TestDeque_AtPointerWritesThrough(t *testing.T) {
	var d deque[string]
	d.pushBack("a")
	d.pushBack("b")

	*d.at(1) = "B"
	item, ok := d.popFront()
	require.True(t, ok)
	assert.Equal(t, "a", item)
	item, ok = d.popFront()
	require.True(t, ok)
	assert.Equal(t, "B", item)
}

func TestDeque_GrowPreservesWrappedOrder(t *testing.T) {
	var d deque[int]
	for i := 0; i < minDequeSize; i++ {
		d.pushBack(i)
	}
	for i := 0; i < minDequeSize/2; i++ {
		_, _ = d.popFront()
		d.pushBack(100 + i)
	}
	// The queue now wraps; growing must keep front-to-back order.
	for i := 0; i < minDequeSize; i++ {
		d.pushBack(200 + i)
	}

	want := []int{4, 5, 6, 7, 100, 101, 102, 103}
	for i := 0; i < minDequeSize; i++ {
		want = append(want, 200+i)
	}
	for _, w := range want {
		item, ok := d.popFront()
		require.True(t, ok)
		assert.Equal(t, w, item)
	}
}
