package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/saylorsolutions/lookahead/pkg/lookahead"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource(t *testing.T) {
	name := _tempLines(t, "A\nB\nC\n")

	src, err := Source(name)
	require.NoError(t, err)
	require.NotNil(t, src)

	count := 0
	err = lookahead.Each(src, func(line Line, i int) error {
		count++
		assert.Equal(t, i+1, line.Num)
		switch count {
		case 1:
			assert.Equal(t, "A", line.Text)
		case 2:
			assert.Equal(t, "B", line.Text)
		case 3:
			assert.Equal(t, "C", line.Text)
		default:
			t.Error("Should not have consumed 4+ lines")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestSource_Lookahead(t *testing.T) {
	name := _tempLines(t, "start A\n  continued\nstart B\n")

	src, err := Source(name)
	require.NoError(t, err)
	buf := lookahead.New(src)

	next, ok := buf.Peek(1)
	require.True(t, ok)
	assert.Equal(t, "  continued", next.Text)

	line, ok := buf.Pop()
	require.True(t, ok)
	assert.Equal(t, "start A", line.Text, "Peeking ahead should not consume the first line")
}

func TestCtxTail(t *testing.T) {
	name := _tempLines(t, "A\nB\nC\n")

	_tail, src, err := ctxTail(context.Background(), name)
	require.NoError(t, err)
	require.NotNil(t, _tail)
	require.NotNil(t, src)

	count := 0
	err = lookahead.Each(src, func(line Line, i int) error {
		count++
		switch count {
		case 1:
			assert.Equal(t, "A", line.Text)
		case 2:
			assert.Equal(t, "B", line.Text)
		case 3:
			assert.Equal(t, "C", line.Text)
		default:
			t.Error("Should not have consumed 4+ lines")
		}
		if count == 3 {
			return _tail.Stop()
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestSink(t *testing.T) {
	td := t.TempDir()
	name := filepath.Join(td, "out.log")

	src := lookahead.FromSlice([]Line{
		{Num: 1, Text: "A"},
		{Num: 2, Text: "B"},
	})
	err := Sink(src, name, 0600)
	assert.NoError(t, err)

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "A\nB\n", string(data))
}

func _tempLines(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, os.WriteFile(name, []byte(content), 0600))
	return name
}
