package file

import (
	"bufio"
	"context"
	"os"

	"github.com/nxadm/tail"
	"github.com/saylorsolutions/lookahead/pkg/lookahead"
)

// Line is a single line read from a file.
type Line struct {
	// Num is the 1-based number of the line within the file.
	Num  int
	Text string
}

// Source will create a lookahead.Source over the lines of the file specified by filename.
// Lines are read lazily, so the file stays open until the last line has been produced or the scan fails.
func Source(filename string) (lookahead.Source[Line], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(f)
	num := 0
	return lookahead.FromFunc(func() (Line, error) {
		if !scanner.Scan() {
			_ = f.Close()
			if err := scanner.Err(); err != nil {
				return lookahead.Err[Line](err)
			}
			return lookahead.End[Line]()
		}
		num++
		return Line{Num: num, Text: scanner.Text()}, nil
	}), nil
}

// Tail behaves the same as CtxTail, except that it will use context.Background as the context.
func Tail(filename string) (lookahead.Source[Line], error) {
	_, src, err := ctxTail(context.Background(), filename)
	return src, err
}

// CtxTail will create a source that follows the file specified by filename, producing a Line for each new line written to it.
// The file must already exist. The source keeps producing until the context is cancelled or the watcher is stopped.
func CtxTail(ctx context.Context, filename string) (lookahead.Source[Line], error) {
	_, src, err := ctxTail(ctx, filename)
	return src, err
}

func ctxTail(ctx context.Context, filename string) (*tail.Tail, lookahead.Source[Line], error) {
	t, err := tail.TailFile(filename, tail.Config{
		ReOpen:    true,
		MustExist: true,
		Follow:    true,
	})
	if err != nil {
		return nil, nil, err
	}

	ch := make(chan Line)
	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case l, ok := <-t.Lines:
				if !ok {
					return
				}
				ch <- Line{Num: l.Num, Text: l.Text}
			}
		}
	}()
	return t, lookahead.FromChannel(ch), nil
}

// Sink will append each line in the source to the specified file, creating it if necessary.
// If Sink is called asynchronously, it's recommended to wait until it returns to close down the application.
// In case of an error, Sink will drain the source to prevent upstream blocking.
func Sink(src lookahead.Source[Line], filename string, perms os.FileMode) error {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, perms)
	if err != nil {
		lookahead.Drain(src)
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	w := bufio.NewWriter(f)
	err = lookahead.Each(src, func(line Line, _ int) error {
		if _, err := w.WriteString(line.Text); err != nil {
			return err
		}
		return w.WriteByte('\n')
	})
	if err != nil {
		lookahead.Drain(src)
		return err
	}
	return w.Flush()
}
