package main

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/saylorsolutions/lookahead/pkg/lookahead"
	"github.com/saylorsolutions/lookahead/source/file"
)

func doJoin(log hclog.Logger, args ...string) error {
	if len(args) < 1 {
		return errors.New("not enough arguments for join")
	}
	cfg := DefaultConfig()
	if len(args) >= 2 {
		var err error
		cfg, err = LoadConfig(args[1])
		if err != nil {
			return err
		}
	}
	starts, err := compilePatterns(cfg.StartPatterns)
	if err != nil {
		return err
	}
	src, err := file.Source(args[0])
	if err != nil {
		return err
	}
	log.Debug("Joining lines", "file", args[0], "patterns", len(starts))
	buf := lookahead.New(src)
	for {
		record, ok := nextRecord(buf, starts, cfg.Separator)
		if !ok {
			break
		}
		fmt.Println(record)
	}
	return buf.Err()
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	starts := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		r, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid start pattern %q: %w", p, err)
		}
		starts = append(starts, r)
	}
	return starts, nil
}

// nextRecord pops a start line along with every continuation line after it,
// peeking one line ahead each time so the next record is left unconsumed.
// A leading continuation line with no preceding start is a record of its own.
func nextRecord(buf *lookahead.Buffer[file.Line], starts []*regexp.Regexp, sep string) (string, bool) {
	start, ok := buf.Pop()
	if !ok {
		return "", false
	}
	var sb strings.Builder
	sb.WriteString(start.Text)
	for {
		next, ok := buf.Peek(0)
		if !ok || isStart(next.Text, starts) {
			return sb.String(), true
		}
		line, _ := buf.Pop()
		sb.WriteString(sep)
		sb.WriteString(strings.TrimSpace(line.Text))
	}
}

func isStart(text string, starts []*regexp.Regexp) bool {
	for _, r := range starts {
		if r.MatchString(text) {
			return true
		}
	}
	return false
}
