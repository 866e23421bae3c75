package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/saylorsolutions/lookahead/pkg/lookahead"
	"github.com/saylorsolutions/lookahead/source/file"
	"github.com/saylorsolutions/lookahead/source/store"
)

func main() {
	log := hclog.Default()
	if level := os.Getenv("LOOKAHEAD_LOG"); level != "" {
		if parsed := hclog.LevelFromString(level); parsed != hclog.NoLevel {
			log.SetLevel(parsed)
		}
	}
	if len(os.Args) <= 1 {
		usage()
		return
	}
	args := os.Args[1:]
	switch args[0] {
	case "join":
		if err := doJoin(log, args[1:]...); err != nil {
			exitError("Failed to join lines: %v", err)
		}
	case "spool":
		if err := doSpool(log, args[1:]...); err != nil {
			exitError("Failed to spool file: %v", err)
		}
	case "replay":
		if err := doReplay(log, args[1:]...); err != nil {
			exitError("Failed to replay table: %v", err)
		}
	case "help":
		usage()
	default:
		exitError("Unrecognized command: '%s'", args[0])
	}
}

func exitError(format string, args ...any) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Printf("Error: "+format, args...)
	usage()
	os.Exit(-1)
}

func usage() {
	text := `
lookahead is a line stream tool built on the lookahead buffer library.

  lookahead help
  lookahead join FILE [CONFIG]
  lookahead spool FILE DB_FILE TABLE
  lookahead replay DB_FILE TABLE

The 'help' subcommand will print this usage information.
The 'join' subcommand will print FILE with continuation lines joined to the record they belong to. Start lines are matched by the patterns in the TOML file CONFIG, or by a default of non-indented lines.
The 'spool' subcommand will append each line of FILE to TABLE in the SQLite database DB_FILE, creating both if necessary.
The 'replay' subcommand will print each line previously spooled to TABLE in DB_FILE, in insertion order.
`
	fmt.Print(text)
}

func doSpool(log hclog.Logger, args ...string) error {
	if len(args) < 3 {
		return errors.New("not enough arguments for spool")
	}
	src, err := file.Source(args[0])
	if err != nil {
		return err
	}
	s, err := store.New(log, args[1])
	if err != nil {
		lookahead.Drain(src)
		return err
	}
	defer func() {
		_ = s.Close()
	}()
	return s.Spool(lookahead.Map(src, func(line file.Line) string {
		return line.Text
	}), args[2])
}

func doReplay(log hclog.Logger, args ...string) error {
	if len(args) < 2 {
		return errors.New("not enough arguments for replay")
	}
	s, err := store.New(log, args[0])
	if err != nil {
		return err
	}
	defer func() {
		_ = s.Close()
	}()
	src, err := s.Replay(args[1])
	if err != nil {
		return err
	}
	log.Debug("Replaying lines", "count", src.Remaining())
	return lookahead.Each[string](src, func(line string, _ int) error {
		fmt.Println(line)
		return nil
	})
}
